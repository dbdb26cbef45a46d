package invoice2pdf

import (
	"context"
	"testing"
	"time"
)

func TestBuildPDFOptions(t *testing.T) {
	opts := buildPDFOptions()

	if *opts.PaperWidth != paperWidthInches || *opts.PaperHeight != paperHeightInches {
		t.Errorf("paper = %.2fx%.2f, want A4 %.2fx%.2f",
			*opts.PaperWidth, *opts.PaperHeight, paperWidthInches, paperHeightInches)
	}
	for _, m := range []*float64{opts.MarginTop, opts.MarginBottom, opts.MarginLeft, opts.MarginRight} {
		if *m != marginInches {
			t.Errorf("margin = %.2f, want %.2f", *m, marginInches)
		}
	}
	if !opts.PrintBackground {
		t.Error("PrintBackground must be set")
	}
}

func TestRodConverterCanceledContext(t *testing.T) {
	conv := newRodConverter(time.Second)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// Must fail fast without ever touching the browser.
	if _, err := conv.ToPDF(ctx, "<html></html>"); err == nil {
		t.Error("ToPDF with canceled context must fail")
	}
	if conv.browser != nil {
		t.Error("browser must not be launched for a canceled context")
	}
}

func TestRodConverterCloseWithoutBrowser(t *testing.T) {
	conv := newRodConverter(time.Second)
	if err := conv.Close(); err != nil {
		t.Errorf("Close() without browser: %v", err)
	}
}

func TestFloatPtr(t *testing.T) {
	if v := floatPtr(8.27); *v != 8.27 {
		t.Errorf("floatPtr() = %v", *v)
	}
}
