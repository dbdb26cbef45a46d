package invoice2pdf

import (
	"context"
	"strings"
	"testing"
)

func TestInjectStyleWithoutStyleBlock(t *testing.T) {
	inj := &styleInjection{}
	htmlContent := "<html><head><title>x</title></head><body>hi</body></html>"

	got := inj.InjectStyle(context.Background(), htmlContent, "")

	if !strings.Contains(got, "@page { size: A4; margin: 2cm; }") {
		t.Errorf("base page CSS not injected: %q", got)
	}
	if !strings.Contains(got, "font-family: "+defaultFontFamily) {
		t.Errorf("font-family rule not injected: %q", got)
	}
	// injected before </head>
	if strings.Index(got, "<style>") > strings.Index(got, "</head>") {
		t.Errorf("style block not inside head: %q", got)
	}
}

func TestInjectStyleWithFont(t *testing.T) {
	inj := &styleInjection{}
	htmlContent := "<html><head></head><body></body></html>"

	got := inj.InjectStyle(context.Background(), htmlContent, "/usr/share/fonts/dejavu/DejaVuSans.ttf")

	if !strings.Contains(got, `@font-face`) {
		t.Errorf("font-face not injected: %q", got)
	}
	if !strings.Contains(got, `url("file:///usr/share/fonts/dejavu/DejaVuSans.ttf")`) {
		t.Errorf("font url wrong: %q", got)
	}
}

func TestInjectStyleExistingStyleBlock(t *testing.T) {
	inj := &styleInjection{}
	htmlContent := "<html><head><style>body { color: red; }</style></head><body></body></html>"

	t.Run("no font leaves content untouched", func(t *testing.T) {
		got := inj.InjectStyle(context.Background(), htmlContent, "")
		if got != htmlContent {
			t.Errorf("content modified: %q", got)
		}
	})

	t.Run("font adds override only", func(t *testing.T) {
		got := inj.InjectStyle(context.Background(), htmlContent, "/fonts/arial.ttf")
		if !strings.Contains(got, "@font-face") {
			t.Errorf("font-face not injected: %q", got)
		}
		if strings.Contains(got, "@page") {
			t.Errorf("base page CSS must not be added when template has styles: %q", got)
		}
		// the template's own styles survive
		if !strings.Contains(got, "body { color: red; }") {
			t.Errorf("existing style lost: %q", got)
		}
	})
}

func TestInjectStyleInsertionFallbacks(t *testing.T) {
	inj := &styleInjection{}

	t.Run("after body when no head", func(t *testing.T) {
		got := inj.InjectStyle(context.Background(), `<body class="a">x</body>`, "")
		if !strings.Contains(got, `<body class="a"><style>`) {
			t.Errorf("style not inserted after body tag: %q", got)
		}
	})

	t.Run("prepended when no head or body", func(t *testing.T) {
		got := inj.InjectStyle(context.Background(), "<p>bare</p>", "")
		if !strings.HasPrefix(got, "<style>") {
			t.Errorf("style not prepended: %q", got)
		}
	})
}

func TestInjectStyleCanceledContext(t *testing.T) {
	inj := &styleInjection{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	htmlContent := "<html><head></head></html>"
	if got := inj.InjectStyle(ctx, htmlContent, ""); got != htmlContent {
		t.Errorf("canceled context must leave content unchanged")
	}
}

func TestFileURL(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{path: "/usr/share/fonts/a.ttf", want: "file:///usr/share/fonts/a.ttf"},
		{path: `C:\Windows\Fonts\arial.ttf`, want: "file:///C:/Windows/Fonts/arial.ttf"},
	}
	for _, tt := range tests {
		if got := fileURL(tt.path); got != tt.want {
			t.Errorf("fileURL(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestSanitizeCSS(t *testing.T) {
	got := sanitizeCSS(`a { } </style><script>`)
	if strings.Contains(got, "</style>") {
		t.Errorf("close tag not escaped: %q", got)
	}
}
