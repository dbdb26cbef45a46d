package invoice2pdf

import (
	"context"
	"fmt"
	"time"
)

// defaultTimeout is used when no timeout is specified.
const defaultTimeout = 30 * time.Second

// serviceConfig holds internal configuration for Service.
type serviceConfig struct {
	timeout  time.Duration
	aliases  []string
	fallback string
}

// Option configures a Service.
type Option func(*Service)

// WithTimeout sets the PDF generation timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("invoice2pdf: WithTimeout duration must be positive")
	}
	return func(s *Service) {
		s.cfg.timeout = d
	}
}

// WithAliases sets the ordered list of field names recognized as the
// invoice id, replacing DefaultInvoiceAliases.
func WithAliases(aliases ...string) Option {
	return func(s *Service) {
		s.cfg.aliases = aliases
	}
}

// WithFallback sets the value substituted for placeholders missing from
// the selected record. Default is the empty string.
func WithFallback(fallback string) Option {
	return func(s *Service) {
		s.cfg.fallback = fallback
	}
}

// WithFontResolver replaces the platform font lookup.
func WithFontResolver(r FontResolver) Option {
	return func(s *Service) {
		s.fonts = r
	}
}

// RenderRequest contains generation parameters.
type RenderRequest struct {
	Records   []Record // Loaded records (required)
	InvoiceID string   // Id of the record to render (required)
	Template  string   // HTML template content (required)
	HTMLOnly  bool     // Skip PDF generation, return HTML only
}

// Result holds the output of a generation run.
type Result struct {
	PDF           []byte   // PDF bytes (nil when HTMLOnly)
	HTML          string   // Final HTML after substitution and style injection
	Record        Record   // The selected record
	MissingFields []string // Placeholder names absent from the record
}

// Service orchestrates the record-to-PDF pipeline.
type Service struct {
	cfg      serviceConfig
	selector *Selector
	renderer *Renderer
	injector styleInjector
	fonts    FontResolver
	pdf      pdfConverter
}

// New creates a Service with default configuration.
// Use options to customize behavior (e.g., WithTimeout, WithAliases).
func New(opts ...Option) *Service {
	s := &Service{
		cfg: serviceConfig{
			timeout: defaultTimeout,
			aliases: DefaultInvoiceAliases,
		},
		injector: &styleInjection{},
		fonts:    systemFontResolver{},
	}

	for _, opt := range opts {
		opt(s)
	}

	s.selector = NewSelector(s.cfg.aliases...)
	s.renderer = &Renderer{Fallback: s.cfg.fallback}

	// Create PDF converter if not injected (e.g., by tests)
	if s.pdf == nil {
		s.pdf = newRodConverter(s.cfg.timeout)
	}

	return s
}

// Generate runs the full pipeline: select the record, substitute it into
// the template, inject styling, and render the PDF.
// The context is used for cancellation and timeout.
func (s *Service) Generate(ctx context.Context, req RenderRequest) (*Result, error) {
	if req.Template == "" {
		return nil, ErrEmptyTemplate
	}

	record, err := s.selector.Find(req.Records, req.InvoiceID)
	if err != nil {
		return nil, err
	}

	rendered, missing := s.renderer.Render(req.Template, buildTemplateData(record))
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	htmlContent := s.injector.InjectStyle(ctx, rendered, s.fonts.Resolve())

	result := &Result{
		HTML:          htmlContent,
		Record:        record,
		MissingFields: missing,
	}

	if req.HTMLOnly {
		return result, nil
	}

	pdfBytes, err := s.pdf.ToPDF(ctx, htmlContent)
	if err != nil {
		return nil, fmt.Errorf("converting to PDF: %w", err)
	}
	result.PDF = pdfBytes

	return result, nil
}

// Close releases resources (headless Chrome browser).
func (s *Service) Close() error {
	if s.pdf != nil {
		return s.pdf.Close()
	}
	return nil
}
