package invoice2pdf

import "errors"

// Sentinel errors for library operations.
var (
	// Data loading errors.
	ErrUnsupportedFormat = errors.New("unsupported data format")
	ErrMalformedData     = errors.New("malformed data file")

	// Record selection errors.
	ErrEmptyInvoiceID = errors.New("invoice id cannot be empty")
	ErrRecordNotFound = errors.New("no record matches the invoice id")

	// Template errors.
	ErrEmptyTemplate = errors.New("template content cannot be empty")

	// PDF rendering errors.
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")
	ErrPDFGeneration  = errors.New("PDF generation failed")
)
