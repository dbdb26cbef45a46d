package main

import (
	"errors"
	"os"

	invoice2pdf "github.com/dkosarev/go-invoice2pdf"
)

// Exit codes for the invoice2pdf CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Document generated
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or input data
	ExitIO      = 3 // File not found, permission denied
	ExitBrowser = 4 // Browser/Chrome errors
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Browser errors (exit 4)
	if errors.Is(err, invoice2pdf.ErrBrowserConnect) ||
		errors.Is(err, invoice2pdf.ErrPageCreate) ||
		errors.Is(err, invoice2pdf.ErrPageLoad) ||
		errors.Is(err, invoice2pdf.ErrPDFGeneration) {
		return ExitBrowser
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadTemplate) ||
		errors.Is(err, ErrWriteOutput) ||
		errors.Is(err, ErrNoDataFiles) ||
		errors.Is(err, ErrNoTemplates) {
		return ExitIO
	}

	// Usage/config/data errors (exit 2)
	if errors.Is(err, ErrConfigNotFound) ||
		errors.Is(err, ErrConfigParse) ||
		errors.Is(err, ErrEmptyConfigName) ||
		errors.Is(err, ErrInvalidTimeout) ||
		errors.Is(err, ErrNoRecords) ||
		errors.Is(err, ErrNoInvoiceIDs) ||
		errors.Is(err, invoice2pdf.ErrUnsupportedFormat) ||
		errors.Is(err, invoice2pdf.ErrMalformedData) ||
		errors.Is(err, invoice2pdf.ErrEmptyTemplate) ||
		errors.Is(err, invoice2pdf.ErrEmptyInvoiceID) ||
		errors.Is(err, invoice2pdf.ErrRecordNotFound) {
		return ExitUsage
	}

	return ExitGeneral
}
