// Package invoice2pdf renders invoice records into PDF documents using
// headless Chrome.
//
// # Quick Start
//
// Create a service, generate a document, and close when done:
//
//	svc := invoice2pdf.New()
//	defer svc.Close()
//
//	records, err := invoice2pdf.LoadRecords("data/invoices.csv")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := svc.Generate(ctx, invoice2pdf.RenderRequest{
//	    Records:   records,
//	    InvoiceID: "1007",
//	    Template:  templateHTML,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("output/invoice_1007.pdf", result.PDF, 0644)
//
// The result contains both the PDF bytes (result.PDF) and the final HTML
// (result.HTML) for debugging. Use RenderRequest.HTMLOnly to skip PDF
// generation.
//
// # Generation Pipeline
//
// The generation process follows these stages:
//
//  1. Record selection by invoice id (configurable field aliases)
//  2. Placeholder substitution ({field} syntax, {{ and }} escapes)
//  3. Style injection (Cyrillic-capable font, A4 page setup)
//  4. PDF rendering via headless Chrome (go-rod)
//
// # Configuration
//
// Use functional options to customize the service:
//
//	svc := invoice2pdf.New(
//	    invoice2pdf.WithTimeout(2 * time.Minute),
//	    invoice2pdf.WithAliases("receipt_id", "id"),
//	    invoice2pdf.WithFallback("-"),
//	)
//
// # Templates
//
// Templates are plain HTML files. A {field} placeholder is replaced by the
// matching record value; {{ and }} emit literal braces so CSS rules can
// coexist with placeholders. Fields missing from the record render as the
// configured fallback (empty by default) and are reported in
// Result.MissingFields.
//
// # Browser Requirements
//
// PDF generation requires Chrome/Chromium. The go-rod library automatically
// downloads a managed Chromium instance on first run (~/.cache/rod/browser/).
//
// For containers and CI environments, set ROD_NO_SANDBOX=1 to disable the
// Chrome sandbox. Use ROD_BROWSER_BIN to specify a custom Chrome binary.
package invoice2pdf
