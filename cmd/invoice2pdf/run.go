package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	invoice2pdf "github.com/dkosarev/go-invoice2pdf"
	"github.com/dkosarev/go-invoice2pdf/internal/fileutil"
)

// Sentinel errors for CLI operations.
var (
	ErrReadTemplate = errors.New("failed to read template file")
	ErrWriteOutput  = errors.New("failed to write output file")
)

// generator is the interface for the generation service.
type generator interface {
	Generate(ctx context.Context, req invoice2pdf.RenderRequest) (*invoice2pdf.Result, error)
}

// runDeps bundles the collaborators of run so tests can replace them.
type runDeps struct {
	service generator
	prompt  PromptDriver
	open    func(path string) error
	stderr  io.Writer
}

// run drives the full flow: resolve inputs (flags or interactive menus),
// load records, generate the document, write it, and open the viewer.
func run(ctx context.Context, flags *cliFlags, cfg *Config, deps runDeps) error {
	dataPath, err := resolveDataFile(flags, cfg, deps.prompt)
	if err != nil {
		return err
	}

	records, err := invoice2pdf.LoadRecords(dataPath)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return fmt.Errorf("%w: %s", ErrNoRecords, dataPath)
	}
	if !flags.quiet {
		fmt.Fprintf(deps.stderr, "Loaded %d record(s) from %s\n", len(records), filepath.Base(dataPath))
	}

	templatePath, err := resolveTemplateFile(flags, cfg, deps.prompt)
	if err != nil {
		return err
	}
	templateHTML, err := os.ReadFile(templatePath) // #nosec G304 -- template path is user-provided
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReadTemplate, err)
	}

	selector := invoice2pdf.NewSelector(cfg.Selector.Aliases...)
	invoiceID, err := resolveInvoiceID(flags, selector, records, deps.prompt)
	if err != nil {
		return err
	}
	if flags.verbose {
		fmt.Fprintf(deps.stderr, "Generating document for invoice #%s\n", invoiceID)
	}

	result, err := deps.service.Generate(ctx, invoice2pdf.RenderRequest{
		Records:   records,
		InvoiceID: invoiceID,
		Template:  string(templateHTML),
		HTMLOnly:  flags.htmlOnly,
	})
	if err != nil {
		return err
	}

	if len(result.MissingFields) > 0 && !flags.quiet {
		fmt.Fprintf(deps.stderr, "Warning: template placeholders missing from record: %s\n",
			strings.Join(result.MissingFields, ", "))
	}
	if flags.verbose {
		fmt.Fprintf(deps.stderr, "Record fields: %s\n", strings.Join(fieldNames(result.Record), ", "))
	}

	outputPath := resolveOutputPath(flags, cfg, invoiceID)
	payload := result.PDF
	if flags.htmlOnly {
		payload = []byte(result.HTML)
	}
	if err := fileutil.WriteFileReplace(outputPath, payload); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	if !flags.quiet {
		fmt.Fprintf(deps.stderr, "Created %s\n", outputPath)
	}

	if cfg.Viewer.Open && !flags.noOpen && !flags.htmlOnly {
		// Best-effort: a missing viewer never fails the pipeline.
		if err := deps.open(outputPath); err != nil {
			fmt.Fprintf(deps.stderr, "Could not open %s: %v\n", outputPath, err)
		}
	}

	return nil
}

// resolveDataFile returns the data file from flags, or prompts over the
// files discovered in the data directory.
func resolveDataFile(flags *cliFlags, cfg *Config, prompt PromptDriver) (string, error) {
	if flags.dataPath != "" {
		return flags.dataPath, nil
	}

	dir := flags.dataDir
	if dir == "" {
		dir = cfg.Dirs.Data
	}
	files, err := listDataFiles(dir)
	if err != nil {
		return "", err
	}

	options := make([]string, len(files))
	for i, f := range files {
		format := strings.ToUpper(strings.TrimPrefix(filepath.Ext(f), "."))
		options[i] = fmt.Sprintf("%s (%s)", filepath.Base(f), format)
	}
	idx, err := prompt.Select("Select data file", options)
	if err != nil {
		return "", err
	}
	return files[idx], nil
}

// resolveTemplateFile returns the template from flags, or prompts over the
// files discovered in the template directory.
func resolveTemplateFile(flags *cliFlags, cfg *Config, prompt PromptDriver) (string, error) {
	if flags.templatePath != "" {
		return flags.templatePath, nil
	}

	dir := flags.templateDir
	if dir == "" {
		dir = cfg.Dirs.Templates
	}
	files, err := listTemplateFiles(dir)
	if err != nil {
		return "", err
	}

	options := make([]string, len(files))
	for i, f := range files {
		options[i] = filepath.Base(f)
	}
	idx, err := prompt.Select("Select HTML template", options)
	if err != nil {
		return "", err
	}
	return files[idx], nil
}

// resolveInvoiceID returns the invoice id from flags, or prompts over the
// ids found in the loaded records.
func resolveInvoiceID(flags *cliFlags, selector *invoice2pdf.Selector, records []invoice2pdf.Record, prompt PromptDriver) (string, error) {
	if flags.invoiceID != "" {
		return flags.invoiceID, nil
	}

	ids := selector.IDs(records)
	if len(ids) == 0 {
		return "", ErrNoInvoiceIDs
	}

	options := make([]string, len(ids))
	for i, id := range ids {
		options[i] = "Invoice #" + id
	}
	idx, err := prompt.Select("Select invoice", options)
	if err != nil {
		return "", err
	}
	return ids[idx], nil
}

// resolveOutputPath determines where the generated file is written.
func resolveOutputPath(flags *cliFlags, cfg *Config, invoiceID string) string {
	if flags.output != "" {
		return flags.output
	}

	dir := flags.outputDir
	if dir == "" {
		dir = cfg.Dirs.Output
	}
	ext := ".pdf"
	if flags.htmlOnly {
		ext = ".html"
	}
	return defaultOutputPath(dir, invoiceID, ext)
}

// fieldNames returns the sorted field names of a record.
func fieldNames(rec invoice2pdf.Record) []string {
	names := make([]string, 0, len(rec))
	for name := range rec {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
