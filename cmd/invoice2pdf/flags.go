package main

import (
	flag "github.com/spf13/pflag"
)

// cliFlags holds all flags for the invoice2pdf CLI.
type cliFlags struct {
	dataPath     string
	templatePath string
	invoiceID    string
	output       string

	dataDir     string
	templateDir string
	outputDir   string

	config   string
	timeout  string
	fallback string

	noOpen   bool
	htmlOnly bool
	quiet    bool
	verbose  bool
	version  bool
}

// parseFlags parses CLI flags and returns remaining positional args.
func parseFlags(args []string) (*cliFlags, []string, error) {
	fs := flag.NewFlagSet("invoice2pdf", flag.ContinueOnError)
	f := &cliFlags{}

	// Input selection (empty = interactive menu)
	fs.StringVar(&f.dataPath, "data", "", "data file (.csv or .json)")
	fs.StringVar(&f.templatePath, "template", "", "HTML template file")
	fs.StringVar(&f.invoiceID, "invoice", "", "invoice id to render")
	fs.StringVarP(&f.output, "output", "o", "", "output file (default: <output-dir>/invoice_<id>.pdf)")

	// Directories scanned for the interactive menus
	fs.StringVar(&f.dataDir, "data-dir", "", "directory scanned for data files")
	fs.StringVar(&f.templateDir, "template-dir", "", "directory scanned for HTML templates")
	fs.StringVar(&f.outputDir, "output-dir", "", "directory for generated files")

	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "PDF generation timeout (e.g., 30s, 2m)")
	fs.StringVar(&f.fallback, "fallback", "", "value substituted for fields missing from the record")

	fs.BoolVar(&f.noOpen, "no-open", false, "do not open the generated PDF in the system viewer")
	fs.BoolVar(&f.htmlOnly, "html-only", false, "output rendered HTML, skip PDF")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show record details")
	fs.BoolVar(&f.version, "version", false, "print version and exit")

	if err := fs.Parse(args[1:]); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
