package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Sentinel errors for file discovery.
var (
	ErrNoDataFiles  = errors.New("no data files found")
	ErrNoTemplates  = errors.New("no HTML templates found")
	ErrNoInvoiceIDs = errors.New("no invoice ids found in data")
	ErrNoRecords    = errors.New("data file contains no records")
)

// listDataFiles returns the sorted .csv and .json files in dir.
func listDataFiles(dir string) ([]string, error) {
	files, err := listByExtension(dir, ".csv", ".json")
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoDataFiles, dir)
	}
	return files, nil
}

// listTemplateFiles returns the sorted .html files in dir.
func listTemplateFiles(dir string) ([]string, error) {
	files, err := listByExtension(dir, ".html")
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoTemplates, dir)
	}
	return files, nil
}

// listByExtension lists regular files in dir matching one of the given
// extensions (case-insensitive). A missing directory yields an empty list.
func listByExtension(dir string, extensions ...string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("scanning %s: %w", dir, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		for _, want := range extensions {
			if ext == want {
				files = append(files, filepath.Join(dir, entry.Name()))
				break
			}
		}
	}
	sort.Strings(files)
	return files, nil
}

// defaultOutputPath builds the output path for an invoice id.
func defaultOutputPath(outputDir, invoiceID, ext string) string {
	return filepath.Join(outputDir, "invoice_"+sanitizeFilename(invoiceID)+ext)
}

// sanitizeFilename replaces characters that are unsafe in file names.
func sanitizeFilename(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			return '-'
		}
		return r
	}, s)
}
