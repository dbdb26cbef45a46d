package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dkosarev/go-invoice2pdf/internal/fileutil"
	"github.com/dkosarev/go-invoice2pdf/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
)

// Config holds all configuration for the CLI.
type Config struct {
	Dirs     DirsConfig     `yaml:"dirs"`
	Selector SelectorConfig `yaml:"selector"`
	Render   RenderConfig   `yaml:"render"`
	Viewer   ViewerConfig   `yaml:"viewer"`
}

// DirsConfig defines the directories scanned for inputs and outputs.
type DirsConfig struct {
	Data      string `yaml:"data"`      // Directory scanned for CSV/JSON files
	Templates string `yaml:"templates"` // Directory scanned for HTML templates
	Output    string `yaml:"output"`    // Directory for generated files
}

// SelectorConfig defines record selection options.
type SelectorConfig struct {
	// Aliases is the ordered list of field names recognized as the
	// invoice id. Empty = built-in defaults.
	Aliases []string `yaml:"aliases"`
}

// RenderConfig defines template rendering options.
type RenderConfig struct {
	Fallback string `yaml:"fallback"` // Value for placeholders missing from the record
	Timeout  string `yaml:"timeout"`  // PDF generation timeout, e.g. "30s"
}

// ViewerConfig defines system viewer options.
type ViewerConfig struct {
	Open bool `yaml:"open"` // Open the generated PDF after writing
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Dirs:   DirsConfig{Data: "data", Templates: "templates", Output: "output"},
		Viewer: ViewerConfig{Open: true},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if isFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	// Unmarshal over the defaults so absent sections keep their default
	// values (notably viewer.open).
	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	return cfg, nil
}

// isFilePath returns true if the string looks like a file path.
func isFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/go-invoice2pdf/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "go-invoice2pdf", name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
