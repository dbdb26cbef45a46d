package main

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Dirs.Data != "data" || cfg.Dirs.Templates != "templates" || cfg.Dirs.Output != "output" {
		t.Errorf("default dirs = %+v", cfg.Dirs)
	}
	if !cfg.Viewer.Open {
		t.Error("viewer must default to open")
	}
	if len(cfg.Selector.Aliases) != 0 {
		t.Errorf("default aliases = %v, want none (library defaults apply)", cfg.Selector.Aliases)
	}
}

func TestLoadConfig(t *testing.T) {
	path := writeConfigFile(t, `
dirs:
  data: /srv/invoices
selector:
  aliases: [receipt_no, id]
render:
  fallback: "-"
  timeout: 45s
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if cfg.Dirs.Data != "/srv/invoices" {
		t.Errorf("data dir = %q", cfg.Dirs.Data)
	}
	// unset sections keep their defaults
	if cfg.Dirs.Templates != "templates" {
		t.Errorf("templates dir = %q, want default", cfg.Dirs.Templates)
	}
	if !cfg.Viewer.Open {
		t.Error("viewer.open must keep its default when absent")
	}
	if !reflect.DeepEqual(cfg.Selector.Aliases, []string{"receipt_no", "id"}) {
		t.Errorf("aliases = %v", cfg.Selector.Aliases)
	}
	if cfg.Render.Fallback != "-" || cfg.Render.Timeout != "45s" {
		t.Errorf("render = %+v", cfg.Render)
	}
}

func TestLoadConfigViewerDisabled(t *testing.T) {
	path := writeConfigFile(t, "viewer:\n  open: false\n")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if cfg.Viewer.Open {
		t.Error("viewer.open = true, want false")
	}
}

func TestLoadConfigErrors(t *testing.T) {
	t.Run("empty name", func(t *testing.T) {
		if _, err := LoadConfig(""); !errors.Is(err, ErrEmptyConfigName) {
			t.Errorf("error = %v, want ErrEmptyConfigName", err)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nope.yaml")
		if _, err := LoadConfig(path); !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("error = %v, want ErrConfigNotFound", err)
		}
	})

	t.Run("unknown field", func(t *testing.T) {
		path := writeConfigFile(t, "bogus: true\n")
		if _, err := LoadConfig(path); !errors.Is(err, ErrConfigParse) {
			t.Errorf("error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("unresolvable name", func(t *testing.T) {
		if _, err := LoadConfig("no-such-config-name"); !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("error = %v, want ErrConfigNotFound", err)
		}
	})
}

func TestIsFilePath(t *testing.T) {
	if !isFilePath("dir/config.yaml") || !isFilePath(`dir\config.yaml`) {
		t.Error("paths with separators must be treated as file paths")
	}
	if isFilePath("production") {
		t.Error("bare names must be resolved, not treated as paths")
	}
}
