package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"go.uber.org/automaxprocs/maxprocs"

	invoice2pdf "github.com/dkosarev/go-invoice2pdf"
)

// Version is set at build time via ldflags.
var Version = "dev"

// ErrInvalidTimeout reports a timeout value that is not a positive duration.
var ErrInvalidTimeout = errors.New("invalid timeout")

func main() {
	flags, _, err := parseFlags(os.Args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(ExitUsage)
	}

	if flags.version {
		fmt.Println("invoice2pdf " + Version)
		os.Exit(ExitSuccess)
	}

	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	if flags.verbose {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}))
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
	}

	cfg := DefaultConfig()
	if flags.config != "" {
		cfg, err = LoadConfig(flags.config)
		if err != nil {
			fail(err)
		}
	}

	opts, err := serviceOptions(flags, cfg)
	if err != nil {
		fail(err)
	}

	svc := invoice2pdf.New(opts...)
	defer svc.Close()

	deps := runDeps{
		service: svc,
		prompt:  surveyDriver{},
		open:    openFile,
		stderr:  os.Stderr,
	}

	if err := run(context.Background(), flags, cfg, deps); err != nil {
		if errors.Is(err, ErrPromptAborted) {
			fmt.Fprintln(os.Stderr, "Aborted.")
			return
		}
		_ = svc.Close()
		fail(err)
	}
}

// fail reports the error and exits with the matching code.
func fail(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(exitCodeFor(err))
}

// serviceOptions translates flags and config into service options.
// Flags win over config values.
func serviceOptions(flags *cliFlags, cfg *Config) ([]invoice2pdf.Option, error) {
	var opts []invoice2pdf.Option

	timeout := flags.timeout
	if timeout == "" {
		timeout = cfg.Render.Timeout
	}
	if timeout != "" {
		d, err := time.ParseDuration(timeout)
		if err != nil || d <= 0 {
			return nil, fmt.Errorf("%w: %q", ErrInvalidTimeout, timeout)
		}
		opts = append(opts, invoice2pdf.WithTimeout(d))
	}

	if len(cfg.Selector.Aliases) > 0 {
		opts = append(opts, invoice2pdf.WithAliases(cfg.Selector.Aliases...))
	}

	fallback := flags.fallback
	if fallback == "" {
		fallback = cfg.Render.Fallback
	}
	if fallback != "" {
		opts = append(opts, invoice2pdf.WithFallback(fallback))
	}

	return opts, nil
}
