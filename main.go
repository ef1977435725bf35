// Package main implements the main entry point for an 8-bit handheld CPU core runner
package main

import (
	"context"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/retroenv/gbcore/internal/cli"
	"github.com/retroenv/gbcore/internal/config"
	"github.com/retroenv/gbcore/internal/options"
	"github.com/retroenv/gbcore/internal/pipeline"
	"github.com/retroenv/retrogolib/app"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
	"golang.org/x/term"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	ctx := app.Context()

	opts, engineOpts, err := cli.ParseFlags()
	if err != nil {
		logger := config.CreateLogger(opts.Flags)
		var usageErr *cli.UsageError
		if errors.As(err, &usageErr) {
			printBanner(logger, opts)
			if usageErr.Error() != "" {
				logger.Error(usageErr.Error())
			}
			usageErr.ShowUsage()
		} else {
			logger.Fatal(err.Error())
		}
		os.Exit(1)
	}

	logger := config.CreateLogger(opts.Flags)
	printBanner(logger, opts)

	if err := run(ctx, logger, opts, engineOpts); err != nil {
		// Handle context cancellation (Ctrl+C) gracefully
		if errors.Is(err, context.Canceled) {
			logger.Info("Operation cancelled")
			return
		}
		logger.Error("Execution failed", log.Err(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *log.Logger, opts options.Program, engineOpts options.Engine) error {
	var out io.Writer = os.Stdout
	if opts.Step {
		restore, ok := enableRawMode(logger)
		if ok {
			defer restore()
			out = newlineWriter{os.Stdout}
		}
	}

	p := pipeline.New(logger)
	_, err := p.Execute(ctx, opts, engineOpts, os.Stdin, out)
	return err
}

// enableRawMode switches an interactive stdin to raw mode so that every key
// press is delivered without waiting for a newline.
func enableRawMode(logger *log.Logger) (func(), bool) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return nil, false
	}

	oldState, err := term.MakeRaw(fd)
	if err != nil {
		logger.Warn("Failed to set terminal raw mode", log.Err(err))
		return nil, false
	}
	return func() { _ = term.Restore(fd, oldState) }, true
}

// newlineWriter translates line feeds for a terminal in raw mode, which no
// longer returns the cursor to the start of the line.
type newlineWriter struct {
	w io.Writer
}

func (n newlineWriter) Write(p []byte) (int, error) {
	s := strings.ReplaceAll(string(p), "\n", "\r\n")
	if _, err := io.WriteString(n.w, s); err != nil {
		return 0, err
	}
	return len(p), nil
}

// printBanner prints application version information
func printBanner(logger *log.Logger, opts options.Program) {
	if opts.Quiet {
		return
	}
	logger.Info("gbcore", log.String("version", buildinfo.Version(version, commit, date)))
}
