// ABOUTME: CLI entry point for keywave with terminal restore on every exit path
// ABOUTME: Parses args, checks for a tty, creates the wave file, and runs the sampler

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	kwlog "github.com/mauromedda/keywave/internal/log"
	"github.com/mauromedda/keywave/internal/sampler"
	"github.com/mauromedda/keywave/internal/terminal"
)

// Set at build time, e.g. -ldflags "-X main.logLevel=debug". The CLI
// itself takes no flags.
var (
	version  = "dev"
	logLevel = "info"
)

const (
	exitOK          = 0
	exitFailure     = 1
	exitUsage       = 2
	exitInterrupted = 130
)

func main() {
	args, err := parseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(parseExitStatus(err))
	}

	os.Exit(exitCode(run(args)))
}

// run wires the real terminal to the sampler. The tty check happens
// before the output file is touched.
func run(args cliArgs) error {
	applyLogLevel(logLevel)
	kwlog.Debug("keywave %s", version)

	ctx, stop := terminal.SignalContext(context.Background())
	defer stop()

	tty, err := terminal.NewProcessTerminal(os.Stdin)
	if err != nil {
		return err
	}
	defer terminal.RestoreOnPanic(tty)

	return record(ctx, tty, args.output, sampler.DefaultConfig(args.samples))
}

// applyLogLevel sets the logger from the build-time level name.
// Unknown names leave the default in place.
func applyLogLevel(name string) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(name)); err != nil {
		kwlog.Warn("ignoring build log level %q: %v", name, err)
		return
	}
	kwlog.SetLevel(l)
}

// parseExitStatus maps an argument error to a process status.
func parseExitStatus(err error) int {
	if errors.Is(err, errInvalidCount) {
		return exitFailure
	}
	return exitUsage
}

// exitCode maps a run error to a process status, reporting it on stderr.
func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, context.Canceled):
		kwlog.Warn("interrupted; wave file holds the windows recorded so far")
		return exitInterrupted
	default:
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return exitFailure
	}
}
