// ABOUTME: Records one wave file: truncates the output, holds the terminal in raw mode, runs the loop
// ABOUTME: Terminal mode and file handle are released by defer on every return path

package main

import (
	"context"
	"fmt"
	"os"

	kwlog "github.com/mauromedda/keywave/internal/log"
	"github.com/mauromedda/keywave/internal/sampler"
	"github.com/mauromedda/keywave/internal/terminal"
)

// record samples t into the file at path. Existing content is discarded.
func record(ctx context.Context, t terminal.Terminal, path string, cfg sampler.Config, opts ...sampler.Option) (err error) {
	s, err := sampler.New(cfg, t, opts...)
	if err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("cannot open output file %q: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", path, cerr)
		}
	}()

	release, err := terminal.Acquire(t)
	if err != nil {
		return err
	}
	defer func() {
		if rerr := release(); rerr != nil {
			kwlog.Warn("restoring terminal: %v", rerr)
		}
	}()

	kwlog.Debug("recording %d windows of %s into %s", cfg.Samples, cfg.Window, path)

	stats, err := s.Run(ctx, f)
	kwlog.Debug("recorded %d windows, %d hits", stats.Windows, stats.Hits)
	return err
}
