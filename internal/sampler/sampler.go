// ABOUTME: Sampling loop: once per window, poll the terminal, drain pending input, record a 0/1 line.
// ABOUTME: A window is a hit when the target key appears anywhere in the bytes read for it.

package sampler

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/mauromedda/keywave/internal/keys"
	kwlog "github.com/mauromedda/keywave/internal/log"
)

const (
	// DefaultWindow is the length of one sampling window.
	DefaultWindow = time.Second

	// MaxCharsPerWindow bounds how much input one window captures. With
	// key repeat maxed out a keyboard does not get near 100 bytes/s.
	MaxCharsPerWindow = 100

	// TargetKey is the space bar.
	TargetKey byte = ' '
)

const (
	hitLine  = "1\n"
	missLine = "0\n"
)

// ErrInvalidConfig is wrapped by every Config validation failure.
var ErrInvalidConfig = errors.New("invalid sampler config")

// Input is the part of a terminal the loop reads from.
type Input interface {
	Ready(timeout time.Duration) (bool, error)
	Read(p []byte) (n int, err error)
}

// Config controls a sampling run.
type Config struct {
	Samples   int
	Window    time.Duration
	MaxBytes  int
	TargetKey byte
}

// DefaultConfig returns the standard one-second, space-bar configuration.
func DefaultConfig(samples int) Config {
	return Config{
		Samples:   samples,
		Window:    DefaultWindow,
		MaxBytes:  MaxCharsPerWindow,
		TargetKey: TargetKey,
	}
}

// Validate reports whether the config can drive a run.
func (c Config) Validate() error {
	switch {
	case c.Samples < 0:
		return fmt.Errorf("%w: negative sample count %d", ErrInvalidConfig, c.Samples)
	case c.Window <= 0:
		return fmt.Errorf("%w: window must be positive, got %s", ErrInvalidConfig, c.Window)
	case c.MaxBytes <= 0:
		return fmt.Errorf("%w: max bytes must be positive, got %d", ErrInvalidConfig, c.MaxBytes)
	}
	return nil
}

// Stats summarizes a run.
type Stats struct {
	Windows int
	Hits    int
}

// Option customizes a Sampler.
type Option func(*Sampler)

// WithClock replaces the wall clock.
func WithClock(c Clock) Option {
	return func(s *Sampler) { s.clock = c }
}

// Sampler records one binary sample per window. It is not safe for
// concurrent use; a run owns its input for its whole duration.
type Sampler struct {
	cfg   Config
	in    Input
	clock Clock
	buf   []byte
}

// New validates cfg and returns a Sampler reading from in.
func New(cfg Config, in Input, opts ...Option) (*Sampler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s := &Sampler{
		cfg:   cfg,
		in:    in,
		clock: SystemClock,
		buf:   make([]byte, cfg.MaxBytes),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Run samples cfg.Samples windows, writing one line per window to out.
// It stops early when ctx is cancelled and returns ctx.Err() along with
// the stats of the windows already written.
func (s *Sampler) Run(ctx context.Context, out io.Writer) (Stats, error) {
	var stats Stats
	if s.cfg.Samples == 0 {
		return stats, nil
	}

	ticker := s.clock.NewTicker(s.cfg.Window)
	defer ticker.Stop()

	for remaining := s.cfg.Samples; remaining > 0; remaining-- {
		select {
		case <-ctx.Done():
			return stats, ctx.Err()
		case <-ticker.C():
		}

		hit, captured, err := s.sample()
		if err != nil {
			return stats, err
		}

		line := missLine
		if hit {
			line = hitLine
		}
		if _, err := io.WriteString(out, line); err != nil {
			return stats, fmt.Errorf("writing sample %d: %w", stats.Windows+1, err)
		}

		stats.Windows++
		if hit {
			stats.Hits++
		}
		if kwlog.GetLevel() <= kwlog.LevelDebug {
			kwlog.Debug("window %d/%d: hit=%t bytes=%d keys=[%s]",
				stats.Windows, s.cfg.Samples, hit, len(captured), keys.Describe(captured))
		}
	}
	return stats, nil
}

// sample performs one zero-timeout poll and, if input is pending, a
// single bounded read. It reports whether the target key was seen and
// the bytes consumed, which alias the reused buffer.
func (s *Sampler) sample() (hit bool, captured []byte, err error) {
	ready, err := s.in.Ready(0)
	if err != nil {
		return false, nil, fmt.Errorf("polling terminal input: %w", err)
	}
	if !ready {
		return false, nil, nil
	}

	clear(s.buf)
	n, err := s.in.Read(s.buf)
	if err != nil {
		return false, nil, fmt.Errorf("reading terminal input: %w", err)
	}
	captured = s.buf[:n]
	return Detect(captured, s.cfg.TargetKey), captured, nil
}

// Detect reports whether target occurs in buf, scanning front to back.
func Detect(buf []byte, target byte) bool {
	return bytes.IndexByte(buf, target) >= 0
}
