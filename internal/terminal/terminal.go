// ABOUTME: Defines the Terminal interface for sample mode, readiness polling, and input reads.
// ABOUTME: Abstracts the controlling terminal so the sampler can run against real or virtual input.

package terminal

import (
	"errors"
	"time"
)

// ErrNotTerminal is returned when the input is not an interactive terminal.
var ErrNotTerminal = errors.New("terminal not available")

// Terminal abstracts the terminal operations the sampler needs:
// switching into non-canonical input, restoring the original mode,
// checking readiness without blocking, and draining pending bytes.
type Terminal interface {
	EnterRawMode() error
	ExitRawMode() error
	Ready(timeout time.Duration) (bool, error)
	Read(p []byte) (n int, err error)
}
