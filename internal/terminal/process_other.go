// ABOUTME: Stub ProcessTerminal methods for platforms without termios.
// ABOUTME: Sampling needs a unix tty; everything here reports ErrNotTerminal.

//go:build !(linux || darwin || dragonfly || freebsd || netbsd || openbsd)

package terminal

import (
	"fmt"
	"runtime"
	"time"
)

// EnterRawMode is unsupported outside unix.
func (t *ProcessTerminal) EnterRawMode() error {
	return fmt.Errorf("%s: %w", runtime.GOOS, ErrNotTerminal)
}

// Ready is unsupported outside unix.
func (t *ProcessTerminal) Ready(_ time.Duration) (bool, error) {
	return false, fmt.Errorf("%s: %w", runtime.GOOS, ErrNotTerminal)
}
