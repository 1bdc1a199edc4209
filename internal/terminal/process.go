// ABOUTME: ProcessTerminal implements Terminal on a tty file using golang.org/x/term and x/sys/unix.
// ABOUTME: Snapshots the original mode with x/term and edits termios directly for non-canonical input.

package terminal

import (
	"fmt"
	"os"
	"sync"

	"golang.org/x/term"
)

// ProcessTerminal is a real terminal backed by a tty file, usually os.Stdin.
type ProcessTerminal struct {
	mu       sync.Mutex
	f        *os.File
	fd       int
	oldState *term.State
}

// NewProcessTerminal wraps f, failing with ErrNotTerminal when f is not a tty.
func NewProcessTerminal(f *os.File) (*ProcessTerminal, error) {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return nil, fmt.Errorf("%s: %w", f.Name(), ErrNotTerminal)
	}
	return &ProcessTerminal{f: f, fd: fd}, nil
}

// ExitRawMode restores the terminal to the state saved by EnterRawMode.
func (t *ProcessTerminal) ExitRawMode() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.oldState == nil {
		return nil
	}
	if err := term.Restore(t.fd, t.oldState); err != nil {
		return fmt.Errorf("exiting raw mode: %w", err)
	}
	t.oldState = nil
	return nil
}

// Read performs a single read of whatever input is pending, up to len(p).
func (t *ProcessTerminal) Read(p []byte) (int, error) {
	n, err := t.f.Read(p)
	if err != nil {
		return n, fmt.Errorf("reading %s: %w", t.f.Name(), err)
	}
	return n, nil
}
