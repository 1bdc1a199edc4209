// ABOUTME: VirtualTerminal implements Terminal for testing without a real TTY.
// ABOUTME: Queues fed input bytes and tracks raw-mode enter/exit calls.

package terminal

import (
	"io"
	"sync"
	"time"
)

// VirtualTerminal is a fake Terminal for unit tests. Bytes passed to
// Feed stay pending until a Read drains them, like a tty input queue.
type VirtualTerminal struct {
	mu         sync.Mutex
	pending    []byte
	readErr    error
	pollErr    error
	rawMode    bool
	enterCount int
	exitCount  int
	readCount  int
}

// NewVirtualTerminal returns an empty VirtualTerminal.
func NewVirtualTerminal() *VirtualTerminal {
	return &VirtualTerminal{}
}

// EnterRawMode records a raw-mode entry.
func (v *VirtualTerminal) EnterRawMode() error {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.rawMode = true
	v.enterCount++
	return nil
}

// ExitRawMode records a raw-mode exit.
func (v *VirtualTerminal) ExitRawMode() error {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.rawMode = false
	v.exitCount++
	return nil
}

// Ready reports whether input is pending. It never waits.
func (v *VirtualTerminal) Ready(_ time.Duration) (bool, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.pollErr != nil {
		return false, v.pollErr
	}
	return len(v.pending) > 0 || v.readErr != nil, nil
}

// Read drains up to len(p) pending bytes. With nothing pending it
// returns the configured read error, or io.EOF.
func (v *VirtualTerminal) Read(p []byte) (int, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.readCount++
	if len(v.pending) == 0 {
		if v.readErr != nil {
			return 0, v.readErr
		}
		return 0, io.EOF
	}
	n := copy(p, v.pending)
	v.pending = v.pending[n:]
	return n, nil
}

// --- Test helpers (not part of Terminal interface) ---

// Feed queues input as if typed on the keyboard.
func (v *VirtualTerminal) Feed(p []byte) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.pending = append(v.pending, p...)
}

// FailReads makes Ready report input and Read return err once the
// pending queue is empty.
func (v *VirtualTerminal) FailReads(err error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.readErr = err
}

// FailPolls makes Ready return err.
func (v *VirtualTerminal) FailPolls(err error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.pollErr = err
}

// Pending returns the number of bytes not yet read.
func (v *VirtualTerminal) Pending() int {
	v.mu.Lock()
	defer v.mu.Unlock()

	return len(v.pending)
}

// IsRawMode reports whether raw mode is currently active.
func (v *VirtualTerminal) IsRawMode() bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.rawMode
}

// EnterCount returns how many times EnterRawMode was called.
func (v *VirtualTerminal) EnterCount() int {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.enterCount
}

// ExitCount returns how many times ExitRawMode was called.
func (v *VirtualTerminal) ExitCount() int {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.exitCount
}

// ReadCount returns how many times Read was called.
func (v *VirtualTerminal) ReadCount() int {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.readCount
}
