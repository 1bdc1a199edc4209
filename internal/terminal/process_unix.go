// ABOUTME: Unix termios and poll(2) handling for ProcessTerminal.
// ABOUTME: Clears ICANON with VMIN=1 so reads return as soon as one byte is queued.

//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package terminal

import (
	"errors"
	"fmt"
	"time"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

var errInvalidDescriptor = errors.New("invalid descriptor")

// EnterRawMode saves the current terminal state and switches input to
// non-canonical mode. ECHO and ISIG are left alone so Ctrl+C still
// raises SIGINT. Calling it twice keeps the first snapshot.
func (t *ProcessTerminal) EnterRawMode() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.oldState != nil {
		return nil
	}

	state, err := term.GetState(t.fd)
	if err != nil {
		return fmt.Errorf("saving terminal state: %w", err)
	}

	tio, err := unix.IoctlGetTermios(t.fd, ioctlReadTermios)
	if err != nil {
		return fmt.Errorf("reading termios: %w", err)
	}
	tio.Lflag &^= unix.ICANON
	tio.Cc[unix.VMIN] = 1
	tio.Cc[unix.VTIME] = 0

	if err := unix.IoctlSetTermios(t.fd, ioctlWriteTermios, tio); err != nil {
		return fmt.Errorf("entering raw mode: %w", err)
	}
	t.oldState = state
	return nil
}

// Ready polls the terminal for pending input. A zero timeout returns
// immediately. Hangups and errors report ready so the following Read
// surfaces them. A closed descriptor is an error. An interrupted poll
// reports not ready.
func (t *ProcessTerminal) Ready(timeout time.Duration) (bool, error) {
	fds := []unix.PollFd{{Fd: int32(t.fd), Events: unix.POLLIN}}

	n, err := unix.Poll(fds, int(timeout/time.Millisecond))
	if errors.Is(err, unix.EINTR) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("polling %s: %w", t.f.Name(), err)
	}
	if n == 0 {
		return false, nil
	}
	if fds[0].Revents&unix.POLLNVAL != 0 {
		return false, fmt.Errorf("polling %s: %w", t.f.Name(), errInvalidDescriptor)
	}
	return fds[0].Revents&(unix.POLLIN|unix.POLLHUP|unix.POLLERR) != 0, nil
}
