// ABOUTME: Scoped terminal mode helpers: Acquire/release, panic restore, and signal cancellation.
// ABOUTME: Guarantees the original terminal mode comes back on every exit path of main.

package terminal

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"sync"
	"syscall"
)

// Acquire switches t into raw mode and returns a release func that
// restores it. Release is safe to call more than once; only the first
// call touches the terminal.
func Acquire(t Terminal) (release func() error, err error) {
	if err := t.EnterRawMode(); err != nil {
		return nil, err
	}

	var once sync.Once
	var exitErr error
	return func() error {
		once.Do(func() { exitErr = t.ExitRawMode() })
		return exitErr
	}, nil
}

// RestoreOnPanic should be deferred at the top of main. On panic it
// exits raw mode via the provided Terminal, prints the panic value and
// stack trace, then exits with code 1.
func RestoreOnPanic(t Terminal) {
	r := recover()
	if r == nil {
		return
	}

	_ = t.ExitRawMode()

	fmt.Fprintf(os.Stderr, "\npanic: %v\n\n%s\n", r, debug.Stack())
	os.Exit(1)
}

// SignalContext returns a context cancelled on SIGINT, SIGTERM or
// SIGHUP. The caller's deferred release then restores the terminal
// before the process exits. stop must be called to unregister.
func SignalContext(parent context.Context) (ctx context.Context, stop context.CancelFunc) {
	return signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
}
