// ABOUTME: E2E harness: builds the keywave binary once and runs it on a real pseudo-terminal
// ABOUTME: Keeps the tty side open in the test so terminal modes can be inspected after exit

//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package e2e

import (
	"bytes"
	"errors"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"sync"
	"syscall"
	"testing"
	"time"

	"github.com/creack/pty"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sys/unix"
)

var (
	buildOnce sync.Once
	binPath   string
	buildErr  error
)

// binary returns the path of a freshly built keywave executable.
func binary(t *testing.T) string {
	t.Helper()

	buildOnce.Do(func() {
		dir, err := os.MkdirTemp("", "keywave-e2e-")
		if err != nil {
			buildErr = err
			return
		}
		binPath = filepath.Join(dir, "keywave")

		_, file, _, _ := runtime.Caller(0)
		root := filepath.Dir(filepath.Dir(file))

		cmd := exec.Command("go", "build", "-o", binPath, "./cmd/keywave")
		cmd.Dir = root
		if out, err := cmd.CombinedOutput(); err != nil {
			buildErr = errors.New(string(out))
		}
	})
	if buildErr != nil {
		t.Fatalf("building keywave: %v", buildErr)
	}
	return binPath
}

func skipShort(t *testing.T) {
	t.Helper()
	if testing.Short() {
		t.Skip("e2e tests skipped in short mode")
	}
}

// session is a keywave process attached to a pty as its controlling terminal.
type session struct {
	cmd  *exec.Cmd
	ptmx *os.File
	tty  *os.File
	g    errgroup.Group
}

// startOnPTY starts keywave with args, stdin/stdout/stderr on a new pty.
func startOnPTY(t *testing.T, args ...string) *session {
	t.Helper()
	return startOnPTYIn(t, "", args...)
}

// startOnPTYIn is startOnPTY with the working directory set to dir.
func startOnPTYIn(t *testing.T, dir string, args ...string) *session {
	t.Helper()

	ptmx, tty, err := pty.Open()
	if err != nil {
		t.Skipf("pty unavailable: %v", err)
	}

	s := &session{ptmx: ptmx, tty: tty}
	s.cmd = exec.Command(binary(t), args...)
	s.cmd.Dir = dir
	s.cmd.Stdin = tty
	s.cmd.Stdout = tty
	s.cmd.Stderr = tty
	s.cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true, Setctty: true}

	if err := s.cmd.Start(); err != nil {
		_ = tty.Close()
		_ = ptmx.Close()
		t.Fatalf("starting keywave: %v", err)
	}

	// Drain echoed input and log output so the pty never fills up.
	// Reads fail once the pty is closed; that is the normal end.
	s.g.Go(func() error {
		_, _ = io.Copy(io.Discard, ptmx)
		return nil
	})

	t.Cleanup(func() {
		if s.cmd.ProcessState == nil {
			_ = s.cmd.Process.Kill()
			_ = s.cmd.Wait()
		}
		_ = tty.Close()
		_ = ptmx.Close()
		_ = s.g.Wait()
	})
	return s
}

// sendAfter writes keystrokes after delay from the returned errgroup.
func (s *session) sendAfter(delay time.Duration, keys string) {
	s.g.Go(func() error {
		time.Sleep(delay)
		_, err := s.ptmx.Write([]byte(keys))
		return err
	})
}

// waitExit waits for the process and returns its exit code.
func (s *session) waitExit(t *testing.T, timeout time.Duration) int {
	t.Helper()

	done := make(chan error, 1)
	go func() { done <- s.cmd.Wait() }()

	select {
	case err := <-done:
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode()
		}
		if err != nil {
			t.Fatalf("waiting for keywave: %v", err)
		}
		return 0
	case <-time.After(timeout):
		_ = s.cmd.Process.Kill()
		t.Fatalf("keywave did not exit within %s", timeout)
		return -1
	}
}

// canonical reports whether the pty is back in canonical input mode.
func (s *session) canonical(t *testing.T) bool {
	t.Helper()

	tio, err := unix.IoctlGetTermios(int(s.tty.Fd()), ioctlReadTermios)
	if err != nil {
		t.Fatalf("reading termios: %v", err)
	}
	return tio.Lflag&unix.ICANON != 0
}

// runPlain runs keywave without a terminal and returns its exit code and stderr.
func runPlain(t *testing.T, stdin io.Reader, args ...string) (int, string) {
	t.Helper()

	var stderr bytes.Buffer
	cmd := exec.Command(binary(t), args...)
	cmd.Stdin = stdin
	cmd.Stderr = &stderr

	err := cmd.Run()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), stderr.String()
	}
	if err != nil {
		t.Fatalf("running keywave: %v", err)
	}
	return 0, stderr.String()
}
