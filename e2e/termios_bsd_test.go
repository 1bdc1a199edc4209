// ABOUTME: BSD and macOS termios read request used to inspect the pty after keywave exits.
// ABOUTME: Lets e2e tests check that canonical mode was restored.

//go:build darwin || dragonfly || freebsd || netbsd || openbsd

package e2e

import "golang.org/x/sys/unix"

const ioctlReadTermios = unix.TIOCGETA
