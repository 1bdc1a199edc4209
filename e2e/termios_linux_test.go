// ABOUTME: Linux termios read request used to inspect the pty after keywave exits.
// ABOUTME: Lets e2e tests check that canonical mode was restored.

//go:build linux

package e2e

import "golang.org/x/sys/unix"

const ioctlReadTermios = unix.TCGETS
