// ABOUTME: Linux termios ioctl request numbers for ProcessTerminal.
// ABOUTME: TCGETS/TCSETS read and write the tty settings immediately.

//go:build linux

package terminal

import "golang.org/x/sys/unix"

const (
	ioctlReadTermios  = unix.TCGETS
	ioctlWriteTermios = unix.TCSETS
)
