// ABOUTME: BSD and macOS termios ioctl request numbers for ProcessTerminal.
// ABOUTME: TIOCGETA/TIOCSETA read and write the tty settings immediately.

//go:build darwin || dragonfly || freebsd || netbsd || openbsd

package terminal

import "golang.org/x/sys/unix"

const (
	ioctlReadTermios  = unix.TIOCGETA
	ioctlWriteTermios = unix.TIOCSETA
)
