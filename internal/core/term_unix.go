//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package core

import "golang.org/x/sys/unix"

func isTerminal(fd int) bool {
	_, err := unix.IoctlGetTermios(fd, ioctlReadTermios)
	return err == nil
}
