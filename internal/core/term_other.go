//go:build !linux && !darwin && !dragonfly && !freebsd && !netbsd && !openbsd && !windows

package core

import "golang.org/x/term"

func isTerminal(fd int) bool {
	return term.IsTerminal(fd)
}
