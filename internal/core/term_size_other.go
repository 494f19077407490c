//go:build !unix && !windows

package core

import "errors"

// GetTerminalSize always returns an error on this platform.
func GetTerminalSize() (TerminalSize, error) {
	return TerminalSize{}, errors.New("terminal size is not supported on this platform")
}
