//go:build unix

package core

import (
	"os"

	"golang.org/x/sys/unix"
)

// GetTerminalSize returns the size of the terminal attached to stdout, or an
// error if unavailable.
func GetTerminalSize() (TerminalSize, error) {
	ws, err := unix.IoctlGetWinsize(int(os.Stdout.Fd()), unix.TIOCGWINSZ)
	if err != nil {
		return TerminalSize{}, err
	}
	return TerminalSize{Cols: int(ws.Col), Rows: int(ws.Row)}, nil
}
