//go:build windows

package core

import (
	"os"

	"golang.org/x/sys/windows"
)

// GetTerminalSize returns the size of the console attached to stdout, or an
// error if unavailable.
func GetTerminalSize() (TerminalSize, error) {
	var info windows.ConsoleScreenBufferInfo
	handle := windows.Handle(os.Stdout.Fd())
	if err := windows.GetConsoleScreenBufferInfo(handle, &info); err != nil {
		return TerminalSize{}, err
	}
	return TerminalSize{
		Cols: int(info.Window.Right - info.Window.Left + 1),
		Rows: int(info.Window.Bottom - info.Window.Top + 1),
	}, nil
}
