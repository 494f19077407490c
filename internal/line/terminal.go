package line

import (
	"io"
	"os"

	"github.com/atotto/clipboard"
	"github.com/mattn/go-colorable"
	"golang.org/x/term"
)

// Terminal is the Device for the process's standard input and output.
type Terminal struct {
	in  *os.File
	out io.Writer
}

// NewTerminal returns a Terminal reading stdin and writing stdout. On
// Windows, output goes through an ANSI-translating writer.
func NewTerminal() *Terminal {
	return &Terminal{in: os.Stdin, out: colorable.NewColorableStdout()}
}

func (t *Terminal) Read(p []byte) (int, error) {
	return t.in.Read(p)
}

func (t *Terminal) Write(p []byte) (int, error) {
	return t.out.Write(p)
}

// MakeRaw puts stdin into raw mode.
func (t *Terminal) MakeRaw() (func() error, error) {
	fd := int(t.in.Fd())
	saved, err := term.MakeRaw(fd)
	if err != nil {
		return nil, err
	}
	return func() error {
		return term.Restore(fd, saved)
	}, nil
}

// ReadClipboard returns the text contents of the system clipboard.
func (t *Terminal) ReadClipboard() (string, error) {
	return clipboard.ReadAll()
}

// IsTerminal returns true if stdin is attached to a terminal.
func (t *Terminal) IsTerminal() bool {
	return term.IsTerminal(int(t.in.Fd()))
}
