package core

import (
	"bytes"
	"io"
	"os"

	"github.com/mattn/go-colorable"
)

// Sequence is an SGR parameter, such as a color or text attribute.
type Sequence string

const (
	reset Sequence = "0"

	Bold      Sequence = "1"
	Dim       Sequence = "2"
	Italic    Sequence = "3"
	Underline Sequence = "4"

	Red     Sequence = "31"
	Green   Sequence = "32"
	Yellow  Sequence = "33"
	Blue    Sequence = "34"
	Magenta Sequence = "35"
	Cyan    Sequence = "36"
	Default Sequence = "39"
)

// PrinterTo is implemented by errors that render themselves with styling.
type PrinterTo interface {
	PrintTo(*Printer)
}

// Handle holds the Printers for stderr and stdout.
type Handle struct {
	stderr *Printer
	stdout *Printer
}

// NewHandle returns a Handle for the color setting c. Output goes through
// colorable writers, which translate ANSI sequences on legacy Windows
// consoles.
func NewHandle(c Color) *Handle {
	return &Handle{
		stderr: NewPrinter(colorable.NewColorable(os.Stderr), useColor(c, IsStderrTerm)),
		stdout: NewPrinter(colorable.NewColorable(os.Stdout), useColor(c, IsStdoutTerm)),
	}
}

func (h *Handle) Stderr() *Printer {
	return h.stderr
}

func (h *Handle) Stdout() *Printer {
	return h.stdout
}

// useColor resolves c for an output; auto (or unset) follows isTerm.
func useColor(c Color, isTerm bool) bool {
	switch c {
	case ColorOn:
		return true
	case ColorOff:
		return false
	}
	return isTerm
}

// Printer buffers output, with styling that is dropped when color is
// disabled, until Flush writes it out.
type Printer struct {
	w        io.Writer
	buf      bytes.Buffer
	useColor bool
}

func NewPrinter(w io.Writer, useColor bool) *Printer {
	return &Printer{w: w, useColor: useColor}
}

// Set starts the provided styles, combined into a single escape sequence.
func (p *Printer) Set(seqs ...Sequence) {
	if !p.useColor || len(seqs) == 0 {
		return
	}
	p.buf.WriteString("\x1b[")
	for i, s := range seqs {
		if i > 0 {
			p.buf.WriteByte(';')
		}
		p.buf.WriteString(string(s))
	}
	p.buf.WriteByte('m')
}

// Reset ends all active styles.
func (p *Printer) Reset() {
	p.Set(reset)
}

// Flush writes the buffer to the underlying writer and empties it.
func (p *Printer) Flush() error {
	_, err := p.w.Write(p.buf.Bytes())
	p.buf.Reset()
	return err
}

// Discard empties the buffer without writing it.
func (p *Printer) Discard() {
	p.buf.Reset()
}

// Bytes returns the unflushed contents of the buffer.
func (p *Printer) Bytes() []byte {
	return p.buf.Bytes()
}

func (p *Printer) Write(b []byte) (int, error) {
	return p.buf.Write(b)
}

func (p *Printer) WriteString(s string) (int, error) {
	return p.buf.WriteString(s)
}

func (p *Printer) WriteRune(r rune) (int, error) {
	return p.buf.WriteRune(r)
}

// writeLabel writes a styled "label: " prefix.
func writeLabel(p *Printer, label string, color Sequence) {
	p.Set(color, Bold)
	p.WriteString(label)
	p.Reset()
	p.WriteString(": ")
}

// WriteErrorMsg writes err to the printer and flushes it.
func WriteErrorMsg(p *Printer, err error) {
	WriteErrorMsgNoFlush(p, err)
	p.Flush()
}

// WriteErrorMsgNoFlush writes err to the printer, using its PrintTo method
// when it has one.
func WriteErrorMsgNoFlush(p *Printer, err error) {
	writeLabel(p, "error", Red)
	if pt, ok := err.(PrinterTo); ok {
		pt.PrintTo(p)
	} else {
		p.WriteString(err.Error())
	}
	p.WriteString("\n")
}

func WriteWarningMsg(p *Printer, msg string) {
	writeLabel(p, "warning", Yellow)
	p.WriteString(msg + "\n")
	p.Flush()
}

func WriteInfoMsg(p *Printer, msg string) {
	writeLabel(p, "info", Green)
	p.WriteString(msg + "\n")
	p.Flush()
}
