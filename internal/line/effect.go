package line

import (
	"strconv"
	"strings"
)

// Op identifies a terminal operation.
type Op uint8

const (
	OpWrite      Op = iota // Write Text at the caret, advancing it
	OpLeft                 // Move the caret Cols columns left
	OpRight                // Move the caret Cols columns right
	OpClearToEnd           // Erase from the caret to the end of the row
	OpCaret                // Change the caret shape (cosmetic)
)

// CaretShape is the shape the terminal draws the caret with.
type CaretShape uint8

const (
	CaretDefault CaretShape = 0
	CaretBlock   CaretShape = 2
)

// Effect is a single terminal operation produced by a key press. Effects
// are applied in order and never batched across key presses.
type Effect struct {
	Op    Op
	Text  string
	Cols  int
	Caret CaretShape
}

// effects accumulates the terminal operations for one key press.
type effects []Effect

func (fx *effects) write(s string) {
	if s == "" {
		return
	}
	*fx = append(*fx, Effect{Op: OpWrite, Text: s})
}

func (fx *effects) left(cols int) {
	if cols <= 0 {
		return
	}
	*fx = append(*fx, Effect{Op: OpLeft, Cols: cols})
}

func (fx *effects) right(cols int) {
	if cols <= 0 {
		return
	}
	*fx = append(*fx, Effect{Op: OpRight, Cols: cols})
}

func (fx *effects) clearToEnd() {
	*fx = append(*fx, Effect{Op: OpClearToEnd})
}

func (fx *effects) caret(shape CaretShape) {
	*fx = append(*fx, Effect{Op: OpCaret, Caret: shape})
}

// sequence returns the ANSI escape sequence for a single effect.
func (e Effect) sequence() string {
	switch e.Op {
	case OpWrite:
		return e.Text
	case OpLeft:
		return "\x1b[" + strconv.Itoa(e.Cols) + "D"
	case OpRight:
		return "\x1b[" + strconv.Itoa(e.Cols) + "C"
	case OpClearToEnd:
		return "\x1b[K"
	case OpCaret:
		return "\x1b[" + strconv.Itoa(int(e.Caret)) + " q"
	}
	return ""
}

// render returns the bytes for a list of effects, leaving out caret changes.
func render(fx []Effect) string {
	var sb strings.Builder
	for _, e := range fx {
		if e.Op == OpCaret {
			continue
		}
		sb.WriteString(e.sequence())
	}
	return sb.String()
}
