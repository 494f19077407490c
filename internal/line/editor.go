package line

import (
	"context"
	"errors"
	"io"
	"log/slog"
)

// ErrInterrupted is returned by ReadLine when the user presses Ctrl+C.
var ErrInterrupted = errors.New("interrupted")

// Device is a terminal that lines can be read from.
type Device interface {
	io.Reader
	io.Writer

	// MakeRaw puts the device into raw mode and returns a function that
	// restores the previous mode.
	MakeRaw() (restore func() error, err error)
}

// Clipboard is implemented by devices that can read the system clipboard.
type Clipboard interface {
	ReadClipboard() (string, error)
}

// Editor reads single lines of input from a Device.
//
// An Editor is not safe for concurrent use. Only one ReadLine may be active
// on a Device at a time.
type Editor struct {
	Prompt    string
	Mask      rune // glyph echoed in masked mode; '*' when zero
	Overwrite bool // start reads in overwrite mode
	Validator Validator
	Completer Completer
	History   *History
	Logger    *slog.Logger

	dev  Device
	keys *keyReader
}

// NewEditor returns an Editor reading from dev with the default validator.
func NewEditor(dev Device) *Editor {
	return &Editor{
		Mask:      '*',
		Validator: DefaultValidator,
		dev:       dev,
		keys:      newKeyReader(dev),
	}
}

// ReadLine writes the prompt followed by initial and blocks until the user
// commits the line with Enter, returning its contents.
//
// In masked mode every rune is echoed as the mask glyph, history and
// completion are disabled, and the line is never appended to History. The
// returned text must be moved into a secret container by the caller.
//
// ReadLine returns ErrInterrupted on Ctrl+C and io.EOF on Ctrl+D with an
// empty line. The context is checked between key presses only.
func (e *Editor) ReadLine(ctx context.Context, masked bool, initial string) (string, error) {
	log := e.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	restore, err := e.dev.MakeRaw()
	if err != nil {
		return "", err
	}
	defer restore()

	st := e.newState(masked, log)
	if masked {
		defer st.buf.wipe()
	}

	st.buf.setText(initial)
	if _, err := io.WriteString(e.dev, e.Prompt+st.glyphs(st.buf.buf)); err != nil {
		return "", err
	}

	caret := CaretDefault
	defer func() {
		if caret != CaretDefault {
			e.setCaret(log, CaretDefault)
		}
	}()
	if st.mode.Overwrite() {
		caret = st.mode.caret()
		e.setCaret(log, caret)
	}

	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		ev, err := e.keys.next()
		if err != nil {
			return "", err
		}
		log.Debug("key", "key", ev.Key, "mode", st.mode)

		events := []Event{ev}
		if ev.Key == KeyPaste {
			events = append(events, e.paste(log)...)
		}

		for _, ev := range events {
			fx, out := st.step(ev)
			if err := e.apply(log, fx, &caret); err != nil {
				return "", err
			}

			switch out {
			case outcomeCommit:
				text := st.buf.text()
				if !masked && e.History != nil {
					e.History.Append(text)
				}
				return text, nil
			case outcomeInterrupt:
				return "", ErrInterrupted
			case outcomeEOF:
				return "", io.EOF
			}
		}
	}
}

func (e *Editor) newState(masked bool, log *slog.Logger) *state {
	mask := e.Mask
	if mask == 0 {
		mask = '*'
	}
	valid := e.Validator
	if valid == nil {
		valid = DefaultValidator
	}

	st := &state{
		mode:    modeFor(masked, e.Overwrite),
		mask:    string(mask),
		valid:   valid,
		history: e.History,
		hist:    e.History.Len(),
	}
	if e.Completer != nil {
		st.complete = func(line string, pos int) Completion {
			return safeComplete(e.Completer, log, line, pos)
		}
	}
	return st
}

// apply writes the effects of one key press to the device. Caret changes
// are written separately and their failures are ignored.
func (e *Editor) apply(log *slog.Logger, fx []Effect, caret *CaretShape) error {
	for _, eff := range fx {
		if eff.Op == OpCaret {
			*caret = eff.Caret
			e.setCaret(log, eff.Caret)
		}
	}
	s := render(fx)
	if s == "" {
		return nil
	}
	_, err := io.WriteString(e.dev, s)
	return err
}

func (e *Editor) setCaret(log *slog.Logger, shape CaretShape) {
	eff := Effect{Op: OpCaret, Caret: shape}
	if _, err := io.WriteString(e.dev, eff.sequence()); err != nil {
		log.Debug("unable to set caret shape", "error", err)
	}
}

// paste returns the clipboard contents as rune events.
func (e *Editor) paste(log *slog.Logger) []Event {
	cb, ok := e.dev.(Clipboard)
	if !ok {
		return nil
	}
	text, err := cb.ReadClipboard()
	if err != nil {
		log.Debug("unable to read clipboard", "error", err)
		return nil
	}
	events := make([]Event, 0, len(text))
	for _, r := range text {
		events = append(events, RuneEvent(r))
	}
	return events
}
