package line

import (
	"slices"
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
)

// Validator reports whether a typed rune may be inserted into the line.
type Validator func(r rune) bool

// DefaultValidator accepts every rune that is not a control character.
func DefaultValidator(r rune) bool {
	return !unicode.IsControl(r)
}

type outcome uint8

const (
	outcomeNone outcome = iota
	outcomeCommit
	outcomeInterrupt
	outcomeEOF
)

// state is everything a single read needs to process a key press. The step
// method performs no I/O: it mutates the state and returns the terminal
// operations that bring the screen in line with it.
type state struct {
	buf      buffer
	mode     Mode
	mask     string
	valid    Validator
	history  *History
	complete func(line string, pos int) Completion

	hist int // history cursor; history.Len() means "newest"
	comp completion
}

func (s *state) step(ev Event) ([]Effect, outcome) {
	var fx effects

	// Any key other than Tab/Shift+Tab ends the candidate cycle, and any
	// key other than Up/Down returns the history cursor to the newest.
	if ev.Key != KeyTab && ev.Key != KeyBacktab {
		s.comp.reset()
	}
	if ev.Key != KeyUp && ev.Key != KeyDown {
		s.hist = s.history.Len()
	}

	masked := s.mode.Masked()
	switch ev.Key {
	case KeyRune:
		s.typeRune(&fx, ev.Rune)
	case KeyEnter:
		fx.write("\r\n")
		return fx, outcomeCommit
	case KeyInterrupt:
		fx.write("^C\r\n")
		return fx, outcomeInterrupt
	case KeyEOF:
		if s.buf.len() == 0 {
			fx.write("\r\n")
			return fx, outcomeEOF
		}
	case KeyLeft:
		if r, ok := s.buf.moveLeft(); ok {
			fx.left(s.width(r))
		}
	case KeyRight:
		if r, ok := s.buf.moveRight(); ok {
			fx.right(s.width(r))
		}
	case KeyHome:
		fx.left(s.cols(s.buf.head()))
		s.buf.home()
	case KeyEnd:
		fx.right(s.cols(s.buf.tail()))
		s.buf.end()
	case KeyBackspace:
		if r, ok := s.buf.backspace(); ok {
			fx.left(s.width(r))
			s.redrawTail(&fx, true)
		}
	case KeyDelete:
		if _, ok := s.buf.delete(); ok {
			s.redrawTail(&fx, true)
		}
	case KeyInsert:
		s.mode = s.mode.toggle()
		fx.caret(s.mode.caret())
	case KeyClear:
		s.replaceLine(&fx, "")
	case KeyDeleteWord:
		if !masked {
			s.deleteWord(&fx)
		}
	case KeyUp:
		if !masked {
			s.historyPrev(&fx)
		}
	case KeyDown:
		if !masked {
			s.historyNext(&fx)
		}
	case KeyTab:
		if !masked {
			s.cycle(&fx, false)
		}
	case KeyBacktab:
		if !masked {
			s.cycle(&fx, true)
		}
	}
	return fx, outcomeNone
}

func (s *state) typeRune(fx *effects, r rune) {
	if s.valid != nil && !s.valid(r) {
		return
	}

	if s.mode.Overwrite() {
		old, replaced := s.buf.overwrite(r)
		fx.write(s.glyphs([]rune{r}))
		if replaced && s.width(old) != s.width(r) {
			s.redrawTail(fx, true)
		}
		return
	}

	s.buf.insert(r)
	fx.write(s.glyphs([]rune{r}))
	s.redrawTail(fx, false)
}

// redrawTail rewrites the runes after the caret and moves the caret back.
// When erase is set, leftover cells from a longer previous line are cleared.
func (s *state) redrawTail(fx *effects, erase bool) {
	tail := s.buf.tail()
	fx.write(s.glyphs(tail))
	if erase {
		fx.clearToEnd()
	}
	fx.left(s.cols(tail))
}

// replaceLine erases the input and draws text in its place, leaving the
// caret at the end.
func (s *state) replaceLine(fx *effects, text string) {
	fx.left(s.cols(s.buf.head()))
	fx.clearToEnd()
	s.buf.setText(text)
	fx.write(s.glyphs(s.buf.buf))
}

func (s *state) deleteWord(fx *effects) {
	head := slices.Clone(s.buf.head())
	n := s.buf.deleteWord()
	if n == 0 {
		return
	}
	fx.left(s.cols(head[len(head)-n:]))
	s.redrawTail(fx, true)
}

func (s *state) historyPrev(fx *effects) {
	if s.hist <= 0 {
		return
	}
	s.hist--
	s.replaceLine(fx, s.history.At(s.hist))
}

func (s *state) historyNext(fx *effects) {
	n := s.history.Len()
	if s.hist >= n {
		return
	}
	s.hist++
	if s.hist == n {
		s.replaceLine(fx, "")
		return
	}
	s.replaceLine(fx, s.history.At(s.hist))
}

// cycle selects the next (or previous) completion candidate, requesting
// candidates first when no cycle is active.
func (s *state) cycle(fx *effects, backward bool) {
	if !s.comp.active() {
		if s.complete == nil {
			return
		}
		c := s.complete(s.buf.text(), s.buf.pos-1)
		if len(c.Candidates) == 0 {
			return
		}
		remove := s.buf.len()
		if c.Consumed > 0 {
			remove = s.buf.len() - c.Consumed
		}
		s.comp = completion{
			candidates: c.Candidates,
			remove:     min(max(remove, 0), s.buf.len()),
		}
	}

	n := len(s.comp.candidates)
	idx := s.comp.next
	if backward {
		idx = (s.comp.next + n - 2) % n
		if idx < 0 {
			idx += n
		}
	}
	candidate := s.comp.candidates[idx]
	s.comp.next = (idx + 1) % n

	s.splice(fx, candidate)
}

// splice replaces the last comp.remove runes of the line with candidate.
func (s *state) splice(fx *effects, candidate string) {
	start := s.buf.len() - s.comp.remove
	if s.buf.pos > start {
		fx.left(s.cols(s.buf.buf[start:s.buf.pos]))
	} else {
		fx.right(s.cols(s.buf.buf[s.buf.pos:start]))
	}
	fx.clearToEnd()

	s.buf.truncateTail(s.comp.remove)
	s.buf.appendText(candidate)
	fx.write(s.glyphs([]rune(candidate)))
	s.comp.remove = len([]rune(candidate))
}

// width returns the number of columns r occupies on screen.
func (s *state) width(r rune) int {
	if s.mode.Masked() {
		return runewidth.StringWidth(s.mask)
	}
	return runewidth.RuneWidth(r)
}

func (s *state) cols(rs []rune) int {
	if s.mode.Masked() {
		return len(rs) * runewidth.StringWidth(s.mask)
	}
	var n int
	for _, r := range rs {
		n += runewidth.RuneWidth(r)
	}
	return n
}

// glyphs returns the text drawn for rs.
func (s *state) glyphs(rs []rune) string {
	if s.mode.Masked() {
		return strings.Repeat(s.mask, len(rs))
	}
	return string(rs)
}
