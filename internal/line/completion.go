package line

import (
	"fmt"
	"log/slog"
)

// Completion is the result of a completion request.
//
// Candidates must already be quoted (see token.Quote) so that they parse
// back as a single token. Consumed is the splice anchor: the rune offset in
// the line at which the text being completed begins. The editor replaces
// the last len(line)-Consumed runes with each candidate in turn; when
// Consumed is zero or negative, the whole line is replaced.
type Completion struct {
	Candidates []string
	Consumed   int
}

// Completer returns the completions for line, where pos is the offset of the
// rune immediately before the caret (-1 for an empty line).
type Completer func(line string, pos int) (Completion, error)

// completion is the active candidate cycle of a single read.
type completion struct {
	candidates []string
	next       int // index of the candidate the next Tab selects
	remove     int // trailing runes replaced by the next selection
}

func (c *completion) active() bool {
	return len(c.candidates) > 0
}

func (c *completion) reset() {
	*c = completion{}
}

// safeComplete invokes fn, treating an error or panic as no candidates.
func safeComplete(fn Completer, log *slog.Logger, line string, pos int) (out Completion) {
	if fn == nil {
		return Completion{}
	}
	defer func() {
		if r := recover(); r != nil {
			log.Debug("completion provider panicked", "panic", fmt.Sprint(r))
			out = Completion{}
		}
	}()

	c, err := fn(line, pos)
	if err != nil {
		log.Debug("completion provider failed", "error", err)
		return Completion{}
	}
	return c
}
