package token

import "strings"

// Kind identifies how a token was written on the command line.
type Kind int

const (
	Word Kind = iota
	String
)

func (k Kind) String() string {
	switch k {
	case Word:
		return "WORD"
	case String:
		return "STRING"
	default:
		return "UNKNOWN"
	}
}

// Token represents a single argument parsed from a command line.
//
// Start and End are rune offsets into the original line. Start is the offset
// of the first content rune (after an opening quote). End is the offset of
// the terminating delimiter, a space or the closing quote, or the length of
// the line when the token runs to the end of input.
type Token struct {
	Start int
	End   int
	Kind  Kind
	Text  string
}

// Parse splits the provided line into tokens. Single and double quotes group
// text containing spaces; only the quote character that opened a string can
// close it. Parse never fails: an unterminated string is returned as a
// String token holding the text read so far.
func Parse(line string) []Token {
	var tokens []Token
	var current strings.Builder
	var quote rune
	inString := false
	start := -1

	flush := func(end int, kind Kind) {
		tokens = append(tokens, Token{
			Start: start,
			End:   end,
			Kind:  kind,
			Text:  current.String(),
		})
		current.Reset()
		start = -1
	}

	var i int
	for _, c := range line {
		switch {
		case inString && c == quote:
			if start < 0 {
				// Empty pair of quotes.
				start = i
			}
			flush(i, String)
			inString = false

		case !inString && (c == '"' || c == '\''):
			inString = true
			quote = c

		case !inString && c == ' ':
			if start >= 0 {
				flush(i, Word)
			}

		default:
			if start < 0 {
				start = i
			}
			current.WriteRune(c)
		}
		i++
	}

	switch {
	case inString:
		if start < 0 {
			// Dangling opening quote with nothing after it.
			start = i
		}
		flush(i, String)
	case start >= 0:
		flush(i, Word)
	}

	return tokens
}

// Quote returns text in a form that Parse reads back as a single token with
// the same text. Text without spaces is returned unchanged; anything else is
// wrapped in single quotes.
func Quote(text string) string {
	if text == "" {
		return "''"
	}
	if !strings.ContainsRune(text, ' ') {
		return text
	}
	return "'" + text + "'"
}

// At returns the index of the token that contains or ends at the rune offset
// pos, or -1 if pos falls between tokens.
func At(tokens []Token, pos int) int {
	for i, t := range tokens {
		if pos >= t.Start && pos <= t.End {
			return i
		}
	}
	return -1
}
