package line

import (
	"io"
	"unicode/utf8"
)

const (
	readBufSize = 256
	maxCSILen   = 32
)

// decode parses a single key press from the start of buf, returning the
// event and the number of bytes consumed. It returns 0 bytes consumed when
// buf holds an incomplete escape sequence or UTF-8 encoding.
func decode(buf []byte) (Event, int) {
	if len(buf) == 0 {
		return Event{}, 0
	}

	b := buf[0]
	if b == 0x1b {
		return decodeEscape(buf)
	}

	switch b {
	case 0x0D: // Enter
		if len(buf) > 1 && buf[1] == 0x0A {
			return KeyEvent(KeyEnter), 2
		}
		return KeyEvent(KeyEnter), 1
	case 0x0A:
		return KeyEvent(KeyEnter), 1
	case 0x09:
		return KeyEvent(KeyTab), 1
	case 0x7F, 0x08: // Backspace
		return KeyEvent(KeyBackspace), 1
	case 0x01: // Ctrl+A
		return KeyEvent(KeyHome), 1
	case 0x02: // Ctrl+B
		return KeyEvent(KeyLeft), 1
	case 0x03: // Ctrl+C
		return KeyEvent(KeyInterrupt), 1
	case 0x04: // Ctrl+D
		return KeyEvent(KeyEOF), 1
	case 0x05: // Ctrl+E
		return KeyEvent(KeyEnd), 1
	case 0x06: // Ctrl+F
		return KeyEvent(KeyRight), 1
	case 0x0B: // Ctrl+K
		return KeyEvent(KeyClear), 1
	case 0x0E: // Ctrl+N
		return KeyEvent(KeyDown), 1
	case 0x10: // Ctrl+P
		return KeyEvent(KeyUp), 1
	case 0x16: // Ctrl+V
		return KeyEvent(KeyPaste), 1
	case 0x17: // Ctrl+W
		return KeyEvent(KeyDeleteWord), 1
	}

	if b < 0x20 {
		return KeyEvent(KeyUnknown), 1
	}

	r, size := utf8.DecodeRune(buf)
	if r == utf8.RuneError && size <= 1 {
		if !utf8.FullRune(buf) {
			return Event{}, 0
		}
		// Invalid encoding; skip the byte.
		return KeyEvent(KeyUnknown), 1
	}
	return RuneEvent(r), size
}

// decodeEscape parses an escape sequence starting at buf[0] == 0x1b.
//
// A lone ESC cannot be told apart from the start of a sequence whose
// remaining bytes have not arrived yet, so it stays pending until the next
// byte is read. Esc has no binding, and it is then dropped as KeyUnknown.
func decodeEscape(buf []byte) (Event, int) {
	if len(buf) < 2 {
		return Event{}, 0
	}

	switch buf[1] {
	case '[':
		return decodeCSI(buf)
	case 'O':
		// SS3, sent by terminals in application cursor mode.
		if len(buf) < 3 {
			return Event{}, 0
		}
		return KeyEvent(finalKey(buf[2])), 3
	}

	// Alt+key or a lone escape; drop the escape byte.
	return KeyEvent(KeyUnknown), 1
}

func decodeCSI(buf []byte) (Event, int) {
	for j := 2; j < len(buf); j++ {
		c := buf[j]
		if c >= 0x40 && c <= 0x7E {
			if c == '~' {
				return KeyEvent(tildeKey(buf[2:j])), j + 1
			}
			return KeyEvent(finalKey(c)), j + 1
		}
		if j >= maxCSILen {
			// Not a sequence we could ever understand.
			return KeyEvent(KeyUnknown), j + 1
		}
	}
	return Event{}, 0
}

// finalKey maps the final byte of a CSI or SS3 sequence to a Key. Any
// modifier parameters (e.g. "1;5" for Ctrl) are ignored.
func finalKey(c byte) Key {
	switch c {
	case 'A':
		return KeyUp
	case 'B':
		return KeyDown
	case 'C':
		return KeyRight
	case 'D':
		return KeyLeft
	case 'H':
		return KeyHome
	case 'F':
		return KeyEnd
	case 'Z':
		return KeyBacktab
	}
	return KeyUnknown
}

// tildeKey maps "ESC [ <n> ~" sequences to a Key.
func tildeKey(params []byte) Key {
	// Only the first parameter identifies the key.
	n := 0
	for _, c := range params {
		if c < '0' || c > '9' {
			break
		}
		n = n*10 + int(c-'0')
	}
	switch n {
	case 1, 7:
		return KeyHome
	case 2:
		return KeyInsert
	case 3:
		return KeyDelete
	case 4, 8:
		return KeyEnd
	}
	return KeyUnknown
}

// keyReader reads key presses from a raw terminal. Bytes read past the end
// of one key are kept for the next call, so typeahead survives between
// reads of separate lines.
type keyReader struct {
	r   io.Reader
	buf []byte
	tmp [readBufSize]byte
}

func newKeyReader(r io.Reader) *keyReader {
	return &keyReader{r: r, buf: make([]byte, 0, readBufSize)}
}

// next blocks until a full key press is available.
func (kr *keyReader) next() (Event, error) {
	for {
		if len(kr.buf) > 0 {
			ev, n := decode(kr.buf)
			if n > 0 {
				kr.buf = kr.buf[:copy(kr.buf, kr.buf[n:])]
				return ev, nil
			}
		}

		n, err := kr.r.Read(kr.tmp[:])
		if n > 0 {
			kr.buf = append(kr.buf, kr.tmp[:n]...)
			continue
		}
		if err != nil {
			return Event{}, err
		}
	}
}
