package line

// buffer is the in-memory contents of the line being edited.
// It operates purely on rune data with no terminal I/O. A backing array is
// zeroed whenever the buffer moves off it, so edits leave no stale copies of
// the line behind.
type buffer struct {
	buf []rune
	pos int // cursor position (0..len(buf))
}

func (b *buffer) len() int {
	return len(b.buf)
}

// grow makes room for n more runes, moving to a larger array if needed.
func (b *buffer) grow(n int) {
	if len(b.buf)+n <= cap(b.buf) {
		return
	}
	next := make([]rune, len(b.buf), max(2*cap(b.buf), len(b.buf)+n, 16))
	copy(next, b.buf)
	clear(b.buf[:cap(b.buf)])
	b.buf = next
}

func (b *buffer) insert(r rune) {
	b.grow(1)
	b.buf = append(b.buf, 0)
	copy(b.buf[b.pos+1:], b.buf[b.pos:])
	b.buf[b.pos] = r
	b.pos++
}

// overwrite replaces the rune under the cursor, or appends when the cursor
// is at the end. It returns the replaced rune, if any.
func (b *buffer) overwrite(r rune) (rune, bool) {
	if b.pos >= len(b.buf) {
		b.grow(1)
		b.buf = append(b.buf, r)
		b.pos++
		return 0, false
	}
	old := b.buf[b.pos]
	b.buf[b.pos] = r
	b.pos++
	return old, true
}

func (b *buffer) backspace() (rune, bool) {
	if b.pos == 0 {
		return 0, false
	}
	b.pos--
	r := b.buf[b.pos]
	b.cut(b.pos, b.pos+1)
	return r, true
}

func (b *buffer) delete() (rune, bool) {
	if b.pos >= len(b.buf) {
		return 0, false
	}
	r := b.buf[b.pos]
	b.cut(b.pos, b.pos+1)
	return r, true
}

// cut removes the runes in [i, j) and zeroes the cells freed at the end.
func (b *buffer) cut(i, j int) {
	n := len(b.buf)
	b.buf = append(b.buf[:i], b.buf[j:]...)
	clear(b.buf[len(b.buf):n])
}

func (b *buffer) moveLeft() (rune, bool) {
	if b.pos == 0 {
		return 0, false
	}
	b.pos--
	return b.buf[b.pos], true
}

func (b *buffer) moveRight() (rune, bool) {
	if b.pos >= len(b.buf) {
		return 0, false
	}
	b.pos++
	return b.buf[b.pos-1], true
}

func (b *buffer) home() {
	b.pos = 0
}

func (b *buffer) end() {
	b.pos = len(b.buf)
}

// deleteWord removes the word before the cursor along with any spaces
// between it and the cursor, returning the number of runes removed.
func (b *buffer) deleteWord() int {
	start := b.pos
	for start > 0 && b.buf[start-1] == ' ' {
		start--
	}
	for start > 0 && b.buf[start-1] != ' ' {
		start--
	}
	n := b.pos - start
	b.cut(start, b.pos)
	b.pos = start
	return n
}

// truncateTail removes the last n runes of the buffer and places the cursor
// at the new end.
func (b *buffer) truncateTail(n int) {
	n = min(max(n, 0), len(b.buf))
	b.cut(len(b.buf)-n, len(b.buf))
	b.pos = len(b.buf)
}

// appendText adds s to the end of the buffer and places the cursor after it.
func (b *buffer) appendText(s string) {
	rs := []rune(s)
	b.grow(len(rs))
	b.buf = append(b.buf, rs...)
	b.pos = len(b.buf)
}

// clear empties the buffer. Removed runes are zeroed.
func (b *buffer) clear() {
	clear(b.buf[:cap(b.buf)])
	b.buf = b.buf[:0]
	b.pos = 0
}

// wipe clears the buffer once a masked read is over, so the input does not
// linger in memory after it has been handed to the caller.
func (b *buffer) wipe() {
	b.clear()
}

func (b *buffer) text() string {
	return string(b.buf)
}

func (b *buffer) setText(s string) {
	b.clear()
	b.appendText(s)
}

// head returns the runes before the cursor.
func (b *buffer) head() []rune {
	return b.buf[:b.pos]
}

// tail returns the runes from the cursor to the end of the line.
func (b *buffer) tail() []rune {
	return b.buf[b.pos:]
}
