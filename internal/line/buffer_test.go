package line

import "testing"

func newBuffer(s string) *buffer {
	b := &buffer{}
	b.setText(s)
	return b
}

func TestBufferInsert(t *testing.T) {
	b := &buffer{}
	b.insert('h')
	b.insert('i')
	if got := b.text(); got != "hi" {
		t.Fatalf("expected %q, got %q", "hi", got)
	}
	if b.pos != 2 {
		t.Fatalf("expected pos 2, got %d", b.pos)
	}

	b.home()
	b.insert('>')
	if got := b.text(); got != ">hi" {
		t.Fatalf("expected %q, got %q", ">hi", got)
	}
	if b.pos != 1 {
		t.Fatalf("expected pos 1, got %d", b.pos)
	}
}

func TestBufferOverwrite(t *testing.T) {
	b := newBuffer("abc")
	b.home()

	old, ok := b.overwrite('x')
	if !ok || old != 'a' {
		t.Fatalf("expected to replace 'a', got %q (%t)", old, ok)
	}
	if got := b.text(); got != "xbc" {
		t.Fatalf("expected %q, got %q", "xbc", got)
	}

	b.end()
	if _, ok := b.overwrite('d'); ok {
		t.Fatal("overwrite at end should append")
	}
	if got := b.text(); got != "xbcd" {
		t.Fatalf("expected %q, got %q", "xbcd", got)
	}
}

func TestBufferBackspace(t *testing.T) {
	b := newBuffer("abc")
	r, ok := b.backspace()
	if !ok || r != 'c' {
		t.Fatalf("expected to remove 'c', got %q (%t)", r, ok)
	}
	if got := b.text(); got != "ab" {
		t.Fatalf("expected %q, got %q", "ab", got)
	}

	b.home()
	if _, ok := b.backspace(); ok {
		t.Fatal("backspace at 0 should return false")
	}
}

func TestBufferDelete(t *testing.T) {
	b := newBuffer("abc")
	b.home()
	if _, ok := b.delete(); !ok {
		t.Fatal("delete should return true")
	}
	if got := b.text(); got != "bc" {
		t.Fatalf("expected %q, got %q", "bc", got)
	}

	b.end()
	if _, ok := b.delete(); ok {
		t.Fatal("delete at end should return false")
	}
}

func TestBufferMovement(t *testing.T) {
	b := newBuffer("abc")

	if _, ok := b.moveRight(); ok {
		t.Fatal("moveRight at end should return false")
	}
	if r, ok := b.moveLeft(); !ok || r != 'c' {
		t.Fatalf("expected to move over 'c', got %q (%t)", r, ok)
	}
	b.home()
	if _, ok := b.moveLeft(); ok {
		t.Fatal("moveLeft at 0 should return false")
	}
	if r, ok := b.moveRight(); !ok || r != 'a' {
		t.Fatalf("expected to move over 'a', got %q (%t)", r, ok)
	}
}

func TestBufferDeleteWord(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		pos     int
		want    string
		removed int
	}{
		{name: "single word", text: "hello", pos: 5, want: "", removed: 5},
		{name: "last word", text: "open my file", pos: 12, want: "open my ", removed: 4},
		{name: "trailing spaces", text: "open my  ", pos: 9, want: "open ", removed: 4},
		{name: "middle", text: "open my file", pos: 7, want: "open  file", removed: 2},
		{name: "at start", text: "open", pos: 0, want: "open", removed: 0},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			b := newBuffer(test.text)
			b.pos = test.pos
			if n := b.deleteWord(); n != test.removed {
				t.Fatalf("expected %d runes removed, got %d", test.removed, n)
			}
			if got := b.text(); got != test.want {
				t.Fatalf("expected %q, got %q", test.want, got)
			}
			if b.pos != test.pos-test.removed {
				t.Fatalf("expected pos %d, got %d", test.pos-test.removed, b.pos)
			}
		})
	}
}

func TestBufferSplice(t *testing.T) {
	b := newBuffer("open rep")
	b.truncateTail(3)
	b.appendText("repository")
	if got := b.text(); got != "open repository" {
		t.Fatalf("expected %q, got %q", "open repository", got)
	}
	if b.pos != b.len() {
		t.Fatalf("expected pos %d, got %d", b.len(), b.pos)
	}

	b.truncateTail(100)
	if b.len() != 0 || b.pos != 0 {
		t.Fatalf("expected empty buffer, got %q at %d", b.text(), b.pos)
	}
}

func TestBufferWipe(t *testing.T) {
	b := newBuffer("secret")
	backing := b.buf[:cap(b.buf)]
	b.wipe()
	if b.len() != 0 || b.pos != 0 {
		t.Fatalf("expected empty buffer, got %q at %d", b.text(), b.pos)
	}
	for i, r := range backing {
		if r != 0 {
			t.Fatalf("expected zeroed rune at %d, got %q", i, r)
		}
	}
}

func TestBufferUnicode(t *testing.T) {
	b := &buffer{}
	for _, r := range "日本語" {
		b.insert(r)
	}
	if b.len() != 3 {
		t.Fatalf("expected 3 runes, got %d", b.len())
	}
	b.backspace()
	if got := b.text(); got != "日本" {
		t.Fatalf("expected %q, got %q", "日本", got)
	}
}

func TestBufferLeavesNoStaleRunes(t *testing.T) {
	tests := []struct {
		name string
		edit func(b *buffer)
		want string
	}{
		{name: "set text", edit: func(b *buffer) { b.setText("x") }, want: "x"},
		{name: "clear", edit: func(b *buffer) { b.clear() }, want: ""},
		{name: "backspace", edit: func(b *buffer) { b.backspace() }, want: "secre"},
		{name: "delete word", edit: func(b *buffer) { b.deleteWord() }, want: ""},
		{name: "truncate tail", edit: func(b *buffer) { b.truncateTail(3) }, want: "sec"},
		{
			name: "growth",
			edit: func(b *buffer) {
				for range 64 {
					b.insert('z')
				}
				b.setText("")
			},
			want: "",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			b := &buffer{}
			for _, r := range "secret" {
				b.insert(r)
			}
			old := b.buf[:cap(b.buf)]

			test.edit(b)
			if got := b.text(); got != test.want {
				t.Fatalf("expected %q, got %q", test.want, got)
			}
			for i, r := range old {
				if i < b.len() && &old[i] == &b.buf[i] {
					continue
				}
				if r != 0 {
					t.Fatalf("stale rune %q left at %d of %q", r, i, string(old))
				}
			}
		})
	}
}
