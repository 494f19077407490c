package line

// Key represents a decoded key press.
type Key uint8

const (
	KeyUnknown Key = iota
	KeyRune        // Printable character (check Event.Rune)

	KeyEnter
	KeyTab
	KeyBacktab // Shift+Tab
	KeyBackspace
	KeyDelete
	KeyInsert

	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyHome
	KeyEnd

	KeyClear      // Ctrl+K
	KeyDeleteWord // Ctrl+W
	KeyPaste      // Ctrl+V
	KeyInterrupt  // Ctrl+C
	KeyEOF        // Ctrl+D
)

var keyNames = [...]string{
	KeyUnknown:    "Unknown",
	KeyRune:       "Rune",
	KeyEnter:      "Enter",
	KeyTab:        "Tab",
	KeyBacktab:    "Backtab",
	KeyBackspace:  "Backspace",
	KeyDelete:     "Delete",
	KeyInsert:     "Insert",
	KeyLeft:       "Left",
	KeyRight:      "Right",
	KeyUp:         "Up",
	KeyDown:       "Down",
	KeyHome:       "Home",
	KeyEnd:        "End",
	KeyClear:      "Ctrl+K",
	KeyDeleteWord: "Ctrl+W",
	KeyPaste:      "Ctrl+V",
	KeyInterrupt:  "Ctrl+C",
	KeyEOF:        "Ctrl+D",
}

func (k Key) String() string {
	if int(k) < len(keyNames) {
		return keyNames[k]
	}
	return "Unknown"
}

// Event is a single key press read from the terminal.
type Event struct {
	Key  Key
	Rune rune // Only set for KeyRune
}

// RuneEvent returns the Event for typing r.
func RuneEvent(r rune) Event {
	return Event{Key: KeyRune, Rune: r}
}

// KeyEvent returns the Event for pressing the special key k.
func KeyEvent(k Key) Event {
	return Event{Key: k}
}
