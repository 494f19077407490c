package line

// Mode is the editing mode of a single read. Masked modes echo a mask glyph
// for every rune and have history and completion disabled.
type Mode uint8

const (
	ModeInsert Mode = iota
	ModeOverwrite
	ModeMaskedInsert
	ModeMaskedOverwrite
)

func modeFor(masked, overwrite bool) Mode {
	switch {
	case masked && overwrite:
		return ModeMaskedOverwrite
	case masked:
		return ModeMaskedInsert
	case overwrite:
		return ModeOverwrite
	default:
		return ModeInsert
	}
}

// Masked returns true if input is echoed as mask glyphs.
func (m Mode) Masked() bool {
	return m == ModeMaskedInsert || m == ModeMaskedOverwrite
}

// Overwrite returns true if typed runes replace the rune under the caret.
func (m Mode) Overwrite() bool {
	return m == ModeOverwrite || m == ModeMaskedOverwrite
}

// toggle flips between insert and overwrite, keeping the masking.
func (m Mode) toggle() Mode {
	return modeFor(m.Masked(), !m.Overwrite())
}

func (m Mode) caret() CaretShape {
	if m.Overwrite() {
		return CaretBlock
	}
	return CaretDefault
}

func (m Mode) String() string {
	switch m {
	case ModeInsert:
		return "insert"
	case ModeOverwrite:
		return "overwrite"
	case ModeMaskedInsert:
		return "masked-insert"
	case ModeMaskedOverwrite:
		return "masked-overwrite"
	}
	return "unknown"
}
