package line

// History is the log of lines committed in plain mode, oldest first.
//
// A History is owned by the caller and may be shared by several Editors, but
// it is not safe for concurrent use: only one ReadLine may use it at a time.
type History struct {
	entries []string
	limit   int
}

// NewHistory returns an empty History. When limit is positive, appending
// beyond it drops the oldest entries.
func NewHistory(limit int) *History {
	return &History{limit: max(limit, 0)}
}

// Append adds line as the newest entry. Empty lines are ignored.
func (h *History) Append(line string) {
	if line == "" {
		return
	}
	h.entries = append(h.entries, line)
	if h.limit > 0 && len(h.entries) > h.limit {
		h.entries = h.entries[len(h.entries)-h.limit:]
	}
}

// Len returns the number of entries.
func (h *History) Len() int {
	if h == nil {
		return 0
	}
	return len(h.entries)
}

// At returns the entry at index i, where 0 is the oldest.
func (h *History) At(i int) string {
	return h.entries[i]
}

// Clear removes all entries. It must not be called during a ReadLine.
func (h *History) Clear() {
	clear(h.entries)
	h.entries = h.entries[:0]
}

// Entries returns a copy of all entries, oldest first.
func (h *History) Entries() []string {
	if h == nil {
		return nil
	}
	out := make([]string, len(h.entries))
	copy(out, h.entries)
	return out
}
