// Package history keeps the session-scoped list of completed single
// translations. The list is caller-owned and insertion-ordered; nothing is
// persisted across sessions.
package history

import "time"

// Entry records one completed translation
type Entry struct {
	SourceText string
	TargetLang string // Display name, e.g. "French"
	Translated string
	Timestamp  time.Time
}

// History is an ordered list of past translations
type History struct {
	entries []Entry
}

// New creates an empty history
func New() *History {
	return &History{}
}

// Append adds an entry to the end of the history
func (h *History) Append(entry Entry) {
	h.entries = append(h.entries, entry)
}

// Entries returns all entries in insertion order
func (h *History) Entries() []Entry {
	// Return a copy to prevent external modification
	result := make([]Entry, len(h.entries))
	copy(result, h.entries)
	return result
}

// Len returns the number of entries
func (h *History) Len() int {
	return len(h.entries)
}

// Clear removes all entries
func (h *History) Clear() {
	h.entries = nil
}
