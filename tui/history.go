// Package tui provides a Bubble Tea terminal UI for the BossRush engine.
package tui

import "strings"

// History holds recent answers, newest last, with no case-insensitive
// duplicates. Up and Down cycle through it and wrap at either end, so a
// short list seeded with the weapon names works as a choice picker.
type History struct {
	entries []string
	max     int
	cursor  int // -1 while not navigating
}

// NewHistory creates a history holding at most max entries. seed entries
// are loaded so that the first Prev returns seed[0].
func NewHistory(max int, seed ...string) *History {
	h := &History{max: max, cursor: -1}
	for i := len(seed) - 1; i >= 0; i-- {
		h.Record(seed[i])
	}
	return h
}

// Record makes entry the newest answer. An existing entry that matches
// case-insensitively is moved rather than duplicated. Blank entries are ignored.
func (h *History) Record(entry string) {
	if entry == "" {
		return
	}
	for i, e := range h.entries {
		if strings.EqualFold(e, entry) {
			h.entries = append(h.entries[:i], h.entries[i+1:]...)
			break
		}
	}
	h.entries = append(h.entries, entry)
	if len(h.entries) > h.max {
		h.entries = h.entries[len(h.entries)-h.max:]
	}
	h.cursor = -1
}

// Prev steps to the next older entry, wrapping from the oldest to the newest.
func (h *History) Prev() (string, bool) {
	n := len(h.entries)
	if n == 0 {
		return "", false
	}
	if h.cursor <= 0 {
		h.cursor = n - 1
	} else {
		h.cursor--
	}
	return h.entries[h.cursor], true
}

// Next steps to the next newer entry, wrapping from the newest to the oldest.
func (h *History) Next() (string, bool) {
	n := len(h.entries)
	if n == 0 {
		return "", false
	}
	h.cursor = (h.cursor + 1) % n
	return h.entries[h.cursor], true
}

// Reset leaves navigation mode.
func (h *History) Reset() {
	h.cursor = -1
}
