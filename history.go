package timerun

import (
	"sync"
)

// History is an ordered container of captured Durations. Entries are appended in capture
// order and evicted from the front when a Catcher trims the container to its configured
// capacity, so the sequence is always the chronological tail of all captures.
//
// A History may be constructed by the caller and supplied to a Catcher, in which case the
// Catcher appends into that exact container and the caller observes captures through its
// own reference.
type History struct {
	entries []Duration
	mutex   sync.Mutex
}

// NewHistory creates an empty history.
func NewHistory() *History {
	return &History{}
}

// Append adds a captured duration to the end of the history.
func (h *History) Append(d Duration) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	h.entries = append(h.entries, d)
}

// Last returns the most recently appended duration and a boolean indicating whether the
// history holds any entries at all.
func (h *History) Last() (Duration, bool) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if len(h.entries) == 0 {
		return Duration{}, false
	}

	return h.entries[len(h.entries)-1], true
}

// Snapshot returns a copy of all entries in chronological append order.
func (h *History) Snapshot() []Duration {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	entries := make([]Duration, len(h.entries))
	copy(entries, h.entries)

	return entries
}

// Len reads the current size of the history.
func (h *History) Len() int {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	return len(h.entries)
}

// Empty returns whether the history holds no entries.
func (h *History) Empty() bool {
	return h.Len() == 0
}

// trim drops entries from the front until at most capacity entries remain, preserving the
// relative order of the rest. The capacity may be any non-positive integer to disable the
// capacity limit. It returns the number of entries evicted.
func (h *History) trim(capacity int) int {
	if capacity <= 0 {
		return 0
	}

	h.mutex.Lock()
	defer h.mutex.Unlock()

	excess := len(h.entries) - capacity
	if excess <= 0 {
		return 0
	}

	h.entries = h.entries[excess:]

	return excess
}
