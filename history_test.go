package timerun

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHistoryAppendAndSnapshot(t *testing.T) {
	h := NewHistory()
	assert.True(t, h.Empty())
	assert.Equal(t, 0, h.Len())

	h.Append(NewDuration(1))
	h.Append(NewDuration(2))

	assert.False(t, h.Empty())
	assert.Equal(t, 2, h.Len())
	assert.Equal(t, []Duration{NewDuration(1), NewDuration(2)}, h.Snapshot())
}

func TestHistoryLast(t *testing.T) {
	h := NewHistory()

	_, ok := h.Last()
	assert.False(t, ok)

	h.Append(NewDuration(1))
	h.Append(NewDuration(2))

	last, ok := h.Last()
	assert.True(t, ok)
	assert.Equal(t, NewDuration(2), last)
}

func TestHistorySnapshotIsACopy(t *testing.T) {
	h := NewHistory()
	h.Append(NewDuration(1))

	snapshot := h.Snapshot()
	snapshot[0] = NewDuration(99)

	assert.Equal(t, []Duration{NewDuration(1)}, h.Snapshot())
}

func TestHistoryTrim(t *testing.T) {
	h := NewHistory()
	for ns := int64(1); ns <= 5; ns++ {
		h.Append(NewDuration(ns))
	}

	// The oldest excess entries are dropped, preserving the relative order of the rest.
	assert.Equal(t, 2, h.trim(3))
	assert.Equal(t, []Duration{NewDuration(3), NewDuration(4), NewDuration(5)}, h.Snapshot())

	// Trimming at or under capacity is a noop.
	assert.Equal(t, 0, h.trim(3))
	assert.Equal(t, 0, h.trim(10))

	// A non-positive capacity disables the limit.
	assert.Equal(t, 0, h.trim(0))
	assert.Equal(t, 0, h.trim(-1))
	assert.Equal(t, 3, h.Len())
}
