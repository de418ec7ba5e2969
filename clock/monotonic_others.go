//go:build !windows
// +build !windows

package clock

import (
	_ "unsafe" // for go:linkname
)

// monotonicNanos reads the runtime's monotonic clock directly. The measures exposed by the
// time package carry wall-clock baggage that is irrelevant here; the raw runtime counter
// is the same source time.Since uses, without the conversion round trip.
//
//go:linkname monotonicNanos runtime.nanotime
func monotonicNanos() int64
