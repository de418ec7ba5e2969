//go:generate go run golang.org/x/tools/cmd/stringer -type=Source -linecomment=true

package clock

import (
	"strings"
)

// Source parametrizes the supported platform clock sources.
type Source int

const (
	// Monotonic is a monotonically non-decreasing counter that includes time spent
	// sleeping, analogous to a performance counter.
	Monotonic Source = iota // MONOTONIC
	// ProcessCPU counts CPU time consumed by the current process, excluding time spent
	// sleeping or otherwise descheduled.
	ProcessCPU // PROCESS_CPU
)

// ParseSource looks up a Source constant by its stringified (case-insensitive)
// representation.
func ParseSource(source string) (Source, bool) {
	knownSources := []Source{Monotonic, ProcessCPU}

	for _, knownSource := range knownSources {
		if strings.EqualFold(source, knownSource.String()) {
			return knownSource, true
		}
	}

	return Monotonic, false
}

// Func returns the reading function behind the source. Each invocation of the returned
// function reads the platform clock once and reports it as a nanosecond count.
func (s Source) Func() func() int64 {
	switch s {
	case ProcessCPU:
		return processNanos
	default:
		return monotonicNanos
	}
}
