package timerun

import (
	"timerun/clock"
)

// Measurer is a single-shot stopwatch over a monotonic nanosecond clock source. It records
// one reference point per launch and computes elapsed time relative to it.
//
// A Measurer starts unlaunched; requesting an elapsed time before the first launch fails
// with ErrNotLaunched.
type Measurer struct {
	read     func() int64
	source   clock.Source
	start    int64
	launched bool
}

// MeasurerOpts formalizes construction options for a Measurer.
type MeasurerOpts struct {
	// ExcludeSleep selects a clock source that does not advance while the process is
	// sleeping or otherwise descheduled. The zero value selects the wall-clock-style
	// monotonic source, which counts sleep time.
	ExcludeSleep bool

	// Clock overrides the selected clock source with an arbitrary reading function,
	// which must return monotonically non-decreasing nanosecond counts. Useful for
	// supplying a simulated clock in tests.
	Clock func() int64
}

// NewMeasurer creates an unlaunched Measurer with the specified options.
func NewMeasurer(opts MeasurerOpts) *Measurer {
	source := clock.Monotonic
	if opts.ExcludeSleep {
		source = clock.ProcessCPU
	}

	read := opts.Clock
	if read == nil {
		read = source.Func()
	}

	return &Measurer{read: read, source: source}
}

// Launch records the current clock reading as the reference point, transitioning the
// Measurer into its launched state. Relaunching is valid and overwrites the previous
// reference point; only the reading from the latest call is retained.
func (m *Measurer) Launch() {
	m.start = m.read()
	m.launched = true
}

// Elapse computes the time elapsed between the latest launch and now. It does not reset
// the reference point: repeated calls measure cumulative elapsed time since the last
// Launch, not since the previous Elapse. Calling Elapse on a Measurer that has never been
// launched returns ErrNotLaunched.
func (m *Measurer) Elapse() (Duration, error) {
	if !m.launched {
		return Duration{}, ErrNotLaunched
	}

	return NewDuration(m.read() - m.start), nil
}

// Source reports which platform clock source the Measurer was configured with. A Measurer
// constructed with an explicit Clock override still reports the source its options
// selected.
func (m *Measurer) Source() clock.Source {
	return m.source
}
