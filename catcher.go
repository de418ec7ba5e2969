package timerun

import (
	"time"

	"timerun/metrics"
)

// Catcher repeatedly measures scoped blocks or wrapped functions with one internally owned
// Measurer and accumulates the captured Durations into a history, optionally bounded to a
// maximum size with oldest-first eviction.
//
// A Catcher is reusable: the same instance may time any number of scoped blocks and wrap
// any number of distinct functions, all sharing one measurer and one history. It assumes
// one logical timer in flight at a time; interleaving launch/elapse pairs from concurrent
// goroutines on a shared instance corrupts individual readings, so callers sharing an
// instance across goroutines own that synchronization.
type Catcher struct {
	measurer   *Measurer
	history    *History
	maxStorage int
	hook       metrics.CaptureHook
}

// CatcherOpts formalizes construction options for a Catcher.
type CatcherOpts struct {
	// ExcludeSleep is forwarded to the internally owned Measurer. The zero value counts
	// time spent sleeping toward captured durations.
	ExcludeSleep bool

	// MaxStorage caps the history size; once exceeded, the oldest captures are evicted
	// first. The capacity may be any non-positive integer to disable the capacity limit.
	MaxStorage int

	// History is an externally supplied container to append captures into. The Catcher
	// operates on this exact container, so the supplier observes captures through its
	// own reference. When omitted, the Catcher creates and owns an empty one.
	History *History

	// Clock overrides the Measurer's clock source; see MeasurerOpts.Clock.
	Clock func() int64

	// Hook receives a metrics emission for every capture and eviction. Defaults to the
	// noop hook.
	Hook metrics.CaptureHook
}

// NewCatcher creates a Catcher with the specified options.
func NewCatcher(opts CatcherOpts) *Catcher {
	history := opts.History
	if history == nil {
		history = NewHistory()
	}

	hook := opts.Hook
	if hook == nil {
		hook = metrics.NewNoopCaptureHook()
	}

	return &Catcher{
		measurer: NewMeasurer(MeasurerOpts{
			ExcludeSleep: opts.ExcludeSleep,
			Clock:        opts.Clock,
		}),
		history:    history,
		maxStorage: opts.MaxStorage,
		hook:       hook,
	}
}

// Catch is the scoped-acquisition primitive. It launches the internal Measurer immediately
// and returns a finish function that captures the elapsed duration into the history and
// trims the history to the configured capacity. Deferring the finish function guarantees
// the capture happens on every exit path, including panics:
//
//	defer catcher.Catch()()
//
// Every other timing mode on the Catcher is a thin adapter around this primitive.
func (c *Catcher) Catch() func() {
	c.measurer.Launch()

	return func() {
		// Launch always precedes this elapse, so the not-launched error cannot occur.
		d, _ := c.measurer.Elapse()

		c.history.Append(d)
		evicted := c.history.trim(c.maxStorage)

		c.hook.EmitCapture(time.Duration(d.Nanoseconds()))
		if evicted > 0 {
			c.hook.EmitEviction(evicted)
		}
		c.hook.EmitHistorySize(c.history.Len())
	}
}

// Run times fn as a scoped block, capturing its duration even if fn panics.
func (c *Catcher) Run(fn func()) {
	defer c.Catch()()
	fn()
}

// RunE times fn as a scoped block and propagates its error. The duration is captured on
// both the success and the error path.
func (c *Catcher) RunE(fn func() error) error {
	defer c.Catch()()
	return fn()
}

// Wrap returns a function that times fn with this Catcher on every invocation. The
// returned function shares the Catcher's history with all other uses of the instance.
func (c *Catcher) Wrap(fn func()) func() {
	return func() {
		c.Run(fn)
	}
}

// WrapE returns an error-propagating function that times fn with this Catcher on every
// invocation.
func (c *Catcher) WrapE(fn func() error) func() error {
	return func() error {
		return c.RunE(fn)
	}
}

// Duration returns the most recently captured duration. It returns ErrNoCapture if
// nothing has been captured yet.
func (c *Catcher) Duration() (Duration, error) {
	last, ok := c.history.Last()
	if !ok {
		return Duration{}, ErrNoCapture
	}

	return last, nil
}

// Durations returns all captured durations in chronological capture order.
func (c *Catcher) Durations() []Duration {
	return c.history.Snapshot()
}

// History exposes the underlying history container.
func (c *Catcher) History() *History {
	return c.history
}
