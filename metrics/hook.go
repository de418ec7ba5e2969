package metrics

import (
	"fmt"
	"os"
	"time"
)

// CaptureHook is a metrics hook interface for reporting events that occur as durations are
// captured into a catcher's history.
type CaptureHook interface {
	// EmitCapture reports a single captured duration.
	EmitCapture(latency time.Duration)

	// EmitEviction reports that captures were evicted from a bounded history, with the
	// number of entries dropped.
	EmitEviction(evicted int)

	// EmitHistorySize reports the history size after a capture settles.
	EmitHistorySize(size int)
}

// AsyncStatsdCaptureHook is an implementation of CaptureHook that outputs metrics
// asynchronously to statsd.
type AsyncStatsdCaptureHook struct {
	client *StatsdClient
	source string
}

// NoopCaptureHook implements the CaptureHook interface but noops on all emissions.
type NoopCaptureHook struct{}

// NewAsyncStatsdCaptureHook creates a new hook with the specified source, statsd address,
// statsd sample rate, and release version. The source denotes the logical operation whose
// durations are being captured, and namespaces every emitted metric.
func NewAsyncStatsdCaptureHook(source string, addr string, sampleRate float32, version string) (CaptureHook, error) {
	client, err := statsdClientFactory(addr, sampleRate, version)
	if err != nil {
		return nil, err
	}

	return &AsyncStatsdCaptureHook{
		client: client,
		source: source,
	}, nil
}

// EmitCapture statsd implementation
func (h *AsyncStatsdCaptureHook) EmitCapture(latency time.Duration) {
	go func() {
		h.client.Count(fmt.Sprintf("event.%s.capture", h.source), 1, nil)
		h.client.Timing(fmt.Sprintf("latency.%s.capture", h.source), latency, nil)
	}()
}

// EmitEviction statsd implementation
func (h *AsyncStatsdCaptureHook) EmitEviction(evicted int) {
	go h.client.Count(fmt.Sprintf("event.%s.evict", h.source), int64(evicted), nil)
}

// EmitHistorySize statsd implementation
func (h *AsyncStatsdCaptureHook) EmitHistorySize(size int) {
	go h.client.Gauge(fmt.Sprintf("gauge.%s.history_size", h.source), int64(size), nil)
}

// NewNoopCaptureHook creates a noop implementation of CaptureHook.
func NewNoopCaptureHook() CaptureHook {
	return &NoopCaptureHook{}
}

// EmitCapture noops.
func (h *NoopCaptureHook) EmitCapture(latency time.Duration) {}

// EmitEviction noops.
func (h *NoopCaptureHook) EmitEviction(evicted int) {}

// EmitHistorySize noops.
func (h *NoopCaptureHook) EmitHistorySize(size int) {}

// statsdClientFactory creates a configured StatsdClient with reasonable defaults for the
// given statsd server address, sample rate, and release version.
func statsdClientFactory(addr string, sampleRate float32, version string) (*StatsdClient, error) {
	hostname, err := os.Hostname()
	if err != nil {
		return nil, err
	}

	defaultTags := map[string]string{
		"host":    hostname,
		"version": version,
	}

	return NewStatsdClient(addr, "timerun", defaultTags, sampleRate)
}
