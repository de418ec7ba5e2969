// Package metrics contains abstractions for emission of metrics generated as durations are
// captured. Currently, the only supported metrics output engine is statsd.
//
// Capture instrumentation is structured around a hook interface: the capturing logic
// invokes hook methods at the relevant lifecycle points, and hook implementations output
// the corresponding metrics to a backend engine. The default hook is a noop, so metrics
// emission is strictly opt-in and the capturing logic carries no backend knowledge.
package metrics
