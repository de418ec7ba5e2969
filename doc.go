// Package timerun measures elapsed time between two points in program execution with
// nanosecond resolution. It is built from three cooperating pieces: Duration, an immutable
// nanosecond-count value; Measurer, a single-shot stopwatch over a monotonic clock source;
// and Catcher, a reusable wrapper that repeatedly measures scoped blocks or wrapped
// functions and accumulates the results into a bounded history.
//
// The library deliberately has no wall-clock or calendar semantics. Readings come from
// monotonic clock sources only: one that advances during process sleep and one that does
// not (see the clock package). All operations are synchronous and complete in effectively
// constant time.
package timerun
