// Package clock provides the platform clock sources consumed by timerun measurers. Two
// interchangeable sources exist: a wall-clock-style monotonic counter that advances during
// process sleep, and a per-process CPU time counter that does not. Both produce raw
// monotonically non-decreasing nanosecond counts whose values are only meaningful as the
// endpoints of a duration.
package clock
