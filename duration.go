package timerun

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	nanosPerMicro  int64 = 1e3
	nanosPerSecond int64 = 1e9
)

// Duration is an immutable elapsed time expressed as an integer nanosecond count.
//
// The count is usually non-negative, but negative values are representable: a clock source
// that rewinds between readings produces one, and the type treats it as a value rather than
// an error. Durations are comparable with ==; use Less or Cmp for ordering.
type Duration struct {
	ns int64
}

// NewDuration creates a Duration from a nanosecond count. Any integer, positive, zero or
// negative, is a valid value.
func NewDuration(ns int64) Duration {
	return Duration{ns: ns}
}

// Nanoseconds reads back the exact nanosecond count.
func (d Duration) Nanoseconds() int64 {
	return d.ns
}

// TimeDuration converts the value to a standard library time.Duration truncated to
// microsecond resolution. The conversion is intentionally lossy: sub-microsecond precision
// is discarded by integer division.
func (d Duration) TimeDuration() time.Duration {
	return time.Duration(d.ns/nanosPerMicro) * time.Microsecond
}

// Less reports whether d is strictly shorter than other, comparing nanosecond counts.
func (d Duration) Less(other Duration) bool {
	return d.ns < other.ns
}

// Cmp compares two Durations by nanosecond count, returning -1, 0 or 1.
func (d Duration) Cmp(other Duration) int {
	switch {
	case d.ns < other.ns:
		return -1
	case d.ns > other.ns:
		return 1
	default:
		return 0
	}
}

// String renders the value as H:MM:SS, followed by a dot and the 9-digit zero-padded
// nanosecond remainder when it is nonzero. Hours are not wrapped into days. Negative
// values render as the sign followed by the rendering of the absolute value.
func (d Duration) String() string {
	ns := d.ns

	var sign string
	if ns < 0 {
		sign = "-"
		ns = -ns
	}

	seconds := ns / nanosPerSecond
	remainder := ns % nanosPerSecond

	rendered := fmt.Sprintf("%s%d:%02d:%02d", sign, seconds/3600, (seconds/60)%60, seconds%60)
	if remainder == 0 {
		return rendered
	}

	return fmt.Sprintf("%s.%09d", rendered, remainder)
}

// ParseDuration parses the textual form produced by String: an optional sign, H:MM:SS with
// unbounded hours, and an optional fractional part of up to 9 digits interpreted as a
// right-zero-padded nanosecond remainder.
func ParseDuration(value string) (Duration, error) {
	text := value

	negative := strings.HasPrefix(text, "-")
	if negative {
		text = text[1:]
	}

	var fraction string
	if idx := strings.IndexByte(text, '.'); idx >= 0 {
		text, fraction = text[:idx], text[idx+1:]
	}

	parts := strings.Split(text, ":")
	if len(parts) != 3 {
		return Duration{}, fmt.Errorf("duration: malformed value: value=%s", value)
	}

	hours, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return Duration{}, fmt.Errorf("duration: malformed hours: value=%s", value)
	}

	minutes, err := parseClockField(parts[1])
	if err != nil {
		return Duration{}, fmt.Errorf("duration: malformed minutes: value=%s", value)
	}

	seconds, err := parseClockField(parts[2])
	if err != nil {
		return Duration{}, fmt.Errorf("duration: malformed seconds: value=%s", value)
	}

	ns := ((hours*60+minutes)*60 + seconds) * nanosPerSecond

	if fraction != "" {
		if len(fraction) > 9 {
			return Duration{}, fmt.Errorf("duration: fractional part exceeds nanosecond resolution: value=%s", value)
		}

		remainder, err := strconv.ParseInt(fraction+strings.Repeat("0", 9-len(fraction)), 10, 64)
		if err != nil {
			return Duration{}, fmt.Errorf("duration: malformed fractional part: value=%s", value)
		}

		ns += remainder
	}

	if negative {
		ns = -ns
	}

	return NewDuration(ns), nil
}

// parseClockField parses a two-digit minute or second field in the range [0, 60).
func parseClockField(field string) (int64, error) {
	if len(field) != 2 {
		return 0, fmt.Errorf("duration: field must be two digits: field=%s", field)
	}

	parsed, err := strconv.ParseInt(field, 10, 64)
	if err != nil {
		return 0, err
	}

	if parsed < 0 || parsed > 59 {
		return 0, fmt.Errorf("duration: field out of range: field=%s", field)
	}

	return parsed, nil
}

// MarshalYAML serializes the value in its textual H:MM:SS form.
func (d Duration) MarshalYAML() (interface{}, error) {
	return d.String(), nil
}

// UnmarshalYAML deserializes either the textual H:MM:SS form or a plain integer
// interpreted as a nanosecond count.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var ns int64
	if err := node.Decode(&ns); err == nil {
		*d = NewDuration(ns)
		return nil
	}

	var text string
	if err := node.Decode(&text); err != nil {
		return fmt.Errorf("duration: cannot unmarshal value: err=%v", err)
	}

	parsed, err := ParseDuration(text)
	if err != nil {
		return err
	}

	*d = parsed

	return nil
}
