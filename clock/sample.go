package clock

import (
	"fmt"
	"time"
)

// Sample is a wall clock reading at second resolution.
type Sample struct {
	Hour, Minute, Second int
}

// SampleOf returns the hour, minute and second of t.
func SampleOf(t time.Time) Sample {
	return Sample{Hour: t.Hour(), Minute: t.Minute(), Second: t.Second()}
}

// Digits splits the sample into the six digits of an HH:MM:SS display,
// tens first.
func (s Sample) Digits() [6]int {
	return [6]int{
		s.Hour / 10, s.Hour % 10,
		s.Minute / 10, s.Minute % 10,
		s.Second / 10, s.Second % 10,
	}
}

// Valid reports whether every field is in range for a 24 hour clock.
func (s Sample) Valid() bool {
	return s.Hour >= 0 && s.Hour < 24 &&
		s.Minute >= 0 && s.Minute < 60 &&
		s.Second >= 0 && s.Second < 60
}

// String formats the sample as HH:MM:SS.
func (s Sample) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", s.Hour, s.Minute, s.Second)
}

// ParseSample parses an HH:MM:SS string.
func ParseSample(v string) (Sample, error) {
	t, err := time.Parse(time.TimeOnly, v)
	if err != nil {
		return Sample{}, fmt.Errorf("clock: parse %q: %w", v, err)
	}
	return SampleOf(t), nil
}
