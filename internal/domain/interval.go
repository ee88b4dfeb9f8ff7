package domain

import "time"

// Interval half-open time range [Start, End)
type Interval struct {
	Start time.Time
	End   time.Time
}

// NewInterval builds an interval. If end falls before start (an overnight range
// expressed with a same-day end), the end is moved to the next day.
func NewInterval(start, end time.Time) Interval {
	if end.Before(start) {
		end = end.AddDate(0, 0, 1)
	}
	return Interval{Start: start, End: end}
}

// Overlaps reports whether two half-open intervals intersect.
// Adjacent intervals (a.End == b.Start) do not overlap.
func (i Interval) Overlaps(other Interval) bool {
	return i.Start.Before(other.End) && i.End.After(other.Start)
}

// Duration of the interval
func (i Interval) Duration() time.Duration {
	return i.End.Sub(i.Start)
}

// IsEmpty is true for zero-length and inverted intervals
func (i Interval) IsEmpty() bool {
	return !i.End.After(i.Start)
}
