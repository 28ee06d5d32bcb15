package domain

import "time"

// TimeInterval is a half-open interval [Start, End): the start instant is
// included, the end instant is not. Two appointments that abut each other
// (one ends exactly when the other starts) therefore never conflict.
type TimeInterval struct {
	Start time.Time
	End   time.Time
}

// NewTimeInterval builds an interval from a start instant and a duration in minutes
func NewTimeInterval(start time.Time, durationMinutes int) TimeInterval {
	return TimeInterval{
		Start: start,
		End:   start.Add(time.Duration(durationMinutes) * time.Minute),
	}
}

// Overlaps reports whether two half-open intervals intersect.
// Интервалы пересекаются, только если начало одного СТРОГО раньше конца
// другого в обе стороны. Граничные случаи (end == start) не считаются.
func (i TimeInterval) Overlaps(other TimeInterval) bool {
	return i.Start.Before(other.End) && other.Start.Before(i.End)
}

// Duration returns the length of the interval
func (i TimeInterval) Duration() time.Duration {
	return i.End.Sub(i.Start)
}

// IsZero returns true if both bounds are zero instants
func (i TimeInterval) IsZero() bool {
	return i.Start.IsZero() && i.End.IsZero()
}
