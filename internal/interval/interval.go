// Package interval defines the labeled time span shared by the parser, the
// overlap engine and the report formatter.
package interval

import (
	"fmt"
	"time"
)

// Interval is a span of calendar time owned by a label.
// Synthesized overlap spans carry an empty label.
type Interval struct {
	Begin time.Time
	End   time.Time
	Label string
}

// New creates an interval for label.
// If begin is after end the endpoints are swapped and swapped reports true.
func New(begin, end time.Time, label string) (iv Interval, swapped bool) {
	iv = Interval{Begin: begin, End: end, Label: label}
	return iv.Normalize()
}

// Normalize returns the interval with Begin <= End.
// The second result reports whether the endpoints had to be swapped.
func (iv Interval) Normalize() (Interval, bool) {
	if iv.End.Before(iv.Begin) {
		iv.Begin, iv.End = iv.End, iv.Begin
		return iv, true
	}
	return iv, false
}

// Duration returns End - Begin.
func (iv Interval) Duration() time.Duration {
	return iv.End.Sub(iv.Begin)
}

// Empty reports whether the interval has no positive duration.
func (iv Interval) Empty() bool {
	return !iv.End.After(iv.Begin)
}

// Equal reports whether both intervals have the same endpoints and label.
func (iv Interval) Equal(other Interval) bool {
	return iv.Begin.Equal(other.Begin) && iv.End.Equal(other.End) && iv.Label == other.Label
}

// SameSpan reports whether both intervals cover the same range, ignoring labels.
func (iv Interval) SameSpan(other Interval) bool {
	return iv.Begin.Equal(other.Begin) && iv.End.Equal(other.End)
}

// Contains reports whether other lies entirely within iv.
func (iv Interval) Contains(other Interval) bool {
	return !other.Begin.Before(iv.Begin) && !other.End.After(iv.End)
}

// Overlaps reports whether the two intervals share a positive-length range.
// Two ranges [s1, e1) and [s2, e2) overlap if s1 < e2 AND s2 < e1.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.Begin.Before(other.End) && other.Begin.Before(iv.End)
}

// Intersect returns the unlabeled common span of a and b.
// ok is false when the intervals are disjoint or only touch at an endpoint.
func Intersect(a, b Interval) (common Interval, ok bool) {
	a, _ = a.Normalize()
	b, _ = b.Normalize()

	begin := a.Begin
	if b.Begin.After(begin) {
		begin = b.Begin
	}
	end := a.End
	if b.End.Before(end) {
		end = b.End
	}
	if !end.After(begin) {
		return Interval{}, false
	}
	return Interval{Begin: begin, End: end}, true
}

// String formats the interval for logs.
func (iv Interval) String() string {
	const layout = "2006-01-02 15:04"
	if iv.Label == "" {
		return fmt.Sprintf("[%s, %s]", iv.Begin.Format(layout), iv.End.Format(layout))
	}
	return fmt.Sprintf("[%s, %s]#%s", iv.Begin.Format(layout), iv.End.Format(layout), iv.Label)
}
