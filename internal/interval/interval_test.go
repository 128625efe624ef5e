package interval

import (
	"testing"
	"time"
)

func at(day, hour, minute int) time.Time {
	return time.Date(2018, 1, day, hour, minute, 0, 0, time.UTC)
}

func TestNew_SwapsReversedEndpoints(t *testing.T) {
	iv, swapped := New(at(1, 12, 0), at(1, 10, 0), "bob")
	if !swapped {
		t.Fatal("expected swapped to be true")
	}
	if !iv.Begin.Equal(at(1, 10, 0)) || !iv.End.Equal(at(1, 12, 0)) {
		t.Errorf("got %v, want [10:00, 12:00]", iv)
	}
	if iv.Label != "bob" {
		t.Errorf("Label = %q, want %q", iv.Label, "bob")
	}

	_, swapped = New(at(1, 10, 0), at(1, 12, 0), "bob")
	if swapped {
		t.Error("well-formed interval should not be swapped")
	}
}

func TestIntersect(t *testing.T) {
	tests := []struct {
		name      string
		a, b      Interval
		wantOK    bool
		wantBegin time.Time
		wantEnd   time.Time
	}{
		{
			name:   "no overlap - adjacent",
			a:      Interval{Begin: at(1, 9, 0), End: at(1, 10, 0)},
			b:      Interval{Begin: at(1, 10, 0), End: at(1, 11, 0)},
			wantOK: false,
		},
		{
			name:   "no overlap - gap between",
			a:      Interval{Begin: at(1, 9, 0), End: at(1, 10, 0)},
			b:      Interval{Begin: at(1, 11, 0), End: at(1, 12, 0)},
			wantOK: false,
		},
		{
			name:      "partial overlap",
			a:         Interval{Begin: at(1, 9, 0), End: at(1, 10, 30)},
			b:         Interval{Begin: at(1, 10, 0), End: at(1, 11, 0)},
			wantOK:    true,
			wantBegin: at(1, 10, 0),
			wantEnd:   at(1, 10, 30),
		},
		{
			name:      "one inside other",
			a:         Interval{Begin: at(1, 9, 0), End: at(1, 12, 0)},
			b:         Interval{Begin: at(1, 10, 0), End: at(1, 11, 0)},
			wantOK:    true,
			wantBegin: at(1, 10, 0),
			wantEnd:   at(1, 11, 0),
		},
		{
			name:      "reversed input is corrected",
			a:         Interval{Begin: at(1, 12, 0), End: at(1, 9, 0)},
			b:         Interval{Begin: at(1, 10, 0), End: at(1, 13, 0)},
			wantOK:    true,
			wantBegin: at(1, 10, 0),
			wantEnd:   at(1, 12, 0),
		},
		{
			name:      "across days",
			a:         Interval{Begin: at(1, 0, 0), End: at(4, 0, 0)},
			b:         Interval{Begin: at(2, 0, 0), End: at(5, 0, 0)},
			wantOK:    true,
			wantBegin: at(2, 0, 0),
			wantEnd:   at(4, 0, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Intersect(tt.a, tt.b)
			if ok != tt.wantOK {
				t.Fatalf("Intersect ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if !got.Begin.Equal(tt.wantBegin) || !got.End.Equal(tt.wantEnd) {
				t.Errorf("Intersect = %v, want [%v, %v]", got, tt.wantBegin, tt.wantEnd)
			}
			if got.Label != "" {
				t.Errorf("intersection should be unlabeled, got %q", got.Label)
			}
		})
	}
}

func TestIntervalPredicates(t *testing.T) {
	outer := Interval{Begin: at(1, 9, 0), End: at(1, 12, 0), Label: "a"}
	inner := Interval{Begin: at(1, 10, 0), End: at(1, 11, 0), Label: "b"}

	if !outer.Contains(inner) {
		t.Error("outer should contain inner")
	}
	if inner.Contains(outer) {
		t.Error("inner should not contain outer")
	}
	if !outer.Overlaps(inner) {
		t.Error("outer should overlap inner")
	}
	if outer.Equal(Interval{Begin: outer.Begin, End: outer.End, Label: "z"}) {
		t.Error("intervals with different labels should not be equal")
	}
	if !outer.SameSpan(Interval{Begin: outer.Begin, End: outer.End}) {
		t.Error("SameSpan should ignore labels")
	}
	if got := inner.Duration(); got != time.Hour {
		t.Errorf("Duration = %v, want 1h", got)
	}
	if !(Interval{Begin: at(1, 9, 0), End: at(1, 9, 0)}).Empty() {
		t.Error("zero-length interval should be empty")
	}
}
