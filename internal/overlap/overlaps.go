package overlap

import (
	"sort"

	"github.com/javiermolinar/huddle/internal/interval"
)

// Entry is one common window and the labels that share it.
type Entry struct {
	Span   interval.Interval
	Labels []string // sorted, at least two
}

// Overlaps maps common spans to the set of labels sharing them.
// Keys compare on begin and end only; entries keep their insertion order.
type Overlaps struct {
	entries []*entry
	index   map[spanKey]int
}

type entry struct {
	span   interval.Interval
	labels map[string]struct{}
}

type spanKey struct {
	begin, end int64
}

func keyOf(span interval.Interval) spanKey {
	return spanKey{begin: span.Begin.UnixNano(), end: span.End.UnixNano()}
}

func newOverlaps() *Overlaps {
	return &Overlaps{index: make(map[spanKey]int)}
}

// Len returns the number of common spans.
func (o *Overlaps) Len() int {
	if o == nil {
		return 0
	}
	return len(o.entries)
}

// Entries returns the common spans in discovery order.
func (o *Overlaps) Entries() []Entry {
	if o == nil {
		return nil
	}
	out := make([]Entry, 0, len(o.entries))
	for _, e := range o.entries {
		out = append(out, Entry{Span: e.span, Labels: e.sortedLabels()})
	}
	return out
}

// Labels returns the sorted labels sharing exactly span.
func (o *Overlaps) Labels(span interval.Interval) ([]string, bool) {
	if o == nil {
		return nil, false
	}
	i, ok := o.index[keyOf(span)]
	if !ok {
		return nil, false
	}
	return o.entries[i].sortedLabels(), true
}

// add inserts span with labels, or unions labels into the existing entry.
func (o *Overlaps) add(span interval.Interval, labels ...string) {
	span.Label = ""
	k := keyOf(span)
	i, ok := o.index[k]
	if !ok {
		i = len(o.entries)
		o.index[k] = i
		o.entries = append(o.entries, &entry{span: span, labels: make(map[string]struct{}, len(labels))})
	}
	for _, l := range labels {
		o.entries[i].labels[l] = struct{}{}
	}
}

func (e *entry) has(label string) bool {
	_, ok := e.labels[label]
	return ok
}

func (e *entry) sortedLabels() []string {
	labels := make([]string, 0, len(e.labels))
	for l := range e.labels {
		labels = append(labels, l)
	}
	sort.Strings(labels)
	return labels
}

// withoutRedundant returns the entries not covered by another entry, where
// covered means a strictly larger span holding a superset of the labels.
// This happens when one label lists several windows that nest.
func (o *Overlaps) withoutRedundant() *Overlaps {
	out := newOverlaps()
	for i, e := range o.entries {
		if o.covered(i) {
			continue
		}
		out.index[keyOf(e.span)] = len(out.entries)
		out.entries = append(out.entries, e)
	}
	return out
}

func (o *Overlaps) covered(i int) bool {
	e := o.entries[i]
	for j, other := range o.entries {
		if j == i || !other.span.Contains(e.span) {
			continue
		}
		if other.hasAll(e.labels) {
			return true
		}
	}
	return false
}

func (e *entry) hasAll(labels map[string]struct{}) bool {
	for l := range labels {
		if !e.has(l) {
			return false
		}
	}
	return true
}
