// Package overlap finds the windows shared by two or more labels.
package overlap

import (
	"fmt"
	"sort"
	"time"

	intervalst "github.com/rdleal/intervalst/interval"
	"go.uber.org/zap"

	"github.com/javiermolinar/huddle/internal/interval"
)

// Engine computes common intervals.
type Engine struct {
	logger *zap.Logger
}

// NewEngine creates an Engine. A nil logger discards diagnostics.
func NewEngine(logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{logger: logger}
}

// FindCommonIntervals runs a default Engine over intervals.
func FindCommonIntervals(intervals []interval.Interval) *Overlaps {
	return NewEngine(nil).FindCommonIntervals(intervals)
}

// bucket groups the intervals that start at the same instant.
// The search tree holds one node per bucket spanning to the latest end.
type bucket struct {
	begin   time.Time
	end     time.Time
	members []int
}

// FindCommonIntervals returns every common span shared by at least two
// distinct labels, including three-way and larger overlaps.
//
// Intervals are visited in input order. Each one is first intersected with
// the spans found so far that do not already include its label, which
// grows 2-way overlaps into 3-way ones and so on, and then paired with every
// later interval of another label that intersects it. Intersections that
// only touch at an endpoint are dropped. A span that lies inside another
// span shared by the same labels (or more) adds nothing and is removed.
//
// Every interval must carry a label; an unlabeled interval panics.
func (e *Engine) FindCommonIntervals(intervals []interval.Interval) *Overlaps {
	result := newOverlaps()

	ivs := make([]interval.Interval, len(intervals))
	for i, iv := range intervals {
		if iv.Label == "" {
			panic(fmt.Sprintf("overlap: interval %d %v has no label", i, iv))
		}
		var swapped bool
		if ivs[i], swapped = iv.Normalize(); swapped {
			e.logger.Warn("interval end before begin, endpoints swapped", zap.Stringer("interval", iv))
		}
	}

	tree := buildIndex(ivs)

	for i, cur := range ivs {
		if cur.Empty() {
			continue
		}

		// Only spans that existed before this interval; spans added below
		// already include cur.Label.
		known := len(result.entries)
		for k := 0; k < known; k++ {
			ent := result.entries[k]
			if ent.has(cur.Label) {
				continue
			}
			common, ok := interval.Intersect(ent.span, cur)
			if !ok {
				continue
			}
			result.add(common, append(ent.sortedLabels(), cur.Label)...)
		}

		for _, j := range partners(tree, ivs, i) {
			other := ivs[j]
			if other.Label == cur.Label {
				continue
			}
			common, ok := interval.Intersect(cur, other)
			if !ok {
				continue
			}
			result.add(common, cur.Label, other.Label)
		}
	}

	pruned := result.withoutRedundant()
	e.logger.Debug("common intervals found",
		zap.Int("intervals", len(ivs)),
		zap.Int("overlaps", pruned.Len()),
		zap.Int("redundant", result.Len()-pruned.Len()))
	return pruned
}

func compareTime(a, b time.Time) int {
	return a.Compare(b)
}

// buildIndex loads every non-empty interval into an interval search tree.
func buildIndex(ivs []interval.Interval) *intervalst.SearchTree[[]int, time.Time] {
	byBegin := make(map[int64]*bucket)
	var order []*bucket
	for i, iv := range ivs {
		if iv.Empty() {
			continue
		}
		k := iv.Begin.UnixNano()
		b, ok := byBegin[k]
		if !ok {
			b = &bucket{begin: iv.Begin, end: iv.End}
			byBegin[k] = b
			order = append(order, b)
		}
		if iv.End.After(b.end) {
			b.end = iv.End
		}
		b.members = append(b.members, i)
	}

	tree := intervalst.NewSearchTree[[]int](compareTime)
	for _, b := range order {
		if err := tree.Insert(b.begin, b.end, b.members); err != nil {
			panic(fmt.Sprintf("overlap: indexing [%v, %v]: %v", b.begin, b.end, err))
		}
	}
	return tree
}

// partners returns the indexes after i whose bucket intersects ivs[i], in
// ascending order. Intervals at or before i count as already removed from
// the index, so every pair is compared once.
func partners(tree *intervalst.SearchTree[[]int, time.Time], ivs []interval.Interval, i int) []int {
	found, ok := tree.AllIntersections(ivs[i].Begin, ivs[i].End)
	if !ok {
		return nil
	}
	var idxs []int
	for _, members := range found {
		for _, j := range members {
			if j > i {
				idxs = append(idxs, j)
			}
		}
	}
	sort.Ints(idxs)
	return idxs
}
