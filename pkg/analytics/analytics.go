// Package analytics computes read-only statistics over interval collections.
// None of the functions mutate their arguments.
package analytics

import (
	"github.com/henderiw/intervalset/pkg/interval"
	"github.com/henderiw/intervalset/pkg/intervalset"
	"github.com/henderiw/intervalset/pkg/multiset"
	"github.com/henderiw/intervalset/pkg/timeline"
)

// Similarity compares the intervals s1 and s2 assign to their common labels.
// Every overlapping pair contributes its overlap length minus one; the sum
// is divided by the latest end over both sets.
func Similarity[L comparable](s1, s2 multiset.MultiIntervalSet[L]) float64 {
	maxTime := max(MaxTimeMulti(s1), MaxTimeMulti(s2))
	if maxTime <= 0 {
		return 0
	}

	var similar int64
	for l := range s1.Labels().Intersection(s2.Labels()) {
		i1 := orderedIntervals(s1, l)
		i2 := orderedIntervals(s2, l)
		for a, b := 0, 0; a < len(i1) && b < len(i2); {
			switch interval.Compare(i1[a], i2[b]) {
			case -1:
				a++
			case 1:
				b++
			default:
				overlap, _ := i1[a].Overlap(i2[b])
				similar += overlap.Length() - 1
				a++
				b++
			}
		}
	}
	return float64(similar) / float64(maxTime)
}

// ConflictRatio returns the share of units in [0, maxTime] at which two
// different labels hold intervals overlapping by more than one unit. The
// ratio is taken over maxTime.
func ConflictRatio[L comparable](s intervalset.IntervalSet[L]) float64 {
	maxTime := MaxTime(s)
	if maxTime <= 0 {
		return 0
	}

	labels := s.Labels().UnsortedList()
	intervals := make([]interval.Interval, len(labels))
	for idx, l := range labels {
		intervals[idx], _ = s.Get(l)
	}

	var conflicts int64
	for t := int64(0); t <= maxTime; t++ {
		if conflictAt(len(intervals), func(a, b int) bool {
			overlap, ok := intervals[a].Overlap(intervals[b])
			return ok && overlap.Length() > 1 && overlap.Contains(t)
		}) {
			conflicts++
		}
	}
	return float64(conflicts) / float64(maxTime)
}

// ConflictRatioMulti is ConflictRatio for a set whose labels own many
// intervals. A unit conflicts when the intervals of two labels covering it
// overlap by more than one unit.
func ConflictRatioMulti[L comparable](s multiset.MultiIntervalSet[L]) float64 {
	maxTime := MaxTimeMulti(s)
	if maxTime <= 0 {
		return 0
	}

	var views []intervalset.IntervalSet[int]
	for l := range s.Labels() {
		if view, ok := s.Intervals(l); ok {
			views = append(views, view)
		}
	}

	var conflicts int64
	for t := int64(0); t <= maxTime; t++ {
		if conflictAt(len(views), func(a, b int) bool {
			i1, ok := intervalAt(views[a], t)
			if !ok {
				return false
			}
			i2, ok := intervalAt(views[b], t)
			if !ok {
				return false
			}
			overlap, ok := i1.Overlap(i2)
			return ok && overlap.Length() > 1
		}) {
			conflicts++
		}
	}
	return float64(conflicts) / float64(maxTime)
}

// FreeTimeRatio returns the share of units in [0, maxTime] covered by no
// label, taken over maxTime+1 units. An empty set has ratio 0.
func FreeTimeRatio[L comparable](s intervalset.IntervalSet[L]) float64 {
	maxTime := MaxTime(s)
	if maxTime < 0 {
		return 0
	}
	o := timeline.NewOccupancy(maxTime)
	for l := range s.Labels() {
		if i, ok := s.Get(l); ok {
			o.Add(i)
		}
	}
	return float64(o.Free()) / float64(o.Size())
}

// FreeTimeRatioMulti is FreeTimeRatio for a set whose labels own many
// intervals.
func FreeTimeRatioMulti[L comparable](s multiset.MultiIntervalSet[L]) float64 {
	maxTime := MaxTimeMulti(s)
	if maxTime < 0 {
		return 0
	}
	o := timeline.NewOccupancy(maxTime)
	multiset.Walk(s, func(_ L, i interval.Interval) bool {
		o.Add(i)
		return true
	})
	return float64(o.Free()) / float64(o.Size())
}

// MaxTime returns the latest end of s, -1 when s is empty.
func MaxTime[L comparable](s intervalset.IntervalSet[L]) int64 {
	maxTime := int64(-1)
	for l := range s.Labels() {
		maxTime = max(maxTime, s.End(l))
	}
	return maxTime
}

// MaxTimeMulti returns the latest end of s, -1 when s is empty.
func MaxTimeMulti[L comparable](s multiset.MultiIntervalSet[L]) int64 {
	maxTime := int64(-1)
	multiset.Walk(s, func(_ L, i interval.Interval) bool {
		maxTime = max(maxTime, i.End())
		return true
	})
	return maxTime
}

// conflictAt reports whether conflict holds for some pair of distinct
// indices below n.
func conflictAt(n int, conflict func(a, b int) bool) bool {
	for a := 0; a < n; a++ {
		for b := a + 1; b < n; b++ {
			if conflict(a, b) {
				return true
			}
		}
	}
	return false
}

func intervalAt(view intervalset.IntervalSet[int], t int64) (interval.Interval, bool) {
	idx, ok := view.LabelByTime(t)
	if !ok {
		return interval.Interval{}, false
	}
	return view.Get(idx)
}

func orderedIntervals[L comparable](s multiset.MultiIntervalSet[L], label L) []interval.Interval {
	view, ok := s.Intervals(label)
	if !ok {
		return nil
	}
	return multiset.Ordered(view)
}
