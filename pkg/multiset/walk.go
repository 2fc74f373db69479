package multiset

import (
	"github.com/henderiw/intervalset/pkg/interval"
	"github.com/henderiw/intervalset/pkg/intervalset"
)

// Ordered returns the intervals of a canonical view in index order.
func Ordered(s intervalset.IntervalSet[int]) []interval.Interval {
	if s == nil {
		return nil
	}
	intervals := make([]interval.Interval, 0, s.Count())
	for idx := 0; idx < s.Count(); idx++ {
		if i, ok := s.Get(idx); ok {
			intervals = append(intervals, i)
		}
	}
	return intervals
}

// Walk calls fn for every interval of every label, in ascending order per
// label, until fn returns false.
func Walk[L comparable](s MultiIntervalSet[L], fn func(label L, i interval.Interval) bool) {
	for l := range s.Labels() {
		view, ok := s.Intervals(l)
		if !ok {
			continue
		}
		for _, i := range Ordered(view) {
			if !fn(l, i) {
				return
			}
		}
	}
}
