package multiset

import (
	"fmt"

	"github.com/henderiw/intervalset/pkg/interval"
	utilerrors "k8s.io/apimachinery/pkg/util/errors"
)

type labeled[L comparable] struct {
	label    L
	interval interval.Interval
}

func collect[L comparable](s MultiIntervalSet[L]) []labeled[L] {
	var all []labeled[L]
	Walk(s, func(l L, i interval.Interval) bool {
		all = append(all, labeled[L]{label: l, interval: i})
		return true
	})
	return all
}

// CheckLabelDisjoint returns an aggregate error listing the intervals of a
// single label that overlap each other or are out of order in the
// canonical view.
func CheckLabelDisjoint[L comparable](s MultiIntervalSet[L]) error {
	var errs []error
	for l := range s.Labels() {
		view, ok := s.Intervals(l)
		if !ok {
			errs = append(errs, fmt.Errorf("label %v has no canonical view", l))
			continue
		}
		intervals := Ordered(view)
		if len(intervals) != view.Count() {
			errs = append(errs, fmt.Errorf("label %v canonical view is not keyed 0..%d", l, view.Count()-1))
		}
		for idx := 1; idx < len(intervals); idx++ {
			if interval.Compare(intervals[idx-1], intervals[idx]) >= 0 {
				errs = append(errs, fmt.Errorf("label %v interval %s is not before %s", l, intervals[idx-1], intervals[idx]))
			}
		}
	}
	return utilerrors.NewAggregate(errs)
}

// CheckDisjoint returns an aggregate error listing every pair of intervals,
// of any label, that overlap.
func CheckDisjoint[L comparable](s MultiIntervalSet[L]) error {
	var errs []error
	all := collect(s)
	for i := 0; i < len(all); i++ {
		for j := i + 1; j < len(all); j++ {
			if all[i].interval.Overlaps(all[j].interval) {
				errs = append(errs, fmt.Errorf("label %v %s overlaps label %v %s",
					all[i].label, all[i].interval, all[j].label, all[j].interval))
			}
		}
	}
	return utilerrors.NewAggregate(errs)
}

// CheckBounded returns an aggregate error listing every interval that ends
// after maxTime.
func CheckBounded[L comparable](s MultiIntervalSet[L], maxTime int64) error {
	var errs []error
	for _, e := range collect(s) {
		if e.interval.End() > maxTime {
			errs = append(errs, fmt.Errorf("%w: label %v %s ends after %d", interval.ErrInvalidRange, e.label, e.interval, maxTime))
		}
	}
	return utilerrors.NewAggregate(errs)
}
