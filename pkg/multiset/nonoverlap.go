package multiset

import (
	"github.com/go-logr/logr"
	"github.com/henderiw/intervalset/pkg/interval"
	"github.com/henderiw/intervalset/pkg/intervalset"
	"k8s.io/apimachinery/pkg/util/sets"
)

// NonOverlap forbids overlap between any two intervals, whatever their
// label, so at most one label is active at any instant.
type NonOverlap[L comparable] struct {
	set MultiIntervalSet[L]
	l   logr.Logger
}

// NewNonOverlap wraps s. s must not be used directly afterwards.
func NewNonOverlap[L comparable](s MultiIntervalSet[L], opts ...Option) *NonOverlap[L] {
	o := newOptions(opts...)
	return &NonOverlap[L]{
		set: s,
		l:   o.logger,
	}
}

func (r *NonOverlap[L]) Insert(start, end int64, label L) (bool, error) {
	if err := interval.CheckLabel(label); err != nil {
		return false, err
	}
	i, err := interval.New(start, end)
	if err != nil {
		return false, err
	}
	conflict := false
	Walk(r.set, func(l L, existing interval.Interval) bool {
		if existing.Overlaps(i) {
			r.l.V(1).Info("insert rejected, overlap", "label", label, "interval", i, "conflict", l)
			conflict = true
		}
		return !conflict
	})
	if conflict {
		return false, nil
	}
	return r.set.Insert(start, end, label)
}

func (r *NonOverlap[L]) Remove(label L) bool { return r.set.Remove(label) }
func (r *NonOverlap[L]) Labels() sets.Set[L] { return r.set.Labels() }
func (r *NonOverlap[L]) Intervals(label L) (intervalset.IntervalSet[int], bool) {
	return r.set.Intervals(label)
}

// LabelByTime returns the label active at t.
func (r *NonOverlap[L]) LabelByTime(t int64) (L, bool) {
	var found L
	ok := false
	Walk(r.set, func(l L, i interval.Interval) bool {
		if i.Contains(t) {
			found, ok = l, true
		}
		return !ok
	})
	return found, ok
}
