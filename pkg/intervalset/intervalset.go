// Package intervalset implements a label indexed collection in which every
// label owns exactly one interval, plus the decorators that add constraints
// on top of it.
package intervalset

import (
	"github.com/go-logr/logr"
	"github.com/henderiw/intervalset/pkg/interval"
	"k8s.io/apimachinery/pkg/util/sets"
)

// IntervalSet maps labels to a single interval each.
//
// Insert returns an error wrapping interval.ErrInvalidRange or
// interval.ErrNullLabel for bad input and false for a conflict; in both
// cases the set is left unchanged. Labels returns a freshly allocated set
// the caller owns.
type IntervalSet[L comparable] interface {
	Insert(start, end int64, label L) (bool, error)
	Remove(label L) bool
	Labels() sets.Set[L]
	// Start and End return -1 when the label is absent.
	Start(label L) int64
	End(label L) int64
	Get(label L) (interval.Interval, bool)
	// LabelByTime returns a label whose interval contains t.
	LabelByTime(t int64) (L, bool)
	Count() int
}

// New returns an empty IntervalSet. By default an interval overlapping an
// interval of another label is rejected, see AllowOverlap.
func New[L comparable](opts ...Option) IntervalSet[L] {
	o := newOptions(opts...)
	return &intervalSet[L]{
		intervals:    map[L]interval.Interval{},
		allowOverlap: o.allowOverlap,
		l:            o.logger,
	}
}

type intervalSet[L comparable] struct {
	intervals    map[L]interval.Interval
	allowOverlap bool
	l            logr.Logger
}

func (r *intervalSet[L]) Insert(start, end int64, label L) (bool, error) {
	if err := interval.CheckLabel(label); err != nil {
		return false, err
	}
	i, err := interval.New(start, end)
	if err != nil {
		return false, err
	}
	if _, ok := r.intervals[label]; ok {
		r.l.V(1).Info("insert rejected, label exists", "label", label, "interval", i)
		return false, nil
	}
	if !r.allowOverlap {
		for l, existing := range r.intervals {
			if existing.Overlaps(i) {
				r.l.V(1).Info("insert rejected, overlap", "label", label, "interval", i, "conflict", l)
				return false, nil
			}
		}
	}
	r.intervals[label] = i
	return true, nil
}

func (r *intervalSet[L]) Remove(label L) bool {
	if _, ok := r.intervals[label]; !ok {
		return false
	}
	delete(r.intervals, label)
	return true
}

func (r *intervalSet[L]) Labels() sets.Set[L] {
	labels := sets.New[L]()
	for l := range r.intervals {
		labels.Insert(l)
	}
	return labels
}

func (r *intervalSet[L]) Start(label L) int64 {
	i, ok := r.intervals[label]
	if !ok {
		return -1
	}
	return i.Start()
}

func (r *intervalSet[L]) End(label L) int64 {
	i, ok := r.intervals[label]
	if !ok {
		return -1
	}
	return i.End()
}

func (r *intervalSet[L]) Get(label L) (interval.Interval, bool) {
	i, ok := r.intervals[label]
	return i, ok
}

func (r *intervalSet[L]) LabelByTime(t int64) (L, bool) {
	for l, i := range r.intervals {
		if i.Contains(t) {
			return l, true
		}
	}
	var l L
	return l, false
}

func (r *intervalSet[L]) Count() int {
	return len(r.intervals)
}
