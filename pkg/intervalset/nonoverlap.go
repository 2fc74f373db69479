package intervalset

import (
	"github.com/go-logr/logr"
	"github.com/henderiw/intervalset/pkg/interval"
	"k8s.io/apimachinery/pkg/util/sets"
)

// NewNonOverlap wraps s so that no two labels may hold overlapping
// intervals, whatever s itself allows. s must not be used directly
// afterwards.
func NewNonOverlap[L comparable](s IntervalSet[L], opts ...Option) IntervalSet[L] {
	o := newOptions(opts...)
	return &nonOverlap[L]{
		set: s,
		l:   o.logger,
	}
}

type nonOverlap[L comparable] struct {
	set IntervalSet[L]
	l   logr.Logger
}

func (r *nonOverlap[L]) Insert(start, end int64, label L) (bool, error) {
	if err := interval.CheckLabel(label); err != nil {
		return false, err
	}
	i, err := interval.New(start, end)
	if err != nil {
		return false, err
	}
	for l := range r.set.Labels() {
		existing, ok := r.set.Get(l)
		if ok && existing.Overlaps(i) {
			r.l.V(1).Info("insert rejected, overlap", "label", label, "interval", i, "conflict", l)
			return false, nil
		}
	}
	return r.set.Insert(start, end, label)
}

func (r *nonOverlap[L]) Remove(label L) bool                   { return r.set.Remove(label) }
func (r *nonOverlap[L]) Labels() sets.Set[L]                   { return r.set.Labels() }
func (r *nonOverlap[L]) Start(label L) int64                   { return r.set.Start(label) }
func (r *nonOverlap[L]) End(label L) int64                     { return r.set.End(label) }
func (r *nonOverlap[L]) Get(label L) (interval.Interval, bool) { return r.set.Get(label) }
func (r *nonOverlap[L]) LabelByTime(t int64) (L, bool)         { return r.set.LabelByTime(t) }
func (r *nonOverlap[L]) Count() int                            { return r.set.Count() }
