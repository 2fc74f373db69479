// Package multiset implements a label indexed collection in which a label
// may own many intervals, plus the decorators that add constraints on top
// of it.
package multiset

import (
	"github.com/emirpasic/gods/v2/sets/treeset"
	"github.com/go-logr/logr"
	"github.com/henderiw/intervalset/pkg/interval"
	"github.com/henderiw/intervalset/pkg/intervalset"
	"k8s.io/apimachinery/pkg/util/sets"
)

// MultiIntervalSet maps labels to an ordered set of intervals. The intervals
// of one label never overlap each other; intervals of different labels may,
// unless a decorator forbids it.
//
// Intervals returns the canonical view of a label: a new IntervalSet keyed
// 0..n-1 in ascending start order. Like Labels, it is freshly built on every
// call and owned by the caller.
type MultiIntervalSet[L comparable] interface {
	Insert(start, end int64, label L) (bool, error)
	Remove(label L) bool
	Labels() sets.Set[L]
	Intervals(label L) (intervalset.IntervalSet[int], bool)
}

func New[L comparable](opts ...Option) MultiIntervalSet[L] {
	o := newOptions(opts...)
	return &multiSet[L]{
		intervals: map[L]*treeset.Set[interval.Interval]{},
		l:         o.logger,
	}
}

// FromIntervalSet returns a MultiIntervalSet holding the single interval of
// every label of initial.
func FromIntervalSet[L comparable](initial intervalset.IntervalSet[L], opts ...Option) MultiIntervalSet[L] {
	r := New[L](opts...).(*multiSet[L])
	for l := range initial.Labels() {
		if i, ok := initial.Get(l); ok {
			r.add(l, i)
		}
	}
	return r
}

type multiSet[L comparable] struct {
	intervals map[L]*treeset.Set[interval.Interval]
	l         logr.Logger
}

func (r *multiSet[L]) Insert(start, end int64, label L) (bool, error) {
	if err := interval.CheckLabel(label); err != nil {
		return false, err
	}
	i, err := interval.New(start, end)
	if err != nil {
		return false, err
	}
	if set, ok := r.intervals[label]; ok && set.Contains(i) {
		// the comparator treats overlapping intervals as equal
		r.l.V(1).Info("insert rejected, overlap with same label", "label", label, "interval", i)
		return false, nil
	}
	r.add(label, i)
	return true, nil
}

func (r *multiSet[L]) add(label L, i interval.Interval) {
	set, ok := r.intervals[label]
	if !ok {
		set = treeset.NewWith[interval.Interval](interval.Compare)
		r.intervals[label] = set
	}
	set.Add(i)
}

func (r *multiSet[L]) Remove(label L) bool {
	if _, ok := r.intervals[label]; !ok {
		return false
	}
	delete(r.intervals, label)
	return true
}

func (r *multiSet[L]) Labels() sets.Set[L] {
	labels := sets.New[L]()
	for l := range r.intervals {
		labels.Insert(l)
	}
	return labels
}

func (r *multiSet[L]) Intervals(label L) (intervalset.IntervalSet[int], bool) {
	set, ok := r.intervals[label]
	if !ok {
		return nil, false
	}
	ordered := intervalset.New[int]()
	iter := set.Iterator()
	for iter.Next() {
		// values are disjoint and ascending, the insert cannot be rejected
		_, _ = ordered.Insert(iter.Value().Start(), iter.Value().End(), iter.Index())
	}
	return ordered, true
}
