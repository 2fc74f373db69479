package multiset

import (
	"fmt"

	"github.com/henderiw/intervalset/pkg/interval"
	"github.com/henderiw/intervalset/pkg/intervalset"
	"github.com/henderiw/intervalset/pkg/timeline"
	"k8s.io/apimachinery/pkg/util/sets"
)

// NoBlank bounds the timeline of the wrapped set to [0, maxTime] and reports
// how much of it is uncovered or covered by more than one label.
type NoBlank[L comparable] struct {
	set     MultiIntervalSet[L]
	maxTime int64
}

// NewNoBlank wraps s with the bound maxTime. s must not be used directly
// afterwards.
func NewNoBlank[L comparable](s MultiIntervalSet[L], maxTime int64) (*NoBlank[L], error) {
	if maxTime < 0 {
		return nil, fmt.Errorf("%w: maxTime %d cannot be negative", interval.ErrInvalidRange, maxTime)
	}
	return &NoBlank[L]{
		set:     s,
		maxTime: maxTime,
	}, nil
}

// Insert fails with ErrInvalidRange when end is beyond maxTime.
func (r *NoBlank[L]) Insert(start, end int64, label L) (bool, error) {
	if end > r.maxTime {
		return false, fmt.Errorf("%w: end %d is bigger then maxTime %d", interval.ErrInvalidRange, end, r.maxTime)
	}
	return r.set.Insert(start, end, label)
}

func (r *NoBlank[L]) Remove(label L) bool { return r.set.Remove(label) }
func (r *NoBlank[L]) Labels() sets.Set[L] { return r.set.Labels() }
func (r *NoBlank[L]) Intervals(label L) (intervalset.IntervalSet[int], bool) {
	return r.set.Intervals(label)
}

func (r *NoBlank[L]) MaxTime() int64 { return r.maxTime }

// CountBlank returns the number of units in [0, maxTime] covered by no
// label.
func (r *NoBlank[L]) CountBlank() int64 {
	return r.occupancy().Free()
}

// BlankRate returns the blank units as a percentage of maxTime+1 units.
func (r *NoBlank[L]) BlankRate() float64 {
	return r.percentage(r.CountBlank())
}

// OverlapRate returns the units covered by more than one label as a
// percentage of maxTime+1 units.
func (r *NoBlank[L]) OverlapRate() float64 {
	return r.percentage(r.occupancy().Shared())
}

// FirstBlank returns the earliest blank unit.
func (r *NoBlank[L]) FirstBlank() (int64, bool) {
	return r.occupancy().FirstFree()
}

// Blanks returns the maximal runs of blank units.
func (r *NoBlank[L]) Blanks() []interval.Interval {
	return r.occupancy().FreeRanges()
}

func (r *NoBlank[L]) percentage(units int64) float64 {
	return float64(units) / float64(r.maxTime+1) * 100
}

func (r *NoBlank[L]) occupancy() *timeline.Occupancy {
	o := timeline.NewOccupancy(r.maxTime)
	Walk(r.set, func(_ L, i interval.Interval) bool {
		o.Add(i)
		return true
	})
	return o
}
