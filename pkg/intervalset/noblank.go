package intervalset

import (
	"fmt"

	"github.com/henderiw/intervalset/pkg/interval"
	"github.com/henderiw/intervalset/pkg/timeline"
	"k8s.io/apimachinery/pkg/util/sets"
)

// NoBlank bounds the timeline of the wrapped set to [0, maxTime] and reports
// how much of it is left uncovered.
type NoBlank[L comparable] struct {
	set     IntervalSet[L]
	maxTime int64
}

// NewNoBlank wraps s with the bound maxTime. s must not be used directly
// afterwards.
func NewNoBlank[L comparable](s IntervalSet[L], maxTime int64) (*NoBlank[L], error) {
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

func (r *NoBlank[L]) Remove(label L) bool                   { return r.set.Remove(label) }
func (r *NoBlank[L]) Labels() sets.Set[L]                   { return r.set.Labels() }
func (r *NoBlank[L]) Start(label L) int64                   { return r.set.Start(label) }
func (r *NoBlank[L]) End(label L) int64                     { return r.set.End(label) }
func (r *NoBlank[L]) Get(label L) (interval.Interval, bool) { return r.set.Get(label) }
func (r *NoBlank[L]) LabelByTime(t int64) (L, bool)         { return r.set.LabelByTime(t) }
func (r *NoBlank[L]) Count() int                            { return r.set.Count() }

func (r *NoBlank[L]) MaxTime() int64 { return r.maxTime }

// CountBlank returns the number of units in [0, maxTime] covered by no
// interval.
func (r *NoBlank[L]) CountBlank() int64 {
	return r.occupancy().Free()
}

// BlankRate returns the blank units as a percentage of maxTime+1 units.
func (r *NoBlank[L]) BlankRate() float64 {
	return float64(r.CountBlank()) / float64(r.maxTime+1) * 100
}

// FirstBlank returns the earliest blank unit.
func (r *NoBlank[L]) FirstBlank() (int64, bool) {
	return r.occupancy().FirstFree()
}

// Blanks returns the maximal runs of blank units.
func (r *NoBlank[L]) Blanks() []interval.Interval {
	return r.occupancy().FreeRanges()
}

func (r *NoBlank[L]) occupancy() *timeline.Occupancy {
	o := timeline.NewOccupancy(r.maxTime)
	for l := range r.set.Labels() {
		if i, ok := r.set.Get(l); ok {
			o.Add(i)
		}
	}
	return o
}
