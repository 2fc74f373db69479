// Package timeline counts how the units of a bounded timeline [0, maxTime]
// are covered by intervals.
package timeline

import (
	"github.com/henderiw/intervalset/pkg/interval"
)

// Occupancy records how many intervals cover each unit of [0, maxTime].
// Only the units where the depth changes are stored, so memory grows with
// the number of intervals added, not with maxTime. Intervals are clipped to
// the timeline.
//
// Callers add the intervals of one label disjointly, as both collections
// guarantee, so the depth of a unit is the number of labels covering it.
type Occupancy struct {
	// depth change at the unit, never 0
	table   Table[int]
	maxTime int64
}

// NewOccupancy returns an empty occupancy for [0, maxTime]. A negative
// maxTime yields an empty timeline.
func NewOccupancy(maxTime int64) *Occupancy {
	size := maxTime + 1
	if size < 0 {
		size = 0
	}
	return &Occupancy{
		table:   NewTable[int](size),
		maxTime: maxTime,
	}
}

// Add marks every unit of i within the timeline as covered once more.
func (r *Occupancy) Add(i interval.Interval) {
	if i.Start() > r.maxTime {
		return
	}
	r.shift(i.Start(), 1)
	if i.End() < r.maxTime {
		r.shift(i.End()+1, -1)
	}
}

// shift changes the depth from t onwards by delta. t is within the table.
func (r *Occupancy) shift(t int64, delta int) {
	if !r.table.Has(t) {
		_ = r.table.Claim(t, delta)
		return
	}
	d, _ := r.table.Get(t)
	if d+delta == 0 {
		_ = r.table.Release(t)
		return
	}
	_ = r.table.Update(t, d+delta)
}

// runs calls fn for the maximal runs of equal depth in ascending order,
// until fn returns false.
func (r *Occupancy) runs(fn func(start, end int64, depth int) bool) {
	var start int64
	depth := 0
	iter := r.table.Iterate()
	for iter.Next() {
		if iter.ID() > start {
			if !fn(start, iter.ID()-1, depth) {
				return
			}
		}
		start = iter.ID()
		depth += iter.Value()
	}
	if start <= r.maxTime {
		fn(start, r.maxTime, depth)
	}
}

// Size returns the number of units in the timeline.
func (r *Occupancy) Size() int64 { return r.table.Size() }

// Covered returns the number of units covered at least once.
func (r *Occupancy) Covered() int64 { return r.Size() - r.Free() }

// Free returns the number of units covered by nothing.
func (r *Occupancy) Free() int64 {
	return r.count(func(depth int) bool { return depth == 0 })
}

// Shared returns the number of units covered more than once.
func (r *Occupancy) Shared() int64 {
	return r.count(func(depth int) bool { return depth > 1 })
}

func (r *Occupancy) count(match func(depth int) bool) int64 {
	var n int64
	r.runs(func(start, end int64, depth int) bool {
		if match(depth) {
			n += end - start + 1
		}
		return true
	})
	return n
}

// FirstFree returns the earliest unit covered by nothing.
func (r *Occupancy) FirstFree() (int64, bool) {
	first, ok := int64(0), false
	r.runs(func(start, _ int64, depth int) bool {
		if depth == 0 {
			first, ok = start, true
		}
		return !ok
	})
	return first, ok
}

// FreeRanges returns the maximal runs of free units in ascending order.
func (r *Occupancy) FreeRanges() []interval.Interval {
	var ranges []interval.Interval
	r.runs(func(start, end int64, depth int) bool {
		if depth == 0 {
			ranges = append(ranges, mustInterval(start, end))
		}
		return true
	})
	return ranges
}

func mustInterval(start, end int64) interval.Interval {
	i, err := interval.New(start, end)
	if err != nil {
		panic(err)
	}
	return i
}
