// Package interval provides the immutable time range used by the interval
// collections. Two intervals compare as equal when they overlap, which lets
// ordered containers detect conflicts with a plain lookup.
package interval

import (
	"fmt"
)

// Interval is the inclusive range [start, end] with 0 <= start <= end.
type Interval struct {
	start int64
	end   int64
}

// New returns the interval [start, end] or an ErrInvalidRange error.
func New(start, end int64) (Interval, error) {
	if err := Validate(start, end); err != nil {
		return Interval{}, err
	}
	return Interval{start: start, end: end}, nil
}

// Validate checks 0 <= start <= end.
func Validate(start, end int64) error {
	if start < 0 {
		return fmt.Errorf("%w: start %d cannot be negative", ErrInvalidRange, start)
	}
	if start > end {
		return fmt.Errorf("%w: start %d is bigger then end %d", ErrInvalidRange, start, end)
	}
	return nil
}

func (r Interval) Start() int64 { return r.start }
func (r Interval) End() int64   { return r.end }

// Length returns the number of time units covered, always >= 1.
func (r Interval) Length() int64 { return r.end - r.start + 1 }

func (r Interval) Contains(t int64) bool {
	return r.start <= t && t <= r.end
}

// Overlap returns the sub interval shared by r and other.
func (r Interval) Overlap(other Interval) (Interval, bool) {
	bigger, smaller := other, r
	if r.end > other.end {
		bigger, smaller = r, other
	}
	if bigger.start <= smaller.end {
		return Interval{start: bigger.start, end: smaller.end}, true
	}
	return Interval{}, false
}

func (r Interval) Overlaps(other Interval) bool {
	_, ok := r.Overlap(other)
	return ok
}

// Compare returns 0 if r and other overlap, otherwise -1 when r starts
// first and +1 when other does.
func (r Interval) Compare(other Interval) int {
	if r.Overlaps(other) {
		return 0
	}
	if r.start < other.start {
		return -1
	}
	return 1
}

func (r Interval) String() string {
	return fmt.Sprintf("[%d,%d]", r.start, r.end)
}

// Compare is the overlap-as-equality comparator, usable wherever an
// ordering func(a, b) int is expected.
func Compare(a, b Interval) int {
	return a.Compare(b)
}
