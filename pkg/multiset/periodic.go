package multiset

import (
	"fmt"

	"github.com/go-logr/logr"
	"github.com/henderiw/intervalset/pkg/interval"
	"github.com/henderiw/intervalset/pkg/intervalset"
	"k8s.io/apimachinery/pkg/util/sets"
)

// Periodic adds all-or-nothing insertion of an interval repeated every
// delta time units.
type Periodic[L comparable] struct {
	set   MultiIntervalSet[L]
	delta int64
	l     logr.Logger
}

// NewPeriodic wraps s with the period length delta. s must not be used
// directly afterwards.
func NewPeriodic[L comparable](s MultiIntervalSet[L], delta int64, opts ...Option) (*Periodic[L], error) {
	if delta <= 0 {
		return nil, fmt.Errorf("%w: period %d must be positive", interval.ErrInvalidRange, delta)
	}
	o := newOptions(opts...)
	return &Periodic[L]{
		set:   s,
		delta: delta,
		l:     o.logger,
	}, nil
}

func (r *Periodic[L]) Insert(start, end int64, label L) (bool, error) {
	return r.set.Insert(start, end, label)
}

func (r *Periodic[L]) Remove(label L) bool { return r.set.Remove(label) }
func (r *Periodic[L]) Labels() sets.Set[L] { return r.set.Labels() }
func (r *Periodic[L]) Intervals(label L) (intervalset.IntervalSet[int], bool) {
	return r.set.Intervals(label)
}

func (r *Periodic[L]) Delta() int64 { return r.delta }

// InsertPeriod inserts [start+k*delta, end+k*delta] for k = 0..times-1.
// When any repetition is rejected or fails, the intervals of label are
// restored to what they were before the call and false, or the error, is
// returned.
func (r *Periodic[L]) InsertPeriod(start, end int64, label L, times int) (bool, error) {
	if err := interval.CheckLabel(label); err != nil {
		return false, err
	}
	if err := interval.Validate(start, end); err != nil {
		return false, err
	}
	if times < 0 {
		return false, fmt.Errorf("%w: times %d cannot be negative", interval.ErrInvalidRange, times)
	}

	var snapshot []interval.Interval
	view, existed := r.set.Intervals(label)
	if existed {
		snapshot = Ordered(view)
	}

	for k := 0; k < times; k++ {
		offset := int64(k) * r.delta
		ok, err := r.set.Insert(start+offset, end+offset, label)
		if err != nil || !ok {
			r.l.V(1).Info("periodic insert rolled back", "label", label, "repetition", k, "error", err)
			if rerr := r.restore(label, existed, snapshot); rerr != nil {
				return false, rerr
			}
			return false, err
		}
	}
	return true, nil
}

func (r *Periodic[L]) restore(label L, existed bool, snapshot []interval.Interval) error {
	r.set.Remove(label)
	if !existed {
		return nil
	}
	for _, i := range snapshot {
		ok, err := r.set.Insert(i.Start(), i.End(), label)
		if err != nil {
			return fmt.Errorf("rollback of label %v failed: %w", label, err)
		}
		if !ok {
			return fmt.Errorf("rollback of label %v failed: interval %s rejected", label, i)
		}
	}
	return nil
}
