package plan

import (
	"fmt"

	"github.com/go-logr/logr"
	"github.com/henderiw/intervalset/pkg/intervalset"
	"github.com/henderiw/intervalset/pkg/multiset"
)

// Outcome records what happened to one entry.
type Outcome struct {
	Entry    Entry
	Inserted bool
	Err      error
}

// Multi is the composed multi interval stack of a plan. NoBlank and Periodic
// are nil when the plan does not enable them.
type Multi struct {
	Set      multiset.MultiIntervalSet[string]
	NoBlank  *multiset.NoBlank[string]
	Periodic *multiset.Periodic[string]
}

// Single is the composed single interval stack of a plan. NoBlank is nil
// when the plan is unbounded.
type Single struct {
	Set     intervalset.IntervalSet[string]
	NoBlank *intervalset.NoBlank[string]
}

// BuildMulti composes base, no-blank, non-overlap and periodic layers as the
// plan enables them and inserts every entry in order.
func (r *Plan) BuildMulti(log logr.Logger) (*Multi, []Outcome, error) {
	if r.Kind != KindMulti {
		return nil, nil, fmt.Errorf("%w, cannot build %q plan as multi", ErrInvalidKind, r.Kind)
	}
	m := &Multi{}
	m.Set = multiset.New[string](multiset.WithLogger(log))
	if r.Bounded() {
		nb, err := multiset.NewNoBlank(m.Set, r.MaxTime)
		if err != nil {
			return nil, nil, err
		}
		m.NoBlank, m.Set = nb, nb
	}
	if r.NonOverlap {
		m.Set = multiset.NewNonOverlap(m.Set, multiset.WithLogger(log))
	}
	if r.Period > 0 {
		p, err := multiset.NewPeriodic(m.Set, r.Period, multiset.WithLogger(log))
		if err != nil {
			return nil, nil, err
		}
		m.Periodic, m.Set = p, p
	}

	outcomes := make([]Outcome, 0, len(r.Entries))
	for _, e := range r.Entries {
		o := Outcome{Entry: e}
		if m.Periodic != nil {
			o.Inserted, o.Err = m.Periodic.InsertPeriod(e.Start, e.End, e.Label, e.Repetitions())
		} else {
			o.Inserted, o.Err = m.Set.Insert(e.Start, e.End, e.Label)
		}
		log.V(1).Info("entry", "entry", e.String(), "inserted", o.Inserted, "error", o.Err)
		outcomes = append(outcomes, o)
	}
	return m, outcomes, nil
}

// BuildSingle composes base, no-blank and non-overlap layers as the plan
// enables them and inserts every entry in order.
func (r *Plan) BuildSingle(log logr.Logger) (*Single, []Outcome, error) {
	if r.Kind != KindSingle {
		return nil, nil, fmt.Errorf("%w, cannot build %q plan as single", ErrInvalidKind, r.Kind)
	}
	opts := []intervalset.Option{intervalset.WithLogger(log)}
	if r.AllowOverlap {
		opts = append(opts, intervalset.AllowOverlap())
	}
	s := &Single{}
	s.Set = intervalset.New[string](opts...)
	if r.Bounded() {
		nb, err := intervalset.NewNoBlank(s.Set, r.MaxTime)
		if err != nil {
			return nil, nil, err
		}
		s.NoBlank, s.Set = nb, nb
	}
	if r.NonOverlap {
		s.Set = intervalset.NewNonOverlap(s.Set, intervalset.WithLogger(log))
	}

	outcomes := make([]Outcome, 0, len(r.Entries))
	for _, e := range r.Entries {
		o := Outcome{Entry: e}
		o.Inserted, o.Err = s.Set.Insert(e.Start, e.End, e.Label)
		log.V(1).Info("entry", "entry", e.String(), "inserted", o.Inserted, "error", o.Err)
		outcomes = append(outcomes, o)
	}
	return s, outcomes, nil
}

// Rejected returns the outcomes that were not inserted.
func Rejected(outcomes []Outcome) []Outcome {
	var rejected []Outcome
	for _, o := range outcomes {
		if !o.Inserted {
			rejected = append(rejected, o)
		}
	}
	return rejected
}
