// Package plan describes a roster of labelled intervals in YAML and builds
// the matching decorated interval collection from it.
package plan

import (
	"errors"
	"fmt"

	"github.com/henderiw/intervalset/pkg/interval"
	utilerrors "k8s.io/apimachinery/pkg/util/errors"
	"k8s.io/apimachinery/pkg/labels"
)

// Kind selects the collection a plan builds.
type Kind string

const (
	// KindMulti builds a MultiIntervalSet, a label may own many intervals.
	KindMulti Kind = "multi"
	// KindSingle builds an IntervalSet, a label owns one interval.
	KindSingle Kind = "single"
)

// Plan is the top-level plan document. Field tags use mapstructure for
// viper unmarshalling.
type Plan struct {
	Kind Kind `mapstructure:"kind"`
	// MaxTime bounds the timeline, a negative value leaves it unbounded.
	MaxTime      int64   `mapstructure:"max_time"`
	NonOverlap   bool    `mapstructure:"non_overlap"`
	AllowOverlap bool    `mapstructure:"allow_overlap"`
	Period       int64   `mapstructure:"period"`
	Entries      []Entry `mapstructure:"entries"`
}

// Entry is one interval assignment. Times repeats it every Period units.
type Entry struct {
	Label string            `mapstructure:"label"`
	Start int64             `mapstructure:"start"`
	End   int64             `mapstructure:"end"`
	Times int               `mapstructure:"times"`
	Tags  map[string]string `mapstructure:"tags"`
}

// Repetitions returns how often the entry is inserted, an unset Times counts
// as one.
func (r Entry) Repetitions() int {
	if r.Times == 0 {
		return 1
	}
	return r.Times
}

func (r Entry) String() string {
	if r.Repetitions() > 1 {
		return fmt.Sprintf("%s [%d,%d]x%d", r.Label, r.Start, r.End, r.Repetitions())
	}
	return fmt.Sprintf("%s [%d,%d]", r.Label, r.Start, r.End)
}

// Sentinel errors for plan validation.
var (
	// ErrInvalidKind indicates an unknown kind.
	ErrInvalidKind = errors.New("kind must be multi or single")
	// ErrInvalidPeriod indicates a negative period.
	ErrInvalidPeriod = errors.New("period must be non-negative")
	// ErrPeriodNeedsMulti indicates a period on a single kind plan.
	ErrPeriodNeedsMulti = errors.New("period and times require kind multi")
	// ErrAllowOverlapNeedsSingle indicates allow_overlap on a multi kind plan.
	ErrAllowOverlapNeedsSingle = errors.New("allow_overlap requires kind single")
	// ErrInvalidEntry indicates a malformed entry.
	ErrInvalidEntry = errors.New("invalid entry")
)

// Validate checks the plan and its entries and returns every violation
// found as an aggregate.
func (r *Plan) Validate() error {
	var errs []error
	switch r.Kind {
	case KindMulti:
		if r.AllowOverlap {
			errs = append(errs, ErrAllowOverlapNeedsSingle)
		}
	case KindSingle:
		if r.Period != 0 {
			errs = append(errs, ErrPeriodNeedsMulti)
		}
	default:
		errs = append(errs, fmt.Errorf("%w, got %q", ErrInvalidKind, r.Kind))
	}
	if r.Period < 0 {
		errs = append(errs, ErrInvalidPeriod)
	}
	for idx, e := range r.Entries {
		if e.Label == "" {
			errs = append(errs, fmt.Errorf("%w %d: label cannot be empty", ErrInvalidEntry, idx))
		}
		if err := interval.Validate(e.Start, e.End); err != nil {
			errs = append(errs, fmt.Errorf("%w %d: %w", ErrInvalidEntry, idx, err))
		}
		if e.Times < 0 {
			errs = append(errs, fmt.Errorf("%w %d: times %d cannot be negative", ErrInvalidEntry, idx, e.Times))
		}
		if e.Repetitions() > 1 && (r.Kind != KindMulti || r.Period == 0) {
			errs = append(errs, fmt.Errorf("%w %d: %w", ErrInvalidEntry, idx, ErrPeriodNeedsMulti))
		}
		if _, err := labels.ValidatedSelectorFromSet(e.Tags); err != nil {
			errs = append(errs, fmt.Errorf("%w %d: tags: %w", ErrInvalidEntry, idx, err))
		}
	}
	return utilerrors.NewAggregate(errs)
}

// Select returns a copy of the plan holding only the entries whose tags
// match selector.
func (r *Plan) Select(selector labels.Selector) *Plan {
	selected := *r
	selected.Entries = nil
	for _, e := range r.Entries {
		if selector.Matches(labels.Set(e.Tags)) {
			selected.Entries = append(selected.Entries, e)
		}
	}
	return &selected
}

// Bounded reports whether the plan bounds the timeline with MaxTime.
func (r *Plan) Bounded() bool { return r.MaxTime >= 0 }
