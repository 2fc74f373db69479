package intervalset

import (
	"fmt"

	"github.com/henderiw/intervalset/pkg/interval"
	utilerrors "k8s.io/apimachinery/pkg/util/errors"
)

// CheckDisjoint returns an aggregate error listing every pair of labels
// whose intervals overlap; nil when the set is overlap free.
func CheckDisjoint[L comparable](s IntervalSet[L]) error {
	var errs []error
	labels := s.Labels().UnsortedList()
	for i := 0; i < len(labels); i++ {
		a, _ := s.Get(labels[i])
		for j := i + 1; j < len(labels); j++ {
			b, _ := s.Get(labels[j])
			if a.Overlaps(b) {
				errs = append(errs, fmt.Errorf("label %v %s overlaps label %v %s", labels[i], a, labels[j], b))
			}
		}
	}
	return utilerrors.NewAggregate(errs)
}

// CheckBounded returns an aggregate error listing every interval that ends
// after maxTime.
func CheckBounded[L comparable](s IntervalSet[L], maxTime int64) error {
	var errs []error
	for l := range s.Labels() {
		i, ok := s.Get(l)
		if !ok {
			errs = append(errs, fmt.Errorf("label %v has no interval", l))
			continue
		}
		if i.End() > maxTime {
			errs = append(errs, fmt.Errorf("%w: label %v %s ends after %d", interval.ErrInvalidRange, l, i, maxTime))
		}
	}
	return utilerrors.NewAggregate(errs)
}
