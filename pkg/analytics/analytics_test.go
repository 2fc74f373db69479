package analytics

import (
	"testing"

	"github.com/henderiw/intervalset/pkg/intervalset"
	"github.com/henderiw/intervalset/pkg/multiset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type entry struct {
	label      string
	start, end int64
}

func newSet(t *testing.T, entries []entry, opts ...intervalset.Option) intervalset.IntervalSet[string] {
	t.Helper()
	s := intervalset.New[string](opts...)
	for _, e := range entries {
		ok, err := s.Insert(e.start, e.end, e.label)
		require.NoError(t, err)
		require.True(t, ok, "insert %v", e)
	}
	return s
}

func newMulti(t *testing.T, entries []entry) multiset.MultiIntervalSet[string] {
	t.Helper()
	s := multiset.New[string]()
	for _, e := range entries {
		ok, err := s.Insert(e.start, e.end, e.label)
		require.NoError(t, err)
		require.True(t, ok, "insert %v", e)
	}
	return s
}

func TestSimilarity(t *testing.T) {
	cases := map[string]struct {
		s1, s2   []entry
		expected float64
	}{
		"Partial": {
			s1: []entry{
				{"A", 0, 5}, {"A", 20, 25},
				{"B", 10, 20}, {"B", 25, 30},
			},
			s2: []entry{
				{"A", 20, 35},
				{"B", 10, 20},
				{"C", 0, 5},
			},
			expected: float64(15) / 35,
		},
		"Identical": {
			s1:       []entry{{"A", 0, 10}},
			s2:       []entry{{"A", 0, 10}},
			expected: float64(10) / 10,
		},
		"NoCommonLabel": {
			s1: []entry{{"A", 0, 10}},
			s2: []entry{{"B", 0, 10}},
		},
		"Empty": {},
		"OnlyZero": {
			s1: []entry{{"A", 0, 0}},
			s2: []entry{{"A", 0, 0}},
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			s1 := newMulti(t, tc.s1)
			s2 := newMulti(t, tc.s2)
			assert.InDelta(t, tc.expected, Similarity(s1, s2), 1e-9)
			assert.InDelta(t, tc.expected, Similarity(s2, s1), 1e-9)
		})
	}
}

func TestConflictRatio(t *testing.T) {
	cases := map[string]struct {
		entries  []entry
		expected float64
	}{
		"Overlapping": {
			entries:  []entry{{"A", 0, 5}, {"B", 10, 20}, {"C", 4, 14}},
			expected: 0.35,
		},
		"SingleUnitOverlap": {
			entries: []entry{{"A", 0, 5}, {"B", 5, 10}},
		},
		"Disjoint": {
			entries: []entry{{"A", 0, 5}, {"B", 6, 10}},
		},
		"Empty": {},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			s := newSet(t, tc.entries, intervalset.AllowOverlap())
			assert.InDelta(t, tc.expected, ConflictRatio(s), 1e-9)
		})
	}

	// a non overlapping set never conflicts
	s := newSet(t, []entry{{"A", 0, 5}, {"B", 10, 20}})
	assert.Equal(t, 0.0, ConflictRatio(intervalset.NewNonOverlap(s)))
}

func TestConflictRatioMulti(t *testing.T) {
	cases := map[string]struct {
		entries  []entry
		expected float64
	}{
		"TouchingOnly": {
			entries: []entry{
				{"A", 0, 5}, {"A", 20, 25},
				{"B", 10, 20}, {"B", 25, 30},
			},
		},
		"Overlapping": {
			entries: []entry{
				{"A", 0, 5}, {"A", 12, 20},
				{"B", 3, 9},
			},
			// [3,5] conflicts, [12,20] is A alone
			expected: float64(3) / 20,
		},
		"Empty": {},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.InDelta(t, tc.expected, ConflictRatioMulti(newMulti(t, tc.entries)), 1e-9)
		})
	}
}

func TestConflictRatioMultiNonOverlap(t *testing.T) {
	s := multiset.NewNonOverlap(multiset.New[string]())
	cases := []struct {
		e          entry
		expectedOk bool
	}{
		{e: entry{"A", 0, 5}, expectedOk: true},
		{e: entry{"B", 3, 9}},
		{e: entry{"B", 6, 12}, expectedOk: true},
		{e: entry{"C", 10, 20}},
		{e: entry{"A", 13, 20}, expectedOk: true},
		{e: entry{"C", 20, 25}},
	}
	for _, tc := range cases {
		ok, err := s.Insert(tc.e.start, tc.e.end, tc.e.label)
		require.NoError(t, err)
		assert.Equal(t, tc.expectedOk, ok, "insert %v", tc.e)
	}
	assert.Equal(t, 0.0, ConflictRatioMulti(s))
	assert.Equal(t, 0.0, FreeTimeRatioMulti(s))
}

func TestFreeTimeRatioLongTimeline(t *testing.T) {
	s := newSet(t, []entry{{"A", 0, 2_000_000}})
	assert.Equal(t, 0.0, FreeTimeRatio(s))

	s = newSet(t, []entry{{"A", 1_000_000_000, 2_000_000_000}})
	assert.InDelta(t, float64(1_000_000_000)/2_000_000_001, FreeTimeRatio(s), 1e-12)
}

func TestFreeTimeRatio(t *testing.T) {
	cases := map[string]struct {
		entries  []entry
		expected float64
	}{
		"Gap": {
			entries:  []entry{{"A", 0, 2}, {"B", 10, 20}, {"C", 4, 14}},
			expected: float64(1) / 21,
		},
		"Covered": {
			entries: []entry{{"A", 0, 5}, {"B", 10, 20}, {"C", 4, 14}},
		},
		"LateStart": {
			entries:  []entry{{"A", 5, 9}},
			expected: float64(5) / 10,
		},
		"Empty": {},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			s := newSet(t, tc.entries, intervalset.AllowOverlap())
			assert.InDelta(t, tc.expected, FreeTimeRatio(s), 1e-9)
		})
	}
}

func TestFreeTimeRatioMulti(t *testing.T) {
	cases := map[string]struct {
		entries  []entry
		expected float64
	}{
		"Gap": {
			entries: []entry{
				{"A", 0, 2}, {"A", 12, 14},
				{"B", 10, 20},
				{"C", 4, 14},
			},
			expected: float64(1) / 21,
		},
		"Empty": {},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.InDelta(t, tc.expected, FreeTimeRatioMulti(newMulti(t, tc.entries)), 1e-9)
		})
	}
}

func TestMaxTime(t *testing.T) {
	assert.Equal(t, int64(-1), MaxTime(intervalset.New[string]()))
	assert.Equal(t, int64(-1), MaxTimeMulti(multiset.New[string]()))
	assert.Equal(t, int64(20), MaxTime(newSet(t, []entry{{"A", 0, 2}, {"B", 10, 20}})))
	assert.Equal(t, int64(30), MaxTimeMulti(newMulti(t, []entry{{"A", 25, 30}, {"A", 0, 2}})))
}
