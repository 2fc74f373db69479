package plan

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-logr/logr/testr"
	"github.com/google/go-cmp/cmp"
	"github.com/henderiw/intervalset/pkg/interval"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"k8s.io/apimachinery/pkg/labels"
)

const rosterPlan = `
kind: multi
max_time: 9
entries:
  - {label: a, start: 0, end: 1, tags: {team: ops}}
  - {label: b, start: 0, end: 2, tags: {team: dev}}
  - {label: c, start: 1, end: 4, tags: {team: ops}}
  - {label: a, start: 3, end: 9, tags: {team: ops}}
  - {label: d, start: 10, end: 11}
`

func writePlan(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "plan.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	p, err := Load(writePlan(t, rosterPlan))
	require.NoError(t, err)

	assert.Equal(t, KindMulti, p.Kind)
	assert.Equal(t, int64(9), p.MaxTime)
	assert.True(t, p.Bounded())
	assert.False(t, p.NonOverlap)
	require.Len(t, p.Entries, 5)
	want := Entry{Label: "c", Start: 1, End: 4, Tags: map[string]string{"team": "ops"}}
	if diff := cmp.Diff(want, p.Entries[2]); diff != "" {
		t.Errorf("entry: -want, +got:\n%s", diff)
	}
	assert.Equal(t, 1, p.Entries[2].Repetitions())
}

func TestLoadDefaults(t *testing.T) {
	p, err := Load(writePlan(t, "entries: []\n"))
	require.NoError(t, err)
	assert.Equal(t, KindMulti, p.Kind)
	assert.Equal(t, int64(-1), p.MaxTime)
	assert.False(t, p.Bounded())
	assert.Equal(t, int64(0), p.Period)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("INTERVALCTL_MAX_TIME", "20")
	t.Setenv("INTERVALCTL_NON_OVERLAP", "true")

	p, err := Load(writePlan(t, rosterPlan))
	require.NoError(t, err)
	assert.Equal(t, int64(20), p.MaxTime)
	assert.True(t, p.NonOverlap)
}

func TestLoadErrors(t *testing.T) {
	cases := map[string]struct {
		content     string
		expectedErr error
	}{
		"Kind": {
			content:     "kind: other\n",
			expectedErr: ErrInvalidKind,
		},
		"PeriodOnSingle": {
			content:     "kind: single\nperiod: 7\n",
			expectedErr: ErrPeriodNeedsMulti,
		},
		"AllowOverlapOnMulti": {
			content:     "kind: multi\nallow_overlap: true\n",
			expectedErr: ErrAllowOverlapNeedsSingle,
		},
		"NegativePeriod": {
			content:     "period: -1\n",
			expectedErr: ErrInvalidPeriod,
		},
		"Range": {
			content:     "entries:\n  - {label: a, start: 5, end: 1}\n",
			expectedErr: interval.ErrInvalidRange,
		},
		"EmptyLabel": {
			content:     "entries:\n  - {start: 0, end: 1}\n",
			expectedErr: ErrInvalidEntry,
		},
		"TimesWithoutPeriod": {
			content:     "entries:\n  - {label: a, start: 0, end: 1, times: 3}\n",
			expectedErr: ErrPeriodNeedsMulti,
		},
		"Tags": {
			content:     "entries:\n  - {label: a, start: 0, end: 1, tags: {\"bad key!\": x}}\n",
			expectedErr: ErrInvalidEntry,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writePlan(t, tc.content))
			assert.ErrorIs(t, err, tc.expectedErr)
		})
	}

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestSelect(t *testing.T) {
	p, err := Load(writePlan(t, rosterPlan))
	require.NoError(t, err)

	selector, err := labels.Parse("team=ops")
	require.NoError(t, err)
	selected := p.Select(selector)

	var got []string
	for _, e := range selected.Entries {
		got = append(got, e.String())
	}
	assert.Equal(t, []string{"a [0,1]", "c [1,4]", "a [3,9]"}, got)
	// the source plan is untouched
	assert.Len(t, p.Entries, 5)
	assert.Len(t, p.Select(labels.Everything()).Entries, 5)
}

func TestBuildMulti(t *testing.T) {
	p, err := Load(writePlan(t, rosterPlan))
	require.NoError(t, err)

	m, outcomes, err := p.BuildMulti(testr.New(t))
	require.NoError(t, err)
	require.NotNil(t, m.NoBlank)
	assert.Nil(t, m.Periodic)

	require.Len(t, outcomes, 5)
	rejected := Rejected(outcomes)
	require.Len(t, rejected, 1)
	assert.Equal(t, "d", rejected[0].Entry.Label)
	assert.ErrorIs(t, rejected[0].Err, interval.ErrInvalidRange)

	assert.InDelta(t, 0.0, m.NoBlank.BlankRate(), 1e-9)
	assert.InDelta(t, 50.0, m.NoBlank.OverlapRate(), 1e-9)

	_, _, err = p.BuildSingle(testr.New(t))
	assert.ErrorIs(t, err, ErrInvalidKind)
}

func TestBuildMultiPeriodic(t *testing.T) {
	p, err := Load(writePlan(t, `
kind: multi
non_overlap: true
period: 7
entries:
  - {label: alice, start: 0, end: 1, times: 3}
  - {label: bob, start: 2, end: 3, times: 3}
  - {label: carol, start: 15, end: 16, times: 2}
`))
	require.NoError(t, err)

	m, outcomes, err := p.BuildMulti(testr.New(t))
	require.NoError(t, err)
	require.NotNil(t, m.Periodic)
	assert.Nil(t, m.NoBlank)

	var inserted []bool
	for _, o := range outcomes {
		require.NoError(t, o.Err)
		inserted = append(inserted, o.Inserted)
	}
	// carol collides with alice at [14,15] and is rolled back
	assert.Equal(t, []bool{true, true, false}, inserted)
	assert.False(t, m.Set.Labels().Has("carol"))

	view, ok := m.Set.Intervals("bob")
	require.True(t, ok)
	assert.Equal(t, 3, view.Count())
}

func TestBuildSingle(t *testing.T) {
	p, err := Load(writePlan(t, `
kind: single
max_time: 20
allow_overlap: true
entries:
  - {label: A, start: 0, end: 2}
  - {label: B, start: 10, end: 20}
  - {label: C, start: 4, end: 14}
  - {label: A, start: 3, end: 3}
`))
	require.NoError(t, err)

	s, outcomes, err := p.BuildSingle(testr.New(t))
	require.NoError(t, err)
	require.NotNil(t, s.NoBlank)

	rejected := Rejected(outcomes)
	require.Len(t, rejected, 1)
	assert.Equal(t, "A [3,3]", rejected[0].Entry.String())
	assert.NoError(t, rejected[0].Err)

	assert.Equal(t, int64(1), s.NoBlank.CountBlank())
	assert.Equal(t, 3, s.Set.Count())
}
