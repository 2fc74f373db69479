package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	planA = `
kind: multi
entries:
  - {label: A, start: 0, end: 5}
  - {label: A, start: 20, end: 25}
  - {label: B, start: 10, end: 20}
  - {label: B, start: 25, end: 30}
`
	planB = `
kind: multi
entries:
  - {label: A, start: 20, end: 35}
  - {label: B, start: 10, end: 20}
  - {label: C, start: 0, end: 5}
`
	roster = `
kind: multi
max_time: 9
entries:
  - {label: a, start: 0, end: 1, tags: {team: ops}}
  - {label: b, start: 0, end: 2, tags: {team: dev}}
  - {label: c, start: 1, end: 4, tags: {team: ops}}
  - {label: a, start: 3, end: 9, tags: {team: ops}}
`
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	noColor = true
	rootCmd := newRootCommand()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestCommands(t *testing.T) {
	a := writeFile(t, "a.yaml", planA)
	b := writeFile(t, "b.yaml", planB)
	r := writeFile(t, "roster.yaml", roster)

	cases := map[string]struct {
		args     []string
		wantOut  []string
		wantSkip []string
		wantErr  bool
	}{
		"Help": {
			args:    []string{"--help"},
			wantOut: []string{"labelled time intervals"},
		},
		"Version": {
			args:    []string{"version"},
			wantOut: []string{"intervalctl dev"},
		},
		"Similarity": {
			args:    []string{"similarity", "-a", a, "-b", b},
			wantOut: []string{"similarity: 0.4286"},
		},
		"Report": {
			args:    []string{"report", "-f", r},
			wantOut: []string{"[0,1] [3,9]", "50.00%", "Rejected: 0 of 4"},
		},
		"ReportSelector": {
			args:     []string{"report", "-f", r, "--selector", "team=ops"},
			wantOut:  []string{"Rejected: 0 of 3"},
			wantSkip: []string{"b [0,2]"},
		},
		"MissingFile": {
			args:    []string{"report"},
			wantErr: true,
		},
		"BadSelector": {
			args:    []string{"report", "-f", r, "--selector", "team in"},
			wantErr: true,
		},
		"Unknown": {
			args:    []string{"unknown"},
			wantErr: true,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			out, err := execute(t, tc.args...)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			for _, want := range tc.wantOut {
				assert.Contains(t, out, want)
			}
			for _, skip := range tc.wantSkip {
				assert.NotContains(t, out, skip)
			}
		})
	}
}
