// Package report renders interval collections and plan outcomes as text
// tables.
package report

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/henderiw/intervalset/internal/plan"
	"github.com/henderiw/intervalset/pkg/analytics"
	"github.com/henderiw/intervalset/pkg/interval"
	"github.com/henderiw/intervalset/pkg/intervalset"
	"github.com/henderiw/intervalset/pkg/multiset"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"k8s.io/apimachinery/pkg/util/sets"
)

const (
	statusInserted = "inserted"
	statusRejected = "rejected"
	statusError    = "error"
)

// Summary holds the statistics of one built plan. Rates are nil when the
// plan does not bound its timeline.
type Summary struct {
	Kind          plan.Kind
	Labels        int
	Intervals     int
	MaxTime       int64
	ConflictRatio float64
	FreeTimeRatio float64
	BlankRate     *float64
	OverlapRate   *float64
	FirstBlank    *int64
}

// SummarizeMulti collects the statistics of a multi interval stack.
func SummarizeMulti(m *plan.Multi) Summary {
	s := Summary{
		Kind:          plan.KindMulti,
		Labels:        m.Set.Labels().Len(),
		MaxTime:       analytics.MaxTimeMulti(m.Set),
		ConflictRatio: analytics.ConflictRatioMulti(m.Set),
		FreeTimeRatio: analytics.FreeTimeRatioMulti(m.Set),
	}
	multiset.Walk(m.Set, func(string, interval.Interval) bool {
		s.Intervals++
		return true
	})
	if m.NoBlank != nil {
		blank, overlap := m.NoBlank.BlankRate(), m.NoBlank.OverlapRate()
		s.BlankRate, s.OverlapRate = &blank, &overlap
		if t, ok := m.NoBlank.FirstBlank(); ok {
			s.FirstBlank = &t
		}
	}
	return s
}

// SummarizeSingle collects the statistics of a single interval stack.
func SummarizeSingle(single *plan.Single) Summary {
	s := Summary{
		Kind:          plan.KindSingle,
		Labels:        single.Set.Count(),
		Intervals:     single.Set.Count(),
		MaxTime:       analytics.MaxTime(single.Set),
		ConflictRatio: analytics.ConflictRatio(single.Set),
		FreeTimeRatio: analytics.FreeTimeRatio(single.Set),
	}
	if single.NoBlank != nil {
		blank := single.NoBlank.BlankRate()
		s.BlankRate = &blank
		if t, ok := single.NoBlank.FirstBlank(); ok {
			s.FirstBlank = &t
		}
	}
	return s
}

// Formatter renders reports. Colours are only used for entry status.
type Formatter struct {
	noColor bool
}

// NewFormatter returns a Formatter, noColor disables status colouring.
func NewFormatter(noColor bool) *Formatter {
	return &Formatter{noColor: noColor}
}

func (f *Formatter) newTable() table.Writer {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Options.SeparateRows = false
	tbl.Style().Options.DrawBorder = false
	tbl.Style().Format.Footer = text.FormatDefault
	return tbl
}

// Multi renders one row per label with its intervals in ascending order.
func (f *Formatter) Multi(s multiset.MultiIntervalSet[string]) string {
	tbl := f.newTable()
	tbl.AppendHeader(table.Row{"label", "intervals", "count"})
	total := 0
	for _, l := range sets.List(s.Labels()) {
		view, ok := s.Intervals(l)
		if !ok {
			continue
		}
		intervals := multiset.Ordered(view)
		total += len(intervals)
		tbl.AppendRow(table.Row{l, joinIntervals(intervals), len(intervals)})
	}
	tbl.AppendFooter(table.Row{fmt.Sprintf("Total: %d labels", s.Labels().Len()), "", total})
	return tbl.Render()
}

// Single renders one row per label with its interval.
func (f *Formatter) Single(s intervalset.IntervalSet[string]) string {
	tbl := f.newTable()
	tbl.AppendHeader(table.Row{"label", "start", "end", "length"})
	for _, l := range sets.List(s.Labels()) {
		i, ok := s.Get(l)
		if !ok {
			continue
		}
		tbl.AppendRow(table.Row{l, i.Start(), i.End(), i.Length()})
	}
	tbl.AppendFooter(table.Row{fmt.Sprintf("Total: %d labels", s.Count())})
	return tbl.Render()
}

// Outcomes renders every plan entry with its insert status.
func (f *Formatter) Outcomes(outcomes []plan.Outcome) string {
	tbl := f.newTable()
	tbl.AppendHeader(table.Row{"#", "entry", "status", "detail"})
	for idx, o := range outcomes {
		status, detail := statusInserted, ""
		switch {
		case o.Err != nil:
			status, detail = statusError, o.Err.Error()
		case !o.Inserted:
			status = statusRejected
		}
		tbl.AppendRow(table.Row{idx, o.Entry.String(), f.colorize(status), detail})
	}
	tbl.AppendFooter(table.Row{"", fmt.Sprintf("Rejected: %d of %d", len(plan.Rejected(outcomes)), len(outcomes))})
	return tbl.Render()
}

// Summary renders the statistics as a two column table.
func (f *Formatter) Summary(s Summary) string {
	tbl := f.newTable()
	tbl.AppendHeader(table.Row{"metric", "value"})
	tbl.AppendRow(table.Row{"kind", s.Kind})
	tbl.AppendRow(table.Row{"labels", s.Labels})
	tbl.AppendRow(table.Row{"intervals", s.Intervals})
	tbl.AppendRow(table.Row{"max time", s.MaxTime})
	tbl.AppendRow(table.Row{"conflict ratio", fmt.Sprintf("%.4f", s.ConflictRatio)})
	tbl.AppendRow(table.Row{"free time ratio", fmt.Sprintf("%.4f", s.FreeTimeRatio)})
	if s.BlankRate != nil {
		tbl.AppendRow(table.Row{"blank rate", fmt.Sprintf("%.2f%%", *s.BlankRate)})
	}
	if s.OverlapRate != nil {
		tbl.AppendRow(table.Row{"overlap rate", fmt.Sprintf("%.2f%%", *s.OverlapRate)})
	}
	if s.FirstBlank != nil {
		tbl.AppendRow(table.Row{"first blank", *s.FirstBlank})
	}
	return tbl.Render()
}

func (f *Formatter) colorize(status string) string {
	var c *color.Color
	switch status {
	case statusInserted:
		c = color.New(color.FgGreen)
	case statusRejected:
		c = color.New(color.FgYellow)
	default:
		c = color.New(color.FgRed)
	}
	if f.noColor {
		c.DisableColor()
	}
	return c.Sprint(status)
}

func joinIntervals(intervals []interval.Interval) string {
	parts := make([]string, 0, len(intervals))
	for _, i := range intervals {
		parts = append(parts, i.String())
	}
	return strings.Join(parts, " ")
}
