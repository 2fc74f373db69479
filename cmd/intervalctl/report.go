package main

import (
	"fmt"

	"github.com/henderiw/intervalset/internal/plan"
	"github.com/henderiw/intervalset/internal/report"
	"github.com/spf13/cobra"
	"k8s.io/apimachinery/pkg/labels"
)

func newReportCommand() *cobra.Command {
	var (
		planPath string
		selector string
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Build a plan and report entries, intervals and rates",
		Example: `  intervalctl report -f roster.yaml
  intervalctl report -f roster.yaml --selector team=ops`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log, sync, err := newLogger()
			if err != nil {
				return err
			}
			defer sync()

			p, err := plan.Load(planPath)
			if err != nil {
				return err
			}
			sel, err := labels.Parse(selector)
			if err != nil {
				return fmt.Errorf("parse selector %q: %w", selector, err)
			}
			p = p.Select(sel)
			log.Info("plan loaded", "path", planPath, "kind", p.Kind, "entries", len(p.Entries))

			f := report.NewFormatter(noColor)
			out := cmd.OutOrStdout()

			switch p.Kind {
			case plan.KindSingle:
				s, outcomes, err := p.BuildSingle(log)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, f.Outcomes(outcomes))
				fmt.Fprintln(out, f.Single(s.Set))
				fmt.Fprintln(out, f.Summary(report.SummarizeSingle(s)))
			default:
				m, outcomes, err := p.BuildMulti(log)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, f.Outcomes(outcomes))
				fmt.Fprintln(out, f.Multi(m.Set))
				fmt.Fprintln(out, f.Summary(report.SummarizeMulti(m)))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&planPath, "file", "f", "", "plan file")
	cmd.Flags().StringVar(&selector, "selector", "", "label selector over entry tags, e.g. team=ops")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
