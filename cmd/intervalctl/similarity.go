package main

import (
	"fmt"

	"github.com/go-logr/logr"
	"github.com/henderiw/intervalset/internal/plan"
	"github.com/henderiw/intervalset/pkg/analytics"
	"github.com/spf13/cobra"
)

func newSimilarityCommand() *cobra.Command {
	var pathA, pathB string

	cmd := &cobra.Command{
		Use:     "similarity",
		Short:   "Compare two multi plans",
		Example: `  intervalctl similarity -a week1.yaml -b week2.yaml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log, sync, err := newLogger()
			if err != nil {
				return err
			}
			defer sync()

			a, err := buildMulti(pathA, log)
			if err != nil {
				return err
			}
			b, err := buildMulti(pathB, log)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "similarity: %.4f\n", analytics.Similarity(a.Set, b.Set))
			return nil
		},
	}

	cmd.Flags().StringVarP(&pathA, "plan-a", "a", "", "first plan file")
	cmd.Flags().StringVarP(&pathB, "plan-b", "b", "", "second plan file")
	_ = cmd.MarkFlagRequired("plan-a")
	_ = cmd.MarkFlagRequired("plan-b")

	return cmd
}

func buildMulti(path string, log logr.Logger) (*plan.Multi, error) {
	p, err := plan.Load(path)
	if err != nil {
		return nil, err
	}
	m, outcomes, err := p.BuildMulti(log.WithValues("plan", path))
	if err != nil {
		return nil, err
	}
	if rejected := plan.Rejected(outcomes); len(rejected) > 0 {
		log.Info("entries not inserted", "plan", path, "rejected", len(rejected))
	}
	return m, nil
}
