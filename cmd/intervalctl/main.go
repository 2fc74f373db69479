// Package main provides the entry point for the intervalctl CLI tool.
package main

import (
	"fmt"
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

var (
	verbose bool
	noColor bool
)

func main() {
	rootCmd := newRootCommand()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "intervalctl",
		Short: "intervalctl - build and inspect labelled interval plans",
		Long: `intervalctl loads YAML plans of labelled time intervals, builds the
constrained interval collection they describe and reports on it.

Commands:
  report      Build a plan and report entries, intervals and rates
  similarity  Compare two multi plans`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log rejected inserts and rollbacks")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable coloured status output")

	rootCmd.AddCommand(newReportCommand())
	rootCmd.AddCommand(newSimilarityCommand())
	rootCmd.AddCommand(versionCmd())

	return rootCmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "intervalctl %s\n", version)
		},
	}
}

// newLogger returns a zap backed logr.Logger. Verbose enables V(1), which
// zapr maps onto the zap debug level.
func newLogger() (logr.Logger, func(), error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	cfg.DisableStacktrace = true

	zl, err := cfg.Build()
	if err != nil {
		return logr.Discard(), func() {}, fmt.Errorf("build logger: %w", err)
	}
	return zapr.NewLogger(zl), func() { _ = zl.Sync() }, nil
}
