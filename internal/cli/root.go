// Package cli wires pperf's Cobra commands, configuration, logging, and the
// analysis pipeline (internal/perfreport, internal/report, internal/target,
// internal/hierarchy, internal/render) together into a runnable program.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/scarpart/pperf/pkg/version"
)

var rootCmd = &cobra.Command{
	Use:   "pperf",
	Short: "Focused call-hierarchy analysis for perf report output",
	Long: `pperf reads one or more "perf report" text files and produces a
focused, human-readable view of which functions dominate execution time,
including their mutual call relationships across arbitrary chains of
intermediaries.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(newTopCmd())
	rootCmd.AddCommand(newVersionCmd())
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Printf("pperf version %s\n", version.Version)
			cmd.Printf("Git commit: %s\n", version.GitCommit)
			cmd.Printf("Build date: %s\n", version.BuildDate)
			cmd.Printf("Go version: %s\n", version.GoVersion)
		},
	}
}

// Execute runs the root command and returns an *ExitError when the error
// carries a specific exit code, so cmd/pperf/main.go can propagate it.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		if ee, ok := err.(*ExitError); ok {
			return ee
		}
		return classify(err)
	}
	return nil
}
