package main

import (
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var (
	cfg = NewConfig()

	logger = slog.New(slog.NewTextHandler(os.Stderr, nil))

	rootCmd = &cobra.Command{
		Use:   "hashlife",
		Short: "Run and inspect an infinite-canvas Conway's Game of Life engine",
		Long: `hashlife is a demo driver for a hashlife-based Game of Life engine:
it seeds a canvas with a pattern, advances it using memoized quadtree
recursion, and reports on the result.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			runID := uuid.New()
			logger = slog.New(slog.NewTextHandler(os.Stderr, nil)).With("run_id", runID.String())
		},
	}

	runCmd = &cobra.Command{
		Use:   "run",
		Short: "Seed a pattern and advance it for a number of macro-steps",
		RunE:  runRun,
	}

	statsCmd = &cobra.Command{
		Use:   "stats",
		Short: "Seed a pattern and report its bounding level and population",
		RunE:  runStats,
	}
)

func init() {
	cfg.Bind(rootCmd.PersistentFlags())
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(statsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error("command failed", "error", err)
		os.Exit(1)
	}
}
