package main

import (
	"github.com/MuzammilCk/hashlife"
	"github.com/spf13/cobra"
)

// runRun seeds the configured pattern and advances it for cfg.Macrosteps
// macro-steps, expanding the canvas once before each step so that Step's
// result covers the same area as the canvas did; cells that move out of
// that area during a step are not kept. It logs a summary line per step when
// verbose, and always logs the final population.
func runRun(cmd *cobra.Command, args []string) error {
	root, err := loadCanvas(cfg)
	if err != nil {
		return err
	}

	logger.Info("seeded canvas", "pattern", cfg.Pattern, "level", root.Level(), "population", root.Population())

	roots := make([]*hashlife.Node, 0, cfg.Macrosteps+1)
	roots = append(roots, root)

	for i := uint64(1); i <= cfg.Macrosteps; i++ {
		root = root.Expand()
		root, err = hashlife.Step(root)
		if err != nil {
			return err
		}
		roots = append(roots, root)

		if cfg.Verbose {
			logger.Info("macro-step complete", "step", i, "level", root.Level(), "population", root.Population())
		}
		if cfg.GCEvery > 0 && i%cfg.GCEvery == 0 {
			hashlife.CollectGarbage(roots)
			logger.Info("collected garbage", "step", i)
		}
	}

	logger.Info("run complete", "macrosteps", cfg.Macrosteps, "level", root.Level(), "population", root.Population())
	return nil
}
