package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// runStats seeds the configured pattern and prints its bounding level and
// population without advancing it.
func runStats(cmd *cobra.Command, args []string) error {
	root, err := loadCanvas(cfg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "pattern:    %s\n", cfg.Pattern)
	fmt.Fprintf(out, "level:      %d\n", root.Level())
	fmt.Fprintf(out, "side:       %d\n", int64(1)<<root.Level())
	fmt.Fprintf(out, "population: %d\n", root.Population())
	fmt.Fprintf(out, "node id:    %d\n", root.ID())
	return nil
}
