package cmd

import (
	"time"

	"github.com/marcus/fadelist/internal/source"
	"github.com/spf13/cobra"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Show a synthetic list that keeps gaining and losing rows",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		seed, _ := cmd.Flags().GetUint64("seed")
		rate, _ := cmd.Flags().GetDuration("rate")
		size, _ := cmd.Flags().GetInt("size")
		if seed == 0 {
			seed = uint64(time.Now().UnixNano())
		}
		return runSource(cmd, source.NewDemo(seed, rate, size))
	},
}

func init() {
	demoCmd.Flags().Uint64("seed", 0, "Random seed (0 = time based)")
	demoCmd.Flags().Duration("rate", 1500*time.Millisecond, "Time between changes")
	demoCmd.Flags().Int("size", 8, "Number of rows the list hovers around")
	rootCmd.AddCommand(demoCmd)
}
