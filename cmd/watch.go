package cmd

import (
	"github.com/marcus/fadelist/internal/source"
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch FILE",
	Short: "Show the lines of a file, reloading on change",
	Long: `Show one row per non-empty line of FILE. A line is either "label" or
"id<TAB>label[<TAB>detail]"; lines starting with # are skipped.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSource(cmd, source.NewFile(args[0]))
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
