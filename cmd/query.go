package cmd

import (
	"github.com/marcus/fadelist/internal/config"
	"github.com/marcus/fadelist/internal/source"
	"github.com/spf13/cobra"
)

var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "Show the rows of a SQLite query, polled for changes",
	Long: `Run --sql against the SQLite database at --db every --interval and show
the result. The query returns id, label and an optional detail column.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, _ := cmd.Flags().GetString("db")
		query, _ := cmd.Flags().GetString("sql")

		cfg, err := config.Resolve(getBaseDir(), cmd.Flags())
		if err != nil {
			return err
		}
		return runSource(cmd, source.NewQuery(dbPath, query, cfg.PollInterval()))
	},
}

func init() {
	queryCmd.Flags().String("db", "", "Path to the SQLite database")
	queryCmd.Flags().String("sql", "", "Query returning id, label[, detail]")
	queryCmd.MarkFlagRequired("db")
	queryCmd.MarkFlagRequired("sql")
	rootCmd.AddCommand(queryCmd)
}
