package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/marcus/fadelist/internal/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect or write the settings file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the resolved settings to .fadelist/config.json",
	Long: `Write the settings in effect (defaults, then the existing file, FADELIST_*
variables and flags) to .fadelist/config.json in the working directory.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		baseDir := getBaseDir()
		path := config.Path(baseDir)

		force, _ := cmd.Flags().GetBool("force")
		if _, err := os.Stat(path); err == nil && !force {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}

		cfg, err := config.Resolve(baseDir, cmd.Flags())
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if err := config.Save(baseDir, cfg); err != nil {
			return fmt.Errorf("save config: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "WROTE %s\n", path)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the resolved settings as JSON",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Resolve(getBaseDir(), cmd.Flags())
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(cfg)
	},
}

func init() {
	configInitCmd.Flags().Bool("force", false, "Overwrite an existing file")
	configCmd.AddCommand(configInitCmd, configShowCmd)
	rootCmd.AddCommand(configCmd)
}
