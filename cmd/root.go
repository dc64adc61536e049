package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/marcus/fadelist/internal/config"
	"github.com/marcus/fadelist/internal/output"
	"github.com/spf13/cobra"
)

var (
	version string
	baseDir string
	logFile *os.File
)

// SetVersion sets the version string
func SetVersion(v string) {
	version = v
}

var rootCmd = &cobra.Command{
	Use:   "fadelist",
	Short: "Watch a changing list with animated inserts and removals",
	Long: `fadelist - Show a live list of rows from a file, a SQLite query or a demo feed.

Rows that appear fade and grow in; rows that vanish fade and shrink out.
Bursts of changes are coalesced so the list only animates once things settle.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupLogging(cmd)
	},
}

// Execute runs the root command
func Execute() {
	if err := run(); err != nil {
		if strings.HasPrefix(err.Error(), "unknown command") {
			if name := firstNonFlagArg(os.Args[1:]); name != "" {
				if s := rootCmd.SuggestionsFor(name); len(s) > 0 {
					output.Error("unknown command %q, did you mean %q?", name, s[0])
					os.Exit(1)
				}
			}
		}
		output.Error("%v", err)
		os.Exit(1)
	}
}

// run executes the command tree and releases the log file whether or not
// the command succeeded.
func run() error {
	defer closeLogging()
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initBaseDir)

	flags := rootCmd.PersistentFlags()
	config.RegisterFlags(flags)
	flags.String("log-file", "", "Write JSON debug logs to this file")
	flags.Bool("plain", false, "Print the first snapshot as text and exit")
}

func initBaseDir() {
	var err error
	baseDir, err = os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot determine working directory: %v\n", err)
		os.Exit(1)
	}
}

// getBaseDir returns the directory config is loaded from
func getBaseDir() string {
	return baseDir
}

// firstNonFlagArg returns the first argument that is not a flag.
func firstNonFlagArg(args []string) string {
	for _, a := range args {
		if !strings.HasPrefix(a, "-") {
			return a
		}
	}
	return ""
}

// setupLogging sends slog output to --log-file, or discards it since the
// terminal belongs to the list.
func setupLogging(cmd *cobra.Command) error {
	path, _ := cmd.Flags().GetString("log-file")
	if path == "" {
		slog.SetDefault(slog.New(slog.DiscardHandler))
		return nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	logFile = f
	slog.SetDefault(slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})))
	slog.Info("starting", "command", cmd.Name(), "version", version)
	return nil
}

func closeLogging() {
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
}
