package cmd

import (
	"github.com/kmakise61/smartcards/internal/config"
	"github.com/kmakise61/smartcards/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "smartcards",
	Short: "Adaptive flashcard review in the terminal",
	Long:  "SmartCards — a terminal flashcard app that schedules reviews adaptively from self-reported recall difficulty.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runReview(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides SMARTCARDS_DB env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to TOML preferences file")

	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(reviewCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then SMARTCARDS_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, nil
	}
	return store.DefaultDBPath()
}

// loadPrefs reads preferences from --config or the default XDG path.
// Load clamps out-of-range values, so a bad file degrades to defaults.
func loadPrefs(cmd *cobra.Command) (config.Preferences, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = config.DefaultPrefsPath()
	}
	return config.Load(path)
}
