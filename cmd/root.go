package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/techniq-app/techniq/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "techniq",
	Short: "Soccer training companion",
	Long:  "TechnIQ — terminal training companion that turns solo soccer practice into levels, streaks, and coins.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides TECHNIQ_DB env var)")

	rootCmd.AddCommand(logCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(drillCmd)
	rootCmd.AddCommand(recommendCmd)
	rootCmd.AddCommand(shopCmd)
	rootCmd.AddCommand(feedCmd)
	rootCmd.AddCommand(streakCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then TECHNIQ_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openStore resolves the database path and opens the store.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}
