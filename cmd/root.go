package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/takeru/prepdeck/internal/kv"
	"github.com/takeru/prepdeck/internal/store"
)

var logger zerolog.Logger

var rootCmd = &cobra.Command{
	Use:   "prepdeck",
	Short: "Terminal practice-session tracker",
	Long: "Prepdeck tracks timed multiple-choice practice sessions: record answers\n" +
		"and pacing, mark them afterwards, tag mistakes, drill the ones you missed,\n" +
		"and watch score trends per subject.",
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Optional .env next to the working directory; absence is fine.
		_ = godotenv.Load()

		level := zerolog.WarnLevel
		if v, _ := cmd.Flags().GetBool("verbose"); v {
			level = zerolog.DebugLevel
		}
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			Level(level).
			With().Timestamp().Logger()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to sqlite database file (overrides PREPDECK_DB env var)")
	rootCmd.PersistentFlags().Bool("verbose", false, "Enable debug logging")

	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(answerCmd)
	rootCmd.AddCommand(timeCmd)
	rootCmd.AddCommand(finishCmd)
	rootCmd.AddCommand(markCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(noteCmd)
	rootCmd.AddCommand(pinsCmd)
	rootCmd.AddCommand(drillCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then PREPDECK_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, kv.EnsureDir(p)
	}
	return kv.DefaultDBPath()
}

// openSlots opens the kv medium for this invocation.
func openSlots(cmd *cobra.Command) (*kv.DB, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	db, err := kv.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return db, nil
}

// openStore opens the session store; the returned closer must be
// deferred.
func openStore(cmd *cobra.Command) (*store.Store, func(), error) {
	db, err := openSlots(cmd)
	if err != nil {
		return nil, nil, err
	}
	return store.New(db, logger), func() { db.Close() }, nil
}
