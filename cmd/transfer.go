package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/takeru/prepdeck/internal/export"
	"github.com/takeru/prepdeck/internal/session"
)

var exportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Export all sessions to a JSON file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, closeStore, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer closeStore()

		c := st.Load()
		data, err := export.Marshal(c, time.Now())
		if err != nil {
			return err
		}
		if err := os.WriteFile(args[0], data, 0o644); err != nil {
			return fmt.Errorf("write export: %w", err)
		}
		fmt.Printf("Exported %d session(s) to %s\n", len(c.Sessions), args[0])
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import sessions from a JSON export",
	Long: "Import validates the file against the collection schema, then merges its\n" +
		"sessions into the store (matching ids are replaced). With --replace the\n" +
		"whole collection is swapped for the file's contents instead.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		replace, _ := cmd.Flags().GetBool("replace")

		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read import: %w", err)
		}
		imported, err := export.Unmarshal(data)
		if err != nil {
			return fmt.Errorf("import %s: %w", args[0], err)
		}

		st, closeStore, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer closeStore()

		got := st.Mutate(func(c session.Collection) session.Collection {
			if replace {
				return imported
			}
			for i := len(imported.Sessions) - 1; i >= 0; i-- {
				c = c.Upsert(imported.Sessions[i])
			}
			return c
		})

		// The store rejects bad mutations silently; an explicit import
		// must not report success for a rejected merge.
		if n := missingSessions(got, imported.Sessions); n > 0 {
			return fmt.Errorf("import failed: %d of %d session(s) were not persisted", n, len(imported.Sessions))
		}

		fmt.Printf("Imported %d session(s) from %s\n", len(imported.Sessions), args[0])
		return nil
	},
}

// missingSessions counts sessions absent from the persisted result.
func missingSessions(c session.Collection, want []*session.Session) int {
	n := 0
	for _, s := range want {
		if c.Find(s.ID) == nil {
			n++
		}
	}
	return n
}

func init() {
	importCmd.Flags().Bool("replace", false, "Replace the collection instead of merging")
}
