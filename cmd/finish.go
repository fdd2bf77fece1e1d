package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var finishCmd = &cobra.Command{
	Use:   "finish <session>",
	Short: "Mark a session as completed and snapshot its score",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		notes, _ := cmd.Flags().GetString("notes")

		st, closeStore, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer closeStore()

		s, err := resolveSession(st.Load(), args[0])
		if err != nil {
			return err
		}
		s.Finish(time.Now())
		if notes != "" {
			s.Notes = notes
		}
		st.Upsert(s)

		fmt.Printf("Finished %s: %s\n", shortID(s.ID), formatScore(s))
		return nil
	},
}

func init() {
	finishCmd.Flags().String("notes", "", "Session-level reflection notes")
}
