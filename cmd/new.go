package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/takeru/prepdeck/internal/session"
)

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Create a practice session",
	RunE: func(cmd *cobra.Command, args []string) error {
		rawSubject, _ := cmd.Flags().GetString("subject")
		startNum, _ := cmd.Flags().GetInt("start")
		endNum, _ := cmd.Flags().GetInt("end")
		minutes, _ := cmd.Flags().GetInt("minutes")
		name, _ := cmd.Flags().GetString("name")

		subject, err := parseSubjectFlag(rawSubject)
		if err != nil {
			return err
		}
		// Input validation happens here, at the boundary: the store
		// never sees a session with an inverted range or bad timer.
		if startNum < 1 || endNum < startNum {
			return fmt.Errorf("invalid question range %d-%d", startNum, endNum)
		}
		if minutes <= 0 {
			return fmt.Errorf("minutes must be positive, got %d", minutes)
		}

		st, closeStore, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer closeStore()

		s := session.New(subject, startNum, endNum, minutes, name, time.Now())
		st.Upsert(s)

		fmt.Printf("Created session %s (%s, questions %d-%d, %d min)\n",
			shortID(s.ID), s.Subject.DisplayName(), s.StartNum, s.EndNum, s.Minutes)
		return nil
	},
}

func init() {
	newCmd.Flags().String("subject", "", "Subject (math1, math2, physics)")
	newCmd.Flags().Int("start", 1, "First question number (inclusive)")
	newCmd.Flags().Int("end", 0, "Last question number (inclusive)")
	newCmd.Flags().Int("minutes", 0, "Planned duration in minutes")
	newCmd.Flags().String("name", "", "Session label (defaults to a timestamp)")
	newCmd.MarkFlagRequired("subject")
	newCmd.MarkFlagRequired("end")
	newCmd.MarkFlagRequired("minutes")
}
