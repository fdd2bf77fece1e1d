package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/takeru/prepdeck/internal/session"
)

var answerCmd = &cobra.Command{
	Use:   "answer <session> <question> <choice>",
	Short: "Record the choice picked for a question",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		num, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("question number: %w", err)
		}
		choice := strings.ToUpper(strings.TrimSpace(args[2]))
		other, _ := cmd.Flags().GetString("other")

		return withQuestion(cmd, args[0], num, func(q *session.Question) error {
			q.Answer.Choice = choice
			if other != "" {
				q.Answer.Other = other
			}
			return nil
		})
	},
}

var timeCmd = &cobra.Command{
	Use:   "time <session> <question> <seconds>",
	Short: "Record elapsed seconds for a question",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		num, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("question number: %w", err)
		}
		sec, err := strconv.Atoi(args[2])
		if err != nil {
			return fmt.Errorf("seconds: %w", err)
		}
		if sec < 0 {
			return fmt.Errorf("seconds must be non-negative, got %d", sec)
		}
		add, _ := cmd.Flags().GetBool("add")

		return withQuestion(cmd, args[0], num, func(q *session.Question) error {
			if add {
				q.Seconds += sec
			} else {
				q.Seconds = sec
			}
			return nil
		})
	},
}

// withQuestion loads the referenced session, applies edit to one of its
// questions, and persists the result through the store.
func withQuestion(cmd *cobra.Command, ref string, num int, edit func(*session.Question) error) error {
	st, closeStore, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer closeStore()

	s, err := resolveSession(st.Load(), ref)
	if err != nil {
		return err
	}
	i := s.IndexOf(num)
	if i < 0 {
		return fmt.Errorf("question %d outside range %d-%d", num, s.StartNum, s.EndNum)
	}
	if err := edit(&s.Questions[i]); err != nil {
		return err
	}
	st.Upsert(s)
	return nil
}

func init() {
	answerCmd.Flags().String("other", "", "Free-text side note for this answer")
	timeCmd.Flags().Bool("add", false, "Add to the recorded time instead of replacing it")
}
