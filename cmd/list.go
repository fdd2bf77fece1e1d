package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/takeru/prepdeck/internal/session"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List practice sessions, most recent first",
	RunE: func(cmd *cobra.Command, args []string) error {
		rawSubject, _ := cmd.Flags().GetString("subject")
		var subject session.Subject
		filter := rawSubject != ""
		if filter {
			var err error
			if subject, err = parseSubjectFlag(rawSubject); err != nil {
				return err
			}
		}

		st, closeStore, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer closeStore()

		c := st.Load()
		shown := 0
		for _, s := range c.Sessions {
			if filter && s.Subject != subject {
				continue
			}
			shown++
			status := styleDim.Render("in progress")
			if s.EndedAt != 0 {
				status = formatScore(s)
			}
			fmt.Printf("%s  %-10s %-22s %4d-%-4d %s\n",
				styleLabel.Render(shortID(s.ID)),
				s.Subject,
				s.Name,
				s.StartNum, s.EndNum,
				status,
			)
		}
		if shown == 0 {
			fmt.Println(styleDim.Render("No sessions yet. Start one with: prepdeck new"))
		}
		return nil
	},
}

var showCmd = &cobra.Command{
	Use:   "show <session>",
	Short: "Show one session in full",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, closeStore, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer closeStore()

		s, err := resolveSession(st.Load(), args[0])
		if err != nil {
			return err
		}

		fmt.Println(styleTitle.Render(s.Name))
		fmt.Printf("%s %s   %s %s   %s %d min\n",
			styleLabel.Render("subject:"), s.Subject.DisplayName(),
			styleLabel.Render("started:"), formatWhen(s.StartedAt),
			styleLabel.Render("planned:"), s.Minutes)
		if s.EndedAt != 0 {
			fmt.Printf("%s %s   %s %s\n",
				styleLabel.Render("finished:"), formatWhen(s.EndedAt),
				styleLabel.Render("score:"), formatScore(s))
		}
		if s.Notes != "" {
			fmt.Printf("%s %s\n", styleLabel.Render("notes:"), s.Notes)
		}

		for i := range s.Questions {
			q := &s.Questions[i]
			mark := styleDim.Render("·")
			if q.Correct != nil {
				if *q.Correct {
					mark = styleCorrect.Render("✓")
				} else {
					mark = styleWrong.Render("✗")
				}
			}
			line := fmt.Sprintf("%3d %s", s.Number(i), mark)
			if q.Answer.Choice != "" {
				line += "  " + q.Answer.Choice
			}
			if q.Answer.CorrectChoice != "" {
				line += styleDim.Render(" (correct: "+q.Answer.CorrectChoice+")")
			}
			if q.Seconds > 0 {
				line += styleDim.Render(fmt.Sprintf("  %ds", q.Seconds))
			}
			if q.Guessed {
				line += styleDim.Render("  guessed")
			}
			if q.Tag != session.TagNone {
				line += "  " + string(q.Tag)
			}
			if q.Answer.Pinned {
				line += "  📌"
			}
			fmt.Println(line)
			if q.Answer.Explanation != "" {
				fmt.Println("      " + styleDim.Render(q.Answer.Explanation))
			}
		}
		return nil
	},
}

var removeCmd = &cobra.Command{
	Use:   "remove <session>",
	Short: "Delete a session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, closeStore, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer closeStore()

		s, err := resolveSession(st.Load(), args[0])
		if err != nil {
			return err
		}
		st.Remove(s.ID)
		fmt.Printf("Removed session %s\n", shortID(s.ID))
		return nil
	},
}

func init() {
	listCmd.Flags().String("subject", "", "Only show sessions for this subject")
}
