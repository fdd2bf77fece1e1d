package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/takeru/prepdeck/internal/session"
	"github.com/takeru/prepdeck/internal/stats"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show per-subject score trends",
	RunE: func(cmd *cobra.Command, args []string) error {
		rawSubject, _ := cmd.Flags().GetString("subject")
		var only session.Subject
		filter := rawSubject != ""
		if filter {
			var err error
			if only, err = parseSubjectFlag(rawSubject); err != nil {
				return err
			}
		}

		st, closeStore, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer closeStore()

		all := stats.Compute(st.Load())
		if len(all) == 0 {
			fmt.Println(styleDim.Render("No sessions yet."))
			return nil
		}

		for _, ss := range all {
			if filter && ss.Subject != only {
				continue
			}
			fmt.Println(styleTitle.Render(ss.Subject.DisplayName()))
			fmt.Printf("  sessions: %d (%d finished)   marked: %d   accuracy: %s   avg pace: %.0fs/question\n",
				ss.Sessions, ss.Finished, ss.Marked,
				formatAccuracy(ss.Accuracy, ss.Marked), ss.AvgSecPerQ)

			if len(ss.TaggedMistakes) > 0 {
				var parts []string
				for _, tag := range session.AllMistakeTags() {
					if n := ss.TaggedMistakes[tag]; n > 0 {
						parts = append(parts, fmt.Sprintf("%s ×%d", tag, n))
					}
				}
				fmt.Println("  mistakes: " + styleDim.Render(strings.Join(parts, ", ")))
			}

			for _, p := range ss.Trend {
				bar := trendBar(p.Accuracy)
				fmt.Printf("  %s  %-22s %s %3.0f%%  (%d/%d)\n",
					styleDim.Render(formatWhen(p.When)), p.Name, bar, p.Accuracy*100, p.Correct, p.Total)
			}
			fmt.Println()
		}
		return nil
	},
}

func formatAccuracy(acc float64, marked int) string {
	if marked == 0 {
		return styleDim.Render("-")
	}
	s := fmt.Sprintf("%.0f%%", acc*100)
	if acc >= 0.8 {
		return styleCorrect.Render(s)
	}
	if acc < 0.5 {
		return styleWrong.Render(s)
	}
	return s
}

// trendBar renders accuracy as a ten-cell bar.
func trendBar(acc float64) string {
	filled := int(acc*10 + 0.5)
	if filled > 10 {
		filled = 10
	}
	return styleLabel.Render(strings.Repeat("█", filled)) + styleDim.Render(strings.Repeat("░", 10-filled))
}

func init() {
	statsCmd.Flags().String("subject", "", "Only show one subject")
}
