package cmd

import (
	"bufio"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/takeru/prepdeck/internal/drill"
	"github.com/takeru/prepdeck/internal/store"
)

var drillCmd = &cobra.Command{
	Use:   "drill",
	Short: "Replay previously-missed questions",
	Long: "Drill builds a pool from every question you marked wrong that has a\n" +
		"captured screenshot, and replays them weighted by how recently and how\n" +
		"slowly you missed them. Outcomes feed back into the next pick.",
	RunE: func(cmd *cobra.Command, args []string) error {
		rawSubject, _ := cmd.Flags().GetString("subject")
		rounds, _ := cmd.Flags().GetInt("rounds")

		subject, err := parseSubjectFlag(rawSubject)
		if err != nil {
			return err
		}

		db, err := openSlots(cmd)
		if err != nil {
			return err
		}
		defer db.Close()

		sessions := store.New(db, logger)
		records := drill.NewRecordStore(db, logger)
		picker := drill.NewPicker()

		pool := drill.BuildPool(sessions.Load(), subject)
		if len(pool) == 0 {
			fmt.Println(styleDim.Render("Nothing to drill: no wrong answers with screenshots for " + subject.DisplayName() + "."))
			return nil
		}
		fmt.Printf("%d item(s) in the %s pool.\n\n", len(pool), subject.DisplayName())

		reader := bufio.NewReader(os.Stdin)
		for round := 0; rounds == 0 || round < rounds; round++ {
			item, ok := picker.Pick(pool, records.Load(), time.Now())
			if !ok {
				break
			}

			fmt.Println(styleTitle.Render(fmt.Sprintf("Question %d", item.Number)))
			if path, err := saveScreenshot(item.Key, item.Screenshot); err == nil {
				fmt.Println(styleDim.Render("screenshot: " + path))
			} else {
				logger.Debug().Err(err).Msg("screenshot dump failed")
			}

			start := time.Now()
			fmt.Print("Answer it, then press Enter to check... ")
			if _, err := reader.ReadString('\n'); err != nil {
				return nil
			}
			elapsed := time.Since(start)

			if item.CorrectChoice != "" {
				fmt.Printf("%s %s  %s you picked %s\n",
					styleLabel.Render("correct:"), item.CorrectChoice,
					styleDim.Render("last time"), orDash(item.Choice))
			}
			if item.Explanation != "" {
				fmt.Println(styleDim.Render(item.Explanation))
			}

			outcome, quit := promptOutcome(reader)
			if quit {
				break
			}
			records.Commit(item.Key, outcome, elapsed.Seconds(), time.Now())

			if outcome == drill.OutcomeCorrect {
				fmt.Println(styleCorrect.Render("✓") + styleDim.Render("  "+formatDuration(elapsed)))
			} else {
				fmt.Println(styleWrong.Render("✗") + styleDim.Render("  "+formatDuration(elapsed)))
			}
			fmt.Println()
		}
		return nil
	},
}

// promptOutcome asks the user to self-grade the round.
func promptOutcome(reader *bufio.Reader) (drill.Outcome, bool) {
	for {
		fmt.Print("Did you get it right? [y/n/q] ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return "", true
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes":
			return drill.OutcomeCorrect, false
		case "n", "no":
			return drill.OutcomeWrong, false
		case "q", "quit":
			return "", true
		}
	}
}

// saveScreenshot decodes a data URI into a temp file for viewing.
func saveScreenshot(key, dataURI string) (string, error) {
	comma := strings.IndexByte(dataURI, ',')
	if !strings.HasPrefix(dataURI, "data:") || comma < 0 {
		return "", fmt.Errorf("not a data URI")
	}
	payload, err := base64.StdEncoding.DecodeString(dataURI[comma+1:])
	if err != nil {
		return "", fmt.Errorf("decode screenshot: %w", err)
	}
	ext := ".png"
	if strings.Contains(dataURI[:comma], "jpeg") {
		ext = ".jpg"
	}
	name := strings.ReplaceAll(key, "|", "-")
	path := filepath.Join(os.TempDir(), "prepdeck-"+name+ext)
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return "", fmt.Errorf("write screenshot: %w", err)
	}
	return path, nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func init() {
	drillCmd.Flags().String("subject", "", "Subject to drill (math1, math2, physics)")
	drillCmd.Flags().Int("rounds", 0, "Stop after this many rounds (0 = until quit)")
	drillCmd.MarkFlagRequired("subject")
}
