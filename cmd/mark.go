package cmd

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/takeru/prepdeck/internal/session"
)

var markCmd = &cobra.Command{
	Use:   "mark <session> <question>",
	Short: "Grade a question and attach review metadata",
	Long: "Mark records your own grading decision for one question: correct, wrong\n" +
		"or unknown, plus the determined correct choice, an explanation, a mistake\n" +
		"tag, and an optional screenshot of the prompt for later drilling.",
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		num, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("question number: %w", err)
		}

		markCorrect, _ := cmd.Flags().GetBool("correct")
		markWrong, _ := cmd.Flags().GetBool("wrong")
		markUnknown, _ := cmd.Flags().GetBool("unknown")
		if countTrue(markCorrect, markWrong, markUnknown) > 1 {
			return fmt.Errorf("--correct, --wrong and --unknown are mutually exclusive")
		}

		correctChoice, _ := cmd.Flags().GetString("correct-choice")
		explanation, _ := cmd.Flags().GetString("explanation")
		rawTag, _ := cmd.Flags().GetString("tag")
		guessed, _ := cmd.Flags().GetBool("guessed")
		pin, _ := cmd.Flags().GetBool("pin")
		unpin, _ := cmd.Flags().GetBool("unpin")
		screenshotPath, _ := cmd.Flags().GetString("screenshot")

		var tag session.MistakeTag
		if cmd.Flags().Changed("tag") {
			var ok bool
			if tag, ok = session.ParseMistakeTag(rawTag); !ok {
				return fmt.Errorf("unknown mistake tag %q", rawTag)
			}
		}

		var screenshot string
		if screenshotPath != "" {
			if screenshot, err = embedScreenshot(screenshotPath); err != nil {
				return err
			}
		}

		return withQuestion(cmd, args[0], num, func(q *session.Question) error {
			switch {
			case markCorrect:
				v := true
				q.Correct = &v
			case markWrong:
				v := false
				q.Correct = &v
			case markUnknown:
				q.Correct = nil
			}
			if correctChoice != "" {
				q.Answer.CorrectChoice = strings.ToUpper(correctChoice)
			}
			if cmd.Flags().Changed("explanation") {
				q.Answer.Explanation = explanation
			}
			if cmd.Flags().Changed("tag") {
				q.Tag = tag
			}
			if cmd.Flags().Changed("guessed") {
				q.Guessed = guessed
			}
			if screenshot != "" {
				q.Answer.Screenshot = screenshot
			}
			// Pinning is always an explicit action, never a side effect
			// of setting an explanation.
			if pin {
				q.Answer.Pinned = true
			}
			if unpin {
				q.Answer.Pinned = false
			}
			q.Answer.EnforcePin()
			return nil
		})
	},
}

func countTrue(flags ...bool) int {
	n := 0
	for _, f := range flags {
		if f {
			n++
		}
	}
	return n
}

// embedScreenshot reads an image file into a data URI.
func embedScreenshot(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read screenshot: %w", err)
	}
	var mimeType string
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		mimeType = "image/png"
	case ".jpg", ".jpeg":
		mimeType = "image/jpeg"
	case ".gif":
		mimeType = "image/gif"
	case ".webp":
		mimeType = "image/webp"
	default:
		return "", fmt.Errorf("unsupported screenshot type %q", filepath.Ext(path))
	}
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

func init() {
	markCmd.Flags().Bool("correct", false, "Mark the answer correct")
	markCmd.Flags().Bool("wrong", false, "Mark the answer wrong")
	markCmd.Flags().Bool("unknown", false, "Clear the grading decision")
	markCmd.Flags().String("correct-choice", "", "The choice you determined to be correct")
	markCmd.Flags().String("explanation", "", "Why this was wrong")
	markCmd.Flags().String("tag", "", "Mistake tag (None, Careless, Concept, Rushed, Misread, Other)")
	markCmd.Flags().Bool("guessed", false, "The answer was a guess")
	markCmd.Flags().Bool("pin", false, "Pin this explanation/screenshot as a standalone reminder")
	markCmd.Flags().Bool("unpin", false, "Remove the pin")
	markCmd.Flags().String("screenshot", "", "Image file of the question prompt to embed")
}
