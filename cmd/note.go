package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var noteCmd = &cobra.Command{
	Use:   "note [text]",
	Short: "Show or set the scratch pad",
	Long: "The scratch pad is a single free-text note shared across all subjects.\n" +
		"With no argument the current text is printed; with arguments it is replaced.",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, closeStore, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer closeStore()

		if clear, _ := cmd.Flags().GetBool("clear"); clear {
			if len(args) > 0 {
				return fmt.Errorf("--clear takes no text argument")
			}
			st.SetScratch("")
			return nil
		}

		if len(args) == 0 {
			text := st.Scratch()
			if text == "" {
				fmt.Println(styleDim.Render("(scratch pad is empty)"))
			} else {
				fmt.Println(text)
			}
			return nil
		}

		st.SetScratch(strings.Join(args, " "))
		return nil
	},
}

var pinsCmd = &cobra.Command{
	Use:   "pins",
	Short: "List pinned insights across all sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, closeStore, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer closeStore()

		c := st.Load()
		found := 0
		for _, s := range c.Sessions {
			for i := range s.Questions {
				a := &s.Questions[i].Answer
				if !a.Pinned {
					continue
				}
				found++
				header := fmt.Sprintf("%s Q%d  %s", s.Subject, s.Number(i), styleDim.Render(s.Name))
				fmt.Println(styleLabel.Render(header))
				if a.Explanation != "" {
					fmt.Println("  " + a.Explanation)
				}
				if a.Screenshot != "" {
					fmt.Println("  " + styleDim.Render("(screenshot attached)"))
				}
			}
		}
		if found == 0 {
			fmt.Println(styleDim.Render("Nothing pinned yet."))
		}
		return nil
	},
}

func init() {
	noteCmd.Flags().Bool("clear", false, "Clear the scratch pad")
}
