package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/takeru/prepdeck/internal/drill"
	"github.com/takeru/prepdeck/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete stored data",
	RunE: func(cmd *cobra.Command, args []string) error {
		drillOnly, _ := cmd.Flags().GetBool("drill")
		force, _ := cmd.Flags().GetBool("force")

		what := "ALL sessions, notes and drill history"
		if drillOnly {
			what = "the drill history"
		}
		if !force {
			fmt.Printf("This deletes %s. Type 'yes' to continue: ", what)
			line, _ := bufio.NewReader(os.Stdin).ReadString('\n')
			if strings.TrimSpace(line) != "yes" {
				fmt.Println("Aborted.")
				return nil
			}
		}

		db, err := openSlots(cmd)
		if err != nil {
			return err
		}
		defer db.Close()

		drill.NewRecordStore(db, logger).Reset()
		if !drillOnly {
			store.New(db, logger).Reset()
		}
		fmt.Println("Done.")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("drill", false, "Only clear drill records")
	resetCmd.Flags().Bool("force", false, "Skip the confirmation prompt")
}
