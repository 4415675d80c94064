package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"folio/internal/auth"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show which domains have unsaved edits",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		statuses, err := editor.Statuses(ctx)
		if err != nil {
			return err
		}

		for _, st := range statuses {
			marker := "clean"
			if st.Dirty {
				marker = "edited"
			}
			fmt.Printf("%-10s %s\n", st.Name, marker)
		}

		if gate.State() == auth.Unlocked {
			fmt.Println("\nadmin: unlocked")
		} else {
			fmt.Println("\nadmin: locked")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
