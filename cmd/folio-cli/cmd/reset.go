package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"folio/internal/application/commands"
)

var resetCmd = &cobra.Command{
	Use:   "reset <domain>",
	Short: "Discard a domain's working-copy edits",
	Long:  `Discard all edits to a domain, restoring the loaded content as the working copy.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireUnlocked(); err != nil {
			return err
		}
		ctx := context.Background()

		session, err := openSession(ctx, args[0])
		if err != nil {
			return err
		}

		rstCmd := commands.NewResetCommand(session)
		result, err := rstCmd.Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(resetCmd)
}
