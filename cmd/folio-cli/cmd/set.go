package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"folio/internal/application/commands"
	"folio/internal/domain"
)

var setJSON bool

var setCmd = &cobra.Command{
	Use:   "set <domain> <path> <value>",
	Short: "Replace the value at a dotted field path",
	Long: `Replace the value at a dotted field path in a domain's working copy.
Values are strings by default; pass --json to set numbers, booleans,
objects or arrays.

A missing intermediate path segment makes this a no-op: the editor only
writes into structure that already exists.

Examples:
  folio-cli set home banner.title "Hello"
  folio-cli set global showBlog --json true`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireUnlocked(); err != nil {
			return err
		}
		ctx := context.Background()

		name, err := domain.ParseName(args[0])
		if err != nil {
			return err
		}
		session, err := editor.Session(ctx, name)
		if err != nil {
			return err
		}

		var value any = args[2]
		if setJSON {
			if err := json.Unmarshal([]byte(args[2]), &value); err != nil {
				return fmt.Errorf("invalid JSON value: %w", err)
			}
		}

		setCmd := commands.NewSetFieldCommand(session, args[1], value)
		result, err := setCmd.Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	setCmd.Flags().BoolVar(&setJSON, "json", false, "parse the value as JSON")
	rootCmd.AddCommand(setCmd)
}
