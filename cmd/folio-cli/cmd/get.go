package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"folio/internal/domain"
)

var getCmd = &cobra.Command{
	Use:   "get <domain> [path]",
	Short: "Print a domain's working copy, or one field of it",
	Long: `Print a domain's current working copy as JSON. With a dotted field
path, prints just that value.

Examples:
  folio-cli get portfolio
  folio-cli get portfolio projects.0.title
  folio-cli get global siteName`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		name, err := domain.ParseName(args[0])
		if err != nil {
			return err
		}
		session, err := editor.Session(ctx, name)
		if err != nil {
			return err
		}

		doc := session.Working()
		var value any = map[string]any(doc)
		if len(args) == 2 {
			v, ok := doc.Get(domain.ParsePath(args[1]))
			if !ok {
				return fmt.Errorf("no such field: %s", args[1])
			}
			value = v
		}

		data, err := json.MarshalIndent(value, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(getCmd)
}
