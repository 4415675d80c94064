package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"folio/internal/application"
	"folio/internal/application/commands"
	"folio/internal/domain"
)

var itemCmd = &cobra.Command{
	Use:   "item [add|rm|set]",
	Short: "Edit list items (projects, posts, banners, ...)",
	Long: `Edit list items within a domain's working copy. Items are addressed
by position: removing an item shifts the index of everything after it.

Examples:
  folio-cli item add portfolio projects
  folio-cli item add portfolio projects '{"title":"CLI tool"}'
  folio-cli item rm blog posts 2
  folio-cli item set portfolio projects 0 title "Renamed"`,
}

var itemAddCmd = &cobra.Command{
	Use:   "add <domain> <list-path> [record-json]",
	Short: "Append a record to a list",
	Args:  cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireUnlocked(); err != nil {
			return err
		}
		ctx := context.Background()

		session, err := openSession(ctx, args[0])
		if err != nil {
			return err
		}

		listPath := args[1]
		var record map[string]any
		if len(args) == 3 {
			if err := json.Unmarshal([]byte(args[2]), &record); err != nil {
				return fmt.Errorf("invalid record JSON: %w", err)
			}
		} else {
			segments := domain.ParsePath(listPath)
			record = domain.DefaultRecord(segments[len(segments)-1])
		}

		addCmd := commands.NewAppendItemCommand(session, listPath, record)
		result, err := addCmd.Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

var itemRmCmd = &cobra.Command{
	Use:   "rm <domain> <list-path> <index>",
	Short: "Remove the record at an index",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireUnlocked(); err != nil {
			return err
		}
		ctx := context.Background()

		session, err := openSession(ctx, args[0])
		if err != nil {
			return err
		}

		index, err := strconv.Atoi(args[2])
		if err != nil {
			return fmt.Errorf("invalid index: %s", args[2])
		}

		rmCmd := commands.NewRemoveItemCommand(session, args[1], index)
		result, err := rmCmd.Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

var itemSetJSON bool

var itemSetCmd = &cobra.Command{
	Use:   "set <domain> <list-path> <index> <field> <value>",
	Short: "Update one field of the record at an index",
	Args:  cobra.ExactArgs(5),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireUnlocked(); err != nil {
			return err
		}
		ctx := context.Background()

		session, err := openSession(ctx, args[0])
		if err != nil {
			return err
		}

		index, err := strconv.Atoi(args[2])
		if err != nil {
			return fmt.Errorf("invalid index: %s", args[2])
		}

		var value any = args[4]
		if itemSetJSON {
			if err := json.Unmarshal([]byte(args[4]), &value); err != nil {
				return fmt.Errorf("invalid JSON value: %w", err)
			}
		}

		updCmd := commands.NewUpdateItemFieldCommand(session, args[1], index, args[3], value)
		result, err := updCmd.Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

func openSession(ctx context.Context, name string) (*application.EditSession, error) {
	parsed, err := domain.ParseName(name)
	if err != nil {
		return nil, err
	}
	return editor.Session(ctx, parsed)
}

func init() {
	itemSetCmd.Flags().BoolVar(&itemSetJSON, "json", false, "parse the value as JSON")
	rootCmd.AddCommand(itemCmd)
	itemCmd.AddCommand(itemAddCmd)
	itemCmd.AddCommand(itemRmCmd)
	itemCmd.AddCommand(itemSetCmd)
}
