package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"folio/internal/application/commands"
	"folio/internal/domain"
)

var exportAll bool

var exportCmd = &cobra.Command{
	Use:   "export [domain]",
	Short: "Write a domain's working copy out as a JSON data file",
	Long: `Serialize a domain's working copy to pretty-printed JSON in the
export directory. Move the file into the site's data directory, commit,
and redeploy to publish — exporting is the entire write path, there is
no network save.

Examples:
  folio-cli export portfolio
  folio-cli export --all`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireUnlocked(); err != nil {
			return err
		}
		ctx := context.Background()

		var names []domain.Name
		switch {
		case exportAll:
			names = domain.All()
		case len(args) == 1:
			name, err := domain.ParseName(args[0])
			if err != nil {
				return err
			}
			names = []domain.Name{name}
		default:
			return fmt.Errorf("specify a domain or --all")
		}

		for _, name := range names {
			session, err := editor.Session(ctx, name)
			if err != nil {
				return err
			}
			expCmd := commands.NewExportCommand(session, exporter)
			result, err := expCmd.Execute(ctx)
			if err != nil {
				return err
			}
			fmt.Println(result.Message)
		}
		return nil
	},
}

func init() {
	exportCmd.Flags().BoolVar(&exportAll, "all", false, "export every domain")
	rootCmd.AddCommand(exportCmd)
}
