package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"folio/internal/adapters/filesystem"
	"folio/internal/adapters/httpsource"
	"folio/internal/domain"
)

var pullCmd = &cobra.Command{
	Use:   "pull",
	Short: "Fetch every domain's content from the deployed site",
	Long: `Fetch every content domain from the deployed site and write the JSON
files into the export directory, giving a local snapshot to edit against.
Domains are fetched concurrently and fail independently; a broken domain
comes back as an empty document.

Requires --base-url (or FOLIO_BASE_URL).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if baseURL == "" {
			return fmt.Errorf("pull needs a deployed site: set --base-url")
		}
		ctx := context.Background()

		client := httpsource.New(baseURL, basePath, logger)
		docs, err := client.LoadAll(ctx)
		if err != nil {
			return err
		}

		target := filesystem.NewExporter(outDir)
		for _, name := range domain.All() {
			path, err := target.Persist(docs[name], name.FileName())
			if err != nil {
				return err
			}
			fmt.Printf("%-10s -> %s\n", name, path)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(pullCmd)
}
