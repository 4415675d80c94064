package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"folio/internal/adapters/bcryptverify"
	"folio/internal/adapters/filesystem"
	"folio/internal/adapters/httpsource"
	"folio/internal/adapters/sqlite"
	"folio/internal/application"
	"folio/internal/auth"
	"folio/internal/config"
	"folio/internal/logging"
	"folio/internal/ports"
)

var (
	baseURL  string
	basePath string
	dataDir  string
	outDir   string
	verbose  bool

	logger   *zap.Logger
	store    *sqlite.Store
	editor   *application.Editor
	exporter ports.ExportTarget
	gate     *auth.Machine
)

var rootCmd = &cobra.Command{
	Use:   "folio-cli",
	Short: "CLI for editing static portfolio site content",
	Long: `folio-cli edits the JSON content files behind a static portfolio
site: profile, projects, blog posts, contact details and global settings.

Content is loaded from the deployed site (--base-url) or a local checkout
(--data-dir), edited in a working copy, and exported back to JSON files
which must be committed to the site repository and redeployed. There is
no server-side save.

Editing commands require an unlocked admin session (see "folio-cli login").`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}

		var err error
		logger, err = logging.New(verbose)
		if err != nil {
			return fmt.Errorf("initializing logger: %w", err)
		}

		var source ports.ContentSource
		if baseURL != "" {
			source = httpsource.New(baseURL, basePath, logger)
		} else {
			source = filesystem.NewSource(dataDir, basePath, logger)
		}

		// The state store carries working copies and the admin session
		// between invocations; without it every command would see a
		// pristine tree and login could not stick.
		store, err = sqlite.Open(config.StatePath())
		if err != nil {
			return fmt.Errorf("opening state store: %w", err)
		}

		editor = application.NewEditor(source, store, logger)
		exporter = filesystem.NewExporter(outDir)
		gate = auth.New(bcryptverify.New(config.AdminHash()), store, logger)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if store != nil {
			store.Close()
		}
		if logger != nil {
			logger.Sync()
		}
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", config.BaseURL(), "deployed site URL to load content from")
	rootCmd.PersistentFlags().StringVar(&basePath, "base-path", config.BasePath(), "deployment base prefix for asset paths")
	rootCmd.PersistentFlags().StringVarP(&dataDir, "data-dir", "d", config.DataDir(), "local content directory (used when no base URL is set)")
	rootCmd.PersistentFlags().StringVarP(&outDir, "out", "o", config.OutDir(), "directory exported files are written to")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// requireUnlocked guards editing commands behind the admin gate.
func requireUnlocked() error {
	if gate.State() != auth.Unlocked {
		return fmt.Errorf("admin session locked; run `folio-cli login` first")
	}
	return nil
}
