package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"folio/internal/adapters/bcryptverify"
	"folio/internal/adapters/editor"
	"folio/internal/adapters/filesystem"
	"folio/internal/adapters/httpsource"
	"folio/internal/adapters/sqlite"
	"folio/internal/adapters/tui"
	"folio/internal/application"
	"folio/internal/auth"
	"folio/internal/config"
	"folio/internal/logging"
	"folio/internal/ports"
)

func main() {
	logger := logging.Nop() // the TUI owns the terminal

	// Content comes from the deployed site when FOLIO_BASE_URL is set,
	// otherwise from the local checkout's data directory.
	var source ports.ContentSource
	if base := config.BaseURL(); base != "" {
		source = httpsource.New(base, config.BasePath(), logger)
	} else {
		source = filesystem.NewSource(config.DataDir(), config.BasePath(), logger)
	}

	// Editing state survives restarts via the sqlite store; losing it is
	// survivable, so a broken store just disables cache and persistence.
	var (
		cache    ports.WorkingCache
		sessions ports.SessionStore
	)
	if store, err := sqlite.Open(config.StatePath()); err == nil {
		defer store.Close()
		cache = store
		sessions = store
	} else {
		fmt.Fprintf(os.Stderr, "warning: state store unavailable: %v\n", err)
	}

	gate := auth.New(bcryptverify.New(config.AdminHash()), sessions, logger)
	appEditor := application.NewEditor(source, cache, logger)
	exporter := filesystem.NewExporter(config.OutDir())

	app := tui.NewApp(appEditor, exporter, gate, editor.NewOpener())

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
