package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	editoropen "folio/internal/adapters/editor"
	"folio/internal/adapters/tui/views"
	"folio/internal/application"
	"folio/internal/auth"
	"folio/internal/ports"
)

// adminChord is the global key combination toggling the admin gate. It is
// matched at the app root, wherever focus happens to be, and never
// reaches the views.
const adminChord = "ctrl+alt+a"

// ViewState represents the current view
type ViewState int

const (
	ViewDomains ViewState = iota
	ViewEditor
	ViewPassword
	ViewHelp
)

// App is the main TUI application model. It owns the auth machine: the
// chord and the prompt route through it here rather than each view
// keeping its own idea of the admin state.
type App struct {
	gate   *auth.Machine
	opener *editoropen.Opener

	state    ViewState
	previous ViewState
	domains  *views.DomainsModel
	editor   *views.EditorModel
	password *views.PasswordModel
	help     *views.HelpModel

	width  int
	height int
}

// NewApp creates a new TUI application
func NewApp(editor *application.Editor, target ports.ExportTarget, gate *auth.Machine, opener *editoropen.Opener) *App {
	a := &App{
		gate:     gate,
		opener:   opener,
		state:    ViewDomains,
		domains:  views.NewDomainsModel(editor),
		editor:   views.NewEditorModel(editor, target),
		password: views.NewPasswordModel(gate),
		help:     views.NewHelpModel(),
	}
	a.syncGate()
	return a
}

func (a *App) syncGate() {
	unlocked := a.gate.State() == auth.Unlocked
	a.domains.SetUnlocked(unlocked)
	a.editor.SetUnlocked(unlocked)
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return a.domains.Init()
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.domains.SetSize(msg.Width, msg.Height)
		a.editor.SetSize(msg.Width, msg.Height)
		a.password.SetSize(msg.Width, msg.Height)
		a.help.SetSize(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		if msg.String() == adminChord {
			return a.handleChord()
		}

	// View switching messages
	case views.SwitchToEditorMsg:
		a.state = ViewEditor
		return a, a.editor.Open(msg.Domain)

	case views.SwitchToDomainsMsg:
		a.state = ViewDomains
		return a, a.domains.Reload()

	case views.SwitchToHelpMsg:
		a.state = ViewHelp
		return a, nil

	// Password prompt outcomes
	case views.UnlockedMsg:
		a.syncGate()
		a.state = a.previous
		return a, a.domains.Reload()

	case views.PromptClosedMsg:
		a.state = a.previous
		return a, nil

	case views.OpenExportMsg:
		return a, a.openExport(msg.Path)

	case exportViewedMsg:
		return a, nil
	}

	// Delegate to current view
	var cmd tea.Cmd
	switch a.state {
	case ViewDomains:
		_, cmd = a.domains.Update(msg)
	case ViewEditor:
		_, cmd = a.editor.Update(msg)
	case ViewPassword:
		_, cmd = a.password.Update(msg)
	case ViewHelp:
		_, cmd = a.help.Update(msg)
	}

	return a, cmd
}

// handleChord drives the gate: Locked opens the prompt, Unlocked drops
// straight back to Locked, an open prompt closes.
func (a *App) handleChord() (tea.Model, tea.Cmd) {
	state := a.gate.Toggle()
	a.syncGate()

	switch state {
	case auth.PromptOpen:
		if a.state != ViewPassword {
			a.previous = a.state
		}
		a.password.Reset()
		a.state = ViewPassword
		return a, a.password.Init()
	default:
		if a.state == ViewPassword {
			a.state = a.previous
		}
		return a, nil
	}
}

type exportViewedMsg struct{ err error }

// openExport hands the exported file to $EDITOR for review.
func (a *App) openExport(path string) tea.Cmd {
	if a.opener == nil {
		return nil
	}
	cmd, err := a.opener.Command(path)
	if err != nil {
		return func() tea.Msg {
			return exportViewedMsg{err: err}
		}
	}
	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return exportViewedMsg{err: err}
	})
}

// View renders the current view
func (a *App) View() string {
	switch a.state {
	case ViewEditor:
		return a.editor.View()
	case ViewPassword:
		return a.password.View()
	case ViewHelp:
		return a.help.View()
	default:
		return a.domains.View()
	}
}
