package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"folio/internal/adapters/tui/styles"
)

// HelpKeyMap defines key bindings for the help view
type HelpKeyMap struct {
	Close key.Binding
}

var HelpKeys = HelpKeyMap{
	Close: key.NewBinding(
		key.WithKeys("esc", "q", "?"),
		key.WithHelp("esc/q/?", "close"),
	),
}

// HelpModel is the model for the help view
type HelpModel struct {
	ViewState
}

// NewHelpModel creates a new help view model
func NewHelpModel() *HelpModel {
	return &HelpModel{}
}

// Init initializes the help view
func (m *HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the help view
func (m *HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if key.Matches(msg, HelpKeys.Close) {
			return m, func() tea.Msg {
				return SwitchToDomainsMsg{}
			}
		}
	}
	return m, nil
}

// View renders the help view
func (m *HelpModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("folio — help"))
	b.WriteString("\n")

	sections := []struct {
		title string
		keys  [][2]string
	}{
		{
			title: "Domains",
			keys: [][2]string{
				{"j/k, ↑/↓", "move"},
				{"enter", "open domain"},
				{"q", "quit"},
			},
		},
		{
			title: "Editing (admin mode required)",
			keys: [][2]string{
				{"enter", "edit the selected field"},
				{"a", "append a default item to the selected list"},
				{"x", "remove the selected list item"},
				{"r", "discard all edits (restore loaded content)"},
			},
		},
		{
			title: "Publishing",
			keys: [][2]string{
				{"e", "export working copy as a JSON file"},
				{"c", "copy working copy JSON to the clipboard"},
			},
		},
		{
			title: "Admin mode",
			keys: [][2]string{
				{"ctrl+alt+a", "open the password prompt / lock again"},
			},
		},
	}

	for _, sec := range sections {
		b.WriteString(styles.Subtitle.Render(sec.title))
		b.WriteString("\n")
		for _, k := range sec.keys {
			b.WriteString("  " + styles.HelpKey.Render(k[0]) + "  " + styles.HelpDesc.Render(k[1]))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(styles.Subtitle.Render("Exported files must be committed to the site repository and redeployed; there is no server-side save."))

	return styles.App.Render(b.String())
}
