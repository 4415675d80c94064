package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"folio/internal/adapters/tui/styles"
	"folio/internal/application"
)

// DomainsKeyMap defines key bindings for the domain list view
type DomainsKeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Enter key.Binding
	Help  key.Binding
	Quit  key.Binding
}

var DomainsKeys = DomainsKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "open"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// DomainsModel lists the content domains with their dirty state
type DomainsModel struct {
	ViewState
	editor   *application.Editor
	statuses []application.DomainStatus
	cursor   int
	unlocked bool
}

// NewDomainsModel creates a new domain list model
func NewDomainsModel(editor *application.Editor) *DomainsModel {
	return &DomainsModel{editor: editor}
}

// SetUnlocked updates the admin gate indicator
func (m *DomainsModel) SetUnlocked(v bool) {
	m.unlocked = v
}

// Init triggers the initial status load
func (m *DomainsModel) Init() tea.Cmd {
	return m.loadStatuses
}

// Reload refreshes the dirty markers
func (m *DomainsModel) Reload() tea.Cmd {
	return m.loadStatuses
}

func (m *DomainsModel) loadStatuses() tea.Msg {
	statuses, err := m.editor.Statuses(context.Background())
	if err != nil {
		return errMsg{err}
	}
	return statusesLoadedMsg{statuses}
}

type statusesLoadedMsg struct {
	statuses []application.DomainStatus
}

type errMsg struct {
	err error
}

// Update handles messages for the domain list
func (m *DomainsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case statusesLoadedMsg:
		m.statuses = msg.statuses
		if m.cursor >= len(m.statuses) {
			m.cursor = 0
		}
		return m, nil

	case errMsg:
		m.SetMessage(msg.err.Error(), true)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, DomainsKeys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, DomainsKeys.Down):
			if m.cursor < len(m.statuses)-1 {
				m.cursor++
			}
		case key.Matches(msg, DomainsKeys.Enter):
			if m.cursor < len(m.statuses) {
				name := m.statuses[m.cursor].Name
				return m, func() tea.Msg {
					return SwitchToEditorMsg{Domain: name}
				}
			}
		case key.Matches(msg, DomainsKeys.Help):
			return m, func() tea.Msg {
				return SwitchToHelpMsg{}
			}
		case key.Matches(msg, DomainsKeys.Quit):
			return m, tea.Quit
		}
	}

	return m, nil
}

// View renders the domain list
func (m *DomainsModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("folio — site content"))
	b.WriteString("\n")

	for i, st := range m.statuses {
		line := fmt.Sprintf("%-10s %s", st.Name, st.Name.FileName())
		if st.Dirty {
			line += "  " + styles.Dirty.Render("● edited")
		}
		if i == m.cursor {
			line = styles.RowSelected.Render(line)
		} else {
			line = styles.RowDomain.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.unlocked {
		b.WriteString(styles.GateUnlocked.Render("admin: unlocked"))
	} else {
		b.WriteString(styles.GateLocked.Render("admin: locked (ctrl+alt+a)"))
	}
	b.WriteString("\n")

	if m.Message != "" {
		if m.MessageErr {
			b.WriteString(styles.ErrorMsg.Render(m.Message))
		} else {
			b.WriteString(styles.Success.Render(m.Message))
		}
		b.WriteString("\n")
	}

	help := []string{
		styles.HelpKey.Render("j/k") + " " + styles.HelpDesc.Render("move"),
		styles.HelpKey.Render("enter") + " " + styles.HelpDesc.Render("open"),
		styles.HelpKey.Render("?") + " " + styles.HelpDesc.Render("help"),
		styles.HelpKey.Render("q") + " " + styles.HelpDesc.Render("quit"),
	}
	b.WriteString(strings.Join(help, "  "))

	return styles.App.Render(b.String())
}
