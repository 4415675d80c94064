package views

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"folio/internal/adapters/tui/styles"
	"folio/internal/application"
	"folio/internal/auth"
)

// PasswordKeyMap defines key bindings for the password prompt
type PasswordKeyMap struct {
	Submit key.Binding
	Cancel key.Binding
}

var PasswordKeys = PasswordKeyMap{
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "unlock"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
}

// UnlockedMsg reports a successful authentication to the app root
type UnlockedMsg struct{}

// PromptClosedMsg reports the prompt was dismissed without unlocking
type PromptClosedMsg struct{}

type submitResultMsg struct {
	ok  bool
	err error
}

// PasswordModel is the admin password prompt. Submission is
// single-flight: the input is disabled while a comparison is pending.
type PasswordModel struct {
	ViewState
	gate    *auth.Machine
	input   textinput.Model
	pending bool
}

// NewPasswordModel creates a new password prompt model
func NewPasswordModel(gate *auth.Machine) *PasswordModel {
	input := textinput.New()
	input.Placeholder = "password"
	input.EchoMode = textinput.EchoPassword
	input.EchoCharacter = '•'
	input.CharLimit = 128
	return &PasswordModel{
		gate:  gate,
		input: input,
	}
}

// Reset clears the prompt for a fresh open
func (m *PasswordModel) Reset() {
	m.input.SetValue("")
	m.input.Focus()
	m.pending = false
	m.ClearMessage()
}

// Init returns the blink command for the input
func (m *PasswordModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the password prompt
func (m *PasswordModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case submitResultMsg:
		m.pending = false
		// A wrong password and an internal comparison error look the
		// same here: the machine logs the difference.
		if msg.err != nil || !msg.ok {
			m.SetMessage(m.gate.UserError(), true)
			m.input.SetValue("")
			return m, nil
		}
		return m, func() tea.Msg {
			return UnlockedMsg{}
		}

	case tea.KeyMsg:
		if m.pending {
			return m, nil
		}
		switch {
		case key.Matches(msg, PasswordKeys.Submit):
			password := m.input.Value()
			m.pending = true
			return m, func() tea.Msg {
				ok, err := m.gate.Submit(context.Background(), password)
				if errors.Is(err, application.ErrAuthPending) {
					return submitResultMsg{ok: false, err: nil}
				}
				return submitResultMsg{ok: ok, err: err}
			}
		case key.Matches(msg, PasswordKeys.Cancel):
			m.gate.ClosePrompt()
			return m, func() tea.Msg {
				return PromptClosedMsg{}
			}
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the password prompt
func (m *PasswordModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Admin mode"))
	b.WriteString("\n")
	b.WriteString(styles.InputLabel.Render("Password"))
	b.WriteString("\n")
	b.WriteString(styles.InputFocused.Render(m.input.View()))
	b.WriteString("\n")

	if m.pending {
		b.WriteString(styles.Subtitle.Render("checking..."))
		b.WriteString("\n")
	}
	if m.Message != "" {
		b.WriteString(styles.ErrorMsg.Render(m.Message))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	help := []string{
		styles.HelpKey.Render("enter") + " " + styles.HelpDesc.Render("unlock"),
		styles.HelpKey.Render("esc") + " " + styles.HelpDesc.Render("cancel"),
	}
	b.WriteString(strings.Join(help, "  "))

	return styles.App.Render(styles.Dialog.Render(b.String()))
}
