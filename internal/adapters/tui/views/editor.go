package views

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"folio/internal/adapters/tui/styles"
	"folio/internal/application"
	"folio/internal/application/commands"
	"folio/internal/domain"
	"folio/internal/ports"
)

// EditorKeyMap defines key bindings for the domain editor view
type EditorKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Edit   key.Binding
	Append key.Binding
	Remove key.Binding
	Export key.Binding
	Copy   key.Binding
	Open   key.Binding
	Reset  key.Binding
	Back   key.Binding
}

var EditorKeys = EditorKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Edit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "edit field"),
	),
	Append: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "append item"),
	),
	Remove: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "remove item"),
	),
	Export: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "export"),
	),
	Copy: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "copy JSON"),
	),
	Open: key.NewBinding(
		key.WithKeys("o"),
		key.WithHelp("o", "open export"),
	),
	Reset: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reset"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "back"),
	),
}

// EditorModel edits one domain's working copy, field by field. All
// mutations go through the same commands the CLI and MCP surfaces use.
type EditorModel struct {
	ViewState
	editor *application.Editor
	target ports.ExportTarget

	name    domain.Name
	session *application.EditSession
	rows    []Row
	cursor  int

	editing bool
	input   textinput.Model

	unlocked   bool
	lastExport string
}

// NewEditorModel creates a new domain editor model
func NewEditorModel(editor *application.Editor, target ports.ExportTarget) *EditorModel {
	input := textinput.New()
	input.CharLimit = 512
	return &EditorModel{
		editor: editor,
		target: target,
		input:  input,
	}
}

// SetUnlocked updates the admin gate; mutations are refused while locked.
func (m *EditorModel) SetUnlocked(v bool) {
	m.unlocked = v
}

// Open points the editor at a domain and loads its session.
func (m *EditorModel) Open(name domain.Name) tea.Cmd {
	m.name = name
	m.session = nil
	m.rows = nil
	m.cursor = 0
	m.editing = false
	m.ClearMessage()
	return func() tea.Msg {
		session, err := m.editor.Session(context.Background(), name)
		if err != nil {
			return errMsg{err}
		}
		return sessionOpenedMsg{session}
	}
}

type sessionOpenedMsg struct {
	session *application.EditSession
}

// Init is a no-op; Open drives loading.
func (m *EditorModel) Init() tea.Cmd {
	return nil
}

func (m *EditorModel) refreshRows() {
	if m.session == nil {
		return
	}
	m.rows = FlattenDocument(m.session.Working())
	if m.cursor >= len(m.rows) {
		m.cursor = max(0, len(m.rows)-1)
	}
}

// Update handles messages for the domain editor
func (m *EditorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionOpenedMsg:
		m.session = msg.session
		m.refreshRows()
		return m, nil

	case errMsg:
		m.SetMessage(msg.err.Error(), true)
		return m, nil

	case tea.KeyMsg:
		if m.editing {
			return m.updateEditing(msg)
		}
		return m.updateBrowsing(msg)
	}

	return m, nil
}

func (m *EditorModel) updateBrowsing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, EditorKeys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, EditorKeys.Down):
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}
	case key.Matches(msg, EditorKeys.Edit):
		return m.startEditing()
	case key.Matches(msg, EditorKeys.Append):
		return m.appendItem()
	case key.Matches(msg, EditorKeys.Remove):
		return m.removeItem()
	case key.Matches(msg, EditorKeys.Export):
		return m.export()
	case key.Matches(msg, EditorKeys.Copy):
		return m.copyJSON()
	case key.Matches(msg, EditorKeys.Open):
		if m.lastExport == "" {
			m.SetMessage("Nothing exported yet", true)
			return m, nil
		}
		path := m.lastExport
		return m, func() tea.Msg {
			return OpenExportMsg{Path: path}
		}
	case key.Matches(msg, EditorKeys.Reset):
		return m.reset()
	case key.Matches(msg, EditorKeys.Back):
		return m, func() tea.Msg {
			return SwitchToDomainsMsg{}
		}
	}
	return m, nil
}

func (m *EditorModel) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.editing = false
		m.applyEdit(m.input.Value())
		return m, nil
	case "esc":
		m.editing = false
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *EditorModel) requireUnlocked() bool {
	if m.unlocked {
		return true
	}
	m.SetMessage("Admin mode is locked: press ctrl+alt+a to unlock", true)
	return false
}

func (m *EditorModel) currentRow() (Row, bool) {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return Row{}, false
	}
	return m.rows[m.cursor], true
}

func (m *EditorModel) startEditing() (tea.Model, tea.Cmd) {
	if !m.requireUnlocked() {
		return m, nil
	}
	row, ok := m.currentRow()
	if !ok || row.Kind != RowScalar {
		return m, nil
	}

	current, _ := m.session.Working().Get(domain.ParsePath(row.Path))
	if s, ok := current.(string); ok {
		m.input.SetValue(s)
	} else {
		data, _ := json.Marshal(current)
		m.input.SetValue(string(data))
	}
	m.input.CursorEnd()
	m.input.Focus()
	m.editing = true
	m.ClearMessage()
	return m, textinput.Blink
}

// applyEdit writes the edited value back. Non-string fields round-trip
// through JSON so numbers and booleans keep their type.
func (m *EditorModel) applyEdit(raw string) {
	row, ok := m.currentRow()
	if !ok {
		return
	}

	current, _ := m.session.Working().Get(domain.ParsePath(row.Path))
	var value any = raw
	if _, isString := current.(string); !isString {
		var parsed any
		if err := json.Unmarshal([]byte(raw), &parsed); err == nil {
			value = parsed
		}
	}

	cmd := commands.NewSetFieldCommand(m.session, row.Path, value)
	result, err := cmd.Execute(context.Background())
	if err != nil {
		m.SetMessage(err.Error(), true)
		return
	}
	m.SetMessage(result.Message, !result.Changed)
	m.refreshRows()
}

func (m *EditorModel) appendItem() (tea.Model, tea.Cmd) {
	if !m.requireUnlocked() {
		return m, nil
	}
	row, ok := m.currentRow()
	if !ok || row.ListPath == "" {
		m.SetMessage("Select a list to append to", true)
		return m, nil
	}

	segments := domain.ParsePath(row.ListPath)
	record := domain.DefaultRecord(segments[len(segments)-1])

	cmd := commands.NewAppendItemCommand(m.session, row.ListPath, record)
	result, err := cmd.Execute(context.Background())
	if err != nil {
		m.SetMessage(err.Error(), true)
		return m, nil
	}
	m.SetMessage(result.Message, !result.Changed)
	m.refreshRows()
	return m, nil
}

func (m *EditorModel) removeItem() (tea.Model, tea.Cmd) {
	if !m.requireUnlocked() {
		return m, nil
	}
	row, ok := m.currentRow()
	if !ok || row.ListPath == "" || row.Index < 0 {
		m.SetMessage("Select a list item to remove", true)
		return m, nil
	}

	cmd := commands.NewRemoveItemCommand(m.session, row.ListPath, row.Index)
	result, err := cmd.Execute(context.Background())
	if err != nil {
		m.SetMessage(err.Error(), true)
		return m, nil
	}
	m.SetMessage(result.Message, !result.Changed)
	m.refreshRows()
	return m, nil
}

func (m *EditorModel) export() (tea.Model, tea.Cmd) {
	if !m.requireUnlocked() {
		return m, nil
	}
	cmd := commands.NewExportCommand(m.session, m.target)
	result, err := cmd.Execute(context.Background())
	if err != nil {
		m.SetMessage(err.Error(), true)
		return m, nil
	}
	m.lastExport = result.Destination
	m.SetMessage(result.Message+"; commit the file and redeploy to publish", false)
	return m, nil
}

func (m *EditorModel) copyJSON() (tea.Model, tea.Cmd) {
	data, err := json.MarshalIndent(m.session.Working(), "", "  ")
	if err != nil {
		m.SetMessage(err.Error(), true)
		return m, nil
	}
	if err := clipboard.WriteAll(string(data)); err != nil {
		m.SetMessage("Clipboard unavailable: "+err.Error(), true)
		return m, nil
	}
	m.SetMessage(fmt.Sprintf("Copied %s JSON to clipboard", m.name), false)
	return m, nil
}

func (m *EditorModel) reset() (tea.Model, tea.Cmd) {
	if !m.requireUnlocked() {
		return m, nil
	}
	cmd := commands.NewResetCommand(m.session)
	result, err := cmd.Execute(context.Background())
	if err != nil {
		m.SetMessage(err.Error(), true)
		return m, nil
	}
	m.SetMessage(result.Message, false)
	m.refreshRows()
	return m, nil
}

// View renders the domain editor
func (m *EditorModel) View() string {
	var b strings.Builder

	title := string(m.name)
	if m.session != nil && m.session.Dirty() {
		title += " " + styles.Dirty.Render("● edited")
	}
	b.WriteString(styles.Title.Render(title))
	b.WriteString("\n")

	if m.session == nil {
		b.WriteString(styles.Subtitle.Render("loading..."))
		return styles.App.Render(b.String())
	}

	if len(m.rows) == 0 {
		b.WriteString(styles.Subtitle.Render("empty document — append to a list or load content first"))
		b.WriteString("\n")
	}

	visible := m.visibleRows()
	for i, row := range visible.rows {
		idx := visible.offset + i
		indent := strings.Repeat("  ", row.Depth)
		label := lastSegment(row.Path)

		var line string
		switch row.Kind {
		case RowList:
			line = indent + styles.RowList.Render(label) + " " + styles.RowValue.Render(row.Preview)
		case RowListItem:
			line = indent + styles.RowList.Render(fmt.Sprintf("[%d]", row.Index)) + " " + styles.RowValue.Render(row.Preview)
		case RowObject:
			line = indent + styles.RowField.Render(label)
		default:
			line = indent + styles.RowField.Render(label) + ": " + styles.RowValue.Render(row.Preview)
		}

		if idx == m.cursor && !m.editing {
			line = styles.RowSelected.Render(indent + label + rowSuffix(row))
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if m.editing {
		row, _ := m.currentRow()
		b.WriteString("\n")
		b.WriteString(styles.InputLabel.Render(row.Path))
		b.WriteString("\n")
		b.WriteString(styles.InputFocused.Render(m.input.View()))
		b.WriteString("\n")
	}

	if m.Message != "" {
		b.WriteString("\n")
		if m.MessageErr {
			b.WriteString(styles.ErrorMsg.Render(m.Message))
		} else {
			b.WriteString(styles.Success.Render(m.Message))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	help := []string{
		styles.HelpKey.Render("enter") + " " + styles.HelpDesc.Render("edit"),
		styles.HelpKey.Render("a") + " " + styles.HelpDesc.Render("append"),
		styles.HelpKey.Render("x") + " " + styles.HelpDesc.Render("remove"),
		styles.HelpKey.Render("e") + " " + styles.HelpDesc.Render("export"),
		styles.HelpKey.Render("c") + " " + styles.HelpDesc.Render("copy"),
		styles.HelpKey.Render("r") + " " + styles.HelpDesc.Render("reset"),
		styles.HelpKey.Render("esc") + " " + styles.HelpDesc.Render("back"),
	}
	b.WriteString(strings.Join(help, "  "))

	return styles.App.Render(b.String())
}

type rowWindow struct {
	rows   []Row
	offset int
}

// visibleRows windows the row list around the cursor so tall documents
// stay navigable in short terminals.
func (m *EditorModel) visibleRows() rowWindow {
	maxRows := m.Height - 10
	if maxRows < 5 {
		maxRows = 20
	}
	if len(m.rows) <= maxRows {
		return rowWindow{rows: m.rows}
	}

	start := m.cursor - maxRows/2
	if start < 0 {
		start = 0
	}
	if start+maxRows > len(m.rows) {
		start = len(m.rows) - maxRows
	}
	return rowWindow{rows: m.rows[start : start+maxRows], offset: start}
}

func rowSuffix(row Row) string {
	if row.Preview == "" {
		return ""
	}
	return ": " + row.Preview
}

func lastSegment(path string) string {
	if i := strings.LastIndex(path, "."); i >= 0 {
		return path[i+1:]
	}
	return path
}
