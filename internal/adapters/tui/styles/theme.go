package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	Primary   = lipgloss.Color("#2563EB") // Blue
	Secondary = lipgloss.Color("#10B981") // Green
	Muted     = lipgloss.Color("#6B7280") // Gray
	Warning   = lipgloss.Color("#F59E0B") // Amber
	Error     = lipgloss.Color("#EF4444") // Red
	White     = lipgloss.Color("#FFFFFF")

	// Base styles
	App = lipgloss.NewStyle().
		Padding(1, 2)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		MarginBottom(1)

	Subtitle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	// Domain rows
	RowDomain = lipgloss.NewStyle().
			Bold(true)

	RowField = lipgloss.NewStyle()

	RowList = lipgloss.NewStyle().
		Foreground(Secondary)

	RowSelected = lipgloss.NewStyle().
			Background(Primary).
			Foreground(White).
			Bold(true)

	RowValue = lipgloss.NewStyle().
			Foreground(Muted)

	// Dirty marker: a domain whose working copy differs from its seed
	Dirty = lipgloss.NewStyle().
		Foreground(Warning).
		Bold(true)

	// Admin gate indicators
	GateLocked = lipgloss.NewStyle().
			Foreground(Muted)

	GateUnlocked = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	// Messages
	Success = lipgloss.NewStyle().
		Foreground(Secondary)

	ErrorMsg = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	// Input fields
	InputLabel = lipgloss.NewStyle().
			Foreground(Muted)

	InputFocused = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(0, 1)

	InputField = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Muted).
			Padding(0, 1)

	// Prompt dialog
	Dialog = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Primary).
		Padding(1, 3)

	// Help bar
	HelpKey = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	HelpDesc = lipgloss.NewStyle().
			Foreground(Muted)
)
