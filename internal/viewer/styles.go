package viewer

import "github.com/charmbracelet/lipgloss"

// Colors shared by the viewer chrome.
var (
	Primary = lipgloss.Color("212")
	Error   = lipgloss.Color("196")
	Info    = lipgloss.Color("45") // cyan
	Muted   = lipgloss.Color("241")
	BgBar   = lipgloss.Color("235") // status bar background
)

// Text styles
var (
	Title     = lipgloss.NewStyle().Bold(true).Foreground(Primary)
	MutedText = lipgloss.NewStyle().Foreground(Muted)
	ErrorText = lipgloss.NewStyle().Foreground(Error).Bold(true)

	StatusBar = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Background(BgBar).
			Padding(0, 1)

	FilterPrompt = lipgloss.NewStyle().Foreground(Info).Bold(true)
)

// Row styles
var (
	RowLabel  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	RowDetail = lipgloss.NewStyle().Foreground(Muted)
)
