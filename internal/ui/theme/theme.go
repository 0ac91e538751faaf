package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette — restrained, exam-paper feel
var (
	Primary = lipgloss.Color("#3B82F6") // Blue
	Accent  = lipgloss.Color("#EAB308") // Amber
	Success = lipgloss.Color("#16A34A") // Green
	Error   = lipgloss.Color("#DC2626") // Red
	Text    = lipgloss.Color("#E7E5E4") // Warm white
	TextDim = lipgloss.Color("#78716C") // Stone
	BgCard  = lipgloss.Color("#1C1917") // Near black
	Border  = lipgloss.Color("#44403C") // Dark stone
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Warn = lipgloss.NewStyle().
		Foreground(Accent)
)

// Layout
var (
	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
)
