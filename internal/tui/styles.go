// Package tui provides the interactive terminal widget for cj.
package tui

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	ColorPrimary = lipgloss.Color("#DC2626") // Red - characters, badge
	ColorCode    = lipgloss.Color("#93C5FD") // Blue - codes
	ColorRadical = lipgloss.Color("#FFE66D") // Yellow - radicals
	ColorMuted   = lipgloss.Color("#666666") // Gray - help text
	ColorFaint   = lipgloss.Color("#3D4451") // Separators
	ColorText    = lipgloss.Color("#F1FAEE") // Light text
	ColorBorder  = lipgloss.Color("#3D5A80") // Border color
)

// Panel styles
var (
	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 2)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText).
			Background(ColorPrimary).
			Padding(0, 1)

	BadgeStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText).
			Background(ColorPrimary).
			Padding(1, 3)
)

// Result styles
var (
	CharStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	CodeStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorCode)

	SeparatorStyle = lipgloss.NewStyle().
			Foreground(ColorFaint)

	RadicalStyle = lipgloss.NewStyle().
			Foreground(ColorRadical)

	ReadingStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Italic(true)

	SourceStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	BigCharStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary)

	ResultBoxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(ColorFaint).
			Padding(0, 1).
			MarginBottom(1)
)

// Status styles
var (
	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	LoadingStyle = lipgloss.NewStyle().
			Foreground(ColorRadical).
			Italic(true)

	CopiedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8E6CF")).
			Bold(true)
)
