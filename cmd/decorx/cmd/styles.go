package cmd

import (
	"github.com/charmbracelet/lipgloss"
)

// Color Palette
var (
	ColorPrimary = lipgloss.Color("#8B5CF6") // Violet
	ColorSuccess = lipgloss.Color("#10B981") // Emerald
	ColorWarning = lipgloss.Color("#F59E0B") // Amber
	ColorError   = lipgloss.Color("#EF4444") // Red
	ColorMuted   = lipgloss.Color("#6B7280") // Gray
)

var (
	styleHeader = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	styleSuccess = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSuccess)

	styleWarning = lipgloss.NewStyle().
			Foreground(ColorWarning)

	styleError = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorError)

	styleMuted = lipgloss.NewStyle().
			Foreground(ColorMuted)

	styleKey = lipgloss.NewStyle().
			Width(24)

	styleKind = lipgloss.NewStyle().
			Width(10).
			Foreground(ColorMuted)
)
