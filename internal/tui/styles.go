package tui

import "github.com/charmbracelet/lipgloss"

const (
	accentColorCode = "4"
	mutedColorCode  = "8"

	percentScale = 100
)

// titleStyle returns the style for the viewer header line.
func titleStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(accentColorCode)).
		Bold(true)
}

// footerStyle returns the style for the viewer help line.
func footerStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(mutedColorCode))
}
