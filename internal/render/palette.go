// Package render turns walker events into console lines or a
// tab-separated export table.
package render

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Palette holds the resolved styles for the elements of a tree line.
// It is built once from the configuration and passed by value; there are
// no mutable color globals.
type Palette struct {
	Dir  lipgloss.Style
	File lipgloss.Style
	Perm lipgloss.Style
	Size lipgloss.Style
}

// NewPalette resolves the palette. With colors disabled every style is a
// no-op and text passes through unchanged; with colors enabled the
// profile is pinned to plain ANSI so output is identical everywhere.
func NewPalette(enabled bool) Palette {
	if !enabled {
		plain := lipgloss.NewStyle()

		return Palette{Dir: plain, File: plain, Perm: plain, Size: plain}
	}

	renderer := lipgloss.NewRenderer(os.Stdout)
	renderer.SetColorProfile(termenv.ANSI)

	return Palette{
		Dir:  renderer.NewStyle().Foreground(lipgloss.Color("4")).Bold(true),
		File: renderer.NewStyle().Foreground(lipgloss.Color("2")),
		Perm: renderer.NewStyle().Foreground(lipgloss.Color("6")),
		Size: renderer.NewStyle().Foreground(lipgloss.Color("3")),
	}
}
