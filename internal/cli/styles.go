package cli

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/mindping/internal/constants"
)

// Styles holds the lipgloss styles for one color theme.
type Styles struct {
	Accent   lipgloss.Style
	Title    lipgloss.Style
	Muted    lipgloss.Style
	Unlocked lipgloss.Style
	Locked   lipgloss.Style
	Warning  lipgloss.Style
	Cell     lipgloss.Style
	Today    lipgloss.Style
	Filled   lipgloss.Style
	Header   lipgloss.Style
}

// CellWidth is the width of one calendar column.
const CellWidth = 9

// ThemeStyles returns the styles for a theme index, falling back to the
// first theme when the index is out of range.
func ThemeStyles(themeIndex int) Styles {
	if themeIndex < 0 || themeIndex >= len(constants.ThemeColors) {
		themeIndex = 0
	}
	accent := lipgloss.Color(constants.ThemeColors[themeIndex])
	muted := lipgloss.Color("240")

	cell := lipgloss.NewStyle().
		Width(CellWidth).
		Align(lipgloss.Center)

	return Styles{
		Accent: lipgloss.NewStyle().Foreground(accent),
		Title: lipgloss.NewStyle().
			Foreground(accent).
			Bold(true),
		Muted:    lipgloss.NewStyle().Foreground(muted),
		Unlocked: lipgloss.NewStyle().Foreground(accent).Bold(true),
		Locked:   lipgloss.NewStyle().Foreground(muted).Faint(true),
		Warning: lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Italic(true),
		Cell:   cell,
		Today:  cell.Foreground(accent).Bold(true).Underline(true),
		Filled: cell.Foreground(accent),
		Header: cell.Foreground(muted).Bold(true),
	}
}
