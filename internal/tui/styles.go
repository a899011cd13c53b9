package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/mindping/internal/constants"
)

var (
	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("240")).
				Padding(0, 1)

	docStyle = lipgloss.NewStyle().Margin(1, 2)
)

// activeTabStyle follows the profile's color theme.
func activeTabStyle(themeIndex int) lipgloss.Style {
	color := constants.ThemeColors[0]
	if themeIndex >= 0 && themeIndex < len(constants.ThemeColors) {
		color = constants.ThemeColors[themeIndex]
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(color)).
		Background(lipgloss.Color("236")).
		Padding(0, 1).
		Bold(true)
}
