package cli

import (
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/mindping/internal/app"
	"github.com/julianstephens/mindping/internal/models"
	"github.com/julianstephens/mindping/internal/utils"
)

// RenderMonth draws a Sunday-first month grid. Each cell shows the day number
// above up to three distinct emoji used that day. The highlight day is
// underlined.
func RenderMonth(a *app.App, month, highlight models.Day, styles Styles) string {
	days := utils.DaysInMonth(month)
	first := days[0].Time(time.UTC)

	var rows []string
	title := styles.Title.
		Width(7 * CellWidth).
		Align(lipgloss.Center).
		Render(first.Format("January 2006"))
	rows = append(rows, title)

	var header []string
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		header = append(header, styles.Header.Render(wd.String()[:3]))
	}
	rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, header...))

	week := make([]string, 0, 7)
	for i := 0; i < int(first.Weekday()); i++ {
		week = append(week, styles.Cell.Render(" \n "))
	}
	for _, d := range days {
		week = append(week, renderCell(a, d, highlight, styles))
		if len(week) == 7 {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, week...))
			week = week[:0]
		}
	}
	if len(week) > 0 {
		for len(week) < 7 {
			week = append(week, styles.Cell.Render(" \n "))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, week...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func renderCell(a *app.App, d, highlight models.Day, styles Styles) string {
	written := len(a.ReflectionsOn(d)) > 0
	badges := a.BadgeEmojis(d)
	label := strconv.Itoa(d.Day)

	body := label + "\n" + strings.Join(badges, "")
	if len(badges) == 0 {
		body = label + "\n "
		if written {
			body = label + "\n•"
		}
	}

	switch {
	case d == highlight:
		return styles.Today.Render(body)
	case written:
		return styles.Filled.Render(body)
	default:
		return styles.Cell.Render(body)
	}
}
