package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/mindping/internal/cli"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case StateToday:
		content = m.viewToday()
	case StateHistory:
		content = m.historyModel.View()
	case StateCalendar:
		content = m.viewCalendar()
	case StateAchievements:
		content = m.viewAchievements()
	}

	parts := []string{m.viewTabs(), docStyle.Render(content)}
	if m.status != "" {
		parts = append(parts, m.status)
	}
	parts = append(parts, m.help.View(m))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) viewTabs() string {
	active := activeTabStyle(m.app.Preferences().ThemeIndex)
	var tabs []string
	for i, title := range tabTitles {
		if m.state == SessionState(i) {
			tabs = append(tabs, active.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewToday() string {
	var b strings.Builder
	b.WriteString(m.styles.Muted.Render(m.app.Today().String()))
	b.WriteString("\n")
	b.WriteString(m.styles.Title.Render(m.app.TodayQuestion()))
	b.WriteString("\n\n")

	if r, ok := m.app.SavedToday(); ok {
		if r.Text != "" {
			b.WriteString(r.Text)
			b.WriteString("\n")
		}
		b.WriteString(fmt.Sprintf("Mood: %s\n", cli.FormatEmojis(r.Emojis)))
	} else {
		b.WriteString(m.styles.Muted.Render("Nothing written yet. Run 'mindping reflect' to answer."))
		b.WriteString("\n")
	}

	s := m.app.Stats(m.app.Now())
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Current streak: %d day(s)  ·  Longest: %d day(s)", s.CurrentStreak, s.LongestStreak))
	return b.String()
}

func (m Model) viewCalendar() string {
	selected := m.app.SelectedDate()
	grid := cli.RenderMonth(m.app, selected, selected, m.styles)
	return lipgloss.JoinVertical(lipgloss.Left, grid, "", m.entryModel.View())
}

func (m Model) viewAchievements() string {
	list := m.app.Achievements()
	lines := []string{
		m.styles.Title.Render(fmt.Sprintf("%d/%d unlocked", len(m.app.Unlocked()), len(list))),
		"",
	}
	for _, ach := range list {
		if ach.IsUnlocked {
			lines = append(lines, "🏆 "+m.styles.Unlocked.Render(ach.Title)+"  "+ach.Description)
		} else {
			lines = append(lines, "🔒 "+m.styles.Locked.Render(ach.Title+"  "+ach.Description))
		}
	}
	return strings.Join(lines, "\n")
}
