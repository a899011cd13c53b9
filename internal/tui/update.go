package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/mindping/internal/tui/components/history"
)

const tabCount = SessionState(len(tabTitles))

// calendarHeight is the rows taken by the month grid above the day view.
const calendarHeight = 16

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.historyModel.SetSize(msg.Width-4, max(msg.Height-6, 1))
		m.entryModel.SetSize(msg.Width-4, max(msg.Height-6-calendarHeight, 3))
		return m, nil

	case history.OpenDayMsg:
		m.selectDate(msg.Day)
		m.setState(StateCalendar)
		return m, nil

	case tea.KeyMsg:
		// Let the history filter have every key while it is open
		if m.state == StateHistory && m.historyModel.Filtering() {
			m.historyModel, cmd = m.historyModel.Update(msg)
			return m, cmd
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Tab):
			m.setState((m.state + 1) % tabCount)
			return m, nil
		case key.Matches(msg, m.keys.ShiftTab):
			m.setState((m.state - 1 + tabCount) % tabCount)
			return m, nil
		}

		switch m.state {
		case StateHistory:
			m.historyModel, cmd = m.historyModel.Update(msg)
			return m, cmd
		case StateCalendar:
			switch {
			case key.Matches(msg, m.keys.Left):
				m.selectDate(m.app.SelectedDate().AddDays(-1))
			case key.Matches(msg, m.keys.Right):
				m.selectDate(m.app.SelectedDate().AddDays(1))
			case key.Matches(msg, m.keys.Up):
				m.selectDate(m.app.SelectedDate().AddDays(-7))
			case key.Matches(msg, m.keys.Down):
				m.selectDate(m.app.SelectedDate().AddDays(7))
			case key.Matches(msg, m.keys.Today):
				m.selectDate(m.app.Today())
			default:
				m.entryModel, cmd = m.entryModel.Update(msg)
			}
			return m, cmd
		}
	}

	return m, nil
}
