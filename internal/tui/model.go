package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/mindping/internal/achievements"
	"github.com/julianstephens/mindping/internal/app"
	"github.com/julianstephens/mindping/internal/cli"
	"github.com/julianstephens/mindping/internal/models"
	"github.com/julianstephens/mindping/internal/tui/components/entry"
	"github.com/julianstephens/mindping/internal/tui/components/history"
)

type SessionState int

const (
	StateToday SessionState = iota
	StateHistory
	StateCalendar
	StateAchievements
)

var tabTitles = [...]string{"Today", "History", "Calendar", "Achievements"}

// Model browses the journal through the app facade. Writing happens in the
// reflect command; this view only reads, apart from the history visit flag.
type Model struct {
	app          *app.App
	state        SessionState
	keys         KeyMap
	help         help.Model
	styles       cli.Styles
	historyModel history.Model
	entryModel   entry.Model
	status       string
	quitting     bool
	width        int
	height       int
}

func NewModel(a *app.App) Model {
	if a.SelectedDate().IsZero() {
		a.SetSelectedDate(a.Today())
	}

	em := entry.New(0, 0)
	em.SetReflections(a.SelectedDate(), a.ReflectionsForSelectedDate())

	return Model{
		app:          a,
		state:        StateToday,
		keys:         DefaultKeyMap(),
		help:         help.New(),
		styles:       cli.ThemeStyles(a.Preferences().ThemeIndex),
		historyModel: history.New(a.History(), 0, 0),
		entryModel:   em,
	}
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	if m.state == StateCalendar {
		keys = append(keys, m.keys.Left, m.keys.Right, m.keys.Today)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help}

	var actions []key.Binding
	if m.state == StateCalendar {
		actions = []key.Binding{m.keys.Left, m.keys.Right, m.keys.Up, m.keys.Down, m.keys.Today}
	}
	return [][]key.Binding{global, actions}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// setState switches tabs. Opening History counts as viewing past entries.
func (m *Model) setState(s SessionState) {
	m.state = s
	if s != StateHistory {
		return
	}

	before := m.app.Achievements()
	if err := m.app.MarkHistoryViewed(); err != nil {
		m.status = m.styles.Warning.Render("⚠ " + err.Error())
		return
	}
	for _, ach := range achievements.NewlyUnlocked(before, m.app.Achievements()) {
		m.status = m.styles.Unlocked.Render("🏆 Achievement unlocked: " + ach.Title)
	}
}

// selectDate moves the calendar selection and refreshes the day view.
func (m *Model) selectDate(day models.Day) {
	m.app.SetSelectedDate(day)
	m.entryModel.SetReflections(day, m.app.ReflectionsForSelectedDate())
}
