package history

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/mindping/internal/models"
)

// OpenDayMsg asks the parent to show the reflections for Day.
type OpenDayMsg struct {
	Day models.Day
}

type Item struct {
	Reflection models.Reflection
}

func (i Item) Title() string {
	title := i.Reflection.Day().String()
	if len(i.Reflection.Emojis) > 0 {
		title += "  " + strings.Join(i.Reflection.Emojis, " ")
	}
	return title
}

func (i Item) Description() string {
	text := strings.TrimSpace(i.Reflection.Text)
	if text == "" {
		return i.Reflection.Question
	}
	if first, _, found := strings.Cut(text, "\n"); found {
		return first + " …"
	}
	return text
}

func (i Item) FilterValue() string { return i.Reflection.Text }

type KeyMap struct {
	Open key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open day"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(reflections []models.Reflection, width, height int) Model {
	l := list.New(toItems(reflections), list.NewDefaultDelegate(), width, height)
	l.Title = "History"
	l.SetShowTitle(false)
	l.SetShowHelp(false) // help is rendered by the parent model

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Open}
	}
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Open}
	}

	return Model{list: l, keys: keys}
}

func toItems(reflections []models.Reflection) []list.Item {
	items := make([]list.Item, len(reflections))
	for i, r := range reflections {
		items[i] = Item{Reflection: r}
	}
	return items
}

func (m *Model) SetReflections(reflections []models.Reflection) {
	m.list.SetItems(toItems(reflections))
}

// Filtering reports whether the list is capturing keystrokes for its filter.
func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok && !m.Filtering() {
		if key.Matches(msg, m.keys.Open) {
			if i, ok := m.list.SelectedItem().(Item); ok {
				day := i.Reflection.Day()
				return m, func() tea.Msg { return OpenDayMsg{Day: day} }
			}
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 && !m.Filtering() {
		return "\n  No reflections yet.\n  Run 'mindping reflect' to write your first one."
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
