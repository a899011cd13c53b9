package entry

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/mindping/internal/models"
)

var (
	dayStyle = lipgloss.NewStyle().
			Bold(true)

	questionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true)

	moodStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))
)

// Model shows the reflections written on one day.
type Model struct {
	viewport    viewport.Model
	Day         models.Day
	Reflections []models.Reflection
	width       int
	height      int
}

func New(width, height int) Model {
	return Model{viewport: viewport.New(width, height)}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return m.viewport.View()
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = height
	m.Render()
}

func (m *Model) SetReflections(day models.Day, reflections []models.Reflection) {
	m.Day = day
	m.Reflections = reflections
	m.Render()
	m.viewport.GotoTop()
}

func (m *Model) Render() {
	var b strings.Builder
	b.WriteString(dayStyle.Render(m.Day.String()))
	b.WriteString("\n")

	if len(m.Reflections) == 0 {
		b.WriteString("No reflection on this day.")
		m.viewport.SetContent(b.String())
		return
	}

	for _, r := range m.Reflections {
		b.WriteString(questionStyle.Render(r.Question))
		b.WriteString("\n")
		if r.Text != "" {
			b.WriteString(r.Text)
			b.WriteString("\n")
		}
		if len(r.Emojis) > 0 {
			b.WriteString(moodStyle.Render(fmt.Sprintf("Mood: %s", strings.Join(r.Emojis, " "))))
			b.WriteString("\n")
		}
	}
	m.viewport.SetContent(b.String())
}
