// Package summary shows the statistics of the selected habit or routine.
package summary

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/habitual/internal/cli"
	"github.com/julianstephens/habitual/internal/tracker"
)

var (
	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Width(10)

	nameStyle = lipgloss.NewStyle().Bold(true)
)

type Model struct {
	viewport viewport.Model
	stats    *tracker.HabitStats
	today    string
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
	m.viewport.Width = width
	m.viewport.Height = height
	m.render()
}

// SetHabit shows stats for a habit; nil clears the pane.
func (m *Model) SetHabit(stats *tracker.HabitStats, today string) {
	m.stats = stats
	m.today = today
	m.render()
}

func (m *Model) render() {
	if m.stats == nil {
		m.viewport.SetContent("")
		return
	}
	s := m.stats
	line := func(label, value string) string {
		return labelStyle.Render(label) + value + "\n"
	}

	var b strings.Builder
	b.WriteString(nameStyle.Render(s.Habit.Name) + "\n\n")
	b.WriteString(line("Category", s.Habit.Category))
	b.WriteString(line("Accuracy", fmt.Sprintf("%d%%", s.Accuracy)))
	b.WriteString(line("Streak", fmt.Sprintf("%d (best %d)", s.Streak, s.LongestStreak)))
	b.WriteString("\n" + cli.WindowLabel(s.Habit.Frequency, s.Window) + "\n")
	b.WriteString(cli.CalendarStrip(s.Window, s.Habit.History, s.Habit.BackgroundColor, m.today))
	m.viewport.SetContent(b.String())
}
