// Package tui is the interactive terminal front-end: today's habits,
// routines and goals as checklists.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/habitual/internal/constants"
	"github.com/julianstephens/habitual/internal/tracker"
	"github.com/julianstephens/habitual/internal/tui/components/checklist"
	"github.com/julianstephens/habitual/internal/tui/components/summary"
)

type Tab int

const (
	TabHabits Tab = iota
	TabRoutines
	TabGoals
)

var tabNames = []string{"Habits", "Routines", "Goals"}

type Mode int

const (
	ModeBrowse Mode = iota
	ModeForm
	ModeConfirmDelete
)

type HabitFormModel struct {
	Name      string
	Category  string
	Frequency constants.Frequency
}

type RoutineFormModel struct {
	Name  string
	Tasks string
}

type GoalFormModel struct {
	Name       string
	Category   string
	Deadline   string
	Milestones string
}

type Model struct {
	tr      *tracker.Tracker
	session *tracker.Session
	ctx     context.Context

	tab    Tab
	mode   Mode
	keys   KeyMap
	help   help.Model
	styles styles

	lists   [3]checklist.Model
	summary summary.Model

	form        *huh.Form
	habitForm   *HabitFormModel
	routineForm *RoutineFormModel
	goalForm    *GoalFormModel
	pending     checklist.Item

	status   string
	quitting bool
	width    int
	height   int
}

func NewModel(tr *tracker.Tracker, session *tracker.Session) Model {
	m := Model{
		tr:      tr,
		session: session,
		ctx:     context.Background(),
		keys:    DefaultKeyMap(),
		help:    help.New(),
		styles:  stylesFor(session.Theme()),
		lists: [3]checklist.Model{
			checklist.New("Habits", "No habits for today.", 0, 0),
			checklist.New("Routines", "No routines yet.", 0, 0),
			checklist.New("Goals", "No goals yet.", 0, 0),
		},
		summary: summary.New(0, 0),
	}
	m.refresh()
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) ShortHelp() []key.Binding {
	return []key.Binding{m.keys.Tab, m.keys.Toggle, m.keys.Add, m.keys.Delete, m.keys.Quit, m.keys.Help}
}

func (m Model) FullHelp() [][]key.Binding {
	return m.keys.FullHelp()
}

// refresh reloads every list from the tracker.
func (m *Model) refresh() {
	today := m.tr.Today()

	var habits []checklist.Item
	for _, h := range m.tr.Habits.ActiveOn(m.ctx, today) {
		habits = append(habits, checklist.Item{
			ID:     h.ID,
			Name:   h.Name,
			Detail: string(h.Frequency) + " | " + h.Category,
			Done:   h.DoneOn(today),
		})
	}
	m.lists[TabHabits].SetItems(habits)

	var routines []checklist.Item
	for _, r := range m.tr.Routines.ActiveOn(m.ctx, today) {
		done := 0
		for _, t := range r.Tasks {
			if r.TaskDoneOn(today, t.ID) {
				done++
			}
		}
		routines = append(routines, checklist.Item{
			ID:     r.ID,
			Name:   r.Name,
			Detail: fmt.Sprintf("%d/%d tasks done today", done, len(r.Tasks)),
			Header: true,
		})
		for _, t := range r.Tasks {
			routines = append(routines, checklist.Item{
				ID:     t.ID,
				Parent: r.ID,
				Name:   "  " + t.Name,
				Done:   r.TaskDoneOn(today, t.ID),
			})
		}
	}
	m.lists[TabRoutines].SetItems(routines)

	var goals []checklist.Item
	for _, g := range m.tr.Goals.List(m.ctx) {
		detail := fmt.Sprintf("%d%% | due %s", tracker.Progress(g), g.Deadline)
		switch {
		case g.Completed:
			detail += " | completed"
		case m.tr.Goals.Overdue(g):
			detail += " | overdue"
		}
		goals = append(goals, checklist.Item{ID: g.ID, Name: g.Name, Detail: detail, Header: true, Done: g.Completed})
		for _, ms := range g.Milestones {
			goals = append(goals, checklist.Item{ID: ms.ID, Parent: g.ID, Name: "  " + ms.Name, Done: ms.Completed})
		}
	}
	m.lists[TabGoals].SetItems(goals)

	m.updateSummary()
}

func (m *Model) updateSummary() {
	it, ok := m.lists[TabHabits].Selected()
	if !ok {
		m.summary.SetHabit(nil, "")
		return
	}
	h, err := m.tr.Habits.Resolve(m.ctx, it.ID)
	if err != nil {
		m.summary.SetHabit(nil, "")
		return
	}
	stats := m.tr.Habits.Stats(h)
	m.summary.SetHabit(&stats, m.tr.Today())
}

func (m *Model) resize() {
	listWidth := m.width * 3 / 5
	height := m.height - 6
	if height < 0 {
		height = 0
	}
	for i := range m.lists {
		m.lists[i].SetSize(listWidth, height)
	}
	m.summary.SetSize(m.width-listWidth-4, height)
	m.help.Width = m.width
}

func (m *Model) newForm() *huh.Form {
	switch m.tab {
	case TabHabits:
		m.habitForm = &HabitFormModel{Frequency: constants.FrequencyDaily}
		var names []string
		if cats, err := m.tr.Categories.List(m.ctx); err == nil {
			for _, c := range cats {
				names = append(names, c.Name)
			}
		}
		freqs := make([]huh.Option[constants.Frequency], len(constants.Frequencies))
		for i, f := range constants.Frequencies {
			freqs[i] = huh.NewOption(string(f), f)
		}
		return huh.NewForm(huh.NewGroup(
			huh.NewInput().Title("Name").Value(&m.habitForm.Name),
			huh.NewSelect[string]().Title("Category").Options(huh.NewOptions(names...)...).Value(&m.habitForm.Category),
			huh.NewSelect[constants.Frequency]().Title("Frequency").Options(freqs...).Value(&m.habitForm.Frequency),
		))
	case TabRoutines:
		m.routineForm = &RoutineFormModel{}
		return huh.NewForm(huh.NewGroup(
			huh.NewInput().Title("Name").Value(&m.routineForm.Name),
			huh.NewInput().Title("Tasks").Description("Comma separated").Value(&m.routineForm.Tasks),
		))
	default:
		m.goalForm = &GoalFormModel{Deadline: m.tr.Today()}
		return huh.NewForm(huh.NewGroup(
			huh.NewInput().Title("Name").Value(&m.goalForm.Name),
			huh.NewInput().Title("Category").Value(&m.goalForm.Category),
			huh.NewInput().Title("Deadline").Description("YYYY-MM-DD").Value(&m.goalForm.Deadline),
			huh.NewInput().Title("Milestones").Description("Comma separated").Value(&m.goalForm.Milestones),
		))
	}
}

// submit creates the entity described by the completed form.
func (m *Model) submit() error {
	var err error
	switch m.tab {
	case TabHabits:
		_, err = m.tr.Habits.Add(m.ctx, tracker.NewHabit{
			Name:      m.habitForm.Name,
			Category:  m.habitForm.Category,
			Frequency: m.habitForm.Frequency,
		})
	case TabRoutines:
		_, err = m.tr.Routines.Add(m.ctx, tracker.NewRoutine{
			Name:  m.routineForm.Name,
			Tasks: splitList(m.routineForm.Tasks),
		})
	case TabGoals:
		_, err = m.tr.Goals.Add(m.ctx, tracker.NewGoal{
			Name:       m.goalForm.Name,
			Category:   m.goalForm.Category,
			Deadline:   m.goalForm.Deadline,
			Milestones: splitList(m.goalForm.Milestones),
		})
	}
	return err
}

func (m *Model) toggle(it checklist.Item) error {
	today := m.tr.Today()
	switch m.tab {
	case TabHabits:
		_, err := m.tr.Habits.Toggle(m.ctx, it.ID, today)
		return err
	case TabRoutines:
		_, err := m.tr.Routines.ToggleTask(m.ctx, it.Parent, it.ID, today)
		return err
	default:
		goal, err := m.tr.Goals.ToggleMilestone(m.ctx, it.Parent, it.ID)
		if err == nil && goal.Completed {
			m.status = "Goal completed: " + goal.Name
		}
		return err
	}
}

func (m *Model) remove(it checklist.Item) error {
	id := it.ID
	if it.Parent != "" {
		id = it.Parent
	}
	switch m.tab {
	case TabHabits:
		return m.tr.Habits.Delete(m.ctx, id)
	case TabRoutines:
		return m.tr.Routines.Delete(m.ctx, id)
	default:
		return m.tr.Goals.Delete(m.ctx, id)
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
