// Package checklist is a list of toggleable items shared by the habit,
// routine and goal tabs.
package checklist

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

type ToggleMsg struct {
	Item Item
}

type DeleteMsg struct {
	Item Item
}

type AddMsg struct{}

type SelectMsg struct {
	Item Item
}

// Item is one checkable row. For routine tasks and goal milestones Parent
// is the owning routine or goal and ID the task or milestone.
type Item struct {
	ID     string
	Parent string
	Name   string
	Detail string
	Done   bool
	// Header rows group children and toggle nothing.
	Header bool
}

func (i Item) Title() string {
	switch {
	case i.Header:
		return i.Name
	case i.Done:
		return "✓ " + i.Name
	default:
		return "○ " + i.Name
	}
}

func (i Item) Description() string { return i.Detail }
func (i Item) FilterValue() string { return i.Name }

type KeyMap struct {
	Toggle key.Binding
	Add    key.Binding
	Delete key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Toggle: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "toggle"),
		),
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
	}
}

type Model struct {
	list  list.Model
	keys  KeyMap
	empty string
}

func New(title, empty string, width, height int) Model {
	l := list.New(nil, list.NewDefaultDelegate(), width, height)
	l.Title = title
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	return Model{list: l, keys: DefaultKeyMap(), empty: empty}
}

func (m *Model) SetItems(items []Item) {
	li := make([]list.Item, len(items))
	for i, it := range items {
		li[i] = it
	}
	m.list.SetItems(li)
}

func (m Model) Items() []Item {
	out := make([]Item, 0, len(m.list.Items()))
	for _, it := range m.list.Items() {
		out = append(out, it.(Item))
	}
	return out
}

// Selected returns the highlighted item.
func (m Model) Selected() (Item, bool) {
	it, ok := m.list.SelectedItem().(Item)
	return it, ok
}

func (m *Model) Select(index int) {
	m.list.Select(index)
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Add):
			return m, func() tea.Msg { return AddMsg{} }
		case key.Matches(msg, m.keys.Toggle):
			if it, ok := m.Selected(); ok && !it.Header {
				return m, func() tea.Msg { return ToggleMsg{Item: it} }
			}
			return m, nil
		case key.Matches(msg, m.keys.Delete):
			if it, ok := m.Selected(); ok {
				return m, func() tea.Msg { return DeleteMsg{Item: it} }
			}
			return m, nil
		}
	}

	before := m.list.Index()
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	if m.list.Index() != before {
		if it, ok := m.Selected(); ok {
			cmd = tea.Batch(cmd, func() tea.Msg { return SelectMsg{Item: it} })
		}
	}
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 {
		return "\n  " + m.empty + "\n  Press 'a' to add one."
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
