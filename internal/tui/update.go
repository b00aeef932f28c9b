package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/habitual/internal/tui/components/checklist"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = size.Width
		m.height = size.Height
		m.resize()
		return m, nil
	}

	switch m.mode {
	case ModeForm:
		return m.updateForm(msg)
	case ModeConfirmDelete:
		return m.updateConfirm(msg)
	}

	switch msg := msg.(type) {
	case checklist.ToggleMsg:
		if err := m.toggle(msg.Item); err != nil {
			m.status = "Error: " + err.Error()
		}
		m.refresh()
		return m, nil

	case checklist.AddMsg:
		m.status = ""
		m.form = m.newForm()
		m.mode = ModeForm
		return m, m.form.Init()

	case checklist.DeleteMsg:
		m.pending = msg.Item
		m.mode = ModeConfirmDelete
		return m, nil

	case checklist.SelectMsg:
		m.updateSummary()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Tab):
			m.tab = (m.tab + 1) % Tab(len(tabNames))
			return m, nil
		case key.Matches(msg, m.keys.ShiftTab):
			m.tab = (m.tab - 1 + Tab(len(tabNames))) % Tab(len(tabNames))
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Theme):
			theme, err := m.session.ToggleTheme(m.ctx)
			if err != nil {
				m.status = "Error: " + err.Error()
			}
			m.styles = stylesFor(theme)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.lists[m.tab], cmd = m.lists[m.tab].Update(msg)
	return m, cmd
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.mode = ModeBrowse
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		if err := m.submit(); err != nil {
			m.status = "Error: " + err.Error()
		} else {
			m.status = ""
		}
		m.mode = ModeBrowse
		m.refresh()
	case huh.StateAborted:
		m.mode = ModeBrowse
	}
	return m, cmd
}

func (m Model) updateConfirm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch keyMsg.String() {
	case "y", "Y":
		if err := m.remove(m.pending); err != nil {
			m.status = "Error: " + err.Error()
		}
		m.mode = ModeBrowse
		m.refresh()
	case "n", "N", "esc", "q":
		m.mode = ModeBrowse
	}
	return m, nil
}
