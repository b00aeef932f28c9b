package tui

import (
	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.mode {
	case ModeForm:
		content = m.styles.doc.Render(m.form.View())
	case ModeConfirmDelete:
		content = m.viewConfirmDelete()
	default:
		content = m.viewTab()
	}

	parts := []string{m.viewTabs(), content}
	if m.status != "" {
		parts = append(parts, m.styles.status.Render(m.status))
	}
	parts = append(parts, m.help.View(m))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) viewTabs() string {
	tabs := make([]string, len(tabNames))
	for i, title := range tabNames {
		if m.tab == Tab(i) {
			tabs[i] = m.styles.activeTab.Render(title)
		} else {
			tabs[i] = m.styles.inactiveTab.Render(title)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewTab() string {
	list := m.lists[m.tab].View()
	if m.tab != TabHabits {
		return m.styles.doc.Render(list)
	}
	return m.styles.doc.Render(lipgloss.JoinHorizontal(lipgloss.Top, list, "  ", m.summary.View()))
}

func (m Model) viewConfirmDelete() string {
	name := m.pendingName()
	return lipgloss.Place(m.width, m.height-4,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			m.styles.danger.Render("Delete "+name+"?"),
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}

// pendingName names what a delete removes. Deleting a task or milestone
// row deletes its routine or goal.
func (m Model) pendingName() string {
	if m.pending.Parent == "" {
		return m.pending.Name
	}
	for _, it := range m.lists[m.tab].Items() {
		if it.ID == m.pending.Parent {
			return it.Name
		}
	}
	return m.pending.Name
}
