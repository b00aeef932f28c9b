package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/habitual/internal/constants"
)

type styles struct {
	activeTab   lipgloss.Style
	inactiveTab lipgloss.Style
	doc         lipgloss.Style
	status      lipgloss.Style
	danger      lipgloss.Style
}

func stylesFor(theme constants.Theme) styles {
	accent, muted, bg := lipgloss.Color("205"), lipgloss.Color("240"), lipgloss.Color("254")
	if theme == constants.ThemeDark {
		accent, muted, bg = lipgloss.Color("212"), lipgloss.Color("245"), lipgloss.Color("236")
	}
	return styles{
		activeTab: lipgloss.NewStyle().
			Foreground(accent).
			Background(bg).
			Padding(0, 1).
			Bold(true),
		inactiveTab: lipgloss.NewStyle().
			Foreground(muted).
			Padding(0, 1),
		doc:    lipgloss.NewStyle().Padding(1, 2),
		status: lipgloss.NewStyle().Foreground(muted).Italic(true),
		danger: lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	}
}
