package checklist

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemTitle(t *testing.T) {
	assert.Equal(t, "✓ Run", Item{Name: "Run", Done: true}.Title())
	assert.Equal(t, "○ Run", Item{Name: "Run"}.Title())
	assert.Equal(t, "Morning", Item{Name: "Morning", Header: true, Done: true}.Title())
}

func TestUpdateEmitsMessages(t *testing.T) {
	m := New("Habits", "Nothing.", 40, 10)
	m.SetItems([]Item{{ID: "r1", Name: "Morning", Header: true}, {ID: "t1", Parent: "r1", Name: "Stretch"}})

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	assert.Nil(t, cmd, "headers are not toggleable")

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a")})
	require.NotNil(t, cmd)
	assert.Equal(t, AddMsg{}, cmd())

	m.Select(1)
	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, ToggleMsg{Item: Item{ID: "t1", Parent: "r1", Name: "Stretch"}}, cmd())

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("d")})
	require.NotNil(t, cmd)
	assert.Equal(t, DeleteMsg{Item: Item{ID: "t1", Parent: "r1", Name: "Stretch"}}, cmd())
}

func TestEmptyView(t *testing.T) {
	m := New("Goals", "No goals yet.", 40, 10)
	assert.Contains(t, m.View(), "No goals yet.")
	assert.Empty(t, m.Items())
}
