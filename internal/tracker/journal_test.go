package tracker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julianstephens/habitual/internal/constants"
)

func TestJournalPasswordLifecycle(t *testing.T) {
	f := newFixture(t)
	j := f.tr.Journal

	has, err := j.HasPassword(f.ctx)
	require.NoError(t, err)
	assert.False(t, has)
	assert.ErrorIs(t, j.Unlock(f.ctx, "x"), ErrNoPassword)

	var verr *ValidationError
	require.ErrorAs(t, j.SetPassword(f.ctx, "  "), &verr)

	require.NoError(t, j.SetPassword(f.ctx, "secret"))
	assert.ErrorIs(t, j.SetPassword(f.ctx, "other"), ErrPasswordSet)

	raw, err := f.store.Get(f.ctx, constants.KeyNotesPassword)
	require.NoError(t, err)
	assert.Equal(t, `"secret"`, string(raw))

	assert.NoError(t, j.Unlock(f.ctx, "secret"))
	assert.ErrorIs(t, j.Unlock(f.ctx, "Secret"), ErrWrongPassword)
}

func TestJournalChangePassword(t *testing.T) {
	f := newFixture(t)
	j := f.tr.Journal
	require.NoError(t, j.SetPassword(f.ctx, "secret"))

	assert.ErrorIs(t, j.ChangePassword(f.ctx, "wrong", "new", "new"), ErrWrongPassword)

	var verr *ValidationError
	require.ErrorAs(t, j.ChangePassword(f.ctx, "secret", " ", " "), &verr)
	require.ErrorAs(t, j.ChangePassword(f.ctx, "secret", "new", "nwe"), &verr)
	assert.Equal(t, "confirm", verr.Field)

	require.NoError(t, j.ChangePassword(f.ctx, " secret ", "new", "new"))
	assert.NoError(t, j.Unlock(f.ctx, "new"))
	assert.ErrorIs(t, j.Unlock(f.ctx, "secret"), ErrWrongPassword)
}

func TestSessionTheme(t *testing.T) {
	f := newFixture(t)

	s := NewSession(f.ctx, f.tr)
	assert.Equal(t, constants.ThemeLight, s.Theme())

	next, err := s.ToggleTheme(f.ctx)
	require.NoError(t, err)
	assert.Equal(t, constants.ThemeDark, next)

	reloaded := NewSession(f.ctx, f.tr)
	assert.Equal(t, constants.ThemeDark, reloaded.Theme())

	var verr *ValidationError
	require.ErrorAs(t, s.SetTheme(f.ctx, "sepia"), &verr)
	assert.Equal(t, constants.ThemeDark, s.Theme())
}

func TestSessionUnlock(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.tr.Journal.SetPassword(f.ctx, "secret"))

	s := NewSession(f.ctx, f.tr)
	assert.False(t, s.Unlocked())
	assert.ErrorIs(t, s.Unlock(f.ctx, "nope"), ErrWrongPassword)
	assert.False(t, s.Unlocked())

	require.NoError(t, s.Unlock(f.ctx, "secret"))
	assert.True(t, s.Unlocked())
	s.Lock()
	assert.False(t, s.Unlocked())
}

func TestClearAll(t *testing.T) {
	f := newFixture(t)
	_, err := f.tr.Habits.Add(f.ctx, NewHabit{Name: "Run", Category: "Health"})
	require.NoError(t, err)
	require.NoError(t, f.tr.Journal.SetPassword(f.ctx, "secret"))

	require.NoError(t, f.tr.ClearAll(f.ctx))

	keys, err := f.store.Keys(f.ctx)
	require.NoError(t, err)
	assert.Empty(t, keys)
}
