package tracker

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julianstephens/habitual/internal/constants"
	"github.com/julianstephens/habitual/internal/ledger"
)

func TestHabitAddCopiesCategory(t *testing.T) {
	f := newFixture(t)

	h, err := f.tr.Habits.Add(f.ctx, NewHabit{Name: "  Read  ", Category: "study", Frequency: constants.FrequencyWeekly})
	require.NoError(t, err)

	assert.Equal(t, "Read", h.Name)
	assert.Equal(t, "Study", h.Category)
	assert.Equal(t, "school-outline", h.Icon)
	assert.Equal(t, "#3F51B5", h.BackgroundColor)
	assert.Equal(t, constants.FrequencyWeekly, h.Frequency)
	assert.Equal(t, "2024-01-22", h.StartDate)
	assert.Empty(t, h.History)

	assert.Len(t, f.tr.Habits.List(f.ctx), 1)
}

func TestHabitAddValidation(t *testing.T) {
	f := newFixture(t)

	var verr *ValidationError
	_, err := f.tr.Habits.Add(f.ctx, NewHabit{Category: "Health"})
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "name", verr.Field)

	_, err = f.tr.Habits.Add(f.ctx, NewHabit{Name: "Run"})
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "category", verr.Field)

	_, err = f.tr.Habits.Add(f.ctx, NewHabit{Name: "Run", Category: "Helth"})
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Message, "Health")

	_, err = f.tr.Habits.Add(f.ctx, NewHabit{Name: "Run", Category: "Health", Frequency: "Yearly"})
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "frequency", verr.Field)

	assert.Empty(t, f.tr.Habits.List(f.ctx))
}

func TestHabitToggleTodayOnly(t *testing.T) {
	f := newFixture(t)
	h, err := f.tr.Habits.Add(f.ctx, NewHabit{Name: "Run", Category: "Health"})
	require.NoError(t, err)

	_, err = f.tr.Habits.Toggle(f.ctx, h.ID, "2024-01-21")
	assert.ErrorIs(t, err, ErrNotToday)

	done, err := f.tr.Habits.Toggle(f.ctx, h.ID, "2024-01-22")
	require.NoError(t, err)
	assert.True(t, done)

	got, err := f.tr.Habits.Resolve(f.ctx, h.ID)
	require.NoError(t, err)
	assert.Equal(t, ledger.Ledger{"2024-01-22": true}, got.History)
}

func TestHabitDoubleToggleRestores(t *testing.T) {
	f := newFixture(t)
	h, err := f.tr.Habits.Add(f.ctx, NewHabit{Name: "Run", Category: "Health"})
	require.NoError(t, err)

	_, err = f.tr.Habits.Toggle(f.ctx, h.ID, "2024-01-22")
	require.NoError(t, err)
	_, err = f.tr.Habits.Toggle(f.ctx, h.ID, "2024-01-22")
	require.NoError(t, err)

	got, err := f.tr.Habits.Resolve(f.ctx, "run")
	require.NoError(t, err)
	assert.False(t, got.DoneOn("2024-01-22"))
}

func TestHabitToggleWriteFailureIsReported(t *testing.T) {
	f := newFixture(t)
	h, err := f.tr.Habits.Add(f.ctx, NewHabit{Name: "Run", Category: "Health"})
	require.NoError(t, err)

	f.store.FailWrites = errors.New("disk full")
	_, err = f.tr.Habits.Toggle(f.ctx, h.ID, "2024-01-22")
	require.Error(t, err)

	f.store.FailWrites = nil
	got, err := f.tr.Habits.Resolve(f.ctx, h.ID)
	require.NoError(t, err)
	assert.False(t, got.DoneOn("2024-01-22"))
}

func TestHabitToggleUnknown(t *testing.T) {
	f := newFixture(t)
	_, err := f.tr.Habits.Toggle(f.ctx, "missing", "2024-01-22")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestHabitActiveOn(t *testing.T) {
	f := newFixture(t)
	_, err := f.tr.Habits.Add(f.ctx, NewHabit{Name: "Old", Category: "Health"})
	require.NoError(t, err)

	f.clock.advance(48 * time.Hour)
	_, err = f.tr.Habits.Add(f.ctx, NewHabit{Name: "New", Category: "Health"})
	require.NoError(t, err)

	assert.Len(t, f.tr.Habits.ActiveOn(f.ctx, "2024-01-21"), 0)
	assert.Len(t, f.tr.Habits.ActiveOn(f.ctx, "2024-01-22"), 1)
	assert.Len(t, f.tr.Habits.ActiveOn(f.ctx, "2024-01-24"), 2)
}

func TestHabitResolveSuggests(t *testing.T) {
	f := newFixture(t)
	_, err := f.tr.Habits.Add(f.ctx, NewHabit{Name: "Meditate", Category: "Meditation"})
	require.NoError(t, err)

	_, err = f.tr.Habits.Resolve(f.ctx, "medt")
	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, []string{"Meditate"}, nf.Suggestions)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), `did you mean "Meditate"`)
}

func TestHabitDelete(t *testing.T) {
	f := newFixture(t)
	h, err := f.tr.Habits.Add(f.ctx, NewHabit{Name: "Run", Category: "Health"})
	require.NoError(t, err)

	require.NoError(t, f.tr.Habits.Delete(f.ctx, h.ID))
	assert.Empty(t, f.tr.Habits.List(f.ctx))
	assert.ErrorIs(t, f.tr.Habits.Delete(f.ctx, h.ID), ErrNotFound)
}

func TestHabitStats(t *testing.T) {
	f := newFixture(t)
	h, err := f.tr.Habits.Add(f.ctx, NewHabit{Name: "Run", Category: "Health"})
	require.NoError(t, err)
	_, err = f.tr.Habits.Toggle(f.ctx, h.ID, "2024-01-22")
	require.NoError(t, err)

	stats := f.tr.Habits.AllStats(f.ctx)
	require.Len(t, stats, 1)
	assert.Equal(t, 100, stats[0].Accuracy)
	assert.Equal(t, 1, stats[0].Streak)
	assert.Equal(t, 1, stats[0].LongestStreak)
	assert.Len(t, stats[0].Window, constants.DailyWindow)
}
