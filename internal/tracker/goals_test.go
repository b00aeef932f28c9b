package tracker

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoalAdd(t *testing.T) {
	f := newFixture(t)

	g, err := f.tr.Goals.Add(f.ctx, NewGoal{Name: "Marathon", Category: "anything", Milestones: []string{"5k", "10k", ""}})
	require.NoError(t, err)

	assert.Equal(t, "2024-01-22", g.StartDate)
	assert.Equal(t, "2024-01-22", g.Deadline)
	assert.Equal(t, "anything", g.Category)
	assert.Len(t, g.Milestones, 2)
	assert.False(t, g.Completed)
	assert.Equal(t, 0, Progress(g))
}

func TestGoalAddValidation(t *testing.T) {
	f := newFixture(t)

	var verr *ValidationError
	_, err := f.tr.Goals.Add(f.ctx, NewGoal{Name: "Marathon", Milestones: []string{"5k"}})
	require.ErrorAs(t, err, &verr)

	_, err = f.tr.Goals.Add(f.ctx, NewGoal{Name: "Marathon", Category: "Sports"})
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "milestones", verr.Field)

	_, err = f.tr.Goals.Add(f.ctx, NewGoal{Name: "Marathon", Category: "Sports", Deadline: "next week", Milestones: []string{"5k"}})
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "deadline", verr.Field)
}

func TestGoalCompletedTracksMilestones(t *testing.T) {
	f := newFixture(t)
	g, err := f.tr.Goals.Add(f.ctx, NewGoal{Name: "Marathon", Category: "Sports", Milestones: []string{"5k", "10k"}})
	require.NoError(t, err)

	g, err = f.tr.Goals.ToggleMilestone(f.ctx, g.ID, g.Milestones[0].ID)
	require.NoError(t, err)
	assert.False(t, g.Completed)
	assert.Equal(t, 50, Progress(g))

	g, err = f.tr.Goals.ToggleMilestone(f.ctx, g.ID, g.Milestones[1].ID)
	require.NoError(t, err)
	assert.True(t, g.Completed)

	stored, err := f.tr.Goals.Resolve(f.ctx, "marathon")
	require.NoError(t, err)
	assert.True(t, stored.Completed)
	assert.Equal(t, 100, Progress(stored))

	open, done := Split(f.tr.Goals.List(f.ctx))
	assert.Empty(t, open)
	assert.Len(t, done, 1)

	g, err = f.tr.Goals.ToggleMilestone(f.ctx, g.ID, g.Milestones[0].ID)
	require.NoError(t, err)
	assert.False(t, g.Completed)
}

func TestGoalToggleUnknown(t *testing.T) {
	f := newFixture(t)
	g, err := f.tr.Goals.Add(f.ctx, NewGoal{Name: "Marathon", Category: "Sports", Milestones: []string{"5k"}})
	require.NoError(t, err)

	_, err = f.tr.Goals.ToggleMilestone(f.ctx, "nope", g.Milestones[0].ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = f.tr.Goals.ToggleMilestone(f.ctx, g.ID, "nope")
	assert.ErrorIs(t, err, ErrNotFound)

	m, err := ResolveMilestone(g, "5K")
	require.NoError(t, err)
	assert.Equal(t, g.Milestones[0].ID, m.ID)
}

func TestGoalOverdueAndDelete(t *testing.T) {
	f := newFixture(t)
	g, err := f.tr.Goals.Add(f.ctx, NewGoal{Name: "Marathon", Category: "Sports", Deadline: "2024-01-25", Milestones: []string{"5k"}})
	require.NoError(t, err)

	assert.False(t, f.tr.Goals.Overdue(g))
	f.clock.advance(5 * 24 * time.Hour)
	assert.True(t, f.tr.Goals.Overdue(g))

	require.NoError(t, f.tr.Goals.Delete(f.ctx, g.ID))
	assert.ErrorIs(t, f.tr.Goals.Delete(f.ctx, g.ID), ErrNotFound)
}
