package routines

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julianstephens/habitual/internal/cli"
	"github.com/julianstephens/habitual/internal/storage/memory"
	"github.com/julianstephens/habitual/internal/tracker"
)

func setupTestContext(t *testing.T) (*cli.Context, *bytes.Buffer) {
	t.Helper()
	now := time.Date(2024, 1, 22, 7, 0, 0, 0, time.UTC)
	ctx := cli.NewContext(memory.New(), tracker.WithClock(func() time.Time { return now }))
	out := &bytes.Buffer{}
	ctx.Out = out
	ctx.Interactive = false
	return ctx, out
}

func TestRoutineFlow(t *testing.T) {
	ctx, out := setupTestContext(t)

	var verr *tracker.ValidationError
	require.ErrorAs(t, (&RoutineAddCmd{Name: "Morning"}).Run(ctx), &verr)

	require.NoError(t, (&RoutineAddCmd{Name: "Morning", Tasks: []string{"Stretch", "Water"}}).Run(ctx))
	assert.Contains(t, out.String(), "Added routine: Morning (2 tasks)")

	out.Reset()
	require.NoError(t, (&RoutineToggleCmd{Routine: "morning", Task: "water"}).Run(ctx))
	assert.Contains(t, out.String(), "Morning / Water: done for 2024-01-22")

	out.Reset()
	require.NoError(t, (&RoutineListCmd{}).Run(ctx))
	assert.Contains(t, out.String(), "[x] Water")
	assert.Contains(t, out.String(), "[ ] Stretch")
	assert.Contains(t, out.String(), "0%")

	require.NoError(t, (&RoutineToggleCmd{Routine: "Morning", Task: "Stretch"}).Run(ctx))
	out.Reset()
	require.NoError(t, (&RoutineListCmd{}).Run(ctx))
	assert.Contains(t, out.String(), "100%")

	assert.ErrorIs(t, (&RoutineToggleCmd{Routine: "Morning", Task: "Run"}).Run(ctx), tracker.ErrNotFound)
	assert.ErrorIs(t, (&RoutineToggleCmd{Routine: "Morning", Task: "Water", Date: "2024-01-23"}).Run(ctx), tracker.ErrNotToday)

	require.NoError(t, (&RoutineDeleteCmd{Routine: "Morning", Yes: true}).Run(ctx))
	out.Reset()
	require.NoError(t, (&RoutineListCmd{}).Run(ctx))
	assert.Contains(t, out.String(), "No routines found.")
}

func TestRoutineListPastDay(t *testing.T) {
	now := time.Date(2024, 1, 20, 7, 0, 0, 0, time.UTC)
	ctx := cli.NewContext(memory.New(), tracker.WithClock(func() time.Time { return now }))
	out := &bytes.Buffer{}
	ctx.Out = out
	ctx.Interactive = false

	require.NoError(t, (&RoutineAddCmd{Name: "Morning", Tasks: []string{"Stretch", "Water"}}).Run(ctx))
	require.NoError(t, (&RoutineToggleCmd{Routine: "Morning", Task: "Stretch"}).Run(ctx))
	now = now.AddDate(0, 0, 2)

	out.Reset()
	require.NoError(t, (&RoutineListCmd{}).Run(ctx))
	assert.Contains(t, out.String(), "[22] 21 20 19")
	assert.Contains(t, out.String(), "Routines for 2024-01-22")
	assert.Contains(t, out.String(), "[ ] Stretch")

	out.Reset()
	require.NoError(t, (&RoutineListCmd{Date: "2024-01-20"}).Run(ctx))
	assert.Contains(t, out.String(), "22 21 [20] 19")
	assert.Contains(t, out.String(), "[x] Stretch")
	assert.Contains(t, out.String(), "[ ] Water")

	out.Reset()
	require.NoError(t, (&RoutineListCmd{Date: "2024-01-19"}).Run(ctx))
	assert.Contains(t, out.String(), "No routines found.")

	assert.ErrorIs(t, (&RoutineToggleCmd{Routine: "Morning", Task: "Water", Date: "2024-01-20"}).Run(ctx), tracker.ErrNotToday)
	routine, err := ctx.Tracker.Routines.Resolve(ctx.Background(), "Morning")
	require.NoError(t, err)
	assert.False(t, routine.TaskDoneOn("2024-01-20", routine.Tasks[1].ID))

	assert.ErrorContains(t, (&RoutineListCmd{Date: "2023-12-01"}).Run(ctx), "outside the last 30 days")
}
