package reports

import (
	"bytes"
	"os"
	"path/filepath"
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
	now := time.Date(2024, 1, 22, 9, 30, 0, 0, time.UTC)
	ctx := cli.NewContext(memory.New(), tracker.WithClock(func() time.Time { return now }))
	out := &bytes.Buffer{}
	ctx.Out = out
	ctx.Interactive = false
	return ctx, out
}

func TestReportEmpty(t *testing.T) {
	ctx, out := setupTestContext(t)
	require.NoError(t, (&ReportCmd{}).Run(ctx))
	assert.Contains(t, out.String(), "Progress report, 2024-01-22")
	assert.Contains(t, out.String(), "No habits yet.")
	assert.Contains(t, out.String(), "No routines yet.")
	assert.Contains(t, out.String(), "No goals yet.")
}

func TestReportTablesAndPDF(t *testing.T) {
	ctx, out := setupTestContext(t)
	bg := ctx.Background()

	habit, err := ctx.Tracker.Habits.Add(bg, tracker.NewHabit{Name: "Run", Category: "Health"})
	require.NoError(t, err)
	_, err = ctx.Tracker.Habits.Toggle(bg, habit.ID, "2024-01-22")
	require.NoError(t, err)
	_, err = ctx.Tracker.Routines.Add(bg, tracker.NewRoutine{Name: "Morning", Tasks: []string{"Stretch"}})
	require.NoError(t, err)
	_, err = ctx.Tracker.Goals.Add(bg, tracker.NewGoal{
		Name: "Marathon", Category: "Health", Deadline: "2024-01-01", Milestones: []string{"10k"},
	})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "report.pdf")
	require.NoError(t, (&ReportCmd{PDF: path}).Run(ctx))

	got := out.String()
	for _, want := range []string{"Run", "100%", "Morning", "Marathon", "overdue", "Wrote " + path} {
		assert.Contains(t, got, want)
	}

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}
