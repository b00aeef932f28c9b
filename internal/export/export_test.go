package export

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julianstephens/habitual/internal/constants"
	"github.com/julianstephens/habitual/internal/models"
	"github.com/julianstephens/habitual/internal/storage/memory"
	"github.com/julianstephens/habitual/internal/tracker"
)

var now = time.Date(2024, 1, 22, 9, 30, 0, 0, time.UTC)

func seeded(t *testing.T) (*memory.Store, *tracker.Tracker) {
	t.Helper()
	ctx := context.Background()
	store := memory.New()
	tr := tracker.New(store, tracker.WithClock(func() time.Time { return now }))

	habit, err := tr.Habits.Add(ctx, tracker.NewHabit{Name: "Run", Category: "Health"})
	require.NoError(t, err)
	_, err = tr.Habits.Toggle(ctx, habit.ID, "2024-01-22")
	require.NoError(t, err)

	_, err = tr.Routines.Add(ctx, tracker.NewRoutine{Name: "Morning", Tasks: []string{"Stretch", "Water"}})
	require.NoError(t, err)

	goal, err := tr.Goals.Add(ctx, tracker.NewGoal{
		Name: "Marathon", Category: "Health", Deadline: "2024-06-01",
		Milestones: []string{"10k", "Half"},
	})
	require.NoError(t, err)
	_, err = tr.Goals.ToggleMilestone(ctx, goal.ID, goal.Milestones[0].ID)
	require.NoError(t, err)

	_, err = tr.Notes.Add(ctx, tracker.NoteInput{Heading: "Day one", Body: "Ran **5k**."})
	require.NoError(t, err)
	return store, tr
}

func TestBuildReport(t *testing.T) {
	_, tr := seeded(t)
	r := Build(context.Background(), tr)

	assert.Equal(t, now, r.Generated)
	require.Len(t, r.Habits, 1)
	assert.Equal(t, 100, r.Habits[0].Accuracy)
	assert.Equal(t, 1, r.Habits[0].Streak)

	require.Len(t, r.Routines, 1)
	assert.Equal(t, RoutineRow{Name: "Morning", Frequency: constants.FrequencyDaily, Tasks: 2, Accuracy: 0}, r.Routines[0])

	require.Len(t, r.Goals, 1)
	assert.Equal(t, 50, r.Goals[0].Progress)
	assert.Equal(t, "open", GoalStatus(r.Goals[0]))
}

func TestPDF(t *testing.T) {
	_, tr := seeded(t)
	path := filepath.Join(t.TempDir(), "report.pdf")

	require.NoError(t, PDF(Build(context.Background(), tr), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestPDFEmptyReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.pdf")
	require.NoError(t, PDF(Report{Generated: now}, path))
	assert.FileExists(t, path)
}

func TestGoalStatus(t *testing.T) {
	assert.Equal(t, "done", GoalStatus(GoalRow{Completed: true, Overdue: true}))
	assert.Equal(t, "overdue", GoalStatus(GoalRow{Overdue: true}))
	assert.Equal(t, "open", GoalStatus(GoalRow{}))
}

func TestJournalHTML(t *testing.T) {
	notes := []models.Note{
		{ID: "1", Heading: "Older", Body: "first", Date: "2024-01-20"},
		{ID: "2", Heading: "<b>Newer</b>", Body: "Ran **5k**.\n\n<script>alert(1)</script>", Date: "2024-01-22"},
	}

	var buf bytes.Buffer
	require.NoError(t, JournalHTML(&buf, "My journal", notes))
	out := buf.String()

	assert.Contains(t, out, "<title>My journal</title>")
	assert.Contains(t, out, "<strong>5k</strong>")
	assert.Contains(t, out, "&lt;b&gt;Newer&lt;/b&gt;")
	assert.NotContains(t, out, "<script>")
	assert.Less(t, strings.Index(out, "2024-01-22"), strings.Index(out, "2024-01-20"))
	assert.Equal(t, "2024-01-20", notes[0].Date)
}

func TestJournalHTMLEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, JournalHTML(&buf, "Journal", nil))
	assert.Contains(t, buf.String(), "No journal entries.")
}

func TestDumpRestoreRoundTrip(t *testing.T) {
	for _, format := range []Format{FormatJSON, FormatYAML} {
		t.Run(string(format), func(t *testing.T) {
			ctx := context.Background()
			src, _ := seeded(t)

			data, err := Dump(ctx, src, format, now)
			require.NoError(t, err)

			dst := memory.New()
			keys, err := Restore(ctx, dst, data, format, false)
			require.NoError(t, err)
			assert.Equal(t, []string{"categories", "goals", "habits", "notes", "routines"}, keys)

			for _, key := range keys {
				want, err := src.Get(ctx, key)
				require.NoError(t, err)
				got, err := dst.Get(ctx, key)
				require.NoError(t, err)
				assert.JSONEq(t, string(want), string(got), key)
			}
		})
	}
}

func TestDumpSkipsMissingKeys(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	require.NoError(t, store.Set(ctx, constants.KeyAppTheme, []byte(`"dark"`)))

	data, err := Dump(ctx, store, FormatJSON, now)
	require.NoError(t, err)
	assert.JSONEq(t, `{"version":"`+constants.Version+`","exported":"2024-01-22T09:30:00Z","data":{"appTheme":"dark"}}`, string(data))
}

func TestRestoreReplace(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	require.NoError(t, store.Set(ctx, constants.KeyHabits, []byte(`[]`)))

	_, err := Restore(ctx, store, []byte("data:\n  appTheme: dark\n"), FormatYAML, true)
	require.NoError(t, err)

	keys, err := store.Keys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"appTheme"}, keys)
}

func TestRestoreRejectsUnknownKey(t *testing.T) {
	ctx := context.Background()
	store := memory.New()

	_, err := Restore(ctx, store, []byte(`{"data":{"habits":[],"plans":[]}}`), FormatJSON, true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "plans")

	keys, err := store.Keys(ctx)
	require.NoError(t, err)
	assert.Empty(t, keys)
}

func TestFormatFor(t *testing.T) {
	assert.Equal(t, FormatYAML, FormatFor("backup.YAML"))
	assert.Equal(t, FormatYAML, FormatFor("backup.yml"))
	assert.Equal(t, FormatJSON, FormatFor("backup.json"))
	assert.Equal(t, FormatJSON, FormatFor("backup"))
}
