package main

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

func newTestContext(t *testing.T) *cli.Context {
	t.Helper()
	now := time.Date(2024, 1, 22, 9, 30, 0, 0, time.UTC)
	ctx := cli.NewContext(memory.New(), tracker.WithClock(func() time.Time { return now }))
	ctx.Interactive = false
	ctx.ConfigPath = ""
	ctx.StartSession()
	return ctx
}

// run parses args against a fresh command tree and executes the selected
// command, returning what it printed.
func run(t *testing.T, ctx *cli.Context, args ...string) string {
	t.Helper()
	var app App
	parser, err := newParser(&app)
	require.NoError(t, err)
	kctx, err := parser.Parse(args)
	require.NoError(t, err, "parse %v", args)

	out := &bytes.Buffer{}
	ctx.Out = out
	require.NoError(t, kctx.Run(ctx), "run %v", args)
	return out.String()
}

func TestWorkflow(t *testing.T) {
	ctx := newTestContext(t)

	out := run(t, ctx, "habit", "add", "Run", "-c", "health", "-f", "daily")
	assert.Contains(t, out, "Added habit: Run (Health, Daily)")

	out = run(t, ctx, "habit", "toggle", "run")
	assert.Contains(t, out, `Marked "Run" done for 2024-01-22`)

	out = run(t, ctx, "habit", "show", "Run")
	assert.Contains(t, out, "Accuracy:  100%")
	assert.Contains(t, out, "Streak:    1 (best 1)")

	out = run(t, ctx, "routine", "add", "Morning", "-t", "Stretch,Water")
	assert.Contains(t, out, "Added routine: Morning (2 tasks)")

	out = run(t, ctx, "routine", "toggle", "Morning", "Stretch")
	assert.Contains(t, out, "Morning / Stretch: done for 2024-01-22")

	out = run(t, ctx, "routine", "list", "--date", "2024-01-22")
	assert.Contains(t, out, "[22] 21 20")
	assert.Contains(t, out, "[x] Stretch")

	out = run(t, ctx, "timer", "stopwatch", "--reset")
	assert.Contains(t, out, "Stopwatch reset.")

	out = run(t, ctx, "goal", "add", "Marathon", "-c", "Health", "-m", "10k", "--deadline", "2024-06-01")
	assert.Contains(t, out, "Added goal: Marathon (due 2024-06-01, 1 milestones)")

	out = run(t, ctx, "goal", "toggle", "Marathon", "10k")
	assert.Contains(t, out, "Goal completed!")

	out = run(t, ctx, "note", "add", "Felt good", "-t", "Long run")
	assert.Contains(t, out, "for 2024-01-22")

	out = run(t, ctx, "theme", "toggle")
	assert.Contains(t, out, "Theme: dark")

	out = run(t, ctx, "report")
	assert.Contains(t, out, "Progress report, 2024-01-22")
	assert.Contains(t, out, "Run")
	assert.Contains(t, out, "Marathon")

	path := filepath.Join(t.TempDir(), "dump.json")
	run(t, ctx, "data", "export", path)
	_, err := os.Stat(path)
	require.NoError(t, err)

	out = run(t, ctx, "data", "clear", "-y")
	assert.Contains(t, out, "All data cleared.")
	assert.Empty(t, ctx.Tracker.Habits.List(ctx.Background()))

	out = run(t, ctx, "data", "import", path)
	assert.Contains(t, out, "Imported")
	habits := ctx.Tracker.Habits.List(ctx.Background())
	require.Len(t, habits, 1)
	assert.Equal(t, "Run", habits[0].Name)
}

func TestDefaultCommandIsTUI(t *testing.T) {
	var app App
	parser, err := newParser(&app)
	require.NoError(t, err)

	kctx, err := parser.Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, "tui", kctx.Command())
	assert.Equal(t, "Local", app.Timezone)
}

func TestConfigFileSuppliesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	store := filepath.Join(dir, "data.json")
	require.NoError(t, os.WriteFile(path, []byte("store: "+store+"\ntimezone: Europe/Paris\n"), 0600))

	var app App
	parser, err := newParser(&app, path)
	require.NoError(t, err)

	_, err = parser.Parse([]string{"habit", "list"})
	require.NoError(t, err)
	assert.Equal(t, store, app.Store)
	assert.Equal(t, "Europe/Paris", app.Timezone)

	_, err = parser.Parse([]string{"--timezone", "UTC", "habit", "list"})
	require.NoError(t, err)
	assert.Equal(t, "UTC", app.Timezone)
}
