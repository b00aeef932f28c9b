package system

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/julianstephens/habitual/internal/backup"
	"github.com/julianstephens/habitual/internal/cli"
	"github.com/julianstephens/habitual/internal/constants"
	"github.com/julianstephens/habitual/internal/models"
	"github.com/julianstephens/habitual/internal/notifier"
	"github.com/julianstephens/habitual/internal/storage"
	"github.com/julianstephens/habitual/internal/storage/sqlite"
)

// versioned stores track an applied migration version.
type versioned interface {
	SchemaVersion() (current, latest int, err error)
}

type DoctorCmd struct{}

type check struct {
	name     string
	gatesDB  bool
	needsDB  bool
	warnOnly bool
	run      func(*cli.Context) error
}

var checks = []check{
	{name: "Database reachable", gatesDB: true, run: checkDBReachable},
	{name: "Schema version", needsDB: true, run: checkSchemaVersion},
	{name: "Backups present", warnOnly: true, run: checkBackupsPresent},
	{name: "Data decodes", needsDB: true, run: checkDecode},
	{name: "Data integrity", needsDB: true, run: checkIntegrity},
	{name: "Clock/timezone", run: checkClockTimezone},
	{name: "Notifications", warnOnly: true, run: checkNotifications},
}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	ctx.Println("Running diagnostics...")
	ctx.Println()

	hasError := false
	dbReachable := true
	for _, c := range checks {
		if c.needsDB && !dbReachable {
			ctx.Printf("⊘ %s: SKIPPED (database not reachable)\n", c.name)
			continue
		}
		err := c.run(ctx)
		var skip errSkip
		switch {
		case errors.As(err, &skip):
			ctx.Printf("⊘ %s: SKIPPED (%s)\n", c.name, skip)
		case err != nil && c.warnOnly:
			ctx.Printf("⚠ %s: WARNING\n", c.name)
			ctx.Printf("   %v\n", err)
		case err != nil:
			ctx.Printf("❌ %s: FAIL\n", c.name)
			ctx.Printf("   Error: %v\n", err)
			hasError = true
			if c.gatesDB {
				dbReachable = false
			}
		default:
			ctx.Printf("✓ %s: OK\n", c.name)
		}
	}

	ctx.Println()
	if hasError {
		ctx.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}
	ctx.Println("All diagnostics passed!")
	return nil
}

// errSkip marks a check that does not apply to the active store.
type errSkip string

func (e errSkip) Error() string {
	return string(e)
}

func checkDBReachable(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load database: %w", err)
	}
	if _, err := ctx.Store.Keys(ctx.Background()); err != nil {
		return fmt.Errorf("failed to query database: %w", err)
	}
	return nil
}

func checkSchemaVersion(ctx *cli.Context) error {
	v, ok := ctx.Store.(versioned)
	if !ok {
		return errSkip("store has no schema")
	}
	current, latest, err := v.SchemaVersion()
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}
	if current > latest {
		return fmt.Errorf("database schema version (%d) is newer than supported version (%d)", current, latest)
	}
	if current < latest {
		return fmt.Errorf("migrations incomplete: current version %d, latest version %d", current, latest)
	}
	return nil
}

func checkBackupsPresent(ctx *cli.Context) error {
	if _, ok := ctx.Store.(*sqlite.Store); !ok {
		return errSkip("backups only apply to SQLite stores")
	}
	list, err := backup.NewManager(ctx.Store.GetConfigPath()).List()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}
	if len(list) == 0 {
		return fmt.Errorf("no backups found, consider creating one with 'habitual backup create'")
	}
	return nil
}

// checkDecode loads every known key into its model type.
func checkDecode(ctx *cli.Context) error {
	bg := ctx.Background()
	decoders := []func(context.Context, storage.Provider) error{
		decodeCollection[models.Habit](constants.KeyHabits),
		decodeCollection[models.Routine](constants.KeyRoutines),
		decodeCollection[models.Goal](constants.KeyGoals),
		decodeCollection[models.Category](constants.KeyCategories),
		decodeCollection[models.Note](constants.KeyNotes),
		decodeCollection[models.TimerSession](constants.KeyTimerSessions),
		decodeDocument[models.TimerState](constants.KeyTimerState),
		decodeDocument[models.StopwatchState](constants.KeyStopwatch),
		decodeDocument[models.UserAccount](constants.KeyUserAccount),
		decodeDocument[string](constants.KeyNotesPassword),
		decodeDocument[constants.Theme](constants.KeyAppTheme),
	}
	var errs []error
	for _, decode := range decoders {
		if err := decode(bg, ctx.Store); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func decodeCollection[T any](key string) func(context.Context, storage.Provider) error {
	return func(ctx context.Context, store storage.Provider) error {
		_, err := storage.NewCollection[T](store, key).Load(ctx)
		if errors.Is(err, storage.ErrNotFound) {
			return nil
		}
		return err
	}
}

func decodeDocument[T any](key string) func(context.Context, storage.Provider) error {
	return func(ctx context.Context, store storage.Provider) error {
		_, err := storage.NewDocument[T](store, key).Load(ctx)
		if errors.Is(err, storage.ErrNotFound) {
			return nil
		}
		return err
	}
}

func checkIntegrity(ctx *cli.Context) error {
	bg := ctx.Background()
	var errs []error
	seen := map[string]string{}
	claim := func(kind, id string) {
		if id == "" {
			errs = append(errs, fmt.Errorf("%s without an id", kind))
			return
		}
		if prev, ok := seen[id]; ok {
			errs = append(errs, fmt.Errorf("duplicate id %s (%s and %s)", id, prev, kind))
			return
		}
		seen[id] = kind
	}

	for _, h := range ctx.Tracker.Habits.List(bg) {
		claim("habit", h.ID)
		if !h.Frequency.Valid() {
			errs = append(errs, fmt.Errorf("habit %q has unknown frequency %q", h.Name, h.Frequency))
		}
		if !validDate(h.StartDate) {
			errs = append(errs, fmt.Errorf("habit %q has invalid start date %q", h.Name, h.StartDate))
		}
		for day := range h.History {
			if !validDate(day) {
				errs = append(errs, fmt.Errorf("habit %q has invalid history date %q", h.Name, day))
			}
		}
	}
	for _, r := range ctx.Tracker.Routines.List(bg) {
		claim("routine", r.ID)
		if !r.Frequency.Valid() {
			errs = append(errs, fmt.Errorf("routine %q has unknown frequency %q", r.Name, r.Frequency))
		}
		for _, t := range r.Tasks {
			claim("task", t.ID)
		}
	}
	for _, g := range ctx.Tracker.Goals.List(bg) {
		claim("goal", g.ID)
		if !validDate(g.Deadline) {
			errs = append(errs, fmt.Errorf("goal %q has invalid deadline %q", g.Name, g.Deadline))
		}
		if g.Completed != g.AllMilestonesCompleted() {
			errs = append(errs, fmt.Errorf("goal %q completion flag disagrees with its milestones", g.Name))
		}
		for _, m := range g.Milestones {
			claim("milestone", m.ID)
		}
	}
	for _, n := range ctx.Tracker.Notes.All(bg) {
		claim("note", n.ID)
		if !validDate(n.Date) {
			errs = append(errs, fmt.Errorf("note %q has invalid date %q", n.Heading, n.Date))
		}
	}
	return errors.Join(errs...)
}

func validDate(s string) bool {
	_, err := time.Parse(constants.DateFormat, s)
	return err == nil
}

func checkClockTimezone(ctx *cli.Context) error {
	now := ctx.Tracker.Now()
	if now.Year() < 2020 {
		return fmt.Errorf("system clock looks wrong: %s", now.Format(time.RFC3339))
	}
	if now.Location().String() == "" {
		return fmt.Errorf("no timezone configured")
	}
	return nil
}

// checkNotifications looks for the tray companion that delivers timer
// notifications.
func checkNotifications(*cli.Context) error {
	if err := notifier.Check(); err != nil {
		return fmt.Errorf("timer notifications need the %s companion app: %w", constants.TrayExecutablePrefix, err)
	}
	return nil
}
