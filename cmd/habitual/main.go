package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/habitual/internal/cli"
	"github.com/julianstephens/habitual/internal/cli/backups"
	"github.com/julianstephens/habitual/internal/cli/categories"
	"github.com/julianstephens/habitual/internal/cli/data"
	"github.com/julianstephens/habitual/internal/cli/goals"
	"github.com/julianstephens/habitual/internal/cli/habits"
	"github.com/julianstephens/habitual/internal/cli/journal"
	"github.com/julianstephens/habitual/internal/cli/reports"
	"github.com/julianstephens/habitual/internal/cli/routines"
	"github.com/julianstephens/habitual/internal/cli/settings"
	"github.com/julianstephens/habitual/internal/cli/system"
	"github.com/julianstephens/habitual/internal/cli/timer"
	"github.com/julianstephens/habitual/internal/config"
	"github.com/julianstephens/habitual/internal/constants"
	"github.com/julianstephens/habitual/internal/errors"
	"github.com/julianstephens/habitual/internal/logger"
	"github.com/julianstephens/habitual/internal/notifier"
	"github.com/julianstephens/habitual/internal/storage"
	"github.com/julianstephens/habitual/internal/storage/memory"
	"github.com/julianstephens/habitual/internal/tracker"
)

// App is the command tree.
type App struct {
	Version    kong.VersionFlag
	Store      string          `help:"SQLite path, .json file, PostgreSQL URL without a password, or 'keyring'." default:"${default_store}"`
	Timezone   string          `help:"IANA timezone that decides what 'today' is." default:"Local"`
	Debug      bool            `help:"Log debug output to stderr."`
	ConfigFile kong.ConfigFlag `help:"Read flag defaults from this YAML file."`

	Init   system.InitCmd   `cmd:"" help:"Initialize habitual storage."`
	Doctor system.DoctorCmd `cmd:"" help:"Run health checks and diagnostics."`
	Tui    system.TuiCmd    `cmd:"" help:"Launch the interactive TUI." default:"1"`

	Habit    habits.HabitCmd        `cmd:"" help:"Manage habits and their daily check-ins."`
	Routine  routines.RoutineCmd    `cmd:"" help:"Manage routines and their tasks."`
	Goal     goals.GoalCmd          `cmd:"" help:"Manage goals and milestones."`
	Category categories.CategoryCmd `cmd:"" help:"Manage categories."`
	Note     journal.NoteCmd        `cmd:"" help:"Write and read journal notes."`
	Password journal.PasswordCmd    `cmd:"" help:"Manage the journal password."`
	Timer    timer.TimerCmd         `cmd:"" help:"Focus countdown timer."`
	Account  settings.AccountCmd    `cmd:"" help:"Manage your profile."`
	Theme    settings.ThemeCmd      `cmd:"" help:"Switch between light and dark."`
	Report   reports.ReportCmd      `cmd:"" help:"Show accuracy and progress, optionally as PDF."`
	Data     data.DataCmd           `cmd:"" help:"Export, import or clear all data."`
	Backup   backups.BackupCmd      `cmd:"" help:"Manage database backups."`
	Keyring  system.KeyringCmd      `cmd:"" help:"Manage the PostgreSQL connection string in the OS keyring."`
}

func newParser(app *App, configPaths ...string) (*kong.Kong, error) {
	return kong.New(app,
		kong.Name(constants.AppName),
		kong.Description("Habit, routine, goal and journal tracker."),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Configuration(config.Loader, configPaths...),
		kong.Vars{
			"version":       constants.Version,
			"default_store": constants.DefaultStorePath,
		},
	)
}

func main() {
	var app App
	parser, err := newParser(&app, constants.DefaultConfigFile)
	if err != nil {
		panic(err)
	}
	ctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)
	command := ctx.Command()

	if err := logger.Init(logger.Config{
		Debug:     app.Debug,
		ConfigDir: kong.ExpandPath(constants.DefaultConfigDir),
		Quiet:     command == "tui",
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
	}
	defer logger.Close()

	loc, err := time.LoadLocation(app.Timezone)
	if err != nil {
		errors.Fatalf("unknown timezone %q", app.Timezone)
	}

	// keyring commands manage the store credentials and must work without them
	var store storage.Provider
	if strings.HasPrefix(command, "keyring") {
		store = memory.New()
	} else if store, err = cli.NewStore(app.Store); err != nil {
		errors.Fatal(err)
	}
	defer store.Close()

	appCtx := cli.NewContext(store,
		tracker.WithClock(func() time.Time { return time.Now().In(loc) }),
		tracker.WithNotifier(notifier.New()),
	)
	appCtx.ConfigPath = constants.DefaultConfigFile
	if app.ConfigFile != "" {
		appCtx.ConfigPath = string(app.ConfigFile)
	}

	// init creates the store and doctor reports load failures itself
	if command != "init" && command != "doctor" {
		if err := store.Load(); err != nil {
			errors.Fatal(err)
		}
		appCtx.StartSession()
	}

	logger.Debug("Running command", "command", command, "store", store.GetConfigPath())
	errors.Fatal(ctx.Run(appCtx))
}
