// Package cli holds what every command shares: the application context,
// store selection and terminal helpers. The commands themselves live in
// the subpackages.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/julianstephens/habitual/internal/backup"
	"github.com/julianstephens/habitual/internal/constants"
	"github.com/julianstephens/habitual/internal/ledger"
	"github.com/julianstephens/habitual/internal/logger"
	"github.com/julianstephens/habitual/internal/storage"
	"github.com/julianstephens/habitual/internal/storage/sqlite"
	"github.com/julianstephens/habitual/internal/tracker"
)

// Context is passed to every command's Run method. Session is nil for
// commands that run before the store is loaded.
type Context struct {
	Store       storage.Provider
	Tracker     *tracker.Tracker
	Session     *tracker.Session
	Out         io.Writer
	Interactive bool
	ConfigPath  string
}

// NewContext wires a tracker over store. Output goes to stdout and prompts
// are enabled when stdin and stdout are terminals.
func NewContext(store storage.Provider, opts ...tracker.Option) *Context {
	return &Context{
		Store:       store,
		Tracker:     tracker.New(store, opts...),
		Out:         os.Stdout,
		Interactive: IsTerminal(),
		ConfigPath:  constants.DefaultConfigFile,
	}
}

// Background is the context for storage calls made by a command.
func (c *Context) Background() context.Context {
	return context.Background()
}

// StartSession loads the persisted theme and journal state. It must run
// after the store is loaded.
func (c *Context) StartSession() {
	c.Session = tracker.NewSession(c.Background(), c.Tracker)
}

// SelectDate resolves a --date value against the window of the given
// number of days ending today. An empty value selects today. It returns the
// date and the window, oldest first.
func (c *Context) SelectDate(value string, days int) (string, []string, error) {
	window := ledger.DayWindow(days, c.Tracker.Now())
	if value == "" {
		return c.Tracker.Today(), window, nil
	}
	if _, err := time.Parse(constants.DateFormat, value); err != nil {
		return "", nil, fmt.Errorf("invalid date %q: use YYYY-MM-DD", value)
	}
	for _, day := range window {
		if day == value {
			return value, window, nil
		}
	}
	return "", nil, fmt.Errorf("date %s is outside the last %d days (%s to %s)", value, days, window[0], window[len(window)-1])
}

func (c *Context) Printf(format string, args ...interface{}) {
	fmt.Fprintf(c.Out, format, args...)
}

func (c *Context) Println(args ...interface{}) {
	fmt.Fprintln(c.Out, args...)
}

// PerformAutomaticBackup snapshots SQLite stores and only logs failures.
func (c *Context) PerformAutomaticBackup() {
	if _, ok := c.Store.(*sqlite.Store); !ok {
		return
	}
	if _, err := backup.NewManager(c.Store.GetConfigPath()).Create(); err != nil {
		logger.Warn("Automatic backup failed", "error", err)
	}
}
