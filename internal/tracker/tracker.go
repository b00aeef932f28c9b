// Package tracker implements the habit, routine, goal and journal services
// on top of a key-value storage provider. Every mutation loads the whole
// collection, edits it in memory and writes the whole collection back.
package tracker

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/habitual/internal/constants"
	"github.com/julianstephens/habitual/internal/models"
	"github.com/julianstephens/habitual/internal/storage"
)

// Notifier delivers a desktop notification.
type Notifier interface {
	Notify(title, body string) error
}

type env struct {
	now      func() time.Time
	newID    func() string
	tick     time.Duration
	notifier Notifier
}

func (e *env) today() string {
	return e.now().Format(constants.DateFormat)
}

// Option customises a Tracker.
type Option func(*env)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(e *env) { e.now = now }
}

// WithIDs replaces the uuid generator.
func WithIDs(newID func() string) Option {
	return func(e *env) { e.newID = newID }
}

// WithNotifier sets where timer completions are announced.
func WithNotifier(n Notifier) Option {
	return func(e *env) { e.notifier = n }
}

// WithTick sets the countdown resolution of the timer.
func WithTick(d time.Duration) Option {
	return func(e *env) { e.tick = d }
}

// Tracker groups the services sharing one store.
type Tracker struct {
	store storage.Provider
	env   *env

	Habits     *Habits
	Routines   *Routines
	Goals      *Goals
	Categories *Categories
	Notes      *Notes
	Journal    *Journal
	Timer      *Timer
	Stopwatch  *Stopwatch
	Account    *Account
}

func New(store storage.Provider, opts ...Option) *Tracker {
	e := &env{
		now:   time.Now,
		newID: uuid.NewString,
		tick:  constants.TimerTick,
	}
	for _, opt := range opts {
		opt(e)
	}

	categories := &Categories{
		col: storage.NewCollection[models.Category](store, constants.KeyCategories),
	}

	return &Tracker{
		store:      store,
		env:        e,
		Categories: categories,
		Habits: &Habits{
			env:        e,
			col:        storage.NewCollection[models.Habit](store, constants.KeyHabits),
			categories: categories,
		},
		Routines: &Routines{
			env: e,
			col: storage.NewCollection[models.Routine](store, constants.KeyRoutines),
		},
		Goals: &Goals{
			env: e,
			col: storage.NewCollection[models.Goal](store, constants.KeyGoals),
		},
		Notes: &Notes{
			env: e,
			col: storage.NewCollection[models.Note](store, constants.KeyNotes),
		},
		Journal: &Journal{
			doc: storage.NewDocument[string](store, constants.KeyNotesPassword),
		},
		Timer: &Timer{
			env:      e,
			state:    storage.NewDocument[models.TimerState](store, constants.KeyTimerState),
			sessions: storage.NewCollection[models.TimerSession](store, constants.KeyTimerSessions),
		},
		Stopwatch: &Stopwatch{
			env:   e,
			state: storage.NewDocument[models.StopwatchState](store, constants.KeyStopwatch),
		},
		Account: &Account{
			env: e,
			doc: storage.NewDocument[models.UserAccount](store, constants.KeyUserAccount),
		},
	}
}

// Now returns the tracker's current time.
func (t *Tracker) Now() time.Time {
	return t.env.now()
}

// Today returns the current date key.
func (t *Tracker) Today() string {
	return t.env.today()
}

// Store returns the underlying provider.
func (t *Tracker) Store() storage.Provider {
	return t.store
}

// ClearAll wipes every key in the namespace.
func (t *Tracker) ClearAll(ctx context.Context) error {
	return t.store.Clear(ctx)
}
