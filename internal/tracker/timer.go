package tracker

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/habitual/internal/constants"
	"github.com/julianstephens/habitual/internal/logger"
	"github.com/julianstephens/habitual/internal/models"
	"github.com/julianstephens/habitual/internal/storage"
)

type Timer struct {
	env      *env
	state    *storage.Document[models.TimerState]
	sessions *storage.Collection[models.TimerSession]
}

// Countdown is a running timer. Only TimeLeft and IsRunning are persisted;
// the title and start time live for the length of the countdown.
type Countdown struct {
	Title   string
	Total   time.Duration
	Started time.Time
	State   models.TimerState
}

// Done reports whether the countdown has reached zero.
func (c *Countdown) Done() bool {
	return c.State.TimeLeft <= 0
}

// State returns the persisted timer state, zero when none is stored.
func (t *Timer) State(ctx context.Context) models.TimerState {
	return t.state.LoadOr(ctx, models.TimerState{})
}

// Start begins a countdown of d and persists it as running.
func (t *Timer) Start(ctx context.Context, title string, d time.Duration) (*Countdown, error) {
	secs := int(d / time.Second)
	if secs <= 0 {
		return nil, invalid("duration", "Please set a valid time")
	}
	c := &Countdown{
		Title:   normalizeTitle(title),
		Total:   time.Duration(secs) * time.Second,
		Started: t.env.now(),
		State:   models.TimerState{TimeLeft: secs, IsRunning: true},
	}
	if err := t.state.Save(ctx, c.State); err != nil {
		return nil, err
	}
	return c, nil
}

// Resume continues a paused countdown from the persisted time left.
func (t *Timer) Resume(ctx context.Context, title string) (*Countdown, error) {
	st := t.State(ctx)
	if st.TimeLeft <= 0 {
		return nil, invalid("duration", "There is no paused timer to resume")
	}
	st.IsRunning = true
	c := &Countdown{
		Title:   normalizeTitle(title),
		Total:   time.Duration(st.TimeLeft) * time.Second,
		Started: t.env.now(),
		State:   st,
	}
	if err := t.state.Save(ctx, st); err != nil {
		return nil, err
	}
	return c, nil
}

// Tick advances c by one second and persists the new state. When the
// countdown reaches zero the session is recorded and a notification sent.
func (t *Timer) Tick(ctx context.Context, c *Countdown) error {
	if c.Done() {
		return nil
	}
	c.State.TimeLeft--
	if c.Done() {
		return t.finish(ctx, c)
	}
	return t.state.Save(ctx, c.State)
}

func (t *Timer) finish(ctx context.Context, c *Countdown) error {
	c.State = models.TimerState{TimeLeft: 0, IsRunning: false}
	if err := t.state.Save(ctx, c.State); err != nil {
		return err
	}

	session := models.TimerSession{
		Title:     c.Title,
		Duration:  FormatDuration(c.Total),
		StartTime: c.Started.Format(constants.ClockFormat),
		EndTime:   t.env.now().Format(constants.ClockFormat),
	}
	all := t.sessions.LoadAll(ctx)
	if err := t.sessions.SaveAll(ctx, append(all, session)); err != nil {
		return err
	}

	if t.env.notifier != nil {
		if err := t.env.notifier.Notify(constants.TimerDoneTitle, constants.TimerDoneBody); err != nil {
			logger.Debug("Timer notification not delivered", "error", err)
		}
	}
	return nil
}

// Run ticks c until it completes or ctx is cancelled. onTick, if set, is
// called after every tick. On cancellation the countdown is paused.
func (t *Timer) Run(ctx context.Context, c *Countdown, onTick func(*Countdown)) error {
	ticker := time.NewTicker(t.env.tick)
	defer ticker.Stop()

	for !c.Done() {
		select {
		case <-ctx.Done():
			return t.Pause(context.WithoutCancel(ctx), c)
		case <-ticker.C:
			if ctx.Err() != nil {
				return t.Pause(context.WithoutCancel(ctx), c)
			}
			if err := t.Tick(ctx, c); err != nil {
				return err
			}
			if onTick != nil {
				onTick(c)
			}
		}
	}
	return nil
}

// Pause stops c and persists the remaining time.
func (t *Timer) Pause(ctx context.Context, c *Countdown) error {
	c.State.IsRunning = false
	return t.state.Save(ctx, c.State)
}

// Reset clears the countdown state.
func (t *Timer) Reset(ctx context.Context) error {
	return t.state.Save(ctx, models.TimerState{})
}

// Sessions returns completed sessions, oldest first.
func (t *Timer) Sessions(ctx context.Context) []models.TimerSession {
	return t.sessions.LoadAll(ctx)
}

// DeleteSession removes the session at index.
func (t *Timer) DeleteSession(ctx context.Context, index int) error {
	all := t.sessions.LoadAll(ctx)
	if index < 0 || index >= len(all) {
		return &NotFoundError{Kind: "session", Ref: fmt.Sprint(index)}
	}
	return t.sessions.SaveAll(ctx, append(all[:index], all[index+1:]...))
}

// ClearSessions removes the whole session history.
func (t *Timer) ClearSessions(ctx context.Context) error {
	return t.sessions.Remove(ctx)
}

// Stopwatch counts up from zero. The elapsed time is persisted on every
// tick so a paused stopwatch continues where it stopped.
type Stopwatch struct {
	env   *env
	state *storage.Document[models.StopwatchState]
}

// State returns the persisted stopwatch state, zero when none is stored.
func (s *Stopwatch) State(ctx context.Context) models.StopwatchState {
	return s.state.LoadOr(ctx, models.StopwatchState{})
}

// Start marks the stopwatch running from its saved elapsed time.
func (s *Stopwatch) Start(ctx context.Context) (*models.StopwatchState, error) {
	st := s.State(ctx)
	st.IsRunning = true
	if err := s.state.Save(ctx, st); err != nil {
		return nil, err
	}
	return &st, nil
}

// Run counts st up once per tick until ctx is cancelled, then pauses it.
// onTick, if set, is called after every tick.
func (s *Stopwatch) Run(ctx context.Context, st *models.StopwatchState, onTick func(models.StopwatchState)) error {
	ticker := time.NewTicker(s.env.tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return s.Pause(context.WithoutCancel(ctx), st)
		case <-ticker.C:
			if ctx.Err() != nil {
				return s.Pause(context.WithoutCancel(ctx), st)
			}
			st.Elapsed++
			if err := s.state.Save(ctx, *st); err != nil {
				return err
			}
			if onTick != nil {
				onTick(*st)
			}
		}
	}
}

// Pause stops st and persists the elapsed time.
func (s *Stopwatch) Pause(ctx context.Context, st *models.StopwatchState) error {
	st.IsRunning = false
	return s.state.Save(ctx, *st)
}

// Reset sets the stopwatch back to zero.
func (s *Stopwatch) Reset(ctx context.Context) error {
	return s.state.Save(ctx, models.StopwatchState{})
}

// FormatDuration renders d as "<h>h <m>m <s>s".
func FormatDuration(d time.Duration) string {
	secs := int(d / time.Second)
	return fmt.Sprintf("%dh %dm %ds", secs/3600, secs%3600/60, secs%60)
}

// FormatClock renders seconds as HH:MM:SS for the countdown display.
func FormatClock(secs int) string {
	if secs < 0 {
		secs = 0
	}
	return fmt.Sprintf("%02d:%02d:%02d", secs/3600, secs%3600/60, secs%60)
}

func normalizeTitle(title string) string {
	if title = strings.TrimSpace(title); title == "" {
		return constants.DefaultTimerTitle
	}
	return title
}
