package timer

import (
	"context"
	"os"
	"os/signal"
	"time"

	"github.com/julianstephens/habitual/internal/cli"
	"github.com/julianstephens/habitual/internal/models"
	"github.com/julianstephens/habitual/internal/tracker"
)

type TimerCmd struct {
	Start     TimerStartCmd     `cmd:"" help:"Run a focus countdown in the foreground."`
	Status    TimerStatusCmd    `cmd:"" help:"Show the saved countdown state."`
	Reset     TimerResetCmd     `cmd:"" help:"Clear the saved countdown."`
	Stopwatch TimerStopwatchCmd `cmd:"" help:"Run a count-up stopwatch in the foreground."`
	Sessions  TimerSessionsCmd  `cmd:"" help:"List completed sessions."`
	Delete    TimerDeleteCmd    `cmd:"" help:"Delete a completed session."`
	Clear     TimerClearCmd     `cmd:"" help:"Delete all completed sessions."`
}

type TimerStartCmd struct {
	Duration time.Duration `arg:"" optional:"" help:"Countdown length, e.g. 25m or 1h30m."`
	Title    string        `short:"t" help:"Session title."`
	Resume   bool          `help:"Continue the paused countdown instead of starting a new one."`
}

func (c *TimerStartCmd) Run(ctx *cli.Context) error {
	bg := ctx.Background()
	var (
		countdown *tracker.Countdown
		err       error
	)
	if c.Resume {
		countdown, err = ctx.Tracker.Timer.Resume(bg, c.Title)
	} else {
		countdown, err = ctx.Tracker.Timer.Start(bg, c.Title, c.Duration)
	}
	if err != nil {
		return err
	}

	runCtx, stop := signal.NotifyContext(bg, os.Interrupt)
	defer stop()
	return run(runCtx, ctx, countdown)
}

func run(runCtx context.Context, ctx *cli.Context, countdown *tracker.Countdown) error {
	ctx.Printf("%s  %s", countdown.Title, tracker.FormatClock(countdown.State.TimeLeft))
	err := ctx.Tracker.Timer.Run(runCtx, countdown, func(c *tracker.Countdown) {
		ctx.Printf("\r%s  %s", c.Title, tracker.FormatClock(c.State.TimeLeft))
	})
	ctx.Println()
	if err != nil {
		return err
	}

	if countdown.Done() {
		ctx.Printf("Session complete: %s (%s)\n", countdown.Title, tracker.FormatDuration(countdown.Total))
	} else {
		ctx.Printf("Paused with %s left. Run 'habitual timer start --resume' to continue.\n", tracker.FormatClock(countdown.State.TimeLeft))
	}
	return nil
}

type TimerStopwatchCmd struct {
	Reset bool `help:"Set the stopwatch back to zero instead of running it."`
}

func (c *TimerStopwatchCmd) Run(ctx *cli.Context) error {
	bg := ctx.Background()
	if c.Reset {
		if err := ctx.Tracker.Stopwatch.Reset(bg); err != nil {
			return err
		}
		ctx.Println("Stopwatch reset.")
		return nil
	}
	st, err := ctx.Tracker.Stopwatch.Start(bg)
	if err != nil {
		return err
	}

	runCtx, stop := signal.NotifyContext(bg, os.Interrupt)
	defer stop()
	return runStopwatch(runCtx, ctx, st)
}

// runStopwatch counts up until runCtx is cancelled.
func runStopwatch(runCtx context.Context, ctx *cli.Context, st *models.StopwatchState) error {
	ctx.Printf("Stopwatch  %s", tracker.FormatClock(st.Elapsed))
	err := ctx.Tracker.Stopwatch.Run(runCtx, st, func(s models.StopwatchState) {
		ctx.Printf("\rStopwatch  %s", tracker.FormatClock(s.Elapsed))
	})
	ctx.Println()
	if err != nil {
		return err
	}
	ctx.Printf("Paused at %s. Run 'habitual timer stopwatch' to continue or add --reset to clear it.\n", tracker.FormatClock(st.Elapsed))
	return nil
}

type TimerStatusCmd struct{}

func (c *TimerStatusCmd) Run(ctx *cli.Context) error {
	st := ctx.Tracker.Timer.State(ctx.Background())
	switch {
	case st.TimeLeft <= 0:
		ctx.Println("No countdown in progress.")
	case st.IsRunning:
		ctx.Printf("Running: %s left\n", tracker.FormatClock(st.TimeLeft))
	default:
		ctx.Printf("Paused: %s left\n", tracker.FormatClock(st.TimeLeft))
	}
	return nil
}

type TimerResetCmd struct{}

func (c *TimerResetCmd) Run(ctx *cli.Context) error {
	if err := ctx.Tracker.Timer.Reset(ctx.Background()); err != nil {
		return err
	}
	ctx.Println("Timer reset.")
	return nil
}

type TimerSessionsCmd struct{}

func (c *TimerSessionsCmd) Run(ctx *cli.Context) error {
	sessions := ctx.Tracker.Timer.Sessions(ctx.Background())
	if len(sessions) == 0 {
		ctx.Println("No sessions yet.")
		return nil
	}
	for i, s := range sessions {
		ctx.Printf("%3d  %-24s %-12s %s - %s\n", i+1, cli.Truncate(s.Title, 24), s.Duration, s.StartTime, s.EndTime)
	}
	return nil
}

type TimerDeleteCmd struct {
	Number int `arg:"" help:"Session number as shown by 'timer sessions'."`
}

func (c *TimerDeleteCmd) Run(ctx *cli.Context) error {
	if err := ctx.Tracker.Timer.DeleteSession(ctx.Background(), c.Number-1); err != nil {
		return err
	}
	ctx.Printf("Deleted session %d\n", c.Number)
	return nil
}

type TimerClearCmd struct {
	Yes bool `short:"y" help:"Do not ask for confirmation."`
}

func (c *TimerClearCmd) Run(ctx *cli.Context) error {
	if !c.Yes {
		ok, err := ctx.Confirm("Delete all timer sessions?", true)
		if err != nil || !ok {
			return err
		}
	}
	if err := ctx.Tracker.Timer.ClearSessions(ctx.Background()); err != nil {
		return err
	}
	ctx.Println("Timer sessions cleared.")
	return nil
}
