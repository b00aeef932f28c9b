package routines

import (
	"fmt"

	"github.com/julianstephens/habitual/internal/cli"
	"github.com/julianstephens/habitual/internal/constants"
	"github.com/julianstephens/habitual/internal/tracker"
)

type RoutineCmd struct {
	Add    RoutineAddCmd    `cmd:"" help:"Add a routine with its tasks."`
	List   RoutineListCmd   `cmd:"" help:"List routines with a day's task status."`
	Toggle RoutineToggleCmd `cmd:"" help:"Toggle today's completion of a routine task."`
	Delete RoutineDeleteCmd `cmd:"" help:"Delete a routine."`
}

type RoutineAddCmd struct {
	Name        string   `arg:"" help:"Routine name."`
	Tasks       []string `short:"t" help:"Task names, repeat or comma separate." sep:","`
	Description string   `short:"d" help:"Optional description."`
}

func (c *RoutineAddCmd) Run(ctx *cli.Context) error {
	routine, err := ctx.Tracker.Routines.Add(ctx.Background(), tracker.NewRoutine{
		Name:        c.Name,
		Description: c.Description,
		Tasks:       c.Tasks,
	})
	if err != nil {
		return err
	}
	ctx.Printf("Added routine: %s (%d tasks)\n", routine.Name, len(routine.Tasks))
	return nil
}

type RoutineListCmd struct {
	Date string `help:"Show task status for a day within the last 30 days (YYYY-MM-DD)." default:""`
}

func (c *RoutineListCmd) Run(ctx *cli.Context) error {
	day, window, err := ctx.SelectDate(c.Date, constants.RoutineWindow)
	if err != nil {
		return err
	}
	routines := ctx.Tracker.Routines.ActiveOn(ctx.Background(), day)
	if len(routines) == 0 {
		ctx.Println("No routines found.")
		return nil
	}

	// a day is marked once any routine active on it has a ticked task
	ctx.Printf("%s\n\n", cli.DayStrip(window, day, func(d string) bool {
		for _, r := range routines {
			for _, task := range r.Tasks {
				if r.ActiveOn(d) && r.TaskDoneOn(d, task.ID) {
					return true
				}
			}
		}
		return false
	}))
	ctx.Printf("Routines for %s:\n\n", day)
	for i, r := range routines {
		if i > 0 {
			ctx.Println()
		}
		ctx.Printf("%s  %d%%\n", cli.TitleStyle.Render(r.Name), ctx.Tracker.Routines.Accuracy(r))
		for _, task := range r.Tasks {
			ctx.Printf("  %s %s\n", cli.Check(r.TaskDoneOn(day, task.ID)), task.Name)
		}
	}
	return nil
}

type RoutineToggleCmd struct {
	Routine string `arg:"" help:"Routine name or id."`
	Task    string `arg:"" help:"Task name or id."`
	Date    string `help:"Date in YYYY-MM-DD format (default: today). Only today is accepted." default:""`
}

func (c *RoutineToggleCmd) Run(ctx *cli.Context) error {
	routine, err := ctx.Tracker.Routines.Resolve(ctx.Background(), c.Routine)
	if err != nil {
		return err
	}
	task, err := tracker.ResolveTask(routine, c.Task)
	if err != nil {
		return err
	}
	date := c.Date
	if date == "" {
		date = ctx.Tracker.Today()
	}

	done, err := ctx.Tracker.Routines.ToggleTask(ctx.Background(), routine.ID, task.ID, date)
	if err != nil {
		return err
	}
	state := "not done"
	if done {
		state = "done"
	}
	ctx.Printf("%s / %s: %s for %s\n", routine.Name, task.Name, state, date)
	return nil
}

type RoutineDeleteCmd struct {
	Routine string `arg:"" help:"Routine name or id."`
	Yes     bool   `short:"y" help:"Do not ask for confirmation."`
}

func (c *RoutineDeleteCmd) Run(ctx *cli.Context) error {
	routine, err := ctx.Tracker.Routines.Resolve(ctx.Background(), c.Routine)
	if err != nil {
		return err
	}
	if !c.Yes {
		ok, err := ctx.Confirm(fmt.Sprintf("Delete routine %q?", routine.Name), true)
		if err != nil || !ok {
			return err
		}
	}
	if err := ctx.Tracker.Routines.Delete(ctx.Background(), routine.ID); err != nil {
		return err
	}
	ctx.Printf("Deleted routine: %s\n", routine.Name)
	return nil
}
