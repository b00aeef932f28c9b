package goals

import (
	"fmt"

	"github.com/julianstephens/habitual/internal/cli"
	"github.com/julianstephens/habitual/internal/models"
	"github.com/julianstephens/habitual/internal/tracker"
)

type GoalCmd struct {
	Add    GoalAddCmd    `cmd:"" help:"Add a goal with milestones."`
	List   GoalListCmd   `cmd:"" help:"List open and completed goals."`
	Toggle GoalToggleCmd `cmd:"" help:"Toggle a milestone of a goal."`
	Delete GoalDeleteCmd `cmd:"" help:"Delete a goal."`
}

type GoalAddCmd struct {
	Name        string   `arg:"" help:"Goal name."`
	Category    string   `short:"c" help:"Category." required:""`
	Milestones  []string `short:"m" help:"Milestone names, repeat or comma separate." sep:","`
	Deadline    string   `help:"Deadline in YYYY-MM-DD format (default: today)."`
	Description string   `short:"d" help:"Optional description."`
}

func (c *GoalAddCmd) Run(ctx *cli.Context) error {
	goal, err := ctx.Tracker.Goals.Add(ctx.Background(), tracker.NewGoal{
		Name:        c.Name,
		Description: c.Description,
		Category:    c.Category,
		Deadline:    c.Deadline,
		Milestones:  c.Milestones,
	})
	if err != nil {
		return err
	}
	ctx.Printf("Added goal: %s (due %s, %d milestones)\n", goal.Name, goal.Deadline, len(goal.Milestones))
	return nil
}

type GoalListCmd struct {
	Verbose bool `short:"v" help:"Show milestones."`
}

func (c *GoalListCmd) Run(ctx *cli.Context) error {
	open, completed := tracker.Split(ctx.Tracker.Goals.List(ctx.Background()))
	if len(open)+len(completed) == 0 {
		ctx.Println("No goals found.")
		return nil
	}

	show := func(g models.Goal) {
		flag := ""
		if ctx.Tracker.Goals.Overdue(g) {
			flag = cli.ErrorStyle.Render(" overdue")
		}
		ctx.Printf("  %-28s %3d%%  due %s%s\n", cli.Truncate(g.Name, 28), tracker.Progress(g), g.Deadline, flag)
		if c.Verbose {
			for _, m := range g.Milestones {
				ctx.Printf("    %s %s\n", cli.Check(m.Completed), m.Name)
			}
		}
	}

	ctx.Printf("Open (%d)\n", len(open))
	for _, g := range open {
		show(g)
	}
	ctx.Printf("\nCompleted (%d)\n", len(completed))
	for _, g := range completed {
		show(g)
	}
	return nil
}

type GoalToggleCmd struct {
	Goal      string `arg:"" help:"Goal name or id."`
	Milestone string `arg:"" help:"Milestone name or id."`
}

func (c *GoalToggleCmd) Run(ctx *cli.Context) error {
	goal, err := ctx.Tracker.Goals.Resolve(ctx.Background(), c.Goal)
	if err != nil {
		return err
	}
	m, err := tracker.ResolveMilestone(goal, c.Milestone)
	if err != nil {
		return err
	}

	updated, err := ctx.Tracker.Goals.ToggleMilestone(ctx.Background(), goal.ID, m.ID)
	if err != nil {
		return err
	}
	ctx.Printf("%s: %d/%d milestones (%d%%)\n", updated.Name, updated.CompletedMilestones(), len(updated.Milestones), tracker.Progress(updated))
	if updated.Completed && !goal.Completed {
		ctx.Println("Goal completed!")
	}
	return nil
}

type GoalDeleteCmd struct {
	Goal string `arg:"" help:"Goal name or id."`
	Yes  bool   `short:"y" help:"Do not ask for confirmation."`
}

func (c *GoalDeleteCmd) Run(ctx *cli.Context) error {
	goal, err := ctx.Tracker.Goals.Resolve(ctx.Background(), c.Goal)
	if err != nil {
		return err
	}
	if !c.Yes {
		ok, err := ctx.Confirm(fmt.Sprintf("Delete goal %q?", goal.Name), true)
		if err != nil || !ok {
			return err
		}
	}
	if err := ctx.Tracker.Goals.Delete(ctx.Background(), goal.ID); err != nil {
		return err
	}
	ctx.Printf("Deleted goal: %s\n", goal.Name)
	return nil
}
