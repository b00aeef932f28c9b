package habits

import (
	"fmt"
	"strings"

	"github.com/julianstephens/habitual/internal/cli"
	"github.com/julianstephens/habitual/internal/constants"
	"github.com/julianstephens/habitual/internal/tracker"
)

type HabitCmd struct {
	Add      HabitAddCmd      `cmd:"" help:"Add a new habit."`
	List     HabitListCmd     `cmd:"" help:"List habits with a day's status."`
	Show     HabitShowCmd     `cmd:"" help:"Show a habit's accuracy, streak and calendar."`
	Toggle   HabitToggleCmd   `cmd:"" help:"Toggle today's completion of a habit."`
	Delete   HabitDeleteCmd   `cmd:"" help:"Delete a habit."`
	Calendar HabitCalendarCmd `cmd:"" help:"Show the completion calendar of every habit."`
}

type HabitAddCmd struct {
	Name        string `arg:"" help:"Habit name."`
	Category    string `short:"c" help:"Category name." default:""`
	Frequency   string `short:"f" help:"Daily, Weekly or Monthly." default:""`
	Description string `short:"d" help:"Optional description."`
}

func (c *HabitAddCmd) Run(ctx *cli.Context) error {
	category, err := ctx.Ask(c.Category, "Category", false)
	if err != nil {
		return err
	}
	freq, err := ctx.ChooseFrequency(c.Frequency)
	if err != nil {
		return err
	}

	habit, err := ctx.Tracker.Habits.Add(ctx.Background(), tracker.NewHabit{
		Name:        c.Name,
		Description: c.Description,
		Category:    category,
		Frequency:   freq,
	})
	if err != nil {
		return err
	}

	ctx.Printf("Added habit: %s (%s, %s)\n", habit.Name, habit.Category, habit.Frequency)
	return nil
}

type HabitListCmd struct {
	All  bool   `help:"Include habits that have not started yet."`
	Date string `help:"Show status for a day within the last 30 days (YYYY-MM-DD)." default:""`
}

func (c *HabitListCmd) Run(ctx *cli.Context) error {
	day, _, err := ctx.SelectDate(c.Date, constants.DailyWindow)
	if err != nil {
		return err
	}
	habits := ctx.Tracker.Habits.ActiveOn(ctx.Background(), day)
	if c.All {
		habits = ctx.Tracker.Habits.List(ctx.Background())
	}

	if len(habits) == 0 {
		ctx.Println("No habits found.")
		return nil
	}

	ctx.Printf("Habits for %s:\n\n", day)
	done := 0
	for _, h := range habits {
		if h.DoneOn(day) {
			done++
		}
		ctx.Printf("%s %-24s %-8s %s\n", cli.Check(h.DoneOn(day)), cli.Truncate(h.Name, 24), h.Frequency, h.Category)
	}
	ctx.Printf("\nCompleted: %d/%d\n", done, len(habits))
	return nil
}

type HabitShowCmd struct {
	Habit string `arg:"" help:"Habit name or id."`
}

func (c *HabitShowCmd) Run(ctx *cli.Context) error {
	habit, err := ctx.Tracker.Habits.Resolve(ctx.Background(), c.Habit)
	if err != nil {
		return err
	}
	stats := ctx.Tracker.Habits.Stats(habit)

	ctx.Println(cli.TitleStyle.Render(habit.Name))
	if habit.Description != "" {
		ctx.Println(habit.Description)
	}
	ctx.Printf("Category:  %s\n", habit.Category)
	ctx.Printf("Started:   %s\n", habit.StartDate)
	ctx.Printf("Accuracy:  %d%%\n", stats.Accuracy)
	ctx.Printf("Streak:    %d (best %d)\n", stats.Streak, stats.LongestStreak)
	ctx.Printf("\n%s\n%s\n", cli.WindowLabel(habit.Frequency, stats.Window),
		cli.CalendarStrip(stats.Window, habit.History, habit.BackgroundColor, ctx.Tracker.Today()))
	return nil
}

type HabitToggleCmd struct {
	Habit string `arg:"" help:"Habit name or id."`
	Date  string `help:"Date in YYYY-MM-DD format (default: today). Only today is accepted." default:""`
}

func (c *HabitToggleCmd) Run(ctx *cli.Context) error {
	habit, err := ctx.Tracker.Habits.Resolve(ctx.Background(), c.Habit)
	if err != nil {
		return err
	}
	date := c.Date
	if date == "" {
		date = ctx.Tracker.Today()
	}

	done, err := ctx.Tracker.Habits.Toggle(ctx.Background(), habit.ID, date)
	if err != nil {
		return err
	}
	if done {
		ctx.Printf("Marked %q done for %s\n", habit.Name, date)
	} else {
		ctx.Printf("Unmarked %q for %s\n", habit.Name, date)
	}
	return nil
}

type HabitDeleteCmd struct {
	Habit string `arg:"" help:"Habit name or id."`
	Yes   bool   `short:"y" help:"Do not ask for confirmation."`
}

func (c *HabitDeleteCmd) Run(ctx *cli.Context) error {
	habit, err := ctx.Tracker.Habits.Resolve(ctx.Background(), c.Habit)
	if err != nil {
		return err
	}
	if !c.Yes {
		ok, err := ctx.Confirm(fmt.Sprintf("Delete habit %q and its history?", habit.Name), true)
		if err != nil {
			return err
		}
		if !ok {
			ctx.Println("Cancelled.")
			return nil
		}
	}
	if err := ctx.Tracker.Habits.Delete(ctx.Background(), habit.ID); err != nil {
		return err
	}
	ctx.Printf("Deleted habit: %s\n", habit.Name)
	return nil
}

type HabitCalendarCmd struct {
	Frequency string `short:"f" help:"Only show habits of this frequency."`
}

func (c *HabitCalendarCmd) Run(ctx *cli.Context) error {
	var only constants.Frequency
	if c.Frequency != "" {
		f, ok := constants.ParseFrequency(c.Frequency)
		if !ok {
			return fmt.Errorf("unknown frequency %q", c.Frequency)
		}
		only = f
	}

	stats := ctx.Tracker.Habits.AllStats(ctx.Background())
	shown := 0
	for _, s := range stats {
		if only != "" && s.Habit.Frequency != only {
			continue
		}
		shown++
		ctx.Printf("%-20s %4d%%  %s\n", cli.Truncate(s.Habit.Name, 20), s.Accuracy,
			cli.CalendarStrip(s.Window, s.Habit.History, s.Habit.BackgroundColor, ctx.Tracker.Today()))
	}
	if shown == 0 {
		ctx.Println("No habits found.")
		return nil
	}
	ctx.Println(strings.Repeat("-", 28))
	ctx.Println("Weekly and monthly calendars show one cell per due date.")
	return nil
}
