// Package export renders tracker data for use outside the app: a PDF
// progress report, an HTML journal and a portable dump of the whole store.
package export

import (
	"context"
	"fmt"
	"time"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/julianstephens/habitual/internal/constants"
	"github.com/julianstephens/habitual/internal/tracker"
)

// RoutineRow is a routine's line in the report.
type RoutineRow struct {
	Name      string
	Frequency constants.Frequency
	Tasks     int
	Accuracy  int
}

// GoalRow is a goal's line in the report.
type GoalRow struct {
	Name      string
	Deadline  string
	Progress  int
	Completed bool
	Overdue   bool
}

// Report is a point-in-time summary of every tracked item.
type Report struct {
	Generated time.Time
	Habits    []tracker.HabitStats
	Routines  []RoutineRow
	Goals     []GoalRow
}

// Build gathers the report from tr as of tr.Now().
func Build(ctx context.Context, tr *tracker.Tracker) Report {
	r := Report{
		Generated: tr.Now(),
		Habits:    tr.Habits.AllStats(ctx),
	}
	for _, routine := range tr.Routines.List(ctx) {
		r.Routines = append(r.Routines, RoutineRow{
			Name:      routine.Name,
			Frequency: routine.Frequency,
			Tasks:     len(routine.Tasks),
			Accuracy:  tr.Routines.Accuracy(routine),
		})
	}
	for _, goal := range tr.Goals.List(ctx) {
		r.Goals = append(r.Goals, GoalRow{
			Name:      goal.Name,
			Deadline:  goal.Deadline,
			Progress:  tracker.Progress(goal),
			Completed: goal.Completed,
			Overdue:   tr.Goals.Overdue(goal),
		})
	}
	return r
}

var (
	pdfHeaderColor = props.Color{Red: 40, Green: 40, Blue: 40}
	pdfMutedColor  = props.Color{Red: 120, Green: 120, Blue: 120}
	pdfLineColor   = props.Color{Red: 210, Green: 210, Blue: 210}
)

// PDF writes r as an A4 document at path.
func PDF(r Report, path string) error {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).
		WithTopMargin(15).
		WithRightMargin(15).
		Build()

	m := maroto.New(cfg)

	m.AddRow(14, text.NewCol(12, "Habitual progress report", props.Text{
		Style: fontstyle.Bold,
		Size:  16,
		Color: &pdfHeaderColor,
	}))
	m.AddRow(8, text.NewCol(12, "Generated "+r.Generated.Format("January 2, 2006 15:04"), props.Text{
		Size:  10,
		Color: &pdfMutedColor,
	}))
	m.AddRow(4, line.NewCol(12, props.Line{Color: &pdfLineColor}))

	section := func(title string, cols ...string) {
		m.AddRow(4)
		m.AddRow(9, text.NewCol(12, title, props.Text{Style: fontstyle.Bold, Size: 12, Color: &pdfHeaderColor}))
		m.AddRow(6,
			text.NewCol(6, cols[0], props.Text{Style: fontstyle.Bold, Size: 9}),
			text.NewCol(2, cols[1], props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
			text.NewCol(2, cols[2], props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
			text.NewCol(2, cols[3], props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
		)
	}
	row := func(name, a, b, c string) {
		m.AddRow(6,
			text.NewCol(6, name, props.Text{Size: 9}),
			text.NewCol(2, a, props.Text{Size: 9, Align: align.Right}),
			text.NewCol(2, b, props.Text{Size: 9, Align: align.Right}),
			text.NewCol(2, c, props.Text{Size: 9, Align: align.Right}),
		)
	}
	empty := func(what string) {
		m.AddRow(6, text.NewCol(12, "No "+what+" yet", props.Text{Size: 9, Color: &pdfMutedColor}))
	}

	section("Habits", "Habit", "Accuracy", "Streak", "Best")
	for _, s := range r.Habits {
		row(fmt.Sprintf("%s (%s)", s.Habit.Name, s.Habit.Frequency),
			fmt.Sprintf("%d%%", s.Accuracy), fmt.Sprint(s.Streak), fmt.Sprint(s.LongestStreak))
	}
	if len(r.Habits) == 0 {
		empty("habits")
	}

	section("Routines", "Routine", "Frequency", "Tasks", "Accuracy")
	for _, rt := range r.Routines {
		row(rt.Name, string(rt.Frequency), fmt.Sprint(rt.Tasks), fmt.Sprintf("%d%%", rt.Accuracy))
	}
	if len(r.Routines) == 0 {
		empty("routines")
	}

	section("Goals", "Goal", "Deadline", "Progress", "Status")
	for _, g := range r.Goals {
		row(g.Name, g.Deadline, fmt.Sprintf("%d%%", g.Progress), GoalStatus(g))
	}
	if len(r.Goals) == 0 {
		empty("goals")
	}

	doc, err := m.Generate()
	if err != nil {
		return fmt.Errorf("generating PDF: %w", err)
	}
	return doc.Save(path)
}

// GoalStatus labels a goal as done, overdue or open.
func GoalStatus(g GoalRow) string {
	switch {
	case g.Completed:
		return "done"
	case g.Overdue:
		return "overdue"
	default:
		return "open"
	}
}
