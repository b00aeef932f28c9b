package reports

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/julianstephens/habitual/internal/cli"
	"github.com/julianstephens/habitual/internal/constants"
	"github.com/julianstephens/habitual/internal/export"
)

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

type ReportCmd struct {
	PDF string `help:"Also write the report as a PDF to this path." type:"path"`
}

func (c *ReportCmd) Run(ctx *cli.Context) error {
	r := export.Build(ctx.Background(), ctx.Tracker)

	ctx.Println(cli.TitleStyle.Render("Progress report, " + r.Generated.Format(constants.DateFormat)))
	ctx.Println()

	ctx.Println(cli.TitleStyle.Render("Habits"))
	if len(r.Habits) == 0 {
		ctx.Println("No habits yet.")
	} else {
		rows := make([][]string, len(r.Habits))
		for i, s := range r.Habits {
			rows[i] = []string{
				s.Habit.Name,
				string(s.Habit.Frequency),
				percent(s.Accuracy),
				strconv.Itoa(s.Streak),
				strconv.Itoa(s.LongestStreak),
			}
		}
		ctx.Println(render([]string{"Name", "Frequency", "Accuracy", "Streak", "Best"}, rows))
	}
	ctx.Println()

	ctx.Println(cli.TitleStyle.Render("Routines"))
	if len(r.Routines) == 0 {
		ctx.Println("No routines yet.")
	} else {
		rows := make([][]string, len(r.Routines))
		for i, row := range r.Routines {
			rows[i] = []string{row.Name, string(row.Frequency), strconv.Itoa(row.Tasks), percent(row.Accuracy)}
		}
		ctx.Println(render([]string{"Name", "Frequency", "Tasks", "Accuracy"}, rows))
	}
	ctx.Println()

	ctx.Println(cli.TitleStyle.Render("Goals"))
	if len(r.Goals) == 0 {
		ctx.Println("No goals yet.")
	} else {
		rows := make([][]string, len(r.Goals))
		for i, row := range r.Goals {
			rows[i] = []string{row.Name, row.Deadline, percent(row.Progress), export.GoalStatus(row)}
		}
		ctx.Println(render([]string{"Name", "Deadline", "Progress", "Status"}, rows))
	}

	if c.PDF != "" {
		if err := export.PDF(r, c.PDF); err != nil {
			return fmt.Errorf("failed to write PDF: %w", err)
		}
		ctx.Printf("\nWrote %s\n", c.PDF)
	}
	return nil
}

func render(headers []string, rows [][]string) string {
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Render()
}

func percent(n int) string {
	return strconv.Itoa(n) + "%"
}
