package tracker

import (
	"context"
	"strings"
	"time"

	"github.com/julianstephens/habitual/internal/constants"
	"github.com/julianstephens/habitual/internal/ledger"
	"github.com/julianstephens/habitual/internal/models"
	"github.com/julianstephens/habitual/internal/storage"
)

type Goals struct {
	env *env
	col *storage.Collection[models.Goal]
}

// NewGoal is the input for Goals.Add
type NewGoal struct {
	Name        string
	Description string
	Category    string
	Deadline    string
	Milestones  []string
}

// Add creates a goal. The category is free text and the deadline defaults
// to today.
func (g *Goals) Add(ctx context.Context, in NewGoal) (models.Goal, error) {
	name := strings.TrimSpace(in.Name)
	category := strings.TrimSpace(in.Category)
	if name == "" || category == "" {
		return models.Goal{}, invalid("name", "Please fill in the goal name and category")
	}

	deadline := strings.TrimSpace(in.Deadline)
	if deadline == "" {
		deadline = g.env.today()
	} else if _, err := time.Parse(constants.DateFormat, deadline); err != nil {
		return models.Goal{}, invalid("deadline", "Deadline must be a date in YYYY-MM-DD format")
	}

	var milestones []models.Milestone
	for _, m := range in.Milestones {
		if m = strings.TrimSpace(m); m != "" {
			milestones = append(milestones, models.Milestone{ID: g.env.newID(), Name: m})
		}
	}
	if len(milestones) == 0 {
		return models.Goal{}, invalid("milestones", "Please add at least one milestone")
	}

	goal := models.Goal{
		ID:          g.env.newID(),
		Name:        name,
		Description: strings.TrimSpace(in.Description),
		Category:    category,
		StartDate:   g.env.today(),
		Deadline:    deadline,
		Milestones:  milestones,
	}

	all := g.col.LoadAll(ctx)
	if err := g.col.SaveAll(ctx, append(all, goal)); err != nil {
		return models.Goal{}, err
	}
	return goal, nil
}

func (g *Goals) List(ctx context.Context) []models.Goal {
	return g.col.LoadAll(ctx)
}

// Split partitions goals into open and completed ones, keeping order.
func Split(goals []models.Goal) (open, completed []models.Goal) {
	for _, goal := range goals {
		if goal.Completed {
			completed = append(completed, goal)
		} else {
			open = append(open, goal)
		}
	}
	return open, completed
}

// Resolve finds a goal by id or name.
func (g *Goals) Resolve(ctx context.Context, ref string) (models.Goal, error) {
	return resolve("goal", g.col.LoadAll(ctx), ref,
		func(m models.Goal) string { return m.ID },
		func(m models.Goal) string { return m.Name })
}

// ResolveMilestone finds a milestone of goal by id or name.
func ResolveMilestone(goal models.Goal, ref string) (models.Milestone, error) {
	return resolve("milestone", goal.Milestones, ref,
		func(m models.Milestone) string { return m.ID },
		func(m models.Milestone) string { return m.Name })
}

// ToggleMilestone flips a milestone and recomputes the goal's completed
// flag in the same write.
func (g *Goals) ToggleMilestone(ctx context.Context, goalID, milestoneID string) (models.Goal, error) {
	all := g.col.LoadAll(ctx)
	for i := range all {
		if all[i].ID != goalID {
			continue
		}

		milestones := make([]models.Milestone, len(all[i].Milestones))
		copy(milestones, all[i].Milestones)
		found := false
		for j := range milestones {
			if milestones[j].ID == milestoneID {
				milestones[j].Completed = !milestones[j].Completed
				found = true
			}
		}
		if !found {
			return models.Goal{}, &NotFoundError{Kind: "milestone", Ref: milestoneID}
		}

		all[i].Milestones = milestones
		all[i].Completed = all[i].AllMilestonesCompleted()
		if err := g.col.SaveAll(ctx, all); err != nil {
			return models.Goal{}, err
		}
		return all[i], nil
	}
	return models.Goal{}, &NotFoundError{Kind: "goal", Ref: goalID}
}

func (g *Goals) Delete(ctx context.Context, id string) error {
	all := g.col.LoadAll(ctx)
	kept := make([]models.Goal, 0, len(all))
	for _, goal := range all {
		if goal.ID != id {
			kept = append(kept, goal)
		}
	}
	if len(kept) == len(all) {
		return &NotFoundError{Kind: "goal", Ref: id}
	}
	return g.col.SaveAll(ctx, kept)
}

// Progress is the rounded percentage of completed milestones.
func Progress(goal models.Goal) int {
	return ledger.Progress(goal.CompletedMilestones(), len(goal.Milestones))
}

// Overdue reports whether an open goal's deadline has passed.
func (g *Goals) Overdue(goal models.Goal) bool {
	return !goal.Completed && goal.Deadline != "" && goal.Deadline < g.env.today()
}
