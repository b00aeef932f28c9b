package tracker

import (
	"context"
	"strings"

	"github.com/julianstephens/habitual/internal/constants"
	"github.com/julianstephens/habitual/internal/ledger"
	"github.com/julianstephens/habitual/internal/models"
	"github.com/julianstephens/habitual/internal/storage"
)

type Routines struct {
	env *env
	col *storage.Collection[models.Routine]
}

// NewRoutine is the input for Routines.Add
type NewRoutine struct {
	Name        string
	Description string
	Tasks       []string
}

// Add creates a daily routine starting today. Blank task names are dropped.
func (r *Routines) Add(ctx context.Context, in NewRoutine) (models.Routine, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return models.Routine{}, invalid("name", "Please enter a routine name")
	}

	var tasks []models.Task
	for _, t := range in.Tasks {
		if t = strings.TrimSpace(t); t != "" {
			tasks = append(tasks, models.Task{ID: r.env.newID(), Name: t})
		}
	}
	if len(tasks) == 0 {
		return models.Routine{}, invalid("tasks", "Please add at least one task")
	}

	routine := models.Routine{
		ID:          r.env.newID(),
		Name:        name,
		Description: strings.TrimSpace(in.Description),
		Tasks:       tasks,
		Frequency:   constants.FrequencyDaily,
		StartDate:   r.env.today(),
		History:     ledger.RoutineLedger{},
	}

	all := r.col.LoadAll(ctx)
	if err := r.col.SaveAll(ctx, append(all, routine)); err != nil {
		return models.Routine{}, err
	}
	return routine, nil
}

func (r *Routines) List(ctx context.Context) []models.Routine {
	return r.col.LoadAll(ctx)
}

// ActiveOn returns the routines that had started by date.
func (r *Routines) ActiveOn(ctx context.Context, date string) []models.Routine {
	var out []models.Routine
	for _, routine := range r.col.LoadAll(ctx) {
		if routine.ActiveOn(date) {
			out = append(out, routine)
		}
	}
	return out
}

// Resolve finds a routine by id or name.
func (r *Routines) Resolve(ctx context.Context, ref string) (models.Routine, error) {
	return resolve("routine", r.col.LoadAll(ctx), ref,
		func(m models.Routine) string { return m.ID },
		func(m models.Routine) string { return m.Name })
}

// ResolveTask finds a task of routine by id or name.
func ResolveTask(routine models.Routine, ref string) (models.Task, error) {
	return resolve("task", routine.Tasks, ref,
		func(m models.Task) string { return m.ID },
		func(m models.Task) string { return m.Name })
}

// ToggleTask flips today's completion of one task and returns the new value.
func (r *Routines) ToggleTask(ctx context.Context, routineID, taskID, date string) (bool, error) {
	if date != r.env.today() {
		return false, ErrNotToday
	}

	all := r.col.LoadAll(ctx)
	idx := -1
	for i := range all {
		if all[i].ID == routineID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false, &NotFoundError{Kind: "routine", Ref: routineID}
	}
	if !hasTask(all[idx], taskID) {
		return false, &NotFoundError{Kind: "task", Ref: taskID}
	}

	history := cloneRoutineLedger(all[idx].History)
	done := history.Toggle(date, taskID)
	all[idx].History = history

	if err := r.col.SaveAll(ctx, all); err != nil {
		return false, err
	}
	return done, nil
}

func (r *Routines) Delete(ctx context.Context, id string) error {
	all := r.col.LoadAll(ctx)
	kept := make([]models.Routine, 0, len(all))
	for _, routine := range all {
		if routine.ID != id {
			kept = append(kept, routine)
		}
	}
	if len(kept) == len(all) {
		return &NotFoundError{Kind: "routine", Ref: id}
	}
	return r.col.SaveAll(ctx, kept)
}

// Accuracy is the share of days since start on which every task was done.
func (r *Routines) Accuracy(routine models.Routine) int {
	return ledger.RoutineAccuracy(routine.StartDate, routine.Frequency, routine.History, routine.TaskIDs(), r.env.now())
}

func hasTask(routine models.Routine, id string) bool {
	for _, t := range routine.Tasks {
		if t.ID == id {
			return true
		}
	}
	return false
}

func cloneRoutineLedger(in ledger.RoutineLedger) ledger.RoutineLedger {
	out := make(ledger.RoutineLedger, len(in))
	for date, tasks := range in {
		day := make(map[string]bool, len(tasks))
		for id, v := range tasks {
			day[id] = v
		}
		out[date] = day
	}
	return out
}
