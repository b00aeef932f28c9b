package tracker

import (
	"context"
	"errors"
	"strings"

	"github.com/julianstephens/habitual/internal/constants"
	"github.com/julianstephens/habitual/internal/ledger"
	"github.com/julianstephens/habitual/internal/models"
	"github.com/julianstephens/habitual/internal/recurrence"
	"github.com/julianstephens/habitual/internal/storage"
)

type Habits struct {
	env        *env
	col        *storage.Collection[models.Habit]
	categories *Categories
}

// NewHabit is the input for Habits.Add
type NewHabit struct {
	Name        string
	Description string
	Category    string
	Frequency   constants.Frequency
}

// Add creates a habit starting today. The category's icon and colour are
// copied onto the habit.
func (h *Habits) Add(ctx context.Context, in NewHabit) (models.Habit, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return models.Habit{}, invalid("name", "Please enter a habit name")
	}
	if strings.TrimSpace(in.Category) == "" {
		return models.Habit{}, invalid("category", "Please select a category")
	}
	freq := in.Frequency
	if freq == "" {
		freq = constants.FrequencyDaily
	}
	if !freq.Valid() {
		return models.Habit{}, invalid("frequency", "Frequency must be one of Daily, Weekly or Monthly")
	}

	cat, err := h.categories.Find(ctx, in.Category)
	if err != nil {
		var nf *NotFoundError
		if errors.As(err, &nf) {
			return models.Habit{}, invalid("category", "%s", nf.Error())
		}
		return models.Habit{}, err
	}

	habit := models.Habit{
		ID:              h.env.newID(),
		Name:            name,
		Description:     strings.TrimSpace(in.Description),
		Category:        cat.Name,
		Icon:            cat.Icon,
		BackgroundColor: cat.Color,
		Frequency:       freq,
		StartDate:       h.env.today(),
		History:         ledger.Ledger{},
	}

	all := h.col.LoadAll(ctx)
	if err := h.col.SaveAll(ctx, append(all, habit)); err != nil {
		return models.Habit{}, err
	}
	return habit, nil
}

// List returns every habit in insertion order.
func (h *Habits) List(ctx context.Context) []models.Habit {
	return h.col.LoadAll(ctx)
}

// ActiveOn returns the habits that had started by date.
func (h *Habits) ActiveOn(ctx context.Context, date string) []models.Habit {
	var out []models.Habit
	for _, habit := range h.col.LoadAll(ctx) {
		if habit.ActiveOn(date) {
			out = append(out, habit)
		}
	}
	return out
}

// Resolve finds a habit by id or name.
func (h *Habits) Resolve(ctx context.Context, ref string) (models.Habit, error) {
	return resolve("habit", h.col.LoadAll(ctx), ref,
		func(m models.Habit) string { return m.ID },
		func(m models.Habit) string { return m.Name })
}

// Toggle flips today's completion of habit id and returns the new value.
// Any date other than today is refused without touching storage.
func (h *Habits) Toggle(ctx context.Context, id, date string) (bool, error) {
	if date != h.env.today() {
		return false, ErrNotToday
	}

	all := h.col.LoadAll(ctx)
	idx := -1
	for i := range all {
		if all[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false, &NotFoundError{Kind: "habit", Ref: id}
	}

	history := all[idx].History.Clone()
	done := history.Toggle(date)
	all[idx].History = history

	if err := h.col.SaveAll(ctx, all); err != nil {
		return false, err
	}
	return done, nil
}

// Delete removes the habit with the given id.
func (h *Habits) Delete(ctx context.Context, id string) error {
	all := h.col.LoadAll(ctx)
	kept := make([]models.Habit, 0, len(all))
	for _, habit := range all {
		if habit.ID != id {
			kept = append(kept, habit)
		}
	}
	if len(kept) == len(all) {
		return &NotFoundError{Kind: "habit", Ref: id}
	}
	return h.col.SaveAll(ctx, kept)
}

// HabitStats summarises a habit as of now.
type HabitStats struct {
	Habit         models.Habit
	Accuracy      int
	Streak        int
	LongestStreak int
	Window        []string
}

// Stats computes accuracy, streaks and the calendar window for a habit.
func (h *Habits) Stats(habit models.Habit) HabitStats {
	now := h.env.now()
	return HabitStats{
		Habit:         habit,
		Accuracy:      ledger.Accuracy(habit.StartDate, habit.Frequency, habit.History, now),
		Streak:        recurrence.Streak(habit.StartDate, habit.Frequency, habit.History, now),
		LongestStreak: recurrence.LongestStreak(habit.StartDate, habit.Frequency, habit.History, now),
		Window:        ledger.GenerateDates(habit.Frequency, now),
	}
}

// AllStats computes Stats for every habit.
func (h *Habits) AllStats(ctx context.Context) []HabitStats {
	habits := h.col.LoadAll(ctx)
	out := make([]HabitStats, len(habits))
	for i, habit := range habits {
		out[i] = h.Stats(habit)
	}
	return out
}
