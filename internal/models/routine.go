package models

import (
	"github.com/julianstephens/habitual/internal/constants"
	"github.com/julianstephens/habitual/internal/ledger"
)

// Task is a single step of a routine
type Task struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Routine is an ordered list of tasks tracked per task per day
type Routine struct {
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	Description string               `json:"description"`
	Tasks       []Task               `json:"tasks"`
	Frequency   constants.Frequency  `json:"frequency"`
	StartDate   string               `json:"startDate"` // YYYY-MM-DD format
	History     ledger.RoutineLedger `json:"history"`
}

func (r Routine) ActiveOn(day string) bool {
	return r.StartDate != "" && r.StartDate <= day
}

// TaskDoneOn reports whether taskID was ticked on day.
func (r Routine) TaskDoneOn(day, taskID string) bool {
	return r.History[day][taskID]
}

// TaskIDs returns the ids of the routine's tasks in order.
func (r Routine) TaskIDs() []string {
	ids := make([]string, len(r.Tasks))
	for i, t := range r.Tasks {
		ids[i] = t.ID
	}
	return ids
}
