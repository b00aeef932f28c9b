package models

// Milestone is a checkpoint on the way to a goal
type Milestone struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Completed bool   `json:"completed"`
}

// Goal holds milestones. Completed is derived from the milestones but is
// persisted alongside them.
type Goal struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Category    string      `json:"category"`
	StartDate   string      `json:"startDate"` // YYYY-MM-DD format
	Deadline    string      `json:"deadline"`  // YYYY-MM-DD format
	Milestones  []Milestone `json:"milestones"`
	Completed   bool        `json:"completed"`
}

// AllMilestonesCompleted reports whether every milestone is completed.
// A goal without milestones is never complete.
func (g Goal) AllMilestonesCompleted() bool {
	if len(g.Milestones) == 0 {
		return false
	}
	for _, m := range g.Milestones {
		if !m.Completed {
			return false
		}
	}
	return true
}

// CompletedMilestones counts completed milestones.
func (g Goal) CompletedMilestones() int {
	n := 0
	for _, m := range g.Milestones {
		if m.Completed {
			n++
		}
	}
	return n
}
