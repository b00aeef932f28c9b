// Package ledger holds the date-keyed completion history of habits and
// routines and the pure calculations derived from it.
package ledger

import (
	"sort"
	"time"

	"github.com/julianstephens/habitual/internal/constants"
)

// Ledger maps a YYYY-MM-DD date to whether the entity was completed that day.
// An absent key means not completed.
type Ledger map[string]bool

// Done reports whether date is marked complete.
func (l Ledger) Done(date string) bool {
	return l[date]
}

// Toggle flips the value stored for date and returns the new value.
func (l Ledger) Toggle(date string) bool {
	l[date] = !l[date]
	return l[date]
}

// CountTrue counts the dates marked complete.
func (l Ledger) CountTrue() int {
	n := 0
	for _, v := range l {
		if v {
			n++
		}
	}
	return n
}

// countWhere counts completed dates whose parsed day satisfies match.
// Keys that are not valid dates are skipped.
func (l Ledger) countWhere(loc *time.Location, match func(time.Time) bool) int {
	n := 0
	for key, v := range l {
		if !v {
			continue
		}
		d, err := time.ParseInLocation(constants.DateFormat, key, loc)
		if err != nil {
			continue
		}
		if match(d) {
			n++
		}
	}
	return n
}

// CompletedDates returns the completed dates in ascending order.
func (l Ledger) CompletedDates() []string {
	dates := make([]string, 0, len(l))
	for key, v := range l {
		if v {
			dates = append(dates, key)
		}
	}
	sort.Strings(dates)
	return dates
}

// Clone returns a copy that can be mutated independently.
func (l Ledger) Clone() Ledger {
	out := make(Ledger, len(l))
	for k, v := range l {
		out[k] = v
	}
	return out
}

// RoutineLedger maps a date to per-task completion.
type RoutineLedger map[string]map[string]bool

// Done reports whether taskID was completed on date.
func (r RoutineLedger) Done(date, taskID string) bool {
	return r[date][taskID]
}

// Toggle flips the value of taskID on date, creating the day if needed.
func (r RoutineLedger) Toggle(date, taskID string) bool {
	day, ok := r[date]
	if !ok {
		day = make(map[string]bool)
		r[date] = day
	}
	day[taskID] = !day[taskID]
	return day[taskID]
}

// Flatten reduces the routine history to a Ledger in which a day is complete
// only when every one of taskIDs was done. An empty task list never completes.
func (r RoutineLedger) Flatten(taskIDs []string) Ledger {
	out := make(Ledger, len(r))
	if len(taskIDs) == 0 {
		return out
	}
	for date, tasks := range r {
		all := true
		for _, id := range taskIDs {
			if !tasks[id] {
				all = false
				break
			}
		}
		if all {
			out[date] = true
		}
	}
	return out
}
