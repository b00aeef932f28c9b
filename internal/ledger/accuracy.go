package ledger

import (
	"math"
	"time"

	"github.com/julianstephens/habitual/internal/constants"
)

const (
	day  = 24 * time.Hour
	week = 7 * day
)

// Accuracy returns the completion percentage of history since startDate,
// evaluated at the instant now.
//
// Daily counts every completed entry against the days elapsed. Weekly only
// counts entries falling on the start weekday, Monthly only entries on the
// start day of month. The expected count never drops below one and the
// result is rounded half up without an upper bound, so a history with stray
// entries can exceed 100. An empty or unparsable start, or an unknown
// frequency, yields 0.
func Accuracy(startDate string, freq constants.Frequency, history Ledger, now time.Time) int {
	if startDate == "" {
		return 0
	}
	start, err := time.ParseInLocation(constants.DateFormat, startDate, now.Location())
	if err != nil {
		return 0
	}

	var expected, completed int
	switch freq {
	case constants.FrequencyDaily:
		expected = ceilPeriods(now.Sub(start), day)
		completed = history.CountTrue()
	case constants.FrequencyWeekly:
		expected = ceilPeriods(now.Sub(start), week)
		completed = history.countWhere(now.Location(), func(d time.Time) bool {
			return d.Weekday() == start.Weekday()
		})
	case constants.FrequencyMonthly:
		expected = (now.Year()-start.Year())*12 + int(now.Month()-start.Month())
		completed = history.countWhere(now.Location(), func(d time.Time) bool {
			return d.Day() == start.Day()
		})
	default:
		return 0
	}

	if expected < 1 {
		expected = 1
	}
	return int(math.Floor(100*float64(completed)/float64(expected) + 0.5))
}

// RoutineAccuracy applies Accuracy to a routine, counting a day as complete
// when all of its tasks were done.
func RoutineAccuracy(startDate string, freq constants.Frequency, history RoutineLedger, taskIDs []string, now time.Time) int {
	return Accuracy(startDate, freq, history.Flatten(taskIDs), now)
}

// Progress is the rounded percentage of done out of total, 0 when total is 0.
func Progress(done, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Floor(100*float64(done)/float64(total) + 0.5))
}

func ceilPeriods(elapsed, period time.Duration) int {
	return int(math.Ceil(float64(elapsed) / float64(period)))
}
