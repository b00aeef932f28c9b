package ledger

import (
	"time"

	"github.com/julianstephens/habitual/internal/constants"
)

// GenerateDates returns the calendar window shown for a frequency, oldest
// first and ending on today: 30 days for Daily, 4 weekly steps for Weekly
// and 6 monthly steps for Monthly. Month steps use AddDate normalisation, so
// stepping back from the 31st lands on the following month's first days when
// the target month is shorter. Unknown frequencies yield an empty window.
func GenerateDates(freq constants.Frequency, today time.Time) []string {
	switch freq {
	case constants.FrequencyDaily:
		return stepBack(today, constants.DailyWindow, func(t time.Time, i int) time.Time {
			return t.AddDate(0, 0, -i)
		})
	case constants.FrequencyWeekly:
		return stepBack(today, constants.WeeklyWindow, func(t time.Time, i int) time.Time {
			return t.AddDate(0, 0, -7*i)
		})
	case constants.FrequencyMonthly:
		return stepBack(today, constants.MonthlyWindow, func(t time.Time, i int) time.Time {
			return t.AddDate(0, -i, 0)
		})
	}
	return []string{}
}

// DayWindow returns n consecutive dates ending today, oldest first.
func DayWindow(n int, today time.Time) []string {
	if n <= 0 {
		return []string{}
	}
	return stepBack(today, n, func(t time.Time, i int) time.Time {
		return t.AddDate(0, 0, -i)
	})
}

// Descending returns a reversed copy of dates.
func Descending(dates []string) []string {
	out := make([]string, len(dates))
	for i, d := range dates {
		out[len(dates)-1-i] = d
	}
	return out
}

// Today formats now as a date key.
func Today(now time.Time) string {
	return now.Format(constants.DateFormat)
}

func stepBack(today time.Time, n int, step func(time.Time, int) time.Time) []string {
	dates := make([]string, 0, n)
	for i := n - 1; i >= 0; i-- {
		dates = append(dates, step(today, i).Format(constants.DateFormat))
	}
	return dates
}
