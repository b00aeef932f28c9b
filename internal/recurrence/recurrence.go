// Package recurrence expands a habit's frequency into concrete due dates.
package recurrence

import (
	"fmt"
	"time"

	"github.com/teambition/rrule-go"

	"github.com/julianstephens/habitual/internal/constants"
	"github.com/julianstephens/habitual/internal/ledger"
)

// Rule builds the recurrence rule anchored at the start date. Monthly rules
// only recur on the start's day of month, so a habit started on the 31st
// skips shorter months.
func Rule(startDate string, freq constants.Frequency, loc *time.Location) (*rrule.RRule, error) {
	start, err := time.ParseInLocation(constants.DateFormat, startDate, loc)
	if err != nil {
		return nil, fmt.Errorf("invalid start date %q: %w", startDate, err)
	}

	var f rrule.Frequency
	switch freq {
	case constants.FrequencyDaily:
		f = rrule.DAILY
	case constants.FrequencyWeekly:
		f = rrule.WEEKLY
	case constants.FrequencyMonthly:
		f = rrule.MONTHLY
	default:
		return nil, fmt.Errorf("unsupported frequency %q", freq)
	}

	return rrule.NewRRule(rrule.ROption{
		Freq:    f,
		Dtstart: start,
	})
}

// Occurrences returns the due dates between from and to, both inclusive.
func Occurrences(startDate string, freq constants.Frequency, from, to time.Time) ([]string, error) {
	r, err := Rule(startDate, freq, from.Location())
	if err != nil {
		return nil, err
	}
	times := r.Between(startOfDay(from), endOfDay(to), true)
	dates := make([]string, len(times))
	for i, t := range times {
		dates[i] = t.Format(constants.DateFormat)
	}
	return dates, nil
}

// DueOn reports whether the habit is due on the given day.
func DueOn(startDate string, freq constants.Frequency, day time.Time) bool {
	dates, err := Occurrences(startDate, freq, day, day)
	return err == nil && len(dates) > 0
}

// NextDue returns the first due date on or after now.
func NextDue(startDate string, freq constants.Frequency, now time.Time) (string, bool) {
	r, err := Rule(startDate, freq, now.Location())
	if err != nil {
		return "", false
	}
	next := r.After(startOfDay(now), true)
	if next.IsZero() {
		return "", false
	}
	return next.Format(constants.DateFormat), true
}

// Streak counts consecutive completed due dates ending at the most recent
// one. A due date of today that is not done yet does not break the streak.
func Streak(startDate string, freq constants.Frequency, history ledger.Ledger, now time.Time) int {
	dates, err := dueSoFar(startDate, freq, now)
	if err != nil {
		return 0
	}

	today := now.Format(constants.DateFormat)
	n := 0
	for i := len(dates) - 1; i >= 0; i-- {
		if history.Done(dates[i]) {
			n++
			continue
		}
		if dates[i] == today {
			continue
		}
		break
	}
	return n
}

// LongestStreak returns the longest run of completed due dates up to now.
func LongestStreak(startDate string, freq constants.Frequency, history ledger.Ledger, now time.Time) int {
	dates, err := dueSoFar(startDate, freq, now)
	if err != nil {
		return 0
	}

	best, run := 0, 0
	for _, d := range dates {
		if history.Done(d) {
			run++
			if run > best {
				best = run
			}
			continue
		}
		run = 0
	}
	return best
}

func dueSoFar(startDate string, freq constants.Frequency, now time.Time) ([]string, error) {
	start, err := time.ParseInLocation(constants.DateFormat, startDate, now.Location())
	if err != nil {
		return nil, err
	}
	if start.After(now) {
		return nil, nil
	}
	return Occurrences(startDate, freq, start, now)
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return startOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}
