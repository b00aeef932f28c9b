package recurrence

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julianstephens/habitual/internal/constants"
	"github.com/julianstephens/habitual/internal/ledger"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

func TestRuleRejectsBadInput(t *testing.T) {
	_, err := Rule("2024-13-01", constants.FrequencyDaily, time.UTC)
	assert.Error(t, err)

	_, err = Rule("2024-01-01", constants.Frequency("Hourly"), time.UTC)
	assert.Error(t, err)
}

func TestOccurrencesWeekly(t *testing.T) {
	got, err := Occurrences("2024-01-01", constants.FrequencyWeekly, day(2024, 1, 1), day(2024, 1, 29))
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-01-01", "2024-01-08", "2024-01-15", "2024-01-22", "2024-01-29"}, got)
}

func TestOccurrencesMonthlySkipsShortMonths(t *testing.T) {
	got, err := Occurrences("2024-01-31", constants.FrequencyMonthly, day(2024, 1, 1), day(2024, 5, 31))
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-01-31", "2024-03-31", "2024-05-31"}, got)
}

func TestDueOn(t *testing.T) {
	assert.True(t, DueOn("2024-01-01", constants.FrequencyWeekly, day(2024, 1, 15)))
	assert.False(t, DueOn("2024-01-01", constants.FrequencyWeekly, day(2024, 1, 16)))
	assert.False(t, DueOn("2024-01-10", constants.FrequencyDaily, day(2024, 1, 9)))
}

func TestNextDue(t *testing.T) {
	next, ok := NextDue("2024-01-01", constants.FrequencyWeekly, day(2024, 1, 16))
	require.True(t, ok)
	assert.Equal(t, "2024-01-22", next)

	next, ok = NextDue("2024-01-01", constants.FrequencyWeekly, day(2024, 1, 22))
	require.True(t, ok)
	assert.Equal(t, "2024-01-22", next)
}

func TestStreakDaily(t *testing.T) {
	history := ledger.Ledger{
		"2024-01-01": true,
		"2024-01-03": true,
		"2024-01-04": true,
	}
	// Today (01-05) is still open so it does not break the run.
	assert.Equal(t, 2, Streak("2024-01-01", constants.FrequencyDaily, history, day(2024, 1, 5)))

	history["2024-01-05"] = true
	assert.Equal(t, 3, Streak("2024-01-01", constants.FrequencyDaily, history, day(2024, 1, 5)))

	// A missed day breaks it.
	assert.Equal(t, 0, Streak("2024-01-01", constants.FrequencyDaily, history, day(2024, 1, 7)))
}

func TestStreakWeeklyIgnoresOffDays(t *testing.T) {
	history := ledger.Ledger{
		"2024-01-08": true,
		"2024-01-15": true,
		"2024-01-16": true,
	}
	assert.Equal(t, 2, Streak("2024-01-01", constants.FrequencyWeekly, history, day(2024, 1, 20)))
}

func TestStreakFutureStart(t *testing.T) {
	assert.Equal(t, 0, Streak("2024-02-01", constants.FrequencyDaily, ledger.Ledger{}, day(2024, 1, 20)))
}

func TestLongestStreak(t *testing.T) {
	history := ledger.Ledger{
		"2024-01-01": true,
		"2024-01-02": true,
		"2024-01-03": true,
		"2024-01-05": true,
	}
	assert.Equal(t, 3, LongestStreak("2024-01-01", constants.FrequencyDaily, history, day(2024, 1, 6)))
	assert.Equal(t, 0, LongestStreak("bad", constants.FrequencyDaily, history, day(2024, 1, 6)))
}
