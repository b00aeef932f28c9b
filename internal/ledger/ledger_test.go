package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLedgerToggleIsInvolution(t *testing.T) {
	l := Ledger{"2024-01-01": true}
	for _, date := range []string{"2024-01-01", "2024-01-02"} {
		before := l.Done(date)
		l.Toggle(date)
		assert.NotEqual(t, before, l.Done(date))
		l.Toggle(date)
		assert.Equal(t, before, l.Done(date))
	}
}

func TestLedgerCompletedDates(t *testing.T) {
	l := Ledger{"2024-01-03": true, "2024-01-01": true, "2024-01-02": false}
	assert.Equal(t, []string{"2024-01-01", "2024-01-03"}, l.CompletedDates())
	assert.Equal(t, 2, l.CountTrue())
}

func TestLedgerClone(t *testing.T) {
	l := Ledger{"2024-01-01": true}
	c := l.Clone()
	c.Toggle("2024-01-01")
	assert.True(t, l.Done("2024-01-01"))
}

func TestRoutineLedgerToggle(t *testing.T) {
	r := RoutineLedger{}
	assert.True(t, r.Toggle("2024-01-01", "stretch"))
	assert.True(t, r.Done("2024-01-01", "stretch"))
	assert.False(t, r.Done("2024-01-01", "run"))
	assert.False(t, r.Toggle("2024-01-01", "stretch"))
	assert.False(t, r.Done("2024-01-02", "stretch"))
}

func TestRoutineLedgerFlatten(t *testing.T) {
	r := RoutineLedger{
		"2024-01-01": {"a": true, "b": true},
		"2024-01-02": {"a": true, "b": false},
		"2024-01-03": {"a": true},
	}
	flat := r.Flatten([]string{"a", "b"})
	assert.Equal(t, Ledger{"2024-01-01": true}, flat)
	assert.Empty(t, r.Flatten(nil))
}
