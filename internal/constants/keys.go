package constants

// Storage keys. Each key holds one JSON document in the key-value namespace.
const (
	KeyHabits        = "habits"
	KeyRoutines      = "routines"
	KeyGoals         = "goals"
	KeyCategories    = "categories"
	KeyNotes         = "notes"
	KeyTimerSessions = "timerSessions"
	KeyTimerState    = "timerState"
	KeyStopwatch     = "stopwatchState"
	KeyUserAccount   = "userAccount"
	KeyNotesPassword = "notesPassword"
	KeyAppTheme      = "appTheme"
)

// AllKeys is the full persisted namespace, in export order.
var AllKeys = []string{
	KeyUserAccount,
	KeyAppTheme,
	KeyNotesPassword,
	KeyCategories,
	KeyHabits,
	KeyRoutines,
	KeyGoals,
	KeyNotes,
	KeyTimerState,
	KeyTimerSessions,
	KeyStopwatch,
}
