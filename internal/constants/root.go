package constants

import (
	"strings"
	"time"
)

// Frequency is the cadence a habit or routine is expected to be completed at
type Frequency string

// Theme is the persisted colour scheme of the front-ends
type Theme string

const (
	AppName            = "habitual"
	DefaultKeyringUser = "database-connection"
	DefaultConfigDir   = "~/.config/habitual"
	DefaultStorePath   = "~/.config/habitual/habitual.db"
	DefaultConfigFile  = "~/.config/habitual/config.yaml"
	ConnectionEnvVar   = "HABITUAL_DB_CONNECTION"
	Version            = "v0.3.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// ClockFormat is used for timer session start/end stamps
	ClockFormat = "15:04:05"

	// Frequencies
	FrequencyDaily   Frequency = "Daily"
	FrequencyWeekly  Frequency = "Weekly"
	FrequencyMonthly Frequency = "Monthly"

	// Calendar window sizes
	DailyWindow   = 30
	WeeklyWindow  = 4
	MonthlyWindow = 6
	JournalWindow = 30
	RoutineWindow = 30

	// Themes
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "habitual-"
	BackupFileSuffix = ".db"

	// Notify constants
	NotifyMaxRetries       = 3
	NotifyRetryDelay       = 100 * time.Millisecond
	NotifierLockfileName   = "habitual-notifier.lock"
	NotificationDurationMs = 5000
	TrayAppIdentifier      = "com.julianstephens.habitual"
	TrayExecutablePrefix   = "habitual-tray"

	// Timer
	TimerTick          = time.Second
	DefaultTimerTitle  = "Untitled"
	TimerDoneTitle     = "Time's up!"
	TimerDoneBody      = "Great job completing your session!"
)

// Frequencies lists the accepted frequencies in display order.
var Frequencies = []Frequency{FrequencyDaily, FrequencyWeekly, FrequencyMonthly}

// Valid reports whether f is one of the known frequencies.
func (f Frequency) Valid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly:
		return true
	}
	return false
}

// ParseFrequency matches s against the known frequencies, ignoring case.
func ParseFrequency(s string) (Frequency, bool) {
	for _, f := range Frequencies {
		if strings.EqualFold(string(f), strings.TrimSpace(s)) {
			return f, true
		}
	}
	return "", false
}

// Valid reports whether t is a known theme.
func (t Theme) Valid() bool {
	return t == ThemeLight || t == ThemeDark
}
