package models

// TimerSession is a completed countdown. Sessions carry no id and are
// addressed by their position in the stored list.
type TimerSession struct {
	Title     string `json:"title"`
	Duration  string `json:"duration"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// TimerState is the persisted countdown state
type TimerState struct {
	TimeLeft  int  `json:"timeLeft"` // seconds
	IsRunning bool `json:"isRunning"`
}

// StopwatchState is the persisted count-up state
type StopwatchState struct {
	Elapsed   int  `json:"elapsed"` // seconds
	IsRunning bool `json:"isRunning"`
}
