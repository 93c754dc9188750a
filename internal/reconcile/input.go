package reconcile

import (
	"time"
)

// Input is the tagged union of the three ways a user can specify worked
// time. Exactly one variant is passed to Reconcile.
type Input interface {
	entryMode() string
}

// TimerInput selects live-timer mode: no duration is computed locally, the
// resolution is a command to start the owner's timer.
type TimerInput struct{}

// DurationInput selects typed-duration mode: a calendar date plus free-form
// duration text ("1:30", "1.5", "1h 30m", "90m").
type DurationInput struct {
	Date     time.Time
	Duration string
}

// TimeRangeInput selects explicit-range mode: a calendar date plus start and
// end clock times on that date.
type TimeRangeInput struct {
	Date       time.Time
	StartClock string
	EndClock   string
}

func (TimerInput) entryMode() string     { return "timer" }
func (DurationInput) entryMode() string  { return "duration" }
func (TimeRangeInput) entryMode() string { return "timeRange" }
