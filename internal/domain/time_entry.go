package domain

import (
	"time"
)

// TimeEntry represents a logged block of work in the domain model.
// This is a pure domain model without database-specific concerns.
//
// A nil EndTime marks a running entry; completed entries always satisfy
// EndTime > StartTime and carry the derived duration.
type TimeEntry struct {
	ID              int64
	OwnerID         string
	ProjectRef      *string
	IssueRef        *string
	StartTime       time.Time
	EndTime         *time.Time
	DurationSeconds int64
	Description     string
	Activity        string
	Tags            []string
	Billable        bool
}

// NewRunningEntry creates a new unfinished TimeEntry for the given owner.
func NewRunningEntry(ownerID string, startTime time.Time) TimeEntry {
	return TimeEntry{
		OwnerID:   ownerID,
		StartTime: startTime,
	}
}

// IsRunning returns true if the time entry has no end time yet.
func (te TimeEntry) IsRunning() bool {
	return te.EndTime == nil
}

// Complete returns a copy of the entry finished at endTime, with the
// duration re-derived. The duration is never taken from input.
func (te TimeEntry) Complete(endTime time.Time) TimeEntry {
	te.EndTime = &endTime
	te.DurationSeconds = DurationSecondsBetween(te.StartTime, endTime)
	return te
}

// DurationSecondsBetween returns the whole seconds between two timestamps,
// rounded down.
func DurationSecondsBetween(start, end time.Time) int64 {
	return int64(end.Sub(start) / time.Second)
}

// Duration returns the duration of the time entry.
// If the entry is still running, it returns the duration up to now.
func (te TimeEntry) Duration() time.Duration {
	if te.EndTime == nil {
		return time.Since(te.StartTime)
	}
	return te.EndTime.Sub(te.StartTime)
}

// IsValid checks if the time entry has valid data.
func (te TimeEntry) IsValid() bool {
	if te.OwnerID == "" {
		return false
	}
	if te.StartTime.IsZero() {
		return false
	}
	if te.EndTime != nil && !te.EndTime.After(te.StartTime) {
		return false
	}
	return true
}

// HasTag reports whether the entry carries the given tag.
func (te TimeEntry) HasTag(tag string) bool {
	for _, t := range te.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
