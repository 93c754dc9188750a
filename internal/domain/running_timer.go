package domain

import (
	"time"
)

// RunningTimer is the owner's single in-progress time entry, as surfaced to
// callers. At most one exists per owner at any time; the store enforces
// this, not the clients.
type RunningTimer struct {
	EntryID     int64
	OwnerID     string
	StartTime   time.Time
	Description string
	ProjectRef  *string
	IssueRef    *string
}

// RunningTimerFromEntry builds the caller-facing view of a running entry.
func RunningTimerFromEntry(te TimeEntry) RunningTimer {
	return RunningTimer{
		EntryID:     te.ID,
		OwnerID:     te.OwnerID,
		StartTime:   te.StartTime,
		Description: te.Description,
		ProjectRef:  te.ProjectRef,
		IssueRef:    te.IssueRef,
	}
}

// Elapsed returns the time worked so far. It is derived on every call and
// never persisted; the store only ever holds the start time.
func (rt RunningTimer) Elapsed(now time.Time) time.Duration {
	return now.Sub(rt.StartTime)
}
