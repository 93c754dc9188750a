package sqlite

import "time"

// TimeEntry represents a single time entry row.
// Nullable columns use pointers so NULL survives the round trip.
type TimeEntry struct {
	ID              int64
	OwnerID         string
	ProjectRef      *string
	IssueRef        *string
	StartTime       time.Time
	EndTime         *time.Time // NULL while the entry is running
	DurationSeconds int64
	Description     string
	Activity        string
	Tags            []string // stored as a JSON array column
	Billable        bool
}

// SearchOptions contains all possible search parameters
type SearchOptions struct {
	OwnerID     *string
	ProjectRef  *string
	IssueRef    *string
	StartTime   *time.Time
	EndTime     *time.Time
	RunningOnly bool
}
