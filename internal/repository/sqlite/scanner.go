package sqlite

import (
	"database/sql"
)

// Scanner interface defines the common scanning behavior for both sql.Row and sql.Rows
type Scanner interface {
	Scan(dest ...interface{}) error
}

// ScanTimeEntry scans a single time entry from a database row
func ScanTimeEntry(scanner Scanner) (*TimeEntry, error) {
	entry := &TimeEntry{}
	var projectRef, issueRef sql.NullString
	var endTime sql.NullTime
	var tags string

	err := scanner.Scan(
		&entry.ID,
		&entry.OwnerID,
		&projectRef,
		&issueRef,
		&entry.StartTime,
		&endTime,
		&entry.DurationSeconds,
		&entry.Description,
		&entry.Activity,
		&tags,
		&entry.Billable,
	)
	if err != nil {
		return nil, err
	}

	if projectRef.Valid {
		entry.ProjectRef = &projectRef.String
	}
	if issueRef.Valid {
		entry.IssueRef = &issueRef.String
	}
	if endTime.Valid {
		entry.EndTime = &endTime.Time
	}

	entry.Tags, err = ParseTagsFromDB(tags)
	if err != nil {
		return nil, err
	}

	return entry, nil
}

// Rows interface defines the common behavior for sql.Rows
type Rows interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}

// ScanTimeEntries scans multiple time entries from database rows
func ScanTimeEntries(rows Rows) ([]*TimeEntry, error) {
	var entries []*TimeEntry
	for rows.Next() {
		entry, err := ScanTimeEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
