package domain

import (
	"timeclock/internal/repository/sqlite"
)

// TimeEntryMapper handles conversion between domain and database TimeEntry models.
type TimeEntryMapper struct{}

// NewTimeEntryMapper creates a new TimeEntryMapper instance.
func NewTimeEntryMapper() *TimeEntryMapper {
	return &TimeEntryMapper{}
}

// ToDatabase converts a domain TimeEntry to a database TimeEntry.
func (m *TimeEntryMapper) ToDatabase(domainEntry TimeEntry) sqlite.TimeEntry {
	return sqlite.TimeEntry{
		ID:              domainEntry.ID,
		OwnerID:         domainEntry.OwnerID,
		ProjectRef:      domainEntry.ProjectRef,
		IssueRef:        domainEntry.IssueRef,
		StartTime:       domainEntry.StartTime,
		EndTime:         domainEntry.EndTime,
		DurationSeconds: domainEntry.DurationSeconds,
		Description:     domainEntry.Description,
		Activity:        domainEntry.Activity,
		Tags:            domainEntry.Tags,
		Billable:        domainEntry.Billable,
	}
}

// FromDatabase converts a database TimeEntry to a domain TimeEntry.
func (m *TimeEntryMapper) FromDatabase(dbEntry sqlite.TimeEntry) TimeEntry {
	return TimeEntry{
		ID:              dbEntry.ID,
		OwnerID:         dbEntry.OwnerID,
		ProjectRef:      dbEntry.ProjectRef,
		IssueRef:        dbEntry.IssueRef,
		StartTime:       dbEntry.StartTime,
		EndTime:         dbEntry.EndTime,
		DurationSeconds: dbEntry.DurationSeconds,
		Description:     dbEntry.Description,
		Activity:        dbEntry.Activity,
		Tags:            dbEntry.Tags,
		Billable:        dbEntry.Billable,
	}
}

// FromDatabaseSlice converts a slice of database TimeEntries to domain TimeEntries.
func (m *TimeEntryMapper) FromDatabaseSlice(dbEntries []sqlite.TimeEntry) []TimeEntry {
	domainEntries := make([]TimeEntry, len(dbEntries))
	for i, entry := range dbEntries {
		domainEntries[i] = m.FromDatabase(entry)
	}
	return domainEntries
}

// SearchOptionsMapper handles conversion between domain and database SearchOptions.
type SearchOptionsMapper struct{}

// NewSearchOptionsMapper creates a new SearchOptionsMapper instance.
func NewSearchOptionsMapper() *SearchOptionsMapper {
	return &SearchOptionsMapper{}
}

// ToDatabase converts domain SearchOptions to database SearchOptions.
func (m *SearchOptionsMapper) ToDatabase(domainOpts SearchOptions) sqlite.SearchOptions {
	return sqlite.SearchOptions{
		OwnerID:     domainOpts.OwnerID,
		ProjectRef:  domainOpts.ProjectRef,
		IssueRef:    domainOpts.IssueRef,
		StartTime:   domainOpts.StartTime,
		EndTime:     domainOpts.EndTime,
		RunningOnly: domainOpts.RunningOnly,
	}
}

// Mapper provides a unified interface for all mapping operations.
type Mapper struct {
	TimeEntry     *TimeEntryMapper
	SearchOptions *SearchOptionsMapper
}

// NewMapper creates a new Mapper instance with all sub-mappers.
func NewMapper() *Mapper {
	return &Mapper{
		TimeEntry:     NewTimeEntryMapper(),
		SearchOptions: NewSearchOptionsMapper(),
	}
}
