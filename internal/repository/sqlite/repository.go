package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"timeclock/internal/errors"
	"timeclock/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// Repository defines the interface for database operations
type Repository interface {
	// Create operations
	CreateTimeEntry(ctx context.Context, entry *TimeEntry) error
	CreateRunningEntry(ctx context.Context, entry *TimeEntry) error

	// Read operations
	GetTimeEntry(ctx context.Context, id int64) (*TimeEntry, error)
	FindRunningEntry(ctx context.Context, ownerID string) (*TimeEntry, error)
	SearchTimeEntries(ctx context.Context, opts SearchOptions) ([]*TimeEntry, error)

	// Update operations
	UpdateTimeEntry(ctx context.Context, entry *TimeEntry) error

	// Delete operations
	DeleteTimeEntry(ctx context.Context, id int64) error

	// Utility
	Close() error
}

// SQLiteRepository implements the Repository interface
type SQLiteRepository struct {
	db *sql.DB
}

// New creates a new SQLite repository instance
func New(dbPath string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.NewDatabaseError("open database", err)
	}

	// An in-memory database exists per connection, so the pool must be
	// capped at one or each connection sees a different empty database.
	if dbPath == ":memory:" {
		db.SetMaxOpenConns(1)
	}

	// Run migrations
	if err := migrations.RunMigrations(db); err != nil {
		db.Close()
		return nil, errors.NewDatabaseError("run migrations", err)
	}

	return &SQLiteRepository{db: db}, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

const timeEntryColumns = `id, owner_id, project_ref, issue_ref, start_time, end_time, duration_seconds, description, activity, tags, billable`

// CreateTimeEntry creates a new completed time entry
func (r *SQLiteRepository) CreateTimeEntry(ctx context.Context, entry *TimeEntry) error {
	tags, err := FormatTagsForDB(entry.Tags)
	if err != nil {
		return errors.NewDatabaseError("encode tags", err)
	}

	query := `
	INSERT INTO time_entries (owner_id, project_ref, issue_ref, start_time, end_time, duration_seconds, description, activity, tags, billable)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	id, err := ExecuteWithLastInsertID(ctx, r.db, query,
		entry.OwnerID, entry.ProjectRef, entry.IssueRef,
		FormatTimeForDB(entry.StartTime), FormatTimePtrForDB(entry.EndTime),
		entry.DurationSeconds, entry.Description, entry.Activity, tags, entry.Billable)
	if err != nil {
		return err
	}

	entry.ID = id
	return nil
}

// CreateRunningEntry creates a new running time entry for the owner. The
// partial unique index on (owner_id) WHERE end_time IS NULL makes this
// atomic: if the owner already has a running entry, the insert fails and a
// conflict error is returned. Callers must not check-then-insert.
func (r *SQLiteRepository) CreateRunningEntry(ctx context.Context, entry *TimeEntry) error {
	tags, err := FormatTagsForDB(entry.Tags)
	if err != nil {
		return errors.NewDatabaseError("encode tags", err)
	}

	query := `
	INSERT INTO time_entries (owner_id, project_ref, issue_ref, start_time, end_time, duration_seconds, description, activity, tags, billable)
	VALUES (?, ?, ?, ?, NULL, 0, ?, ?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query,
		entry.OwnerID, entry.ProjectRef, entry.IssueRef,
		FormatTimeForDB(entry.StartTime),
		entry.Description, entry.Activity, tags, entry.Billable)
	if err != nil {
		if IsUniqueConstraintError(err) {
			return errors.NewConflictError("a timer is already running for " + entry.OwnerID)
		}
		return HandleDatabaseError("create running entry", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return HandleDatabaseError("get last insert ID", err)
	}

	entry.ID = id
	return nil
}

// GetTimeEntry retrieves a time entry by ID
func (r *SQLiteRepository) GetTimeEntry(ctx context.Context, id int64) (*TimeEntry, error) {
	query := `
	SELECT ` + timeEntryColumns + `
	FROM time_entries
	WHERE id = ?`

	return QuerySingle(ctx, r.db, query, ScanTimeEntry, "time entry", fmt.Sprintf("%d", id), id)
}

// FindRunningEntry retrieves the owner's running entry, or nil if none is
// running. Absence is a normal state here, not a not-found error.
func (r *SQLiteRepository) FindRunningEntry(ctx context.Context, ownerID string) (*TimeEntry, error) {
	query := `
	SELECT ` + timeEntryColumns + `
	FROM time_entries
	WHERE owner_id = ? AND end_time IS NULL`

	row := r.db.QueryRowContext(ctx, query, ownerID)
	entry, err := ScanTimeEntry(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, HandleDatabaseError("scan running entry", err)
	}
	return entry, nil
}

// UpdateTimeEntry updates an existing time entry
func (r *SQLiteRepository) UpdateTimeEntry(ctx context.Context, entry *TimeEntry) error {
	tags, err := FormatTagsForDB(entry.Tags)
	if err != nil {
		return errors.NewDatabaseError("encode tags", err)
	}

	query := `
	UPDATE time_entries
	SET owner_id = ?, project_ref = ?, issue_ref = ?, start_time = ?, end_time = ?, duration_seconds = ?, description = ?, activity = ?, tags = ?, billable = ?
	WHERE id = ?`

	return ExecuteWithRowsAffected(ctx, r.db, query, "time entry", fmt.Sprintf("%d", entry.ID),
		entry.OwnerID, entry.ProjectRef, entry.IssueRef,
		FormatTimeForDB(entry.StartTime), FormatTimePtrForDB(entry.EndTime),
		entry.DurationSeconds, entry.Description, entry.Activity, tags, entry.Billable,
		entry.ID)
}

// DeleteTimeEntry deletes a time entry by ID
func (r *SQLiteRepository) DeleteTimeEntry(ctx context.Context, id int64) error {
	query := `DELETE FROM time_entries WHERE id = ?`
	return ExecuteWithRowsAffected(ctx, r.db, query, "time entry", fmt.Sprintf("%d", id), id)
}

// SearchTimeEntries searches for time entries based on the provided options
func (r *SQLiteRepository) SearchTimeEntries(ctx context.Context, opts SearchOptions) ([]*TimeEntry, error) {
	var conditions []string
	var args []interface{}

	if opts.OwnerID != nil {
		conditions = append(conditions, "owner_id = ?")
		args = append(args, *opts.OwnerID)
	}

	if opts.ProjectRef != nil {
		conditions = append(conditions, "project_ref = ?")
		args = append(args, *opts.ProjectRef)
	}

	if opts.IssueRef != nil {
		conditions = append(conditions, "issue_ref = ?")
		args = append(args, *opts.IssueRef)
	}

	if opts.StartTime != nil {
		conditions = append(conditions, "start_time >= ?")
		args = append(args, FormatTimeForDB(*opts.StartTime))
	}

	if opts.EndTime != nil {
		conditions = append(conditions, "start_time <= ?")
		args = append(args, FormatTimeForDB(*opts.EndTime))
	}

	if opts.RunningOnly {
		conditions = append(conditions, "end_time IS NULL")
	}

	query := `
	SELECT ` + timeEntryColumns + `
	FROM time_entries`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY start_time DESC"

	return QueryMultiple(ctx, r.db, query, ScanTimeEntries, "time entries", args...)
}
