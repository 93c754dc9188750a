package api

import (
	"context"
	"time"

	"timeclock/internal/domain"
	"timeclock/internal/errors"
	"timeclock/internal/reconcile"
	"timeclock/internal/repository/sqlite"
	"timeclock/internal/timeparse"
	"timeclock/internal/timer"
	"timeclock/internal/validation"
)

// TimerSession describes a running timer for presentation
type TimerSession struct {
	Timer   *domain.RunningTimer `json:"timer"`
	Elapsed string               `json:"elapsed"` // Human-readable elapsed time
}

// StopResult describes the outcome of a stop request
type StopResult struct {
	Stopped  bool              `json:"stopped"` // False when no timer was running
	Entry    *domain.TimeEntry `json:"entry,omitempty"`
	Duration string            `json:"duration,omitempty"` // Human-readable worked time
}

// LogResult describes the outcome of logging worked time. Exactly one of
// Timer and Entry is set: timer mode starts a timer, the other modes store
// a completed entry.
type LogResult struct {
	Timer *domain.RunningTimer `json:"timer,omitempty"`
	Entry *domain.TimeEntry    `json:"entry,omitempty"`
}

// EntryDetails carries the descriptive fields shared by every way of
// recording time
type EntryDetails struct {
	Description string
	Activity    string
	ProjectRef  *string
	IssueRef    *string
	Tags        []string
	Billable    bool
}

// CreateEntryRequest describes a completed entry with explicit timestamps
type CreateEntryRequest struct {
	OwnerID   string
	StartTime time.Time
	EndTime   time.Time
	Details   EntryDetails
}

// UpdateEntryRequest describes changes to an existing entry. The stored
// duration is always re-derived from the timestamps, never taken from input.
type UpdateEntryRequest struct {
	ID        int64
	StartTime time.Time
	EndTime   time.Time
	Details   EntryDetails
}

// API defines the business-logic interface for time tracking operations
type API interface {
	// ========== Timer Workflows ==========

	// StartTimer begins a running timer for the owner, rejecting with a
	// conflict error if one is already running
	StartTimer(ctx context.Context, ownerID string, details EntryDetails) (*TimerSession, error)

	// StopTimer finishes the owner's running timer. Stopping with no timer
	// running is not an error; the result reports Stopped = false.
	StopTimer(ctx context.Context, ownerID string) (*StopResult, error)

	// GetRunningTimer returns the owner's running timer, or nil when none
	GetRunningTimer(ctx context.Context, ownerID string) (*TimerSession, error)

	// ========== Entry Workflows ==========

	// LogTime records worked time specified in any input mode: starting a
	// timer, a typed duration on a date, or an explicit clock range
	LogTime(ctx context.Context, ownerID string, input reconcile.Input, details EntryDetails) (*LogResult, error)

	// CreateTimeEntry stores a completed entry with explicit timestamps
	CreateTimeEntry(ctx context.Context, req CreateEntryRequest) (*domain.TimeEntry, error)

	// GetTimeEntry returns a single entry by ID
	GetTimeEntry(ctx context.Context, id int64) (*domain.TimeEntry, error)

	// ListTimeEntries returns entries matching the search options, most
	// recent first
	ListTimeEntries(ctx context.Context, opts domain.SearchOptions) ([]*domain.TimeEntry, error)

	// UpdateTimeEntry rewrites an existing entry's timestamps and details
	UpdateTimeEntry(ctx context.Context, req UpdateEntryRequest) (*domain.TimeEntry, error)

	// DeleteTimeEntry removes an entry by ID
	DeleteTimeEntry(ctx context.Context, id int64) error
}

// apiImpl implements the API interface
type apiImpl struct {
	repo       sqlite.Repository
	machine    *timer.Machine
	reconciler *reconcile.Reconciler
	mapper     *domain.Mapper
	validator  *validation.TimeEntryValidator
	now        func() time.Time
}

// New creates a new API instance
func New(repo sqlite.Repository, reconciler *reconcile.Reconciler) API {
	return &apiImpl{
		repo:       repo,
		machine:    timer.NewMachine(repo),
		reconciler: reconciler,
		mapper:     domain.NewMapper(),
		validator:  validation.NewTimeEntryValidator(),
		now:        time.Now,
	}
}

// ========== Timer Workflows ==========

func (a *apiImpl) StartTimer(ctx context.Context, ownerID string, details EntryDetails) (*TimerSession, error) {
	if err := a.validator.ValidateOwnerID(ownerID); err != nil {
		return nil, errors.NewValidationError("invalid owner", err)
	}

	running, err := a.machine.Start(ctx, timer.StartOptions{
		OwnerID:     ownerID,
		Description: details.Description,
		Activity:    details.Activity,
		ProjectRef:  details.ProjectRef,
		IssueRef:    details.IssueRef,
		Tags:        details.Tags,
		Billable:    details.Billable,
	}, a.now())
	if err != nil {
		return nil, err
	}

	return a.sessionFor(running), nil
}

func (a *apiImpl) StopTimer(ctx context.Context, ownerID string) (*StopResult, error) {
	if err := a.validator.ValidateOwnerID(ownerID); err != nil {
		return nil, errors.NewValidationError("invalid owner", err)
	}

	entry, err := a.machine.Stop(ctx, ownerID, a.now())
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return &StopResult{Stopped: false}, nil
	}

	return &StopResult{
		Stopped:  true,
		Entry:    entry,
		Duration: timeparse.Format(entry.DurationSeconds),
	}, nil
}

func (a *apiImpl) GetRunningTimer(ctx context.Context, ownerID string) (*TimerSession, error) {
	if err := a.validator.ValidateOwnerID(ownerID); err != nil {
		return nil, errors.NewValidationError("invalid owner", err)
	}

	running, err := a.machine.Current(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if running == nil {
		return nil, nil
	}

	return a.sessionFor(running), nil
}

// ========== Entry Workflows ==========

func (a *apiImpl) LogTime(ctx context.Context, ownerID string, input reconcile.Input, details EntryDetails) (*LogResult, error) {
	if err := a.validator.ValidateOwnerID(ownerID); err != nil {
		return nil, errors.NewValidationError("invalid owner", err)
	}

	resolution, err := a.reconciler.Reconcile(input, a.now())
	if err != nil {
		return nil, err
	}

	if resolution.StartTimer {
		session, err := a.StartTimer(ctx, ownerID, details)
		if err != nil {
			return nil, err
		}
		return &LogResult{Timer: session.Timer}, nil
	}

	entry, err := a.CreateTimeEntry(ctx, CreateEntryRequest{
		OwnerID:   ownerID,
		StartTime: resolution.Entry.StartTime,
		EndTime:   resolution.Entry.EndTime,
		Details:   details,
	})
	if err != nil {
		return nil, err
	}
	return &LogResult{Entry: entry}, nil
}

func (a *apiImpl) CreateTimeEntry(ctx context.Context, req CreateEntryRequest) (*domain.TimeEntry, error) {
	entry := domain.TimeEntry{
		OwnerID:     req.OwnerID,
		StartTime:   req.StartTime,
		Description: req.Details.Description,
		Activity:    req.Details.Activity,
		ProjectRef:  req.Details.ProjectRef,
		IssueRef:    req.Details.IssueRef,
		Tags:        req.Details.Tags,
		Billable:    req.Details.Billable,
	}
	entry = entry.Complete(req.EndTime)

	if err := a.validator.ValidateTimeEntry(entry); err != nil {
		return nil, errors.NewValidationError("invalid time entry", err)
	}

	dbEntry := a.mapper.TimeEntry.ToDatabase(entry)
	if err := a.repo.CreateTimeEntry(ctx, &dbEntry); err != nil {
		return nil, err
	}

	entry.ID = dbEntry.ID
	return &entry, nil
}

func (a *apiImpl) GetTimeEntry(ctx context.Context, id int64) (*domain.TimeEntry, error) {
	if err := a.validator.ValidateTimeEntryID(id); err != nil {
		return nil, errors.NewValidationError("invalid time entry ID", err)
	}

	dbEntry, err := a.repo.GetTimeEntry(ctx, id)
	if err != nil {
		// Repository already returns proper AppError types, just pass through
		return nil, err
	}

	entry := a.mapper.TimeEntry.FromDatabase(*dbEntry)
	return &entry, nil
}

func (a *apiImpl) ListTimeEntries(ctx context.Context, opts domain.SearchOptions) ([]*domain.TimeEntry, error) {
	if err := a.validator.ValidateSearchOptions(opts); err != nil {
		return nil, errors.NewValidationError("invalid search options", err)
	}

	dbEntries, err := a.repo.SearchTimeEntries(ctx, a.mapper.SearchOptions.ToDatabase(opts))
	if err != nil {
		return nil, err
	}

	entries := make([]*domain.TimeEntry, len(dbEntries))
	for i, dbEntry := range dbEntries {
		entry := a.mapper.TimeEntry.FromDatabase(*dbEntry)
		entries[i] = &entry
	}
	return entries, nil
}

func (a *apiImpl) UpdateTimeEntry(ctx context.Context, req UpdateEntryRequest) (*domain.TimeEntry, error) {
	if err := a.validator.ValidateTimeEntryID(req.ID); err != nil {
		return nil, errors.NewValidationError("invalid time entry ID", err)
	}

	dbEntry, err := a.repo.GetTimeEntry(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	entry := a.mapper.TimeEntry.FromDatabase(*dbEntry)
	entry.StartTime = req.StartTime
	entry.Description = req.Details.Description
	entry.Activity = req.Details.Activity
	entry.ProjectRef = req.Details.ProjectRef
	entry.IssueRef = req.Details.IssueRef
	entry.Tags = req.Details.Tags
	entry.Billable = req.Details.Billable
	entry = entry.Complete(req.EndTime)

	if err := a.validator.ValidateTimeEntry(entry); err != nil {
		return nil, errors.NewValidationError("invalid time entry", err)
	}

	updated := a.mapper.TimeEntry.ToDatabase(entry)
	if err := a.repo.UpdateTimeEntry(ctx, &updated); err != nil {
		return nil, err
	}

	return &entry, nil
}

func (a *apiImpl) DeleteTimeEntry(ctx context.Context, id int64) error {
	if err := a.validator.ValidateTimeEntryID(id); err != nil {
		return errors.NewValidationError("invalid time entry ID", err)
	}

	return a.repo.DeleteTimeEntry(ctx, id)
}

func (a *apiImpl) sessionFor(running *domain.RunningTimer) *TimerSession {
	elapsed := running.Elapsed(a.now())
	seconds := int64(elapsed / time.Second)
	if seconds < 0 {
		seconds = 0
	}
	return &TimerSession{
		Timer:   running,
		Elapsed: timeparse.Format(seconds),
	}
}
