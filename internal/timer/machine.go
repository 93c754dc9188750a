package timer

import (
	"context"
	"time"

	"timeclock/internal/domain"
	"timeclock/internal/logging"
	"timeclock/internal/repository/sqlite"
)

// StartOptions carries the descriptive fields attached to a timer at start.
type StartOptions struct {
	OwnerID     string
	Description string
	Activity    string
	ProjectRef  *string
	IssueRef    *string
	Tags        []string
	Billable    bool
}

// Machine drives the per-owner timer lifecycle on top of the repository.
//
// It holds no state of its own: whether a timer is running is read from the
// store on every call, and the one-running-timer-per-owner rule is enforced
// by the store's unique index, not by checks here. Two concurrent Start
// calls therefore cannot both succeed.
type Machine struct {
	repo   sqlite.Repository
	mapper *domain.Mapper
}

// NewMachine creates a timer machine backed by the given repository.
func NewMachine(repo sqlite.Repository) *Machine {
	return &Machine{
		repo:   repo,
		mapper: domain.NewMapper(),
	}
}

// Start begins a new running entry for the owner at the given time. If the
// owner already has a running timer the store rejects the insert and a
// conflict error is returned; the existing timer is untouched.
func (m *Machine) Start(ctx context.Context, opts StartOptions, now time.Time) (*domain.RunningTimer, error) {
	entry := domain.NewRunningEntry(opts.OwnerID, now)
	entry.Description = opts.Description
	entry.Activity = opts.Activity
	entry.ProjectRef = opts.ProjectRef
	entry.IssueRef = opts.IssueRef
	entry.Tags = opts.Tags
	entry.Billable = opts.Billable

	dbEntry := m.mapper.TimeEntry.ToDatabase(entry)
	if err := m.repo.CreateRunningEntry(ctx, &dbEntry); err != nil {
		return nil, err
	}

	logging.Debugf("started timer %d for owner %s\n", dbEntry.ID, opts.OwnerID)

	entry.ID = dbEntry.ID
	timer := domain.RunningTimerFromEntry(entry)
	return &timer, nil
}

// Stop finishes the owner's running timer at the given time and returns the
// completed entry. The stored duration is always re-derived from the start
// and end timestamps.
//
// Stop is idempotent: when no timer is running it returns (nil, nil) rather
// than an error, so repeated stops converge on the same stopped state.
func (m *Machine) Stop(ctx context.Context, ownerID string, now time.Time) (*domain.TimeEntry, error) {
	dbEntry, err := m.repo.FindRunningEntry(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if dbEntry == nil {
		logging.Debugf("stop requested for owner %s with no running timer\n", ownerID)
		return nil, nil
	}

	entry := m.mapper.TimeEntry.FromDatabase(*dbEntry)
	completed := entry.Complete(now)

	dbCompleted := m.mapper.TimeEntry.ToDatabase(completed)
	if err := m.repo.UpdateTimeEntry(ctx, &dbCompleted); err != nil {
		return nil, err
	}

	logging.Debugf("stopped timer %d for owner %s after %ds\n", completed.ID, ownerID, completed.DurationSeconds)
	return &completed, nil
}

// Current returns the owner's running timer, or nil when none is running.
func (m *Machine) Current(ctx context.Context, ownerID string) (*domain.RunningTimer, error) {
	dbEntry, err := m.repo.FindRunningEntry(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if dbEntry == nil {
		return nil, nil
	}

	entry := m.mapper.TimeEntry.FromDatabase(*dbEntry)
	timer := domain.RunningTimerFromEntry(entry)
	return &timer, nil
}
