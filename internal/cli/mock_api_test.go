package cli

import (
	"bytes"
	"context"
	"testing"
	"time"

	"timeclock/internal/api"
	"timeclock/internal/config"
	"timeclock/internal/domain"
	"timeclock/internal/reconcile"
)

// mockAPI implements api.API with per-method hooks. Calls to methods
// without a hook fail the test.
type mockAPI struct {
	t *testing.T

	startTimerFn      func(ctx context.Context, ownerID string, details api.EntryDetails) (*api.TimerSession, error)
	stopTimerFn       func(ctx context.Context, ownerID string) (*api.StopResult, error)
	getRunningTimerFn func(ctx context.Context, ownerID string) (*api.TimerSession, error)
	logTimeFn         func(ctx context.Context, ownerID string, input reconcile.Input, details api.EntryDetails) (*api.LogResult, error)
	createTimeEntryFn func(ctx context.Context, req api.CreateEntryRequest) (*domain.TimeEntry, error)
	getTimeEntryFn    func(ctx context.Context, id int64) (*domain.TimeEntry, error)
	listTimeEntriesFn func(ctx context.Context, opts domain.SearchOptions) ([]*domain.TimeEntry, error)
	updateTimeEntryFn func(ctx context.Context, req api.UpdateEntryRequest) (*domain.TimeEntry, error)
	deleteTimeEntryFn func(ctx context.Context, id int64) error
}

func (m *mockAPI) StartTimer(ctx context.Context, ownerID string, details api.EntryDetails) (*api.TimerSession, error) {
	if m.startTimerFn == nil {
		m.t.Fatal("unexpected StartTimer call")
	}
	return m.startTimerFn(ctx, ownerID, details)
}

func (m *mockAPI) StopTimer(ctx context.Context, ownerID string) (*api.StopResult, error) {
	if m.stopTimerFn == nil {
		m.t.Fatal("unexpected StopTimer call")
	}
	return m.stopTimerFn(ctx, ownerID)
}

func (m *mockAPI) GetRunningTimer(ctx context.Context, ownerID string) (*api.TimerSession, error) {
	if m.getRunningTimerFn == nil {
		m.t.Fatal("unexpected GetRunningTimer call")
	}
	return m.getRunningTimerFn(ctx, ownerID)
}

func (m *mockAPI) LogTime(ctx context.Context, ownerID string, input reconcile.Input, details api.EntryDetails) (*api.LogResult, error) {
	if m.logTimeFn == nil {
		m.t.Fatal("unexpected LogTime call")
	}
	return m.logTimeFn(ctx, ownerID, input, details)
}

func (m *mockAPI) CreateTimeEntry(ctx context.Context, req api.CreateEntryRequest) (*domain.TimeEntry, error) {
	if m.createTimeEntryFn == nil {
		m.t.Fatal("unexpected CreateTimeEntry call")
	}
	return m.createTimeEntryFn(ctx, req)
}

func (m *mockAPI) GetTimeEntry(ctx context.Context, id int64) (*domain.TimeEntry, error) {
	if m.getTimeEntryFn == nil {
		m.t.Fatal("unexpected GetTimeEntry call")
	}
	return m.getTimeEntryFn(ctx, id)
}

func (m *mockAPI) ListTimeEntries(ctx context.Context, opts domain.SearchOptions) ([]*domain.TimeEntry, error) {
	if m.listTimeEntriesFn == nil {
		m.t.Fatal("unexpected ListTimeEntries call")
	}
	return m.listTimeEntriesFn(ctx, opts)
}

func (m *mockAPI) UpdateTimeEntry(ctx context.Context, req api.UpdateEntryRequest) (*domain.TimeEntry, error) {
	if m.updateTimeEntryFn == nil {
		m.t.Fatal("unexpected UpdateTimeEntry call")
	}
	return m.updateTimeEntryFn(ctx, req)
}

func (m *mockAPI) DeleteTimeEntry(ctx context.Context, id int64) error {
	if m.deleteTimeEntryFn == nil {
		m.t.Fatal("unexpected DeleteTimeEntry call")
	}
	return m.deleteTimeEntryFn(ctx, id)
}

// newTestApp wires a mock API into an App that writes to a capture buffer.
func newTestApp(t *testing.T) (*App, *mockAPI, *bytes.Buffer) {
	mock := &mockAPI{t: t}
	cfg := config.NewConfig()
	cfg.Owner.ID = "alice"
	out := &bytes.Buffer{}
	return NewAppWithOutput(mock, cfg, out), mock, out
}

// setTestTime pins the CLI clock for the duration of the test.
func setTestTime(t *testing.T, now time.Time) {
	orig := timeNow
	timeNow = func() time.Time { return now }
	t.Cleanup(func() { timeNow = orig })
}

func stringPtr(s string) *string { return &s }
