package cli

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timeclock/internal/api"
	"timeclock/internal/domain"
)

func TestStatusCommand(t *testing.T) {
	app, mock, out := newTestApp(t)

	mock.getRunningTimerFn = func(ctx context.Context, ownerID string) (*api.TimerSession, error) {
		assert.Equal(t, "alice", ownerID)
		return &api.TimerSession{
			Timer: &domain.RunningTimer{
				EntryID:     1,
				OwnerID:     ownerID,
				StartTime:   time.Now().Add(-25 * time.Minute),
				Description: "focus",
				ProjectRef:  stringPtr("acme"),
				IssueRef:    stringPtr("ACME-42"),
			},
			Elapsed: "25m",
		}, nil
	}

	err := NewStatusCommand(app).Execute(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, "Timer running: focus (25m)\n  project: acme\n  issue: ACME-42\n", out.String())
}

func TestStatusCommand_NoDescription(t *testing.T) {
	app, mock, out := newTestApp(t)

	mock.getRunningTimerFn = func(ctx context.Context, ownerID string) (*api.TimerSession, error) {
		return &api.TimerSession{
			Timer:   &domain.RunningTimer{EntryID: 1, OwnerID: ownerID},
			Elapsed: "5m",
		}, nil
	}

	err := NewStatusCommand(app).Execute(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, "Timer running (5m)\n", out.String())
}

func TestStatusCommand_NothingRunning(t *testing.T) {
	app, mock, out := newTestApp(t)

	mock.getRunningTimerFn = func(ctx context.Context, ownerID string) (*api.TimerSession, error) {
		return nil, nil
	}

	err := NewStatusCommand(app).Execute(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, "No timer is running\n", out.String())
}
