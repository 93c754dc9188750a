package cli

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timeclock/internal/api"
	"timeclock/internal/domain"
	"timeclock/internal/errors"
)

func TestStartCommand(t *testing.T) {
	app, mock, out := newTestApp(t)

	var gotOwner string
	var gotDetails api.EntryDetails
	mock.startTimerFn = func(ctx context.Context, ownerID string, details api.EntryDetails) (*api.TimerSession, error) {
		gotOwner = ownerID
		gotDetails = details
		return &api.TimerSession{
			Timer:   &domain.RunningTimer{EntryID: 1, OwnerID: ownerID, StartTime: time.Now(), Description: details.Description},
			Elapsed: "0m",
		}, nil
	}

	cmd := NewStartCommand(app)
	cmd.Flags.Project = "acme"
	cmd.Flags.Tags = []string{"deep-work"}
	err := cmd.Execute(context.Background(), []string{"pairing", "session"})
	require.NoError(t, err)

	assert.Equal(t, "alice", gotOwner)
	assert.Equal(t, "pairing session", gotDetails.Description)
	require.NotNil(t, gotDetails.ProjectRef)
	assert.Equal(t, "acme", *gotDetails.ProjectRef)
	assert.Nil(t, gotDetails.IssueRef)
	assert.Equal(t, []string{"deep-work"}, gotDetails.Tags)
	// Activity falls back to the configured default.
	assert.Equal(t, "development", gotDetails.Activity)

	assert.Equal(t, "Started timer: pairing session\n", out.String())
}

func TestStartCommand_NoDescription(t *testing.T) {
	app, mock, out := newTestApp(t)

	mock.startTimerFn = func(ctx context.Context, ownerID string, details api.EntryDetails) (*api.TimerSession, error) {
		return &api.TimerSession{
			Timer:   &domain.RunningTimer{EntryID: 1, OwnerID: ownerID},
			Elapsed: "0m",
		}, nil
	}

	err := NewStartCommand(app).Execute(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, "Started timer\n", out.String())
}

func TestStartCommand_Conflict(t *testing.T) {
	app, mock, _ := newTestApp(t)

	mock.startTimerFn = func(ctx context.Context, ownerID string, details api.EntryDetails) (*api.TimerSession, error) {
		return nil, errors.NewConflictError("a timer is already running for alice")
	}

	err := NewStartCommand(app).Execute(context.Background(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stop the running timer first")
	assert.Contains(t, err.Error(), "a timer is already running for alice")
}
