package cli

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timeclock/internal/api"
	"timeclock/internal/domain"
	"timeclock/internal/reconcile"
)

func TestLogCommand_TimerMode(t *testing.T) {
	app, mock, out := newTestApp(t)

	mock.logTimeFn = func(ctx context.Context, ownerID string, input reconcile.Input, details api.EntryDetails) (*api.LogResult, error) {
		assert.IsType(t, reconcile.TimerInput{}, input)
		return &api.LogResult{
			Timer: &domain.RunningTimer{EntryID: 1, OwnerID: ownerID, Description: details.Description},
		}, nil
	}

	err := NewLogCommand(app).Execute(context.Background(), []string{"pairing"})
	require.NoError(t, err)
	assert.Equal(t, "Started timer: pairing\n", out.String())
}

func TestLogCommand_DurationMode(t *testing.T) {
	app, mock, out := newTestApp(t)
	now := time.Date(2026, time.September, 1, 14, 30, 0, 0, time.Local)
	setTestTime(t, now)

	mock.logTimeFn = func(ctx context.Context, ownerID string, input reconcile.Input, details api.EntryDetails) (*api.LogResult, error) {
		durationInput, ok := input.(reconcile.DurationInput)
		require.True(t, ok)
		// No --date flag means today.
		assert.Equal(t, now, durationInput.Date)
		assert.Equal(t, "1h 30m", durationInput.Duration)

		end := now
		return &api.LogResult{
			Entry: &domain.TimeEntry{
				ID:              5,
				OwnerID:         ownerID,
				StartTime:       now.Add(-90 * time.Minute),
				EndTime:         &end,
				DurationSeconds: 5400,
			},
		}, nil
	}

	cmd := NewLogCommand(app)
	cmd.Duration = "1h 30m"
	err := cmd.Execute(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, "Logged 1h 30m on 2026-09-01 (entry 5)\n", out.String())
}

func TestLogCommand_DurationModeWithDate(t *testing.T) {
	app, mock, _ := newTestApp(t)
	setTestTime(t, time.Date(2026, time.September, 1, 14, 30, 0, 0, time.Local))

	mock.logTimeFn = func(ctx context.Context, ownerID string, input reconcile.Input, details api.EntryDetails) (*api.LogResult, error) {
		durationInput, ok := input.(reconcile.DurationInput)
		require.True(t, ok)
		assert.Equal(t, time.Date(2026, time.August, 28, 0, 0, 0, 0, time.Local), durationInput.Date)

		end := durationInput.Date
		return &api.LogResult{
			Entry: &domain.TimeEntry{ID: 6, OwnerID: ownerID, StartTime: durationInput.Date, EndTime: &end, DurationSeconds: 7200},
		}, nil
	}

	cmd := NewLogCommand(app)
	cmd.Date = "2026-08-28"
	cmd.Duration = "2h"
	assert.NoError(t, cmd.Execute(context.Background(), nil))
}

func TestLogCommand_TimeRangeMode(t *testing.T) {
	app, mock, _ := newTestApp(t)
	setTestTime(t, time.Date(2026, time.September, 1, 14, 30, 0, 0, time.Local))

	mock.logTimeFn = func(ctx context.Context, ownerID string, input reconcile.Input, details api.EntryDetails) (*api.LogResult, error) {
		rangeInput, ok := input.(reconcile.TimeRangeInput)
		require.True(t, ok)
		assert.Equal(t, "09:00", rangeInput.StartClock)
		assert.Equal(t, "11:30", rangeInput.EndClock)

		end := rangeInput.Date
		return &api.LogResult{
			Entry: &domain.TimeEntry{ID: 7, OwnerID: ownerID, StartTime: rangeInput.Date, EndTime: &end, DurationSeconds: 9000},
		}, nil
	}

	cmd := NewLogCommand(app)
	cmd.From = "09:00"
	cmd.To = "11:30"
	assert.NoError(t, cmd.Execute(context.Background(), nil))
}

func TestLogCommand_FlagConflicts(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*LogCommand)
	}{
		{"Duration with range", func(c *LogCommand) {
			c.Duration = "1h"
			c.From = "09:00"
		}},
		{"Date without mode", func(c *LogCommand) {
			c.Date = "2026-08-28"
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, _, _ := newTestApp(t)
			cmd := NewLogCommand(app)
			tt.modify(cmd)

			err := cmd.Execute(context.Background(), nil)
			assert.Error(t, err)
		})
	}
}

func TestLogCommand_BadDate(t *testing.T) {
	app, _, _ := newTestApp(t)
	setTestTime(t, time.Date(2026, time.September, 1, 14, 30, 0, 0, time.Local))

	cmd := NewLogCommand(app)
	cmd.Date = "not-a-date-at-all-xyzzy"
	cmd.Duration = "1h"
	err := cmd.Execute(context.Background(), nil)
	assert.Error(t, err)
}
