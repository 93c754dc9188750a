package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timeclock/internal/errors"
)

func TestDeleteCommand(t *testing.T) {
	app, mock, out := newTestApp(t)

	var gotID int64
	mock.deleteTimeEntryFn = func(ctx context.Context, id int64) error {
		gotID = id
		return nil
	}

	err := NewDeleteCommand(app).Execute(context.Background(), []string{"42"})
	require.NoError(t, err)
	assert.Equal(t, int64(42), gotID)
	assert.Equal(t, "Deleted entry 42\n", out.String())
}

func TestDeleteCommand_NotFound(t *testing.T) {
	app, mock, _ := newTestApp(t)

	mock.deleteTimeEntryFn = func(ctx context.Context, id int64) error {
		return errors.NewNotFoundError("time entry", "42")
	}

	err := NewDeleteCommand(app).Execute(context.Background(), []string{"42"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "time entry not found")
}

func TestDeleteCommand_BadArgs(t *testing.T) {
	app, _, _ := newTestApp(t)

	assert.Error(t, NewDeleteCommand(app).Execute(context.Background(), nil))
	assert.Error(t, NewDeleteCommand(app).Execute(context.Background(), []string{"abc"}))
	assert.Error(t, NewDeleteCommand(app).Execute(context.Background(), []string{"1", "2"}))
}
