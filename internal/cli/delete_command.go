package cli

import (
	"context"
	"strconv"

	"timeclock/internal/errors"
)

// DeleteCommand handles the delete command
type DeleteCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewDeleteCommand creates a new delete command handler
func NewDeleteCommand(app *App) *DeleteCommand {
	return &DeleteCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the delete command
func (c *DeleteCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.NewInvalidInputError("command", "delete", "usage: timeclock delete <entry-id>")
	}

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return c.errorHandler.HandleSimple(errors.NewInvalidInputError("entry_id", args[0], "must be a number"))
	}

	if err := c.app.api.DeleteTimeEntry(ctx, id); err != nil {
		return c.errorHandler.Handle("delete time entry", err)
	}

	c.app.printf("Deleted entry %d\n", id)
	return nil
}
