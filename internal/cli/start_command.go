package cli

import (
	"context"
	"strings"
)

// StartCommand handles the start command
type StartCommand struct {
	app          *App
	errorHandler *ErrorHandler

	Flags EntryFlags
}

// NewStartCommand creates a new start command handler
func NewStartCommand(app *App) *StartCommand {
	return &StartCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the start command
func (c *StartCommand) Execute(ctx context.Context, args []string) error {
	description := strings.Join(args, " ")

	session, err := c.app.api.StartTimer(ctx, c.app.OwnerID(), c.Flags.toDetails(c.app, description))
	if err != nil {
		if c.errorHandler.IsConflictError(err) {
			return c.errorHandler.Handle("start timer: stop the running timer first", err)
		}
		return c.errorHandler.Handle("start timer", err)
	}

	if session.Timer.Description != "" {
		c.app.printf("Started timer: %s\n", session.Timer.Description)
	} else {
		c.app.println("Started timer")
	}
	return nil
}
