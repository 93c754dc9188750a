package cli

import (
	"context"
)

// StatusCommand handles the status command
type StatusCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewStatusCommand creates a new status command handler
func NewStatusCommand(app *App) *StatusCommand {
	return &StatusCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the status command
func (c *StatusCommand) Execute(ctx context.Context, args []string) error {
	session, err := c.app.api.GetRunningTimer(ctx, c.app.OwnerID())
	if err != nil {
		return c.errorHandler.Handle("get running timer", err)
	}

	if session == nil {
		c.app.println("No timer is running")
		return nil
	}

	if session.Timer.Description != "" {
		c.app.printf("Timer running: %s (%s)\n", session.Timer.Description, session.Elapsed)
	} else {
		c.app.printf("Timer running (%s)\n", session.Elapsed)
	}
	if session.Timer.ProjectRef != nil {
		c.app.printf("  project: %s\n", *session.Timer.ProjectRef)
	}
	if session.Timer.IssueRef != nil {
		c.app.printf("  issue: %s\n", *session.Timer.IssueRef)
	}
	return nil
}
