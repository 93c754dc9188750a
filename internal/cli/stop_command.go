package cli

import (
	"context"
)

// StopCommand handles the stop command
type StopCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewStopCommand creates a new stop command handler
func NewStopCommand(app *App) *StopCommand {
	return &StopCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the stop command
func (c *StopCommand) Execute(ctx context.Context, args []string) error {
	result, err := c.app.api.StopTimer(ctx, c.app.OwnerID())
	if err != nil {
		return c.errorHandler.Handle("stop timer", err)
	}

	if !result.Stopped {
		c.app.println("No timer is running")
		return nil
	}

	if result.Entry.Description != "" {
		c.app.printf("Stopped timer: %s (%s)\n", result.Entry.Description, result.Duration)
	} else {
		c.app.printf("Stopped timer (%s)\n", result.Duration)
	}
	return nil
}
