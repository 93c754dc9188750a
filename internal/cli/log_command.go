package cli

import (
	"context"
	"strings"
	"time"

	"timeclock/internal/errors"
	"timeclock/internal/reconcile"
	"timeclock/internal/timeparse"
)

// LogCommand handles the log command. It covers all three ways of recording
// time: with no time flags it starts a timer, with --duration it stores a
// typed duration, and with --from/--to it stores an explicit clock range.
type LogCommand struct {
	app          *App
	errorHandler *ErrorHandler

	Date     string
	Duration string
	From     string
	To       string
	Flags    EntryFlags
}

// NewLogCommand creates a new log command handler
func NewLogCommand(app *App) *LogCommand {
	return &LogCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the log command
func (c *LogCommand) Execute(ctx context.Context, args []string) error {
	input, err := c.buildInput()
	if err != nil {
		return c.errorHandler.HandleSimple(err)
	}

	description := strings.Join(args, " ")
	result, err := c.app.api.LogTime(ctx, c.app.OwnerID(), input, c.Flags.toDetails(c.app, description))
	if err != nil {
		return c.errorHandler.Handle("log time", err)
	}

	if result.Timer != nil {
		if result.Timer.Description != "" {
			c.app.printf("Started timer: %s\n", result.Timer.Description)
		} else {
			c.app.println("Started timer")
		}
		return nil
	}

	entry := result.Entry
	c.app.printf("Logged %s on %s (entry %d)\n",
		timeparse.Format(entry.DurationSeconds),
		entry.StartTime.Format("2006-01-02"),
		entry.ID)
	return nil
}

// buildInput selects the entry mode from the given flags
func (c *LogCommand) buildInput() (reconcile.Input, error) {
	hasDuration := c.Duration != ""
	hasRange := c.From != "" || c.To != ""

	if hasDuration && hasRange {
		return nil, errors.NewInvalidInputError("flags", c.Duration, "--duration cannot be combined with --from/--to")
	}

	if !hasDuration && !hasRange {
		if c.Date != "" {
			return nil, errors.NewInvalidInputError("flags", c.Date, "--date requires --duration or --from/--to")
		}
		return reconcile.TimerInput{}, nil
	}

	date, err := c.resolveDate()
	if err != nil {
		return nil, err
	}

	if hasDuration {
		return reconcile.DurationInput{Date: date, Duration: c.Duration}, nil
	}
	return reconcile.TimeRangeInput{Date: date, StartClock: c.From, EndClock: c.To}, nil
}

// resolveDate parses the --date flag, defaulting to today
func (c *LogCommand) resolveDate() (date time.Time, err error) {
	if c.Date == "" {
		return timeNow(), nil
	}
	return parseDate(c.Date, timeNow())
}
