package cli

import (
	"context"
	"strconv"
	"strings"

	"timeclock/internal/api"
	"timeclock/internal/errors"
	"timeclock/internal/timeparse"
)

// EditCommand handles the edit command. It rewrites an entry's date, clock
// range and details; the stored duration is re-derived from the new range.
type EditCommand struct {
	app          *App
	errorHandler *ErrorHandler

	Date  string
	From  string
	To    string
	Flags EntryFlags
}

// NewEditCommand creates a new edit command handler
func NewEditCommand(app *App) *EditCommand {
	return &EditCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the edit command
func (c *EditCommand) Execute(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return errors.NewInvalidInputError("command", "edit", "usage: timeclock edit <entry-id> --from HH:MM --to HH:MM [description]")
	}

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return c.errorHandler.HandleSimple(errors.NewInvalidInputError("entry_id", args[0], "must be a number"))
	}

	date := timeNow()
	if c.Date != "" {
		date, err = parseDate(c.Date, timeNow())
		if err != nil {
			return c.errorHandler.HandleSimple(err)
		}
	}

	start, end, err := timeparse.ResolveRange(date, c.From, c.To)
	if err != nil {
		return c.errorHandler.HandleSimple(err)
	}

	description := strings.Join(args[1:], " ")
	entry, err := c.app.api.UpdateTimeEntry(ctx, api.UpdateEntryRequest{
		ID:        id,
		StartTime: start,
		EndTime:   end,
		Details:   c.Flags.toDetails(c.app, description),
	})
	if err != nil {
		return c.errorHandler.Handle("update time entry", err)
	}

	c.app.printf("Updated entry %d: %s on %s\n",
		entry.ID,
		timeparse.Format(entry.DurationSeconds),
		entry.StartTime.Format("2006-01-02"))
	return nil
}
