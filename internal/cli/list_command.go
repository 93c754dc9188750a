package cli

import (
	"context"
	"strings"
	"time"

	"timeclock/internal/domain"
	"timeclock/internal/timeparse"
)

// ListCommand handles the list command
type ListCommand struct {
	app          *App
	errorHandler *ErrorHandler

	Project string
	Issue   string
	Since   string
	Until   string
	Running bool
}

// NewListCommand creates a new list command handler
func NewListCommand(app *App) *ListCommand {
	return &ListCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the list command
func (c *ListCommand) Execute(ctx context.Context, args []string) error {
	opts, err := c.buildSearchOptions()
	if err != nil {
		return c.errorHandler.HandleSimple(err)
	}

	entries, err := c.app.api.ListTimeEntries(ctx, opts)
	if err != nil {
		return c.errorHandler.Handle("list time entries", err)
	}

	if len(entries) == 0 {
		c.app.println("No time entries found")
		return nil
	}

	for _, entry := range entries {
		c.app.println(c.formatEntry(entry))
	}
	return nil
}

func (c *ListCommand) buildSearchOptions() (domain.SearchOptions, error) {
	ownerID := c.app.OwnerID()
	opts := domain.SearchOptions{
		OwnerID:     &ownerID,
		RunningOnly: c.Running,
	}

	if c.Project != "" {
		project := c.Project
		opts.ProjectRef = &project
	}
	if c.Issue != "" {
		issue := c.Issue
		opts.IssueRef = &issue
	}

	if c.Since != "" {
		since, err := parseDate(c.Since, timeNow())
		if err != nil {
			return domain.SearchOptions{}, err
		}
		start := startOfDay(since)
		opts.StartTime = &start
	}
	if c.Until != "" {
		until, err := parseDate(c.Until, timeNow())
		if err != nil {
			return domain.SearchOptions{}, err
		}
		end := startOfDay(until).Add(24 * time.Hour)
		opts.EndTime = &end
	}

	return opts, nil
}

// formatEntry renders one entry as a single line
func (c *ListCommand) formatEntry(entry *domain.TimeEntry) string {
	var b strings.Builder

	b.WriteString(entry.StartTime.Format("2006-01-02 15:04"))
	if entry.IsRunning() {
		b.WriteString("  [running]       ")
	} else {
		b.WriteString("  " + padRight(timeparse.Format(entry.DurationSeconds), 15))
	}

	if entry.ProjectRef != nil {
		b.WriteString(" " + *entry.ProjectRef)
	}
	if entry.IssueRef != nil {
		b.WriteString(" " + *entry.IssueRef)
	}
	if entry.Description != "" {
		b.WriteString("  " + entry.Description)
	}
	if len(entry.Tags) > 0 {
		b.WriteString("  [" + strings.Join(entry.Tags, ", ") + "]")
	}
	if entry.Billable {
		b.WriteString("  $")
	}

	return b.String()
}

func startOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
