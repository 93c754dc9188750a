package cli

import (
	"time"

	"github.com/tj/go-naturaldate"

	"timeclock/internal/api"
	"timeclock/internal/errors"
)

// EntryFlags carries the descriptive flags shared by every command that
// records time
type EntryFlags struct {
	Project  string
	Issue    string
	Activity string
	Tags     []string
	Billable bool
}

// toDetails converts the flags to API entry details, falling back to the
// configured defaults for activity
func (f EntryFlags) toDetails(app *App, description string) api.EntryDetails {
	activity := f.Activity
	if activity == "" {
		activity = app.config.Entry.DefaultActivity
	}

	details := api.EntryDetails{
		Description: description,
		Activity:    activity,
		Tags:        f.Tags,
		Billable:    f.Billable,
	}
	if f.Project != "" {
		project := f.Project
		details.ProjectRef = &project
	}
	if f.Issue != "" {
		issue := f.Issue
		details.IssueRef = &issue
	}
	return details
}

// parseDate resolves a date argument into a calendar date. ISO dates
// ("2026-09-01") are tried first, then natural language ("today",
// "yesterday", "last monday") anchored in the past.
func parseDate(s string, now time.Time) (time.Time, error) {
	if t, err := time.ParseInLocation("2006-01-02", s, now.Location()); err == nil {
		return t, nil
	}

	t, err := naturaldate.Parse(s, now, naturaldate.WithDirection(naturaldate.Past))
	if err != nil {
		return time.Time{}, errors.NewInvalidInputError("date", s, "expected an ISO date or natural language like 'today' or 'last monday'")
	}
	return t, nil
}
