package validation

import (
	"regexp"
	"strings"
	"time"
)

// Validator provides common validation utilities
type Validator struct {
	ownerIDRegex *regexp.Regexp
	tagRegex     *regexp.Regexp
}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{
		ownerIDRegex: regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9._@\-]*$`),
		tagRegex:     regexp.MustCompile(`^[a-z0-9][a-z0-9\-]*$`),
	}
}

// IsNonEmptyString checks if a string is not empty after trimming whitespace
func (v *Validator) IsNonEmptyString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsValidStringLength checks if a string length is within the specified range
func (v *Validator) IsValidStringLength(s string, min, max int) bool {
	length := len(strings.TrimSpace(s))
	return length >= min && length <= max
}

// IsValidOwnerID checks if an owner identifier contains only allowed characters
func (v *Validator) IsValidOwnerID(ownerID string) bool {
	return v.ownerIDRegex.MatchString(ownerID)
}

// IsValidTag checks if a tag is lowercase alphanumeric with hyphens
func (v *Validator) IsValidTag(tag string) bool {
	return v.tagRegex.MatchString(tag)
}

// IsValidTimeRange checks if start time is before end time
func (v *Validator) IsValidTimeRange(startTime time.Time, endTime *time.Time) bool {
	if endTime == nil {
		return true // Running entry, no end time
	}
	return startTime.Before(*endTime)
}

// IsValidEntryID checks if an entry ID is valid (positive)
func (v *Validator) IsValidEntryID(id int64) bool {
	return id > 0
}

// IsReasonableDate checks if a date is within reasonable bounds
func (v *Validator) IsReasonableDate(t time.Time) bool {
	now := time.Now()
	// Allow dates from 10 years ago to 1 year in the future
	tenYearsAgo := now.AddDate(-10, 0, 0)
	oneYearFromNow := now.AddDate(1, 0, 0)

	return t.After(tenYearsAgo) && t.Before(oneYearFromNow)
}

// IsValidDateRange checks if a date range is logical
func (v *Validator) IsValidDateRange(startTime, endTime *time.Time) bool {
	if startTime == nil || endTime == nil {
		return true // One or both dates are nil, which is valid for open-ended ranges
	}
	return startTime.Before(*endTime) || startTime.Equal(*endTime)
}

// TrimAndValidateString trims whitespace and returns the cleaned string
func (v *Validator) TrimAndValidateString(s string) string {
	return strings.TrimSpace(s)
}
