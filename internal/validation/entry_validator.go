package validation

import (
	"time"

	"timeclock/internal/domain"
)

const (
	descriptionMaxLength = 500
	ownerIDMaxLength     = 128
	tagMaxLength         = 64
)

// TimeEntryValidator provides validation for TimeEntry-related operations
type TimeEntryValidator struct {
	validator *Validator
}

// NewTimeEntryValidator creates a new time entry validator
func NewTimeEntryValidator() *TimeEntryValidator {
	return &TimeEntryValidator{
		validator: NewValidator(),
	}
}

// ValidateOwnerID validates an owner identifier
func (tev *TimeEntryValidator) ValidateOwnerID(ownerID string) error {
	validationError := NewValidationError()
	tev.validateOwnerInto(validationError, ownerID)
	if validationError.HasErrors() {
		return validationError
	}
	return nil
}

// ValidateTimeEntryForCreation validates a completed time entry before it is stored
func (tev *TimeEntryValidator) ValidateTimeEntryForCreation(ownerID string, startTime time.Time, endTime *time.Time) error {
	validationError := NewValidationError()

	tev.validateOwnerInto(validationError, ownerID)

	// Validate start time
	if startTime.IsZero() {
		validationError.AddRequiredError("start_time")
	} else if !tev.validator.IsReasonableDate(startTime) {
		validationError.AddInvalidValueError("start_time", startTime, "must be within reasonable date range")
	}

	// Validate end time if provided
	if endTime != nil {
		if !tev.validator.IsReasonableDate(*endTime) {
			validationError.AddInvalidValueError("end_time", *endTime, "must be within reasonable date range")
		}

		if !tev.validator.IsValidTimeRange(startTime, endTime) {
			validationError.AddInvalidRangeError("time_range", map[string]time.Time{
				"start": startTime,
				"end":   *endTime,
			}, "end time must be after start time")
		}
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// ValidateTimeEntry validates a domain.TimeEntry object
func (tev *TimeEntryValidator) ValidateTimeEntry(timeEntry domain.TimeEntry) error {
	validationError := NewValidationError()

	if !timeEntry.IsValid() {
		validationError.AddInvalidValueError("time_entry", timeEntry, "fails basic validation")
	}

	if entryErr := tev.ValidateTimeEntryForCreation(timeEntry.OwnerID, timeEntry.StartTime, timeEntry.EndTime); entryErr != nil {
		if entryValidationErr, ok := entryErr.(*ValidationError); ok {
			validationError.Errors = append(validationError.Errors, entryValidationErr.Errors...)
		}
	}

	if descErr := tev.validateDescription(timeEntry.Description); descErr != nil {
		validationError.Errors = append(validationError.Errors, descErr.Errors...)
	}

	if tagErr := tev.validateTags(timeEntry.Tags); tagErr != nil {
		validationError.Errors = append(validationError.Errors, tagErr.Errors...)
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// ValidateSearchOptions validates search options for time entries
func (tev *TimeEntryValidator) ValidateSearchOptions(opts domain.SearchOptions) error {
	validationError := NewValidationError()

	if opts.StartTime != nil {
		if !tev.validator.IsReasonableDate(*opts.StartTime) {
			validationError.AddInvalidValueError("start_time", *opts.StartTime, "must be within reasonable date range")
		}
	}

	if opts.EndTime != nil {
		if !tev.validator.IsReasonableDate(*opts.EndTime) {
			validationError.AddInvalidValueError("end_time", *opts.EndTime, "must be within reasonable date range")
		}
	}

	if !tev.validator.IsValidDateRange(opts.StartTime, opts.EndTime) {
		validationError.AddInvalidRangeError("date_range", map[string]interface{}{
			"start": opts.StartTime,
			"end":   opts.EndTime,
		}, "end time must be after or equal to start time")
	}

	if opts.OwnerID != nil {
		tev.validateOwnerInto(validationError, *opts.OwnerID)
	}

	if opts.ProjectRef != nil && !tev.validator.IsNonEmptyString(*opts.ProjectRef) {
		validationError.AddInvalidValueError("project_ref", *opts.ProjectRef, "must not be empty")
	}

	if opts.IssueRef != nil && !tev.validator.IsNonEmptyString(*opts.IssueRef) {
		validationError.AddInvalidValueError("issue_ref", *opts.IssueRef, "must not be empty")
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// ValidateTimeEntryID validates a time entry ID
func (tev *TimeEntryValidator) ValidateTimeEntryID(id int64) error {
	if !tev.validator.IsValidEntryID(id) {
		validationError := NewValidationError()
		validationError.AddInvalidValueError("time_entry_id", id, "must be a positive integer")
		return validationError
	}
	return nil
}

func (tev *TimeEntryValidator) validateOwnerInto(validationError *ValidationError, ownerID string) {
	trimmed := tev.validator.TrimAndValidateString(ownerID)
	if !tev.validator.IsNonEmptyString(trimmed) {
		validationError.AddRequiredError("owner_id")
		return
	}
	if !tev.validator.IsValidStringLength(trimmed, 1, ownerIDMaxLength) {
		validationError.AddInvalidLengthError("owner_id", ownerID, 1, ownerIDMaxLength)
	}
	if !tev.validator.IsValidOwnerID(trimmed) {
		validationError.AddInvalidCharacterError("owner_id", ownerID)
	}
}

func (tev *TimeEntryValidator) validateDescription(description string) *ValidationError {
	if description == "" {
		return nil
	}
	validationError := NewValidationError()
	if !tev.validator.IsValidStringLength(description, 0, descriptionMaxLength) {
		validationError.AddInvalidLengthError("description", description, 0, descriptionMaxLength)
	}
	if validationError.HasErrors() {
		return validationError
	}
	return nil
}

func (tev *TimeEntryValidator) validateTags(tags []string) *ValidationError {
	validationError := NewValidationError()
	for _, tag := range tags {
		if !tev.validator.IsValidStringLength(tag, 1, tagMaxLength) {
			validationError.AddInvalidLengthError("tag", tag, 1, tagMaxLength)
			continue
		}
		if !tev.validator.IsValidTag(tag) {
			validationError.AddInvalidCharacterError("tag", tag)
		}
	}
	if validationError.HasErrors() {
		return validationError
	}
	return nil
}
