package validation

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timeclock/internal/domain"
)

func TestTimeEntryValidator_ValidateOwnerID(t *testing.T) {
	validator := NewTimeEntryValidator()

	assert.NoError(t, validator.ValidateOwnerID("alice"))
	assert.NoError(t, validator.ValidateOwnerID("alice@example.com"))

	err := validator.ValidateOwnerID("")
	require.Error(t, err)
	assert.True(t, IsValidationError(err))

	err = validator.ValidateOwnerID("bad owner")
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
}

func TestTimeEntryValidator_ValidateTimeEntryForCreation(t *testing.T) {
	validator := NewTimeEntryValidator()
	start := time.Now().Add(-2 * time.Hour)
	end := start.Add(time.Hour)
	beforeStart := start.Add(-time.Hour)

	t.Run("Valid completed entry", func(t *testing.T) {
		assert.NoError(t, validator.ValidateTimeEntryForCreation("alice", start, &end))
	})

	t.Run("Valid running entry", func(t *testing.T) {
		assert.NoError(t, validator.ValidateTimeEntryForCreation("alice", start, nil))
	})

	t.Run("Zero start time", func(t *testing.T) {
		err := validator.ValidateTimeEntryForCreation("alice", time.Time{}, nil)
		require.Error(t, err)
		validationErr := err.(*ValidationError)
		assert.NotEmpty(t, validationErr.GetFieldErrors("start_time"))
	})

	t.Run("End before start", func(t *testing.T) {
		err := validator.ValidateTimeEntryForCreation("alice", start, &beforeStart)
		require.Error(t, err)
		validationErr := err.(*ValidationError)
		assert.NotEmpty(t, validationErr.GetFieldErrors("time_range"))
	})

	t.Run("Missing owner collects with other errors", func(t *testing.T) {
		err := validator.ValidateTimeEntryForCreation("", time.Time{}, nil)
		require.Error(t, err)
		validationErr := err.(*ValidationError)
		assert.GreaterOrEqual(t, len(validationErr.Errors), 2)
	})
}

func TestTimeEntryValidator_ValidateTimeEntry(t *testing.T) {
	validator := NewTimeEntryValidator()
	start := time.Now().Add(-2 * time.Hour)
	end := start.Add(time.Hour)

	t.Run("Valid entry", func(t *testing.T) {
		entry := domain.TimeEntry{
			OwnerID:     "alice",
			StartTime:   start,
			EndTime:     &end,
			Description: "code review",
			Tags:        []string{"review"},
		}
		assert.NoError(t, validator.ValidateTimeEntry(entry))
	})

	t.Run("Oversized description", func(t *testing.T) {
		entry := domain.TimeEntry{
			OwnerID:     "alice",
			StartTime:   start,
			EndTime:     &end,
			Description: strings.Repeat("x", descriptionMaxLength+1),
		}
		err := validator.ValidateTimeEntry(entry)
		require.Error(t, err)
		validationErr := err.(*ValidationError)
		assert.NotEmpty(t, validationErr.GetFieldErrors("description"))
	})

	t.Run("Invalid tag", func(t *testing.T) {
		entry := domain.TimeEntry{
			OwnerID:   "alice",
			StartTime: start,
			EndTime:   &end,
			Tags:      []string{"OK-tag", "review"},
		}
		err := validator.ValidateTimeEntry(entry)
		require.Error(t, err)
		validationErr := err.(*ValidationError)
		assert.NotEmpty(t, validationErr.GetFieldErrors("tag"))
	})
}

func TestTimeEntryValidator_ValidateSearchOptions(t *testing.T) {
	validator := NewTimeEntryValidator()
	start := time.Now().Add(-48 * time.Hour)
	end := time.Now()
	owner := "alice"
	emptyProject := "  "

	t.Run("Valid options", func(t *testing.T) {
		opts := domain.SearchOptions{OwnerID: &owner, StartTime: &start, EndTime: &end}
		assert.NoError(t, validator.ValidateSearchOptions(opts))
	})

	t.Run("Empty options", func(t *testing.T) {
		assert.NoError(t, validator.ValidateSearchOptions(domain.SearchOptions{}))
	})

	t.Run("Reversed range", func(t *testing.T) {
		opts := domain.SearchOptions{StartTime: &end, EndTime: &start}
		err := validator.ValidateSearchOptions(opts)
		require.Error(t, err)
	})

	t.Run("Blank project filter", func(t *testing.T) {
		opts := domain.SearchOptions{ProjectRef: &emptyProject}
		err := validator.ValidateSearchOptions(opts)
		require.Error(t, err)
	})
}

func TestTimeEntryValidator_ValidateTimeEntryID(t *testing.T) {
	validator := NewTimeEntryValidator()

	assert.NoError(t, validator.ValidateTimeEntryID(1))
	assert.Error(t, validator.ValidateTimeEntryID(0))
	assert.Error(t, validator.ValidateTimeEntryID(-5))
}
