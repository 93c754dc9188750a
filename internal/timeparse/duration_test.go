package timeparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timeclock/internal/errors"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int64
	}{
		{"Colon form hours and minutes", "1:30", 5400},
		{"Colon form with seconds", "1:30:15", 5415},
		{"Colon form zero minutes", "2:00", 7200},
		{"Colon form single digit minute", "1:5", 3900},
		{"Decimal hours", "1.5", 5400},
		{"Decimal hours whole", "2", 7200},
		{"Decimal hours small fraction", "0.25", 900},
		{"Compound hours and minutes", "1h 30m", 5400},
		{"Compound without spaces", "1h30m", 5400},
		{"Compound hours only", "2h", 7200},
		{"Compound long units", "2 hours 15 minutes", 8100},
		{"Compound hrs", "2hrs", 7200},
		{"Bare minutes", "90m", 5400},
		{"Bare minutes with unit word", "45 min", 2700},
		{"Seconds unit", "90s", 90},
		{"Mixed with seconds", "1h 30m 5s", 5405},
		{"Fractional unit value", "1.5h", 5400},
		{"Uppercase input", "1H 30M", 5400},
		{"Surrounding whitespace", "  1:30  ", 5400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"Empty string", ""},
		{"Whitespace only", "   "},
		{"Plain text", "abc"},
		{"Minutes out of range", "1:75"},
		{"Seconds out of range", "1:30:99"},
		{"Trailing garbage", "1hx"},
		{"Unit without value", "h"},
		{"Negative number", "-1:30"},
		{"Unknown unit", "3 days"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidDuration)
		})
	}
}

func TestParse_GrammarPrecedence(t *testing.T) {
	// "1:30" must resolve via the colon grammar, not as anything else,
	// and "90" is decimal hours, not minutes.
	got, err := Parse("90")
	require.NoError(t, err)
	assert.Equal(t, int64(90*3600), got)

	got, err = Parse("90m")
	require.NoError(t, err)
	assert.Equal(t, int64(90*60), got)
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		seconds  int64
		expected string
	}{
		{"Hours and minutes", 5400, "1h 30m"},
		{"Whole hours", 7200, "2h"},
		{"Minutes only", 2700, "45m"},
		{"Zero", 0, "0m"},
		{"Negative clamps to zero", -10, "0m"},
		{"Leftover seconds", 5405, "1h 30m 5s"},
		{"Seconds only", 59, "59s"},
		{"Hours and seconds", 3601, "1h 1s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Format(tt.seconds))
		})
	}
}

func TestFormat_RoundTrip(t *testing.T) {
	// Formatted output must parse back to the exact same second count.
	seconds := []int64{0, 1, 59, 60, 61, 899, 900, 3599, 3600, 3661, 5400, 5405, 86399, 100000}
	for _, s := range seconds {
		got, err := Parse(Format(s))
		require.NoError(t, err, "Format(%d) = %q did not parse", s, Format(s))
		assert.Equal(t, s, got, "round trip of %d via %q", s, Format(s))
	}
}

func TestParse_ErrorShape(t *testing.T) {
	_, err := Parse("nonsense")
	appErr, ok := errors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, errors.ErrorTypeInvalidInput, appErr.Type)
	assert.Equal(t, "INVALID_DURATION", appErr.Code)
}
