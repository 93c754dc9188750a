package timeparse

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"timeclock/internal/errors"
)

// ErrInvalidDuration is returned when duration text cannot be parsed or
// does not describe a positive amount of time.
var ErrInvalidDuration = errors.NewInputError("INVALID_DURATION", "duration must be a positive amount of time (e.g. 1:30, 1.5, 1h 30m, 90m)")

var (
	colonPattern   = regexp.MustCompile(`^(\d+):(\d{1,2})(?::(\d{1,2}))?$`)
	decimalPattern = regexp.MustCompile(`^\d+(?:\.\d+)?$`)
	// Alternatives ordered longest-first: Go regexp alternation is
	// leftmost-first, so "h" before "hr" would strand the "r".
	unitTokenPattern = regexp.MustCompile(`^(\d+(?:\.\d+)?)\s*(hours|hour|hrs|hr|h|minutes|minute|mins|min|m|seconds|second|secs|sec|s)\s*`)
)

var unitSeconds = map[string]float64{
	"h": 3600, "hr": 3600, "hrs": 3600, "hour": 3600, "hours": 3600,
	"m": 60, "min": 60, "mins": 60, "minute": 60, "minutes": 60,
	"s": 1, "sec": 1, "secs": 1, "second": 1, "seconds": 1,
}

// Parse converts free-form duration text into a whole-second count.
//
// Grammars are tried in order, first match wins:
//  1. colon form: "1:30" (hours:minutes) or "1:30:15" (hours:minutes:seconds)
//  2. decimal hours: "1.5"
//  3. compound unit form: "1h 30m", "2hrs", "45 min"
//  4. bare minutes: "90m" (a one-token compound form)
//
// Empty or whitespace-only input is invalid, not zero.
func Parse(text string) (int64, error) {
	trimmed := strings.ToLower(strings.TrimSpace(text))
	if trimmed == "" {
		return 0, ErrInvalidDuration
	}

	if m := colonPattern.FindStringSubmatch(trimmed); m != nil {
		return parseColonForm(m)
	}

	if decimalPattern.MatchString(trimmed) {
		hours, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return 0, ErrInvalidDuration
		}
		return int64(math.Round(hours * 3600)), nil
	}

	return parseCompoundForm(trimmed)
}

func parseColonForm(match []string) (int64, error) {
	hours, err := strconv.Atoi(match[1])
	if err != nil {
		return 0, ErrInvalidDuration
	}
	minutes, err := strconv.Atoi(match[2])
	if err != nil {
		return 0, ErrInvalidDuration
	}
	seconds := 0
	if match[3] != "" {
		seconds, err = strconv.Atoi(match[3])
		if err != nil {
			return 0, ErrInvalidDuration
		}
	}
	if minutes > 59 || seconds > 59 {
		return 0, ErrInvalidDuration
	}
	return int64(hours)*3600 + int64(minutes)*60 + int64(seconds), nil
}

func parseCompoundForm(text string) (int64, error) {
	total := 0.0
	rest := text
	for rest != "" {
		m := unitTokenPattern.FindStringSubmatch(rest)
		if m == nil {
			return 0, ErrInvalidDuration
		}
		value, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return 0, ErrInvalidDuration
		}
		total += value * unitSeconds[m[2]]
		rest = strings.TrimSpace(rest[len(m[0]):])
	}
	return int64(math.Round(total)), nil
}

// Format renders a second count as human-readable duration text, e.g.
// "1h 30m", "2h", "45m". A seconds token is appended only when the count is
// not a whole number of minutes, so Parse(Format(s)) == s for all s >= 0.
func Format(seconds int64) string {
	if seconds < 0 {
		seconds = 0
	}
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	secs := seconds % 60

	parts := make([]string, 0, 3)
	if hours > 0 {
		parts = append(parts, strconv.FormatInt(hours, 10)+"h")
	}
	if minutes > 0 {
		parts = append(parts, strconv.FormatInt(minutes, 10)+"m")
	}
	if secs > 0 {
		parts = append(parts, strconv.FormatInt(secs, 10)+"s")
	}
	if len(parts) == 0 {
		return "0m"
	}
	return strings.Join(parts, " ")
}
