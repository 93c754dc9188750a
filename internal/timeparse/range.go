package timeparse

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"timeclock/internal/errors"
)

// ErrMissingTimeRange is returned when a start or end clock time is absent.
var ErrMissingTimeRange = errors.NewInputError("MISSING_TIME_RANGE", "both a start time and an end time are required")

// ErrInvalidRange is returned when the clock times are present but do not
// describe a positive span within the day.
var ErrInvalidRange = errors.NewInputError("INVALID_RANGE", "end time must be after start time")

var clockPattern = regexp.MustCompile(`^(\d{1,2}):(\d{2})(?::(\d{2}))?$`)

// ParseClock parses a wall-clock time like "09:00" or "17:30:15".
func ParseClock(clock string) (hour, minute, second int, err error) {
	m := clockPattern.FindStringSubmatch(strings.TrimSpace(clock))
	if m == nil {
		return 0, 0, 0, ErrInvalidRange
	}
	hour, _ = strconv.Atoi(m[1])
	minute, _ = strconv.Atoi(m[2])
	if m[3] != "" {
		second, _ = strconv.Atoi(m[3])
	}
	if hour > 23 || minute > 59 || second > 59 {
		return 0, 0, 0, ErrInvalidRange
	}
	return hour, minute, second, nil
}

// ResolveRange combines a calendar date with two clock times on that date
// into absolute start and end timestamps.
//
// Spans crossing midnight are not supported: an end clock at or before the
// start clock is rejected rather than wrapped to the next day.
func ResolveRange(date time.Time, startClock, endClock string) (start, end time.Time, err error) {
	if strings.TrimSpace(startClock) == "" || strings.TrimSpace(endClock) == "" {
		return time.Time{}, time.Time{}, ErrMissingTimeRange
	}

	sh, sm, ss, err := ParseClock(startClock)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	eh, em, es, err := ParseClock(endClock)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	year, month, day := date.Date()
	start = time.Date(year, month, day, sh, sm, ss, 0, date.Location())
	end = time.Date(year, month, day, eh, em, es, 0, date.Location())

	if !end.After(start) {
		return time.Time{}, time.Time{}, ErrInvalidRange
	}
	return start, end, nil
}
