package reconcile

import (
	"time"

	"timeclock/internal/domain"
	"timeclock/internal/errors"
	"timeclock/internal/timeparse"
)

// ErrMissingDate is returned when a log mode is selected without a date.
var ErrMissingDate = errors.NewInputError("MISSING_DATE", "a date is required")

// Input errors surfaced by the underlying parsers, re-exported so callers
// can match every reconciliation failure from one package.
var (
	ErrInvalidDuration  = timeparse.ErrInvalidDuration
	ErrMissingTimeRange = timeparse.ErrMissingTimeRange
	ErrInvalidRange     = timeparse.ErrInvalidRange
)

// DefaultBackdateEndHour is the local wall-clock hour (5:00 PM) that anchors
// duration-mode entries logged for a past date.
const DefaultBackdateEndHour = 17

// CanonicalEntry is the normalized result produced regardless of the input
// mode: absolute start and end timestamps and the derived duration.
type CanonicalEntry struct {
	StartTime       time.Time
	EndTime         time.Time
	DurationSeconds int64
}

// Resolution is the outcome of reconciling one input. Either StartTimer is
// set (timer mode, the caller must issue the start command) or Entry holds
// the canonical triple to persist.
type Resolution struct {
	StartTimer bool
	Entry      *CanonicalEntry
}

// Reconciler turns mode-specific inputs into canonical time entries. It is
// pure: validation failures have no side effects, and the clock is passed
// in by the caller.
type Reconciler struct {
	backdateEndHour int
}

// NewReconciler creates a reconciler with the default backdate anchor.
func NewReconciler() *Reconciler {
	return &Reconciler{backdateEndHour: DefaultBackdateEndHour}
}

// NewReconcilerWithEndHour creates a reconciler anchoring backdated
// duration entries at the given local hour.
func NewReconcilerWithEndHour(hour int) *Reconciler {
	return &Reconciler{backdateEndHour: hour}
}

// Reconcile validates the input and produces a resolution.
//
// Timer mode resolves to a start command; whether the owner may start is
// decided by the store when the command executes, not here. Duration mode
// anchors the end time at now for today's date and at the backdate hour for
// past dates, then derives the start time. Time-range mode uses the
// resolved absolute timestamps directly.
func (r *Reconciler) Reconcile(input Input, now time.Time) (*Resolution, error) {
	switch in := input.(type) {
	case TimerInput:
		return &Resolution{StartTimer: true}, nil

	case DurationInput:
		return r.reconcileDuration(in, now)

	case TimeRangeInput:
		return r.reconcileTimeRange(in)

	default:
		return nil, errors.NewInvalidInputError("entry_mode", input, "unknown entry mode")
	}
}

func (r *Reconciler) reconcileDuration(in DurationInput, now time.Time) (*Resolution, error) {
	if in.Date.IsZero() {
		return nil, ErrMissingDate
	}

	seconds, err := timeparse.Parse(in.Duration)
	if err != nil {
		return nil, err
	}
	if seconds <= 0 {
		return nil, ErrInvalidDuration
	}

	end := r.anchorEndTime(in.Date, now)
	start := end.Add(-time.Duration(seconds) * time.Second)

	return &Resolution{Entry: &CanonicalEntry{
		StartTime:       start,
		EndTime:         end,
		DurationSeconds: seconds,
	}}, nil
}

func (r *Reconciler) reconcileTimeRange(in TimeRangeInput) (*Resolution, error) {
	if in.Date.IsZero() {
		return nil, ErrMissingDate
	}

	start, end, err := timeparse.ResolveRange(in.Date, in.StartClock, in.EndClock)
	if err != nil {
		return nil, err
	}

	return &Resolution{Entry: &CanonicalEntry{
		StartTime:       start,
		EndTime:         end,
		DurationSeconds: domain.DurationSecondsBetween(start, end),
	}}, nil
}

// anchorEndTime picks the canonical end time for a duration-mode entry:
// now when the date is today, otherwise the backdate hour on that date.
func (r *Reconciler) anchorEndTime(date, now time.Time) time.Time {
	if sameDay(date, now) {
		return now
	}
	year, month, day := date.Date()
	return time.Date(year, month, day, r.backdateEndHour, 0, 0, 0, date.Location())
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
