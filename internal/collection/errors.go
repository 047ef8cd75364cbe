// Package collection implements the four record collections (tasks,
// schedules, expenses, notes). Each manager owns one in-memory ordered
// collection, persists it through a store.Store after every mutation, and
// computes derived filtered/sorted views on demand.
//
// Update and Delete of an unknown id are silent no-ops; callers rely on
// idempotent deletes, so this must not be turned into an error.
package collection

import "errors"

// Validation errors returned by Create/Update.
var (
	// ErrEmptyField signals a required field that is empty after trimming.
	ErrEmptyField = errors.New("required field is empty")
	// ErrBadDate signals a date that does not parse as YYYY-MM-DD.
	ErrBadDate = errors.New("invalid date, expected YYYY-MM-DD")
	// ErrBadClock signals a time that does not parse as HH:MM.
	ErrBadClock = errors.New("invalid time, expected HH:MM")
	// ErrBadDay signals a day-of-week outside 0..6.
	ErrBadDay = errors.New("day of week must be 0 (Sunday) through 6 (Saturday)")
	// ErrInvalidTimeRange signals a schedule whose start is not before its end.
	ErrInvalidTimeRange = errors.New("start time must be before end time")
	// ErrNonPositiveAmount signals an expense amount that is not positive.
	ErrNonPositiveAmount = errors.New("amount must be positive")
)
