// Package models defines the core record types for the four collections
// and the attachment descriptor owned by tasks. Field tags follow the
// exchange format used for local persistence and backup documents.
package models

import (
	"fmt"
	"time"
)

// DateLayout is the calendar-date layout used throughout the exchange
// format (deadlines, expense dates, note modification dates).
const DateLayout = "2006-01-02"

// ClockLayout is the wall-clock layout used for schedule start/end times.
const ClockLayout = "15:04"

// TaskStatus is the completion state of a task.
type TaskStatus string

const (
	// StatusTodo marks a task as still open.
	StatusTodo TaskStatus = "todo"
	// StatusDone marks a task as completed. Tasks may move back to todo.
	StatusDone TaskStatus = "done"
)

// Attachment is a file reference owned by exactly one task. The URL is an
// opaque server locator; Filename is the server-assigned stored name and
// is required to delete the file remotely.
type Attachment struct {
	// Name is the display name, the file's original name at upload time.
	Name string `json:"name"`
	// URL locates the stored file on the attachment service.
	URL string `json:"url"`
	// Filename is the server-assigned stored filename.
	Filename string `json:"filename"`
	// Size is the file size in bytes as reported by the server.
	Size int64 `json:"size"`
}

// Task is a deadline-bound work item grouped by subject.
type Task struct {
	ID       int64        `json:"id"`
	Title    string       `json:"title"`
	Subject  string       `json:"subject"`
	Deadline string       `json:"deadline"` // YYYY-MM-DD, may be in the past
	Status   TaskStatus   `json:"status"`
	Files    []Attachment `json:"files"`
}

// Schedule is a weekly recurring class slot. Day follows time.Weekday
// numbering (0 = Sunday). A schedule has no calendar date; the slot
// repeats every week.
type Schedule struct {
	ID      int64  `json:"id"`
	Subject string `json:"subject"`
	Day     int    `json:"day"`
	Start   string `json:"start"` // HH:MM
	End     string `json:"end"`   // HH:MM, strictly after Start
	Room    string `json:"room,omitempty"`
	// ReminderMinutes is the notification lead time before Start.
	// Zero means no reminder.
	ReminderMinutes int `json:"reminderMinutes,omitempty"`
}

// Expense is a single spending record. Amount is in the smallest currency
// unit and is always positive.
type Expense struct {
	ID          int64  `json:"id"`
	Amount      int64  `json:"amount"`
	Category    string `json:"category"`
	Date        string `json:"date"` // YYYY-MM-DD
	Description string `json:"description,omitempty"`
}

// Note is a freeform text record. Date is the last-modified date and is
// refreshed on every edit.
type Note struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Category string `json:"category"`
	Body     string `json:"body"`
	Date     string `json:"date"` // YYYY-MM-DD
}

// ParseDate parses a YYYY-MM-DD exchange-format date.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// ParseClock parses an HH:MM wall-clock string and returns minutes since
// midnight.
func ParseClock(s string) (int, error) {
	t, err := time.Parse(ClockLayout, s)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}

// FormatClock renders minutes since midnight as a zero-padded HH:MM
// string, the stored form for schedule times. Padded strings compare
// chronologically, which the schedule sort relies on.
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
