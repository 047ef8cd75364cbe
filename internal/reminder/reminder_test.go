package reminder_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/princewidd/widhi-productivity-hub/internal/collection"
	"github.com/princewidd/widhi-productivity-hub/internal/models"
	"github.com/princewidd/widhi-productivity-hub/internal/reminder"
	"github.com/princewidd/widhi-productivity-hub/internal/store"
)

type capture struct {
	fired []models.Schedule
}

func (c *capture) Notify(s models.Schedule, _ time.Duration) {
	c.fired = append(c.fired, s)
}

func newScanner(t *testing.T) (*reminder.Scanner, *collection.Schedules, *capture) {
	t.Helper()
	st, err := store.NewFileStore(t.TempDir())
	require.NoError(t, err)
	schedules := collection.NewSchedules(st)
	got := &capture{}
	return reminder.NewScanner(schedules, st, got, zap.NewNop()), schedules, got
}

// 2025-03-12 is a Wednesday.
func wednesdayAt(hour, minute int) time.Time {
	return time.Date(2025, 3, 12, hour, minute, 0, 0, time.UTC)
}

func TestScan_FiresInsideWindow(t *testing.T) {
	scanner, schedules, got := newScanner(t)
	_, err := schedules.Create("calculus", 3, "10:00", "11:40", "", 30)
	require.NoError(t, err)

	scanner.Scan(wednesdayAt(9, 30))

	require.Len(t, got.fired, 1)
	assert.Equal(t, "calculus", got.fired[0].Subject)
}

func TestScan_WindowIsOneMinuteWide(t *testing.T) {
	cases := []struct {
		name  string
		at    time.Time
		fires bool
	}{
		{"one minute early", wednesdayAt(9, 29), true},
		{"exact", wednesdayAt(9, 30), true},
		{"one minute late", wednesdayAt(9, 31), true},
		{"two minutes early", wednesdayAt(9, 28), false},
		{"two minutes late", wednesdayAt(9, 32), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			scanner, schedules, got := newScanner(t)
			_, err := schedules.Create("calculus", 3, "10:00", "11:40", "", 30)
			require.NoError(t, err)

			scanner.Scan(tc.at)

			assert.Equal(t, tc.fires, len(got.fired) == 1)
		})
	}
}

func TestScan_OncePerDay(t *testing.T) {
	scanner, schedules, got := newScanner(t)
	_, err := schedules.Create("calculus", 3, "10:00", "11:40", "", 30)
	require.NoError(t, err)

	scanner.Scan(wednesdayAt(9, 29))
	scanner.Scan(wednesdayAt(9, 30))
	scanner.Scan(wednesdayAt(9, 31))

	assert.Len(t, got.fired, 1)

	// A week later the marker carries a new date, so it fires again.
	scanner.Scan(wednesdayAt(9, 30).AddDate(0, 0, 7))
	assert.Len(t, got.fired, 2)
}

func TestScan_SkipsOtherDays(t *testing.T) {
	scanner, schedules, got := newScanner(t)
	_, err := schedules.Create("calculus", 1, "10:00", "11:40", "", 30)
	require.NoError(t, err)

	scanner.Scan(wednesdayAt(9, 30))

	assert.Empty(t, got.fired)
}

func TestScan_SkipsEntriesWithoutLead(t *testing.T) {
	scanner, schedules, got := newScanner(t)
	_, err := schedules.Create("calculus", 3, "10:00", "11:40", "", 0)
	require.NoError(t, err)

	scanner.Scan(wednesdayAt(10, 0))

	assert.Empty(t, got.fired)
}

func TestScan_SeesSchedulesAddedAfterStart(t *testing.T) {
	st, err := store.NewFileStore(t.TempDir())
	require.NoError(t, err)
	watched := collection.NewSchedules(st)
	got := &capture{}
	scanner := reminder.NewScanner(watched, st, got, zap.NewNop())

	// Another manager over the same store adds an entry while the
	// scanner is already running.
	other := collection.NewSchedules(st)
	_, err = other.Create("calculus", 3, "10:00", "11:40", "", 30)
	require.NoError(t, err)

	scanner.Scan(wednesdayAt(9, 30))

	require.Len(t, got.fired, 1)
	assert.Equal(t, "calculus", got.fired[0].Subject)
}

func TestScan_MarkerSurvivesRestart(t *testing.T) {
	st, err := store.NewFileStore(t.TempDir())
	require.NoError(t, err)
	schedules := collection.NewSchedules(st)
	_, err = schedules.Create("calculus", 3, "10:00", "11:40", "", 30)
	require.NoError(t, err)

	first := &capture{}
	reminder.NewScanner(schedules, st, first, zap.NewNop()).Scan(wednesdayAt(9, 30))
	require.Len(t, first.fired, 1)

	// Fresh scanner over the same store, same minute: marker already set.
	second := &capture{}
	reminder.NewScanner(collection.NewSchedules(st), st, second, zap.NewNop()).Scan(wednesdayAt(9, 30))
	assert.Empty(t, second.fired)
}
