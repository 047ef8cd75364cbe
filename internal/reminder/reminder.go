// Package reminder scans the weekly schedule once a minute and fires a
// notification shortly before each class starts. Fired reminders are
// recorded in the store so a restart within the same day does not fire
// them again.
package reminder

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/princewidd/widhi-productivity-hub/internal/collection"
	"github.com/princewidd/widhi-productivity-hub/internal/models"
	"github.com/princewidd/widhi-productivity-hub/internal/store"
)

// Notifier delivers a reminder for a schedule entry.
type Notifier interface {
	Notify(s models.Schedule, startsIn time.Duration)
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(s models.Schedule, startsIn time.Duration)

func (f NotifierFunc) Notify(s models.Schedule, startsIn time.Duration) { f(s, startsIn) }

// Scanner walks the schedule collection and fires due reminders.
type Scanner struct {
	schedules *collection.Schedules
	store     store.Store
	notifier  Notifier
	log       *zap.Logger
}

func NewScanner(schedules *collection.Schedules, st store.Store, n Notifier, log *zap.Logger) *Scanner {
	return &Scanner{schedules: schedules, store: st, notifier: n, log: log}
}

// Scan fires every reminder due at now. A reminder is due when the entry
// is scheduled for today and now falls within a minute of the entry's
// start time minus its lead. Each entry fires at most once per calendar
// day, tracked by a persisted marker. The collection is reloaded from the
// store first so entries added by another process are seen.
func (sc *Scanner) Scan(now time.Time) {
	sc.schedules.Reload()

	today := int(now.Weekday())
	minuteOfDay := now.Hour()*60 + now.Minute()

	for _, s := range sc.schedules.All() {
		if s.ReminderMinutes <= 0 || s.Day != today {
			continue
		}
		startMin, err := models.ParseClock(s.Start)
		if err != nil {
			continue
		}

		remindAt := startMin - s.ReminderMinutes
		diff := minuteOfDay - remindAt
		if diff < -1 || diff > 1 {
			continue
		}

		key := markerKey(s.ID, now)
		if sc.store.HasMarker(key) {
			continue
		}
		if err := sc.store.SetMarker(key); err != nil {
			sc.log.Error("persist reminder marker", zap.Int64("schedule", s.ID), zap.Error(err))
		}

		sc.notifier.Notify(s, time.Duration(startMin-minuteOfDay)*time.Minute)
		sc.log.Info("reminder fired",
			zap.Int64("schedule", s.ID),
			zap.String("subject", s.Subject),
			zap.String("start", s.Start))
	}
}

func markerKey(id int64, now time.Time) string {
	return fmt.Sprintf("reminder_%d_%s", id, now.Format(models.DateLayout))
}
