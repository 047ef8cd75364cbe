package collection

import (
	"sort"
	"strings"

	"github.com/princewidd/widhi-productivity-hub/internal/idgen"
	"github.com/princewidd/widhi-productivity-hub/internal/models"
	"github.com/princewidd/widhi-productivity-hub/internal/store"
)

// Schedules manages the weekly class schedule collection.
type Schedules struct {
	store store.Store
	items []models.Schedule
}

// NewSchedules loads any previously persisted schedules from s.
func NewSchedules(s store.Store) *Schedules {
	sc := &Schedules{store: s}
	s.Load(store.CollectionSchedules, &sc.items)
	return sc
}

// Create validates the slot and appends it. Start must parse, end must
// parse, and start must be strictly before end; on any validation error
// the collection is left unchanged. Times are stored zero-padded so the
// list sort can compare them as strings. Room and reminderMinutes are
// optional (empty / zero).
func (sc *Schedules) Create(subject string, day int, start, end, room string, reminderMinutes int) (models.Schedule, error) {
	subject = strings.TrimSpace(subject)
	if subject == "" {
		return models.Schedule{}, ErrEmptyField
	}
	if day < 0 || day > 6 {
		return models.Schedule{}, ErrBadDay
	}
	startMin, err := models.ParseClock(start)
	if err != nil {
		return models.Schedule{}, ErrBadClock
	}
	endMin, err := models.ParseClock(end)
	if err != nil {
		return models.Schedule{}, ErrBadClock
	}
	if startMin >= endMin {
		return models.Schedule{}, ErrInvalidTimeRange
	}
	if reminderMinutes < 0 {
		reminderMinutes = 0
	}

	schedule := models.Schedule{
		ID:              idgen.Next(),
		Subject:         subject,
		Day:             day,
		Start:           models.FormatClock(startMin),
		End:             models.FormatClock(endMin),
		Room:            strings.TrimSpace(room),
		ReminderMinutes: reminderMinutes,
	}
	sc.items = append(sc.items, schedule)
	return schedule, sc.persist()
}

// Delete removes the schedule with the given id and persists. An unknown
// id is a silent no-op.
func (sc *Schedules) Delete(id int64) error {
	for i := range sc.items {
		if sc.items[i].ID == id {
			sc.items = append(sc.items[:i], sc.items[i+1:]...)
			return sc.persist()
		}
	}
	return nil
}

// List returns the schedules sorted by day-of-week ascending, ties broken
// by start time. The view is recomputed on every call.
func (sc *Schedules) List() []models.Schedule {
	out := make([]models.Schedule, len(sc.items))
	copy(out, sc.items)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Day != out[j].Day {
			return out[i].Day < out[j].Day
		}
		return out[i].Start < out[j].Start
	})
	return out
}

// Reload re-reads the persisted collection, picking up writes made by
// another process. A missing or unreadable store entry keeps the current
// in-memory items.
func (sc *Schedules) Reload() {
	var items []models.Schedule
	if sc.store.Load(store.CollectionSchedules, &items) {
		sc.items = items
	}
}

// All returns a copy of the collection in insertion order.
func (sc *Schedules) All() []models.Schedule {
	out := make([]models.Schedule, len(sc.items))
	copy(out, sc.items)
	return out
}

// Replace substitutes the whole collection verbatim and persists.
func (sc *Schedules) Replace(items []models.Schedule) error {
	sc.items = append([]models.Schedule(nil), items...)
	return sc.persist()
}

// Adopt appends pre-built records and persists once.
func (sc *Schedules) Adopt(items []models.Schedule) error {
	sc.items = append(sc.items, items...)
	return sc.persist()
}

func (sc *Schedules) persist() error {
	return sc.store.Save(store.CollectionSchedules, sc.items)
}
