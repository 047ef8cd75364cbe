package collection

import (
	"sort"
	"strings"

	"github.com/princewidd/widhi-productivity-hub/internal/idgen"
	"github.com/princewidd/widhi-productivity-hub/internal/models"
	"github.com/princewidd/widhi-productivity-hub/internal/store"
)

// Tasks manages the task collection.
type Tasks struct {
	store store.Store
	items []models.Task
}

// NewTasks loads any previously persisted tasks from s and returns the
// manager. A missing or unreadable store entry starts the collection empty.
func NewTasks(s store.Store) *Tasks {
	t := &Tasks{store: s}
	s.Load(store.CollectionTasks, &t.items)
	return t
}

// Create validates title, subject, and deadline, appends a new todo task,
// and persists the collection. The returned task carries a fresh id.
func (t *Tasks) Create(title, subject, deadline string) (models.Task, error) {
	title = strings.TrimSpace(title)
	subject = strings.TrimSpace(subject)
	if title == "" || subject == "" {
		return models.Task{}, ErrEmptyField
	}
	if _, err := models.ParseDate(deadline); err != nil {
		return models.Task{}, ErrBadDate
	}

	task := models.Task{
		ID:       idgen.Next(),
		Title:    title,
		Subject:  subject,
		Deadline: deadline,
		Status:   models.StatusTodo,
		Files:    []models.Attachment{},
	}
	t.items = append(t.items, task)
	return task, t.persist()
}

// TaskUpdate describes a partial update. Nil fields are left unchanged.
type TaskUpdate struct {
	Title    *string
	Subject  *string
	Deadline *string
	Status   *models.TaskStatus
}

// Update merges upd into the task with the given id and persists. An
// unknown id is a silent no-op.
func (t *Tasks) Update(id int64, upd TaskUpdate) error {
	for i := range t.items {
		if t.items[i].ID != id {
			continue
		}
		if upd.Title != nil {
			t.items[i].Title = *upd.Title
		}
		if upd.Subject != nil {
			t.items[i].Subject = *upd.Subject
		}
		if upd.Deadline != nil {
			t.items[i].Deadline = *upd.Deadline
		}
		if upd.Status != nil {
			t.items[i].Status = *upd.Status
		}
		return t.persist()
	}
	return nil
}

// Delete removes the task with the given id and persists. An unknown id
// is a silent no-op, which makes Delete idempotent.
func (t *Tasks) Delete(id int64) error {
	for i := range t.items {
		if t.items[i].ID == id {
			t.items = append(t.items[:i], t.items[i+1:]...)
			return t.persist()
		}
	}
	return nil
}

// Get returns the task with the given id, if present.
func (t *Tasks) Get(id int64) (models.Task, bool) {
	for _, task := range t.items {
		if task.ID == id {
			return task, true
		}
	}
	return models.Task{}, false
}

// List returns a derived view: tasks filtered by subject (empty string
// means all), sorted with todo before done and ties broken by ascending
// deadline. The view is recomputed on every call and never aliases the
// source collection.
func (t *Tasks) List(subject string) []models.Task {
	out := make([]models.Task, 0, len(t.items))
	for _, task := range t.items {
		if subject != "" && task.Subject != subject {
			continue
		}
		out = append(out, task)
	}

	statusOrder := func(s models.TaskStatus) int {
		if s == models.StatusDone {
			return 1
		}
		return 0
	}
	sort.SliceStable(out, func(i, j int) bool {
		si, sj := statusOrder(out[i].Status), statusOrder(out[j].Status)
		if si != sj {
			return si < sj
		}
		// YYYY-MM-DD compares chronologically as a string.
		return out[i].Deadline < out[j].Deadline
	})
	return out
}

// Subjects returns the distinct subjects in insertion order, for filter
// option rebuilding.
func (t *Tasks) Subjects() []string {
	seen := make(map[string]bool, len(t.items))
	var out []string
	for _, task := range t.items {
		if !seen[task.Subject] {
			seen[task.Subject] = true
			out = append(out, task.Subject)
		}
	}
	return out
}

// AddAttachment appends att to the task's attachment list and persists.
// An unknown id is a silent no-op.
func (t *Tasks) AddAttachment(id int64, att models.Attachment) error {
	for i := range t.items {
		if t.items[i].ID == id {
			t.items[i].Files = append(t.items[i].Files, att)
			return t.persist()
		}
	}
	return nil
}

// RemoveAttachment drops the attachment at index from the task's list and
// persists. Unknown ids and out-of-range indexes are silent no-ops.
func (t *Tasks) RemoveAttachment(id int64, index int) error {
	for i := range t.items {
		if t.items[i].ID != id {
			continue
		}
		files := t.items[i].Files
		if index < 0 || index >= len(files) {
			return nil
		}
		t.items[i].Files = append(files[:index], files[index+1:]...)
		return t.persist()
	}
	return nil
}

// All returns a copy of the collection in insertion order.
func (t *Tasks) All() []models.Task {
	out := make([]models.Task, len(t.items))
	copy(out, t.items)
	return out
}

// Replace substitutes the whole collection, keeping the given ids
// verbatim, and persists. Used by restore in replace mode.
func (t *Tasks) Replace(items []models.Task) error {
	t.items = append([]models.Task(nil), items...)
	return t.persist()
}

// Adopt appends pre-built records (ids already assigned by the caller)
// and persists once. Used by restore in merge mode.
func (t *Tasks) Adopt(items []models.Task) error {
	t.items = append(t.items, items...)
	return t.persist()
}

func (t *Tasks) persist() error {
	return t.store.Save(store.CollectionTasks, t.items)
}
