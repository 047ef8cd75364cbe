package collection

import (
	"sort"
	"strings"
	"time"

	"github.com/princewidd/widhi-productivity-hub/internal/idgen"
	"github.com/princewidd/widhi-productivity-hub/internal/models"
	"github.com/princewidd/widhi-productivity-hub/internal/store"
)

// Notes manages the freeform note collection.
type Notes struct {
	store store.Store
	items []models.Note
}

// NewNotes loads any previously persisted notes from s.
func NewNotes(s store.Store) *Notes {
	n := &Notes{store: s}
	s.Load(store.CollectionNotes, &n.items)
	return n
}

// Create validates that title, category, and body are non-empty, appends
// the note stamped with now's date, and persists.
func (n *Notes) Create(title, category, body string, now time.Time) (models.Note, error) {
	title = strings.TrimSpace(title)
	category = strings.TrimSpace(category)
	body = strings.TrimSpace(body)
	if title == "" || category == "" || body == "" {
		return models.Note{}, ErrEmptyField
	}

	note := models.Note{
		ID:       idgen.Next(),
		Title:    title,
		Category: category,
		Body:     body,
		Date:     now.Format(models.DateLayout),
	}
	n.items = append(n.items, note)
	return note, n.persist()
}

// NoteUpdate describes a partial update. Nil fields are left unchanged.
type NoteUpdate struct {
	Title    *string
	Category *string
	Body     *string
}

// Update merges upd into the note with the given id, refreshes its
// last-modified date to now, and persists. An unknown id is a silent
// no-op.
func (n *Notes) Update(id int64, upd NoteUpdate, now time.Time) error {
	for i := range n.items {
		if n.items[i].ID != id {
			continue
		}
		if upd.Title != nil {
			n.items[i].Title = *upd.Title
		}
		if upd.Category != nil {
			n.items[i].Category = *upd.Category
		}
		if upd.Body != nil {
			n.items[i].Body = *upd.Body
		}
		n.items[i].Date = now.Format(models.DateLayout)
		return n.persist()
	}
	return nil
}

// Delete removes the note with the given id and persists. An unknown id
// is a silent no-op.
func (n *Notes) Delete(id int64) error {
	for i := range n.items {
		if n.items[i].ID == id {
			n.items = append(n.items[:i], n.items[i+1:]...)
			return n.persist()
		}
	}
	return nil
}

// Get returns the note with the given id, if present.
func (n *Notes) Get(id int64) (models.Note, bool) {
	for _, note := range n.items {
		if note.ID == id {
			return note, true
		}
	}
	return models.Note{}, false
}

// List returns notes filtered by category (empty string means all) and by
// a case-insensitive substring match against title or body, sorted by
// last-modified date descending. The view is recomputed on every call.
func (n *Notes) List(category, search string) []models.Note {
	search = strings.ToLower(search)
	out := make([]models.Note, 0, len(n.items))
	for _, note := range n.items {
		if category != "" && note.Category != category {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(note.Title), search) &&
			!strings.Contains(strings.ToLower(note.Body), search) {
			continue
		}
		out = append(out, note)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date > out[j].Date
	})
	return out
}

// Categories returns the distinct note categories in insertion order,
// for filter option rebuilding.
func (n *Notes) Categories() []string {
	seen := make(map[string]bool, len(n.items))
	var out []string
	for _, note := range n.items {
		if !seen[note.Category] {
			seen[note.Category] = true
			out = append(out, note.Category)
		}
	}
	return out
}

// All returns a copy of the collection in insertion order.
func (n *Notes) All() []models.Note {
	out := make([]models.Note, len(n.items))
	copy(out, n.items)
	return out
}

// Replace substitutes the whole collection verbatim and persists.
func (n *Notes) Replace(items []models.Note) error {
	n.items = append([]models.Note(nil), items...)
	return n.persist()
}

// Adopt appends pre-built records and persists once.
func (n *Notes) Adopt(items []models.Note) error {
	n.items = append(n.items, items...)
	return n.persist()
}

func (n *Notes) persist() error {
	return n.store.Save(store.CollectionNotes, n.items)
}
