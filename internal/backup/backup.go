// Package backup implements the exchange document: a single JSON file
// carrying every collection, importable either as a full replacement or
// as a merge into existing data.
package backup

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/princewidd/widhi-productivity-hub/internal/collection"
	"github.com/princewidd/widhi-productivity-hub/internal/models"
)

// Version identifies the exchange document format.
const Version = "1.0"

// ImportMode selects how an imported document combines with existing data.
type ImportMode string

const (
	// ModeReplace discards current data and installs the document verbatim.
	ModeReplace ImportMode = "replace"
	// ModeMerge appends imported records, re-keyed to avoid id collisions.
	ModeMerge ImportMode = "merge"
)

var (
	// ErrBadDocument reports a document missing one of the collection keys.
	ErrBadDocument = errors.New("backup: not a valid export document")
	// ErrBadMode reports an unknown import mode.
	ErrBadMode = errors.New("backup: unknown import mode")
)

// Document is the exchange format written by Export and read by Import.
type Document struct {
	Tasks      []models.Task     `json:"tasks"`
	Schedules  []models.Schedule `json:"schedules"`
	Expenses   []models.Expense  `json:"expenses"`
	Notes      []models.Note     `json:"notes"`
	ExportDate string            `json:"exportDate"`
	Version    string            `json:"version"`
}

// Engine snapshots and restores the four collection managers as a unit.
type Engine struct {
	tasks     *collection.Tasks
	schedules *collection.Schedules
	expenses  *collection.Expenses
	notes     *collection.Notes
}

func NewEngine(t *collection.Tasks, s *collection.Schedules, e *collection.Expenses, n *collection.Notes) *Engine {
	return &Engine{tasks: t, schedules: s, expenses: e, notes: n}
}

// Export snapshots every collection into a document stamped with now.
func (e *Engine) Export(now time.Time) Document {
	return Document{
		Tasks:      e.tasks.All(),
		Schedules:  e.schedules.All(),
		Expenses:   e.expenses.All(),
		Notes:      e.notes.All(),
		ExportDate: now.UTC().Format(time.RFC3339),
		Version:    Version,
	}
}

// ExportJSON renders the export document as indented JSON.
func (e *Engine) ExportJSON(now time.Time) ([]byte, error) {
	raw, err := json.MarshalIndent(e.Export(now), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("export document: %w", err)
	}
	return raw, nil
}

// Import applies raw export-document bytes to the collections. A document
// missing any of the four collection keys is rejected wholesale and no
// collection is touched. Replace installs the imported records with their
// ids unchanged. Merge shifts every imported id by a single offset taken
// from now, so records imported together stay distinct from existing ones
// and from each other.
func (e *Engine) Import(raw []byte, mode ImportMode, now time.Time) error {
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(raw, &keys); err != nil {
		return fmt.Errorf("%w: %v", ErrBadDocument, err)
	}
	for _, key := range []string{"tasks", "schedules", "expenses", "notes"} {
		if _, ok := keys[key]; !ok {
			return fmt.Errorf("%w: missing %q", ErrBadDocument, key)
		}
	}

	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("%w: %v", ErrBadDocument, err)
	}

	switch mode {
	case ModeReplace:
		if err := e.tasks.Replace(doc.Tasks); err != nil {
			return err
		}
		if err := e.schedules.Replace(doc.Schedules); err != nil {
			return err
		}
		if err := e.expenses.Replace(doc.Expenses); err != nil {
			return err
		}
		return e.notes.Replace(doc.Notes)

	case ModeMerge:
		offset := now.UnixMilli()
		for i := range doc.Tasks {
			doc.Tasks[i].ID += offset
		}
		for i := range doc.Schedules {
			doc.Schedules[i].ID += offset
		}
		for i := range doc.Expenses {
			doc.Expenses[i].ID += offset
		}
		for i := range doc.Notes {
			doc.Notes[i].ID += offset
		}
		if err := e.tasks.Adopt(doc.Tasks); err != nil {
			return err
		}
		if err := e.schedules.Adopt(doc.Schedules); err != nil {
			return err
		}
		if err := e.expenses.Adopt(doc.Expenses); err != nil {
			return err
		}
		return e.notes.Adopt(doc.Notes)

	default:
		return fmt.Errorf("%w: %q", ErrBadMode, mode)
	}
}
