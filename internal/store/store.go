// Package store persists the four collections to a durable local store,
// keyed by collection name, in the JSON exchange format. Two backends are
// provided: a plain JSON-file directory and a SQLite key-value table.
//
// Loads fail soft: a missing or unparseable value is treated as "no data"
// and leaves the destination untouched, so a collection simply starts
// empty. Saves overwrite the prior value wholesale.
package store

// Collection names, used as storage keys.
const (
	CollectionTasks     = "tasks"
	CollectionSchedules = "schedules"
	CollectionExpenses  = "expenses"
	CollectionNotes     = "notes"
)

// Store is the persistence contract shared by the collection managers and
// the reminder scanner.
type Store interface {
	// Save serializes records to the exchange format and writes it under
	// the given collection name, replacing any prior value.
	Save(collection string, records any) error

	// Load reads the value stored under the collection name into dest and
	// reports whether prior data was decoded. Missing or corrupt data
	// leaves dest untouched and returns false; Load never fails.
	Load(collection string, dest any) bool

	// SetMarker records a fired-reminder marker key.
	SetMarker(key string) error

	// HasMarker reports whether the marker key has been recorded.
	HasMarker(key string) bool
}
