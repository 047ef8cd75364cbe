package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	_ "modernc.org/sqlite"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS collections (
    name TEXT PRIMARY KEY,
    data TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS markers (
    key TEXT PRIMARY KEY
);
`

// SQLiteStore keeps every collection as one JSON document in a key-value
// table, with a second table for fired-reminder markers.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (or creates) the database file at path and ensures the
// schema exists.
func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	if _, err := db.Exec(sqliteSchema); err != nil {
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// NewSQLiteStore wraps an existing database handle. The schema must
// already exist.
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// Close releases the underlying database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Save serializes records and upserts them under the collection name.
func (s *SQLiteStore) Save(collection string, records any) error {
	b, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", collection, err)
	}
	_, err = s.db.Exec(`
		INSERT INTO collections (name, data) VALUES (?, ?)
		ON CONFLICT(name) DO UPDATE SET data = excluded.data
	`, collection, string(b))
	if err != nil {
		return fmt.Errorf("save %s: %w", collection, err)
	}
	return nil
}

// Load decodes the stored document into dest. A missing row, query error,
// or corrupt document reports false and leaves dest untouched.
func (s *SQLiteStore) Load(collection string, dest any) bool {
	var data string
	err := s.db.QueryRow(`SELECT data FROM collections WHERE name = ?`, collection).Scan(&data)
	if err != nil {
		return false
	}
	return json.Unmarshal([]byte(data), dest) == nil
}

// SetMarker records a fired-reminder marker key. Recording the same key
// twice is a no-op.
func (s *SQLiteStore) SetMarker(key string) error {
	if _, err := s.db.Exec(`INSERT OR IGNORE INTO markers (key) VALUES (?)`, key); err != nil {
		return fmt.Errorf("set marker: %w", err)
	}
	return nil
}

// HasMarker reports whether the marker key has been recorded.
func (s *SQLiteStore) HasMarker(key string) bool {
	var one int
	err := s.db.QueryRow(`SELECT 1 FROM markers WHERE key = ?`, key).Scan(&one)
	return err == nil
}
