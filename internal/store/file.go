package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

const markersFile = "markers.json"

// FileStore keeps each collection in its own JSON file under a directory,
// plus a markers file for fired-reminder keys.
type FileStore struct {
	dir string
	mu  sync.Mutex
}

// NewFileStore creates the directory if needed and returns a store rooted
// at it.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create store dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

// Save writes records as indented JSON to <dir>/<collection>.json,
// replacing any prior content.
func (fs *FileStore) Save(collection string, records any) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	b, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", collection, err)
	}
	if err := os.WriteFile(fs.path(collection+".json"), b, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", collection, err)
	}
	return nil
}

// Load decodes <dir>/<collection>.json into dest. A missing or corrupt
// file reports false and leaves dest untouched.
func (fs *FileStore) Load(collection string, dest any) bool {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	b, err := os.ReadFile(fs.path(collection + ".json"))
	if err != nil {
		return false
	}
	return json.Unmarshal(b, dest) == nil
}

// SetMarker records key in the markers file.
func (fs *FileStore) SetMarker(key string) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	markers := fs.readMarkers()
	markers[key] = true
	b, err := json.Marshal(markers)
	if err != nil {
		return fmt.Errorf("marshal markers: %w", err)
	}
	if err := os.WriteFile(fs.path(markersFile), b, 0o644); err != nil {
		return fmt.Errorf("write markers: %w", err)
	}
	return nil
}

// HasMarker reports whether key has been recorded.
func (fs *FileStore) HasMarker(key string) bool {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return fs.readMarkers()[key]
}

func (fs *FileStore) readMarkers() map[string]bool {
	markers := make(map[string]bool)
	if b, err := os.ReadFile(fs.path(markersFile)); err == nil {
		// A corrupt markers file degrades to firing reminders again.
		_ = json.Unmarshal(b, &markers)
	}
	return markers
}

func (fs *FileStore) path(name string) string {
	return filepath.Join(fs.dir, name)
}
