package collection_test

import "encoding/json"

// memStore is an in-memory store.Store used across the collection tests.
// Save keeps the serialized document so tests can assert what would hit
// disk; Load decodes it back.
type memStore struct {
	saved   map[string][]byte
	markers map[string]bool
	saveErr error
}

func newMemStore() *memStore {
	return &memStore{
		saved:   make(map[string][]byte),
		markers: make(map[string]bool),
	}
}

func (m *memStore) Save(collection string, records any) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	b, err := json.Marshal(records)
	if err != nil {
		return err
	}
	m.saved[collection] = b
	return nil
}

func (m *memStore) Load(collection string, dest any) bool {
	b, ok := m.saved[collection]
	if !ok {
		return false
	}
	return json.Unmarshal(b, dest) == nil
}

func (m *memStore) SetMarker(key string) error {
	m.markers[key] = true
	return nil
}

func (m *memStore) HasMarker(key string) bool {
	return m.markers[key]
}
