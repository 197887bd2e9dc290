// Package store is a small namespaced key-value store for per-space UI
// state (pane layout, chat layout, view mode). Values are opaque JSON blobs
// keyed by (space ID, key) and written through to disk synchronously, so
// callers never batch or flush.
package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"dochub/internal/logger"
)

// Store persists JSON-serializable values namespaced by space ID.
type Store struct {
	mu       sync.RWMutex
	filePath string
	data     map[string]map[string]json.RawMessage
}

// Open loads the store from path, creating an empty store if the file does
// not exist. A corrupt file is discarded rather than surfaced: layout state
// is always recoverable from defaults.
func Open(path string) (*Store, error) {
	s := &Store{
		filePath: path,
		data:     make(map[string]map[string]json.RawMessage),
	}

	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(raw, &s.data); err != nil {
		logger.Warn("Store: discarding corrupt state file %s: %v", path, err)
		s.data = make(map[string]map[string]json.RawMessage)
	}
	if s.data == nil {
		s.data = make(map[string]map[string]json.RawMessage)
	}
	return s, nil
}

// Get unmarshals the value for (spaceID, key) into out. Returns false when
// the key is absent or the stored blob does not unmarshal into out; a
// malformed blob is treated the same as a missing one.
func (s *Store) Get(spaceID, key string, out interface{}) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ns, ok := s.data[spaceID]
	if !ok {
		return false
	}
	raw, ok := ns[key]
	if !ok {
		return false
	}
	if err := json.Unmarshal(raw, out); err != nil {
		logger.Warn("Store: malformed value for %s/%s: %v", spaceID, key, err)
		return false
	}
	return true
}

// Set stores the value for (spaceID, key) and writes the file immediately.
func (s *Store) Set(spaceID, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ns, ok := s.data[spaceID]
	if !ok {
		ns = make(map[string]json.RawMessage)
		s.data[spaceID] = ns
	}
	ns[key] = raw

	return s.save()
}

// Delete removes the value for (spaceID, key). No-op if absent.
func (s *Store) Delete(spaceID, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ns, ok := s.data[spaceID]
	if !ok {
		return nil
	}
	if _, ok := ns[key]; !ok {
		return nil
	}
	delete(ns, key)
	if len(ns) == 0 {
		delete(s.data, spaceID)
	}
	return s.save()
}

// Clear removes all persisted state for every space.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data = make(map[string]map[string]json.RawMessage)
	return s.save()
}

// save writes the store to disk. Callers must hold mu.
func (s *Store) save() error {
	if err := os.MkdirAll(filepath.Dir(s.filePath), 0755); err != nil {
		return err
	}
	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.filePath, raw, 0644)
}
