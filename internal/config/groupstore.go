package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// GroupStore holds the target group id with durable storage. Telegram can
// migrate a group to a new chat id at any time; the replacement id must
// survive restarts, so Set writes it back to disk before returning.
type GroupStore struct {
	mu   sync.RWMutex
	path string
	id   int64
}

type groupFile struct {
	GroupID int64 `json:"group_id"`
}

// OpenGroupStore loads the stored group id from path, falling back to seed
// when no file exists yet
func OpenGroupStore(path string, seed int64) (*GroupStore, error) {
	store := &GroupStore{path: path, id: seed}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return store, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read group id file: %w", err)
	}

	var file groupFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse group id file %s: %w", path, err)
	}
	if file.GroupID == 0 {
		return nil, fmt.Errorf("group id file %s holds no group id", path)
	}

	store.id = file.GroupID
	return store, nil
}

// Current returns the group id in effect
func (s *GroupStore) Current() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.id
}

// Set replaces the group id and persists it atomically (temp file + rename)
func (s *GroupStore) Set(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(groupFile{GroupID: id})
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), "group_id-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp group id file: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write group id file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace group id file: %w", err)
	}

	s.id = id
	return nil
}
