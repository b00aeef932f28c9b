package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/julianstephens/habitual/internal/storage"
)

// fileFormat is the on-disk layout: every key maps to its raw JSON document.
type fileFormat struct {
	Version int                        `json:"version"`
	Data    map[string]json.RawMessage `json:"data"`
}

// Store keeps the whole namespace in a single JSON file that is rewritten
// on every change.
type Store struct {
	path string

	mu   sync.RWMutex
	data map[string]json.RawMessage
}

var _ storage.Provider = (*Store)(nil)

func New(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return s.Load()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.commit(make(map[string]json.RawMessage))
}

func (s *Store) Load() error {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'habitual init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	var f fileFormat
	if err := json.Unmarshal(raw, &f); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}
	if f.Data == nil {
		f.Data = make(map[string]json.RawMessage)
	}

	s.mu.Lock()
	s.data = f.Data
	s.mu.Unlock()
	return nil
}

func (s *Store) Close() error {
	return nil
}

// commit writes data to disk and only then makes it the in-memory state,
// so a failed write leaves both unchanged. Callers must hold the write lock.
func (s *Store) commit(data map[string]json.RawMessage) error {
	if err := s.save(data); err != nil {
		return err
	}
	s.data = data
	return nil
}

// staged returns a copy of the current data to apply a change to.
func (s *Store) staged() map[string]json.RawMessage {
	data := make(map[string]json.RawMessage, len(s.data)+1)
	for k, v := range s.data {
		data[k] = v
	}
	return data
}

// save writes to a temporary file and renames it over the target.
func (s *Store) save(data map[string]json.RawMessage) error {
	out, err := json.MarshalIndent(fileFormat{Version: 1, Data: data}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, out, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("failed to write storage: %w", err)
	}
	return nil
}

func (s *Store) loaded() error {
	if s.data == nil {
		return fmt.Errorf("storage not loaded")
	}
	return nil
}

func (s *Store) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.loaded(); err != nil {
		return nil, err
	}
	v, ok := s.data[key]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return append([]byte(nil), v...), nil
}

func (s *Store) Set(_ context.Context, key string, value []byte) error {
	if !json.Valid(value) {
		return fmt.Errorf("value for %s is not valid JSON", key)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.loaded(); err != nil {
		return err
	}
	data := s.staged()
	data[key] = append(json.RawMessage(nil), value...)
	return s.commit(data)
}

func (s *Store) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.loaded(); err != nil {
		return err
	}
	if _, ok := s.data[key]; !ok {
		return nil
	}
	data := s.staged()
	delete(data, key)
	return s.commit(data)
}

func (s *Store) Keys(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.loaded(); err != nil {
		return nil, err
	}
	keys := make([]string, 0, len(s.data))
	for k := range s.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

func (s *Store) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.loaded(); err != nil {
		return err
	}
	return s.commit(make(map[string]json.RawMessage))
}

func (s *Store) GetConfigPath() string {
	return s.path
}
