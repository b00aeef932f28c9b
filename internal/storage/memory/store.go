// Package memory is a process-local storage provider used for tests and
// throwaway sessions.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/julianstephens/habitual/internal/storage"
)

type Store struct {
	mu   sync.RWMutex
	data map[string][]byte

	// FailWrites makes Set return the given error, for exercising write failures
	FailWrites error
	// FailReads makes Get return the given error
	FailReads error
}

var _ storage.Provider = (*Store)(nil)

func New() *Store {
	return &Store{data: make(map[string][]byte)}
}

func (s *Store) Init() error  { return nil }
func (s *Store) Load() error  { return nil }
func (s *Store) Close() error { return nil }

func (s *Store) Get(_ context.Context, key string) ([]byte, error) {
	if s.FailReads != nil {
		return nil, s.FailReads
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return append([]byte(nil), v...), nil
}

func (s *Store) Set(_ context.Context, key string, value []byte) error {
	if s.FailWrites != nil {
		return s.FailWrites
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = append([]byte(nil), value...)
	return nil
}

func (s *Store) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}

func (s *Store) Keys(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
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
	s.data = make(map[string][]byte)
	return nil
}

func (s *Store) GetConfigPath() string {
	return ":memory:"
}
