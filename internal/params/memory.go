package params

import (
	"context"
	"fmt"
	"sync"

	apperrors "github.com/slackbridge/slackbridge/internal/errors"
)

// MemoryStore is an in-process Store used by tests and the local server.
type MemoryStore struct {
	mu          sync.RWMutex
	values      map[string]string
	writeErrors map[string]error
	readErr     error
	reads       int
	writes      int
}

// NewMemoryStore creates a MemoryStore seeded with full-name entries.
func NewMemoryStore(seed map[string]string) *MemoryStore {
	s := &MemoryStore{
		values:      make(map[string]string, len(seed)),
		writeErrors: make(map[string]error),
	}
	for k, v := range seed {
		s.values[k] = v
	}
	return s
}

// GetParamMap implements Store.
func (s *MemoryStore) GetParamMap(_ context.Context, prefix string) (map[string]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reads++
	if s.readErr != nil {
		return nil, apperrors.ErrStoreReadFailed("failed to read parameters under "+prefix, s.readErr)
	}

	out := make(map[string]string)
	for name, value := range s.values {
		if rel, ok := RelativeName(prefix, name); ok {
			out[rel] = value
		}
	}
	return out, nil
}

// PutParamMap implements Store.
func (s *MemoryStore) PutParamMap(_ context.Context, prefix string, values map[string]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	written := 0
	for _, key := range SortedKeys(values) {
		name := JoinName(prefix, key)
		if err, ok := s.writeErrors[name]; ok {
			return apperrors.ErrStoreWriteFailed(
				fmt.Sprintf("failed to write parameter %s after %d of %d entries", name, written, len(values)),
				err,
			)
		}
		s.values[name] = values[key]
		s.writes++
		written++
	}
	return nil
}

// FailWrite makes every later write of the full name fail with err.
func (s *MemoryStore) FailWrite(name string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.writeErrors[name] = err
}

// FailRead makes every later GetParamMap fail with err. A nil err clears it.
func (s *MemoryStore) FailRead(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.readErr = err
}

// Get returns the value stored under a full name.
func (s *MemoryStore) Get(name string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[name]
	return v, ok
}

// Snapshot returns a copy of every stored entry keyed by full name.
func (s *MemoryStore) Snapshot() map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]string, len(s.values))
	for k, v := range s.values {
		out[k] = v
	}
	return out
}

// Writes returns the number of successful single-entry writes.
func (s *MemoryStore) Writes() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.writes
}

// Reads returns the number of GetParamMap calls.
func (s *MemoryStore) Reads() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.reads
}
