package options

import "sync"

// Store is a mutex-protected option map shared between conversions.
// Callers read a snapshot per conversion; writes between conversions carry
// no ordering guarantee beyond mutual exclusion of the map itself.
type Store struct {
	mu   sync.RWMutex
	opts Set
}

// NewStore creates a Store seeded with a copy of initial.
func NewStore(initial Set) *Store {
	return &Store{opts: initial.Clone()}
}

// Get returns the value stored under key.
func (s *Store) Get(key string) (Value, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.opts[key]
	return v, ok
}

// GetAll returns a snapshot of every stored option.
func (s *Store) GetAll() Set {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.opts.Clone()
}

// Set stores value under key.
func (s *Store) Set(key string, value Value) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.opts == nil {
		s.opts = make(Set)
	}
	s.opts[key] = value
}

// Reset replaces the stored options with a copy of opts.
func (s *Store) Reset(opts Set) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.opts = opts.Clone()
}
