package store

import "sync"

// Store is the key/value record store API the generated persistence methods
// target. Records are addressed by (type name, id). Get yields a nil record
// on miss, not an error.
type Store interface {
	Get(typeName, id string) (*Entity, error)
	Set(typeName, id string, e *Entity) error
	Remove(typeName, id string) error
}

// MemStore is an in-memory Store, used by tests and tooling. It is safe for
// concurrent use.
type MemStore struct {
	mu      sync.RWMutex
	records map[string]map[string]*Entity
}

// NewMemStore returns an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{records: make(map[string]map[string]*Entity)}
}

// Get returns a snapshot of the record under (typeName, id), or nil if none
// exists.
func (s *MemStore) Get(typeName, id string) (*Entity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.records[typeName][id]
	if !ok {
		return nil, nil
	}

	return e.clone(), nil
}

// Set stores a snapshot of the record under (typeName, id), replacing any
// existing record.
func (s *MemStore) Set(typeName, id string, e *Entity) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	byID, ok := s.records[typeName]
	if !ok {
		byID = make(map[string]*Entity)
		s.records[typeName] = byID
	}

	byID[id] = e.clone()

	return nil
}

// Remove deletes the record under (typeName, id). Removing a missing record
// is not an error.
func (s *MemStore) Remove(typeName, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.records[typeName], id)

	return nil
}
