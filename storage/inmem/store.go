package inmem

import (
	"sync"

	"scolarium/core"
	"scolarium/storage"
)

// Store keeps the document in memory behind the storage.Store contract.
// Used by tests and anywhere a durable backend is not wanted.
type Store struct {
	mu  sync.RWMutex
	doc *core.AppData
}

var _ storage.Store = (*Store)(nil)

func Open() *Store {
	return &Store{}
}

func (s *Store) Load() core.AppData {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.doc == nil {
		return core.DefaultAppData()
	}
	doc := s.doc.Clone()
	doc.Normalize()
	return doc
}

func (s *Store) Save(doc core.AppData) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := doc.Clone()
	s.doc = &cp
}

func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc = nil
}

func (s *Store) UpdateField(field core.Field, value interface{}) (core.AppData, error) {
	doc := s.Load()
	if err := field.Set(&doc, value); err != nil {
		return core.AppData{}, err
	}
	s.Save(doc)
	return doc, nil
}
