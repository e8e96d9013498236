/*
Package memory provides the in-memory Backend implementation.

PURPOSE:
  The default storage for the sales engine: one ordered document list
  per entity kind, guarded by a single RWMutex. State lives for the
  process lifetime only and vanishes on restart, which is exactly the
  contract the engine promises.

ORDERING:
  Each kind keeps a slice in insertion order plus a name index for
  O(1) lookups. Replace swaps the document at its existing position;
  Delete splices it out without disturbing the rest.

COPY DISCIPLINE:
  Documents are copied on the way in and on the way out. Callers can
  never reach internal buffers through returned values.

SEE ALSO:
  - sales/store.go: the Backend contract
  - store/sqlite: the SQLite-backed alternative
*/
package memory

import (
	"context"
	"sync"

	"github.com/warp/sales-engine/catalog"
	"github.com/warp/sales-engine/sales"
)

type collection struct {
	order []string          // names in insertion order
	docs  map[string][]byte // name -> document
}

func newCollection() *collection {
	return &collection{docs: make(map[string][]byte)}
}

// Store is the in-memory Backend.
type Store struct {
	mu    sync.RWMutex
	kinds map[catalog.Kind]*collection
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{kinds: make(map[catalog.Kind]*collection)}
}

func (s *Store) collectionLocked(kind catalog.Kind) *collection {
	c, ok := s.kinds[kind]
	if !ok {
		c = newCollection()
		s.kinds[kind] = c
	}
	return c
}

// List returns copies of all documents of the kind in insertion order.
func (s *Store) List(_ context.Context, kind catalog.Kind) ([][]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.kinds[kind]
	if !ok {
		return nil, nil
	}
	out := make([][]byte, 0, len(c.order))
	for _, name := range c.order {
		out = append(out, clone(c.docs[name]))
	}
	return out, nil
}

// Get returns a copy of the document, or nil when absent.
func (s *Store) Get(_ context.Context, kind catalog.Kind, name string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.kinds[kind]
	if !ok {
		return nil, nil
	}
	doc, ok := c.docs[name]
	if !ok {
		return nil, nil
	}
	return clone(doc), nil
}

// Insert appends a new document.
func (s *Store) Insert(_ context.Context, kind catalog.Kind, name string, doc []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.collectionLocked(kind)
	if _, exists := c.docs[name]; exists {
		return sales.ErrDuplicateName
	}
	c.order = append(c.order, name)
	c.docs[name] = clone(doc)
	return nil
}

// Replace overwrites an existing document, keeping its position.
func (s *Store) Replace(_ context.Context, kind catalog.Kind, name string, doc []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.kinds[kind]
	if !ok {
		return &sales.NotFoundError{Kind: kind, Name: name}
	}
	if _, exists := c.docs[name]; !exists {
		return &sales.NotFoundError{Kind: kind, Name: name}
	}
	c.docs[name] = clone(doc)
	return nil
}

// Delete removes a document.
func (s *Store) Delete(_ context.Context, kind catalog.Kind, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.kinds[kind]
	if !ok {
		return &sales.NotFoundError{Kind: kind, Name: name}
	}
	if _, exists := c.docs[name]; !exists {
		return &sales.NotFoundError{Kind: kind, Name: name}
	}
	delete(c.docs, name)
	for i, n := range c.order {
		if n == name {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return nil
}

// Reset drops every collection.
func (s *Store) Reset(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.kinds = make(map[catalog.Kind]*collection)
	return nil
}

func clone(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
