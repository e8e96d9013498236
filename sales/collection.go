/*
collection.go - Typed view over one Backend collection

PURPOSE:
  Collection[T] binds a catalog record type to its Backend kind and
  provides the five store operations in typed form. It owns the JSON
  codec and identifier assignment; the Backend only ever sees opaque
  documents.

DEFENSIVE COPIES:
  Every record handed out is decoded from its stored document, so
  callers can never mutate store state through a returned value.
  Nested slices included - the decode allocates fresh memory.

UPDATE SEMANTICS:
  Update loads the current record, applies the caller's merge
  function (a typed patch), and replaces the document in place.
  Fields the patch does not mention are re-encoded from the decoded
  record and stay identical.

SEE ALSO:
  - store.go: the Backend contract underneath
  - service.go: per-kind methods wrapping these in the transport
*/
package sales

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/warp/sales-engine/catalog"
	"github.com/warp/sales-engine/ident"
)

// Collection provides typed CRUD over one Backend kind.
type Collection[T any] struct {
	kind    catalog.Kind
	backend Backend
	gen     *ident.Generator

	// name extracts the record identifier; rename returns a copy of
	// the record with a freshly assigned one. Both are value-in
	// value-out so Collection never aliases caller memory.
	name   func(T) string
	rename func(T, string) T
}

// NewCollection binds a record type to its kind.
func NewCollection[T any](kind catalog.Kind, backend Backend, gen *ident.Generator,
	name func(T) string, rename func(T, string) T) *Collection[T] {
	return &Collection[T]{kind: kind, backend: backend, gen: gen, name: name, rename: rename}
}

// List returns all records in insertion order.
func (c *Collection[T]) List(ctx context.Context) ([]T, error) {
	docs, err := c.backend.List(ctx, c.kind)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(docs))
	for _, doc := range docs {
		var rec T
		if err := json.Unmarshal(doc, &rec); err != nil {
			return nil, fmt.Errorf("decode %s document: %w", c.kind, err)
		}
		out = append(out, rec)
	}
	return out, nil
}

// Get returns the record, or (nil, nil) when the identifier is absent.
func (c *Collection[T]) Get(ctx context.Context, name string) (*T, error) {
	doc, err := c.backend.Get(ctx, c.kind, name)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, nil
	}
	var rec T
	if err := json.Unmarshal(doc, &rec); err != nil {
		return nil, fmt.Errorf("decode %s document: %w", c.kind, err)
	}
	return &rec, nil
}

// Create assigns a fresh identifier, appends the record, and returns
// the stored form.
func (c *Collection[T]) Create(ctx context.Context, rec T) (T, error) {
	var zero T
	rec = c.rename(rec, c.gen.Next(c.kind.Prefix()))
	doc, err := json.Marshal(rec)
	if err != nil {
		return zero, fmt.Errorf("encode %s document: %w", c.kind, err)
	}
	if err := c.backend.Insert(ctx, c.kind, c.name(rec), doc); err != nil {
		return zero, err
	}
	return rec, nil
}

// Update applies merge to the current record and replaces it in
// place. Fails with NotFound when the identifier does not exist.
func (c *Collection[T]) Update(ctx context.Context, name string, merge func(T) T) (T, error) {
	var zero T
	doc, err := c.backend.Get(ctx, c.kind, name)
	if err != nil {
		return zero, err
	}
	if doc == nil {
		return zero, &NotFoundError{Kind: c.kind, Name: name}
	}
	var rec T
	if err := json.Unmarshal(doc, &rec); err != nil {
		return zero, fmt.Errorf("decode %s document: %w", c.kind, err)
	}
	rec = merge(rec)
	next, err := json.Marshal(rec)
	if err != nil {
		return zero, fmt.Errorf("encode %s document: %w", c.kind, err)
	}
	if err := c.backend.Replace(ctx, c.kind, name, next); err != nil {
		return zero, err
	}
	return rec, nil
}

// Delete removes the record. Fails with NotFound when absent.
func (c *Collection[T]) Delete(ctx context.Context, name string) error {
	return c.backend.Delete(ctx, c.kind, name)
}

// Seed inserts a record keeping its existing identifier. Used by the
// demo dataset loader, which ships well-known names like "CUST-001".
func (c *Collection[T]) Seed(ctx context.Context, rec T) error {
	doc, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode %s document: %w", c.kind, err)
	}
	return c.backend.Insert(ctx, c.kind, c.name(rec), doc)
}
