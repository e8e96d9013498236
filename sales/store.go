/*
store.go - Storage interface for entity collections

PURPOSE:
  Defines the contract between the typed service layer and the
  document storage underneath. Records are stored as JSON documents
  keyed by (kind, name); each kind is an independent, insertion-
  ordered collection. Different implementations can keep documents in
  process memory or in SQLite.

ORDERING CONTRACT:
  List returns documents in insertion order. Updates replace a
  document in place and do not move it; deletes remove it without
  reordering the rest. Two List calls with no intervening mutation
  return identical sequences.

ISOLATION CONTRACT:
  Returned byte slices are owned by the caller; implementations must
  not retain or reuse them. Collections of different kinds are fully
  independent - no operation touches more than one kind.

IMPLEMENTATIONS:
  - store/memory: map + ordered slice, the default
  - store/sqlite: single documents table, ":memory:" by default

SEE ALSO:
  - collection.go: typed access on top of this interface
  - errors.go: NotFound semantics implementations must honor
*/
package sales

import (
	"context"

	"github.com/warp/sales-engine/catalog"
)

// Backend stores one insertion-ordered document collection per entity
// kind. All implementations must be safe for concurrent use.
type Backend interface {
	// List returns all documents of the kind in insertion order.
	List(ctx context.Context, kind catalog.Kind) ([][]byte, error)

	// Get returns the document or (nil, nil) when absent. Absence is
	// a normal result here, not an error.
	Get(ctx context.Context, kind catalog.Kind, name string) ([]byte, error)

	// Insert appends a new document. The name must not already exist.
	Insert(ctx context.Context, kind catalog.Kind, name string, doc []byte) error

	// Replace overwrites an existing document in place, preserving its
	// position. Returns NotFoundError if the name does not exist.
	Replace(ctx context.Context, kind catalog.Kind, name string, doc []byte) error

	// Delete removes a document. Returns NotFoundError if absent.
	Delete(ctx context.Context, kind catalog.Kind, name string) error

	// Reset drops every collection. Used by scenario loading only.
	Reset(ctx context.Context) error
}
