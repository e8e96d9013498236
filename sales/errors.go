/*
errors.go - Error taxonomy for the sales engine

PURPOSE:
  The engine defines exactly two caller-visible failure kinds:

  1. NotFound  - update/delete referenced an identifier that is not
                 in the targeted collection. Defined here.
  2. Transient - injected by the simulated transport before the store
                 operation ran. Defined in netsim (ErrTransient).

  Both are recoverable; neither corrupts store state. Everything else
  (backend I/O, codec failures) is an internal fault wrapped with
  context and surfaced as-is.

USAGE:
  if sales.IsNotFound(err) { ... render 404 ... }
  if netsim.IsTransient(err) { ... offer retry ... }

SEE ALSO:
  - netsim/transport.go: ErrTransient and IsTransient
  - store/memory, store/sqlite: backends returning NotFoundError
*/
package sales

import (
	"errors"
	"fmt"

	"github.com/warp/sales-engine/catalog"
)

// ErrNotFound is the sentinel for a missing identifier. Use with
// errors.Is; backends return the structured NotFoundError wrapping it.
var ErrNotFound = errors.New("record not found")

// ErrDuplicateName is returned by Insert when the identifier already
// exists in the collection. With random identifiers this is
// practically unreachable outside seed data mistakes.
var ErrDuplicateName = errors.New("duplicate record name")

// NotFoundError carries which collection and identifier missed.
type NotFoundError struct {
	Kind catalog.Kind
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.Name)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// IsNotFound reports whether err indicates a missing record.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
