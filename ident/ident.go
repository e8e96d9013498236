/*
Package ident generates human-readable record identifiers.

PURPOSE:
  Produces identifiers of the form <PREFIX>-<RANDOM> where RANDOM is
  nine uppercase base36 characters (e.g. "SO-K3J9X2M1Q"). Uniqueness
  is probabilistic: 36^9 is large enough for a single-process demo
  backend. A production rewrite should switch to a monotonic counter
  or UUIDs and treat collision as a hard error.

DETERMINISM:
  The random source is injected, never a hidden global. Tests pass a
  fixed-seed *rand.Rand and get a reproducible identifier stream.

USAGE:
  gen := ident.New(rand.New(rand.NewSource(time.Now().UnixNano())))
  id := gen.Next("CUST") // "CUST-0H74QX3ZP"
*/
package ident

import (
	"math/rand"
	"strings"
	"sync"
)

const (
	alphabet  = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	suffixLen = 9
)

// Generator produces prefixed random identifiers from an injected
// random source. Safe for concurrent use.
type Generator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// New creates a Generator backed by the given random source.
func New(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

// Next returns a fresh identifier for the given entity-kind prefix.
// No side effects beyond advancing the random source.
func (g *Generator) Next(prefix string) string {
	g.mu.Lock()
	defer g.mu.Unlock()

	var b strings.Builder
	b.Grow(len(prefix) + 1 + suffixLen)
	b.WriteString(prefix)
	b.WriteByte('-')
	for i := 0; i < suffixLen; i++ {
		b.WriteByte(alphabet[g.rng.Intn(len(alphabet))])
	}
	return b.String()
}
