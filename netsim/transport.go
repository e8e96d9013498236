/*
Package netsim simulates an unreliable network boundary.

PURPOSE:
  The engine is an in-process stand-in for a remote sales backend.
  To keep callers honest about latency and failure handling, every
  store operation passes through a Transport that (a) sleeps an
  artificial delay and (b) occasionally fails with a transient error
  instead of executing at all.

FAILURE CONTRACT:
  The failure roll happens BEFORE the wrapped operation runs. A
  transient failure therefore never leaves partial state behind; the
  store never saw the call. Callers treat ErrTransient as retryable.

NO CANCELLATION:
  Once an operation is issued its delay always elapses before the
  outcome is decided. The context parameter is carried for interface
  symmetry with the rest of the engine, not for early abort.

DETERMINISM:
  The random source is injected. Tests use a fixed seed, a zero
  delay, and a failure rate of 0 or 1 to pin down behavior.

DEFAULTS:
  300ms delay, 5% failure rate.

SEE ALSO:
  - sales/service.go: wraps every public store operation in Do
*/
package netsim

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"time"
)

const (
	// DefaultLatency is the simulated per-call delay.
	DefaultLatency = 300 * time.Millisecond

	// DefaultFailureRate is the simulated failure probability.
	DefaultFailureRate = 0.05
)

// ErrTransient is the injected network failure. Retryable; the
// wrapped operation did not run.
var ErrTransient = errors.New("transient network error: please try again")

// IsTransient reports whether err is an injected transport failure.
func IsTransient(err error) bool {
	return errors.Is(err, ErrTransient)
}

// Transport wraps operations with simulated latency and stochastic
// failure. Safe for concurrent use.
type Transport struct {
	latency  time.Duration
	failRate float64

	mu  sync.Mutex
	rng *rand.Rand
}

// New creates a Transport. latency may be zero (tests); failRate is
// clamped to [0, 1]. The random source must not be shared unguarded
// with other users.
func New(latency time.Duration, failRate float64, rng *rand.Rand) *Transport {
	if failRate < 0 {
		failRate = 0
	}
	if failRate > 1 {
		failRate = 1
	}
	return &Transport{latency: latency, failRate: failRate, rng: rng}
}

// Do sleeps the configured latency, then either injects ErrTransient
// or runs op and returns its error.
func (t *Transport) Do(_ context.Context, op func() error) error {
	if t.latency > 0 {
		time.Sleep(t.latency)
	}
	if t.roll() {
		return ErrTransient
	}
	return op()
}

func (t *Transport) roll() bool {
	if t.failRate == 0 {
		return false
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.rng.Float64() < t.failRate
}
