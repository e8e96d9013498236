package netsim_test

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/sales-engine/netsim"
)

func TestDo_ZeroFailureRateAlwaysSucceeds(t *testing.T) {
	tr := netsim.New(0, 0, rand.New(rand.NewSource(1)))

	for i := 0; i < 1000; i++ {
		err := tr.Do(context.Background(), func() error { return nil })
		require.NoError(t, err)
	}
}

func TestDo_FullFailureRateAlwaysFails(t *testing.T) {
	// GIVEN: A transport with failure rate 1.0
	// WHEN: Executing any operation
	// THEN: Every call fails with the transient error and the
	//       operation body never runs

	tr := netsim.New(0, 1, rand.New(rand.NewSource(1)))

	ran := false
	for i := 0; i < 100; i++ {
		err := tr.Do(context.Background(), func() error {
			ran = true
			return nil
		})
		require.Error(t, err)
		assert.True(t, netsim.IsTransient(err))
		assert.ErrorIs(t, err, netsim.ErrTransient)
	}
	assert.False(t, ran, "op must not run when the transport fails")
}

func TestDo_PropagatesOperationError(t *testing.T) {
	tr := netsim.New(0, 0, rand.New(rand.NewSource(1)))

	opErr := errors.New("boom")
	err := tr.Do(context.Background(), func() error { return opErr })
	assert.ErrorIs(t, err, opErr)
	assert.False(t, netsim.IsTransient(err))
}

func TestDo_AppliesLatency(t *testing.T) {
	tr := netsim.New(20*time.Millisecond, 0, rand.New(rand.NewSource(1)))

	start := time.Now()
	err := tr.Do(context.Background(), func() error { return nil })
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
}

func TestDo_FailureRateRoughlyHonored(t *testing.T) {
	// Statistical check with a fixed seed; ~50% should fail.
	tr := netsim.New(0, 0.5, rand.New(rand.NewSource(99)))

	failures := 0
	const n = 2000
	for i := 0; i < n; i++ {
		if err := tr.Do(context.Background(), func() error { return nil }); err != nil {
			failures++
		}
	}
	assert.InDelta(t, n/2, failures, n/10)
}

func TestNew_ClampsFailureRate(t *testing.T) {
	tr := netsim.New(0, -1, rand.New(rand.NewSource(1)))
	require.NoError(t, tr.Do(context.Background(), func() error { return nil }))

	tr = netsim.New(0, 2, rand.New(rand.NewSource(1)))
	require.Error(t, tr.Do(context.Background(), func() error { return nil }))
}

func TestIsTransient_NilAndOtherErrors(t *testing.T) {
	assert.False(t, netsim.IsTransient(nil))
	assert.False(t, netsim.IsTransient(errors.New("other")))
}
