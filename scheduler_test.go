package uthread

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduler_FIFOPolicy_DispatchesInArrivalOrder(t *testing.T) {
	resetForTest(t, FIFO)

	var order []int
	record := func(n int) func(any) any {
		return func(any) any {
			order = append(order, n)
			return nil
		}
	}

	for _, n := range []int{1, 2, 3} {
		_, err := Create(record(n), nil, 0)
		require.NoError(t, err)
	}

	Yield()
	assert.Equal(t, []int{1, 2, 3}, order)
}

func TestScheduler_PriorityPolicy_DispatchesHighestFirst(t *testing.T) {
	resetForTest(t, Priority)

	var order []int
	record := func(p int) func(any) any {
		return func(any) any {
			order = append(order, p)
			return nil
		}
	}

	_, err := Create(record(1), nil, 1)
	require.NoError(t, err)
	_, err = Create(record(10), nil, 10)
	require.NoError(t, err)
	_, err = Create(record(5), nil, 5)
	require.NoError(t, err)

	Yield()
	assert.Equal(t, []int{10, 5, 1}, order)
}

// TestScheduler_Yield_RoundTrips exercises a ping-pong between two threads
// that each yield back and forth a fixed number of times, checking that
// control always alternates and that the loop terminates (no deadlock).
func TestScheduler_Yield_RoundTrips(t *testing.T) {
	resetForTest(t, FIFO)

	const rounds = 5
	var trace []string

	_, err := Create(func(any) any {
		for i := 0; i < rounds; i++ {
			trace = append(trace, "a")
			Yield()
		}
		return nil
	}, nil, 0)
	require.NoError(t, err)

	_, err = Create(func(any) any {
		for i := 0; i < rounds; i++ {
			trace = append(trace, "b")
			Yield()
		}
		return nil
	}, nil, 0)
	require.NoError(t, err)

	for i := 0; i < rounds*2+2; i++ {
		Yield()
	}

	require.Len(t, trace, rounds*2)
	for i, v := range trace {
		if i%2 == 0 {
			assert.Equal(t, "a", v)
		} else {
			assert.Equal(t, "b", v)
		}
	}
}

func TestYield_ImplicitlyInitializes(t *testing.T) {
	_ = Shutdown()
	assert.False(t, rt.initialized)
	assert.NotPanics(t, Yield)
	assert.True(t, rt.initialized)
	_ = Shutdown()
}
