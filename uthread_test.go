package uthread

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetForTest guarantees a clean package-level runtime for each test. The
// scheduler is a process-wide singleton (see runtime.go), so these tests
// cannot run in parallel with each other, and every interleaving below is
// driven entirely by explicit Yield/Join/Detach calls — there is exactly
// one execution context at a time, so nothing here may block on a Go
// channel or a second goroutine the way a real concurrent test would.
func resetForTest(t *testing.T, policy Policy) {
	t.Helper()
	_ = Shutdown()
	require.NoError(t, Init(policy, DefaultStackSize))
	t.Cleanup(func() { _ = Shutdown() })
}

func TestCreate_RejectsNilFunc(t *testing.T) {
	resetForTest(t, FIFO)

	_, err := Create(nil, nil, 0)
	assert.ErrorIs(t, err, ErrNilFunc)
}

func TestCreate_RejectsOutOfRangePriority(t *testing.T) {
	resetForTest(t, Priority)

	_, err := Create(func(any) any { return nil }, nil, MaxPriority+1)
	assert.ErrorIs(t, err, ErrInvalidPriority)

	_, err = Create(func(any) any { return nil }, nil, MinPriority-1)
	assert.ErrorIs(t, err, ErrInvalidPriority)
}

func TestCreateJoin_ReturnsValuePassedToExit(t *testing.T) {
	resetForTest(t, FIFO)

	tid, err := Create(func(arg any) any {
		return arg.(int) * 2
	}, 21, 0)
	require.NoError(t, err)

	got, err := Join(tid)
	require.NoError(t, err)
	assert.Equal(t, 42, got)
}

func TestJoin_RejectsSelf(t *testing.T) {
	resetForTest(t, FIFO)

	_, err := Join(0)
	assert.ErrorIs(t, err, ErrInvalidTid)
}

func TestJoin_RejectsUnknownTid(t *testing.T) {
	resetForTest(t, FIFO)

	_, err := Join(17)
	assert.ErrorIs(t, err, ErrInvalidTid)
}

// TestJoin_Twice_SecondCallFails arranges for one thread (joinerA) to be
// already parked in Join(target) before the calling (main) thread attempts
// a second Join against the same, still-live target — which must fail
// immediately rather than block.
func TestJoin_Twice_SecondCallFails(t *testing.T) {
	resetForTest(t, FIFO)

	stop := false
	target, err := Create(func(any) any {
		for !stop {
			Yield()
		}
		return nil
	}, nil, 0)
	require.NoError(t, err)

	var joinerResult any
	var joinerErr error
	joinerA, err := Create(func(any) any {
		joinerResult, joinerErr = Join(target)
		return nil
	}, nil, 0)
	require.NoError(t, err)

	// Dispatches target (which immediately re-yields) then joinerA (which
	// parks in Join), and returns here once joinerA has gone to sleep.
	Yield()

	_, err = Join(target)
	assert.ErrorIs(t, err, ErrAlreadyDetachedOrJoined)

	stop = true
	for i := 0; i < 4; i++ {
		Yield()
	}

	joinerRetval, err := Join(joinerA)
	require.NoError(t, err)
	assert.Nil(t, joinerRetval)
	assert.NoError(t, joinerErr)
	assert.Nil(t, joinerResult)
}

func TestDetach_ThenExit_IsReapedNotLeaked(t *testing.T) {
	resetForTest(t, FIFO)

	tid, err := Create(func(any) any { return nil }, nil, 0)
	require.NoError(t, err)

	require.NoError(t, Detach(tid))

	for i := 0; i < 4; i++ {
		Yield()
	}

	_, err = Join(tid)
	assert.ErrorIs(t, err, ErrInvalidTid)
}

func TestDetach_OfAlreadyExitedZombie_IsReapedNotLeaked(t *testing.T) {
	resetForTest(t, FIFO)

	tid, err := Create(func(any) any { return nil }, nil, 0)
	require.NoError(t, err)

	Yield() // let it run to completion and become an unjoined Zombie

	require.NoError(t, Detach(tid))

	for i := 0; i < 3; i++ {
		Yield()
	}

	_, err = Join(tid)
	assert.ErrorIs(t, err, ErrInvalidTid)
}

func TestDetach_Twice_SecondCallFails(t *testing.T) {
	resetForTest(t, FIFO)

	stop := true
	tid, err := Create(func(any) any {
		for !stop {
			Yield()
		}
		return nil
	}, nil, 0)
	require.NoError(t, err)

	require.NoError(t, Detach(tid))
	err = Detach(tid)
	assert.ErrorIs(t, err, ErrAlreadyDetachedOrJoined)

	for i := 0; i < 3; i++ {
		Yield()
	}
}

func TestDetach_RejectsUnknownTid(t *testing.T) {
	resetForTest(t, FIFO)

	err := Detach(17)
	assert.ErrorIs(t, err, ErrInvalidTid)
}

func TestYield_WithNothingElseReady_ReturnsImmediately(t *testing.T) {
	resetForTest(t, FIFO)
	assert.NotPanics(t, Yield)
}

func TestInit_SecondCallIsNoOp(t *testing.T) {
	resetForTest(t, FIFO)
	assert.NoError(t, Init(Priority, 4096))
	assert.Equal(t, FIFO, rt.policy) // unchanged: second Init is ignored
}

func TestInit_RejectsUnimplementedPolicy(t *testing.T) {
	require.NoError(t, Shutdown())
	err := Init(RoundRobin, DefaultStackSize)
	assert.ErrorIs(t, err, ErrUnimplementedPolicy)
}

func TestGetMetrics_CountsCreateJoinAndSwitch(t *testing.T) {
	_ = Shutdown()
	require.NoError(t, Init(FIFO, DefaultStackSize, WithMetrics(true)))
	t.Cleanup(func() { _ = Shutdown() })

	tid, err := Create(func(any) any { return nil }, nil, 0)
	require.NoError(t, err)
	_, err = Join(tid)
	require.NoError(t, err)

	m := GetMetrics()
	assert.Equal(t, uint64(1), m.ThreadsCreated)
	assert.Equal(t, uint64(1), m.ThreadsDestroyed)
	assert.GreaterOrEqual(t, m.ContextSwitches, uint64(2))
}

// TestCreate_AtCapacity_RejectsWithoutAllocating covers scenario S6: after
// filling every user slot (MaxThreads-1, since the main thread occupies
// one of the MaxThreads slots), the next Create is rejected with
// ErrTableFull rather than allocating.
func TestCreate_AtCapacity_RejectsWithoutAllocating(t *testing.T) {
	resetForTest(t, FIFO)

	stop := false
	park := func(any) any {
		for !stop {
			Yield()
		}
		return nil
	}

	tids := make([]Tid, 0, MaxThreads-1)
	for i := 0; i < MaxThreads-1; i++ {
		tid, err := Create(park, nil, 0)
		require.NoError(t, err)
		tids = append(tids, tid)
	}

	_, err := Create(park, nil, 0)
	assert.ErrorIs(t, err, ErrTableFull)

	stop = true
	for i := 0; i < len(tids)+2; i++ {
		Yield()
	}
	for _, tid := range tids {
		_, err := Join(tid)
		require.NoError(t, err)
	}
}

// TestCreate_YieldsDistinctIds covers property P4: two successful Create
// calls never return the same id while both threads remain live.
func TestCreate_YieldsDistinctIds(t *testing.T) {
	resetForTest(t, FIFO)

	park := func(any) any {
		for {
			Yield()
		}
	}

	a, err := Create(park, nil, 0)
	require.NoError(t, err)
	b, err := Create(park, nil, 0)
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}
