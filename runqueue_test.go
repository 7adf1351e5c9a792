package uthread

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRingRunqueue_FIFO(t *testing.T) {
	q := newRingRunqueue(4)
	a := &tcb{id: 1}
	b := &tcb{id: 2}
	require.True(t, q.enqueue(a))
	require.True(t, q.enqueue(b))
	assert.Equal(t, 2, q.len())
	assert.Same(t, a, q.dequeue())
	assert.Same(t, b, q.dequeue())
	assert.Nil(t, q.dequeue())
}

func TestRingRunqueue_OverflowRejected(t *testing.T) {
	q := newRingRunqueue(1)
	require.True(t, q.enqueue(&tcb{id: 1}))
	assert.False(t, q.enqueue(&tcb{id: 2}))
}

func TestPriorityRunqueue_MaxFirst(t *testing.T) {
	q := newPriorityRunqueue(8)
	lo := &tcb{id: 1, priority: -5}
	hi := &tcb{id: 2, priority: 10}
	mid := &tcb{id: 3, priority: 0}
	require.True(t, q.enqueue(lo))
	require.True(t, q.enqueue(hi))
	require.True(t, q.enqueue(mid))

	assert.Same(t, hi, q.dequeue())
	assert.Same(t, mid, q.dequeue())
	assert.Same(t, lo, q.dequeue())
	assert.Nil(t, q.dequeue())
}

func TestPriorityRunqueue_OverflowRejected(t *testing.T) {
	q := newPriorityRunqueue(1)
	require.True(t, q.enqueue(&tcb{id: 1, priority: 1}))
	assert.False(t, q.enqueue(&tcb{id: 2, priority: 2}))
}

func TestPriorityRunqueue_DispatchIsAlwaysMaxOfReady(t *testing.T) {
	// Whenever a dispatch occurs, the dispatched thread's priority equals
	// the max priority among the ready set at that instant.
	q := newPriorityRunqueue(8)
	priorities := []int{3, -1, 7, 7, 2, -20, 20}
	tcbs := make([]*tcb, len(priorities))
	for i, p := range priorities {
		tcbs[i] = &tcb{id: Tid(i), priority: p}
		require.True(t, q.enqueue(tcbs[i]))
	}

	max := priorities[0]
	for _, p := range priorities {
		if p > max {
			max = p
		}
	}

	got := q.dequeue()
	assert.Equal(t, max, got.priority)
}
