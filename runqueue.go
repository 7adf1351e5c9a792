package uthread

import (
	"container/heap"

	"github.com/joeycumines/go-uthread/internal/queue"
)

// runqueue holds TCBs in state Ready, in dispatch order for the active
// policy. Bounded at MaxThreads: enqueue reports false on overflow, which
// the scheduler treats as a fatal invariant violation (the TCB table itself
// caps live threads at MaxThreads, so overflow here can only mean the
// runqueue and the table have drifted out of sync).
type runqueue interface {
	enqueue(t *tcb) bool
	dequeue() *tcb
	len() int
}

// ringRunqueue implements FIFO dispatch order over a bounded ring buffer.
type ringRunqueue struct {
	r *queue.Ring[*tcb]
}

func newRingRunqueue(capacity int) *ringRunqueue {
	return &ringRunqueue{r: queue.NewRing[*tcb](capacity)}
}

func (q *ringRunqueue) enqueue(t *tcb) bool { return q.r.Enqueue(t) }

func (q *ringRunqueue) dequeue() *tcb {
	t, ok := q.r.Dequeue()
	if !ok {
		return nil
	}
	return t
}

func (q *ringRunqueue) len() int { return q.r.Len() }

// priorityHeap implements heap.Interface over *tcb, ordered so that
// heap.Pop always returns the highest-priority element: a max-heap by
// priority, the same container/heap shape eventloop/loop.go's timerHeap
// uses for a min-heap by deadline. Tie-break among equal priorities is
// unspecified.
type priorityHeap []*tcb

func (h priorityHeap) Len() int { return len(h) }

func (h priorityHeap) Less(i, j int) bool { return h[i].priority > h[j].priority }

func (h priorityHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].heapIndex = i
	h[j].heapIndex = j
}

func (h *priorityHeap) Push(x any) {
	t := x.(*tcb)
	t.heapIndex = len(*h)
	*h = append(*h, t)
}

func (h *priorityHeap) Pop() any {
	old := *h
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.heapIndex = -1
	*h = old[:n-1]
	return t
}

// priorityRunqueue implements priority dispatch order: the ready thread
// with the highest integer priority is always dequeued first.
type priorityRunqueue struct {
	h        priorityHeap
	capacity int
}

func newPriorityRunqueue(capacity int) *priorityRunqueue {
	return &priorityRunqueue{h: make(priorityHeap, 0, capacity), capacity: capacity}
}

func (q *priorityRunqueue) enqueue(t *tcb) bool {
	if len(q.h) >= q.capacity {
		return false
	}
	heap.Push(&q.h, t)
	return true
}

func (q *priorityRunqueue) dequeue() *tcb {
	if len(q.h) == 0 {
		return nil
	}
	return heap.Pop(&q.h).(*tcb)
}

func (q *priorityRunqueue) len() int { return len(q.h) }
