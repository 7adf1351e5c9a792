package uthread

import "fmt"

// allocSlot finds and returns the next free slot id for a user thread,
// advancing allocCursor as it goes. Slot 0 (main) and slot MaxThreads (the
// reaper) are never considered. Callers must check liveCount < MaxThreads
// before calling this — that precondition is what guarantees the scan
// below terminates.
func (rt *runtime_) allocSlot() Tid {
	if rt.allocCursor < 1 || rt.allocCursor >= MaxThreads {
		rt.allocCursor = 1
	}
	for {
		if rt.table[rt.allocCursor] == nil {
			return rt.allocCursor
		}
		rt.allocCursor++
		if rt.allocCursor == MaxThreads {
			rt.allocCursor = 1
		}
	}
}

// wake transitions t from Sleeping to Ready and enqueues it in the active
// runqueue. Used for newly created threads and for threads woken by a join
// target's Exit or a detached Exit waking the reaper.
func (rt *runtime_) wake(t *tcb) {
	if t.state != Sleeping {
		rt.fatalf("wake", t.id, fmt.Sprintf("expected Sleeping, got %s", t.state))
	}
	t.state = Ready
	if !rt.runq.enqueue(t) {
		rt.fatalf("wake", t.id, "runqueue overflow: table capacity and runqueue capacity have drifted out of sync")
	}
}
