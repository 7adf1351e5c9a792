package uthread

import "fmt"

// buildThread allocates a stack and a tcb for a new thread and fabricates
// its initial register frame, without assigning it an id or placing it in
// the table — that is the caller's job (Create picks a rotating slot;
// Init places the reaper at the fixed slot MaxThreads).
func (rt *runtime_) buildThread(fn func(any) any, arg any, priority int) *tcb {
	stack, sp := allocStack(rt.stackSize)
	return &tcb{
		stack:     stack,
		stackSize: rt.stackSize,
		sp:        sp,
		entry:     entryPoint{fn: fn, arg: arg},
		state:     Sleeping,
		priority:  priority,
		joinLink:  joinNone{},
	}
}

// Create allocates a new joinable thread running fn(arg) and makes it
// Ready. fn's return value becomes available to whichever thread
// subsequently calls Join against the returned Tid, unless the thread is
// Detach()ed first, in which case it self-reaps instead.
//
// Go's allocator failure (out of memory) is not caught as an error here —
// like the rest of this library, and like the rest of the Go ecosystem, an
// allocation failure is a fatal condition the runtime panics on, not a
// recoverable one.
func Create(fn func(any) any, arg any, priority int) (Tid, error) {
	ensureInit()
	checkOwnerGoroutine()

	if fn == nil {
		return 0, ErrNilFunc
	}
	if priority < MinPriority || priority > MaxPriority {
		return 0, ErrInvalidPriority
	}
	if rt.liveCount+1 > MaxThreads {
		return 0, ErrTableFull
	}

	t := rt.buildThread(fn, arg, priority)
	id := rt.allocSlot()
	t.id = id
	rt.table[id] = t
	rt.liveCount++

	rt.wake(t)
	rt.metrics.incCreated()
	rt.logger.Debug("thread created", "tid", int(id), "priority", priority)

	return id, nil
}

// destroyThread frees a zombie thread's stack and TCB, clears its slot, and
// decrements liveCount. Must never be called against the currently running
// thread, nor against a thread that is not a Zombie: a thread's stack must
// be freed by a different thread than the one that was running on it.
func (rt *runtime_) destroyThread(t *tcb) {
	if t.id == rt.current {
		rt.fatalf("destroyThread", t.id, "attempted to destroy the currently running thread")
	}
	if t.state != Zombie {
		rt.fatalf("destroyThread", t.id, fmt.Sprintf("expected Zombie, got %s", t.state))
	}
	rt.table[t.id] = nil
	t.stack = nil
	rt.liveCount--
	rt.metrics.incDestroyed()
}
