package uthread

import "fmt"

// scheduleSwitch is the sole dispatch point: it picks the next ready
// thread under the active policy, updates both the outgoing and incoming
// TCBs' states, and performs the actual context switch. Because there is no
// preemption, this function's body is a single atomic step with respect to
// every other call into this package.
//
// target is the state the currently running thread transitions to. It must
// be one of Ready (Yield), Sleeping (Join blocking, or the reaper idling),
// or Zombie (Exit).
func (rt *runtime_) scheduleSwitch(target threadState) {
	prev := rt.table[rt.current]

	next := rt.runq.dequeue()
	if next == nil {
		if target == Ready {
			// Yield with nothing else runnable: the caller just keeps
			// going, per this library's documented Yield semantics.
			return
		}
		rt.fatalf("scheduleSwitch", prev.id, fmt.Sprintf(
			"no ready thread to dispatch while leaving Running for %s: deadlock", target))
	}

	if target == Ready && rt.policy == Priority && next.priority < prev.priority {
		// The yielding thread outranks every ready thread, so it keeps
		// running; next goes back into the runqueue untouched.
		if !rt.runq.enqueue(next) {
			rt.fatalf("scheduleSwitch", next.id, "runqueue overflow re-enqueuing the dequeued thread")
		}
		return
	}

	next.state = Running
	rt.current = next.id

	if target == Ready {
		if !rt.runq.enqueue(prev) {
			rt.fatalf("scheduleSwitch", prev.id, "runqueue overflow re-enqueuing the outgoing thread")
		}
	}
	prev.state = target

	rt.metrics.incSwitches()
	rt.logger.Debug("context switch", "from", int(prev.id), "to", int(next.id), "policy", rt.policy.String())

	contextSwitch(&prev.sp, next.sp)
}

// Yield gives up the remaining host execution time voluntarily, allowing
// another ready thread (if any) to run. If no other thread is ready, or
// (under the Priority policy) every ready thread has a strictly lower
// priority than the caller, Yield returns immediately without switching.
func Yield() {
	ensureInit()
	checkOwnerGoroutine()
	rt.scheduleSwitch(Ready)
}

// fatalf logs a structured error record and panics with a
// *SchedulerInvariantError. It exists for conditions treated as fatal —
// deadlocks and corrupted state — as opposed to the recoverable
// argument/state errors returned by the public
// API.
func (rt *runtime_) fatalf(op string, tid Tid, detail string) {
	err := &SchedulerInvariantError{Op: op, Tid: tid, Detail: detail}
	rt.logger.Error("scheduler invariant violated", "op", op, "tid", int(tid), "detail", detail)
	panic(err)
}
