package uthread

// lookupUser resolves tid to its tcb, restricted to the user-visible slots
// [0, MaxThreads) — the reaper is addressable internally but is never a
// valid Join/Detach target.
func lookupUser(tid Tid) *tcb {
	if tid < 0 || tid >= MaxThreads {
		return nil
	}
	return rt.table[tid]
}

// Join blocks the calling thread until the thread named by tid exits,
// returning the value it passed to Exit. Joining a thread that has already
// exited returns immediately with its stored return value.
//
// Join returns ErrInvalidTid if tid does not name a live thread or names
// the calling thread, and ErrAlreadyDetachedOrJoined if the target has
// already been Detach()ed or is already the subject of another pending
// Join.
func Join(tid Tid) (any, error) {
	ensureInit()
	checkOwnerGoroutine()

	if tid == rt.current {
		return nil, ErrInvalidTid
	}
	target := lookupUser(tid)
	if target == nil {
		return nil, ErrInvalidTid
	}

	switch target.joinLink.(type) {
	case joinDetached, joinWaiter:
		return nil, ErrAlreadyDetachedOrJoined
	}

	if target.state == Zombie {
		retval := target.retval
		rt.destroyThread(target)
		return retval, nil
	}

	target.joinLink = joinWaiter{tid: rt.current}

	self := rt.table[rt.current]
	self.state = Sleeping
	rt.scheduleSwitch(Sleeping)

	// Resumed by target's Exit, which stashed its result and woke us. The
	// target's slot is still occupied (Exit never destroys its own TCB —
	// see destroyThread's invariant), so it is ours to reap.
	target = rt.table[tid]
	retval := target.retval
	rt.destroyThread(target)
	return retval, nil
}

// Detach marks a thread as non-joinable: when it exits, its return value
// is discarded and its resources are reclaimed by the reaper instead of
// waiting for a Join call. Detaching a thread that has already exited
// (and is waiting, unjoined, as a Zombie) immediately hands it to the
// reaper.
//
// Detach returns ErrInvalidTid if tid does not name a live thread, and
// ErrAlreadyDetachedOrJoined if the target has already been detached or
// already has a pending Join.
func Detach(tid Tid) error {
	ensureInit()
	checkOwnerGoroutine()

	target := lookupUser(tid)
	if target == nil {
		return ErrInvalidTid
	}

	switch target.joinLink.(type) {
	case joinDetached, joinWaiter:
		return ErrAlreadyDetachedOrJoined
	}

	target.joinLink = joinDetached{}

	if target.state == Zombie {
		if !rt.zombies.Enqueue(target) {
			rt.fatalf("Detach", target.id, "zombie queue overflow")
		}
		rt.wakeReaper()
	}

	return nil
}
