package uthread

import "runtime"

// Exit terminates the calling thread, making retval available to whichever
// thread calls Join against it — unless the calling thread has been
// Detach()ed, in which case retval is discarded and the thread is handed
// straight to the reaper.
//
// Calling Exit from the main thread (Tid 0) does not terminate the host
// process, unlike the pthread/uthread ancestor this package's API is
// modeled on: it tears the scheduler down via Shutdown and then calls
// runtime.Goexit, ending only the calling goroutine. Any still-running
// uthreads are discarded along with the rest of the scheduler state.
func Exit(retval any) {
	ensureInit()
	checkOwnerGoroutine()

	t := rt.table[rt.current]
	t.retval = retval

	if rt.current == 0 {
		rt.logger.Info("main thread exiting, shutting down scheduler")
		_ = Shutdown()
		runtime.Goexit()
		panic("uthread: unreachable: runtime.Goexit returned")
	}

	_, detached := t.joinLink.(joinDetached)
	rt.logger.Info("thread exiting", "tid", int(t.id), "detached", detached)

	switch link := t.joinLink.(type) {
	case joinNone:
		// No Join has claimed this thread yet; it waits as a Zombie for one
		// to arrive. If none ever does, it leaks until Shutdown — the same
		// contract pthread_join documents for its joinable threads.
	case joinDetached:
		if !rt.zombies.Enqueue(t) {
			rt.fatalf("Exit", t.id, "zombie queue overflow")
		}
		rt.wakeReaper()
	case joinWaiter:
		waiter := rt.table[link.tid]
		rt.wake(waiter)
	}

	t.state = Zombie
	rt.scheduleSwitch(Zombie)
	panic("uthread: unreachable: scheduleSwitch(Zombie) returned")
}
