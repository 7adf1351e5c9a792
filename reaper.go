package uthread

// wakeReaper transitions the reaper out of Sleeping if it is currently
// parked. Multiple detaches/exits can hand zombies to the reaper before it
// gets a turn to run, so this is idempotent with respect to an
// already-Ready reaper — rt.wake (unlike wakeReaper) is only valid against
// a Sleeping thread, and calling it twice would trip that invariant.
func (rt *runtime_) wakeReaper() {
	if rt.reaper.state == Sleeping {
		rt.wake(rt.reaper)
	}
}

// reaperLoopEntry is the reaper thread's entry point, installed at
// MinPriority by Init so that, under the priority policy, it only ever runs
// once nothing else is ready. It drains every zombie handed to it via
// Detach or a detached thread's Exit, then parks itself until woken again.
//
// The reaper never returns: its stack and TCB are reclaimed only by
// Shutdown, not by the ordinary Exit/Join/destroyThread path.
func reaperLoopEntry(arg any) any {
	for {
		for {
			z, ok := rt.zombies.Dequeue()
			if !ok {
				break
			}
			rt.destroyThread(z)
			rt.metrics.incReaped()
			rt.logger.Debug("thread reaped", "tid", int(z.id))
		}
		rt.scheduleSwitch(Sleeping)
	}
}
