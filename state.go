package uthread

// threadState is the lifecycle state of a single tcb.
//
// State Machine:
//
//	Sleeping --(Create wakes it)----> Ready
//	Ready    --(scheduler dispatch)--> Running
//	Running  --(Yield)--------------->  Ready
//	Running  --(Join blocks)--------->  Sleeping
//	Running  --(Exit)---------------->  Zombie
//	Sleeping --(joined thread exits,
//	            or reaper woken)----->  Ready
//
// Zombie is terminal for the tcb's logical lifetime: the struct itself is
// freed by whichever thread destroys it (a joiner, or the reaper), never by
// the zombie thread itself — a thread cannot free the stack it is
// currently running on.
type threadState int

const (
	// Ready means the thread is present in the runqueue, eligible to be
	// dispatched.
	Ready threadState = iota
	// Running means the thread is the one currently executing; exactly one
	// tcb holds this state at any observable point.
	Running
	// Sleeping means the thread is blocked, either in Join or as the
	// reaper waiting for work. Not present in any queue.
	Sleeping
	// Zombie means the thread has exited and is awaiting reclamation,
	// either by its joiner or by the reaper.
	Zombie
)

func (s threadState) String() string {
	switch s {
	case Ready:
		return "Ready"
	case Running:
		return "Running"
	case Sleeping:
		return "Sleeping"
	case Zombie:
		return "Zombie"
	default:
		return "Unknown"
	}
}
