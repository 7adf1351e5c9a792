package uthread

// Tid identifies a uthread. Valid user-visible ids lie in [0, MaxThreads).
// Tid 0 is permanently reserved for the main thread (the goroutine that
// called Init); Tid MaxThreads is reserved for the reaper and is never
// returned by Create.
type Tid int32

// Policy selects how the scheduler chooses the next ready thread to run.
type Policy int

const (
	// FIFO dispatches the longest-waiting ready thread first. Threads that
	// remain continuously ready are dispatched in strict arrival order.
	FIFO Policy = iota
	// Priority dispatches the highest-priority ready thread first. Ties are
	// broken in an unspecified order.
	Priority
	// RoundRobin is declared for parity with the library this package's
	// design is descended from, but is not implemented; Init rejects it.
	RoundRobin
	// CFS (Completely Fair Scheduler) is declared but not implemented;
	// Init rejects it.
	CFS
	// MLFQ (Multi-Level Feedback Queue) is declared but not implemented;
	// Init rejects it.
	MLFQ
)

func (p Policy) String() string {
	switch p {
	case FIFO:
		return "FIFO"
	case Priority:
		return "Priority"
	case RoundRobin:
		return "RoundRobin"
	case CFS:
		return "CFS"
	case MLFQ:
		return "MLFQ"
	default:
		return "Unknown"
	}
}

func (p Policy) implemented() bool {
	return p == FIFO || p == Priority
}

// Tunable limits and defaults.
const (
	// MaxThreads is the maximum number of live user threads. Slot
	// MaxThreads itself is reserved for the reaper.
	MaxThreads = 64

	// DefaultStackSize is the stack size, in bytes, used when Init is
	// called (or implicitly triggered) without an explicit size.
	DefaultStackSize = 64 * 1024

	// MaxPriority is the highest priority a thread may be created with.
	MaxPriority = 20

	// MinPriority is the lowest priority a thread may be created with. The
	// reaper runs at MinPriority.
	MinPriority = -20
)
