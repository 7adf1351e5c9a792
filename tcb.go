package uthread

// entryPoint is the function and argument a newly created thread begins
// executing in threadTrampoline.
type entryPoint struct {
	fn  func(any) any
	arg any
}

// tcb is a Thread Control Block: the complete metadata record for one live
// uthread. The main thread (Tid 0) and the reaper (Tid MaxThreads) each have
// a tcb. Only the main thread has no library-managed stack, since it runs on
// the host goroutine's own stack; the reaper's stack is allocated the same
// way a user thread's is.
type tcb struct {
	id Tid

	// stack is the backing array for this thread's stack, or nil for the
	// main thread. Kept reachable for the thread's whole lifetime so the
	// raw stack pointer derived from it via unsafe.Pointer stays valid —
	// see stack.go.
	stack     []byte
	stackSize int

	// sp is the saved stack pointer. Valid only while state != Running.
	sp uintptr

	entry  entryPoint
	retval any

	state    threadState
	priority int
	joinLink joinLink

	// heapIndex is maintained by container/heap when this tcb is queued in
	// a priorityRunqueue; meaningless under FIFO policy.
	heapIndex int
}
