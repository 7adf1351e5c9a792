package uthread

import (
	"errors"
	"fmt"
)

// Argument and state errors returned by the public API. Callers should use
// [errors.Is] rather than comparing directly, since some of these may in
// future be wrapped with additional context.
var (
	// ErrNilFunc is returned by Create when fn is nil.
	ErrNilFunc = errors.New("uthread: func must not be nil")

	// ErrInvalidPriority is returned by Create when priority falls outside
	// [MinPriority, MaxPriority].
	ErrInvalidPriority = errors.New("uthread: priority out of range")

	// ErrTableFull is returned by Create when the live thread count would
	// exceed MaxThreads.
	ErrTableFull = errors.New("uthread: thread table is full")

	// ErrInvalidTid is returned by Join and Detach when tid does not name a
	// live, user-visible thread, or (for Join) names the calling thread.
	ErrInvalidTid = errors.New("uthread: invalid thread id")

	// ErrAlreadyDetachedOrJoined is returned by Join and Detach when the
	// target thread's join state has already been resolved by an earlier
	// Join or Detach call.
	ErrAlreadyDetachedOrJoined = errors.New("uthread: thread already detached or joined")

	// ErrUnimplementedPolicy is returned by Init for scheduling policies
	// that are declared but not implemented (RoundRobin, CFS, MLFQ).
	ErrUnimplementedPolicy = errors.New("uthread: scheduling policy not implemented")

	// ErrUnsupportedPlatform is returned by Init when the current GOARCH has
	// no contextSwitch implementation.
	ErrUnsupportedPlatform = errors.New("uthread: no context switch implementation for this platform")

	// ErrNotMainThread is returned by Shutdown when called from anything
	// other than the thread that called Init.
	ErrNotMainThread = errors.New("uthread: Shutdown must be called from the main thread")
)

// SchedulerInvariantError is panicked by the scheduler when it detects that
// an internal invariant has been violated — a deadlock (scheduleSwitch with
// an empty runqueue and no successor), an attempt to destroy the running
// thread, or a caller that broke the single-goroutine contract. These denote
// bugs in the library or in calling code, never an ordinary runtime
// condition, so they are not returned as errors.
type SchedulerInvariantError struct {
	Op     string // the operation that detected the violation
	Tid    Tid    // the thread involved, if any
	Detail string
}

func (e *SchedulerInvariantError) Error() string {
	return fmt.Sprintf("uthread: invariant violated in %s (tid=%d): %s", e.Op, e.Tid, e.Detail)
}
