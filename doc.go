// Package uthread implements a cooperative, user-level threading library.
//
// It multiplexes many lightweight "uthreads" onto a single host goroutine by
// directly switching CPU register state between hand-fabricated stacks — no
// kernel thread is created per uthread, and there is no preemption: a uthread
// keeps the host goroutine until it voluntarily calls [Yield], [Exit], or
// blocks in [Join].
//
// # Scheduling
//
// Two ready-queue policies are supported, chosen once via [Init]: [FIFO]
// (strict arrival order among continuously-ready threads) and [Priority]
// (highest integer priority first, ties unspecified). Round-robin, CFS and
// MLFQ are declared in the [Policy] enum but are not implemented; [Init]
// rejects them.
//
// # Lifecycle
//
// A uthread is [Create]d joinable by default. Exactly one of [Join] or
// [Detach] may subsequently apply to it — attempting both, or either twice,
// is an error. A joinable thread that exits becomes a zombie awaiting its
// joiner; a detached thread that exits is reclaimed automatically by a
// dedicated reaper thread, because a thread cannot free the stack it is
// currently running on.
//
// # Concurrency contract
//
// This package is not safe for concurrent use, and that is deliberate:
// uthreads are cooperative precisely because there is only ever one
// execution context running library code at a time. Every exported function
// must be called from the same goroutine that called [Init] (directly, or
// from within a uthread running on top of it). Calling into this package
// from any other goroutine is undefined behavior. Builds tagged with
// "uthreaddebug" get a best-effort diagnostic (a panic instead of silent
// corruption) when that contract is broken; release builds pay nothing for
// the check.
package uthread
