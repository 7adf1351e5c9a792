package uthread

import "reflect"

// trampolineAddr is the entry program counter of threadTrampoline, resolved
// once via reflection since Go gives no other portable way to take the
// address of a function's code for use as a raw return target. threadTrampoline
// takes no arguments and captures nothing, so its reflect.Value.Pointer()
// is a plain, non-closure code address, safe to jump to via RET.
var trampolineAddr = func() uintptr {
	return uintptr(reflect.ValueOf(threadTrampoline).Pointer())
}()

// threadTrampoline is where every newly scheduled thread starts executing,
// reached via contextSwitch's RET rather than an ordinary call. It invokes
// the thread's entry function and passes the result to Exit, which never
// returns — so neither does threadTrampoline.
func threadTrampoline() {
	t := rt.table[rt.current]
	retval := t.entry.fn(t.entry.arg)
	Exit(retval)
	panic("uthread: unreachable: Exit returned")
}
