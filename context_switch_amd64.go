package uthread

import "unsafe"

// contextSwitch saves the callee-saved register set (BP, BX, R12-R15) and
// the caller's return address onto the stack identified by the current SP,
// writes the resulting SP into *saveSPOut, switches SP to newSP, restores
// the register set from there, and returns.
//
// On the first invocation against a freshly fabricated stack (see
// writeInitialFrame), the "return" this performs is into threadTrampoline,
// because that is the return address buildThread wrote into the fabricated
// frame.
//
// Implemented in context_switch_amd64.s. Declared //go:noescape because the
// compiler cannot see that newSP is itself a pointer into live memory (it is
// passed as a bare uintptr, deliberately, so the compiler does not try to
// scan *across* the stack switch) — the stack's backing slice is kept
// reachable independently, via the owning tcb.
//
//go:noescape
func contextSwitch(saveSPOut *uintptr, newSP uintptr)

// platformSupported reports that amd64 has a real contextSwitch
// implementation.
const platformSupported = true

// savedFrameSize is the number of bytes a freshly fabricated stack must
// reserve for contextSwitch's save area: six 64-bit callee-saved registers
// (BP, BX, R12-R15) plus one 64-bit return address, laid out from low to
// high address in the exact order contextSwitch's POPQ sequence expects
// (R15, R14, R13, R12, BX, BP, return address) — see writeInitialFrame.
const savedFrameSize = 7 * 8

// writeInitialFrame fabricates the stack frame a freshly created thread
// resumes into. It writes savedFrameSize bytes at the high end of stack and
// returns the resulting stack pointer — the address contextSwitch must be
// given as newSP to enter this thread for the first time.
//
// The layout mirrors what contextSwitch itself would leave behind after
// saving a real thread: six zeroed callee-saved register slots (a freshly
// started thread has no prior register state to restore) followed by the
// trampoline's entry address in the slot contextSwitch's RET instruction
// will consume as a return address.
func writeInitialFrame(stack []byte, trampoline uintptr) uintptr {
	top := uintptr(unsafe.Pointer(&stack[0])) + uintptr(len(stack))
	sp := top - savedFrameSize
	words := unsafe.Slice((*uintptr)(unsafe.Pointer(sp)), 7)
	words[0] = 0 // R15
	words[1] = 0 // R14
	words[2] = 0 // R13
	words[3] = 0 // R12
	words[4] = 0 // BX
	words[5] = 0 // BP
	words[6] = trampoline
	return sp
}
