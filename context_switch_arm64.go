package uthread

import "unsafe"

// contextSwitch saves the callee-saved register set (R19-R28, the frame
// pointer R29, and the link register R30) onto the stack identified by the
// current hardware stack pointer, writes the resulting stack pointer into
// *saveSPOut, switches the stack pointer to newSP, restores the register
// set from there, and returns.
//
// Implemented in context_switch_arm64.s.
//
//go:noescape
func contextSwitch(saveSPOut *uintptr, newSP uintptr)

// platformSupported reports that arm64 has a real contextSwitch
// implementation.
const platformSupported = true

// savedFrameSize is the number of bytes a freshly fabricated stack must
// reserve for contextSwitch's save area: R19-R28 (ten registers), the
// frame pointer R29, and the link register R30 — twelve 64-bit words, laid
// out in the exact STP/LDP order context_switch_arm64.s uses.
const savedFrameSize = 12 * 8

// writeInitialFrame fabricates the stack frame a freshly created thread
// resumes into; see the amd64 implementation's doc comment for the general
// shape. On arm64 the "return address" is the link register slot (R30),
// which context_switch_arm64.s restores into LR before its RET.
func writeInitialFrame(stack []byte, trampoline uintptr) uintptr {
	top := uintptr(unsafe.Pointer(&stack[0])) + uintptr(len(stack))
	sp := top - savedFrameSize
	words := unsafe.Slice((*uintptr)(unsafe.Pointer(sp)), 12)
	for i := range words[:10] {
		words[i] = 0 // R19..R28
	}
	words[10] = 0          // R29 (frame pointer)
	words[11] = trampoline // R30 (link register)
	return sp
}
