//go:build !amd64 && !arm64

package uthread

// platformSupported reports that this GOARCH has no contextSwitch
// implementation. A portable cooperative context switch cannot be expressed
// in pure Go — goroutines cannot be parked mid-stack and resumed on a
// caller-chosen stack without the runtime's own scheduler — so there is no
// generic fallback; Init rejects this platform instead, see
// ErrUnsupportedPlatform.
const platformSupported = false

// savedFrameSize has no meaningful value on an unsupported platform; callers
// must check platformSupported before using it.
const savedFrameSize = 0

func contextSwitch(saveSPOut *uintptr, newSP uintptr) {
	panic("uthread: contextSwitch called on an unsupported platform")
}

func writeInitialFrame(stack []byte, trampoline uintptr) uintptr {
	panic("uthread: writeInitialFrame called on an unsupported platform")
}
