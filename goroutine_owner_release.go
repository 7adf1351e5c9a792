//go:build !uthreaddebug

package uthread

// checkOwnerGoroutine is a no-op outside uthreaddebug builds: the
// single-goroutine contract is documented, not enforced, in release
// builds, so this costs nothing on the hot path.
func checkOwnerGoroutine() {}

func resetOwnerGoroutine() {}
