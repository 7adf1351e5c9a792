//go:build uthreaddebug

package uthread

import "runtime"

// ownerGoroutineID, once set, is the id of the goroutine that called Init.
// Init, Shutdown, Create, Yield, Exit, Join and Detach check against it;
// zero means "not yet claimed". Only compiled into uthreaddebug builds — see
// checkOwnerGoroutine.
var ownerGoroutineID uint64

// checkOwnerGoroutine panics if the caller is not the goroutine that
// initialized the scheduler, catching the single most common way this
// package's concurrency contract gets violated: a uthread library call
// made from a `go func(){...}()` spawned independently of the scheduler.
func checkOwnerGoroutine() {
	id := getGoroutineID()
	if ownerGoroutineID == 0 {
		ownerGoroutineID = id
		return
	}
	if id != ownerGoroutineID {
		panic(&SchedulerInvariantError{
			Op:     "checkOwnerGoroutine",
			Tid:    rt.current,
			Detail: "called from a goroutine other than the one that initialized the scheduler",
		})
	}
}

func resetOwnerGoroutine() {
	ownerGoroutineID = 0
}

// getGoroutineID parses the current goroutine's id out of its own stack
// trace header ("goroutine NNN [running]:..."), the same trick runtime
// itself offers no exported API for.
func getGoroutineID() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	var id uint64
	for i := len("goroutine "); i < n; i++ {
		if buf[i] >= '0' && buf[i] <= '9' {
			id = id*10 + uint64(buf[i]-'0')
		} else {
			break
		}
	}
	return id
}
