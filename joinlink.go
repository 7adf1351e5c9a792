package uthread

// joinLink replaces the sentinel-integer overload ("-1 means joinable, -2
// means detached, non-negative means a waiting tid") found in this
// library's C ancestor with a three-way sum type. It transitions
// monotonically: joinNone{} -> joinWaiter{} or joinNone{} -> joinDetached{},
// never back.
type joinLink interface {
	isJoinLink()
}

// joinNone means the thread is joinable and nobody has begun joining it yet.
type joinNone struct{}

func (joinNone) isJoinLink() {}

// joinDetached means the thread self-reaps on exit; Join is no longer valid
// against it.
type joinDetached struct{}

func (joinDetached) isJoinLink() {}

// joinWaiter means thread Tid has called Join against this thread and is
// (or will be) blocked waiting for it to become a zombie.
type joinWaiter struct {
	tid Tid
}

func (joinWaiter) isJoinLink() {}
