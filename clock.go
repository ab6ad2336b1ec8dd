package vegas

import "time"

// Clock abstracts the passage of time so that the controller's RTT and
// window bookkeeping can be driven deterministically in tests. Production
// callers use realClock; tests inject a fake.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// DefaultClock is a monotonic wall-clock Clock suitable for production use.
func DefaultClock() Clock { return realClock{} }
