package timing

import "time"

// Timer is a handle to a scheduled callback
type Timer interface {
	// Stop cancels the callback. It reports whether the call stopped a
	// callback that had not fired yet.
	Stop() bool
}

// Scheduler supplies time to the cycler and the carousel
type Scheduler interface {
	Now() time.Time
	AfterFunc(d time.Duration, fn func()) Timer
}

// Real returns a wall-clock scheduler. Callbacks run on their own goroutine,
// so it only suits hosts that synchronise callbacks themselves.
func Real() Scheduler {
	return realScheduler{}
}

type realScheduler struct{}

func (realScheduler) Now() time.Time {
	return time.Now()
}

func (realScheduler) AfterFunc(d time.Duration, fn func()) Timer {
	return time.AfterFunc(d, fn)
}
