package timing

import (
	"sort"
	"time"
)

// Manual is a virtual clock. Time only moves when Advance is called, which
// makes timer behaviour deterministic in tests.
type Manual struct {
	now   time.Time
	seq   uint64
	queue []*manualTimer
}

type manualTimer struct {
	owner   *Manual
	at      time.Time
	seq     uint64
	fn      func()
	stopped bool
	fired   bool
}

// NewManual creates a virtual clock starting at start
func NewManual(start time.Time) *Manual {
	return &Manual{now: start}
}

// Now returns the virtual time
func (m *Manual) Now() time.Time {
	return m.now
}

// AfterFunc schedules fn to run once the clock has advanced by d
func (m *Manual) AfterFunc(d time.Duration, fn func()) Timer {
	if d < 0 {
		d = 0
	}
	m.seq++
	t := &manualTimer{owner: m, at: m.now.Add(d), seq: m.seq, fn: fn}
	m.queue = append(m.queue, t)
	return t
}

// Stop cancels the timer
func (t *manualTimer) Stop() bool {
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	t.owner.remove(t)
	return true
}

func (m *Manual) remove(t *manualTimer) {
	for i, q := range m.queue {
		if q == t {
			m.queue = append(m.queue[:i], m.queue[i+1:]...)
			return
		}
	}
}

// Advance moves the clock forward by d, firing every due callback in time
// order. Callbacks may schedule or stop timers; anything they schedule
// inside the window fires during the same call.
func (m *Manual) Advance(d time.Duration) {
	deadline := m.now.Add(d)
	for {
		next := m.nextDue(deadline)
		if next == nil {
			break
		}
		m.remove(next)
		next.fired = true
		m.now = next.at
		next.fn()
	}
	m.now = deadline
}

func (m *Manual) nextDue(deadline time.Time) *manualTimer {
	if len(m.queue) == 0 {
		return nil
	}
	sort.SliceStable(m.queue, func(i, j int) bool {
		if m.queue[i].at.Equal(m.queue[j].at) {
			return m.queue[i].seq < m.queue[j].seq
		}
		return m.queue[i].at.Before(m.queue[j].at)
	})
	if m.queue[0].at.After(deadline) {
		return nil
	}
	return m.queue[0]
}

// Pending returns the number of live timers
func (m *Manual) Pending() int {
	return len(m.queue)
}
