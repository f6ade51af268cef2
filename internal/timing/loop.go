package timing

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FireMsg tells the program that the timer with ID is due
type FireMsg struct {
	ID uint64
}

// Loop is a Scheduler for bubbletea programs. Wall-clock timers only post a
// FireMsg; the callback itself runs when the model hands the message back
// through Deliver, so every callback executes on the Update goroutine.
type Loop struct {
	fired   chan FireMsg
	done    chan struct{}
	nextID  uint64
	pending map[uint64]*loopTimer
	now     func() time.Time
	closed  bool
}

type loopTimer struct {
	loop  *Loop
	id    uint64
	fn    func()
	timer *time.Timer
}

// NewLoop creates a loop scheduler
func NewLoop() *Loop {
	return &Loop{
		fired:   make(chan FireMsg, 64),
		done:    make(chan struct{}),
		pending: make(map[uint64]*loopTimer),
		now:     time.Now,
	}
}

// Now returns the wall-clock time
func (l *Loop) Now() time.Time {
	return l.now()
}

// AfterFunc arms a timer whose callback runs on delivery of its FireMsg
func (l *Loop) AfterFunc(d time.Duration, fn func()) Timer {
	l.nextID++
	t := &loopTimer{loop: l, id: l.nextID, fn: fn}
	if l.closed {
		return t
	}
	l.pending[t.id] = t
	fired, done := l.fired, l.done
	id := t.id
	t.timer = time.AfterFunc(d, func() {
		select {
		case fired <- FireMsg{ID: id}:
		case <-done:
		}
	})
	return t
}

// Stop cancels the timer. A FireMsg already in flight is discarded by Deliver.
func (t *loopTimer) Stop() bool {
	if _, ok := t.loop.pending[t.id]; !ok {
		return false
	}
	delete(t.loop.pending, t.id)
	if t.timer != nil {
		t.timer.Stop()
	}
	return true
}

// Listen waits for the next timer to come due. After Close it returns nil.
func (l *Loop) Listen() tea.Cmd {
	fired, done := l.fired, l.done
	return func() tea.Msg {
		select {
		case msg := <-fired:
			return msg
		case <-done:
			return nil
		}
	}
}

// Deliver runs the callback for msg if its timer is still live. It reports
// whether a callback ran.
func (l *Loop) Deliver(msg FireMsg) bool {
	t, ok := l.pending[msg.ID]
	if !ok {
		return false
	}
	delete(l.pending, msg.ID)
	t.fn()
	return true
}

// Pending returns the number of live timers
func (l *Loop) Pending() int {
	return len(l.pending)
}

// Close stops all pending timers and releases fires nobody listens for.
// Later AfterFunc calls never fire.
func (l *Loop) Close() {
	if l.closed {
		return
	}
	for id, t := range l.pending {
		if t.timer != nil {
			t.timer.Stop()
		}
		delete(l.pending, id)
	}
	l.closed = true
	close(l.done)
}
