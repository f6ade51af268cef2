// Package cycler cycles through an ordered list on a timer or on demand.
//
// Every navigation goes through GoTo, which fires the activation callback
// and pushes the next automatic advance back by a full interval. A Cycler is
// not safe for concurrent use; callers drive it from one event loop.
package cycler

import (
	"math"
	"reflect"
	"time"

	"swipeshow/internal/timing"
)

// DefaultInterval is used by Start when no interval was configured
const DefaultInterval = 3000 * time.Millisecond

// Activation describes a change of the current item
type Activation[T any] struct {
	Current    T
	Index      int
	HasCurrent bool

	Previous      T
	PreviousIndex int
	HasPrevious   bool
}

// Options configures a Cycler
type Options[T any] struct {
	// Interval between automatic advances. Zero disables autostart.
	Interval time.Duration
	Initial  int
	// Autostart defaults to true when nil
	Autostart *bool

	OnActivate func(Activation[T])
	OnStart    func()
	OnPause    func()

	// Scheduler defaults to the wall clock
	Scheduler timing.Scheduler
}

// Cycler holds the current index into a list of items
type Cycler[T any] struct {
	items    []T
	current  int
	hasIndex bool
	interval time.Duration

	onActivate func(Activation[T])
	onStart    func()
	onPause    func()

	sched    timing.Scheduler
	timer    timing.Timer
	disposed bool
}

// New creates a cycler, activates the initial item and, when an interval is
// set and autostart is not disabled, starts the timer.
func New[T any](items []T, opts Options[T]) *Cycler[T] {
	c := &Cycler[T]{
		items:      items,
		interval:   opts.Interval,
		onActivate: opts.OnActivate,
		onStart:    opts.OnStart,
		onPause:    opts.OnPause,
		sched:      opts.Scheduler,
	}
	if c.interval <= 0 {
		c.interval = DefaultInterval
	}
	if c.onActivate == nil {
		c.onActivate = func(Activation[T]) {}
	}
	if c.onStart == nil {
		c.onStart = func() {}
	}
	if c.onPause == nil {
		c.onPause = func() {}
	}
	if c.sched == nil {
		c.sched = timing.Real()
	}

	autostart := opts.Autostart == nil || *opts.Autostart

	c.GoTo(opts.Initial)
	if autostart && opts.Interval > 0 {
		c.Start(false)
	}
	return c
}

// Start fires OnStart (unless silent or already running) and re-arms the
// advance timer. Calling it while running only resets the timer.
func (c *Cycler[T]) Start(silent bool) *Cycler[T] {
	if c.disposed {
		return c
	}
	if !c.IsStarted() && !silent {
		c.onStart()
	}

	c.Pause(true)
	c.timer = c.sched.AfterFunc(c.interval, func() {
		c.Next()
	})
	return c
}

// Pause stops the advance timer, firing OnPause unless silent. It does
// nothing when already paused.
func (c *Cycler[T]) Pause(silent bool) *Cycler[T] {
	if !c.IsStarted() {
		return c
	}
	if !silent {
		c.onPause()
	}
	c.timer.Stop()
	c.timer = nil
	return c
}

// Restart delays the next advance by a full interval. Paused cyclers stay paused.
func (c *Cycler[T]) Restart(silent bool) *Cycler[T] {
	if c.IsStarted() {
		c.Pause(true).Start(silent)
	}
	return c
}

// Previous moves one item back, wrapping around
func (c *Cycler[T]) Previous() *Cycler[T] {
	return c.Next(-1)
}

// Next moves step items forward (default 1), wrapping around. It is a no-op
// on an empty list.
func (c *Cycler[T]) Next(step ...int) *Cycler[T] {
	i := 1
	if len(step) > 0 {
		i = step[0]
	}

	n := len(c.items)
	if n == 0 {
		return c
	}

	idx := (c.current + i + n*2) % n
	if idx < 0 {
		// only reachable after GoTo was given an index far out of range
		idx += n
	}
	return c.GoTo(idx)
}

// GoTo activates the item at index. The index is not clamped.
func (c *Cycler[T]) GoTo(index int) *Cycler[T] {
	if c.disposed {
		return c
	}

	a := Activation[T]{
		Index:         index,
		PreviousIndex: c.current,
		HasPrevious:   c.hasIndex,
	}
	a.Current, a.HasCurrent = c.at(index)
	if c.hasIndex {
		a.Previous, _ = c.at(c.current)
	}

	c.current = index
	c.hasIndex = true

	c.onActivate(a)
	c.Restart(true)
	return c
}

// GoToValue calls GoTo when v holds an integer and ignores anything else.
// Floats count as integers when they have no fractional part.
func (c *Cycler[T]) GoToValue(v any) *Cycler[T] {
	idx, ok := IndexOf(v)
	if !ok {
		return c
	}
	return c.GoTo(idx)
}

// IndexOf converts v to an index if it holds an integral number
func IndexOf(v any) (int, bool) {
	if v == nil {
		return 0, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return int(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > math.MaxInt {
			return 0, false
		}
		return int(u), true
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
			return 0, false
		}
		if f > math.MaxInt || f < math.MinInt {
			return 0, false
		}
		return int(f), true
	}
	return 0, false
}

// IsStarted reports whether an automatic advance is pending
func (c *Cycler[T]) IsStarted() bool {
	return c.timer != nil
}

// IsPaused is the inverse of IsStarted
func (c *Cycler[T]) IsPaused() bool {
	return !c.IsStarted()
}

// Current returns the current index. ok is false before the first activation.
func (c *Cycler[T]) Current() (index int, ok bool) {
	return c.current, c.hasIndex
}

// Len returns the number of items
func (c *Cycler[T]) Len() int {
	return len(c.items)
}

// Items returns a copy of the item list
func (c *Cycler[T]) Items() []T {
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Interval returns the advance interval
func (c *Cycler[T]) Interval() time.Duration {
	return c.interval
}

// Dispose stops the timer and drops the callbacks. Every later call is a no-op.
func (c *Cycler[T]) Dispose() {
	if c.disposed {
		return
	}
	c.Pause(true)
	c.disposed = true
	c.onActivate = func(Activation[T]) {}
	c.onStart = func() {}
	c.onPause = func() {}
}

// Disposed reports whether Dispose was called
func (c *Cycler[T]) Disposed() bool {
	return c.disposed
}

func (c *Cycler[T]) at(i int) (T, bool) {
	var zero T
	if i < 0 || i >= len(c.items) {
		return zero, false
	}
	return c.items[i], true
}
