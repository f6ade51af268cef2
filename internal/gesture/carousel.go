// Package gesture turns drags and discrete inputs into cycler navigation.
//
// A Carousel owns one cycler and a render collaborator. Drags move the
// renderer directly; releasing a drag resolves the nearest slide (or the
// next one for a quick flick) and hands it to the cycler, whose activation
// callback settles the renderer there.
package gesture

import (
	"math"
	"time"

	"github.com/google/uuid"

	"swipeshow/internal/cycler"
)

// State is the drag state of a carousel
type State int

const (
	Idle State = iota
	Dragging
)

func (s State) String() string {
	if s == Dragging {
		return "dragging"
	}
	return "idle"
}

type dragState struct {
	originX    float64
	hasOrigin  bool
	baseX      float64
	width      float64
	wasRunning bool
	startIndex int
	delta      float64
	deadZone   float64
	lastMove   time.Time
}

// Carousel is a swipeable slideshow over items
type Carousel[T any] struct {
	id       string
	cfg      Config[T]
	cycler   *cycler.Cycler[T]
	renderer Renderer
	width    WidthFunc
	count    int

	state State
	drag  dragState

	ready       bool
	disabled    bool
	disposed    bool
	hoverPaused bool
}

// New creates a carousel and activates the initial item. The cycler is
// started right away when cfg has an interval and autostart is not
// disabled.
func New[T any](items []T, width WidthFunc, renderer Renderer, cfg Config[T]) *Carousel[T] {
	cfg = cfg.normalize()
	c := &Carousel[T]{
		id:       uuid.NewString(),
		cfg:      cfg,
		renderer: renderer,
		width:    width,
		count:    len(items),
	}

	autostart := false
	c.cycler = cycler.New(items, cycler.Options[T]{
		Interval:   cfg.Interval,
		Initial:    cfg.Initial,
		Autostart:  &autostart,
		OnActivate: c.onActivate,
		OnStart:    c.onStart,
		OnPause:    c.onPause,
		Scheduler:  cfg.Scheduler,
	})
	c.ready = true

	if cfg.Interval > 0 && (cfg.Autostart == nil || *cfg.Autostart) {
		c.cycler.Start(false)
	}
	return c
}

func (c *Carousel[T]) onActivate(a cycler.Activation[T]) {
	speed := c.cfg.Speed
	if !c.ready {
		speed = 0
	}
	c.renderer.SetOffset(-c.viewportWidth()*float64(a.Index), speed)

	if c.cfg.OnActivate != nil {
		c.cfg.OnActivate(a)
	}
}

func (c *Carousel[T]) onStart() {
	if c.cfg.OnStart != nil {
		c.cfg.OnStart()
	}
}

func (c *Carousel[T]) onPause() {
	if c.cfg.OnPause != nil {
		c.cfg.OnPause()
	}
}

func (c *Carousel[T]) viewportWidth() float64 {
	if c.width == nil {
		return 0
	}
	w := c.width()
	if w < 0 || math.IsNaN(w) {
		return 0
	}
	return w
}

// ID returns the instance id
func (c *Carousel[T]) ID() string { return c.id }

// Next shows the next item
func (c *Carousel[T]) Next() {
	if c.inert() {
		return
	}
	c.cycler.Next()
}

// Previous shows the previous item
func (c *Carousel[T]) Previous() {
	if c.inert() {
		return
	}
	c.cycler.Previous()
}

// GoTo shows item n
func (c *Carousel[T]) GoTo(n int) {
	if c.inert() {
		return
	}
	c.cycler.GoTo(n)
}

// GoToValue shows item v if v holds an integer
func (c *Carousel[T]) GoToValue(v any) {
	if c.inert() {
		return
	}
	c.cycler.GoToValue(v)
}

// Start starts automatic advancing
func (c *Carousel[T]) Start() {
	if c.disposed {
		return
	}
	c.hoverPaused = false
	c.cycler.Start(false)
}

// Pause stops automatic advancing. A drag in progress will not resume it.
func (c *Carousel[T]) Pause() {
	if c.disposed {
		return
	}
	c.hoverPaused = false
	c.drag.wasRunning = false
	c.cycler.Pause(false)
}

// IsStarted reports whether automatic advancing is on
func (c *Carousel[T]) IsStarted() bool {
	return !c.disposed && c.cycler.IsStarted()
}

// IsPaused is the inverse of IsStarted
func (c *Carousel[T]) IsPaused() bool {
	return !c.IsStarted()
}

// Current returns the index of the active item
func (c *Carousel[T]) Current() int {
	idx, _ := c.cycler.Current()
	return idx
}

// Len returns the number of items
func (c *Carousel[T]) Len() int { return c.count }

// Items returns a copy of the items
func (c *Carousel[T]) Items() []T { return c.cycler.Items() }

// State returns the drag state
func (c *Carousel[T]) State() State { return c.state }

// Disable makes every input inert. A drag in progress is settled first.
func (c *Carousel[T]) Disable() {
	if c.state == Dragging {
		c.settle(false)
	}
	c.disabled = true
}

// Enable undoes Disable
func (c *Carousel[T]) Enable() {
	c.disabled = false
}

// Disabled reports whether inputs are inert
func (c *Carousel[T]) Disabled() bool { return c.disabled }

// Disposed reports whether Dispose was called
func (c *Carousel[T]) Disposed() bool { return c.disposed }

// HoverPaused reports whether the pointer hovering paused the carousel
func (c *Carousel[T]) HoverPaused() bool { return c.hoverPaused }

func (c *Carousel[T]) inert() bool {
	return c.disposed || c.disabled
}

func (c *Carousel[T]) accepts(ev PointerEvent) bool {
	if c.inert() {
		return false
	}
	return ev.Source != SourceMouse || c.cfg.EnableMouse
}

// DragStart begins a drag. A running cycler is paused silently and resumed
// when the drag ends.
func (c *Carousel[T]) DragStart(ev PointerEvent) {
	if !c.accepts(ev) || c.state == Dragging {
		return
	}

	base := c.renderer.CurrentOffset()
	d := dragState{
		baseX:      base,
		width:      c.viewportWidth(),
		wasRunning: c.cycler.IsStarted(),
		startIndex: c.Current(),
	}
	if ev.valid() {
		d.originX = ev.X
		d.hasOrigin = true
	}
	if ev.OnControl {
		d.deadZone = c.cfg.DragDeadZone
	}
	c.drag = d
	c.state = Dragging

	// stop any transition where it is
	c.renderer.SetOffset(base, 0)

	if d.wasRunning {
		c.cycler.Pause(true)
	}
}

// DragMove follows the pointer. Samples without coordinates are ignored.
func (c *Carousel[T]) DragMove(ev PointerEvent) {
	if c.state != Dragging || !c.accepts(ev) || !ev.valid() {
		return
	}

	if !c.drag.hasOrigin {
		c.drag.originX = ev.X
		c.drag.hasOrigin = true
	}

	delta := ev.X - c.drag.originX
	if math.Abs(delta) <= c.drag.deadZone {
		delta = 0
	}
	c.drag.delta = delta
	c.drag.lastMove = c.cfg.Scheduler.Now()

	c.renderer.SetOffset(c.rubberBand(c.drag.baseX+delta), 0)
}

// rubberBand applies friction to the part of target beyond either end
func (c *Carousel[T]) rubberBand(target float64) float64 {
	f := c.cfg.Friction
	last := 0.0
	if c.count > 1 {
		last = -c.drag.width * float64(c.count-1)
	}
	if target > 0 {
		return target * f
	}
	if target < last {
		return last + (target-last)*f
	}
	return target
}

// DragEnd releases the drag and settles on the resolved item
func (c *Carousel[T]) DragEnd(ev PointerEvent) {
	if c.state != Dragging || !c.accepts(ev) {
		return
	}
	c.settle(true)
}

// Cancel abandons a drag, settling on the nearest item without flick
// detection
func (c *Carousel[T]) Cancel() {
	if c.state != Dragging || c.disposed {
		return
	}
	c.settle(false)
}

func (c *Carousel[T]) settle(allowFlick bool) {
	d := c.drag
	c.drag = dragState{}
	c.state = Idle

	index := c.resolve(d, allowFlick)
	if c.count > 0 {
		c.cycler.GoTo(index)
	}

	if d.wasRunning {
		c.cycler.Start(true)
	}
}

func (c *Carousel[T]) resolve(d dragState, allowFlick bool) int {
	if d.width <= 0 {
		return d.startIndex
	}

	offset := c.renderer.CurrentOffset()
	index := -int(math.Floor(offset/d.width + 0.5))

	if allowFlick && !d.lastMove.IsZero() && index == d.startIndex {
		elapsed := c.cfg.Scheduler.Now().Sub(d.lastMove)
		t := c.cfg.SwipeThreshold
		if math.Abs(d.delta) > t.MinDistance && elapsed < t.MaxDuration {
			if d.delta < 0 {
				index++
			} else {
				index--
			}
		}
	}

	if index > c.count-1 {
		index = c.count - 1
	}
	if index < 0 {
		index = 0
	}
	return index
}

// HoverEnter pauses a running carousel while the pointer is over it
func (c *Carousel[T]) HoverEnter() {
	if c.disposed || !c.cfg.PauseOnHover || c.hoverPaused {
		return
	}
	if !c.cycler.IsStarted() {
		return
	}
	c.hoverPaused = true
	c.cycler.Pause(false)
}

// HoverLeave resumes a carousel paused by HoverEnter
func (c *Carousel[T]) HoverLeave() {
	if c.disposed || !c.hoverPaused {
		return
	}
	c.hoverPaused = false
	c.cycler.Start(false)
}

// HandleResize re-seats the current item after the viewport width changed
func (c *Carousel[T]) HandleResize() {
	if c.disposed {
		return
	}
	w := c.viewportWidth()
	c.renderer.SetOffset(-w*float64(c.Current()), 0)
	if r, ok := c.renderer.(Repositioner); ok {
		r.Reposition(w, c.count)
	}
}

// Dispose stops the timer and detaches every input. It is safe to call
// more than once.
func (c *Carousel[T]) Dispose() {
	if c.disposed {
		return
	}
	c.disposed = true
	c.state = Idle
	c.drag = dragState{}
	c.hoverPaused = false
	c.cycler.Dispose()

	if c.cfg.OnDispose != nil {
		c.cfg.OnDispose()
	}
}
