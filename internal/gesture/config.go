package gesture

import (
	"time"

	"swipeshow/internal/cycler"
	"swipeshow/internal/timing"
)

// SwipeThreshold decides when a short drag counts as a flick
type SwipeThreshold struct {
	// MinDistance is the drag distance a flick must exceed
	MinDistance float64
	// MaxDuration is the longest pause between the last move and release
	MaxDuration time.Duration
}

// Config configures a Carousel. It is copied at construction, so one value
// can be shared between instances.
type Config[T any] struct {
	// Speed is the transition time used when settling on a slide
	Speed time.Duration
	// Friction scales how far the strip follows a drag past either end
	Friction       float64
	SwipeThreshold SwipeThreshold
	// DragDeadZone is the distance a drag started on a control must travel
	// before the strip moves
	DragDeadZone float64
	EnableMouse  bool
	PauseOnHover bool

	Interval  time.Duration
	Initial   int
	Autostart *bool

	OnActivate func(cycler.Activation[T])
	OnStart    func()
	OnPause    func()
	OnDispose  func()

	Scheduler timing.Scheduler
}

// Default values
const (
	DefaultSpeed        = 400 * time.Millisecond
	DefaultFriction     = 0.3
	DefaultMinDistance  = 10
	DefaultMaxDuration  = 400 * time.Millisecond
	DefaultDragDeadZone = 100
)

// DefaultConfig returns the default carousel settings
func DefaultConfig[T any]() Config[T] {
	return Config[T]{
		Speed:    DefaultSpeed,
		Friction: DefaultFriction,
		SwipeThreshold: SwipeThreshold{
			MinDistance: DefaultMinDistance,
			MaxDuration: DefaultMaxDuration,
		},
		DragDeadZone: DefaultDragDeadZone,
		EnableMouse:  true,
		PauseOnHover: true,
	}
}

// normalize fills unset or out-of-range values
func (c Config[T]) normalize() Config[T] {
	if c.Speed < 0 {
		c.Speed = 0
	}
	if c.Friction <= 0 || c.Friction > 1 {
		c.Friction = DefaultFriction
	}
	if c.SwipeThreshold.MinDistance < 0 {
		c.SwipeThreshold.MinDistance = 0
	}
	if c.DragDeadZone < 0 {
		c.DragDeadZone = 0
	}
	if c.Scheduler == nil {
		c.Scheduler = timing.Real()
	}
	if c.Autostart != nil {
		v := *c.Autostart
		c.Autostart = &v
	}
	return c
}
