package gesture

import (
	"math"
	"time"
)

// Source identifies the device behind a pointer event
type Source int

const (
	SourceTouch Source = iota
	SourceMouse
)

func (s Source) String() string {
	switch s {
	case SourceTouch:
		return "touch"
	case SourceMouse:
		return "mouse"
	default:
		return "unknown"
	}
}

// PointerEvent is one pointer sample. Events without an X coordinate are
// dropped by the carousel.
type PointerEvent struct {
	X      float64
	HasX   bool
	Source Source
	// OnControl marks events that start on a button or other tappable
	// element; drags from there have to cross the dead zone first.
	OnControl bool
}

// At builds a pointer event at x
func At(x float64, src Source) PointerEvent {
	return PointerEvent{X: x, HasX: true, Source: src}
}

func (e PointerEvent) valid() bool {
	return e.HasX && !math.IsNaN(e.X) && !math.IsInf(e.X, 0)
}

// Renderer is the render collaborator. It owns the visual transition.
type Renderer interface {
	// SetOffset moves the strip to offset over transition. A zero transition
	// is instant. A call during a running transition replaces it.
	SetOffset(offset float64, transition time.Duration)
	// CurrentOffset returns the offset that is on screen right now,
	// including any transition in progress.
	CurrentOffset() float64
}

// Repositioner is implemented by renderers that lay slides out themselves
// and need to know when the viewport width changes.
type Repositioner interface {
	Reposition(width float64, count int)
}

// WidthFunc returns the current viewport width
type WidthFunc func() float64
