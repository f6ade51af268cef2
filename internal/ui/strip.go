package ui

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	stripFPS = 60
	// a critically damped spring is within 1% of its target after
	// about 6.6 / omega seconds
	settleFactor = 6.6
	// positions and velocities below this are considered at rest
	restEpsilon = 0.05
)

// frameMsg advances the strip animation. Frames from an overridden
// transition carry an old generation and are dropped.
type frameMsg struct {
	gen uint64
}

// Strip is the render collaborator of the carousel. It keeps the horizontal
// offset of the slide strip and animates towards new targets with a spring.
type Strip struct {
	spring harmonica.Spring
	pos    float64
	vel    float64
	target float64

	gen       uint64
	animating bool
	kick      bool

	width float64
	count int
}

// NewStrip creates a strip at offset 0
func NewStrip() *Strip {
	return &Strip{}
}

// SetOffset moves the strip to offset. A zero transition jumps there; any
// other value starts a spring animation that replaces whatever transition
// was running.
func (s *Strip) SetOffset(offset float64, transition time.Duration) {
	s.gen++
	s.target = offset
	if transition <= 0 {
		s.pos = offset
		s.vel = 0
		s.animating = false
		s.kick = false
		return
	}

	omega := settleFactor / transition.Seconds()
	s.spring = harmonica.NewSpring(harmonica.FPS(stripFPS), omega, 1.0)
	s.animating = true
	s.kick = true
}

// CurrentOffset returns the offset currently on screen
func (s *Strip) CurrentOffset() float64 {
	return s.pos
}

// Target returns the offset the strip is heading to
func (s *Strip) Target() float64 {
	return s.target
}

// Animating reports whether a transition is running
func (s *Strip) Animating() bool {
	return s.animating
}

// Reposition records the slide geometry after a resize
func (s *Strip) Reposition(width float64, count int) {
	s.width = width
	s.count = count
}

// Kick returns the command that drives a freshly started transition, or nil
// when no new transition started since the last call.
func (s *Strip) Kick() tea.Cmd {
	if !s.kick {
		return nil
	}
	s.kick = false
	return s.nextFrame()
}

func (s *Strip) nextFrame() tea.Cmd {
	gen := s.gen
	return tea.Tick(time.Second/stripFPS, func(time.Time) tea.Msg {
		return frameMsg{gen: gen}
	})
}

// Update steps the animation by one frame
func (s *Strip) Update(msg frameMsg) tea.Cmd {
	if msg.gen != s.gen || !s.animating {
		return nil
	}

	s.pos, s.vel = s.spring.Update(s.pos, s.vel, s.target)
	if math.Abs(s.pos-s.target) < restEpsilon && math.Abs(s.vel) < restEpsilon {
		s.pos = s.target
		s.vel = 0
		s.animating = false
		return nil
	}
	return s.nextFrame()
}
