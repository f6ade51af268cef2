package gesture

//go:generate mockgen -destination mock_renderer_test.go -package $GOPACKAGE -write_package_comment=false swipeshow/internal/gesture Renderer

import (
	"time"

	"swipeshow/internal/cycler"
	"swipeshow/internal/timing"
)

// fakeRenderer jumps straight to every offset it is given
type fakeRenderer struct {
	offset      float64
	calls       []offsetCall
	repositions int
	lastWidth   float64
}

type offsetCall struct {
	offset     float64
	transition time.Duration
}

func (r *fakeRenderer) SetOffset(offset float64, transition time.Duration) {
	r.offset = offset
	r.calls = append(r.calls, offsetCall{offset, transition})
}

func (r *fakeRenderer) CurrentOffset() float64 { return r.offset }

func (r *fakeRenderer) Reposition(width float64, count int) {
	r.repositions++
	r.lastWidth = width
}

func (r *fakeRenderer) last() offsetCall { return r.calls[len(r.calls)-1] }

type hooks struct {
	activations []cycler.Activation[string]
	starts      int
	pauses      int
	disposes    int
}

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

type fixture struct {
	clock    *timing.Manual
	renderer *fakeRenderer
	hooks    *hooks
	width    float64
	carousel *Carousel[string]
}

func newFixture(n int, tweak func(*Config[string])) *fixture {
	f := &fixture{
		clock:    timing.NewManual(epoch),
		renderer: &fakeRenderer{},
		hooks:    &hooks{},
		width:    100,
	}

	items := make([]string, n)
	for i := range items {
		items[i] = string(rune('a' + i))
	}

	cfg := DefaultConfig[string]()
	cfg.Scheduler = f.clock
	cfg.OnActivate = func(a cycler.Activation[string]) { f.hooks.activations = append(f.hooks.activations, a) }
	cfg.OnStart = func() { f.hooks.starts++ }
	cfg.OnPause = func() { f.hooks.pauses++ }
	cfg.OnDispose = func() { f.hooks.disposes++ }
	if tweak != nil {
		tweak(&cfg)
	}

	f.carousel = New(items, func() float64 { return f.width }, f.renderer, cfg)
	return f
}

func newClock() *timing.Manual { return timing.NewManual(epoch) }

func (f *fixture) touch(x float64) PointerEvent { return At(x, SourceTouch) }
