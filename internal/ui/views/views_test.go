package views

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"swipeshow/internal/domain"
)

func TestRenderStrip(t *testing.T) {
	slides := []string{"AAAA", "BBBB"}

	tests := []struct {
		name   string
		offset float64
		want   string
	}{
		{"first slide", 0, "AAAA"},
		{"second slide", -4, "BBBB"},
		{"between slides", -2, "AABB"},
		{"rounds to nearest cell", -2.6, "ABBB"},
		{"pulled past the first slide", 2, "  AA"},
		{"pulled past the last slide", -6, "BB  "},
		{"far outside", 10, "    "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RenderStrip(slides, 4, 1, tt.offset))
		})
	}
}

func TestRenderStripPadsRows(t *testing.T) {
	out := RenderStrip([]string{"ab\ncd", "x"}, 3, 3, -3)
	assert.Equal(t, "x  \n   \n   ", out)

	assert.Equal(t, "  \n  ", RenderStrip(nil, 2, 2, 0))
	assert.Empty(t, RenderStrip([]string{"a"}, 0, 1, 0))
}

func TestControlsLayout(t *testing.T) {
	c := NewControls(NewStyles())
	c.Update(3, 1, 20)

	row := c.Render()
	assert.Equal(t, 20, ansi.StringWidth(row))
	assert.Equal(t, 1, strings.Count(row, "●"))
	assert.Equal(t, 2, strings.Count(row, "○"))

	hit, _ := c.HitTest(3)
	assert.Equal(t, HitPrevious, hit)
	hit, _ = c.HitTest(16)
	assert.Equal(t, HitNext, hit)
	hit, _ = c.HitTest(17)
	assert.Equal(t, HitNext, hit, "buttons accept a click next to them")

	hit, idx := c.HitTest(9)
	assert.Equal(t, HitDot, hit)
	assert.Equal(t, 1, idx)
	hit, idx = c.HitTest(12)
	assert.Equal(t, HitDot, hit)
	assert.Equal(t, 2, idx)

	hit, _ = c.HitTest(0)
	assert.Equal(t, HitNone, hit)
	hit, _ = c.HitTest(14)
	assert.Equal(t, HitNone, hit)
}

func TestControlsWithoutSlides(t *testing.T) {
	c := NewControls(NewStyles())
	c.Update(0, 0, 10)

	row := c.Render()
	assert.NotContains(t, row, "●")
	assert.NotContains(t, row, "○")
	hit, _ := c.HitTest(5)
	assert.NotEqual(t, HitDot, hit)
}

func TestRenderSlide(t *testing.T) {
	s := NewStyles()

	out := RenderSlide(s, domain.Slide{Title: "Hello", Body: "world"}, 30, 8)
	require.NotEmpty(t, out)
	assert.Equal(t, 30, lipgloss.Width(out))
	assert.Equal(t, 8, lipgloss.Height(out))
	assert.Contains(t, out, "Hello")
	assert.Contains(t, out, "world")

	out = RenderSlide(s, domain.Slide{Title: "Broken", File: "x.txt", Error: "failed to load slide 1"}, 40, 8)
	assert.Contains(t, out, "failed to load slide 1")

	out = RenderSlide(s, domain.Slide{Title: "Later", File: "later.txt"}, 40, 8)
	assert.Contains(t, out, "loading later.txt")

	assert.Empty(t, RenderSlide(s, domain.Slide{}, 0, 5))
}
