package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/x/ansi"
)

// Hit identifies the control under a column of the controls row
type Hit int

const (
	HitNone Hit = iota
	HitPrevious
	HitNext
	HitDot
)

const (
	previousLabel = "‹"
	nextLabel     = "›"
	controlGap    = "   "
)

// Controls is the row under the slides: a previous button, one dot per
// slide and a next button, centered in the available width.
type Controls struct {
	styles *Styles
	dots   paginator.Model
	width  int
}

// NewControls creates the controls row
func NewControls(styles *Styles) *Controls {
	p := paginator.New()
	p.Type = paginator.Dots
	p.PerPage = 1
	p.ActiveDot = styles.ActiveDot.Render("●") + " "
	p.InactiveDot = styles.InactiveDot.Render("○") + " "
	return &Controls{styles: styles, dots: p}
}

// Update sets the slide count, the current slide and the row width
func (c *Controls) Update(count, current, width int) {
	if count > 0 {
		c.dots.SetTotalPages(count)
		c.dots.Page = min(max(current, 0), count-1)
	} else {
		// SetTotalPages ignores counts below one
		c.dots.TotalPages = 0
		c.dots.Page = 0
	}
	c.width = width
}

func (c *Controls) dotWidth() int {
	return ansi.StringWidth(c.dots.InactiveDot)
}

func (c *Controls) dotsWidth() int {
	return c.dots.TotalPages * c.dotWidth()
}

// start returns the column of the previous button
func (c *Controls) start() int {
	total := 2*ansi.StringWidth(previousLabel) + 2*len(controlGap) + c.dotsWidth()
	return max((c.width-total)/2, 0)
}

// Render draws the row
func (c *Controls) Render() string {
	var b strings.Builder
	b.WriteString(strings.Repeat(" ", c.start()))
	b.WriteString(c.styles.Button.Render(previousLabel))
	b.WriteString(controlGap)
	if c.dots.TotalPages > 0 {
		b.WriteString(c.dots.View())
	}
	b.WriteString(controlGap)
	b.WriteString(c.styles.Button.Render(nextLabel))
	return fit(b.String(), c.width)
}

// HitTest maps column x to a control. For HitDot the slide index is returned
// too. The buttons accept a click one cell to either side.
func (c *Controls) HitTest(x int) (Hit, int) {
	prev := c.start()
	dots := prev + ansi.StringWidth(previousLabel) + len(controlGap)
	next := dots + c.dotsWidth() + len(controlGap)

	switch {
	case x >= prev-1 && x <= prev+1:
		return HitPrevious, 0
	case x >= next-1 && x <= next+1:
		return HitNext, 0
	case x >= dots && x < dots+c.dotsWidth():
		return HitDot, (x - dots) / c.dotWidth()
	}
	return HitNone, 0
}
