package views

import (
	"math"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// RenderStrip lays the slides side by side and shows the width-wide window
// starting offset cells to the left of the first slide. Offsets are zero or
// negative when a slide is seated; a positive offset (rubber band past the
// first slide) or one beyond the last slide leaves blank cells.
func RenderStrip(slides []string, width, height int, offset float64) string {
	if width <= 0 || height <= 0 {
		return ""
	}

	lines := make([]string, height)
	blank := strings.Repeat(" ", width)
	if len(slides) == 0 {
		for i := range lines {
			lines[i] = blank
		}
		return strings.Join(lines, "\n")
	}

	split := make([][]string, len(slides))
	for i, s := range slides {
		split[i] = strings.Split(s, "\n")
	}

	x := -int(math.Round(offset))
	for row := 0; row < height; row++ {
		var b strings.Builder
		for _, slide := range split {
			line := ""
			if row < len(slide) {
				line = slide[row]
			}
			b.WriteString(fit(line, width))
		}
		lines[row] = window(b.String(), x, width)
	}
	return strings.Join(lines, "\n")
}

// fit pads or truncates line to exactly width cells
func fit(line string, width int) string {
	w := ansi.StringWidth(line)
	if w > width {
		return ansi.Truncate(line, width, "")
	}
	return line + strings.Repeat(" ", width-w)
}

// window cuts [x, x+width) out of line, padding whatever lies outside it
func window(line string, x, width int) string {
	if x < 0 {
		lead := -x
		if lead >= width {
			return strings.Repeat(" ", width)
		}
		return strings.Repeat(" ", lead) + fit(ansi.Cut(line, 0, width-lead), width-lead)
	}
	return fit(ansi.Cut(line, x, x+width), width)
}
