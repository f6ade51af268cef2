package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"swipeshow/internal/domain"
)

// RenderSlide draws one slide as a block of exactly width x height cells
func RenderSlide(s *Styles, slide domain.Slide, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}

	frame := s.SlideFrame
	innerW := width - frame.GetHorizontalFrameSize()
	innerH := height - frame.GetVerticalFrameSize()
	if innerW < 1 || innerH < 1 {
		return lipgloss.Place(width, height, lipgloss.Left, lipgloss.Top, "")
	}

	var b strings.Builder
	if slide.Title != "" {
		b.WriteString(s.SlideTitle.Render(slide.Title))
		b.WriteString("\n")
	}
	switch {
	case slide.Error != "":
		b.WriteString(s.SlideError.Render(slide.Error))
	case slide.Deferred():
		b.WriteString(s.Dim.Render("loading " + slide.File + "..."))
	default:
		b.WriteString(s.SlideBody.Render(slide.Body))
	}

	body := lipgloss.NewStyle().
		Width(innerW).
		MaxWidth(innerW).
		Height(innerH).
		MaxHeight(innerH).
		Render(b.String())

	return lipgloss.Place(width, height, lipgloss.Left, lipgloss.Top, frame.Render(body))
}
