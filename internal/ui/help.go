package ui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"

	"swipeshow/internal/domain"
)

// errNoProgram is returned when the pager is opened before the program is set
var errNoProgram = errors.New("program not set")

// HelpRenderer handles help content rendering
type HelpRenderer struct{}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer() *HelpRenderer {
	return &HelpRenderer{}
}

// RenderHelpContent generates help content with colors for the pager
func (r *HelpRenderer) RenderHelpContent(keys keyMap) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220")).
		Width(10)

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	line := func(b key.Binding) string {
		h := b.Help()
		return fmt.Sprintf("  %s %s\n", keyStyle.Render(h.Key), descStyle.Render(h.Desc))
	}

	var help strings.Builder

	help.WriteString(titleStyle.Render("swipeshow Help"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Slides"))
	help.WriteString("\n")
	for _, b := range keys.navigation() {
		help.WriteString(line(b))
	}
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Mouse"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s %s\n", keyStyle.Render("drag"), descStyle.Render("Swipe between slides, a quick flick moves one slide")))
	help.WriteString(fmt.Sprintf("  %s %s\n", keyStyle.Render("click"), descStyle.Render("‹ › and the dots under the slides")))
	help.WriteString(fmt.Sprintf("  %s %s\n", keyStyle.Render("hover"), descStyle.Render("Autoplay pauses while the pointer is over the slides")))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Other"))
	help.WriteString("\n")
	for _, b := range []key.Binding{keys.Open, keys.Reload, keys.Help} {
		help.WriteString(line(b))
	}
	h := keys.Quit.Help()
	help.WriteString(fmt.Sprintf("  %s %s", keyStyle.Render(h.Key), descStyle.Render(h.Desc)))

	return help.String()
}

// RenderSlideContent renders a slide as a plain document for the pager
func (r *HelpRenderer) RenderSlideContent(deckTitle string, index, total int, s domain.Slide) string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	var b strings.Builder
	b.WriteString(dimStyle.Render(fmt.Sprintf("%s · %d/%d", deckTitle, index+1, total)))
	b.WriteString("\n\n")
	if s.Title != "" {
		b.WriteString(titleStyle.Render(s.Title))
		b.WriteString("\n\n")
	}
	if s.Error != "" {
		b.WriteString(s.Error)
	} else {
		b.WriteString(s.Body)
	}
	return b.String()
}

// PagerOps shows content in the ov pager
type PagerOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewPagerOps creates a new pager operations instance
func NewPagerOps() *PagerOps {
	return &PagerOps{}
}

// SetProgram sets the program whose terminal the pager borrows
func (p *PagerOps) SetProgram(program *tea.Program) {
	p.program = program
}

// ShowInPager shows content using ov pager
func (p *PagerOps) ShowInPager(content string) error {
	if p.program == nil {
		return errNoProgram
	}

	// Release terminal control to run ov
	if err := p.program.ReleaseTerminal(); err != nil {
		return err
	}

	// Ensure terminal is restored even if ov fails
	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = p.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(content))
	if err != nil {
		return fmt.Errorf("failed to open pager: %w", err)
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}
