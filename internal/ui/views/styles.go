package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	Counter       lipgloss.Style
	SlideFrame    lipgloss.Style
	SlideTitle    lipgloss.Style
	SlideBody     lipgloss.Style
	SlideError    lipgloss.Style
	Button        lipgloss.Style
	ActiveDot     lipgloss.Style
	InactiveDot   lipgloss.Style
	Dim           lipgloss.Style
	Help          lipgloss.Style
	StatusError   lipgloss.Style
	StatusLoading lipgloss.Style
	StatusPlaying lipgloss.Style
	StatusPaused  lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Counter: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		SlideFrame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(1, 2),
		SlideTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			MarginBottom(1),
		SlideBody:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		SlideError:    lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Italic(true),
		Button:        lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true),
		ActiveDot:     lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		InactiveDot:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Dim:           lipgloss.NewStyle().Faint(true),
		Help:          lipgloss.NewStyle().Faint(true),
		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		StatusLoading: lipgloss.NewStyle().Foreground(lipgloss.Color("241")), // gray
		StatusPlaying: lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
		StatusPaused:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
	}
}
