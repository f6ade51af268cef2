// Package deck reads and writes slideshow decks.
//
// A deck is a TOML file:
//
//	title = "Quarterly review"
//
//	[[slides]]
//	title = "Welcome"
//	body = "..."
//
//	[[slides]]
//	title = "Numbers"
//	file = "numbers.txt"
//
// Slides with a file are deferred: their body is read by LoadAssets,
// relative to the deck file.
package deck

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"swipeshow/internal/domain"
)

// ErrBodyAndFile is returned for a slide that sets both body and file
var ErrBodyAndFile = errors.New("slide sets both body and file")

type deckFile struct {
	Title  string      `toml:"title"`
	Slides []slideFile `toml:"slides"`
}

type slideFile struct {
	Title string `toml:"title"`
	Body  string `toml:"body,multiline,omitempty"`
	File  string `toml:"file,omitempty"`
}

// Load reads the deck at path
func Load(path string) (*domain.Deck, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read deck file: %w", err)
	}

	d, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	d.Path = path
	return d, nil
}

// Parse decodes a deck. Unknown keys are rejected so typos surface early.
func Parse(data []byte) (*domain.Deck, error) {
	var f deckFile
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return nil, fmt.Errorf("failed to parse deck: %s", strict.String())
		}
		return nil, fmt.Errorf("failed to parse deck: %w", err)
	}

	d := &domain.Deck{Title: f.Title, Slides: make([]domain.Slide, 0, len(f.Slides))}
	for i, s := range f.Slides {
		if s.Body != "" && s.File != "" {
			return nil, fmt.Errorf("slide %d: %w", i+1, ErrBodyAndFile)
		}
		d.Slides = append(d.Slides, domain.Slide{Title: s.Title, Body: s.Body, File: s.File})
	}
	return d, nil
}

// Write stores d at path, creating parent directories as needed
func Write(path string, d *domain.Deck) error {
	f := deckFile{Title: d.Title}
	for _, s := range d.Slides {
		f.Slides = append(f.Slides, slideFile{Title: s.Title, Body: s.Body, File: s.File})
	}

	data, err := toml.Marshal(f)
	if err != nil {
		return fmt.Errorf("failed to marshal deck: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create deck directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write deck file: %w", err)
	}
	return nil
}

// Sample returns the deck shown when no deck file is given
func Sample() *domain.Deck {
	return &domain.Deck{
		Title: "swipeshow",
		Slides: []domain.Slide{
			{
				Title: "Welcome",
				Body:  "This is swipeshow, a slideshow for the terminal.\n\nSlides advance on their own every few seconds.",
			},
			{
				Title: "Navigate",
				Body:  "Use ← and → (or h and l) to move between slides.\nPress 1-9 to jump, space to pause or resume.",
			},
			{
				Title: "Drag",
				Body:  "Drag the slide strip with the mouse.\nA quick flick is enough to move one slide.\nPulling past the ends meets some resistance.",
			},
			{
				Title: "Hover",
				Body:  "Autoplay pauses while the pointer rests on the slideshow\nand picks up again when it leaves.",
			},
			{
				Title: "Your own deck",
				Body:  "Run `swipeshow init talk.toml` to write this deck to disk,\nedit it, then `swipeshow talk.toml --watch`.",
			},
		},
	}
}
