package domain

// Deck represents a loaded slideshow
type Deck struct {
	Title  string
	Path   string // file the deck was read from ("" for the built-in sample)
	Slides []Slide
}

// Slide represents one page of a deck
type Slide struct {
	Title string
	Body  string
	File  string // deferred body, resolved relative to the deck file
	Error string // load error for a deferred body, if any
}

// Deferred reports whether the slide body still has to be read from File
func (s Slide) Deferred() bool {
	return s.File != "" && s.Body == "" && s.Error == ""
}

// Len returns the number of slides, nil-safe
func (d *Deck) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Slides)
}

// PlaybackState represents what the carousel is doing right now
type PlaybackState struct {
	Index    int
	Total    int
	Playing  bool
	Hovered  bool // paused while the pointer is over the slides
	Dragging bool
	Loading  bool
	Disabled bool
}
