package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventSlideActivated   EventType = "SlideActivated"
	EventSlideshowStarted EventType = "SlideshowStarted"
	EventSlideshowPaused  EventType = "SlideshowPaused"
	EventCarouselDisposed EventType = "CarouselDisposed"
	EventDeckLoaded       EventType = "DeckLoaded"
	EventDeckReloaded     EventType = "DeckReloaded"
	EventAssetsLoaded     EventType = "AssetsLoaded"
	EventError            EventType = "Error"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// SlideActivatedEvent is emitted every time a slide becomes the current one
type SlideActivatedEvent struct {
	CarouselID    string
	Index         int
	Title         string
	PreviousIndex int
	HasPrevious   bool
}

func (e SlideActivatedEvent) Type() EventType { return EventSlideActivated }

// SlideshowStartedEvent is emitted when automatic advancing begins
type SlideshowStartedEvent struct {
	CarouselID string
}

func (e SlideshowStartedEvent) Type() EventType { return EventSlideshowStarted }

// SlideshowPausedEvent is emitted when automatic advancing stops
type SlideshowPausedEvent struct {
	CarouselID string
}

func (e SlideshowPausedEvent) Type() EventType { return EventSlideshowPaused }

// CarouselDisposedEvent is emitted once a carousel is torn down
type CarouselDisposedEvent struct {
	CarouselID string
}

func (e CarouselDisposedEvent) Type() EventType { return EventCarouselDisposed }

// DeckLoadedEvent is emitted when a deck file is parsed
type DeckLoadedEvent struct {
	Path   string
	Slides int
}

func (e DeckLoadedEvent) Type() EventType { return EventDeckLoaded }

// DeckReloadedEvent is emitted when a changed deck replaces the running one
type DeckReloadedEvent struct {
	Path string
}

func (e DeckReloadedEvent) Type() EventType { return EventDeckReloaded }

// AssetsLoadedEvent is emitted when deferred slide bodies are resolved
type AssetsLoadedEvent struct {
	Path   string
	Loaded int
	Failed int
}

func (e AssetsLoadedEvent) Type() EventType { return EventAssetsLoaded }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }
