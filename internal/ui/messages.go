package ui

import (
	"swipeshow/internal/domain"
)

// deckLoadedMsg contains the result of re-reading the deck file
type deckLoadedMsg struct {
	deck *domain.Deck
	err  error
}

// assetsLoadedMsg contains the deck with its deferred slide bodies read.
// gen ties it to the deck it was started for.
type assetsLoadedMsg struct {
	gen  int
	deck *domain.Deck
	err  error
}

// deckChangedMsg signals that the watched deck file changed
type deckChangedMsg struct{}

// pagerClosedMsg contains the result of a pager command
type pagerClosedMsg struct {
	err error
}
