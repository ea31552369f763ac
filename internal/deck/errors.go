package deck

import (
	"errors"
	"fmt"
)

// Sentinel errors for failures that carry no extra context.
var (
	// ErrEmptyDeck reports an export attempt on a deck with no cards.
	ErrEmptyDeck = errors.New("deck has no cards")

	// ErrDegenerateDeck reports a non-empty card list that sums to zero.
	ErrDegenerateDeck = errors.New("deck has entries but a total size of zero")
)

// StructureError reports an imported document whose top-level shape is
// not a deck file.
type StructureError struct {
	Reason string
}

func (e *StructureError) Error() string {
	return "invalid deck file structure: " + e.Reason
}

// EntryError reports a single card record that failed type or range
// checks. Entry holds the offending record as it appeared.
type EntryError struct {
	Entry string
}

func (e *EntryError) Error() string {
	return "malformed card entry: " + e.Entry
}

// UnknownCardError reports a card identifier the catalog cannot resolve.
type UnknownCardError struct {
	CardID string
}

func (e *UnknownCardError) Error() string {
	return fmt.Sprintf("unknown card %q", e.CardID)
}

// SizeError reports a deck whose total size exceeds the configured cap.
type SizeError struct {
	Total int
	Limit int
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("deck has %d cards, max is %d", e.Total, e.Limit)
}
