package deck

import (
	"fmt"
	"math"
	"sort"
)

// Stock composition limits.
const (
	DefaultMaxDeckSize = 100
	DefaultCopyLimit   = 3
)

// Limits holds the adjustable composition rules: the total deck size cap
// and the per-card copy cap. Both are injected at construction, never
// read from package state.
type Limits struct {
	MaxDeckSize int
	CopyLimit   int
}

// DefaultLimits returns the stock limits.
func DefaultLimits() Limits {
	return Limits{MaxDeckSize: DefaultMaxDeckSize, CopyLimit: DefaultCopyLimit}
}

// AddOutcome reports the result of an attempt to add a card copy.
type AddOutcome int

const (
	// AddOK means the copy was added.
	AddOK AddOutcome = iota
	// AddCopyLimit means the card already has the maximum number of copies.
	AddCopyLimit
	// AddDeckFull means the deck already holds the maximum number of cards.
	AddDeckFull
	// AddUnknownCard means the identifier is not in the catalog.
	AddUnknownCard
)

func (o AddOutcome) String() string {
	switch o {
	case AddOK:
		return "added"
	case AddCopyLimit:
		return "copy limit reached"
	case AddDeckFull:
		return "deck size limit reached"
	case AddUnknownCard:
		return "unknown card"
	default:
		return "unknown outcome"
	}
}

// CanAdd reports whether one more copy may join a deck that currently
// holds quantity copies of the card and total cards overall. The copy
// limit is checked before the size limit.
func (l Limits) CanAdd(quantity, total int) AddOutcome {
	if quantity >= l.CopyLimit {
		return AddCopyLimit
	}
	if total >= l.MaxDeckSize {
		return AddDeckFull
	}
	return AddOK
}

// ValidateEntries checks an ordered list of card records against the
// catalog and limits, returning the first failure:
//
//  1. every quantity is at least one
//  2. every cardId resolves in the catalog
//  3. the total, summed over the records as listed, fits the size cap
//  4. a non-empty list must not sum to zero
//
// The per-card copy limit is not checked: it binds interactive
// composition only, so decks built elsewhere may carry more copies of a
// card than AddCopy would allow.
func ValidateEntries(entries []Entry, cat Catalog, limits Limits) error {
	for _, e := range entries {
		if e.Quantity < 1 {
			return &EntryError{Entry: fmt.Sprintf("%s x%d", e.CardID, e.Quantity)}
		}
	}
	for _, e := range entries {
		if !cat.Has(e.CardID) {
			return &UnknownCardError{CardID: e.CardID}
		}
	}
	total := 0
	for _, e := range entries {
		// quantities are all positive past the first gate, so the sum
		// saturates instead of wrapping
		if e.Quantity > math.MaxInt-total {
			total = math.MaxInt
			break
		}
		total += e.Quantity
	}
	if total > limits.MaxDeckSize {
		return &SizeError{Total: total, Limit: limits.MaxDeckSize}
	}
	if len(entries) > 0 && total == 0 {
		return ErrDegenerateDeck
	}
	return nil
}

// ValidateDeck checks a cardId -> quantity mapping the way
// ValidateEntries does, visiting cards in sorted order so the first
// reported failure is deterministic.
func ValidateDeck(cards map[string]int, cat Catalog, limits Limits) error {
	ids := make([]string, 0, len(cards))
	for id := range cards {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	entries := make([]Entry, len(ids))
	for i, id := range ids {
		entries[i] = Entry{CardID: id, Quantity: cards[id]}
	}
	return ValidateEntries(entries, cat, limits)
}
