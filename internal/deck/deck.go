package deck

import "sort"

// DefaultName is the placeholder deck name. New and cleared decks carry
// it, and export substitutes it when a trimmed name comes out empty.
const DefaultName = "Untitled Deck"

// Entry is one card record: an identifier and the number of copies.
type Entry struct {
	CardID   string `json:"cardId"`
	Quantity int    `json:"quantity"`
}

// Catalog answers whether a card identifier exists in the reference
// catalog. The catalog package's Catalog satisfies it; tests can use a
// map-backed fake.
type Catalog interface {
	Has(id string) bool
}

// Deck is a custom deck under construction: a display name and the copy
// count for each card in it. Interactive mutations are guarded: AddCopy
// refuses unknown cards, counts past CopyLimit and totals past
// MaxDeckSize, leaving the deck unchanged on refusal. Decks built by
// Import may carry per-card counts above CopyLimit.
type Deck struct {
	name   string
	cards  map[string]int // cardId -> copies, absent means zero
	cat    Catalog
	limits Limits
}

// New returns an empty deck with the placeholder name, composed against
// cat under limits.
func New(cat Catalog, limits Limits) *Deck {
	return &Deck{
		name:   DefaultName,
		cards:  make(map[string]int),
		cat:    cat,
		limits: limits,
	}
}

// AddCopy adds one copy of the card and reports the outcome. Unknown
// cards, the per-card copy limit, and the deck size limit each refuse
// the add, in that order.
func (d *Deck) AddCopy(id string) AddOutcome {
	if !d.cat.Has(id) {
		return AddUnknownCard
	}
	if out := d.limits.CanAdd(d.cards[id], d.TotalSize()); out != AddOK {
		return out
	}
	d.cards[id]++
	return AddOK
}

// RemoveCopy removes one copy of the card. The entry disappears when its
// count reaches zero; removing a card the deck does not hold is a no-op.
func (d *Deck) RemoveCopy(id string) {
	n, ok := d.cards[id]
	if !ok {
		return
	}
	if n <= 1 {
		delete(d.cards, id)
		return
	}
	d.cards[id] = n - 1
}

// Clear empties the deck and resets the name to the placeholder.
func (d *Deck) Clear() {
	d.cards = make(map[string]int)
	d.name = DefaultName
}

// SetName stores the raw name. Trimming and defaulting apply only at
// export time.
func (d *Deck) SetName(name string) {
	d.name = name
}

// Name returns the stored name.
func (d *Deck) Name() string { return d.name }

// Quantity returns the number of copies of the card, zero when absent.
func (d *Deck) Quantity(id string) int { return d.cards[id] }

// TotalSize returns the number of cards in the deck counting copies,
// recomputed on every call.
func (d *Deck) TotalSize() int {
	total := 0
	for _, n := range d.cards {
		total += n
	}
	return total
}

// Entries returns the deck contents sorted by cardId.
func (d *Deck) Entries() []Entry {
	ids := make([]string, 0, len(d.cards))
	for id := range d.cards {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	out := make([]Entry, len(ids))
	for i, id := range ids {
		out[i] = Entry{CardID: id, Quantity: d.cards[id]}
	}
	return out
}
