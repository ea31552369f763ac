package catalog

import "fmt"

// Catalog is the read-only set of card definitions decks are built
// against. It never changes after construction.
type Catalog struct {
	byID  map[string]Card
	cards []Card
}

// New builds a catalog from card definitions. A card without an id is
// rejected; a later definition of an id replaces the earlier one.
func New(cards []Card) (*Catalog, error) {
	c := &Catalog{byID: make(map[string]Card, len(cards))}
	pos := make(map[string]int, len(cards))
	for _, card := range cards {
		if card.ID == "" {
			return nil, fmt.Errorf("catalog card %q has no id", card.Name)
		}
		if i, ok := pos[card.ID]; ok {
			c.cards[i] = card
		} else {
			pos[card.ID] = len(c.cards)
			c.cards = append(c.cards, card)
		}
		c.byID[card.ID] = card
	}
	return c, nil
}

// Lookup returns the card for id.
func (c *Catalog) Lookup(id string) (Card, bool) {
	card, ok := c.byID[id]
	return card, ok
}

// Has reports whether id exists in the catalog.
func (c *Catalog) Has(id string) bool {
	_, ok := c.byID[id]
	return ok
}

// All returns every card in source order. The slice is shared; treat it
// as read-only.
func (c *Catalog) All() []Card { return c.cards }

// Len returns the number of cards.
func (c *Catalog) Len() int { return len(c.cards) }
