package deck

import (
	"encoding/json"
	"strings"
)

// PortableDeck is the exchange form of a deck, the only shape that
// crosses the system boundary. It serializes as a pretty-printed JSON
// document:
//
//	{
//	  "deckName": "Aggro Rush",
//	  "cards": [
//	    { "cardId": "fire_imp", "quantity": 3 }
//	  ]
//	}
type PortableDeck struct {
	DeckName string  `json:"deckName"`
	Cards    []Entry `json:"cards"`
}

// Export converts a deck to its portable form. Empty decks cannot be
// exported. The name is trimmed, with DefaultName substituted when
// nothing remains; cards come out sorted by cardId so the bytes are
// stable across exports.
func Export(d *Deck) (PortableDeck, error) {
	if d.TotalSize() == 0 {
		return PortableDeck{}, ErrEmptyDeck
	}
	name := strings.TrimSpace(d.Name())
	if name == "" {
		name = DefaultName
	}
	return PortableDeck{DeckName: name, Cards: d.Entries()}, nil
}

// Encode renders the portable deck as indented JSON for human review.
func (p PortableDeck) Encode() ([]byte, error) {
	return json.MarshalIndent(p, "", "  ")
}

// FileName derives the on-disk name for an exported deck: the exported
// name lowercased, every character outside [a-z0-9] replaced with an
// underscore, plus the .json extension.
func FileName(deckName string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(deckName) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}
	return b.String() + ".json"
}

// Import parses untrusted deck-file bytes and builds a fresh deck from
// them. Gates run in order and the first failure comes back as a typed
// error with no deck produced: document structure (StructureError), each
// card record well-formed with an integer quantity of at least one
// (EntryError), then the whole-deck checks of ValidateEntries. Records
// naming the same cardId collapse to the last one listed, after the size
// gate has counted them all.
//
// Import never touches an existing deck; swapping the result in is the
// caller's move.
func Import(data []byte, cat Catalog, limits Limits) (*Deck, error) {
	var raw struct {
		DeckName *string           `json:"deckName"`
		Cards    []json.RawMessage `json:"cards"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &StructureError{Reason: err.Error()}
	}
	if raw.DeckName == nil {
		return nil, &StructureError{Reason: `missing "deckName"`}
	}
	if raw.Cards == nil {
		return nil, &StructureError{Reason: `missing "cards"`}
	}

	entries := make([]Entry, 0, len(raw.Cards))
	for _, rec := range raw.Cards {
		var fields struct {
			CardID   *string      `json:"cardId"`
			Quantity *json.Number `json:"quantity"`
		}
		if err := json.Unmarshal(rec, &fields); err != nil {
			return nil, &EntryError{Entry: string(rec)}
		}
		if fields.CardID == nil || fields.Quantity == nil {
			return nil, &EntryError{Entry: string(rec)}
		}
		q, err := fields.Quantity.Int64()
		if err != nil || q < 1 {
			return nil, &EntryError{Entry: string(rec)}
		}
		entries = append(entries, Entry{CardID: *fields.CardID, Quantity: int(q)})
	}

	if err := ValidateEntries(entries, cat, limits); err != nil {
		return nil, err
	}

	d := New(cat, limits)
	d.SetName(*raw.DeckName)
	for _, e := range entries {
		d.cards[e.CardID] = e.Quantity
	}
	return d, nil
}
