package api

import (
	"sync"

	"github.com/google/uuid"

	"github.com/deckbench/deckbench/internal/deck"
)

// Session is one editing session: a single writer working on a single
// deck. Its mutex serializes deck operations arriving through the
// handlers.
type Session struct {
	ID string

	mu     sync.Mutex
	deck   *deck.Deck
	cat    deck.Catalog
	limits deck.Limits
}

// DeckState is the API snapshot of a deck under construction.
type DeckState struct {
	Name      string       `json:"name"`
	Cards     []deck.Entry `json:"cards"`
	TotalSize int          `json:"totalSize"`
}

// Add adds one copy of the card and reports the outcome.
func (s *Session) Add(id string) deck.AddOutcome {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.deck.AddCopy(id)
}

// Remove removes one copy of the card.
func (s *Session) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deck.RemoveCopy(id)
}

// Rename stores the raw deck name.
func (s *Session) Rename(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deck.SetName(name)
}

// Clear empties the deck and resets its name.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deck.Clear()
}

// State returns a snapshot of the deck.
func (s *Session) State() DeckState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return DeckState{
		Name:      s.deck.Name(),
		Cards:     s.deck.Entries(),
		TotalSize: s.deck.TotalSize(),
	}
}

// Export converts the session deck to its portable form.
func (s *Session) Export() (deck.PortableDeck, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return deck.Export(s.deck)
}

// Import builds a deck from raw file bytes and swaps it in. On failure
// the current deck is untouched and the import error comes back as-is.
func (s *Session) Import(data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, err := deck.Import(data, s.cat, s.limits)
	if err != nil {
		return err
	}
	s.deck = d
	return nil
}

// Sessions tracks the active editing sessions by id.
type Sessions struct {
	mu     sync.Mutex
	byID   map[string]*Session
	cat    deck.Catalog
	limits deck.Limits
}

// NewSessions returns an empty session manager composing decks against
// cat under limits.
func NewSessions(cat deck.Catalog, limits deck.Limits) *Sessions {
	return &Sessions{
		byID:   make(map[string]*Session),
		cat:    cat,
		limits: limits,
	}
}

// Create starts a session holding a fresh empty deck.
func (m *Sessions) Create() *Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := &Session{
		ID:     uuid.NewString(),
		deck:   deck.New(m.cat, m.limits),
		cat:    m.cat,
		limits: m.limits,
	}
	m.byID[s.ID] = s
	return s
}

// Get returns the session for id.
func (m *Sessions) Get(id string) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.byID[id]
	return s, ok
}

// Drop removes the session for id, reporting whether it existed.
func (m *Sessions) Drop(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byID[id]; !ok {
		return false
	}
	delete(m.byID, id)
	return true
}
