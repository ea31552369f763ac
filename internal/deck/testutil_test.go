package deck

import "testing"

// fakeCatalog recognizes exactly the ids it was built with.
type fakeCatalog map[string]bool

func newFakeCatalog(ids ...string) fakeCatalog {
	f := make(fakeCatalog, len(ids))
	for _, id := range ids {
		f[id] = true
	}
	return f
}

func (f fakeCatalog) Has(id string) bool { return f[id] }

// newTestDeck builds an empty deck over a catalog holding ids.
func newTestDeck(t *testing.T, limits Limits, ids ...string) *Deck {
	t.Helper()
	return New(newFakeCatalog(ids...), limits)
}

// fillDeck adds n copies of id, failing the test on any refusal.
func fillDeck(t *testing.T, d *Deck, id string, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		if out := d.AddCopy(id); out != AddOK {
			t.Fatalf("AddCopy(%q) #%d = %v, want %v", id, i+1, out, AddOK)
		}
	}
}
