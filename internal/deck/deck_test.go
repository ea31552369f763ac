package deck

import "testing"

func TestNewDeckIsEmpty(t *testing.T) {
	d := newTestDeck(t, DefaultLimits(), "a")
	if got := d.TotalSize(); got != 0 {
		t.Fatalf("TotalSize() = %d, want 0", got)
	}
	if got := d.Name(); got != DefaultName {
		t.Fatalf("Name() = %q, want %q", got, DefaultName)
	}
}

func TestAddCopy(t *testing.T) {
	d := newTestDeck(t, DefaultLimits(), "fire_imp")
	if out := d.AddCopy("fire_imp"); out != AddOK {
		t.Fatalf("AddCopy() = %v, want %v", out, AddOK)
	}
	if got := d.Quantity("fire_imp"); got != 1 {
		t.Fatalf("Quantity() = %d, want 1", got)
	}
	if got := d.TotalSize(); got != 1 {
		t.Fatalf("TotalSize() = %d, want 1", got)
	}
}

func TestAddCopyUnknownCard(t *testing.T) {
	d := newTestDeck(t, DefaultLimits(), "fire_imp")
	if out := d.AddCopy("water_imp"); out != AddUnknownCard {
		t.Fatalf("AddCopy() = %v, want %v", out, AddUnknownCard)
	}
	if got := d.TotalSize(); got != 0 {
		t.Fatalf("TotalSize() = %d, want 0", got)
	}
}

func TestAddCopyStopsAtCopyLimit(t *testing.T) {
	limits := Limits{MaxDeckSize: 100, CopyLimit: 3}
	d := newTestDeck(t, limits, "fire_imp")
	fillDeck(t, d, "fire_imp", limits.CopyLimit)
	if out := d.AddCopy("fire_imp"); out != AddCopyLimit {
		t.Fatalf("AddCopy() past limit = %v, want %v", out, AddCopyLimit)
	}
	if got := d.Quantity("fire_imp"); got != limits.CopyLimit {
		t.Fatalf("Quantity() = %d, want %d", got, limits.CopyLimit)
	}
}

func TestAddCopyStopsAtDeckSize(t *testing.T) {
	limits := Limits{MaxDeckSize: 4, CopyLimit: 2}
	d := newTestDeck(t, limits, "a", "b", "c")
	fillDeck(t, d, "a", 2)
	fillDeck(t, d, "b", 2)
	if out := d.AddCopy("c"); out != AddDeckFull {
		t.Fatalf("AddCopy() on full deck = %v, want %v", out, AddDeckFull)
	}
	if got := d.TotalSize(); got != limits.MaxDeckSize {
		t.Fatalf("TotalSize() = %d, want %d", got, limits.MaxDeckSize)
	}
}

func TestCopyLimitRefusalWinsOverDeckSize(t *testing.T) {
	// both limits hit at once: the copy limit is the reported reason
	limits := Limits{MaxDeckSize: 2, CopyLimit: 2}
	d := newTestDeck(t, limits, "a")
	fillDeck(t, d, "a", 2)
	if out := d.AddCopy("a"); out != AddCopyLimit {
		t.Fatalf("AddCopy() = %v, want %v", out, AddCopyLimit)
	}
}

func TestRemoveCopy(t *testing.T) {
	d := newTestDeck(t, DefaultLimits(), "a")
	fillDeck(t, d, "a", 2)
	d.RemoveCopy("a")
	if got := d.Quantity("a"); got != 1 {
		t.Fatalf("Quantity() = %d, want 1", got)
	}
}

func TestRemoveCopyDeletesAtZero(t *testing.T) {
	d := newTestDeck(t, DefaultLimits(), "a")
	fillDeck(t, d, "a", 1)
	d.RemoveCopy("a")
	if got := d.Quantity("a"); got != 0 {
		t.Fatalf("Quantity() = %d, want 0", got)
	}
	if got := len(d.Entries()); got != 0 {
		t.Fatalf("len(Entries()) = %d, want 0", got)
	}
}

func TestRemoveCopyAbsentIsNoop(t *testing.T) {
	d := newTestDeck(t, DefaultLimits(), "a")
	fillDeck(t, d, "a", 1)
	d.RemoveCopy("b")
	if got := d.TotalSize(); got != 1 {
		t.Fatalf("TotalSize() = %d, want 1", got)
	}
}

func TestClear(t *testing.T) {
	d := newTestDeck(t, DefaultLimits(), "a")
	fillDeck(t, d, "a", 3)
	d.SetName("Aggro Rush")
	d.Clear()
	if got := d.TotalSize(); got != 0 {
		t.Fatalf("TotalSize() = %d, want 0", got)
	}
	if got := d.Name(); got != DefaultName {
		t.Fatalf("Name() = %q, want %q", got, DefaultName)
	}
}

func TestSetNameStoresRawString(t *testing.T) {
	d := newTestDeck(t, DefaultLimits(), "a")
	d.SetName("  My Deck  ")
	if got := d.Name(); got != "  My Deck  " {
		t.Fatalf("Name() = %q, want %q", got, "  My Deck  ")
	}
}

func TestEntriesSortedByCardID(t *testing.T) {
	d := newTestDeck(t, DefaultLimits(), "zebra", "ant", "mole")
	fillDeck(t, d, "zebra", 1)
	fillDeck(t, d, "ant", 2)
	fillDeck(t, d, "mole", 1)
	got := d.Entries()
	want := []Entry{{"ant", 2}, {"mole", 1}, {"zebra", 1}}
	if len(got) != len(want) {
		t.Fatalf("len(Entries()) = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Entries()[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}
