package cards

import "testing"

func TestNewTriple(t *testing.T) {
	t.Run("accepts one card per category in any order", func(t *testing.T) {
		got, err := NewTriple(Room("Library"), Suspect("Scarlett"), Weapon("Rope"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Suspect != Suspect("Scarlett") || got.Weapon != Weapon("Rope") || got.Room != Room("Library") {
			t.Errorf("triple slots misassigned: %+v", got)
		}
	})

	t.Run("rejects a duplicated category", func(t *testing.T) {
		if _, err := NewTriple(Suspect("Scarlett"), Suspect("Plum"), Weapon("Rope")); err == nil {
			t.Error("expected an error for two suspects")
		}
	})

	t.Run("rejects a missing category", func(t *testing.T) {
		if _, err := NewTriple(Suspect("Scarlett"), Weapon("Rope"), Weapon("Knife")); err == nil {
			t.Error("expected an error for a triple without a room")
		}
	})
}

func TestTripleContains(t *testing.T) {
	triple, _ := NewTriple(Suspect("Scarlett"), Weapon("Rope"), Room("Library"))
	if !triple.Contains(Weapon("Rope")) {
		t.Error("the triple holds the Rope")
	}
	// Same name, different category: still a different card.
	if triple.Contains(Suspect("Rope")) {
		t.Error("a suspect named Rope is not the weapon")
	}
}

func TestTripleString(t *testing.T) {
	triple, _ := NewTriple(Suspect("Scarlett"), Weapon("Rope"), Room("Library"))
	if got, want := triple.String(), "Scarlett with the Rope in the Library"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestZeroCardSentinel(t *testing.T) {
	var c Card
	if !c.IsZero() {
		t.Error("the zero value is the unresolved sentinel")
	}
	if c.String() != "?" {
		t.Errorf("sentinel renders as %q, want ?", c.String())
	}
	if Suspect("Scarlett").IsZero() {
		t.Error("a named card is never the sentinel")
	}
}
