package ai

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/drewsdunne/Clue/internal/cards"
)

func TestChooseOnEmptySet(t *testing.T) {
	choosers := map[string]Chooser{
		"random":        NewRandomChooser(rand.New(rand.NewSource(1))),
		"deterministic": &DeterministicChooser{},
	}
	for name, c := range choosers {
		if _, err := c.Choose(nil); !errors.Is(err, ErrNoCandidates) {
			t.Errorf("%s: expected ErrNoCandidates, got %v", name, err)
		}
		if _, err := c.Pick(0); !errors.Is(err, ErrNoCandidates) {
			t.Errorf("%s: expected ErrNoCandidates from Pick(0), got %v", name, err)
		}
	}
}

func TestChooseIgnoresInputOrder(t *testing.T) {
	d := &DeterministicChooser{}
	forward := []cards.Card{cards.Weapon("Knife"), cards.Weapon("Rope"), cards.Weapon("Wrench")}
	backward := []cards.Card{cards.Weapon("Wrench"), cards.Weapon("Rope"), cards.Weapon("Knife")}

	a, err := d.Choose(forward)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := d.Choose(backward)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a != b || a != cards.Weapon("Knife") {
		t.Errorf("ordering leaked into the pick: %s vs %s", a, b)
	}
	// The caller's slice stays untouched.
	if backward[0] != cards.Weapon("Wrench") {
		t.Error("Choose must not reorder the caller's slice")
	}
}

func TestRandomChooserIsSeedable(t *testing.T) {
	cc := []cards.Card{cards.Weapon("Knife"), cards.Weapon("Rope"), cards.Weapon("Wrench")}
	a := NewRandomChooser(rand.New(rand.NewSource(5)))
	b := NewRandomChooser(rand.New(rand.NewSource(5)))
	for i := 0; i < 10; i++ {
		ca, _ := a.Choose(cc)
		cb, _ := b.Choose(cc)
		if ca != cb {
			t.Fatalf("same seed diverged at draw %d: %s vs %s", i, ca, cb)
		}
	}
}
