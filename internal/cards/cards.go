package cards

import "fmt"

// Category defines the type of a card using a typed enum. The set is
// closed: every card in the game is exactly one of these three.
type Category int

const (
	CategorySuspect Category = iota
	CategoryWeapon
	CategoryRoom
)

// Categories lists all categories in canonical order.
var Categories = []Category{CategorySuspect, CategoryWeapon, CategoryRoom}

// String returns the string representation of a Category.
func (c Category) String() string {
	return []string{"suspects", "weapons", "rooms"}[c]
}

// Card is a single game card. The zero value (empty name) is the
// "unresolved" sentinel used by Sheet.SolutionGuess.
type Card struct {
	Category Category
	Name     string
}

// Suspect, Weapon and Room are shorthand constructors.
func Suspect(name string) Card { return Card{CategorySuspect, name} }
func Weapon(name string) Card  { return Card{CategoryWeapon, name} }
func Room(name string) Card    { return Card{CategoryRoom, name} }

// IsZero reports whether the card is the unresolved sentinel.
func (c Card) IsZero() bool { return c.Name == "" }

func (c Card) String() string {
	if c.IsZero() {
		return "?"
	}
	return c.Name
}

// Triple is one card of each category: a guess, an accusation, or the
// envelope itself.
type Triple struct {
	Suspect Card
	Weapon  Card
	Room    Card
}

// NewTriple builds a Triple from three cards in any order. It fails if
// the cards do not cover each category exactly once.
func NewTriple(a, b, c Card) (Triple, error) {
	var t Triple
	for _, card := range []Card{a, b, c} {
		switch card.Category {
		case CategorySuspect:
			if !t.Suspect.IsZero() {
				return Triple{}, fmt.Errorf("duplicate suspect in triple: %s and %s", t.Suspect, card)
			}
			t.Suspect = card
		case CategoryWeapon:
			if !t.Weapon.IsZero() {
				return Triple{}, fmt.Errorf("duplicate weapon in triple: %s and %s", t.Weapon, card)
			}
			t.Weapon = card
		case CategoryRoom:
			if !t.Room.IsZero() {
				return Triple{}, fmt.Errorf("duplicate room in triple: %s and %s", t.Room, card)
			}
			t.Room = card
		}
	}
	if t.Suspect.IsZero() || t.Weapon.IsZero() || t.Room.IsZero() {
		return Triple{}, fmt.Errorf("triple must cover all three categories, got %s / %s / %s", a, b, c)
	}
	return t, nil
}

// Cards returns the triple's cards in canonical category order.
func (t Triple) Cards() [3]Card {
	return [3]Card{t.Suspect, t.Weapon, t.Room}
}

// ByCategory returns the triple's card for the given category.
func (t Triple) ByCategory(cat Category) Card {
	switch cat {
	case CategorySuspect:
		return t.Suspect
	case CategoryWeapon:
		return t.Weapon
	case CategoryRoom:
		return t.Room
	default:
		return Card{}
	}
}

// Contains reports whether the triple includes the given card.
func (t Triple) Contains(c Card) bool {
	return t.Suspect == c || t.Weapon == c || t.Room == c
}

// Equal reports whether two triples name the same three cards.
func (t Triple) Equal(o Triple) bool {
	return t.Suspect == o.Suspect && t.Weapon == o.Weapon && t.Room == o.Room
}

func (t Triple) String() string {
	return fmt.Sprintf("%s with the %s in the %s", t.Suspect, t.Weapon, t.Room)
}
