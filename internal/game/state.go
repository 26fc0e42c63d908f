package game

import (
	"math/rand"

	"github.com/drewsdunne/Clue/internal/cards"
)

// Public is the shared, read-mostly state every player may see. The
// turn controller is its only writer.
type Public struct {
	// Current is the id of the player whose turn it is.
	Current string
	// AccusationRoom is the space where a final accusation is made.
	AccusationRoom string
	// AIOnly disables the early stop when the last human is out: the
	// game then ends only by a correct accusation or full elimination.
	AIOnly bool
}

// State is the complete game state: the player ring, the public state
// and the hidden solution. Owned exclusively by the controller.
type State struct {
	Ring     *Ring
	Public   Public
	Envelope cards.Triple
}

// Dice draws the two-die movement total, uniform over [2,12], from a
// seedable source so whole runs are reproducible.
type Dice struct {
	rand *rand.Rand
}

func NewDice(rand *rand.Rand) *Dice {
	return &Dice{rand: rand}
}

func (d *Dice) Roll() int {
	return 2 + d.rand.Intn(11)
}
