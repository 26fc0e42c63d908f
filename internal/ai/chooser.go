package ai

import (
	"errors"
	"math/rand"
	"sort"

	"github.com/drewsdunne/Clue/internal/cards"
)

// ErrNoCandidates means a policy was asked to select uniformly from an
// empty set. That is an invariant violation in the caller, not a game
// state, so it surfaces as an error and halts the run.
var ErrNoCandidates = errors.New("no candidates to choose from")

// Chooser selects uniformly among candidates. It exists so tests can
// swap the random tie-break for a predictable one.
type Chooser interface {
	// Choose picks one card. Candidates are sorted by name first, so
	// the pick depends only on the set and the chooser's state.
	Choose(cc []cards.Card) (cards.Card, error)
	// Pick returns an index in [0, n).
	Pick(n int) (int, error)
}

// RandomChooser picks uniformly at random from a seedable source.
type RandomChooser struct {
	rand *rand.Rand
}

func NewRandomChooser(rand *rand.Rand) *RandomChooser {
	return &RandomChooser{rand: rand}
}

func (r *RandomChooser) Pick(n int) (int, error) {
	if n == 0 {
		return 0, ErrNoCandidates
	}
	return r.rand.Intn(n), nil
}

func (r *RandomChooser) Choose(cc []cards.Card) (cards.Card, error) {
	return choose(r, cc)
}

// DeterministicChooser always picks the first candidate (alphabetical
// for cards). Used for predictable testing.
type DeterministicChooser struct{}

func (d *DeterministicChooser) Pick(n int) (int, error) {
	if n == 0 {
		return 0, ErrNoCandidates
	}
	return 0, nil
}

func (d *DeterministicChooser) Choose(cc []cards.Card) (cards.Card, error) {
	return choose(d, cc)
}

func choose(c Chooser, cc []cards.Card) (cards.Card, error) {
	if len(cc) == 0 {
		return cards.Card{}, ErrNoCandidates
	}
	sorted := make([]cards.Card, len(cc))
	copy(sorted, cc)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })
	i, err := c.Pick(len(sorted))
	if err != nil {
		return cards.Card{}, err
	}
	return sorted[i], nil
}
