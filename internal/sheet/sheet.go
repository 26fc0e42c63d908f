// Package sheet implements a single player's detective notes: a belief
// table over the full card universe. Beliefs only ever move forward
// (Unknown to Envelope or ShownBy); a card dealt into the hand is Mine
// forever and only its shown-to set grows.
package sheet

import (
	"errors"
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/drewsdunne/Clue/internal/cards"
)

// Kind defines the knowledge state of a card.
type Kind int

const (
	// Unknown is the initial state for every card not in the hand.
	Unknown Kind = iota
	// Mine marks a card dealt into this player's own hand.
	Mine
	// Envelope marks a card believed to be part of the solution.
	Envelope
	// ShownBy marks a card a rival revealed to disprove a guess.
	ShownBy
)

func (k Kind) String() string {
	return []string{"unknown", "mine", "envelope", "shown"}[k]
}

// Belief is the value tracked per card. Holder is set only for ShownBy.
type Belief struct {
	Kind   Kind
	Holder string
}

// ErrContradiction is returned when an update would regress a belief,
// e.g. a rival showing a card the sheet already holds as Mine. These
// are programmer errors, not recoverable game states.
var ErrContradiction = errors.New("belief contradiction")

// Sheet holds one player's epistemic state over the card universe.
// Every card in the universe has exactly one belief entry at all times.
type Sheet struct {
	log      logrus.FieldLogger
	universe []cards.Card
	beliefs  map[cards.Card]Belief
	shownTo  map[cards.Card]map[string]struct{}
}

// New builds a sheet for the given universe: Mine for every card in
// hand, Unknown for the rest. It fails if the hand contains a card that
// is not part of the universe.
func New(log logrus.FieldLogger, universe []cards.Card, hand []cards.Card) (*Sheet, error) {
	s := &Sheet{
		log:      log,
		universe: make([]cards.Card, len(universe)),
		beliefs:  make(map[cards.Card]Belief, len(universe)),
		shownTo:  make(map[cards.Card]map[string]struct{}),
	}
	copy(s.universe, universe)
	for _, c := range universe {
		s.beliefs[c] = Belief{Kind: Unknown}
	}
	for _, c := range hand {
		if _, ok := s.beliefs[c]; !ok {
			return nil, fmt.Errorf("hand card %q is not in the universe", c)
		}
		s.beliefs[c] = Belief{Kind: Mine}
		s.shownTo[c] = make(map[string]struct{})
	}
	return s, nil
}

// Universe returns the card universe in its canonical order.
func (s *Sheet) Universe() []cards.Card {
	out := make([]cards.Card, len(s.universe))
	copy(out, s.universe)
	return out
}

// Belief returns the current belief for a card.
func (s *Sheet) Belief(c cards.Card) Belief {
	return s.beliefs[c]
}

// InUniverse reports whether a card is part of this game at all.
func (s *Sheet) InUniverse(c cards.Card) bool {
	_, ok := s.beliefs[c]
	return ok
}

// RecordShown marks a card as confirmed held by a rival. It is
// idempotent for a repeated ShownBy, and a contradiction if the card is
// already Mine or Envelope.
func (s *Sheet) RecordShown(c cards.Card, by string) error {
	b, ok := s.beliefs[c]
	if !ok {
		return fmt.Errorf("card %q is not in the universe", c)
	}
	switch b.Kind {
	case Unknown:
		s.beliefs[c] = Belief{Kind: ShownBy, Holder: by}
		s.log.Debugf("learned that '%s' is with %s", c, by)
		return nil
	case ShownBy:
		return nil // replay of a known fact
	default:
		return fmt.Errorf("%w: %s shown by %s but already %s", ErrContradiction, c, by, b.Kind)
	}
}

// MarkNoDisprove promotes every still-Unknown card of the triple to
// Envelope. Nobody around the table could disprove the guess, and a
// holder must reveal if able, so the remaining unknowns sit in the
// envelope. Returns the cards actually promoted. Cards outside the
// universe are ignored; every belief entry belongs to a universe card.
func (s *Sheet) MarkNoDisprove(t cards.Triple) []cards.Card {
	var promoted []cards.Card
	for _, c := range t.Cards() {
		if b, ok := s.beliefs[c]; ok && b.Kind == Unknown {
			s.beliefs[c] = Belief{Kind: Envelope}
			promoted = append(promoted, c)
			s.log.Debugf("nobody disproved: '%s' marked as envelope", c)
		}
	}
	return promoted
}

// NoteShownTo records that a rival has now seen one of our own cards,
// so the same card is not needlessly re-revealed to them later.
func (s *Sheet) NoteShownTo(c cards.Card, viewer string) error {
	if s.beliefs[c].Kind != Mine {
		return fmt.Errorf("%w: noting %q shown to %s but card is %s, not mine", ErrContradiction, c, viewer, s.beliefs[c].Kind)
	}
	s.shownTo[c][viewer] = struct{}{}
	return nil
}

// WasShownTo reports whether a Mine card has already been revealed to
// the given viewer.
func (s *Sheet) WasShownTo(c cards.Card, viewer string) bool {
	set, ok := s.shownTo[c]
	if !ok {
		return false
	}
	_, seen := set[viewer]
	return seen
}

// CategorySolved reports whether exactly one card of the category is
// marked Envelope.
func (s *Sheet) CategorySolved(cat cards.Category) bool {
	return !s.envelopeCard(cat).IsZero()
}

// Solved reports whether all three categories are solved.
func (s *Sheet) Solved() bool {
	for _, cat := range cards.Categories {
		if !s.CategorySolved(cat) {
			return false
		}
	}
	return true
}

// SolutionGuess returns, per category, the unique Envelope-marked card.
// Unresolved categories carry the zero-card sentinel; the boolean is
// true only when all three are resolved.
func (s *Sheet) SolutionGuess() (cards.Triple, bool) {
	t := cards.Triple{
		Suspect: s.envelopeCard(cards.CategorySuspect),
		Weapon:  s.envelopeCard(cards.CategoryWeapon),
		Room:    s.envelopeCard(cards.CategoryRoom),
	}
	return t, !t.Suspect.IsZero() && !t.Weapon.IsZero() && !t.Room.IsZero()
}

// CardsWhere returns the cards of a category currently in the given
// belief kind, sorted by name so tie-breaking stays deterministic.
func (s *Sheet) CardsWhere(cat cards.Category, kind Kind) []cards.Card {
	var out []cards.Card
	for _, c := range s.universe {
		if c.Category == cat && s.beliefs[c].Kind == kind {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Hand returns the Mine cards across all categories, sorted by name.
func (s *Sheet) Hand() []cards.Card {
	var out []cards.Card
	for _, c := range s.universe {
		if s.beliefs[c].Kind == Mine {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func (s *Sheet) envelopeCard(cat cards.Category) cards.Card {
	var found cards.Card
	for _, c := range s.universe {
		if c.Category == cat && s.beliefs[c].Kind == Envelope {
			if !found.IsZero() {
				return cards.Card{} // more than one claimant, not solved
			}
			found = c
		}
	}
	return found
}
