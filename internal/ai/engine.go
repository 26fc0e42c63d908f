// Package ai holds the deduction engine: stateless policy functions
// that turn a player's own knowledge sheet plus public state into a
// move, destination, guess, accusation or reveal. The engine never
// reads another player's sheet.
package ai

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/drewsdunne/Clue/internal/board"
	"github.com/drewsdunne/Clue/internal/cards"
	"github.com/drewsdunne/Clue/internal/sheet"
)

// ErrUnresolved means an accusation was requested before all three
// categories were solved. Callers must check Sheet.Solved first.
var ErrUnresolved = errors.New("solution not fully resolved")

// Engine bundles the policies with their tie-break source.
type Engine struct {
	log     logrus.FieldLogger
	chooser Chooser
}

func NewEngine(log logrus.FieldLogger, chooser Chooser) *Engine {
	return &Engine{log: log, chooser: chooser}
}

// DecideMove picks a top-level move. While the room category is
// unsolved, passages into rooms we hold are the best testing grounds
// (our own room card can never be the one disproved), then rooms we
// believe sit in the envelope. Once the room is solved, passages only
// matter for reaching rooms we still know nothing about.
func (e *Engine) DecideMove(sh *sheet.Sheet, opts []board.Move) (board.Move, error) {
	byKind := func(kind sheet.Kind) []board.Move {
		var out []board.Move
		for _, m := range opts {
			if m.Kind != board.MovePassage {
				continue
			}
			c := cards.Room(m.Passage)
			if sh.InUniverse(c) && sh.Belief(c).Kind == kind {
				out = append(out, m)
			}
		}
		return out
	}

	var tiers [][]board.Move
	if !sh.CategorySolved(cards.CategoryRoom) {
		tiers = [][]board.Move{byKind(sheet.Mine), byKind(sheet.Envelope)}
	} else {
		tiers = [][]board.Move{byKind(sheet.Unknown)}
	}
	for _, tier := range tiers {
		if len(tier) == 0 {
			continue
		}
		i, err := e.chooser.Pick(len(tier))
		if err != nil {
			return board.Move{}, err
		}
		e.log.Debugf("taking a passage: %s", tier[i])
		return tier[i], nil
	}

	for _, m := range opts {
		if m.Kind == board.MoveRoll {
			return m, nil
		}
	}
	return board.Move{}, fmt.Errorf("move options offer no roll: %w", ErrNoCandidates)
}

// DecideMovement picks a destination for a roll. With the whole
// solution known the accusation room is taken whenever the roll reaches
// it; a short roll falls back to the regular ranking and tries again
// next turn. Rooms are ranked: our own rooms on an exact roll, then
// envelope rooms, then any of those regardless of the roll fitting
// exactly, then unexplored rooms while the room category is open.
func (e *Engine) DecideMovement(sh *sheet.Sheet, accusationRoom string, opts []board.Destination) (board.Destination, error) {
	if sh.Solved() {
		var matches []board.Destination
		for _, d := range opts {
			if d.Space == accusationRoom {
				matches = append(matches, d)
			}
		}
		switch len(matches) {
		case 1:
			e.log.Debug("heading for the accusation room")
			return matches[0], nil
		case 0:
			e.log.Debug("accusation room out of reach this roll")
		default:
			return board.Destination{}, fmt.Errorf("solution known but %d accusation-room destinations offered", len(matches))
		}
	}

	roomsWhere := func(exactOnly bool, kinds ...sheet.Kind) []board.Destination {
		var out []board.Destination
		for _, d := range opts {
			if !d.Room || (exactOnly && !d.Exact) {
				continue
			}
			c := cards.Room(d.Space)
			if !sh.InUniverse(c) {
				continue
			}
			for _, k := range kinds {
				if sh.Belief(c).Kind == k {
					out = append(out, d)
					break
				}
			}
		}
		return out
	}

	tiers := [][]board.Destination{
		roomsWhere(true, sheet.Mine),
		roomsWhere(true, sheet.Envelope),
		roomsWhere(false, sheet.Mine, sheet.Envelope),
	}
	if !sh.CategorySolved(cards.CategoryRoom) {
		tiers = append(tiers, roomsWhere(false, sheet.Unknown))
	}
	// Last resort: anywhere but the accusation room, which would force
	// an accusation we are not ready to make.
	var rest []board.Destination
	for _, d := range opts {
		if d.Space != accusationRoom {
			rest = append(rest, d)
		}
	}
	tiers = append(tiers, rest)

	for _, tier := range tiers {
		if len(tier) == 0 {
			continue
		}
		i, err := e.chooser.Pick(len(tier))
		if err != nil {
			return board.Destination{}, err
		}
		return tier[i], nil
	}
	return board.Destination{}, fmt.Errorf("no viable destination: %w", ErrNoCandidates)
}

// DecideGuess builds a guess in the current room. A solved category is
// padded with a card that cannot leak anything new, preferring our own
// hand over the envelope card; an unsolved one probes a random unknown.
func (e *Engine) DecideGuess(sh *sheet.Sheet, room cards.Card) (cards.Triple, error) {
	pick := func(cat cards.Category) (cards.Card, error) {
		if sh.CategorySolved(cat) {
			if mine := sh.CardsWhere(cat, sheet.Mine); len(mine) > 0 {
				return e.chooser.Choose(mine)
			}
			guess, _ := sh.SolutionGuess()
			return guess.ByCategory(cat), nil
		}
		return e.chooser.Choose(sh.CardsWhere(cat, sheet.Unknown))
	}

	suspect, err := pick(cards.CategorySuspect)
	if err != nil {
		return cards.Triple{}, fmt.Errorf("guessing a suspect: %w", err)
	}
	weapon, err := pick(cards.CategoryWeapon)
	if err != nil {
		return cards.Triple{}, fmt.Errorf("guessing a weapon: %w", err)
	}
	return cards.Triple{Suspect: suspect, Weapon: weapon, Room: room}, nil
}

// DecideAccusation returns the resolved solution. Calling it with an
// unsolved sheet is a logic bug in the caller.
func (e *Engine) DecideAccusation(sh *sheet.Sheet) (cards.Triple, error) {
	guess, ok := sh.SolutionGuess()
	if !ok {
		return cards.Triple{}, ErrUnresolved
	}
	e.log.Infof("making a confident accusation: %s", guess)
	return guess, nil
}

// DecideReveal picks which of our cards to show for a guess. With more
// than one match we spread exposure: a card the asker has already seen
// tells them nothing new, so prefer one they have not.
func (e *Engine) DecideReveal(sh *sheet.Sheet, guess cards.Triple, asker string) (cards.Card, bool, error) {
	var matches []cards.Card
	for _, c := range guess.Cards() {
		if sh.Belief(c).Kind == sheet.Mine {
			matches = append(matches, c)
		}
	}
	switch len(matches) {
	case 0:
		return cards.Card{}, false, nil
	case 1:
		return matches[0], true, nil
	}

	var fresh []cards.Card
	for _, c := range matches {
		if !sh.WasShownTo(c, asker) {
			fresh = append(fresh, c)
		}
	}
	if len(fresh) == 0 {
		fresh = matches
	}
	card, err := e.chooser.Choose(fresh)
	if err != nil {
		return cards.Card{}, false, err
	}
	return card, true, nil
}
