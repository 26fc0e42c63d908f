// Package player defines the Player record and the Agent capability
// that decides its next action, with automated and human-backed
// implementations.
package player

import (
	"github.com/drewsdunne/Clue/internal/board"
	"github.com/drewsdunne/Clue/internal/cards"
	"github.com/drewsdunne/Clue/internal/sheet"
)

// Agent is the "decide next action" capability. Automated agents
// compute answers synchronously; human agents block on external input.
// Every decision sees only the acting player's own sheet.
type Agent interface {
	Human() bool
	ChooseMove(sh *sheet.Sheet, opts []board.Move) (board.Move, error)
	ChooseDestination(sh *sheet.Sheet, accusationRoom string, opts []board.Destination) (board.Destination, error)
	ChooseGuess(sh *sheet.Sheet, room cards.Card) (cards.Triple, error)
	ChooseAccusation(sh *sheet.Sheet) (cards.Triple, error)
	// ChooseReveal returns the card to show the asker, or false when
	// none of the guessed cards is in hand. A holder must reveal if
	// able; the choice is only which card, never whether.
	ChooseReveal(sh *sheet.Sheet, guess cards.Triple, asker string) (cards.Card, bool, error)
}

// Player is one seat at the table. Identity is the suspect name. The
// ring stores players by value and they are updated only through
// replace-by-identity, so a Player is safe to copy.
type Player struct {
	Name     string
	Location string
	Out      bool
	Sheet    *sheet.Sheet
	Agent    Agent
}
