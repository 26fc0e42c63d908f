package player

import (
	"github.com/drewsdunne/Clue/internal/ai"
	"github.com/drewsdunne/Clue/internal/board"
	"github.com/drewsdunne/Clue/internal/cards"
	"github.com/drewsdunne/Clue/internal/sheet"
)

// Auto is an automated agent backed by the deduction engine.
type Auto struct {
	engine *ai.Engine
}

func NewAuto(engine *ai.Engine) *Auto {
	return &Auto{engine: engine}
}

func (a *Auto) Human() bool { return false }

func (a *Auto) ChooseMove(sh *sheet.Sheet, opts []board.Move) (board.Move, error) {
	return a.engine.DecideMove(sh, opts)
}

func (a *Auto) ChooseDestination(sh *sheet.Sheet, accusationRoom string, opts []board.Destination) (board.Destination, error) {
	return a.engine.DecideMovement(sh, accusationRoom, opts)
}

func (a *Auto) ChooseGuess(sh *sheet.Sheet, room cards.Card) (cards.Triple, error) {
	return a.engine.DecideGuess(sh, room)
}

func (a *Auto) ChooseAccusation(sh *sheet.Sheet) (cards.Triple, error) {
	return a.engine.DecideAccusation(sh)
}

func (a *Auto) ChooseReveal(sh *sheet.Sheet, guess cards.Triple, asker string) (cards.Card, bool, error) {
	return a.engine.DecideReveal(sh, guess, asker)
}
