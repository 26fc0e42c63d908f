package player

import (
	"github.com/drewsdunne/Clue/internal/board"
	"github.com/drewsdunne/Clue/internal/cards"
	"github.com/drewsdunne/Clue/internal/sheet"
)

// Prompter is the external-input collaborator a human agent suspends
// on. The CLI implements it; the core is agnostic about how (or how
// long) the human answers.
type Prompter interface {
	PromptMove(name string, opts []board.Move) (board.Move, error)
	PromptMovement(name string, opts []board.Destination) (board.Destination, error)
	PromptGuess(name string, room cards.Card) (cards.Triple, error)
	PromptAccusation(name string) (cards.Triple, error)
	// PromptReveal picks among 2+ matching cards; forced reveals never
	// reach the prompter.
	PromptReveal(name, asker string, matches []cards.Card) (cards.Card, error)
}

// Human is a person-controlled agent.
type Human struct {
	name     string
	prompter Prompter
}

func NewHuman(name string, prompter Prompter) *Human {
	return &Human{name: name, prompter: prompter}
}

func (h *Human) Human() bool { return true }

func (h *Human) ChooseMove(sh *sheet.Sheet, opts []board.Move) (board.Move, error) {
	return h.prompter.PromptMove(h.name, opts)
}

func (h *Human) ChooseDestination(sh *sheet.Sheet, accusationRoom string, opts []board.Destination) (board.Destination, error) {
	return h.prompter.PromptMovement(h.name, opts)
}

func (h *Human) ChooseGuess(sh *sheet.Sheet, room cards.Card) (cards.Triple, error) {
	return h.prompter.PromptGuess(h.name, room)
}

func (h *Human) ChooseAccusation(sh *sheet.Sheet) (cards.Triple, error) {
	return h.prompter.PromptAccusation(h.name)
}

// ChooseReveal computes the rule-forced card set itself; a human may
// only pick which card to show when more than one matches.
func (h *Human) ChooseReveal(sh *sheet.Sheet, guess cards.Triple, asker string) (cards.Card, bool, error) {
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
	card, err := h.prompter.PromptReveal(h.name, asker, matches)
	if err != nil {
		return cards.Card{}, false, err
	}
	return card, true, nil
}
