// Package game contains the turn controller: the state machine that
// sequences moves, movement, guesses and accusations around the player
// ring until somebody wins or nobody is left to play.
package game

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/drewsdunne/Clue/internal/board"
	"github.com/drewsdunne/Clue/internal/events"
	"github.com/drewsdunne/Clue/internal/player"
)

// Outcome is the terminal result of a run. An empty Winner means the
// game stopped without a correct accusation.
type Outcome struct {
	Winner string
}

// Game drives a single game to completion. Build one with a Builder.
type Game struct {
	state  *State
	board  *board.Board
	events *events.Manager
	dice   *Dice
	log    *logrus.Logger

	// MaxTurns stops an interactive run that would otherwise spin
	// forever; 0 means uncapped.
	MaxTurns int
	turn     int
}

// State exposes the game state for inspection (tests, rendering).
func (g *Game) State() *State { return g.state }

// Players returns the ring in turn order.
func (g *Game) Players() []player.Player { return g.state.Ring.Players() }

// Turn returns the number of turns played so far.
func (g *Game) Turn() int { return g.turn }

// Run executes the turn loop until a terminal state. It is an explicit
// loop rather than a step-calls-step recursion so long games cannot
// grow the stack. Errors are invariant violations and abort the run.
func (g *Game) Run() (Outcome, error) {
	for {
		if g.MaxTurns > 0 && g.turn >= g.MaxTurns {
			g.events.Publish(events.GameOverEvent{Solution: g.state.Envelope, Exhausted: true})
			return Outcome{}, nil
		}

		current, next, err := g.state.Ring.Lookup(g.state.Public.Current)
		if err != nil {
			return Outcome{}, err
		}
		if current.Out {
			if g.state.Ring.AllOut() {
				g.events.Publish(events.GameOverEvent{Solution: g.state.Envelope})
				return Outcome{}, nil
			}
			g.log.Debugf("%s is out, skipping", current.Name)
			g.state.Public.Current = next.Name
			continue
		}

		terminal, outcome, err := g.playTurn(current)
		if err != nil {
			return Outcome{}, err
		}
		if terminal {
			return outcome, nil
		}
		g.state.Public.Current = next.Name
	}
}

// playTurn runs one full turn for an active player: move, movement,
// then whatever the landing space calls for.
func (g *Game) playTurn(current player.Player) (bool, Outcome, error) {
	g.turn++
	g.events.Publish(events.TurnStartEvent{Turn: g.turn, Player: current.Name, Location: current.Location})

	moves, err := g.board.MoveOptions(current.Location)
	if err != nil {
		return false, Outcome{}, err
	}
	move, err := current.Agent.ChooseMove(current.Sheet, moves)
	if err != nil {
		return false, Outcome{}, fmt.Errorf("%s choosing a move: %w", current.Name, err)
	}
	g.events.Publish(events.MoveChosenEvent{Player: current.Name, Move: move})

	var landing string
	if move.Kind == board.MovePassage {
		landing = move.Passage
	} else {
		roll := g.dice.Roll()
		g.events.Publish(events.DiceRolledEvent{Player: current.Name, Roll: roll})
		opts, err := g.board.MovementOptions(current.Location, roll)
		if err != nil {
			return false, Outcome{}, err
		}
		if len(opts) == 0 {
			return false, Outcome{}, fmt.Errorf("no reachable spaces from %q with a roll of %d", current.Location, roll)
		}
		dest, err := current.Agent.ChooseDestination(current.Sheet, g.state.Public.AccusationRoom, opts)
		if err != nil {
			return false, Outcome{}, fmt.Errorf("%s choosing a destination: %w", current.Name, err)
		}
		landing = dest.Space
	}

	current.Location = landing
	if err := g.state.Ring.Replace(current); err != nil {
		return false, Outcome{}, err
	}
	g.events.Publish(events.MovedEvent{Player: current.Name, To: landing})

	switch g.board.Classify(landing) {
	case board.ClassAccusation:
		return g.resolveAccusation(current)
	case board.ClassRoom:
		return false, Outcome{}, g.resolveGuess(current, landing)
	default:
		return false, Outcome{}, nil
	}
}

// resolveAccusation compares the player's accusation to the envelope.
// A hit wins; a miss eliminates the accuser and may end the game under
// the termination rule.
func (g *Game) resolveAccusation(current player.Player) (bool, Outcome, error) {
	accusation, err := current.Agent.ChooseAccusation(current.Sheet)
	if err != nil {
		return false, Outcome{}, fmt.Errorf("%s accusing: %w", current.Name, err)
	}
	g.events.Publish(events.AccusationEvent{Player: current.Name, Accusation: accusation})

	if accusation.Equal(g.state.Envelope) {
		g.events.Publish(events.VictoryEvent{Winner: current.Name, Accusation: accusation, Solution: g.state.Envelope})
		return true, Outcome{Winner: current.Name}, nil
	}

	current.Out = true
	if err := g.state.Ring.Replace(current); err != nil {
		return false, Outcome{}, err
	}
	g.events.Publish(events.EliminatedEvent{Player: current.Name})

	if !g.shouldContinue() {
		g.events.Publish(events.GameOverEvent{Solution: g.state.Envelope})
		return true, Outcome{}, nil
	}
	return false, Outcome{}, nil
}

// shouldContinue applies the termination rule after an elimination:
// full elimination always stops; otherwise ai-only games keep going,
// and mixed games keep going while a human is still standing.
func (g *Game) shouldContinue() bool {
	if g.state.Ring.AllOut() {
		return false
	}
	if g.state.Public.AIOnly {
		return true
	}
	return g.state.Ring.ActiveHumans() > 0
}

// resolveGuess asks each other player in ring order for a reveal and
// stops at the first card shown. Eliminated players still disprove:
// elimination removes the turn, not the hand.
func (g *Game) resolveGuess(current player.Player, room string) error {
	roomCard, err := g.board.RoomCard(room)
	if err != nil {
		return err
	}
	guess, err := current.Agent.ChooseGuess(current.Sheet, roomCard)
	if err != nil {
		return fmt.Errorf("%s guessing: %w", current.Name, err)
	}
	g.events.Publish(events.GuessMadeEvent{Player: current.Name, Guess: guess})

	others, err := g.state.Ring.Others(current.Name)
	if err != nil {
		return err
	}
	for _, rival := range others {
		card, shown, err := rival.Agent.ChooseReveal(rival.Sheet, guess, current.Name)
		if err != nil {
			return fmt.Errorf("%s revealing: %w", rival.Name, err)
		}
		if !shown {
			continue
		}
		if err := current.Sheet.RecordShown(card, rival.Name); err != nil {
			return err
		}
		if err := rival.Sheet.NoteShownTo(card, current.Name); err != nil {
			return err
		}
		if err := g.state.Ring.Replace(current); err != nil {
			return err
		}
		if err := g.state.Ring.Replace(rival); err != nil {
			return err
		}
		g.events.Publish(events.RevealEvent{Guesser: current.Name, Revealer: rival.Name, Card: card})
		return nil
	}

	current.Sheet.MarkNoDisprove(guess)
	if err := g.state.Ring.Replace(current); err != nil {
		return err
	}
	g.events.Publish(events.NoRevealEvent{Guesser: current.Name, Guess: guess})
	return nil
}
