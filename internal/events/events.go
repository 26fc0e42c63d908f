package events

import (
	"github.com/drewsdunne/Clue/internal/board"
	"github.com/drewsdunne/Clue/internal/cards"
)

// Event is a marker interface for all event types.
type Event interface{}

// Listener defines an interface for any component that wants to react to events.
type Listener interface {
	HandleEvent(e Event)
}

// Manager manages listeners and dispatches events.
type Manager struct {
	listeners []Listener
}

func NewManager() *Manager {
	return &Manager{}
}

func (em *Manager) Subscribe(l Listener) {
	em.listeners = append(em.listeners, l)
}

func (em *Manager) Publish(e Event) {
	for _, l := range em.listeners {
		l.HandleEvent(e)
	}
}

// --- Event Types ---

// GameReadyEvent is published once the game is built and cards are
// dealt. Players are listed in ring (turn) order.
type GameReadyEvent struct {
	GameID         string
	Players        []string
	AccusationRoom string
}

// HumanHandEvent tells the display what a human player was dealt.
type HumanHandEvent struct {
	Player string
	Hand   []cards.Card
}

type TurnStartEvent struct {
	Turn     int
	Player   string
	Location string
}

type MoveChosenEvent struct {
	Player string
	Move   board.Move
}

type DiceRolledEvent struct {
	Player string
	Roll   int
}

type MovedEvent struct {
	Player string
	To     string
}

type GuessMadeEvent struct {
	Player string
	Guess  cards.Triple
}

// RevealEvent carries the ground-truth card for debug rendering; the
// display announces only who showed a card to whom.
type RevealEvent struct {
	Guesser  string
	Revealer string
	Card     cards.Card
}

type NoRevealEvent struct {
	Guesser string
	Guess   cards.Triple
}

type AccusationEvent struct {
	Player     string
	Accusation cards.Triple
}

type EliminatedEvent struct {
	Player string
}

type VictoryEvent struct {
	Winner     string
	Accusation cards.Triple
	Solution   cards.Triple
}

// GameOverEvent is published when the game stops with no winner.
type GameOverEvent struct {
	Solution  cards.Triple
	Exhausted bool // turn cap reached rather than full elimination
}
