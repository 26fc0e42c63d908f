package game

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/drewsdunne/Clue/internal/ai"
	"github.com/drewsdunne/Clue/internal/cards"
	"github.com/drewsdunne/Clue/internal/config"
	"github.com/drewsdunne/Clue/internal/events"
	"github.com/drewsdunne/Clue/internal/player"
	"github.com/drewsdunne/Clue/internal/sheet"
)

// Builder provides a step-by-step API for constructing a Game: it
// deals the envelope and hands, builds one sheet and agent per player
// and fixes the turn order.
type Builder struct {
	cfg          *config.GameConfig
	eventManager *events.Manager
	log          *logrus.Logger
	rand         *rand.Rand
	numHumans    int
	numAI        int
	prompter     player.Prompter
	maxTurns     int
}

// NewBuilder creates a Builder with its required dependencies.
func NewBuilder(cfg *config.GameConfig, logger *logrus.Logger, rand *rand.Rand) *Builder {
	return &Builder{
		cfg:          cfg,
		log:          logger,
		rand:         rand,
		eventManager: events.NewManager(),
	}
}

// EventManager exposes the bus so renderers can subscribe before Build.
func (b *Builder) EventManager() *events.Manager {
	return b.eventManager
}

func (b *Builder) WithHumanPlayers(n int) *Builder {
	b.numHumans = n
	return b
}

func (b *Builder) WithAIPlayers(n int) *Builder {
	b.numAI = n
	return b
}

// WithPrompter sets the external-input collaborator human agents
// suspend on. Required when there are human players.
func (b *Builder) WithPrompter(p player.Prompter) *Builder {
	b.prompter = p
	return b
}

// WithMaxTurns caps the run; 0 leaves it uncapped.
func (b *Builder) WithMaxTurns(n int) *Builder {
	b.maxTurns = n
	return b
}

// Build constructs the Game after all options have been configured.
func (b *Builder) Build() (*Game, error) {
	total := b.numHumans + b.numAI
	if total < 2 || total > len(b.cfg.Suspects) {
		return nil, errors.New("invalid number of players")
	}
	if b.numHumans > 0 && b.prompter == nil {
		return nil, errors.New("human players need a prompter")
	}

	names := make([]string, total)
	copy(names, b.cfg.Suspects[:total])
	b.rand.Shuffle(len(names), func(i, j int) { names[i], names[j] = names[j], names[i] })

	envelope, hands, err := b.deal(total)
	if err != nil {
		return nil, err
	}

	players := make([]player.Player, 0, total)
	for i, name := range names {
		sh, err := sheet.New(b.log.WithField("player", name), b.cfg.Universe(), hands[i])
		if err != nil {
			return nil, fmt.Errorf("building %s's sheet: %w", name, err)
		}
		var agent player.Agent
		if i < b.numHumans {
			agent = player.NewHuman(name, b.prompter)
			b.eventManager.Publish(events.HumanHandEvent{Player: name, Hand: sh.Hand()})
		} else {
			chooser := ai.NewRandomChooser(rand.New(rand.NewSource(b.rand.Int63())))
			agent = player.NewAuto(ai.NewEngine(b.log.WithField("player", name), chooser))
		}
		players = append(players, player.Player{
			Name:     name,
			Location: b.cfg.StartingSpaces[name],
			Sheet:    sh,
			Agent:    agent,
		})
		b.log.Debugf("%s hand: %v", name, hands[i])
	}

	ring, err := NewRing(players)
	if err != nil {
		return nil, err
	}

	game := &Game{
		state: &State{
			Ring: ring,
			Public: Public{
				Current:        names[0],
				AccusationRoom: b.cfg.AccusationRoom,
				AIOnly:         b.numHumans == 0,
			},
			Envelope: envelope,
		},
		board:    b.cfg.Board(),
		events:   b.eventManager,
		dice:     NewDice(b.rand),
		log:      b.log,
		MaxTurns: b.maxTurns,
	}
	b.log.Debugf("ground truth initialized, solution: %s", envelope)

	b.eventManager.Publish(events.GameReadyEvent{
		GameID:         uuid.NewString(),
		Players:        names,
		AccusationRoom: b.cfg.AccusationRoom,
	})
	return game, nil
}

// deal shuffles the full deck, pulls the first card of each category
// into the envelope and deals the rest round-robin.
func (b *Builder) deal(numPlayers int) (cards.Triple, [][]cards.Card, error) {
	deck := b.cfg.Universe()
	b.rand.Shuffle(len(deck), func(i, j int) { deck[i], deck[j] = deck[j], deck[i] })

	var envelope cards.Triple
	dealt := make(map[cards.Category]bool)
	var toDeal []cards.Card
	for _, card := range deck {
		if !dealt[card.Category] {
			dealt[card.Category] = true
			switch card.Category {
			case cards.CategorySuspect:
				envelope.Suspect = card
			case cards.CategoryWeapon:
				envelope.Weapon = card
			case cards.CategoryRoom:
				envelope.Room = card
			}
		} else {
			toDeal = append(toDeal, card)
		}
	}
	sort.Slice(toDeal, func(i, j int) bool { return toDeal[i].Name < toDeal[j].Name })

	hands := make([][]cards.Card, numPlayers)
	for i, card := range toDeal {
		hands[i%numPlayers] = append(hands[i%numPlayers], card)
	}
	return envelope, hands, nil
}
