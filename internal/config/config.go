// Package config loads the static game definition: the card lists, the
// board graph, the starting squares and the accusation room.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/drewsdunne/Clue/internal/board"
	"github.com/drewsdunne/Clue/internal/cards"
)

// GameConfig holds the static definitions for a game of Clue.
type GameConfig struct {
	Suspects       []string          `json:"suspects"`
	Weapons        []string          `json:"weapons"`
	Rooms          []string          `json:"rooms"`
	AccusationRoom string            `json:"accusation_room"`
	Spaces         []board.Space     `json:"spaces"`
	StartingSpaces map[string]string `json:"starting_spaces"`

	universe []cards.Card
	board    *board.Board
}

// Load reads, parses and validates the game definition from a file.
func Load(path string) (*GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg GameConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	if err := cfg.prepare(); err != nil {
		return nil, fmt.Errorf("invalid game definition %s: %w", path, err)
	}
	return &cfg, nil
}

// New builds a validated config from an in-code definition. Tests and
// tools use this; the CLI loads from JSON.
func New(cfg GameConfig) (*GameConfig, error) {
	if err := cfg.prepare(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// prepare sorts the card lists, derives the universe and builds the
// board.
func (c *GameConfig) prepare() error {
	if len(c.Suspects) < 2 {
		return fmt.Errorf("need at least 2 suspects, got %d", len(c.Suspects))
	}
	if len(c.Weapons) == 0 || len(c.Rooms) == 0 {
		return fmt.Errorf("weapons and rooms must not be empty")
	}

	sort.Strings(c.Suspects)
	sort.Strings(c.Weapons)
	sort.Strings(c.Rooms)

	c.universe = c.universe[:0]
	for _, name := range c.Suspects {
		c.universe = append(c.universe, cards.Suspect(name))
	}
	for _, name := range c.Weapons {
		c.universe = append(c.universe, cards.Weapon(name))
	}
	for _, name := range c.Rooms {
		c.universe = append(c.universe, cards.Room(name))
	}
	seen := make(map[cards.Card]struct{}, len(c.universe))
	for _, card := range c.universe {
		if _, dup := seen[card]; dup {
			return fmt.Errorf("duplicate card %q", card)
		}
		seen[card] = struct{}{}
	}

	brd, err := board.New(c.Spaces, c.AccusationRoom)
	if err != nil {
		return err
	}
	c.board = brd

	// Room cards and guessable room spaces must match one to one; the
	// accusation room carries no card.
	for _, name := range c.Rooms {
		if brd.Classify(name) != board.ClassRoom {
			return fmt.Errorf("room card %q has no matching room space", name)
		}
	}
	roomCards := make(map[string]struct{}, len(c.Rooms))
	for _, name := range c.Rooms {
		roomCards[name] = struct{}{}
	}
	for _, sp := range c.Spaces {
		if !sp.Room || sp.Name == c.AccusationRoom {
			continue
		}
		if _, ok := roomCards[sp.Name]; !ok {
			return fmt.Errorf("room space %q has no matching room card", sp.Name)
		}
	}
	for _, name := range c.Suspects {
		start, ok := c.StartingSpaces[name]
		if !ok {
			return fmt.Errorf("suspect %q has no starting space", name)
		}
		if _, ok := brd.Space(start); !ok {
			return fmt.Errorf("suspect %q starts on unknown space %q", name, start)
		}
	}
	return nil
}

// Universe returns every card in the game, suspects then weapons then
// rooms, each list alphabetical.
func (c *GameConfig) Universe() []cards.Card {
	out := make([]cards.Card, len(c.universe))
	copy(out, c.universe)
	return out
}

// Board returns the validated board graph.
func (c *GameConfig) Board() *board.Board { return c.board }

// CardListForCategory returns the cards of one category.
func (c *GameConfig) CardListForCategory(cat cards.Category) []cards.Card {
	var out []cards.Card
	for _, card := range c.universe {
		if card.Category == cat {
			out = append(out, card)
		}
	}
	return out
}

// CardByName resolves a card from its name, case-sensitive.
func (c *GameConfig) CardByName(name string) (cards.Card, bool) {
	for _, card := range c.universe {
		if card.Name == name {
			return card, true
		}
	}
	return cards.Card{}, false
}
