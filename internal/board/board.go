// Package board models the mansion: named spaces with adjacency,
// secret passages between rooms, and reachability for a die roll.
package board

import (
	"fmt"
	"sort"

	"github.com/drewsdunne/Clue/internal/cards"
)

// Space is a single location on the board. Corridor squares are plain
// walkways; rooms can be guessed in (or, for the accusation room,
// accused in) and may carry a secret passage to another room.
type Space struct {
	Name     string   `json:"name"`
	Room     bool     `json:"room"`
	Adjacent []string `json:"adjacent"`
	Passage  string   `json:"passage,omitempty"`
}

// MoveKind is a player's top-level choice at the start of a turn.
type MoveKind int

const (
	MoveRoll MoveKind = iota
	MovePassage
)

// Move is one available top-level move: roll the dice, or take the
// secret passage out of the current room.
type Move struct {
	Kind    MoveKind
	Passage string // destination room, set for MovePassage
}

func (m Move) String() string {
	if m.Kind == MovePassage {
		return "take the passage to " + m.Passage
	}
	return "roll the dice"
}

// Destination is a space reachable for a given roll. Exact means the
// full roll is spent getting there; rooms may also be entered with
// moves to spare, corridor squares may not.
type Destination struct {
	Space string
	Room  bool
	Exact bool
}

// Class tells the turn controller what landing on a space means.
type Class int

const (
	ClassCorridor Class = iota
	ClassRoom
	ClassAccusation
)

// Board is the static space graph. It is read-only after New.
type Board struct {
	spaces         map[string]Space
	order          []string
	accusationRoom string
}

// New validates and indexes the space list. The accusation room must be
// one of the listed rooms; adjacency and passages must reference known
// spaces.
func New(spaces []Space, accusationRoom string) (*Board, error) {
	b := &Board{
		spaces:         make(map[string]Space, len(spaces)),
		accusationRoom: accusationRoom,
	}
	for _, sp := range spaces {
		if _, dup := b.spaces[sp.Name]; dup {
			return nil, fmt.Errorf("duplicate space %q", sp.Name)
		}
		b.spaces[sp.Name] = sp
		b.order = append(b.order, sp.Name)
	}
	for _, sp := range spaces {
		for _, adj := range sp.Adjacent {
			if _, ok := b.spaces[adj]; !ok {
				return nil, fmt.Errorf("space %q is adjacent to unknown space %q", sp.Name, adj)
			}
		}
		if sp.Passage != "" {
			dest, ok := b.spaces[sp.Passage]
			if !ok || !dest.Room {
				return nil, fmt.Errorf("space %q has a passage to %q, which is not a room", sp.Name, sp.Passage)
			}
		}
	}
	acc, ok := b.spaces[accusationRoom]
	if !ok || !acc.Room {
		return nil, fmt.Errorf("accusation room %q is not a room on the board", accusationRoom)
	}
	return b, nil
}

// AccusationRoom returns the name of the final-accusation room.
func (b *Board) AccusationRoom() string { return b.accusationRoom }

// Space looks up a space by name.
func (b *Board) Space(name string) (Space, bool) {
	sp, ok := b.spaces[name]
	return sp, ok
}

// MoveOptions returns the top-level moves available from a space:
// always a roll, plus the secret passage if the space has one.
func (b *Board) MoveOptions(from string) ([]Move, error) {
	sp, ok := b.spaces[from]
	if !ok {
		return nil, fmt.Errorf("unknown space %q", from)
	}
	opts := []Move{{Kind: MoveRoll}}
	if sp.Passage != "" {
		opts = append(opts, Move{Kind: MovePassage, Passage: sp.Passage})
	}
	return opts, nil
}

// MovementOptions returns every space reachable from the start with the
// given roll. Movement may double back, so a corridor square is
// reachable when its distance matches the roll's parity and fits within
// it; a room swallows the remainder of the roll, so only Exact records
// whether the parity lined up.
func (b *Board) MovementOptions(from string, roll int) ([]Destination, error) {
	if _, ok := b.spaces[from]; !ok {
		return nil, fmt.Errorf("unknown space %q", from)
	}
	dist := b.distances(from)

	var out []Destination
	for _, name := range b.order {
		d, reachable := dist[name]
		if !reachable || d == 0 || d > roll {
			continue
		}
		sp := b.spaces[name]
		exact := (roll-d)%2 == 0
		if sp.Room {
			out = append(out, Destination{Space: name, Room: true, Exact: exact})
		} else if exact {
			out = append(out, Destination{Space: name, Exact: true})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Space < out[j].Space })
	return out, nil
}

// Classify tells the controller how to resolve a landing space.
func (b *Board) Classify(name string) Class {
	if name == b.accusationRoom {
		return ClassAccusation
	}
	if sp, ok := b.spaces[name]; ok && sp.Room {
		return ClassRoom
	}
	return ClassCorridor
}

// RoomCard returns the room card matching a guessable room space. The
// accusation room carries no card and corridor squares are not rooms.
func (b *Board) RoomCard(name string) (cards.Card, error) {
	if b.Classify(name) != ClassRoom {
		return cards.Card{}, fmt.Errorf("space %q is not a guessable room", name)
	}
	return cards.Room(name), nil
}

// distances runs a plain BFS over the adjacency graph.
func (b *Board) distances(from string) map[string]int {
	dist := map[string]int{from: 0}
	queue := []string{from}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, adj := range b.spaces[cur].Adjacent {
			if _, seen := dist[adj]; !seen {
				dist[adj] = dist[cur] + 1
				queue = append(queue, adj)
			}
		}
	}
	return dist
}
