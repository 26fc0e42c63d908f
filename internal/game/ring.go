package game

import (
	"errors"
	"fmt"

	"github.com/drewsdunne/Clue/internal/player"
)

var (
	ErrEmptyRing      = errors.New("player ring is empty")
	ErrPlayerNotFound = errors.New("player not found in ring")
)

// Ring is the fixed-order turn rotation: the successor of the last
// player is the first. It is an indexed array, so lookup, replace and
// successor are all O(1) and the original order never changes.
type Ring struct {
	players []player.Player
	index   map[string]int
}

// NewRing fixes the turn order from the given players.
func NewRing(players []player.Player) (*Ring, error) {
	r := &Ring{
		players: make([]player.Player, len(players)),
		index:   make(map[string]int, len(players)),
	}
	copy(r.players, players)
	for i, p := range r.players {
		if _, dup := r.index[p.Name]; dup {
			return nil, fmt.Errorf("duplicate player %q in ring", p.Name)
		}
		r.index[p.Name] = i
	}
	return r, nil
}

func (r *Ring) Len() int { return len(r.players) }

// Lookup resolves the (current, next) pair for a player id, wrapping
// to the head after the tail. Both error branches are fatal invariant
// violations for callers.
func (r *Ring) Lookup(id string) (current, next player.Player, err error) {
	if len(r.players) == 0 {
		return player.Player{}, player.Player{}, ErrEmptyRing
	}
	i, ok := r.index[id]
	if !ok {
		return player.Player{}, player.Player{}, fmt.Errorf("%w: %q", ErrPlayerNotFound, id)
	}
	return r.players[i], r.players[(i+1)%len(r.players)], nil
}

// Get returns a player by id.
func (r *Ring) Get(id string) (player.Player, error) {
	i, ok := r.index[id]
	if !ok {
		return player.Player{}, fmt.Errorf("%w: %q", ErrPlayerNotFound, id)
	}
	return r.players[i], nil
}

// Replace swaps in an updated player record by identity.
func (r *Ring) Replace(p player.Player) error {
	i, ok := r.index[p.Name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrPlayerNotFound, p.Name)
	}
	r.players[i] = p
	return nil
}

// Players returns the ring in turn order.
func (r *Ring) Players() []player.Player {
	out := make([]player.Player, len(r.players))
	copy(out, r.players)
	return out
}

// Others returns every other player in ring order, starting immediately
// after the given id and wrapping once around.
func (r *Ring) Others(id string) ([]player.Player, error) {
	i, ok := r.index[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrPlayerNotFound, id)
	}
	out := make([]player.Player, 0, len(r.players)-1)
	for n := 1; n < len(r.players); n++ {
		out = append(out, r.players[(i+n)%len(r.players)])
	}
	return out, nil
}

// AllOut reports whether every player has been eliminated.
func (r *Ring) AllOut() bool {
	for _, p := range r.players {
		if !p.Out {
			return false
		}
	}
	return true
}

// ActiveHumans counts the human-controlled players still in the game.
func (r *Ring) ActiveHumans() int {
	n := 0
	for _, p := range r.players {
		if !p.Out && p.Agent.Human() {
			n++
		}
	}
	return n
}
