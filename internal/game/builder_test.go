package game

import (
	"io"
	"math/rand"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/drewsdunne/Clue/internal/cards"
	"github.com/drewsdunne/Clue/internal/config"
	"github.com/drewsdunne/Clue/internal/events"
)

func builderConfig(t *testing.T) *config.GameConfig {
	t.Helper()
	cfg, err := config.Load("../../default_config.json")
	if err != nil {
		t.Fatalf("failed to load the default config: %v", err)
	}
	return cfg
}

func builderLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestBuildDealsTheWholeDeck(t *testing.T) {
	cfg := builderConfig(t)
	g, err := NewBuilder(cfg, builderLogger(), rand.New(rand.NewSource(42))).
		WithAIPlayers(4).
		Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	envelope := g.State().Envelope
	if envelope.Suspect.Category != cards.CategorySuspect ||
		envelope.Weapon.Category != cards.CategoryWeapon ||
		envelope.Room.Category != cards.CategoryRoom {
		t.Fatalf("envelope %s does not hold one card per category", envelope)
	}

	seen := map[cards.Card]int{}
	for _, c := range envelope.Cards() {
		seen[c]++
	}
	players := g.Players()
	if len(players) != 4 {
		t.Fatalf("got %d players, want 4", len(players))
	}
	handSizes := make([]int, 0, len(players))
	for _, p := range players {
		if p.Agent.Human() {
			t.Errorf("%s should be automated", p.Name)
		}
		if want := cfg.StartingSpaces[p.Name]; p.Location != want {
			t.Errorf("%s starts at %q, want %q", p.Name, p.Location, want)
		}
		hand := p.Sheet.Hand()
		handSizes = append(handSizes, len(hand))
		for _, c := range hand {
			seen[c]++
		}
	}

	for _, c := range cfg.Universe() {
		if seen[c] != 1 {
			t.Errorf("card %q dealt %d times, want exactly once", c, seen[c])
		}
	}
	for _, n := range handSizes {
		if diff := n - handSizes[0]; diff < -1 || diff > 1 {
			t.Errorf("uneven hands: %v", handSizes)
		}
	}

	if !g.State().Public.AIOnly {
		t.Error("a game with no humans must run in ai-only mode")
	}
	if g.State().Public.AccusationRoom != cfg.AccusationRoom {
		t.Errorf("accusation room = %q, want %q", g.State().Public.AccusationRoom, cfg.AccusationRoom)
	}
	if g.State().Public.Current != players[0].Name {
		t.Errorf("the first seat must open the game")
	}
}

func TestBuildValidation(t *testing.T) {
	cfg := builderConfig(t)

	t.Run("too few players", func(t *testing.T) {
		_, err := NewBuilder(cfg, builderLogger(), rand.New(rand.NewSource(1))).
			WithAIPlayers(1).
			Build()
		if err == nil {
			t.Error("expected an error for a single player")
		}
	})

	t.Run("more players than suspects", func(t *testing.T) {
		_, err := NewBuilder(cfg, builderLogger(), rand.New(rand.NewSource(1))).
			WithAIPlayers(len(cfg.Suspects) + 1).
			Build()
		if err == nil {
			t.Error("expected an error for too many players")
		}
	})

	t.Run("humans need a prompter", func(t *testing.T) {
		_, err := NewBuilder(cfg, builderLogger(), rand.New(rand.NewSource(1))).
			WithHumanPlayers(1).
			WithAIPlayers(2).
			Build()
		if err == nil {
			t.Error("expected an error for a human player without a prompter")
		}
	})
}

func TestBuildPublishesGameReady(t *testing.T) {
	cfg := builderConfig(t)
	b := NewBuilder(cfg, builderLogger(), rand.New(rand.NewSource(3))).WithAIPlayers(3)
	rec := &eventRecorder{}
	b.EventManager().Subscribe(rec)

	if _, err := b.Build(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !rec.find(func(e events.Event) bool {
		r, ok := e.(events.GameReadyEvent)
		return ok && r.GameID != "" && len(r.Players) == 3 && r.AccusationRoom == cfg.AccusationRoom
	}) {
		t.Error("no game ready event published")
	}
}

func TestBuildSameSeedSameDeal(t *testing.T) {
	cfg := builderConfig(t)
	build := func() *Game {
		g, err := NewBuilder(cfg, builderLogger(), rand.New(rand.NewSource(99))).
			WithAIPlayers(4).
			Build()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		return g
	}
	a, b := build(), build()

	if !a.State().Envelope.Equal(b.State().Envelope) {
		t.Errorf("envelopes differ: %s vs %s", a.State().Envelope, b.State().Envelope)
	}
	pa, pb := a.Players(), b.Players()
	for i := range pa {
		if pa[i].Name != pb[i].Name {
			t.Fatalf("turn orders differ: %s vs %s", pa[i].Name, pb[i].Name)
		}
		ha, hb := pa[i].Sheet.Hand(), pb[i].Sheet.Hand()
		if len(ha) != len(hb) {
			t.Fatalf("%s's hands differ in size", pa[i].Name)
		}
		for j := range ha {
			if ha[j] != hb[j] {
				t.Errorf("%s's hands differ: %v vs %v", pa[i].Name, ha, hb)
			}
		}
	}
}
