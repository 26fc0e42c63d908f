package board

import (
	"testing"
)

// testBoard is a small square: four corridor squares in a loop with
// three rooms hanging off it, the Cellar being the accusation room.
func testBoard(t *testing.T) *Board {
	t.Helper()
	b, err := New([]Space{
		{Name: "c1", Adjacent: []string{"c2", "c4", "Hall"}},
		{Name: "c2", Adjacent: []string{"c1", "c3"}},
		{Name: "c3", Adjacent: []string{"c2", "c4", "Library"}},
		{Name: "c4", Adjacent: []string{"c3", "c1", "Cellar"}},
		{Name: "Hall", Room: true, Adjacent: []string{"c1"}, Passage: "Library"},
		{Name: "Library", Room: true, Adjacent: []string{"c3"}, Passage: "Hall"},
		{Name: "Cellar", Room: true, Adjacent: []string{"c4"}},
	}, "Cellar")
	if err != nil {
		t.Fatalf("failed to build board: %v", err)
	}
	return b
}

func TestNewValidation(t *testing.T) {
	t.Run("it rejects adjacency to an unknown space", func(t *testing.T) {
		_, err := New([]Space{{Name: "c1", Adjacent: []string{"nowhere"}}}, "c1")
		if err == nil {
			t.Error("expected an error for unknown adjacency")
		}
	})

	t.Run("it rejects an accusation room that is not a room", func(t *testing.T) {
		_, err := New([]Space{{Name: "c1"}}, "c1")
		if err == nil {
			t.Error("expected an error for a corridor accusation room")
		}
	})

	t.Run("it rejects a passage into a corridor", func(t *testing.T) {
		_, err := New([]Space{
			{Name: "c1"},
			{Name: "Hall", Room: true, Passage: "c1"},
		}, "Hall")
		if err == nil {
			t.Error("expected an error for a passage to a corridor square")
		}
	})
}

func TestMoveOptions(t *testing.T) {
	b := testBoard(t)

	t.Run("a room with a passage offers both moves", func(t *testing.T) {
		opts, err := b.MoveOptions("Hall")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(opts) != 2 {
			t.Fatalf("expected 2 options, got %d", len(opts))
		}
		if opts[0].Kind != MoveRoll {
			t.Error("first option should be the roll")
		}
		if opts[1].Kind != MovePassage || opts[1].Passage != "Library" {
			t.Errorf("expected a passage to the Library, got %+v", opts[1])
		}
	})

	t.Run("a corridor square only offers the roll", func(t *testing.T) {
		opts, err := b.MoveOptions("c2")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(opts) != 1 || opts[0].Kind != MoveRoll {
			t.Errorf("expected only a roll, got %+v", opts)
		}
	})
}

func TestMovementOptions(t *testing.T) {
	// GIVEN a roll of 2 from c1
	b := testBoard(t)
	opts, err := b.MovementOptions("c1", 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// THEN rooms within reach appear (stopping early allowed), corridor
	// squares only on a parity-matching distance, and never the origin.
	want := map[string]Destination{
		"Cellar": {Space: "Cellar", Room: true, Exact: true},  // distance 2
		"Hall":   {Space: "Hall", Room: true, Exact: false},   // distance 1, parity off
		"c3":     {Space: "c3", Exact: true},                  // distance 2
	}
	if len(opts) != len(want) {
		t.Fatalf("expected %d destinations, got %v", len(want), opts)
	}
	for _, d := range opts {
		exp, ok := want[d.Space]
		if !ok {
			t.Errorf("unexpected destination %+v", d)
			continue
		}
		if d != exp {
			t.Errorf("destination %s = %+v, want %+v", d.Space, d, exp)
		}
	}
}

func TestClassifyAndRoomCard(t *testing.T) {
	b := testBoard(t)

	if got := b.Classify("Cellar"); got != ClassAccusation {
		t.Errorf("Cellar classified as %v, want accusation", got)
	}
	if got := b.Classify("Hall"); got != ClassRoom {
		t.Errorf("Hall classified as %v, want room", got)
	}
	if got := b.Classify("c2"); got != ClassCorridor {
		t.Errorf("c2 classified as %v, want corridor", got)
	}

	if card, err := b.RoomCard("Hall"); err != nil || card.Name != "Hall" {
		t.Errorf("RoomCard(Hall) = %v, %v", card, err)
	}
	if _, err := b.RoomCard("Cellar"); err == nil {
		t.Error("the accusation room must not yield a room card")
	}
	if _, err := b.RoomCard("c1"); err == nil {
		t.Error("a corridor square must not yield a room card")
	}
}
