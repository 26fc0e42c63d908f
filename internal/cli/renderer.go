package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/drewsdunne/Clue/internal/cards"
	"github.com/drewsdunne/Clue/internal/events"
	"github.com/drewsdunne/Clue/internal/sheet"
)

// Renderer implements events.Listener and prints game progress to the
// console. It contributes no state back to the game.
type Renderer struct{}

// HandleEvent is the central dispatcher for rendering events.
func (r *Renderer) HandleEvent(e events.Event) {
	switch event := e.(type) {
	case events.GameReadyEvent:
		C.Header.Println("--- Starting Game ---")
		C.Debug.Printf("Game ID: %s\n", event.GameID)
		parts := make([]string, len(event.Players))
		for i, name := range event.Players {
			parts[i] = Colorize(name)
		}
		C.Info.Printf("Turn order: %s\n", strings.Join(parts, ", "))
		C.Info.Printf("Final accusations are made in the %s.\n", event.AccusationRoom)
	case events.HumanHandEvent:
		var parts []string
		for _, card := range event.Hand {
			parts = append(parts, Colorize(card.Name))
		}
		C.Info.Printf("\n%s's hand: %s\n", Colorize(event.Player), strings.Join(parts, ", "))
	case events.TurnStartEvent:
		C.Header.Printf("\n--- Turn %d: %s (at %s) ---\n", event.Turn, Colorize(event.Player), event.Location)
	case events.MoveChosenEvent:
		C.Info.Printf("%s decides to %s.\n", Colorize(event.Player), event.Move)
	case events.DiceRolledEvent:
		C.Info.Printf("%s rolls a %d.\n", Colorize(event.Player), event.Roll)
	case events.MovedEvent:
		C.Info.Printf("%s moves to %s.\n", Colorize(event.Player), event.To)
	case events.GuessMadeEvent:
		C.Info.Printf("%s guesses: %s\n", Colorize(event.Player), colorizeTriple(event.Guess))
	case events.RevealEvent:
		C.Info.Printf("-> %s shows a card to %s.\n", Colorize(event.Revealer), Colorize(event.Guesser))
	case events.NoRevealEvent:
		C.Info.Println("-> No player could show a card.")
	case events.AccusationEvent:
		C.Warn.Printf("%s ACCUSES: %s\n", Colorize(event.Player), colorizeTriple(event.Accusation))
	case events.EliminatedEvent:
		C.No.Printf("The accusation is INCORRECT! %s is out of the game.\n", event.Player)
	case events.VictoryEvent:
		C.Yes.Printf("The accusation is CORRECT! %s wins!\n", Colorize(event.Winner))
	case events.GameOverEvent:
		C.Header.Println("\n--- GAME OVER ---")
		if event.Exhausted {
			C.Warn.Println("Turn limit reached without a correct accusation.")
		} else {
			C.Warn.Println("No eligible players remain.")
		}
		C.Info.Printf("The correct solution was: %s\n", colorizeTriple(event.Solution))
	}
}

func colorizeTriple(t cards.Triple) string {
	return fmt.Sprintf("%s with the %s in the %s", Colorize(t.Suspect.Name), t.Weapon.Name, t.Room.Name)
}

// RenderSheet displays a player's knowledge sheet as a table.
func RenderSheet(playerName string, sh *sheet.Sheet) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetTitle(fmt.Sprintf("%s's Detective Notes", playerName))
	t.AppendHeader(table.Row{"ID", "Card", "Type", "Belief"})

	universe := sh.Universe()
	for i, card := range universe {
		if i > 0 && card.Category != universe[i-1].Category {
			t.AppendSeparator()
		}
		t.AppendRow(table.Row{i + 1, Colorize(card.Name), card.Category.String(), beliefToSymbol(sh.Belief(card))})
	}
	t.SetStyle(table.StyleRounded)
	t.Style().Options.SeparateRows = false
	t.Style().Title.Align = text.AlignCenter
	t.SetColumnConfigs([]table.ColumnConfig{{Number: 1, Align: text.AlignRight}})
	t.Render()
}

func beliefToSymbol(b sheet.Belief) string {
	switch b.Kind {
	case sheet.Mine:
		return C.Yes.Sprint("✔ mine")
	case sheet.Envelope:
		return C.Warn.Sprint("★ envelope")
	case sheet.ShownBy:
		return C.No.Sprintf("✖ %s", b.Holder)
	default:
		return C.Maybe.Sprint("?")
	}
}
