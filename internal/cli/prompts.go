package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/drewsdunne/Clue/internal/board"
	"github.com/drewsdunne/Clue/internal/cards"
)

// C holds pre-configured color objects for printing to the console.
var C = struct {
	Yes, No, Maybe, Info, Warn, Header, Prompt, Debug *color.Color
}{
	Yes:    color.New(color.FgGreen),
	No:     color.New(color.FgRed),
	Maybe:  color.New(color.FgYellow),
	Info:   color.New(color.FgCyan),
	Warn:   color.New(color.FgHiYellow),
	Header: color.New(color.FgWhite, color.Bold),
	Prompt: color.New(color.FgHiWhite),
	Debug:  color.New(color.FgMagenta),
}

// SuspectColors maps suspect names to specific colors for display.
var SuspectColors = map[string]*color.Color{
	"Miss Scarlett":   color.New(color.FgRed),
	"Colonel Mustard": color.New(color.FgYellow),
	"Mrs. White":      color.New(color.FgWhite),
	"Mr. Green":       color.New(color.FgGreen),
	"Mrs. Peacock":    color.New(color.FgBlue),
	"Professor Plum":  color.New(color.FgMagenta),
}

// Colorize returns a name as a colored string if it's a suspect.
func Colorize(name string) string {
	if c, ok := SuspectColors[name]; ok {
		return c.Sprint(name)
	}
	return name
}

// --- player.Prompter implementation ---

func (c *CLI) PromptMove(name string, opts []board.Move) (board.Move, error) {
	labels := make([]string, len(opts))
	for i, m := range opts {
		labels[i] = m.String()
	}
	i, err := c.promptForIndex(fmt.Sprintf("%s, choose your move:", Colorize(name)), labels)
	if err != nil {
		return board.Move{}, err
	}
	return opts[i], nil
}

func (c *CLI) PromptMovement(name string, opts []board.Destination) (board.Destination, error) {
	labels := make([]string, len(opts))
	for i, d := range opts {
		switch {
		case d.Room:
			labels[i] = d.Space + " (room)"
		default:
			labels[i] = d.Space
		}
	}
	i, err := c.promptForIndex(fmt.Sprintf("%s, where do you move?", Colorize(name)), labels)
	if err != nil {
		return board.Destination{}, err
	}
	return opts[i], nil
}

func (c *CLI) PromptGuess(name string, room cards.Card) (cards.Triple, error) {
	C.Info.Printf("\n%s, make a guess in the %s.\n", Colorize(name), Colorize(room.Name))
	suspect, err := c.promptForCard("Which suspect?", c.cfg.CardListForCategory(cards.CategorySuspect))
	if err != nil {
		return cards.Triple{}, err
	}
	weapon, err := c.promptForCard("With which weapon?", c.cfg.CardListForCategory(cards.CategoryWeapon))
	if err != nil {
		return cards.Triple{}, err
	}
	return cards.Triple{Suspect: suspect, Weapon: weapon, Room: room}, nil
}

func (c *CLI) PromptAccusation(name string) (cards.Triple, error) {
	C.Warn.Printf("\n%s, this is a final ACCUSATION. A miss puts you out of the game.\n", Colorize(name))
	suspect, err := c.promptForCard("Accuse which suspect?", c.cfg.CardListForCategory(cards.CategorySuspect))
	if err != nil {
		return cards.Triple{}, err
	}
	weapon, err := c.promptForCard("With which weapon?", c.cfg.CardListForCategory(cards.CategoryWeapon))
	if err != nil {
		return cards.Triple{}, err
	}
	room, err := c.promptForCard("In which room?", c.cfg.CardListForCategory(cards.CategoryRoom))
	if err != nil {
		return cards.Triple{}, err
	}
	return cards.Triple{Suspect: suspect, Weapon: weapon, Room: room}, nil
}

func (c *CLI) PromptReveal(name, asker string, matches []cards.Card) (cards.Card, error) {
	C.Info.Printf("\n%s, you must show %s a card.\n", Colorize(name), Colorize(asker))
	return c.promptForCard("Which card do you show?", matches)
}

// --- prompt helpers ---

func (c *CLI) promptForCard(prompt string, options []cards.Card) (cards.Card, error) {
	labels := make([]string, len(options))
	for i, card := range options {
		labels[i] = card.Name
	}
	i, err := c.promptForIndex(prompt, labels)
	if err != nil {
		return cards.Card{}, err
	}
	return options[i], nil
}

func (c *CLI) promptForIndex(prompt string, options []string) (int, error) {
	for {
		C.Header.Println("\n" + prompt)
		for i, opt := range options {
			fmt.Printf(" %2d: %s\n", i+1, Colorize(opt))
		}
		input, err := c.promptForString("Enter number or name: ")
		if err != nil {
			return 0, err
		}
		if num, err := strconv.Atoi(input); err == nil && num >= 1 && num <= len(options) {
			return num - 1, nil
		}
		for i, opt := range options {
			if strings.EqualFold(opt, input) {
				return i, nil
			}
		}
		C.Warn.Println("Invalid selection.")
	}
}

func (c *CLI) promptForString(prompt string) (string, error) {
	for {
		C.Prompt.Print(prompt)
		input, err := c.line.Prompt("")
		if err != nil {
			return "", err
		}
		trimmed := strings.TrimSpace(input)
		if trimmed != "" {
			c.line.AppendHistory(trimmed)
			return trimmed, nil
		}
	}
}
