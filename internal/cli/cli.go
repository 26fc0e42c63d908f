// Package cli wires the game to a terminal: it prompts human players,
// renders events and dispatches the top-level commands.
package cli

import (
	"errors"
	"fmt"
	"math/rand"
	"strconv"

	"github.com/peterh/liner"
	"github.com/sirupsen/logrus"

	"github.com/drewsdunne/Clue/internal/config"
	"github.com/drewsdunne/Clue/internal/game"
)

// CLI manages all command-line interactions. It implements
// player.Prompter for human-controlled players.
type CLI struct {
	log  *logrus.Logger
	line *liner.State
	cfg  *config.GameConfig
}

// NewCLI creates a new command-line interface manager.
func NewCLI(log *logrus.Logger) *CLI {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)
	return &CLI{log: log, line: line}
}

// Run is the main entry point for the CLI application.
func (c *CLI) Run(args []string, cfg *config.GameConfig, rand *rand.Rand) error {
	defer c.line.Close()
	c.cfg = cfg

	if len(args) < 1 {
		c.printUsage()
		return errors.New("no command provided")
	}
	switch args[0] {
	case "start":
		if len(args) != 3 {
			c.printUsage()
			return errors.New("invalid arguments for 'start' command")
		}
		numHumans, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid human count %q", args[1])
		}
		numAI, err := strconv.Atoi(args[2])
		if err != nil {
			return fmt.Errorf("invalid AI count %q", args[2])
		}
		return c.runGame(numHumans, numAI, rand)
	default:
		c.printUsage()
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func (c *CLI) runGame(numHumans, numAI int, rand *rand.Rand) error {
	builder := game.NewBuilder(c.cfg, c.log, rand).
		WithHumanPlayers(numHumans).
		WithAIPlayers(numAI).
		WithPrompter(c).
		WithMaxTurns(200)
	builder.EventManager().Subscribe(&Renderer{})

	g, err := builder.Build()
	if err != nil {
		return fmt.Errorf("failed to build game: %w", err)
	}

	outcome, err := g.Run()
	if err != nil {
		return err
	}
	if outcome.Winner != "" {
		for _, p := range g.Players() {
			if p.Name == outcome.Winner {
				fmt.Println()
				RenderSheet(p.Name, p.Sheet)
				break
			}
		}
	}
	return nil
}

func (c *CLI) printUsage() {
	C.Header.Println("\n--- Clue ---")
	fmt.Println("Usage:")
	fmt.Println("  go run ./cmd/clue start <humans> <ai>")
	fmt.Println("    Play a game with a mix of human and automated players.")
	fmt.Println("\nFlags:")
	fmt.Println("  -loglevel debug    Enable detailed deduction tracing.")
	fmt.Println("  -seed N            Fix the random seed for a reproducible game.")
	fmt.Println("  -config PATH       Use an alternative game definition.")
}
