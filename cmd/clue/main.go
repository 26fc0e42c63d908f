package main

import (
	"flag"
	"math/rand"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/drewsdunne/Clue/internal/cli"
	"github.com/drewsdunne/Clue/internal/config"
)

func main() {
	// .env may set CLUE_LOGLEVEL; flags still win.
	_ = godotenv.Load()
	defaultLevel := os.Getenv("CLUE_LOGLEVEL")
	if defaultLevel == "" {
		defaultLevel = "info"
	}

	logLevel := flag.String("loglevel", defaultLevel, "Set logging level (debug, info, warn, error)")
	configPath := flag.String("config", "default_config.json", "Path to the game definition file")
	seed := flag.Int64("seed", time.Now().UnixNano(), "Random seed (for reproducible games)")
	flag.Parse()

	log := logrus.New()
	level, err := logrus.ParseLevel(*logLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true, ForceColors: true})

	gameConfig, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ui := cli.NewCLI(log)
	randSource := rand.New(rand.NewSource(*seed))
	if err := ui.Run(flag.Args(), gameConfig, randSource); err != nil {
		log.Errorf("Application exited with error: %v", err)
		os.Exit(1)
	}
}
