package main

import (
	"flag"
	"os"
	"time"

	"liarsdice/config"
	"liarsdice/experiments"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// A missing .env is fine; the environment alone can carry the config
	_ = godotenv.Load()

	// Flags override the environment, so validation waits until they are parsed
	var cfg config.Config
	if err := config.ParseEnv(&cfg); err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	flag.StringVar(&cfg.Experiment, "experiment", cfg.Experiment, "Experiment to run: tournament, headtohead, train or throughput")
	flag.IntVar(&cfg.Games, "games", cfg.Games, "Games per match up")
	flag.IntVar(&cfg.TrainGames, "train-games", cfg.TrainGames, "Games to train for")
	flag.IntVar(&cfg.MaxTurns, "max-turns", cfg.MaxTurns, "Moves before a match is called off")
	flag.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "Experiment seed, 0 for time based")
	flag.StringVar(&cfg.OutputDir, "out", cfg.OutputDir, "Directory for experiment records")
	flag.StringVar(&cfg.PlayerOne.Kind, "player1", cfg.PlayerOne.Kind, "Policy kind of player 1")
	flag.StringVar(&cfg.PlayerTwo.Kind, "player2", cfg.PlayerTwo.Kind, "Policy kind of player 2")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}
	zerolog.SetGlobalLevel(level)

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid config")
	}

	start := time.Now()
	if err := experiments.Run(cfg); err != nil {
		log.Fatal().Err(err).Msgf("%s experiment failed", cfg.Experiment)
	}
	log.Info().Msgf("%s experiment finished in %s", cfg.Experiment, time.Since(start).Round(time.Millisecond))
}
