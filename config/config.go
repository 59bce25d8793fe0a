package config

import (
	"errors"
	"fmt"

	"liarsdice/utils"

	"github.com/caarlos0/env/v11"
)

// Policy kinds accepted by agent.New.
const (
	Heuristic = "heuristic"
	Bayes     = "bayes"
	QLearning = "qlearning"
	SARSA     = "sarsa"
	MCTS      = "mcts"
	Network   = "network"
)

// Standalone lists the kinds that are built from configuration alone.
var Standalone = []string{Heuristic, Bayes, QLearning, SARSA, MCTS}

// Kinds lists every policy kind. A network policy also needs its model
// handed to agent.New.
var Kinds = append(append([]string(nil), Standalone...), Network)

// Difficulties name policy kinds by playing strength.
var Difficulties = map[string]string{
	"easy":   QLearning,
	"medium": Network,
	"hard":   SARSA,
}

// ResolveKind maps a difficulty to its policy kind. Other names are
// returned unchanged.
func ResolveKind(kind string) string {
	if resolved, ok := Difficulties[kind]; ok {
		return resolved
	}
	return kind
}

// Policy holds the hyperparameters of one decision policy. Fields a kind
// does not use are ignored.
type Policy struct {
	Kind string `env:"KIND" envDefault:"heuristic"`
	Seed uint64 `env:"SEED"` // 0 picks a time-based seed

	// Bayesian belief tracking
	Threshold float64 `env:"THRESHOLD" envDefault:"0.7"`

	// Tabular learning
	Alpha        float64 `env:"ALPHA" envDefault:"0.1"`
	Gamma        float64 `env:"GAMMA" envDefault:"0.99"`
	Epsilon      float64 `env:"EPSILON" envDefault:"1.0"`
	EpsilonDecay float64 `env:"EPSILON_DECAY" envDefault:"0.995"`
	EpsilonMin   float64 `env:"EPSILON_MIN" envDefault:"0.01"`

	// Tree search
	Episodes    int     `env:"EPISODES" envDefault:"200"`
	Goroutines  int     `env:"GOROUTINES" envDefault:"1"`
	Cutoff      int     `env:"CUTOFF" envDefault:"500"`
	Exploration float64 `env:"EXPLORATION" envDefault:"0"`
}

// Config drives the command line experiments.
type Config struct {
	LogLevel   string `env:"LIARSDICE_LOG_LEVEL" envDefault:"info"`
	Experiment string `env:"LIARSDICE_EXPERIMENT" envDefault:"tournament"`
	Games      int    `env:"LIARSDICE_GAMES" envDefault:"20"`
	TrainGames int    `env:"LIARSDICE_TRAIN_GAMES" envDefault:"500"`
	MaxTurns   int    `env:"LIARSDICE_MAX_TURNS" envDefault:"1000"`
	Seed       uint64 `env:"LIARSDICE_SEED"`
	OutputDir  string `env:"LIARSDICE_OUTPUT_DIR" envDefault:"experiments/results"`

	PlayerOne Policy `envPrefix:"LIARSDICE_PLAYER1_"`
	PlayerTwo Policy `envPrefix:"LIARSDICE_PLAYER2_"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load reads the configuration from the environment and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// DefaultPolicy returns the defaults for kind, as if read from an empty
// environment.
func DefaultPolicy(kind string) Policy {
	var p Policy
	if err := env.ParseWithOptions(&p, env.Options{Environment: map[string]string{}}); err != nil {
		panic(fmt.Sprintf("policy defaults do not parse: %v", err))
	}
	p.Kind = kind
	return p
}

func (c Config) Validate() error {
	if c.Games < 1 {
		return fmt.Errorf("games must be positive, got %d", c.Games)
	}
	if c.MaxTurns < 1 {
		return fmt.Errorf("max turns must be positive, got %d", c.MaxTurns)
	}
	if err := c.PlayerOne.Validate(); err != nil {
		return fmt.Errorf("player 1: %w", err)
	}
	if err := c.PlayerTwo.Validate(); err != nil {
		return fmt.Errorf("player 2: %w", err)
	}
	return nil
}

var ErrUnknownKind = errors.New("unknown policy kind")

func (p Policy) Validate() error {
	if utils.FindIndex(Kinds, ResolveKind(p.Kind)) < 0 {
		return fmt.Errorf("%w %q", ErrUnknownKind, p.Kind)
	}
	switch {
	case p.Threshold < 0 || p.Threshold > 1:
		return fmt.Errorf("threshold must be in [0, 1], got %f", p.Threshold)
	case p.Alpha <= 0 || p.Alpha > 1:
		return fmt.Errorf("alpha must be in (0, 1], got %f", p.Alpha)
	case p.Gamma < 0 || p.Gamma > 1:
		return fmt.Errorf("gamma must be in [0, 1], got %f", p.Gamma)
	case p.Epsilon < 0 || p.Epsilon > 1:
		return fmt.Errorf("epsilon must be in [0, 1], got %f", p.Epsilon)
	case p.EpsilonMin < 0 || p.EpsilonMin > p.Epsilon:
		return fmt.Errorf("epsilon floor must be in [0, epsilon], got %f", p.EpsilonMin)
	case p.EpsilonDecay <= 0 || p.EpsilonDecay > 1:
		return fmt.Errorf("epsilon decay must be in (0, 1], got %f", p.EpsilonDecay)
	case p.Episodes < 1:
		return fmt.Errorf("episodes must be positive, got %d", p.Episodes)
	case p.Goroutines < 1:
		return fmt.Errorf("goroutines must be positive, got %d", p.Goroutines)
	case p.Cutoff < 1:
		return fmt.Errorf("cutoff must be positive, got %d", p.Cutoff)
	case p.Exploration < 0:
		return fmt.Errorf("exploration must not be negative, got %f", p.Exploration)
	}
	return nil
}
