package experiments

import (
	"errors"
	"fmt"
	"time"

	"liarsdice/agent"
	"liarsdice/config"
	"liarsdice/engine"
	"liarsdice/experiments/metrics"
	"liarsdice/game"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

const (
	Tournament = "tournament"
	HeadToHead = "headtohead"
	Train      = "train"
	Throughput = "throughput"
)

var ErrUnknownExperiment = errors.New("unknown experiment")

// Run dispatches to the experiment named by cfg.Experiment.
func Run(cfg config.Config) error {
	switch cfg.Experiment {
	case Tournament:
		return RunTournament(cfg)
	case HeadToHead:
		return RunHeadToHead(cfg)
	case Train:
		return RunTraining(cfg)
	case Throughput:
		return RunThroughput(cfg)
	}
	return fmt.Errorf("%w %q", ErrUnknownExperiment, cfg.Experiment)
}

// RunTournament pairs every standalone policy kind with every other, each
// with its default hyperparameters.
func RunTournament(cfg config.Config) error {
	configs := make([]metrics.AgentConfig, len(config.Standalone))
	for i, kind := range config.Standalone {
		configs[i] = metrics.AgentConfig{ID: i + 1, Policy: config.DefaultPolicy(kind)}
	}

	matchUps := [][]metrics.AgentConfig{}
	for i := range configs {
		for j := i + 1; j < len(configs); j++ {
			matchUps = append(matchUps, []metrics.AgentConfig{configs[i], configs[j]})
		}
	}

	return runExperiment(cfg, Tournament, configs, matchUps)
}

// RunHeadToHead plays the two configured policies against each other.
func RunHeadToHead(cfg config.Config) error {
	configs := []metrics.AgentConfig{
		{ID: 1, Policy: cfg.PlayerOne},
		{ID: 2, Policy: cfg.PlayerTwo},
	}
	return runExperiment(cfg, HeadToHead, configs, [][]metrics.AgentConfig{configs})
}

func runExperiment(cfg config.Config, name string, configs []metrics.AgentConfig, matchUps [][]metrics.AgentConfig) error {
	r := newRecorder(cfg)

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchup := range matchUps {
		config1 := matchup[0]
		config2 := matchup[1]

		log.Info().Msgf("starting matchup %d of %d between agent1=%s and agent2=%s...", mi+1, len(matchUps), config1.Kind, config2.Kind)

		wins := map[int]int{}
		for i := 0; i < cfg.Games; i++ {
			// Alternate seats so neither agent always opens
			first, second := config1, config2
			if i%2 == 1 {
				first, second = config2, config1
			}
			one, err := r.seat(first, game.PlayerOne)
			if err != nil {
				return err
			}
			two, err := r.seat(second, game.PlayerTwo)
			if err != nil {
				return err
			}

			winner := r.play(one, two)
			switch winner {
			case game.PlayerOne:
				wins[first.ID]++
			case game.PlayerTwo:
				wins[second.ID]++
			}
		}
		log.Info().Msgf("completed matchup %d of %d: %s won %d, %s won %d of %d", mi+1, len(matchUps),
			config1.Kind, wins[config1.ID], config2.Kind, wins[config2.ID], cfg.Games)
	}

	log.Info().Msgf("completed %s experiment", name)
	return r.write(cfg.OutputDir, name, configs)
}

type seat struct {
	config metrics.AgentConfig
	policy agent.Policy
}

// recorder plays games and accumulates their records.
type recorder struct {
	maxMoves    int
	rng         *rand.Rand
	count       int
	gameRecords []metrics.GameRecord
	moveRecords []metrics.MoveRecord
}

func newRecorder(cfg config.Config) *recorder {
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &recorder{
		maxMoves: cfg.MaxTurns,
		rng:      rand.New(rand.NewSource(seed)),
	}
}

// seat builds a fresh policy for player. Unseeded policies get a seed from
// the experiment's seed.
func (r *recorder) seat(cfg metrics.AgentConfig, player game.Player) (seat, error) {
	policy := cfg.Policy
	if policy.Seed == 0 {
		policy.Seed = r.rng.Uint64()
	}
	p, err := agent.New(policy.Kind, player, policy)
	if err != nil {
		return seat{}, fmt.Errorf("failed to build agent %d: %w", cfg.ID, err)
	}
	return seat{config: cfg, policy: p}, nil
}

// play executes a single game between two seats and returns the winner.
func (r *recorder) play(one, two seat) game.Player {
	var e engine.Engine = engine.NewLocal(
		[]string{one.config.Kind, two.config.Kind},
		[]agent.Policy{one.policy, two.policy},
		r.maxMoves,
		game.WithSeed(r.rng.Uint64()),
	)
	winner, gameMetric, moveMetrics := e.Run()

	r.count++
	r.gameRecords = append(r.gameRecords, metrics.GameRecord{
		ID:         r.count,
		Agent1:     one.config.ID,
		Agent2:     two.config.ID,
		GameMetric: gameMetric,
	})
	for _, mm := range moveMetrics {
		r.moveRecords = append(r.moveRecords, metrics.MoveRecord{
			Game:       r.count,
			MoveMetric: mm,
		})
	}
	return winner
}

// write stores experiment metadata and results under root.
func (r *recorder) write(root, name string, configs []metrics.AgentConfig) error {
	writer, err := metrics.NewWriter(root, name)
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}

	if err := writer.WriteAgentConfigs(configs); err != nil {
		return fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	if err := writer.WriteGameRecords(r.gameRecords); err != nil {
		return fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(r.moveRecords); err != nil {
		return fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msgf("stored move records in %s", writer.Dir())
	return nil
}
