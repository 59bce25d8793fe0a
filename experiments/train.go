package experiments

import (
	"errors"
	"fmt"

	"liarsdice/agent"
	"liarsdice/config"
	"liarsdice/experiments/metrics"
	"liarsdice/game"

	"github.com/rs/zerolog/log"
)

const reportEvery = 100 // Training games between progress reports

var ErrNotTrainable = errors.New("policy does not keep a value table")

type tabularLearner interface {
	agent.Learner
	Table() *agent.ValueTable
	Epsilon() float64
}

// RunTraining trains player one's tabular learner against player two's
// policy for cfg.TrainGames games, reusing one learner and value table
// throughout. Player two is rebuilt every game.
func RunTraining(cfg config.Config) error {
	configs := []metrics.AgentConfig{
		{ID: 1, Policy: cfg.PlayerOne},
		{ID: 2, Policy: cfg.PlayerTwo},
	}
	r := newRecorder(cfg)

	one, err := r.seat(configs[0], game.PlayerOne)
	if err != nil {
		return err
	}
	learner, ok := one.policy.(tabularLearner)
	if !ok {
		return fmt.Errorf("cannot train %s: %w", cfg.PlayerOne.Kind, ErrNotTrainable)
	}

	log.Info().Msgf("training %s against %s for %d games...", cfg.PlayerOne.Kind, cfg.PlayerTwo.Kind, cfg.TrainGames)

	wins := 0
	for i := 1; i <= cfg.TrainGames; i++ {
		two, err := r.seat(configs[1], game.PlayerTwo)
		if err != nil {
			return err
		}
		if r.play(one, two) == game.PlayerOne {
			wins++
		}
		if i%reportEvery == 0 || i == cfg.TrainGames {
			log.Info().Msgf("trained %d games: win rate %.2f, epsilon %.3f, %d states", i, float64(wins)/float64(i), learner.Epsilon(), learner.Table().Len())
		}
	}

	log.Info().Msg("completed training")
	return r.write(cfg.OutputDir, Train, configs)
}
