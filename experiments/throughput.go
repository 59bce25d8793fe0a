package experiments

import (
	"liarsdice/config"
	"liarsdice/experiments/metrics"
)

var throughputGoroutines = []int{1, 2, 4, 8}

// RunThroughput plays MCTS against itself at increasing worker counts with
// a fixed episode budget. Move records carry each search's duration.
func RunThroughput(cfg config.Config) error {
	base := cfg.PlayerOne
	base.Kind = config.MCTS

	configs := make([]metrics.AgentConfig, len(throughputGoroutines))
	for i, goroutines := range throughputGoroutines {
		configs[i] = metrics.AgentConfig{ID: i + 1, Policy: base}
		configs[i].Goroutines = goroutines
	}

	// Same config for both players in each game
	// for the same playing strength and similar game length
	matchUps := [][]metrics.AgentConfig{}
	for _, config := range configs {
		matchUps = append(matchUps, []metrics.AgentConfig{config, config})
	}

	return runExperiment(cfg, Throughput, configs, matchUps)
}
