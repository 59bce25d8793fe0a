package agent

import (
	"errors"
	"fmt"
	"time"

	"liarsdice/config"
	"liarsdice/game"
	"liarsdice/searcher"

	"golang.org/x/exp/rand"
)

var ErrNoNetwork = errors.New("network policy needs a model")

type Option func(b *builder)

type builder struct {
	net Network
}

// WithNetwork supplies the model a network policy queries.
func WithNetwork(net Network) Option {
	return func(b *builder) {
		b.net = net
	}
}

// New builds a policy of kind for self. kind may also be a difficulty from
// config.Difficulties. Every call returns a fresh instance.
func New(kind string, self game.Player, cfg config.Policy, options ...Option) (Policy, error) {
	b := &builder{}
	for _, option := range options {
		option(b)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewSource(seed))

	switch config.ResolveKind(kind) {
	case config.Heuristic:
		return NewHeuristic(rng), nil
	case config.Bayes:
		return NewBayes(self, cfg.Threshold), nil
	case config.QLearning:
		return NewQLearning(self, NewValueTable(), cfg, rng), nil
	case config.SARSA:
		return NewSARSA(self, NewValueTable(), cfg, rng), nil
	case config.MCTS:
		return NewSearch(searcher.NewMCTS(
			searcher.WithEpisodes(cfg.Episodes),
			searcher.WithGoroutines(cfg.Goroutines),
			searcher.WithCutoff(cfg.Cutoff),
			searcher.WithExploration(cfg.Exploration),
			searcher.WithSeed(rng.Uint64()),
			searcher.WithMetrics(),
		)), nil
	case config.Network:
		if b.net == nil {
			return nil, fmt.Errorf("%w: %q", ErrNoNetwork, kind)
		}
		return NewNetworkPolicy(b.net), nil
	}
	return nil, fmt.Errorf("%w %q", config.ErrUnknownKind, kind)
}
