package agent

import (
	"liarsdice/experiments/metrics"
	"liarsdice/game"
	"liarsdice/searcher"

	"github.com/rs/zerolog/log"
)

// Search plays the root action with the best mean reward found by MCTS.
type Search struct {
	mcts *searcher.MCTS
	last metrics.SearchMetric
}

func NewSearch(mcts *searcher.MCTS) *Search {
	return &Search{mcts: mcts}
}

func (s *Search) Choose(state game.MatchState) game.Action {
	stats, metric := s.mcts.Simulate(state)
	s.last = metric
	best, ok := searcher.Best(stats)
	if !ok {
		log.Warn().Msgf("search: nothing to search for %s, challenging", state.Turn)
		return game.Challenge()
	}
	return game.Decode(best)
}

// LastSearch reports the metrics of the most recent Choose.
func (s *Search) LastSearch() metrics.SearchMetric {
	return s.last
}
