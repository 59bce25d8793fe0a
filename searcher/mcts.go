package searcher

import (
	"sync"
	"time"

	"liarsdice/experiments/metrics"
	"liarsdice/game"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type Option func(mcts *MCTS)

// ActionStat is a root child's statistics from the root mover's perspective.
type ActionStat struct {
	Action  game.ActionID
	Visits  float64
	Rewards float64
}

func (s ActionStat) Mean() float64 {
	if s.Visits == 0 {
		return 0
	}
	return s.Rewards / s.Visits
}

// Best returns the action with the highest mean reward, the first one listed
// on ties.
func Best(stats []ActionStat) (game.ActionID, bool) {
	if len(stats) == 0 {
		return 0, false
	}
	best := 0
	for i := 1; i < len(stats); i++ {
		if stats[i].Mean() > stats[best].Mean() {
			best = i
		}
	}
	return stats[best].Action, true
}

type MCTS struct {
	goroutines int
	episodes   int
	cutoff     int
	cSquared   float64
	rng        *rand.Rand
	root       *decision
	metrics    metrics.Collector
}

func WithEpisodes(episodes int) Option {
	return func(m *MCTS) {
		if episodes > 0 {
			m.episodes = episodes
		}
	}
}

func WithGoroutines(goroutines int) Option {
	return func(m *MCTS) {
		if goroutines > 0 {
			m.goroutines = goroutines
		}
	}
}

func WithCutoff(depth int) Option {
	return func(m *MCTS) {
		if depth > 0 {
			m.cutoff = depth
		}
	}
}

// WithExploration sets c^2 of the UCT exploration term. Zero selects by mean
// reward alone.
func WithExploration(cSquared float64) Option {
	return func(m *MCTS) {
		if cSquared >= 0 {
			m.cSquared = cSquared
		}
	}
}

func WithSeed(seed uint64) Option {
	return func(m *MCTS) {
		m.rng = rand.New(rand.NewSource(seed))
	}
}

func WithMetrics() Option {
	return func(m *MCTS) {
		m.metrics = metrics.NewCollector()
	}
}

func NewMCTS(options ...Option) *MCTS {
	m := &MCTS{ // Default values
		goroutines: 1,
		episodes:   DefaultEpisodes,
		cutoff:     MaxCutoff,
		metrics:    metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	if m.rng == nil {
		m.rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	return m
}

// Simulate builds a fresh tree for state and returns the root's action
// statistics in expansion order. A terminal state yields no statistics.
func (m *MCTS) Simulate(state game.MatchState) ([]ActionStat, metrics.SearchMetric) {
	m.root = newDecision(nil, state.Turn, state, m.rng)

	// Run simulations to collect statistics
	m.metrics.Start(m.goroutines, m.cutoff)
	if !state.IsTerminal() {
		m.iterate(state)
	}
	metric := m.metrics.Complete()

	stats := m.root.Stats()
	log.Debug().Msgf("searched %d episodes over %d root actions", m.episodes, len(stats))
	return stats, metric
}

func (m *MCTS) iterate(state game.MatchState) {
	task := make(chan any, m.episodes)
	for i := 0; i < m.episodes; i++ {
		task <- nil
	}
	close(task)

	var wg sync.WaitGroup
	for i := 0; i < m.goroutines; i++ {
		rng := rand.New(rand.NewSource(m.rng.Uint64())) // One per worker
		wg.Add(1)
		go func() {
			defer wg.Done()

			for range task {
				m.simulate(state, rng)
				m.metrics.AddEpisode()
			}
		}()
	}

	wg.Wait()
}

func (m *MCTS) simulate(state game.MatchState, rng *rand.Rand) {
	ep := newEpisode(state, rng, m.cSquared)
	newNode := selectThenExpand(m.root, ep)
	rollout(ep, m.cutoff, m.metrics)
	backup(newNode, rewarder(ep.player, ep.reward))
}

func selectThenExpand(root Node, ep *episode) Node {
	parent := root
	child, selected := parent.SelectOrExpand(ep)
	for selected && (child != parent) {
		parent = child
		child, selected = parent.SelectOrExpand(ep)
	}
	return child
}

func rollout(ep *episode, cutoff int, metrics metrics.Collector) {
	depth := 0
	actions := game.LegalActions(ep.game.State())
	// Rollout till game over or for cutoff number of actions
	for len(actions) > 0 && (depth < cutoff) {
		ep.play(actions[ep.rng.Intn(len(actions))]) // Random rollout policy
		actions = game.LegalActions(ep.game.State())
		depth++
	}

	if len(actions) == 0 { // Game over before cutoff
		metrics.AddFullPlayout()
	}
}

func backup(newNode Node, reward func(game.Player) float64) {
	node := newNode
	for node != nil {
		parent := node.Backup(reward)
		node = parent
	}
}
