package agent

import (
	"liarsdice/config"
	"liarsdice/game"
	"liarsdice/utils"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// tabular is the epsilon-greedy core shared by Q-learning and SARSA.
type tabular struct {
	self         game.Player
	table        *ValueTable
	rng          *rand.Rand
	alpha        float64
	gamma        float64
	epsilon      float64
	epsilonDecay float64
	epsilonMin   float64
	pending      *transition
}

func newTabular(self game.Player, table *ValueTable, cfg config.Policy, rng *rand.Rand) tabular {
	if table == nil {
		table = NewValueTable()
	}
	return tabular{
		self:         self,
		table:        table,
		rng:          rng,
		alpha:        cfg.Alpha,
		gamma:        cfg.Gamma,
		epsilon:      cfg.Epsilon,
		epsilonDecay: cfg.EpsilonDecay,
		epsilonMin:   cfg.EpsilonMin,
	}
}

func (t *tabular) Table() *ValueTable {
	return t.table
}

func (t *tabular) Epsilon() float64 {
	return t.epsilon
}

// choose explores uniformly among legal ids with probability epsilon and
// otherwise exploits the highest stored value.
func (t *tabular) choose(state game.MatchState) game.ActionID {
	legal := game.LegalActions(state)
	if len(legal) == 0 {
		log.Warn().Msgf("tabular: no legal actions for %s, challenging", state.Turn)
		return game.ChallengeID
	}
	if t.rng.Float64() < t.epsilon {
		return legal[t.rng.Intn(len(legal))]
	}
	return t.greedy(state, legal)
}

func (t *tabular) greedy(state game.MatchState, legal []game.ActionID) game.ActionID {
	row := t.table.Get(KeyOf(state))
	return legal[utils.ArgMaxFunc(legal, func(id game.ActionID) float64 { return row[id] })]
}

// maxValue is the best stored value over the legal ids of state, 0 when
// nothing is legal.
func (t *tabular) maxValue(state game.MatchState) float64 {
	legal := game.LegalActions(state)
	if len(legal) == 0 {
		return 0
	}
	return t.table.Value(KeyOf(state), t.greedy(state, legal))
}

func (t *tabular) update(state game.MatchState, id game.ActionID, target float64) {
	key := KeyOf(state)
	value := t.table.Value(key, id)
	t.table.Set(key, id, value+t.alpha*(target-value))
	t.decayEpsilon()
}

func (t *tabular) decayEpsilon() {
	if t.epsilon > t.epsilonMin {
		t.epsilon = max(t.epsilon*t.epsilonDecay, t.epsilonMin)
	}
}

// transition is an own move waiting for this learner's next decision
// point to be settled.
type transition struct {
	state  game.MatchState
	action game.ActionID
	reward float64
}

// track holds own moves and charges opponent rewards against the held one
// with the opposite sign. A finished match settles it on its reward alone.
func (t *tabular) track(state game.MatchState, action game.Action, reward float64, done bool) {
	if state.Turn == t.self {
		t.pending = &transition{state: state, action: game.Encode(action), reward: reward}
	} else if t.pending != nil {
		t.pending.reward -= reward
	}
	if done {
		t.flush()
	}
}

func (t *tabular) flush() {
	if p := t.pending; p != nil {
		t.pending = nil
		t.update(p.state, p.action, p.reward)
	}
}

// EndMatch drops a transition left open by a match that was called off.
func (t *tabular) EndMatch() {
	t.pending = nil
}

// QLearning bootstraps from the best legal action at its next decision
// point, so each update waits for the following Choose.
type QLearning struct {
	tabular
}

func NewQLearning(self game.Player, table *ValueTable, cfg config.Policy, rng *rand.Rand) *QLearning {
	return &QLearning{tabular: newTabular(self, table, cfg, rng)}
}

func (q *QLearning) Choose(state game.MatchState) game.Action {
	q.settle(state)
	return game.Decode(q.choose(state))
}

func (q *QLearning) Observe(state game.MatchState, action game.Action, reward float64, next game.MatchState, done bool) {
	if state.Turn == q.self {
		q.settle(state)
	}
	q.track(state, action, reward, done)
}

// settle applies v[s,a] += alpha * (r + gamma*max v[next,a'] - v[s,a]) to
// the pending transition.
func (q *QLearning) settle(next game.MatchState) {
	if p := q.pending; p != nil {
		q.pending = nil
		q.update(p.state, p.action, p.reward+q.gamma*q.maxValue(next))
	}
}

// SARSA bootstraps from the action it actually takes next, so each update
// waits for the following Choose.
type SARSA struct {
	tabular
}

func NewSARSA(self game.Player, table *ValueTable, cfg config.Policy, rng *rand.Rand) *SARSA {
	return &SARSA{tabular: newTabular(self, table, cfg, rng)}
}

func (s *SARSA) Choose(state game.MatchState) game.Action {
	id := s.choose(state)
	s.settle(state, id)
	return game.Decode(id)
}

func (s *SARSA) Observe(state game.MatchState, action game.Action, reward float64, next game.MatchState, done bool) {
	if state.Turn == s.self {
		s.settle(state, game.Encode(action))
	}
	s.track(state, action, reward, done)
}

func (s *SARSA) settle(next game.MatchState, nextAction game.ActionID) {
	if p := s.pending; p != nil {
		s.pending = nil
		s.UpdateSARSA(p.state, p.action, p.reward, next, nextAction)
	}
}

// UpdateSARSA applies v[s,a] += alpha * (r + gamma*v[s',a'] - v[s,a]).
func (s *SARSA) UpdateSARSA(state game.MatchState, action game.ActionID, reward float64, next game.MatchState, nextAction game.ActionID) {
	target := reward + s.gamma*s.table.Value(KeyOf(next), nextAction)
	s.update(state, action, target)
}
