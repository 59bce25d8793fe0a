package engine

import (
	"fmt"
	"time"

	"liarsdice/agent"
	"liarsdice/experiments/metrics"
	"liarsdice/game"
	"liarsdice/gamemaster"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// searchReporter is implemented by policies that search before choosing.
type searchReporter interface {
	LastSearch() metrics.SearchMetric
}

// Local drives one match between in-process policies.
type Local struct {
	match    *gamemaster.Match
	state    game.MatchState
	names    []string
	policies []agent.Policy
	maxMoves int
}

// NewLocal seats policies[i] as game.Players[i]. names label the policies in
// logs and metrics.
func NewLocal(names []string, policies []agent.Policy, maxMoves int, options ...game.Option) *Local {
	if len(names) != len(policies) {
		panic("number of names does not match number of policies")
	}
	if len(policies) != game.NumPlayers {
		panic(fmt.Sprintf("need exactly %d policies", game.NumPlayers))
	}
	if maxMoves <= 0 {
		maxMoves = MaxMoves
	}

	match, state := gamemaster.NewMatch(options...)
	return &Local{
		match:    match,
		state:    state,
		names:    names,
		policies: policies,
		maxMoves: maxMoves,
	}
}

// Run executes the entire match loop until a winner is found or the move
// limit is hit, in which case the winner is game.NoPlayer.
func (e *Local) Run() (game.Player, metrics.GameMetric, []metrics.MoveMetric) {
	gameMetric := metrics.GameMetric{
		MatchID:        uuid.NewString(),
		StartingPlayer: e.state.Turn,
		StartTime:      time.Now(),
	}
	log.Info().Msgf("match %s: %s is starting", gameMetric.MatchID, e.state.Turn)

	var moveMetrics []metrics.MoveMetric
	step := 1
	for ; !gamemaster.IsTerminal(e.state) && step <= e.maxMoves; step++ {
		state := e.state
		index := state.Turn.Index()
		action, searchMetric := e.choose(index, state)

		next, outcome, err := e.match.Apply(state, action)
		if err != nil {
			log.Error().Err(err).Msgf("match %s: aborting at step %d", gameMetric.MatchID, step)
			break
		}
		reward := gamemaster.Reward(outcome)
		e.observe(state, action, reward, next, outcome.GameOver)

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Player:       state.Turn,
			Policy:       e.names[index],
			Action:       action,
			Reward:       reward,
			SearchMetric: searchMetric,
		})
		if outcome.Resolved {
			gameMetric.Challenges++
		}
		e.state = next
	}
	e.endMatch()

	winner, ok := gamemaster.Winner(e.state)
	if ok {
		log.Info().Msgf("match %s: %s (%s) wins after %d moves", gameMetric.MatchID, winner, e.names[winner.Index()], e.state.Seq)
	} else {
		log.Info().Msgf("match %s: stopped after %d moves (no winner yet)", gameMetric.MatchID, e.state.Seq)
	}

	gameMetric.Winner = winner
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = e.state.Seq
	gameMetric.FinalScores = e.state.Scores
	return winner, gameMetric, moveMetrics
}

// State returns the current match snapshot.
func (e *Local) State() game.MatchState {
	return e.state
}

// choose asks the acting policy for an action. An illegal action is never
// applied; the first legal action is played instead.
func (e *Local) choose(index int, state game.MatchState) (game.Action, metrics.SearchMetric) {
	policy := e.policies[index]
	action := policy.Choose(state)

	var searchMetric metrics.SearchMetric
	if reporter, ok := policy.(searchReporter); ok {
		searchMetric = reporter.LastSearch()
	}

	if !game.IsLegal(state, action) {
		legal := game.LegalActions(state)
		if len(legal) == 0 {
			panic("no legal actions at all")
		}
		fallback := game.Decode(legal[0])
		log.Warn().Msgf("%s returned illegal %s for %s, playing %s instead", e.names[index], action, state.Turn, fallback)
		return fallback, searchMetric
	}
	return action, searchMetric
}

// observe reports a transition to every learning policy in the match.
func (e *Local) observe(state game.MatchState, action game.Action, reward float64, next game.MatchState, done bool) {
	for _, policy := range e.policies {
		if learner, ok := policy.(agent.Learner); ok {
			learner.Observe(state, action, reward, next, done)
		}
	}
}

// endMatch tells every learning policy the match has stopped.
func (e *Local) endMatch() {
	for _, policy := range e.policies {
		if learner, ok := policy.(agent.Learner); ok {
			learner.EndMatch()
		}
	}
}
