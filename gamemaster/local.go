package gamemaster

import (
	"errors"
	"fmt"

	"liarsdice/game"

	"github.com/rs/zerolog/log"
)

var ErrStaleState = errors.New("state does not match the live match")

// Update records one applied action and the state it produced.
type Update struct {
	Action  game.Action
	Outcome game.Outcome
	State   game.MatchState
}

// Match is the inbound surface a driver uses to run one match. It owns its
// engine exclusively; concurrent matches each need their own Match.
type Match struct {
	game    *game.Game
	updates []Update
}

// NewMatch starts a fresh match and returns its opening state.
func NewMatch(options ...game.Option) (*Match, game.MatchState) {
	m := &Match{game: game.New(options...)}
	return m, m.game.State()
}

// State returns the live snapshot.
func (m *Match) State() game.MatchState {
	return m.game.State()
}

// Apply plays action against state, which must be the live snapshot. A
// rejected action leaves the match untouched.
func (m *Match) Apply(state game.MatchState, action game.Action) (game.MatchState, game.Outcome, error) {
	live := m.game.State()
	if state.Seq != live.Seq {
		return live, game.Outcome{}, fmt.Errorf("%w: seq %d, live seq %d", ErrStaleState, state.Seq, live.Seq)
	}
	if live.IsTerminal() {
		return live, game.Outcome{}, game.ErrGameOver
	}
	if !game.IsLegal(live, action) {
		return live, game.Outcome{}, fmt.Errorf("illegal move %s for %s: %w", action, live.Turn, errIllegal(action))
	}

	outcome, err := m.game.Apply(action)
	if err != nil {
		return live, game.Outcome{}, err
	}
	next := m.game.State()
	m.updates = append(m.updates, Update{Action: action, Outcome: outcome, State: next})

	if outcome.Resolved {
		log.Debug().Msgf("%s challenged %s: %d counted, %s loses a die", outcome.Player, outcome.Reveal.Bid, outcome.Reveal.Count, outcome.Reveal.Loser)
	}
	if outcome.GameOver {
		winner, _ := next.Winner()
		log.Debug().Msgf("match over after %d actions, %s wins", next.Seq, winner)
	}
	return next, outcome, nil
}

// Reward is the step reward of outcome for the player who acted.
func Reward(outcome game.Outcome) float64 {
	return game.Reward(outcome, outcome.Player)
}

// Dice exposes a player's hidden dice to a trusted driver.
func (m *Match) Dice(p game.Player) []int {
	return m.game.Dice(p)
}

// Updates returns the actions applied so far, oldest first.
func (m *Match) Updates() []Update {
	return append([]Update(nil), m.updates...)
}

func IsTerminal(state game.MatchState) bool {
	return state.IsTerminal()
}

func Winner(state game.MatchState) (game.Player, bool) {
	return state.Winner()
}

func errIllegal(action game.Action) error {
	if action.IsChallenge() {
		return game.ErrIllegalChallenge
	}
	return game.ErrIllegalBid
}
