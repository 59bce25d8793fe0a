package agent

import (
	"liarsdice/game"
)

// Policy picks an action for the player to act in state.
type Policy interface {
	Choose(state game.MatchState) game.Action
}

// Learner is a policy that also watches every transition of its match.
type Learner interface {
	Policy
	// Observe reports that action moved the match from state to next. reward
	// is the step reward of the player who acted.
	Observe(state game.MatchState, action game.Action, reward float64, next game.MatchState, done bool)
	// EndMatch is called once the match stops, including when it is called
	// off at the move limit without a winner.
	EndMatch()
}
