package searcher

import (
	"fmt"

	"liarsdice/game"

	"golang.org/x/exp/rand"
)

type Node interface {
	// SelectOrExpand advances ep by one tree edge. It returns the node itself
	// when it is terminal, and selected is false once a new node was added.
	SelectOrExpand(ep *episode) (child Node, selected bool)
	// Backup records an episode's result and returns the parent (nil at root).
	Backup(reward func(game.Player) float64) Node
	applyLoss()
	score(policy *uct) float64
	stats() (rewards float64, visits float64)
}

// episode is one determinized playthrough. Each worker owns its episodes.
type episode struct {
	game     *game.Game
	rng      *rand.Rand
	player   game.Player // Root mover
	reward   float64     // Accumulated from player's perspective
	cSquared float64
}

func newEpisode(state game.MatchState, rng *rand.Rand, cSquared float64) *episode {
	return &episode{
		game:     game.Restore(state, game.NewRandRoller(rng)),
		rng:      rng,
		player:   state.Turn,
		cSquared: cSquared,
	}
}

func (e *episode) play(id game.ActionID) game.Outcome {
	outcome, err := e.game.Apply(game.Decode(id))
	if err != nil { // Tree and rollouts only offer legal ids
		panic(fmt.Sprintf("searcher played %s: %v", game.Decode(id), err))
	}
	e.reward += game.Reward(outcome, e.player)
	return outcome
}

// rewarder converts an episode reward for root into a reward for any player.
func rewarder(root game.Player, reward float64) func(game.Player) float64 {
	return func(player game.Player) float64 {
		switch player {
		case root:
			return reward
		case game.NoPlayer:
			return 0
		}
		return -reward
	}
}
