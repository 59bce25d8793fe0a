package searcher

import (
	"liarsdice/game"

	"golang.org/x/exp/rand"
)

func newTestEpisode(state game.MatchState, seed uint64) *episode {
	return newEpisode(state, rand.New(rand.NewSource(seed)), 0)
}

// openingState is a fresh match: player one to act, any bid legal.
func openingState() game.MatchState {
	return game.New(game.WithSeed(1)).State()
}

// biddingState has player two facing player one's bid of three fours.
func biddingState() game.MatchState {
	g := game.New(game.WithSeed(1))
	if err := g.Bid(game.PlayerOne, 3, 4); err != nil {
		panic(err)
	}
	return g.State()
}

func bidID(quantity, face int) game.ActionID {
	return game.Encode(game.NewBid(quantity, face))
}
