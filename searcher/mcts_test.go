package searcher

import (
	"testing"

	"liarsdice/game"

	"github.com/stretchr/testify/require"
)

func TestMCTSSimulate(t *testing.T) {
	totalVisits := func(stats []ActionStat) float64 {
		total := 0.0
		for _, stat := range stats {
			total += stat.Visits
		}
		return total
	}

	t.Run("spending the episode budget on root children", func(t *testing.T) {
		mcts := NewMCTS(WithEpisodes(300), WithCutoff(50), WithSeed(1))

		stats, _ := mcts.Simulate(biddingState())

		require.Equal(t, 300.0, totalVisits(stats), "Root child visits should equal the episode budget")
		legal := game.LegalActions(biddingState())
		for _, stat := range stats {
			require.Contains(t, legal, stat.Action, "Search should only expand legal actions")
		}
	})

	t.Run("spending the episode budget in parallel", func(t *testing.T) {
		mcts := NewMCTS(WithEpisodes(400), WithGoroutines(4), WithSeed(2), WithMetrics())

		stats, metric := mcts.Simulate(openingState())

		require.Equal(t, 400.0, totalVisits(stats), "Virtual losses should all be reversed")
		require.Equal(t, 400, metric.Episodes)
		require.Equal(t, 4, metric.Goroutines)
		require.LessOrEqual(t, metric.FullPlayouts, metric.Episodes)
	})

	t.Run("returning the same statistics for the same seed", func(t *testing.T) {
		first, _ := NewMCTS(WithEpisodes(100), WithSeed(3)).Simulate(biddingState())
		second, _ := NewMCTS(WithEpisodes(100), WithSeed(3)).Simulate(biddingState())

		require.Equal(t, first, second)
	})

	t.Run("searching nothing from a terminal state", func(t *testing.T) {
		state := game.MatchState{DiceCounts: [game.NumPlayers]int{2, 0}, Turn: game.PlayerOne}

		stats, _ := NewMCTS(WithSeed(4)).Simulate(state)

		require.Empty(t, stats)
	})

	t.Run("challenging a bid that is almost surely false", func(t *testing.T) {
		// Two ones among two dice: the challenger wins the match 35 times in 36
		state := game.MatchState{
			DiceCounts: [game.NumPlayers]int{1, 1},
			Bid:        game.Bid{Quantity: 2, Face: 1},
			Turn:       game.PlayerOne,
		}
		mcts := NewMCTS(WithEpisodes(3000), WithExploration(2), WithSeed(5))

		stats, _ := mcts.Simulate(state)
		best, ok := Best(stats)

		require.True(t, ok)
		require.Equal(t, game.ChallengeID, best)
	})
}

func TestBest(t *testing.T) {
	t.Run("picking the highest mean reward", func(t *testing.T) {
		stats := []ActionStat{
			{Action: bidID(1, 2), Rewards: 3, Visits: 10},
			{Action: game.ChallengeID, Rewards: 2, Visits: 2},
			{Action: bidID(2, 2), Rewards: 5, Visits: 20},
		}

		best, ok := Best(stats)

		require.True(t, ok)
		require.Equal(t, game.ChallengeID, best)
	})

	t.Run("breaking ties by order", func(t *testing.T) {
		stats := []ActionStat{
			{Action: bidID(3, 3), Rewards: 1, Visits: 2},
			{Action: bidID(1, 1), Rewards: 2, Visits: 4},
		}

		best, _ := Best(stats)

		require.Equal(t, bidID(3, 3), best)
	})

	t.Run("reporting no statistics", func(t *testing.T) {
		_, ok := Best(nil)

		require.False(t, ok)
	})
}
