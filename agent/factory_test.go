package agent

import (
	"testing"

	"liarsdice/config"
	"liarsdice/game"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	for _, tc := range []struct {
		kind    string
		policy  Policy
		learner bool
	}{
		{config.Heuristic, &Heuristic{}, false},
		{config.Bayes, &Bayes{}, true},
		{config.QLearning, &QLearning{}, true},
		{config.SARSA, &SARSA{}, true},
		{config.MCTS, &Search{}, false},
	} {
		t.Run("building "+tc.kind, func(t *testing.T) {
			policy, err := New(tc.kind, game.PlayerTwo, config.DefaultPolicy(tc.kind))

			require.NoError(t, err)
			require.IsType(t, tc.policy, policy)
			_, ok := policy.(Learner)
			require.Equal(t, tc.learner, ok)
		})
	}

	t.Run("building fresh instances", func(t *testing.T) {
		a, _ := New(config.QLearning, game.PlayerOne, config.DefaultPolicy(config.QLearning))
		b, _ := New(config.QLearning, game.PlayerOne, config.DefaultPolicy(config.QLearning))

		require.NotSame(t, a.(*QLearning).Table(), b.(*QLearning).Table())
	})

	t.Run("building a network policy around a given model", func(t *testing.T) {
		net := NetworkFunc(func([]float32) []float32 { return make([]float32, game.NumActions) })

		policy, err := New(config.Network, game.PlayerOne, config.DefaultPolicy(config.Network), WithNetwork(net))

		require.NoError(t, err)
		require.IsType(t, &NetworkPolicy{}, policy)
		state := game.New(game.WithSeed(1)).State()
		require.Equal(t, game.NewBid(1, 1), policy.Choose(state), "All-zero scores should pick the first legal id")
	})

	t.Run("refusing a network policy without a model", func(t *testing.T) {
		_, err := New("medium", game.PlayerOne, config.DefaultPolicy("medium"))

		require.ErrorIs(t, err, ErrNoNetwork)
	})

	t.Run("building policies by difficulty", func(t *testing.T) {
		easy, err := New("easy", game.PlayerOne, config.DefaultPolicy("easy"))
		require.NoError(t, err)
		require.IsType(t, &QLearning{}, easy)

		hard, err := New("hard", game.PlayerOne, config.DefaultPolicy("hard"))
		require.NoError(t, err)
		require.IsType(t, &SARSA{}, hard)
	})

	t.Run("rejecting an unknown kind", func(t *testing.T) {
		_, err := New("oracle", game.PlayerOne, config.DefaultPolicy("oracle"))

		require.ErrorIs(t, err, config.ErrUnknownKind)
	})
}
