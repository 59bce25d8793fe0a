package agent

import (
	"testing"

	"liarsdice/game"

	"github.com/stretchr/testify/require"
)

func TestBayesChoose(t *testing.T) {
	t.Run("opening with one of the most believed face", func(t *testing.T) {
		b := NewBayes(game.PlayerOne, DefaultThreshold)
		b.Beliefs().Scale(game.PlayerTwo, 4, 2)
		state := game.New(game.WithSeed(1)).State()

		require.Equal(t, game.NewBid(1, 4), b.Choose(state))
	})

	t.Run("raising a probably truthful bid", func(t *testing.T) {
		b := NewBayes(game.PlayerOne, DefaultThreshold)

		// Uniform beliefs put 5/6 on faces two and up
		require.Equal(t, game.NewBid(4, 2), b.Choose(bidState(game.PlayerOne, 3, 2)))
	})

	t.Run("challenging a probably false bid", func(t *testing.T) {
		b := NewBayes(game.PlayerOne, DefaultThreshold)

		// Uniform beliefs put 1/2 on faces four and up
		require.Equal(t, game.Challenge(), b.Choose(bidState(game.PlayerOne, 3, 4)))
	})

	t.Run("challenging when the raise carries below the bid", func(t *testing.T) {
		b := NewBayes(game.PlayerOne, DefaultThreshold)

		require.Equal(t, game.Challenge(), b.Choose(bidState(game.PlayerOne, game.MaxQuantity, 2)))
	})

	t.Run("challenging a malformed bid", func(t *testing.T) {
		b := NewBayes(game.PlayerOne, DefaultThreshold)

		require.Equal(t, game.Challenge(), b.Choose(bidState(game.PlayerOne, 3, 9)))
		require.Equal(t, game.Challenge(), b.Choose(bidState(game.PlayerOne, 0, 2)))
	})
}

func TestBayesRaise(t *testing.T) {
	b := NewBayes(game.PlayerOne, DefaultThreshold)

	t.Run("adding one to the quantity", func(t *testing.T) {
		got, ok := b.raise(game.Bid{Quantity: 3, Face: 5}, 10)

		require.True(t, ok)
		require.Equal(t, game.Bid{Quantity: 4, Face: 5}, got)
	})

	t.Run("carrying over to the next face", func(t *testing.T) {
		got, ok := b.raise(game.Bid{Quantity: 4, Face: 2}, 4)

		require.True(t, ok)
		require.Equal(t, game.Bid{Quantity: 1, Face: 3}, got)
	})

	t.Run("running past the highest face", func(t *testing.T) {
		_, ok := b.raise(game.Bid{Quantity: 10, Face: 6}, 10)

		require.False(t, ok)
	})
}

func TestBayesObserve(t *testing.T) {
	t.Run("weighing an opponent bid by quantity over dice in play", func(t *testing.T) {
		b := NewBayes(game.PlayerOne, DefaultThreshold)
		state := bidState(game.PlayerTwo, 2, 2)

		b.Observe(state, game.NewBid(5, 3), 0, state, false)

		row := b.Beliefs().Row(game.PlayerTwo)
		require.InDelta(t, 1.0/11, row[2], 1e-12)
		require.InDelta(t, 1.0, sum(row), 1e-12)
	})

	t.Run("ignoring its own bids", func(t *testing.T) {
		b := NewBayes(game.PlayerOne, DefaultThreshold)
		state := bidState(game.PlayerOne, 2, 2)

		b.Observe(state, game.NewBid(5, 3), 0, state, false)

		require.InDelta(t, 1.0/6, b.Beliefs().Row(game.PlayerTwo)[2], 1e-12)
	})

	t.Run("weighing a revealed count", func(t *testing.T) {
		for _, tc := range []struct {
			name   string
			loser  game.Player
			factor float64
		}{
			{"bid stood", game.PlayerOne, 4.0 / 10},
			{"bid was false", game.PlayerTwo, 6.0 / 10},
		} {
			t.Run(tc.name, func(t *testing.T) {
				b := NewBayes(game.PlayerOne, DefaultThreshold)
				state := bidState(game.PlayerOne, 5, 6)
				next := state
				next.Reveal = game.Reveal{
					Valid:      true,
					Bid:        state.Bid,
					Count:      4,
					Challenger: game.PlayerOne,
					Loser:      tc.loser,
				}

				b.Observe(state, game.Challenge(), 0, next, false)

				row := b.Beliefs().Row(game.PlayerTwo)
				expected := tc.factor / (5 + tc.factor)
				require.InDelta(t, expected, row[5], 1e-12)
				require.InDelta(t, 1.0, sum(row), 1e-12)
			})
		}
	})

	t.Run("forgetting its beliefs when the match ends", func(t *testing.T) {
		b := NewBayes(game.PlayerOne, DefaultThreshold)
		state := bidState(game.PlayerTwo, 2, 2)
		b.Observe(state, game.NewBid(5, 3), 0, state, false)

		b.EndMatch()

		require.InDelta(t, 1.0/6, b.Beliefs().Row(game.PlayerTwo)[2], 1e-12)
	})
}
