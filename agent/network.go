package agent

import (
	"liarsdice/game"
	"liarsdice/utils"

	"github.com/rs/zerolog/log"
)

// NumFeatures is the length of the vector Features produces.
const NumFeatures = 8

// Network scores every action id for an encoded state. Training and storage
// live outside this module.
type Network interface {
	Predict(features []float32) []float32
}

// NetworkFunc adapts a plain function to Network.
type NetworkFunc func(features []float32) []float32

func (f NetworkFunc) Predict(features []float32) []float32 {
	return f(features)
}

// Features encodes a state as dice counts, bid quantity and face, player to
// act, last-action-was-challenge flag, and scores.
func Features(state game.MatchState) []float32 {
	challenge := float32(0)
	if state.LastWasChallenge {
		challenge = 1
	}
	return []float32{
		float32(state.DiceCount(game.PlayerOne)),
		float32(state.DiceCount(game.PlayerTwo)),
		float32(state.Bid.Quantity),
		float32(state.Bid.Face),
		float32(state.Turn),
		challenge,
		float32(state.Score(game.PlayerOne)),
		float32(state.Score(game.PlayerTwo)),
	}
}

// NetworkPolicy plays the legal action the network scores highest.
type NetworkPolicy struct {
	net Network
}

func NewNetworkPolicy(net Network) *NetworkPolicy {
	return &NetworkPolicy{net: net}
}

func (n *NetworkPolicy) Choose(state game.MatchState) game.Action {
	legal := game.LegalActions(state)
	if len(legal) == 0 {
		return game.Challenge()
	}
	values := n.net.Predict(Features(state))
	if len(values) < game.NumActions {
		log.Warn().Msgf("network: got %d values for %d actions, challenging", len(values), game.NumActions)
		if game.CanChallenge(state) {
			return game.Challenge()
		}
		return game.Decode(legal[0])
	}
	best := utils.ArgMaxFunc(legal, func(id game.ActionID) float64 { return float64(values[id]) })
	return game.Decode(legal[best])
}
