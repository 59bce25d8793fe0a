package agent

import (
	"liarsdice/game"

	"github.com/rs/zerolog/log"
)

const DefaultThreshold = 0.7

// Bayes bids when its beliefs say the standing bid is probably truthful and
// challenges otherwise.
type Bayes struct {
	self      game.Player
	threshold float64
	beliefs   *BeliefMatrix
}

func NewBayes(self game.Player, threshold float64) *Bayes {
	return &Bayes{
		self:      self,
		threshold: threshold,
		beliefs:   NewBeliefMatrix(self),
	}
}

func (b *Bayes) Beliefs() *BeliefMatrix {
	return b.beliefs
}

func (b *Bayes) Choose(state game.MatchState) game.Action {
	if state.Opening {
		return game.NewBid(1, b.beliefs.MostLikelyFace())
	}

	bid := state.Bid
	if !bid.Valid() {
		log.Warn().Msgf("bayes: malformed bid %s, challenging", bid)
		return game.Challenge()
	}

	truthful := 1.0
	for _, p := range b.beliefs.Opponents() {
		truthful *= b.beliefs.AtLeast(p, bid.Face)
	}
	if truthful <= b.threshold {
		return game.Challenge()
	}

	raise, ok := b.raise(bid, state.TotalDice())
	if !ok || !game.CanBid(state, raise) {
		return game.Challenge()
	}
	return game.NewBid(raise.Quantity, raise.Face)
}

// raise adds one to the quantity, carrying over to the next face while the
// quantity exceeds the dice in play.
func (b *Bayes) raise(bid game.Bid, dice int) (game.Bid, bool) {
	quantity, face := bid.Quantity+1, bid.Face
	for dice > 0 && quantity > dice {
		quantity -= dice
		face++
	}
	quantity = min(quantity, game.MaxQuantity)
	if face > game.NumFaces {
		return game.Bid{}, false
	}
	return game.Bid{Quantity: quantity, Face: face}, true
}

func (b *Bayes) Observe(state game.MatchState, action game.Action, reward float64, next game.MatchState, done bool) {
	dice := float64(state.TotalDice())
	if dice == 0 {
		return
	}

	if !action.IsChallenge() {
		if state.Turn != b.self {
			b.beliefs.Scale(state.Turn, action.Face, float64(action.Quantity)/dice)
		}
		return
	}

	reveal := next.Reveal
	if !reveal.Valid {
		return
	}
	factor := float64(reveal.Count) / dice // The bid stood
	if reveal.Successful() {
		factor = (dice - float64(reveal.Count)) / dice
	}
	for _, p := range b.beliefs.Opponents() {
		b.beliefs.Scale(p, reveal.Bid.Face, factor)
	}
}

// EndMatch forgets everything learned about the opponents.
func (b *Bayes) EndMatch() {
	b.beliefs = NewBeliefMatrix(b.self)
}
