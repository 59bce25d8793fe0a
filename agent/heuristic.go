package agent

import (
	"liarsdice/game"

	"golang.org/x/exp/rand"
)

// Heuristic bids at the start of a round, always disputes a bid at the
// quantity ceiling, and otherwise flips a coin.
type Heuristic struct {
	rng *rand.Rand
}

func NewHeuristic(rng *rand.Rand) *Heuristic {
	return &Heuristic{rng: rng}
}

func (h *Heuristic) Choose(state game.MatchState) game.Action {
	if state.Opening {
		return h.randomBid(state)
	}
	if state.Bid.Quantity >= game.MaxQuantity {
		return game.Challenge()
	}
	if h.rng.Intn(2) == 0 {
		return h.randomBid(state)
	}
	return game.Challenge()
}

// randomBid picks a legal quantity uniformly, then a legal face for it.
func (h *Heuristic) randomBid(state game.MatchState) game.Action {
	faces := map[int][]int{}
	var quantities []int
	for _, bid := range game.LegalBids(state) {
		if _, ok := faces[bid.Quantity]; !ok {
			quantities = append(quantities, bid.Quantity)
		}
		faces[bid.Quantity] = append(faces[bid.Quantity], bid.Face)
	}
	if len(quantities) == 0 {
		return game.Challenge()
	}

	quantity := quantities[h.rng.Intn(len(quantities))]
	options := faces[quantity]
	return game.NewBid(quantity, options[h.rng.Intn(len(options))])
}
