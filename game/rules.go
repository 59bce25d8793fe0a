package game

const (
	NumPlayers   = 2
	NumFaces     = 6
	StartingDice = 5
	MaxQuantity  = 10 // Highest quantity a bid may claim
	WildFace     = 1
	RoundPoints  = 100
)

// CountMatches counts dice showing face across all hands. Ones are wild and
// count toward any other face; a bid on ones counts only the ones, so no die
// is ever counted twice.
func CountMatches(hands [][]int, face int) int {
	count := 0
	for _, hand := range hands {
		for _, die := range hand {
			if die == face || (face != WildFace && die == WildFace) {
				count++
			}
		}
	}
	return count
}

// CanBid reports whether the player to act may raise to bid.
func CanBid(state MatchState, bid Bid) bool {
	if state.IsTerminal() || !bid.Valid() {
		return false
	}
	return state.Opening || bid.Exceeds(state.Bid)
}

// CanChallenge reports whether the player to act may dispute the current
// bid. Two challenges in a row are forbidden, and there is nothing to
// dispute before the first bid of a round.
func CanChallenge(state MatchState) bool {
	return !state.IsTerminal() && !state.LastWasChallenge && !state.Opening
}

// IsLegal is the legality predicate shared by the engine and every policy.
func IsLegal(state MatchState, action Action) bool {
	switch action.Kind {
	case BidKind:
		return CanBid(state, action.Bid())
	case ChallengeKind:
		return CanChallenge(state)
	}
	return false
}

// LegalActions lists the legal action ids in ascending order. Challenges are
// offered once, as ChallengeID.
func LegalActions(state MatchState) []ActionID {
	if state.IsTerminal() {
		return nil
	}
	ids := make([]ActionID, 0, actionsPerKind+1)
	for q := 1; q <= MaxQuantity; q++ {
		for f := 1; f <= NumFaces; f++ {
			if CanBid(state, Bid{Quantity: q, Face: f}) {
				ids = append(ids, Encode(NewBid(q, f)))
			}
		}
	}
	if CanChallenge(state) {
		ids = append(ids, ChallengeID)
	}
	return ids
}

// LegalBids lists the bids the player to act may make, lowest first.
func LegalBids(state MatchState) []Bid {
	var bids []Bid
	for _, id := range LegalActions(state) {
		if a := Decode(id); !a.IsChallenge() {
			bids = append(bids, a.Bid())
		}
	}
	return bids
}

// Reward scores an applied action for player: +1 for winning a challenge
// round, -1 for losing one, 0 otherwise.
func Reward(outcome Outcome, player Player) float64 {
	if !outcome.Resolved {
		return 0
	}
	if outcome.Reveal.Loser == player {
		return -1
	}
	return 1
}
