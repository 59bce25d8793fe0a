package game

import "fmt"

// Kind distinguishes the two things a player can do on their turn.
type Kind int

const (
	BidKind Kind = iota
	ChallengeKind
)

func (k Kind) String() string {
	switch k {
	case BidKind:
		return "bid"
	case ChallengeKind:
		return "challenge"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Action is a move produced by a policy and consumed by the engine.
// Quantity and Face carry no meaning for a challenge.
type Action struct {
	Kind     Kind
	Quantity int
	Face     int
}

// ActionID is the compact integer form of an Action shared by every policy.
type ActionID int

const (
	// Actions per kind: one per (quantity, face) pair
	actionsPerKind = MaxQuantity * NumFaces
	NumActions     = 2 * actionsPerKind
)

// ChallengeID is the canonical id for a challenge. The legality filter only
// ever offers this id for challenges.
var ChallengeID = Encode(Challenge())

// NewBid returns a bid action.
func NewBid(quantity, face int) Action {
	return Action{Kind: BidKind, Quantity: quantity, Face: face}
}

// Challenge returns the canonical challenge action.
func Challenge() Action {
	return Action{Kind: ChallengeKind, Quantity: 1, Face: 1}
}

func (a Action) IsChallenge() bool {
	return a.Kind == ChallengeKind
}

// Bid returns the bid carried by a bid action.
func (a Action) Bid() Bid {
	return Bid{Quantity: a.Quantity, Face: a.Face}
}

func (a Action) String() string {
	if a.IsChallenge() {
		return "challenge"
	}
	return fmt.Sprintf("bid %dx%d", a.Quantity, a.Face)
}

// Encode maps an action to its id. Challenges with quantity or face outside
// the codec domain are normalized to ChallengeID; bids outside it panic.
func Encode(a Action) ActionID {
	switch a.Kind {
	case BidKind:
	case ChallengeKind:
		if !inCodecDomain(a.Quantity, a.Face) {
			return ActionID(actionsPerKind)
		}
	default:
		panic(fmt.Sprintf("cannot encode action of %s", a.Kind))
	}
	if !inCodecDomain(a.Quantity, a.Face) {
		panic(fmt.Sprintf("cannot encode %s: outside codec domain", a))
	}
	return ActionID(int(a.Kind)*actionsPerKind + (a.Quantity-1)*NumFaces + (a.Face - 1))
}

// Decode maps an id back to its action. Ids outside [0, NumActions) are a
// programming error and panic.
func Decode(id ActionID) Action {
	if !id.Valid() {
		panic(fmt.Sprintf("cannot decode action id %d: outside [0, %d)", id, NumActions))
	}
	i := int(id)
	return Action{
		Kind:     Kind(i / actionsPerKind),
		Quantity: (i%actionsPerKind)/NumFaces + 1,
		Face:     i%NumFaces + 1,
	}
}

func (id ActionID) Valid() bool {
	return id >= 0 && int(id) < NumActions
}

func inCodecDomain(quantity, face int) bool {
	return quantity >= 1 && quantity <= MaxQuantity && face >= 1 && face <= NumFaces
}
