package game

import "fmt"

// Bid claims at least Quantity dice showing Face across every player's dice.
// The zero value means no bid has been made since the last challenge.
type Bid struct {
	Quantity int
	Face     int
}

// NoBid is the state a round is in right after a challenge.
var NoBid = Bid{}

// OpeningBid is the floor a fresh match starts from.
var OpeningBid = Bid{Quantity: 1, Face: 1}

func (b Bid) IsZero() bool {
	return b == NoBid
}

// Valid reports whether b is a bid a player could make.
func (b Bid) Valid() bool {
	return b.Quantity >= 1 && b.Quantity <= MaxQuantity && b.Face >= 1 && b.Face <= NumFaces
}

// Exceeds orders bids by quantity first, then face.
func (b Bid) Exceeds(other Bid) bool {
	if b.Quantity != other.Quantity {
		return b.Quantity > other.Quantity
	}
	return b.Face > other.Face
}

func (b Bid) String() string {
	return fmt.Sprintf("%dx%d", b.Quantity, b.Face)
}
