package agent

import (
	"liarsdice/game"
	"liarsdice/utils"
)

// minFactor keeps belief rows strictly positive so they always renormalize.
const minFactor = 1e-3

// BeliefMatrix tracks, per opponent, how likely each face is to be what the
// opponent is holding.
type BeliefMatrix struct {
	self game.Player
	rows [game.NumPlayers][game.NumFaces]float64
}

// NewBeliefMatrix starts every opponent row uniform.
func NewBeliefMatrix(self game.Player) *BeliefMatrix {
	b := &BeliefMatrix{self: self}
	for _, p := range b.Opponents() {
		for f := range b.rows[p.Index()] {
			b.rows[p.Index()][f] = 1.0 / game.NumFaces
		}
	}
	return b
}

// Opponents lists every player except self.
func (b *BeliefMatrix) Opponents() []game.Player {
	opponents := make([]game.Player, 0, game.NumPlayers-1)
	for _, p := range game.Players {
		if p != b.self {
			opponents = append(opponents, p)
		}
	}
	return opponents
}

// Row returns a copy of an opponent's beliefs, indexed by face-1, or nil
// for an invalid player.
func (b *BeliefMatrix) Row(p game.Player) []float64 {
	if !p.Valid() {
		return nil
	}
	row := b.rows[p.Index()]
	return row[:]
}

// Scale multiplies an opponent's belief in face by factor and renormalizes.
func (b *BeliefMatrix) Scale(p game.Player, face int, factor float64) {
	if p == b.self || !p.Valid() || face < 1 || face > game.NumFaces {
		return
	}
	row := &b.rows[p.Index()]
	row[face-1] *= max(factor, minFactor)

	sum := 0.0
	for _, v := range row {
		sum += v
	}
	for f := range row {
		row[f] /= sum
	}
}

// AtLeast is the belief mass an opponent puts on faces at or above face.
func (b *BeliefMatrix) AtLeast(p game.Player, face int) float64 {
	if !p.Valid() {
		return 0
	}
	mass := 0.0
	for f := max(face, 1); f <= game.NumFaces; f++ {
		mass += b.rows[p.Index()][f-1]
	}
	return mass
}

// MostLikelyFace is the face with the highest total belief across
// opponents, the lowest face on ties.
func (b *BeliefMatrix) MostLikelyFace() int {
	var totals [game.NumFaces]float64
	for _, p := range b.Opponents() {
		for f, v := range b.rows[p.Index()] {
			totals[f] += v
		}
	}
	return utils.ArgMaxFunc(totals[:], func(v float64) float64 { return v }) + 1
}
