package agent

import (
	"liarsdice/game"
)

// StateKey is the part of a MatchState tabular learners tell states apart
// by. Field order: dice counts, bid, scores, player to act.
type StateKey struct {
	DiceOne     int
	DiceTwo     int
	BidQuantity int
	BidFace     int
	ScoreOne    int
	ScoreTwo    int
	Turn        game.Player
}

func KeyOf(state game.MatchState) StateKey {
	return StateKey{
		DiceOne:     state.DiceCount(game.PlayerOne),
		DiceTwo:     state.DiceCount(game.PlayerTwo),
		BidQuantity: state.Bid.Quantity,
		BidFace:     state.Bid.Face,
		ScoreOne:    state.Score(game.PlayerOne),
		ScoreTwo:    state.Score(game.PlayerTwo),
		Turn:        state.Turn,
	}
}

// ValueTable maps states to one value per action id. Rows are created on
// first write.
type ValueTable struct {
	values map[StateKey][]float64
}

func NewValueTable() *ValueTable {
	return &ValueTable{values: map[StateKey][]float64{}}
}

// Get returns a copy of the row for key, all zeros when key was never
// written.
func (t *ValueTable) Get(key StateKey) []float64 {
	row := make([]float64, game.NumActions)
	copy(row, t.values[key])
	return row
}

func (t *ValueTable) Value(key StateKey, id game.ActionID) float64 {
	row, ok := t.values[key]
	if !ok {
		return 0
	}
	return row[id]
}

func (t *ValueTable) Set(key StateKey, id game.ActionID, value float64) {
	row, ok := t.values[key]
	if !ok {
		row = make([]float64, game.NumActions)
		t.values[key] = row
	}
	row[id] = value
}

// Len is the number of materialized rows.
func (t *ValueTable) Len() int {
	return len(t.values)
}

// Snapshot deep-copies the table for a persistence layer.
func (t *ValueTable) Snapshot() map[StateKey][]float64 {
	snapshot := make(map[StateKey][]float64, len(t.values))
	for key, row := range t.values {
		snapshot[key] = append([]float64(nil), row...)
	}
	return snapshot
}

// Load replaces the table's contents. Rows of the wrong length are padded
// or truncated to NumActions.
func (t *ValueTable) Load(values map[StateKey][]float64) {
	t.values = make(map[StateKey][]float64, len(values))
	for key, row := range values {
		loaded := make([]float64, game.NumActions)
		copy(loaded, row)
		t.values[key] = loaded
	}
}
