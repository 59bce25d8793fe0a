package engine

import (
	"liarsdice/experiments/metrics"
	"liarsdice/game"
)

const MaxMoves = 10000

type Engine interface {
	// Run plays a match till there's a winner or a max number of moves is reached
	Run() (winner game.Player, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}
