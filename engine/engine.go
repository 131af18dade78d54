package engine

import (
	"konane/experiments/metrics"
	"konane/game"
)

// Reasons a game ends.
const (
	ReasonNoMove      = "no legal move"
	ReasonIllegalMove = "illegal move"
)

type Engine interface {
	// Run plays a game until one side cannot or does not make a legal move
	Run() (winner game.Side, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}
