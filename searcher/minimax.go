package searcher

import (
	"fmt"
	"konane/experiments/metrics"
	"konane/game"
	"math"
)

// Minimax is a fixed-depth minimax search. Depth counts plies from the root
// position, so depth 1 scores the positions right after each root move.
type Minimax struct {
	settings
}

func NewMinimax(options ...Option) *Minimax {
	return &Minimax{settings: newSettings(options)}
}

func (m *Minimax) String() string {
	return fmt.Sprintf("Minimax depth %d", m.depth)
}

func (m *Minimax) FindMove(board game.Board, side game.Side) (game.Move, bool, metrics.SearchMetric) {
	return findMove(board, side, m.settings, func(child game.Board) float64 {
		value, _, _ := m.search(child, 1, side.Opponent(), side)
		return value
	})
}

// search returns the backed-up value of board for root, with toMove to play at
// the given depth. Even depths belong to root and maximize; odd depths
// minimize. Ties keep the earliest move.
func (m *Minimax) search(board game.Board, depth int, toMove, root game.Side) (float64, game.Move, bool) {
	m.metrics.AddNode()
	if depth >= m.depth {
		m.metrics.AddEvaluation()
		return m.evaluate(board, root), game.Move{}, false
	}
	moves := game.LegalMoves(board, toMove)
	if len(moves) == 0 {
		m.metrics.AddEvaluation()
		return m.evaluate(board, root), game.Move{}, false
	}

	maximizing := depth%2 == 0
	bestMove := moves[0]
	bestValue := math.Inf(1)
	if maximizing {
		bestValue = math.Inf(-1)
	}
	for _, move := range moves {
		value, _, _ := m.search(play(board, toMove, move), depth+1, toMove.Opponent(), root)
		if (maximizing && value > bestValue) || (!maximizing && value < bestValue) {
			bestValue = value
			bestMove = move
		}
	}
	return bestValue, bestMove, true
}
