package searcher

import (
	"fmt"
	"konane/experiments/metrics"
	"konane/game"
	"math"
)

// AlphaBeta is minimax with fail-hard alpha-beta pruning. Once a window closes
// a node returns the bound rather than its exact value, so only the move
// choice and the values at the root's children are guaranteed to match
// Minimax.
type AlphaBeta struct {
	settings
}

func NewAlphaBeta(options ...Option) *AlphaBeta {
	return &AlphaBeta{settings: newSettings(options)}
}

func (a *AlphaBeta) String() string {
	return fmt.Sprintf("AlphaBeta depth %d", a.depth)
}

// FindMove searches each root move with its own (-Inf, +Inf) window.
func (a *AlphaBeta) FindMove(board game.Board, side game.Side) (game.Move, bool, metrics.SearchMetric) {
	return findMove(board, side, a.settings, func(child game.Board) float64 {
		value, _, _ := a.search(child, 1, side.Opponent(), side, math.Inf(-1), math.Inf(1))
		return value
	})
}

func (a *AlphaBeta) search(board game.Board, depth int, toMove, root game.Side, alpha, beta float64) (float64, game.Move, bool) {
	a.metrics.AddNode()
	if depth >= a.depth {
		a.metrics.AddEvaluation()
		return a.evaluate(board, root), game.Move{}, false
	}
	moves := game.LegalMoves(board, toMove)
	if len(moves) == 0 {
		a.metrics.AddEvaluation()
		return a.evaluate(board, root), game.Move{}, false
	}

	var bestMove game.Move
	found := false
	if depth%2 == 0 {
		for _, move := range moves {
			value, _, _ := a.search(play(board, toMove, move), depth+1, toMove.Opponent(), root, alpha, beta)
			if value > alpha {
				alpha = value
				bestMove = move
				found = true
			}
			if alpha >= beta {
				a.metrics.AddCutoff()
				return beta, bestMove, found
			}
		}
		return alpha, bestMove, found
	}

	for _, move := range moves {
		value, _, _ := a.search(play(board, toMove, move), depth+1, toMove.Opponent(), root, alpha, beta)
		if value < beta {
			beta = value
			bestMove = move
			found = true
		}
		if alpha >= beta {
			a.metrics.AddCutoff()
			return alpha, bestMove, found
		}
	}
	return beta, bestMove, found
}
