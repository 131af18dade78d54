package game

import "math"

// EvaluateMobility scores a board by side's legal move count minus the
// opponent's. A side whose opponent cannot move scores +Inf; a side that cannot
// move scores -Inf.
func EvaluateMobility(board Board, side Side) float64 {
	moves := len(LegalMoves(board, side))
	opponentMoves := len(LegalMoves(board, side.Opponent()))

	// Opponent loses
	if opponentMoves == 0 {
		return math.Inf(1)
	}
	// Side loses
	if moves == 0 {
		return math.Inf(-1)
	}
	return float64(moves - opponentMoves)
}
