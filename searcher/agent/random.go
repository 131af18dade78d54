package agent

import (
	"konane/experiments/metrics"
	"konane/game"

	"golang.org/x/exp/rand"
)

type randomAgent struct {
	side game.Side
	rng  *rand.Rand
}

// NewRandomAgent returns an agent that picks uniformly among legal moves.
// Agents with the same seed play the same games.
func NewRandomAgent(seed uint64) Agent {
	return &randomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent) Name() string {
	return "Random"
}

func (a *randomAgent) Initialize(side game.Side) {
	a.side = side
}

func (a *randomAgent) FindMove(board game.Board) (game.Move, bool, metrics.SearchMetric) {
	moves := game.LegalMoves(board, a.side)
	if len(moves) == 0 {
		return game.Move{}, false, metrics.SearchMetric{}
	}
	return moves[a.rng.Intn(len(moves))], true, metrics.SearchMetric{}
}
