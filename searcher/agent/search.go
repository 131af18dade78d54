package agent

import (
	"fmt"
	"konane/experiments/metrics"
	"konane/game"
	"konane/searcher"
)

type searchAgent struct {
	side     game.Side
	searcher searcher.Searcher
}

// NewSearchAgent returns an agent that plays the searcher's choice.
func NewSearchAgent(s searcher.Searcher) Agent {
	return &searchAgent{searcher: s}
}

func (a *searchAgent) Name() string {
	return fmt.Sprint(a.searcher)
}

func (a *searchAgent) Initialize(side game.Side) {
	a.side = side
}

func (a *searchAgent) FindMove(board game.Board) (game.Move, bool, metrics.SearchMetric) {
	return a.searcher.FindMove(board, a.side)
}
