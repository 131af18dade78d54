package searcher

import (
	"fmt"
	"konane/experiments/metrics"
	"konane/game"
	"math"

	"golang.org/x/sync/errgroup"
)

// findMove scores every root move independently with value and returns the
// first move with the highest score. The first legal move is the fallback so a
// move is always returned when one exists.
func findMove(board game.Board, side game.Side, s settings, value func(child game.Board) float64) (game.Move, bool, metrics.SearchMetric) {
	s.metrics.Start(s.goroutines, s.depth)
	s.metrics.AddNode()

	moves := game.LegalMoves(board, side)
	if len(moves) == 0 {
		metric := s.metrics.Complete()
		metric.Value = math.Inf(-1)
		return game.Move{}, false, metric
	}

	values := rootValues(board, side, moves, s.goroutines, value)
	best := 0
	bestValue := math.Inf(-1)
	for i, v := range values {
		if v > bestValue {
			best = i
			bestValue = v
		}
	}

	metric := s.metrics.Complete()
	metric.Value = values[best]
	return moves[best], true, metric
}

// rootValues scores the child of each root move. With more than one goroutine
// the subtrees are searched concurrently; Apply never aliases its input so the
// subtrees share nothing but the metrics collector.
func rootValues(board game.Board, side game.Side, moves []game.Move, goroutines int, value func(child game.Board) float64) []float64 {
	values := make([]float64, len(moves))
	if goroutines <= 1 || len(moves) == 1 {
		for i, move := range moves {
			values[i] = value(play(board, side, move))
		}
		return values
	}

	var g errgroup.Group
	g.SetLimit(goroutines)
	for i, move := range moves {
		g.Go(func() error {
			child, err := game.Apply(board, side, move)
			if err != nil {
				return fmt.Errorf("root move %s: %w", move, err)
			}
			values[i] = value(child)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		panic("generated move was rejected: " + err.Error())
	}
	return values
}
