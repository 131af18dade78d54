package searcher

import (
	"konane/experiments/metrics"
	"konane/game"
)

const DefaultDepth = 2

// Searcher picks a move for side by looking ahead a fixed number of plies.
type Searcher interface {
	// FindMove returns the chosen move, false when side has no legal move, and
	// the search statistics (with the backed-up value of the chosen move).
	FindMove(board game.Board, side game.Side) (game.Move, bool, metrics.SearchMetric)
}

type Option func(s *settings)

type settings struct {
	depth      int
	goroutines int
	evaluate   game.Evaluate
	metrics    metrics.Collector
}

func WithDepth(depth int) Option {
	return func(s *settings) {
		if depth > 0 {
			s.depth = depth
		}
	}
}

func WithGoroutines(goroutines int) Option {
	return func(s *settings) {
		if goroutines > 0 {
			s.goroutines = goroutines
		}
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(s *settings) {
		if evaluate != nil {
			s.evaluate = evaluate
		}
	}
}

func WithMetrics() Option {
	return func(s *settings) {
		s.metrics = metrics.NewCollector()
	}
}

func newSettings(options []Option) settings {
	s := settings{ // Default values
		depth:      DefaultDepth,
		goroutines: 1,
		evaluate:   game.EvaluateMobility,
		metrics:    metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(&s)
	}
	return s
}

func (s settings) Depth() int {
	return s.depth
}

// play applies a move produced by LegalMoves. Failure means the move generator
// and Apply disagree, which is a bug rather than a game event.
func play(board game.Board, side game.Side, move game.Move) game.Board {
	next, err := game.Apply(board, side, move)
	if err != nil {
		panic("generated move was rejected: " + err.Error())
	}
	return next
}
