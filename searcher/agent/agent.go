package agent

import (
	"fmt"
	"io"
	"konane/experiments/metrics"
	"konane/game"
	"konane/searcher"
)

type Agent interface {
	Name() string
	// Initialize tells the agent which side it plays in the next game.
	Initialize(side game.Side)
	// FindMove returns the agent's move, or false to concede, along with the
	// search metrics (if collected).
	FindMove(board game.Board) (game.Move, bool, metrics.SearchMetric)
}

// BoardPrinter is implemented by agents that print the board themselves
// before choosing a move.
type BoardPrinter interface {
	PrintsBoard() bool
}

// New builds the agent described by config. Random agents draw from seed;
// human agents read choices from in and write prompts to out.
func New(config metrics.AgentConfig, seed uint64, in io.Reader, out io.Writer) (Agent, error) {
	options := []searcher.Option{searcher.WithMetrics()}
	if config.Depth > 0 {
		options = append(options, searcher.WithDepth(config.Depth))
	}
	if config.Goroutines > 0 {
		options = append(options, searcher.WithGoroutines(config.Goroutines))
	}

	switch config.Kind {
	case metrics.KindMinimax:
		return NewSearchAgent(searcher.NewMinimax(options...)), nil
	case metrics.KindAlphaBeta:
		return NewSearchAgent(searcher.NewAlphaBeta(options...)), nil
	case metrics.KindRandom:
		return NewRandomAgent(seed), nil
	case metrics.KindHuman:
		if in == nil || out == nil {
			return nil, fmt.Errorf("human agent needs an input and an output")
		}
		return NewHumanAgent(in, out), nil
	default:
		return nil, fmt.Errorf("unknown agent kind %q", config.Kind)
	}
}
