package engine

import (
	"fmt"
	"io"
	"time"

	"konane/experiments/metrics"
	"konane/game"
	"konane/searcher/agent"

	"github.com/rs/zerolog/log"
)

type Option func(l *Local)

// WithRender writes the board to w before every ply.
func WithRender(w io.Writer) Option {
	return func(l *Local) {
		l.render = w
	}
}

func WithGameID(id string) Option {
	return func(l *Local) {
		l.id = id
	}
}

// Local plays one game between two in-process agents.
type Local struct {
	State  game.GameState
	Agents [2]agent.Agent // Black, White
	size   int
	id     string
	render io.Writer
}

// LocalEngine returns an engine where agents[0] plays Black and moves first.
func LocalEngine(agents [2]agent.Agent, size int, options ...Option) *Local {
	if agents[0] == nil || agents[1] == nil {
		panic("need two agents")
	}
	l := &Local{
		Agents: agents,
		size:   size,
	}
	for _, option := range options {
		option(l)
	}
	return l
}

func (l *Local) agent(side game.Side) agent.Agent {
	if side == game.Black {
		return l.Agents[0]
	}
	return l.Agents[1]
}

// Run resets the board and plays the game to its end. A side loses when its
// agent returns no move or a move the rules reject.
func (l *Local) Run() (game.Side, metrics.GameMetric, []metrics.MoveMetric) {
	l.State = game.NewGameState(l.size)
	l.Agents[0].Initialize(game.Black)
	l.Agents[1].Initialize(game.White)

	logger := log.With().Str("game", l.id).Logger()
	gameMetric := metrics.GameMetric{
		ID:        l.id,
		Black:     l.Agents[0].Name(),
		White:     l.Agents[1].Name(),
		StartTime: time.Now(),
	}
	logger.Info().Msgf("%s (%s) vs %s (%s)", gameMetric.Black, game.Black, gameMetric.White, game.White)

	var moveMetrics []metrics.MoveMetric
	for {
		side := l.State.ToMove
		current := l.agent(side)
		if printer, ok := current.(agent.BoardPrinter); !ok || !printer.PrintsBoard() {
			l.showBoard()
		}
		l.printf("player %s's turn\n", side)

		move, found, searchMetric := current.FindMove(l.State.Board)
		if !found {
			gameMetric.Winner = side.Opponent()
			gameMetric.Reason = ReasonNoMove
			logger.Info().Msgf("%s (%s) has no move", current.Name(), side)
			break
		}

		next, err := l.State.Play(move)
		if err != nil {
			gameMetric.Winner = side.Opponent()
			gameMetric.Reason = ReasonIllegalMove
			logger.Warn().Err(err).Msgf("%s (%s) forfeits", current.Name(), side)
			break
		}

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         next.Ply,
			Player:       side,
			Move:         move,
			SearchMetric: searchMetric,
		})
		logger.Debug().
			Int("step", next.Ply).
			Stringer("player", side).
			Stringer("move", move).
			Float64("value", searchMetric.Value).
			Int("nodes", searchMetric.Nodes).
			Msg("move played")
		l.printf("%s plays %s\n\n", side, move)
		l.State = next
	}

	l.printf("game over: %s wins\n", gameMetric.Winner)
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = l.State.Ply
	winner := l.agent(gameMetric.Winner)
	logger.Info().Msgf("game over after %d moves: %s (%s) wins by %s",
		gameMetric.TotalMoves, winner.Name(), gameMetric.Winner, gameMetric.Reason)

	return gameMetric.Winner, gameMetric, moveMetrics
}

func (l *Local) showBoard() {
	if l.render != nil {
		fmt.Fprint(l.render, l.State.Board)
	}
}

func (l *Local) printf(format string, args ...any) {
	if l.render != nil {
		fmt.Fprintf(l.render, format, args...)
	}
}
