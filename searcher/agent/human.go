package agent

import (
	"bufio"
	"fmt"
	"io"
	"konane/experiments/metrics"
	"konane/game"
	"strconv"
	"strings"
)

type humanAgent struct {
	side game.Side
	in   *bufio.Reader
	out  io.Writer
}

// NewHumanAgent returns an agent that asks a person for every move. Moves are
// chosen by their 0-based position in the printed list; -1 or the end of input
// concedes.
func NewHumanAgent(in io.Reader, out io.Writer) Agent {
	return &humanAgent{in: bufio.NewReader(in), out: out}
}

func (a *humanAgent) Name() string {
	return "Human"
}

func (a *humanAgent) PrintsBoard() bool {
	return true
}

func (a *humanAgent) Initialize(side game.Side) {
	a.side = side
}

func (a *humanAgent) FindMove(board game.Board) (game.Move, bool, metrics.SearchMetric) {
	moves := game.LegalMoves(board, a.side)

	fmt.Fprint(a.out, board)
	if len(moves) == 0 {
		fmt.Fprintf(a.out, "Player %s has no moves and must concede\n", a.side)
		return game.Move{}, false, metrics.SearchMetric{}
	}

	listed := make([]string, len(moves))
	for i, move := range moves {
		listed[i] = fmt.Sprintf("%d:%s", i, move)
	}
	fmt.Fprintf(a.out, "Possible moves for %s: %s\n", a.side, strings.Join(listed, " "))

	for {
		fmt.Fprintf(a.out, "Enter index of chosen move (0-%d) or -1 to concede: ", len(moves)-1)
		line, err := a.in.ReadString('\n')
		line = strings.TrimSpace(line)
		if err != nil && line == "" {
			fmt.Fprintln(a.out)
			return game.Move{}, false, metrics.SearchMetric{}
		}

		index, convErr := strconv.Atoi(line)
		switch {
		case convErr != nil:
			fmt.Fprintln(a.out, "Invalid choice, try again.")
		case index == -1:
			return game.Move{}, false, metrics.SearchMetric{}
		case index >= 0 && index < len(moves):
			return moves[index], true, metrics.SearchMetric{}
		default:
			fmt.Fprintln(a.out, "Invalid choice, try again.")
		}
	}
}
