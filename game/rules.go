package game

import (
	"errors"
	"fmt"
)

var ErrIllegalMove = errors.New("illegal move")

// IllegalMoveError describes why Apply rejected a move.
type IllegalMoveError struct {
	Side   Side
	Move   Move
	Reason string
}

func (e *IllegalMoveError) Error() string {
	return fmt.Sprintf("illegal move %s by %s: %s", e.Move, e.Side, e.Reason)
}

func (e *IllegalMoveError) Unwrap() error {
	return ErrIllegalMove
}

// Capture directions: up, right, down, left.
var directions = [4]Point{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}

// IsOpeningMove reports whether the board is still in its two removal plies.
func IsOpeningMove(board Board) bool {
	return board.Count(Empty) <= 1
}

// OpeningCell is the square side must remove during the opening. Black takes
// the upper-left centre square and White the one to its right.
func OpeningCell(size int, side Side) Point {
	centre := size/2 - 1
	if side == Black {
		return Point{Row: centre, Col: centre}
	}
	return Point{Row: centre, Col: centre + 1}
}

// LegalMoves lists side's moves in row-major order of the moving piece, then
// by direction (up, right, down, left), then by chain length.
func LegalMoves(board Board, side Side) []Move {
	if IsOpeningMove(board) {
		p := OpeningCell(board.size, side)
		if !board.contains(p, side.Cell()) {
			return nil
		}
		return []Move{{From: p, To: p}}
	}

	var moves []Move
	own := side.Cell()
	opponent := side.Opponent().Cell()
	for r := 0; r < board.size; r++ {
		for c := 0; c < board.size; c++ {
			if board.cells[r*board.size+c] != own {
				continue
			}
			for _, d := range directions {
				moves = appendChain(moves, board, r, c, d, opponent)
			}
		}
	}
	return moves
}

// appendChain adds one move per valid prefix of the capture chain leaving
// (r, c) in direction d.
func appendChain(moves []Move, board Board, r, c int, d Point, opponent Cell) []Move {
	for factor := 1; ; factor += 2 {
		over := Point{Row: r + factor*d.Row, Col: c + factor*d.Col}
		land := Point{Row: r + (factor+1)*d.Row, Col: c + (factor+1)*d.Col}
		if !board.contains(over, opponent) || !board.contains(land, Empty) {
			return moves
		}
		moves = append(moves, Jump(r, c, land.Row, land.Col))
	}
}

// Apply plays move for side and returns the resulting board. The input board
// is never modified; on error no board is produced.
func Apply(board Board, side Side, move Move) (Board, error) {
	illegal := func(format string, args ...any) (Board, error) {
		return Board{}, &IllegalMoveError{Side: side, Move: move, Reason: fmt.Sprintf(format, args...)}
	}

	if !board.Valid(move.From) || !board.Valid(move.To) {
		return illegal("off the %dx%d board", board.size, board.size)
	}
	if !board.contains(move.From, side.Cell()) {
		return illegal("%s does not hold a %s piece", move.From, side)
	}

	if move.IsRemoval() {
		if !IsOpeningMove(board) {
			return illegal("removals are only allowed in the opening")
		}
		if move.From != OpeningCell(board.size, side) {
			return illegal("%s must open at %s", side, OpeningCell(board.size, side))
		}
		next := board.Copy()
		next.set(move.From, Empty)
		return next, nil
	}

	if move.From.Row != move.To.Row && move.From.Col != move.To.Col {
		return illegal("jumps must be along a row or a column")
	}
	dist := move.Distance()
	if dist%2 != 0 {
		return illegal("jump distance %d is odd", dist)
	}
	if !board.contains(move.To, Empty) {
		return illegal("destination %s is occupied", move.To)
	}

	d := Point{Row: sign(move.To.Row - move.From.Row), Col: sign(move.To.Col - move.From.Col)}
	opponent := side.Opponent().Cell()
	next := board.Copy()
	at := move.From
	for hop := 0; hop < dist/2; hop++ {
		over := Point{Row: at.Row + d.Row, Col: at.Col + d.Col}
		land := Point{Row: at.Row + 2*d.Row, Col: at.Col + 2*d.Col}
		if !next.contains(over, opponent) {
			return illegal("hop %d does not capture at %s", hop+1, over)
		}
		if !next.contains(land, Empty) {
			return illegal("hop %d lands on occupied %s", hop+1, land)
		}
		next.set(at, Empty)
		next.set(over, Empty)
		next.set(land, side.Cell())
		at = land
	}
	return next, nil
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}
