package game

import "fmt"

// Cell is the content of one board square.
type Cell uint8

const (
	Empty Cell = iota
	BlackPiece
	WhitePiece
)

func (c Cell) Symbol() byte {
	switch c {
	case BlackPiece:
		return 'X'
	case WhitePiece:
		return 'O'
	default:
		return '.'
	}
}

// Side identifies a player. Black always moves first.
type Side uint8

const (
	Black Side = iota + 1
	White
)

func (s Side) Opponent() Side {
	if s == Black {
		return White
	}
	return Black
}

// Cell returns the piece this side places on the board.
func (s Side) Cell() Cell {
	if s == Black {
		return BlackPiece
	}
	return WhitePiece
}

func (s Side) String() string {
	switch s {
	case Black:
		return "X"
	case White:
		return "O"
	default:
		return fmt.Sprintf("Side(%d)", uint8(s))
	}
}

// Evaluates the board from side's perspective. Larger is better for side.
type Evaluate func(board Board, side Side) float64
