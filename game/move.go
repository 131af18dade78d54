package game

import "fmt"

// Point is a 0-indexed board coordinate.
type Point struct {
	Row int
	Col int
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row+1, p.Col+1)
}

// Move is either a removal (From == To, opening only) or a straight-line jump
// that captures one opponent piece per 2-cell hop.
type Move struct {
	From Point
	To   Point
}

func Removal(row, col int) Move {
	p := Point{Row: row, Col: col}
	return Move{From: p, To: p}
}

func Jump(fromRow, fromCol, toRow, toCol int) Move {
	return Move{
		From: Point{Row: fromRow, Col: fromCol},
		To:   Point{Row: toRow, Col: toCol},
	}
}

func (m Move) IsRemoval() bool {
	return m.From == m.To
}

// Distance is the number of cells between From and To along the move's axis.
// Diagonal moves report the Manhattan distance.
func (m Move) Distance() int {
	return abs(m.To.Row-m.From.Row) + abs(m.To.Col-m.From.Col)
}

// Hops is the number of pieces a jump captures. Removals capture none.
func (m Move) Hops() int {
	return m.Distance() / 2
}

func (m Move) String() string {
	if m.IsRemoval() {
		return m.From.String()
	}
	return m.From.String() + "->" + m.To.String()
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
