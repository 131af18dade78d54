package game

import (
	"fmt"
	"strconv"
	"strings"
)

// Board is an N×N Konane grid. Boards are values: operations that change the
// position return a new Board with its own cells.
type Board struct {
	size  int
	cells []Cell
}

// NewBoard returns a full checkerboard with Black on squares where row+col is even.
func NewBoard(size int) Board {
	if size < 2 {
		panic(fmt.Sprintf("board size must be at least 2, got %d", size))
	}
	b := Board{size: size, cells: make([]Cell, size*size)}
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			if (r+c)%2 == 0 {
				b.cells[r*size+c] = BlackPiece
			} else {
				b.cells[r*size+c] = WhitePiece
			}
		}
	}
	return b
}

// ParseBoard builds a board from rows of 'X', 'O' and '.' characters.
// Whitespace inside a row is ignored.
func ParseBoard(rows ...string) (Board, error) {
	size := len(rows)
	if size < 2 {
		return Board{}, fmt.Errorf("board needs at least 2 rows, got %d", size)
	}
	b := Board{size: size, cells: make([]Cell, size*size)}
	for r, row := range rows {
		row = strings.Join(strings.Fields(row), "")
		if len(row) != size {
			return Board{}, fmt.Errorf("row %d has %d cells, want %d", r+1, len(row), size)
		}
		for c := 0; c < size; c++ {
			switch row[c] {
			case 'X':
				b.cells[r*size+c] = BlackPiece
			case 'O':
				b.cells[r*size+c] = WhitePiece
			case '.':
				b.cells[r*size+c] = Empty
			default:
				return Board{}, fmt.Errorf("row %d col %d: unknown symbol %q", r+1, c+1, row[c])
			}
		}
	}
	return b, nil
}

func (b Board) Size() int {
	return b.size
}

// Valid reports whether the point lies on the board.
func (b Board) Valid(p Point) bool {
	return p.Row >= 0 && p.Row < b.size && p.Col >= 0 && p.Col < b.size
}

// At returns the cell at p. Points off the board read as Empty.
func (b Board) At(p Point) Cell {
	if !b.Valid(p) {
		return Empty
	}
	return b.cells[p.Row*b.size+p.Col]
}

func (b Board) contains(p Point, cell Cell) bool {
	return b.Valid(p) && b.cells[p.Row*b.size+p.Col] == cell
}

func (b Board) Count(cell Cell) int {
	count := 0
	for _, c := range b.cells {
		if c == cell {
			count++
		}
	}
	return count
}

func (b Board) Equal(other Board) bool {
	if b.size != other.size {
		return false
	}
	for i := range b.cells {
		if b.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// Copy returns a board that shares no cells with b.
func (b Board) Copy() Board {
	cells := make([]Cell, len(b.cells))
	copy(cells, b.cells)
	return Board{size: b.size, cells: cells}
}

func (b Board) set(p Point, cell Cell) {
	b.cells[p.Row*b.size+p.Col] = cell
}

// String renders the board with 1-indexed row and column headers.
func (b Board) String() string {
	var sb strings.Builder
	sb.WriteString("  ")
	for c := 0; c < b.size; c++ {
		sb.WriteString(strconv.Itoa(c + 1))
		sb.WriteByte(' ')
	}
	sb.WriteByte('\n')
	for r := 0; r < b.size; r++ {
		sb.WriteString(strconv.Itoa(r + 1))
		sb.WriteByte(' ')
		for c := 0; c < b.size; c++ {
			sb.WriteByte(b.cells[r*b.size+c].Symbol())
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
