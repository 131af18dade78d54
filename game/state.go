package game

// Outcome is the result of a game so far.
type Outcome uint8

const (
	InProgress Outcome = iota
	BlackWins
	WhiteWins
)

func WinFor(side Side) Outcome {
	if side == Black {
		return BlackWins
	}
	return WhiteWins
}

// Winner returns the winning side, or false while the game is in progress.
func (o Outcome) Winner() (Side, bool) {
	switch o {
	case BlackWins:
		return Black, true
	case WhiteWins:
		return White, true
	default:
		return 0, false
	}
}

func (o Outcome) String() string {
	if side, ok := o.Winner(); ok {
		return side.String() + " wins"
	}
	return "in progress"
}

// GameState is a board with the side to move. Like Board it is a value:
// Play returns a new state.
type GameState struct {
	Board  Board
	ToMove Side
	Ply    int // Moves played so far
}

// NewGameState returns a fresh game with Black to move.
func NewGameState(size int) GameState {
	return GameState{Board: NewBoard(size), ToMove: Black}
}

func (gs GameState) LegalMoves() []Move {
	return LegalMoves(gs.Board, gs.ToMove)
}

// Play applies move for the side to move and passes the turn.
func (gs GameState) Play(move Move) (GameState, error) {
	next, err := Apply(gs.Board, gs.ToMove, move)
	if err != nil {
		return gs, err
	}
	return GameState{Board: next, ToMove: gs.ToMove.Opponent(), Ply: gs.Ply + 1}, nil
}

// Outcome reports a win for the opponent once the side to move has no moves.
func (gs GameState) Outcome() Outcome {
	if len(gs.LegalMoves()) == 0 {
		return WinFor(gs.ToMove.Opponent())
	}
	return InProgress
}
