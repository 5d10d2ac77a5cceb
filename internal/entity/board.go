package entity

const (
	BoardSize  = 8
	BoardCells = BoardSize * BoardSize
)

// Cell is the content of a single board square.
type Cell uint8

const (
	Empty Cell = iota
	DarkDisc
	LightDisc
)

// Side is the colour of a player's discs.
type Side uint8

const (
	NoSide Side = iota
	Dark
	Light
)

// Opponent returns the other side. Othello is strictly two-sided.
func (that Side) Opponent() Side {
	switch that {
	case Dark:
		return Light
	case Light:
		return Dark
	default:
		return NoSide
	}
}

// Disc returns the cell value a disc of this side occupies.
func (that Side) Disc() Cell {
	switch that {
	case Dark:
		return DarkDisc
	case Light:
		return LightDisc
	default:
		return Empty
	}
}

func (that Side) String() string {
	switch that {
	case Dark:
		return "dark"
	case Light:
		return "light"
	default:
		return "none"
	}
}

// Move is a 0-indexed board coordinate.
type Move struct {
	Row int
	Col int
}

func (that Move) InBounds() bool {
	return that.Row >= 0 && that.Row < BoardSize && that.Col >= 0 && that.Col < BoardSize
}

type Board [BoardSize][BoardSize]Cell

// NewBoard returns the standard opening position.
func NewBoard() *Board {
	board := &Board{}

	board[3][3], board[4][4] = LightDisc, LightDisc
	board[3][4], board[4][3] = DarkDisc, DarkDisc

	return board
}

func (that *Board) At(move Move) Cell {
	return that[move.Row][move.Col]
}

func (that *Board) Set(move Move, cell Cell) {
	that[move.Row][move.Col] = cell
}
