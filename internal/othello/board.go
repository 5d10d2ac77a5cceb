package othello

import (
	"golang.org/x/exp/slices"

	"github.com/rocketscienceinc/othello/internal/entity"
)

// directions holds the eight compass steps, in the order they are scanned.
var directions = [8]entity.Move{
	{Row: -1, Col: -1}, {Row: -1, Col: 0}, {Row: -1, Col: 1},
	{Row: 0, Col: -1}, {Row: 0, Col: 1},
	{Row: 1, Col: -1}, {Row: 1, Col: 0}, {Row: 1, Col: 1},
}

// LegalMoves returns every empty cell where side captures at least one disc, in row-major order.
func LegalMoves(board *entity.Board, side entity.Side) []entity.Move {
	moves := make([]entity.Move, 0, entity.BoardSize)

	for row := 0; row < entity.BoardSize; row++ {
		for col := 0; col < entity.BoardSize; col++ {
			origin := entity.Move{Row: row, Col: col}
			if board.At(origin) != entity.Empty {
				continue
			}

			for _, dir := range directions {
				if flanked(board, origin, dir, side) > 0 {
					moves = append(moves, origin)
					break
				}
			}
		}
	}

	return moves
}

// ApplyMove places a disc for side and flips every captured run.
// The move must already be known to be legal for side.
func ApplyMove(board *entity.Board, move entity.Move, side entity.Side) {
	own := side.Disc()
	board.Set(move, own)

	for _, dir := range directions {
		run := flanked(board, move, dir, side)

		pos := move
		for i := 0; i < run; i++ {
			pos = step(pos, dir)
			board.Set(pos, own)
		}
	}
}

func CountPieces(board *entity.Board, side entity.Side) int {
	disc := side.Disc()

	count := 0
	for _, row := range board {
		for _, cell := range row {
			if cell == disc {
				count++
			}
		}
	}

	return count
}

func TotalPieces(board *entity.Board) int {
	count := 0
	for _, row := range board {
		for _, cell := range row {
			if cell != entity.Empty {
				count++
			}
		}
	}

	return count
}

func IsLegal(moves []entity.Move, move entity.Move) bool {
	return slices.Contains(moves, move)
}

// flanked returns the length of the opponent run next to origin along dir,
// or 0 when the run is not closed by a disc of side.
func flanked(board *entity.Board, origin, dir entity.Move, side entity.Side) int {
	own, opponent := side.Disc(), side.Opponent().Disc()

	run := 0
	for pos := step(origin, dir); pos.InBounds(); pos = step(pos, dir) {
		switch board.At(pos) {
		case opponent:
			run++
		case own:
			return run
		default:
			return 0
		}
	}

	return 0
}

func step(pos, dir entity.Move) entity.Move {
	return entity.Move{Row: pos.Row + dir.Row, Col: pos.Col + dir.Col}
}
