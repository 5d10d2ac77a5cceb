package othello

import (
	"fmt"

	"github.com/rocketscienceinc/othello/internal/apperror"
	"github.com/rocketscienceinc/othello/internal/entity"
)

// MakeTurn plays move for side and advances the game.
func MakeTurn(game *entity.Game, side entity.Side, move entity.Move) error {
	if err := game.ConfirmOngoingState(); err != nil {
		return err
	}

	if err := validateMove(game, side, move); err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	ApplyMove(&game.Board, move, side)
	game.Passes = 0
	updateGameStatus(game)

	return nil
}

// Pass forfeits the turn of side. Passes are counted across both sides.
func Pass(game *entity.Game, side entity.Side) error {
	if err := game.ConfirmOngoingState(); err != nil {
		return err
	}

	if game.CurrentPlayer().Side != side {
		return apperror.ErrNotYourTurn
	}

	game.Passes++
	updateGameStatus(game)

	return nil
}

// DetermineWinner returns the side with strictly more discs, or NoSide on a draw.
func DetermineWinner(board *entity.Board) entity.Side {
	dark, light := CountPieces(board, entity.Dark), CountPieces(board, entity.Light)

	switch {
	case dark > light:
		return entity.Dark
	case light > dark:
		return entity.Light
	default:
		return entity.NoSide
	}
}

// validateMove - checks if the move is valid.
func validateMove(game *entity.Game, side entity.Side, move entity.Move) error {
	if !move.InBounds() {
		return fmt.Errorf("%w: row %d col %d", apperror.ErrInvalidCell, move.Row, move.Col)
	}

	if game.CurrentPlayer().Side != side {
		return apperror.ErrNotYourTurn
	}

	if !IsLegal(LegalMoves(&game.Board, side), move) {
		return fmt.Errorf("%w: row %d col %d", apperror.ErrIllegalMove, move.Row, move.Col)
	}

	return nil
}

// updateGameStatus - checks the end conditions after a move or pass.
func updateGameStatus(game *entity.Game) {
	switch {
	case TotalPieces(&game.Board) == entity.BoardCells:
		game.Finish(DetermineWinner(&game.Board), entity.EndBoardFull)
	case game.Passes >= entity.MaxConsecutivePasses:
		game.Finish(DetermineWinner(&game.Board), entity.EndPasses)
	default:
		game.ToggleTurn()
	}
}
