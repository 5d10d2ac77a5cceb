package usecase

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/othello/internal/entity"
	"github.com/rocketscienceinc/othello/internal/othello"
	"github.com/rocketscienceinc/othello/internal/pkg"
)

var ErrNotComputerTurn = errors.New("current player is not computer-controlled")

type botService interface {
	PickMove(moves []entity.Move) (entity.Move, error)
}

// GameManager drives a single round: it owns no game state, every call works on the passed session.
type GameManager struct {
	logger *slog.Logger
	bot    botService
}

func NewGameManager(logger *slog.Logger, bot botService) *GameManager {
	return &GameManager{
		logger: logger,
		bot:    bot,
	}
}

func (that *GameManager) NewGame(mode entity.Mode) *entity.Game {
	game := entity.NewGame(pkg.GenerateGameID(), mode)

	that.logger.Info("game created",
		"gameID", game.ID,
		"mode", mode,
		"first", game.Players[0].Name,
		"second", game.Players[1].Name,
	)

	return game
}

// LegalMoves - returns the moves available to the player to move.
func (that *GameManager) LegalMoves(game *entity.Game) []entity.Move {
	return othello.LegalMoves(&game.Board, game.CurrentPlayer().Side)
}

func (that *GameManager) Pieces(game *entity.Game, side entity.Side) int {
	return othello.CountPieces(&game.Board, side)
}

func (that *GameManager) MakeTurn(game *entity.Game, move entity.Move) error {
	player := game.CurrentPlayer()

	if err := othello.MakeTurn(game, player.Side, move); err != nil {
		return fmt.Errorf("failed to make turn: %w", err)
	}

	that.logger.Debug("move played", "gameID", game.ID, "player", player.Name, "row", move.Row, "col", move.Col)
	that.logIfFinished(game)

	return nil
}

func (that *GameManager) PassTurn(game *entity.Game) error {
	player := game.CurrentPlayer()

	if err := othello.Pass(game, player.Side); err != nil {
		return fmt.Errorf("failed to pass turn: %w", err)
	}

	that.logger.Debug("turn passed", "gameID", game.ID, "player", player.Name, "passes", game.Passes)
	that.logIfFinished(game)

	return nil
}

// MakeBotTurn - lets the bot choose among the legal moves of the computer player to move.
func (that *GameManager) MakeBotTurn(game *entity.Game) (entity.Move, error) {
	if !game.CurrentPlayer().IsComputer() {
		return entity.Move{}, ErrNotComputerTurn
	}

	move, err := that.bot.PickMove(that.LegalMoves(game))
	if err != nil {
		return entity.Move{}, fmt.Errorf("bot failed to pick move: %w", err)
	}

	if err = that.MakeTurn(game, move); err != nil {
		return entity.Move{}, fmt.Errorf("bot failed to make turn: %w", err)
	}

	return move, nil
}

func (that *GameManager) logIfFinished(game *entity.Game) {
	if !game.IsFinished() {
		return
	}

	that.logger.Info("game finished",
		"gameID", game.ID,
		"winner", game.Winner.String(),
		"reason", game.EndReason,
		"dark", othello.CountPieces(&game.Board, entity.Dark),
		"light", othello.CountPieces(&game.Board, entity.Light),
	)
}
