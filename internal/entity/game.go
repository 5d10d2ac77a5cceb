package entity

import (
	"fmt"

	"github.com/rocketscienceinc/othello/internal/apperror"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"

	EndBoardFull = "board full"
	EndPasses    = "consecutive passes"
)

// MaxConsecutivePasses ends the game. The counter is shared by both sides.
const MaxConsecutivePasses = 3

type Game struct {
	ID        string
	Mode      Mode
	Board     Board
	Players   [2]Player
	Turn      int
	Passes    int
	Status    string
	Winner    Side
	EndReason string
}

func NewGame(id string, mode Mode) *Game {
	return &Game{
		ID:      id,
		Mode:    mode,
		Board:   *NewBoard(),
		Players: mode.Players(),
		Status:  StatusOngoing,
	}
}

func (that *Game) CurrentPlayer() Player {
	return that.Players[that.Turn]
}

func (that *Game) PlayerBySide(side Side) (Player, bool) {
	for _, player := range that.Players {
		if player.Side == side {
			return player, true
		}
	}

	return Player{}, false
}

func (that *Game) ToggleTurn() {
	that.Turn = 1 - that.Turn
}

func (that *Game) Finish(winner Side, reason string) {
	that.Status = StatusFinished
	that.Winner = winner
	that.EndReason = reason
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsDraw() bool {
	return that.IsFinished() && that.Winner == NoSide
}

func (that *Game) ConfirmOngoingState() error {
	switch {
	case that.IsFinished():
		return apperror.ErrGameFinished
	case that.IsOngoing():
		return nil
	default:
		return fmt.Errorf("%w: %s", apperror.ErrUnknownGameStatus, that.Status)
	}
}
