package apperror

import "errors"

var (
	ErrGameFinished      = errors.New("game is already finished")
	ErrUnknownGameStatus = errors.New("unknown game status")
	ErrNotYourTurn       = errors.New("it's not your turn")
	ErrInvalidCell       = errors.New("invalid cell")
	ErrIllegalMove       = errors.New("move is not legal")
	ErrInvalidMode       = errors.New("invalid game mode")
	ErrInputClosed       = errors.New("input closed")
)
