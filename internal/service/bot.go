package service

import (
	"errors"
	"math/rand"

	"github.com/rocketscienceinc/othello/internal/entity"
)

var ErrNoAvailableMoves = errors.New("no available moves")

// BotService picks moves for computer-controlled players.
type BotService interface {
	PickMove(moves []entity.Move) (entity.Move, error)
}

type botService struct {
	rnd *rand.Rand
}

// NewBotService - returns a bot choosing uniformly among legal moves using rnd.
func NewBotService(rnd *rand.Rand) BotService {
	return &botService{
		rnd: rnd,
	}
}

func (that *botService) PickMove(moves []entity.Move) (entity.Move, error) {
	if len(moves) == 0 {
		return entity.Move{}, ErrNoAvailableMoves
	}

	return moves[that.rnd.Intn(len(moves))], nil //nolint: gosec // it's ok
}
