package entity

import (
	"fmt"

	"github.com/rocketscienceinc/othello/internal/apperror"
)

type Controller string

const (
	HumanController    Controller = "human"
	ComputerController Controller = "computer"
)

// Player is fixed at game setup and never changes during a round.
type Player struct {
	Name       string
	Side       Side
	Controller Controller
}

func NewPlayer(name string, side Side, controller Controller) Player {
	return Player{
		Name:       name,
		Side:       side,
		Controller: controller,
	}
}

func (that Player) IsComputer() bool {
	return that.Controller == ComputerController
}

func (that Player) IsHuman() bool {
	return that.Controller == HumanController
}

// Mode selects who controls each seat.
type Mode string

const (
	ModeComputers       Mode = "1"
	ModeHumans          Mode = "2"
	ModeHumanVsComputer Mode = "3"
)

func ParseMode(input string) (Mode, error) {
	switch mode := Mode(input); mode {
	case ModeComputers, ModeHumans, ModeHumanVsComputer:
		return mode, nil
	default:
		return "", fmt.Errorf("%w: %q", apperror.ErrInvalidMode, input)
	}
}

// Players returns both seats in turn order. The first seat plays light and moves first.
func (that Mode) Players() [2]Player {
	switch that {
	case ModeComputers:
		return [2]Player{
			NewPlayer("Computer Player 1", Light, ComputerController),
			NewPlayer("Computer Player 2", Dark, ComputerController),
		}
	case ModeHumanVsComputer:
		return [2]Player{
			NewPlayer("Player 1", Light, HumanController),
			NewPlayer("Computer", Dark, ComputerController),
		}
	default:
		return [2]Player{
			NewPlayer("Player 1", Light, HumanController),
			NewPlayer("Player 2", Dark, HumanController),
		}
	}
}
