package application

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"time"

	"github.com/rocketscienceinc/othello/internal/apperror"
	"github.com/rocketscienceinc/othello/internal/config"
	"github.com/rocketscienceinc/othello/internal/service"
	"github.com/rocketscienceinc/othello/internal/transport/console"
	"github.com/rocketscienceinc/othello/internal/usecase"
)

// RunApp - runs the console session until the player quits or the input ends.
func RunApp(logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	seed := conf.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	botService := service.NewBotService(rand.New(rand.NewSource(seed))) //nolint: gosec // it's ok
	gameManager := usecase.NewGameManager(logger, botService)
	consoleServer := console.New(logger, gameManager, conf, in, out)

	log.Info("Starting console session", "seed", seed)

	if err := consoleServer.Start(); err != nil {
		if errors.Is(err, apperror.ErrInputClosed) {
			log.Info("Input closed, shutting down")
			return nil
		}

		return fmt.Errorf("console session failed: %w", err)
	}

	log.Info("Session finished")

	return nil
}
