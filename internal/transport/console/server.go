package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"unicode"

	"github.com/rocketscienceinc/othello/internal/apperror"
	"github.com/rocketscienceinc/othello/internal/config"
	"github.com/rocketscienceinc/othello/internal/entity"
)

const (
	passInput = "p"

	// maxTokenLength bounds a single answer; longer tokens are consumed and rejected.
	maxTokenLength = 32
)

type uGame interface {
	NewGame(mode entity.Mode) *entity.Game

	LegalMoves(game *entity.Game) []entity.Move
	Pieces(game *entity.Game, side entity.Side) int

	MakeTurn(game *entity.Game, move entity.Move) error
	PassTurn(game *entity.Game) error
	MakeBotTurn(game *entity.Game) (entity.Move, error)
}

// Server runs the interactive session over a token-oriented reader and writer.
type Server struct {
	logger *slog.Logger
	uGame  uGame

	board config.Board
	sides config.Sides

	in  *bufio.Reader
	out *bufio.Writer
}

func New(logger *slog.Logger, uGame uGame, conf *config.Config, in io.Reader, out io.Writer) *Server {
	return &Server{
		logger: logger.With("component", "console"),
		uGame:  uGame,

		board: conf.Board,
		sides: conf.Sides,

		in:  bufio.NewReader(in),
		out: bufio.NewWriter(out),
	}
}

// Start - runs games until the player declines another one.
// It returns apperror.ErrInputClosed when the input ends first.
func (that *Server) Start() error {
	defer func() {
		if err := that.out.Flush(); err != nil {
			that.logger.Error("could not flush output", "error", err)
		}
	}()

	for {
		mode, err := that.promptMode()
		if err != nil {
			return err
		}

		game := that.uGame.NewGame(mode)
		if err = that.playGame(game); err != nil {
			return fmt.Errorf("game %s failed: %w", game.ID, err)
		}

		that.printResult(game)

		again, err := that.promptReplay()
		if err != nil {
			return err
		}

		if !again {
			that.println("Thanks for playing!")
			return nil
		}
	}
}

func (that *Server) promptMode() (entity.Mode, error) {
	log := that.logger.With("method", "promptMode")

	for {
		that.printf("\nWelcome to Othello!\n\n")
		that.printf("For 2 AI enter '1'...\nFor 2 Humans enter '2'...\nFor 1 Human/1 AI enter '3' : ")

		input, err := that.readToken()
		if err != nil {
			return "", err
		}

		mode, err := entity.ParseMode(input)
		if err != nil {
			log.Debug("rejected mode", "input", input)
			that.println("Invalid character was inputted... Please enter a valid character...")
			continue
		}

		return mode, nil
	}
}

func (that *Server) promptReplay() (bool, error) {
	that.printf("\nWould you like to play another game? (Y/N) : ")

	input, err := that.readToken()
	if err != nil {
		return false, err
	}

	return !strings.HasPrefix(strings.ToLower(input), "n"), nil
}

func (that *Server) playGame(game *entity.Game) error {
	for _, player := range game.Players {
		that.printf("%s -> %s\n", player.Name, that.sideName(player.Side))
	}
	that.renderBoard(&game.Board)

	for game.IsOngoing() {
		if err := that.playTurn(game); err != nil {
			return err
		}

		that.printScores(game)
		if game.IsOngoing() {
			that.printf("\n%s's Turn... \n", game.CurrentPlayer().Name)
		}
		that.renderBoard(&game.Board)
	}

	return nil
}

func (that *Server) playTurn(game *entity.Game) error {
	player := game.CurrentPlayer()
	moves := that.uGame.LegalMoves(game)

	switch {
	case len(moves) == 0:
		that.printf("%s does not have a viable move and passes...\n", player.Name)

		if err := that.uGame.PassTurn(game); err != nil {
			return fmt.Errorf("failed to pass: %w", err)
		}
	case player.IsComputer():
		if _, err := that.uGame.MakeBotTurn(game); err != nil {
			return fmt.Errorf("failed to make computer turn: %w", err)
		}

		that.printf("\nThe computer has made its move.\n")
	default:
		return that.playHumanTurn(game, moves)
	}

	return nil
}

func (that *Server) playHumanTurn(game *entity.Game, moves []entity.Move) error {
	log := that.logger.With("method", "playHumanTurn", "gameID", game.ID)

	that.println("The current player's viable moves are... ")
	for _, move := range moves {
		that.printf("Row : %d   Column : %d\n", move.Row, move.Col)
	}

	for {
		that.printf("Above is a list of valid moves. \nEnter 'p' to pass, or enter the row number now : ")

		input, err := that.readToken()
		if err != nil {
			return err
		}

		if strings.EqualFold(input, passInput) {
			that.println("You have chosen to pass...")

			if err = that.uGame.PassTurn(game); err != nil {
				return fmt.Errorf("failed to pass: %w", err)
			}

			return nil
		}

		row, err := strconv.Atoi(input)
		if err != nil {
			log.Debug("rejected row", "input", input)
			that.println("Invalid move...")
			continue
		}

		that.printf("Enter the column number now : ")

		input, err = that.readToken()
		if err != nil {
			return err
		}

		col, err := strconv.Atoi(input)
		if err != nil {
			log.Debug("rejected column", "input", input)
			that.println("Invalid move...")
			continue
		}

		err = that.uGame.MakeTurn(game, entity.Move{Row: row, Col: col})
		switch {
		case errors.Is(err, apperror.ErrIllegalMove), errors.Is(err, apperror.ErrInvalidCell):
			log.Debug("rejected move", "row", row, "col", col, "error", err)
			that.println("Invalid move...")
		case err != nil:
			return fmt.Errorf("failed to make turn: %w", err)
		default:
			return nil
		}
	}
}

func (that *Server) printScores(game *entity.Game) {
	first, second := game.Players[0], game.Players[1]

	that.printf("%s : %d     %s : %d\n",
		first.Name, that.uGame.Pieces(game, first.Side),
		second.Name, that.uGame.Pieces(game, second.Side),
	)
}

func (that *Server) printResult(game *entity.Game) {
	first, second := game.Players[0], game.Players[1]
	firstPieces, secondPieces := that.uGame.Pieces(game, first.Side), that.uGame.Pieces(game, second.Side)

	if game.IsDraw() {
		that.printf("The game has ended in a draw : %d to %d. \n", firstPieces, secondPieces)
		return
	}

	winner, loserPieces, winnerPieces := first, secondPieces, firstPieces
	if game.Winner == second.Side {
		winner, loserPieces, winnerPieces = second, firstPieces, secondPieces
	}

	that.printf("The game has ended. The winner is %s (%s) : %d to %d. \n",
		winner.Name, that.sideName(winner.Side), winnerPieces, loserPieces)
}

func (that *Server) sideName(side entity.Side) string {
	if side == entity.Dark {
		return that.sides.DarkName
	}

	return that.sides.LightName
}

// readToken flushes pending output, then blocks until the next whitespace-separated token.
// A token longer than maxTokenLength is read to its end and returned as "", which every prompt rejects.
func (that *Server) readToken() (string, error) {
	if err := that.out.Flush(); err != nil {
		return "", fmt.Errorf("failed to write output: %w", err)
	}

	var token strings.Builder
	oversized := false

	for {
		r, _, err := that.in.ReadRune()
		if errors.Is(err, io.EOF) {
			if token.Len() > 0 {
				break
			}

			return "", apperror.ErrInputClosed
		}

		if err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}

		if unicode.IsSpace(r) {
			if token.Len() > 0 {
				break
			}

			continue
		}

		if token.Len() >= maxTokenLength {
			oversized = true
			continue
		}

		token.WriteRune(r)
	}

	if oversized {
		that.logger.Debug("dropped oversized input", "prefix", token.String())
		return "", nil
	}

	return token.String(), nil
}

// write errors are sticky on the buffered writer and surface on the next flush.
func (that *Server) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(that.out, format, args...)
}

func (that *Server) println(line string) {
	_, _ = fmt.Fprintln(that.out, line)
}
