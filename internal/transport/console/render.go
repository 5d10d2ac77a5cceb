package console

import (
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/rocketscienceinc/othello/internal/entity"
)

// renderBoard - prints the grid with row and column indices, padding every column to the widest glyph.
func (that *Server) renderBoard(board *entity.Board) {
	width := that.cellWidth()

	var builder strings.Builder
	builder.WriteString("\n  ")
	for col := 0; col < entity.BoardSize; col++ {
		builder.WriteString(runewidth.FillRight(strconv.Itoa(col), width))
		builder.WriteByte(' ')
	}
	builder.WriteByte('\n')

	for row := 0; row < entity.BoardSize; row++ {
		builder.WriteString(strconv.Itoa(row))
		builder.WriteByte(' ')
		for col := 0; col < entity.BoardSize; col++ {
			builder.WriteString(runewidth.FillRight(that.glyph(board[row][col]), width))
			builder.WriteByte(' ')
		}
		builder.WriteByte('\n')
	}

	that.printf("%s", builder.String())
}

func (that *Server) glyph(cell entity.Cell) string {
	switch cell {
	case entity.DarkDisc:
		return that.board.DarkGlyph
	case entity.LightDisc:
		return that.board.LightGlyph
	default:
		return that.board.EmptyGlyph
	}
}

func (that *Server) cellWidth() int {
	width := 1
	for _, glyph := range []string{that.board.DarkGlyph, that.board.LightGlyph, that.board.EmptyGlyph} {
		if w := runewidth.StringWidth(glyph); w > width {
			width = w
		}
	}

	return width
}
