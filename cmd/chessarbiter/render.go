package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
)

// renderer draws boards as text, optionally with ANSI colours.
type renderer struct {
	opts config.OutputConfig

	// squareColours is indexed by [dark][piece colour].
	squareColours [2][chess.NumColours]*color.Color
	highlight     [chess.NumColours]*color.Color
}

func newRenderer(opts *config.OutputConfig) *renderer {
	r := &renderer{opts: *opts}
	for dark, bg := range []color.Attribute{color.BgHiWhite, color.BgGreen} {
		r.squareColours[dark][chess.White] = r.newColour(bg, color.FgHiWhite, color.Bold)
		r.squareColours[dark][chess.Black] = r.newColour(bg, color.FgBlack, color.Bold)
	}
	r.highlight[chess.White] = r.newColour(color.BgYellow, color.FgHiWhite, color.Bold)
	r.highlight[chess.Black] = r.newColour(color.BgYellow, color.FgBlack, color.Bold)
	return r
}

func (r *renderer) newColour(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if r.opts.Colour {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}

// render writes board to w, row 0 (rank 8) first. The piece on selected, if
// any, is highlighted in colour mode and bracketed in plain mode.
func (r *renderer) render(w io.Writer, board *chess.Board, selected *chess.Square) {
	var sb strings.Builder
	for row := 0; row < chess.BoardSize; row++ {
		var line strings.Builder
		if r.opts.Coordinates {
			fmt.Fprintf(&line, "%d ", chess.BoardSize-row)
		}
		for col := 0; col < chess.BoardSize; col++ {
			sq := chess.Sq(row, col)
			line.WriteString(r.cell(board, sq, selected != nil && *selected == sq))
		}
		sb.WriteString(strings.TrimRight(line.String(), " "))
		sb.WriteByte('\n')
	}
	if r.opts.Coordinates {
		var line strings.Builder
		line.WriteString("  ")
		for col := 0; col < chess.BoardSize; col++ {
			fmt.Fprintf(&line, " %c ", 'a'+col)
		}
		sb.WriteString(strings.TrimRight(line.String(), " "))
		sb.WriteByte('\n')
	}
	io.WriteString(w, sb.String())
}

func (r *renderer) cell(board *chess.Board, sq chess.Square, selected bool) string {
	letter := byte('.')
	pieceColour := chess.White
	if p, ok := board.At(sq); ok {
		letter = p.Letter()
		pieceColour = p.Colour
	}

	if !r.opts.Colour {
		if selected {
			return fmt.Sprintf("[%c]", letter)
		}
		return fmt.Sprintf(" %c ", letter)
	}

	if letter == '.' {
		letter = ' '
	}
	c := r.squareColours[(sq.Row+sq.Col)%2][pieceColour]
	if selected {
		c = r.highlight[pieceColour]
	}
	return c.Sprintf(" %c ", letter)
}
