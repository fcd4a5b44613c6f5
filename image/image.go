// Package image renders a board position as an SVG, intended for debugging
// and documentation output.
package image

import (
	"fmt"
	"image/color"
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/0x5844/rook"
)

const (
	sqWidth  = 45
	sqHeight = 45
	boardCut = 8 * sqWidth
)

// An Option configures the encoder used by SVG.
type Option func(*encoder)

// SquareColors sets the light and dark square fill colors.
func SquareColors(light, dark color.Color) Option {
	return func(e *encoder) {
		e.light = light
		e.dark = dark
	}
}

// MarkSquares highlights the given squares with the given color, drawn
// beneath the pieces. Useful for visualizing a Bitboard.
func MarkSquares(c color.Color, locs ...rook.Loc) Option {
	return func(e *encoder) {
		for _, l := range locs {
			e.marks[l.Index()] = c
		}
	}
}

type encoder struct {
	light color.Color
	dark  color.Color
	marks map[uint8]color.Color
}

// SVG writes the board to w as a 360x360 SVG document. Rank 8 is drawn at
// the top and pieces render as Unicode chess glyphs. Squares whose masks are
// corrupt are filled with a warning marker instead of aborting the render,
// so the output stays usable for exactly the boards that need debugging.
func SVG(w io.Writer, b rook.Board, opts ...Option) error {
	e := &encoder{
		light: color.RGBA{235, 209, 166, 255},
		dark:  color.RGBA{165, 117, 81, 255},
		marks: map[uint8]color.Color{},
	}
	for _, opt := range opts {
		opt(e)
	}

	canvas := svg.New(w)
	canvas.Start(boardCut, boardCut)
	canvas.Rect(0, 0, boardCut, boardCut)

	for rank := uint8(0); rank < rook.NumOfRanks; rank++ {
		for file := uint8(0); file < rook.NumOfFiles; file++ {
			l, ok := rook.NewLoc(rank, file)
			if !ok {
				return fmt.Errorf("image: invalid square rank %d file %d", rank, file)
			}

			x := int(file) * sqWidth
			y := int(rook.NumOfRanks-1-rank) * sqHeight

			fill := e.light
			if (rank+file)%2 == 0 {
				fill = e.dark
			}
			canvas.Rect(x, y, sqWidth, sqHeight, "fill: "+colorToHex(fill))

			if mark, found := e.marks[l.Index()]; found {
				canvas.Rect(x, y, sqWidth, sqHeight,
					"fill-opacity:0.2;fill: "+colorToHex(mark))
			}

			p, err := b.At(l)
			switch {
			case err != nil:
				canvas.Text(x+sqWidth/2, y+sqHeight/2, "?",
					"font-size:28px;text-anchor:middle;dominant-baseline:central;fill:#cc0000")
			case !p.IsEmpty():
				canvas.Text(x+sqWidth/2, y+sqHeight/2, glyph(p),
					"font-size:34px;text-anchor:middle;dominant-baseline:central")
			}
		}
	}

	canvas.End()
	return nil
}

// glyph maps a piece to its Unicode chess symbol.
func glyph(p rook.Piece) string {
	if p.White {
		switch p.Kind {
		case rook.Pawn:
			return "♙"
		case rook.Knight:
			return "♘"
		case rook.Bishop:
			return "♗"
		case rook.Rook:
			return "♖"
		case rook.Queen:
			return "♕"
		case rook.King:
			return "♔"
		}
		return ""
	}
	switch p.Kind {
	case rook.Pawn:
		return "♟"
	case rook.Knight:
		return "♞"
	case rook.Bishop:
		return "♝"
	case rook.Rook:
		return "♜"
	case rook.Queen:
		return "♛"
	case rook.King:
		return "♚"
	}
	return ""
}

func colorToHex(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", uint8(r>>8), uint8(g>>8), uint8(b>>8))
}
