// Package render holds the drawing decisions shared by every frontend: the
// colour of each piece kind and a plain-text board view.
package render

import (
	"image/color"

	"github.com/plus3/blockfall/piece"
)

// Palette colours the board. Locked blocks lose their kind, so they share
// one colour.
type Palette struct {
	Kinds      [piece.KindCount]color.RGBA
	Locked     color.RGBA
	Background color.RGBA
	Border     color.RGBA
}

// DefaultPalette follows the usual tetromino colours.
var DefaultPalette = Palette{
	Kinds: [piece.KindCount]color.RGBA{
		piece.I: {R: 102, G: 191, B: 255, A: 255},
		piece.O: {R: 255, G: 203, B: 0, A: 255},
		piece.T: {R: 135, G: 60, B: 190, A: 255},
		piece.S: {R: 0, G: 158, B: 47, A: 255},
		piece.Z: {R: 255, G: 109, B: 194, A: 255},
		piece.J: {R: 0, G: 121, B: 241, A: 255},
		piece.L: {R: 255, G: 161, B: 0, A: 255},
	},
	Locked:     color.RGBA{R: 80, G: 80, B: 200, A: 255},
	Background: color.RGBA{A: 255},
	Border:     color.RGBA{R: 130, G: 130, B: 130, A: 255},
}

// Piece returns the colour for kind, or Locked for an unknown kind.
func (p Palette) Piece(kind piece.Kind) color.RGBA {
	if kind < 0 || int(kind) >= piece.KindCount {
		return p.Locked
	}
	return p.Kinds[kind]
}
