package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/render"
)

type boardRenderer struct {
	session *game.Session
	palette render.Palette
	cell    float32
	left    float32
}

// newBoardRenderer draws the board left pixels from the window edge.
func newBoardRenderer(session *game.Session, left int) *boardRenderer {
	return &boardRenderer{
		session: session,
		palette: render.DefaultPalette,
		cell:    float32(session.Config().CellSize),
		left:    float32(left),
	}
}

func (r *boardRenderer) Draw(screen *ebiten.Image, e *engine.Engine) {
	snap := e.Snapshot()
	screen.Fill(r.palette.Background)

	boardW := float32(snap.Width) * r.cell
	boardH := float32(snap.Height) * r.cell
	vector.StrokeRect(screen, r.left-2, offset-2, boardW+4, boardH+4, 2, r.palette.Border, false)

	for row := range snap.Height {
		for col := range snap.Width {
			if snap.Cells[row][col] {
				r.block(screen, col, row, r.palette.Locked)
			}
		}
	}

	active := snap.Active
	if !snap.Terminal() {
		ghostY := active.Y
		for e.CanPlace(active.Piece, active.X, ghostY+1) {
			ghostY++
		}
		ghost := color.RGBA{R: 80, G: 80, B: 80, A: 80}
		for row, col := range active.Piece.Cells() {
			x := r.left + float32(active.X+col)*r.cell
			y := offset + float32(ghostY+row)*r.cell
			vector.DrawFilledRect(screen, x, y, r.cell, r.cell, ghost, false)
		}
	}

	pieceColor := r.palette.Piece(active.Piece.Kind())
	for row, col := range active.Piece.Cells() {
		if active.Y+row >= 0 {
			r.block(screen, active.X+col, active.Y+row, pieceColor)
		}
	}

	textX := int(r.left+boardW) + 20
	stats := snap.Stats
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("LINES  %d", stats.RowsCleared), textX, offset)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("PIECES %d", stats.Locked), textX, offset+20)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("GAME   %d", r.session.Games()), textX, offset+40)

	if snap.Terminal() {
		y := offset + int(boardH)/2
		ebitenutil.DebugPrintAt(screen, "GAME OVER", int(r.left)+20, y)
		ebitenutil.DebugPrintAt(screen, "Press R to restart", int(r.left)+20, y+20)
	}
}

func (r *boardRenderer) block(screen *ebiten.Image, col, row int, c color.RGBA) {
	x := r.left + float32(col)*r.cell
	y := offset + float32(row)*r.cell
	vector.DrawFilledRect(screen, x, y, r.cell, r.cell, c, false)
	vector.StrokeRect(screen, x, y, r.cell, r.cell, 1, color.Black, false)
}
