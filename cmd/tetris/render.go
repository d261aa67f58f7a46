package main

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/render"
)

// RenderSystem draws the board after the frame's commands have landed.
type RenderSystem struct {
	session  *game.Session
	palette  render.Palette
	cellSize int32
}

func NewRenderSystem(session *game.Session) *RenderSystem {
	return &RenderSystem{
		session:  session,
		palette:  render.DefaultPalette,
		cellSize: int32(session.Config().CellSize),
	}
}

func (s *RenderSystem) Execute(frame *loop.UpdateFrame) {
	frame.Commands.Defer(func() {
		s.draw(s.session.Engine())
	})
}

func (s *RenderSystem) draw(e *engine.Engine) {
	snap := e.Snapshot()
	cell := s.cellSize
	boardW := int32(snap.Width) * cell
	boardH := int32(snap.Height) * cell

	rl.BeginDrawing()
	rl.ClearBackground(s.palette.Background)

	rl.DrawRectangleLines(offset-2, offset-2, boardW+4, boardH+4, s.palette.Border)

	for row := range snap.Height {
		for col := range snap.Width {
			if snap.Cells[row][col] {
				s.block(col, row, s.palette.Locked)
			}
		}
	}

	active := snap.Active
	if !snap.Terminal() {
		ghostY := active.Y
		for e.CanPlace(active.Piece, active.X, ghostY+1) {
			ghostY++
		}
		ghostColor := rl.NewColor(255, 255, 255, 80)
		for row, col := range active.Piece.Cells() {
			x := offset + int32(active.X+col)*cell
			y := offset + int32(ghostY+row)*cell
			rl.DrawRectangle(x, y, cell, cell, ghostColor)
		}
	}

	color := s.palette.Piece(active.Piece.Kind())
	for row, col := range active.Piece.Cells() {
		if active.Y+row >= 0 {
			s.block(active.X+col, active.Y+row, color)
		}
	}

	textX := offset + boardW + 20
	stats := snap.Stats
	rl.DrawText("LINES", textX, offset, 20, rl.White)
	rl.DrawText(fmt.Sprintf("%d", stats.RowsCleared), textX, offset+25, 20, rl.White)

	rl.DrawText("PIECES", textX, offset+60, 20, rl.White)
	rl.DrawText(fmt.Sprintf("%d", stats.Locked), textX, offset+85, 20, rl.White)

	rl.DrawText("GAME", textX, offset+120, 20, rl.White)
	rl.DrawText(fmt.Sprintf("%d", s.session.Games()), textX, offset+145, 20, rl.White)

	if snap.Terminal() {
		rl.DrawText("GAME OVER", offset+20, offset+boardH/2-10, 30, rl.Red)
		rl.DrawText("Press R to restart", offset+10, offset+boardH/2+30, 20, rl.White)
	}

	rl.EndDrawing()
}

func (s *RenderSystem) block(col, row int, color rl.Color) {
	x := offset + int32(col)*s.cellSize
	y := offset + int32(row)*s.cellSize
	rl.DrawRectangle(x, y, s.cellSize, s.cellSize, color)
	rl.DrawRectangleLines(x, y, s.cellSize, s.cellSize, rl.Black)
}
