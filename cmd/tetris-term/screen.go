package main

import (
	"fmt"
	"image/color"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/piece"
	"github.com/plus3/blockfall/render"
)

const (
	boardX = 1
	boardY = 1
)

type styles struct {
	base   tcell.Style
	empty  tcell.Style
	locked tcell.Style
	kinds  [piece.KindCount]tcell.Style
	alert  tcell.Style
}

func newStyles(p render.Palette) styles {
	s := styles{
		base:   tcell.StyleDefault,
		empty:  tcell.StyleDefault.Foreground(tcell.ColorDimGray),
		locked: blockStyle(p.Locked),
		alert:  tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true),
	}
	for _, kind := range piece.Kinds() {
		s.kinds[kind] = blockStyle(p.Piece(kind))
	}
	return s
}

func blockStyle(c color.RGBA) tcell.Style {
	rgb := tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
	return tcell.StyleDefault.Foreground(rgb).Background(rgb)
}

// drawFrame paints the board two columns per cell, with counters to the
// right. The caller shows the screen.
func drawFrame(screen tcell.Screen, st styles, snap engine.Snapshot, games int) {
	screen.Clear()

	right := boardX + snap.Width*2
	bottom := boardY + snap.Height
	for row := boardY; row < bottom; row++ {
		screen.SetContent(boardX-1, row, tcell.RuneVLine, nil, st.base)
		screen.SetContent(right, row, tcell.RuneVLine, nil, st.base)
	}
	for col := boardX; col < right; col++ {
		screen.SetContent(col, bottom, tcell.RuneHLine, nil, st.base)
	}
	screen.SetContent(boardX-1, bottom, tcell.RuneLLCorner, nil, st.base)
	screen.SetContent(right, bottom, tcell.RuneLRCorner, nil, st.base)

	kindStyle := st.kinds[snap.Active.Piece.Kind()]
	for row := range snap.Height {
		for col := range snap.Width {
			x, y := boardX+col*2, boardY+row
			switch render.CellAt(snap, col, row) {
			case render.CellActive:
				drawText(screen, x, y, kindStyle, "[]")
			case render.CellLocked:
				drawText(screen, x, y, st.locked, "[]")
			default:
				drawText(screen, x, y, st.empty, " .")
			}
		}
	}

	textX := right + 3
	stats := snap.Stats
	drawText(screen, textX, boardY, st.base, fmt.Sprintf("Lines  %d", stats.RowsCleared))
	drawText(screen, textX, boardY+1, st.base, fmt.Sprintf("Pieces %d", stats.Locked))
	drawText(screen, textX, boardY+2, st.base, fmt.Sprintf("Game   %d", games))
	drawText(screen, textX, boardY+4, st.base, "arrows/hjkl move, r restart, q quit")

	if snap.Terminal() {
		drawText(screen, textX, boardY+6, st.alert, "GAME OVER")
	}
}

func drawText(screen tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, r := range text {
		screen.SetContent(x, y, r, nil, style)
		x++
	}
}
