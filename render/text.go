package render

import (
	"strings"

	"github.com/plus3/blockfall/engine"
)

const (
	glyphEmpty  = '.'
	glyphLocked = '#'
	glyphActive = '@'
)

// Cell is what occupies one board position in a frame.
type Cell int

const (
	CellEmpty Cell = iota
	CellLocked
	CellActive
)

// CellAt classifies (col, row) of snap. The active piece is drawn over
// locked blocks, which only happens on the frame the game ends.
func CellAt(snap engine.Snapshot, col, row int) Cell {
	if snap.ActiveAt(col, row) {
		return CellActive
	}
	if row >= 0 && row < len(snap.Cells) && col >= 0 && col < len(snap.Cells[row]) && snap.Cells[row][col] {
		return CellLocked
	}
	return CellEmpty
}

// Text draws snap one row per line: '#' locked, '@' active, '.' empty.
func Text(snap engine.Snapshot) string {
	var b strings.Builder
	b.Grow((snap.Width + 1) * snap.Height)

	for row := range snap.Height {
		for col := range snap.Width {
			switch CellAt(snap, col, row) {
			case CellActive:
				b.WriteByte(glyphActive)
			case CellLocked:
				b.WriteByte(glyphLocked)
			default:
				b.WriteByte(glyphEmpty)
			}
		}
		b.WriteByte('\n')
	}

	return b.String()
}
