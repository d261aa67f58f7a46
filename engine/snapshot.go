package engine

// Snapshot is a copy of everything a renderer needs for one frame. Cells is
// indexed [row][col]; true marks a locked block.
type Snapshot struct {
	Width  int
	Height int
	Cells  [][]bool
	Active ActivePiece
	State  State
	Stats  Stats
}

// Terminal reports whether the session had ended when the snapshot was taken.
func (s Snapshot) Terminal() bool {
	return s.State == GameOver
}

// ActiveAt reports whether the active piece covers board cell (col, row).
func (s Snapshot) ActiveAt(col, row int) bool {
	return s.Active.Piece.Filled(row-s.Active.Y, col-s.Active.X)
}

func (e *Engine) Width() int {
	return e.width
}

func (e *Engine) Height() int {
	return e.height
}

// Occupied reports whether a locked block sits at (col, row). Cells outside
// the board are reported empty.
func (e *Engine) Occupied(col, row int) bool {
	if col < 0 || col >= e.width || row < 0 || row >= e.height {
		return false
	}
	return e.grid[row][col]
}

// Board returns a copy of the grid indexed [row][col].
func (e *Engine) Board() [][]bool {
	out := make([][]bool, e.height)
	for row := range e.grid {
		out[row] = make([]bool, e.width)
		copy(out[row], e.grid[row])
	}
	return out
}

func (e *Engine) Active() ActivePiece {
	return ActivePiece{Piece: e.active, X: e.x, Y: e.y}
}

func (e *Engine) State() State {
	return e.state
}

// Terminal reports whether the session has ended.
func (e *Engine) Terminal() bool {
	return e.state == GameOver
}

func (e *Engine) Stats() Stats {
	return e.stats
}

func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Width:  e.width,
		Height: e.height,
		Cells:  e.Board(),
		Active: e.Active(),
		State:  e.state,
		Stats:  e.stats,
	}
}
