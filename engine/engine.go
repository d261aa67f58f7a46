// Package engine holds the state of one falling-block session: the board,
// the active piece and its anchor, and the transition rules that move,
// lock, clear and spawn.
//
// An Engine is not safe for concurrent use. Callers that share one across
// goroutines must serialize every call.
package engine

import (
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/plus3/blockfall/piece"
)

// ErrInvalidDimensions is returned by New for a non-positive width or height.
var ErrInvalidDimensions = errors.New("board dimensions must be positive")

// State is the session phase.
type State int

const (
	Playing State = iota
	GameOver
)

func (s State) String() string {
	switch s {
	case Playing:
		return "playing"
	case GameOver:
		return "game-over"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Stats counts what the engine has done since construction. Rejected
// counts moves and rotations refused by CanPlace.
type Stats struct {
	Ticks       int
	Spawned     int
	Locked      int
	RowsCleared int
	LastCleared int
	Rejected    int
}

// ActivePiece is the falling piece and its top-left anchor on the board.
type ActivePiece struct {
	Piece piece.Piece
	X, Y  int
}

// Engine owns the board and the active piece.
type Engine struct {
	width  int
	height int
	grid   [][]bool

	active piece.Piece
	x, y   int

	state  State
	source piece.Source
	stats  Stats
}

// Option configures an Engine.
type Option func(*Engine)

// WithSource sets where spawned pieces come from.
func WithSource(src piece.Source) Option {
	return func(e *Engine) {
		e.source = src
	}
}

// WithRand draws spawned pieces uniformly from r. A nil r keeps the
// crypto-seeded default.
func WithRand(r *rand.Rand) Option {
	return func(e *Engine) {
		if r == nil {
			return
		}
		e.source = piece.NewRandomSource(r)
	}
}

// New creates an empty width×height board and spawns the first piece.
func New(width, height int, opts ...Option) (*Engine, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}

	e := &Engine{
		width:  width,
		height: height,
		grid:   make([][]bool, height),
	}
	for row := range e.grid {
		e.grid[row] = make([]bool, width)
	}

	for _, opt := range opts {
		opt(e)
	}

	if e.source == nil {
		src, err := newCryptoSource()
		if err != nil {
			return nil, err
		}
		e.source = src
	}

	e.Spawn()
	return e, nil
}

func newCryptoSource() (piece.Source, error) {
	var b [16]byte
	if _, err := crand.Read(b[:]); err != nil {
		return nil, fmt.Errorf("read random seed: %w", err)
	}
	return piece.NewSeededSource(
		binary.LittleEndian.Uint64(b[:8]),
		binary.LittleEndian.Uint64(b[8:]),
	), nil
}

// CanPlace reports whether p fits with its anchor at (x, y). Blocks above
// the top edge are only checked against the side walls.
func (e *Engine) CanPlace(p piece.Piece, x, y int) bool {
	for row, col := range p.Cells() {
		nx := x + col
		ny := y + row

		if nx < 0 || nx >= e.width || ny >= e.height {
			return false
		}

		if ny >= 0 && e.grid[ny][nx] {
			return false
		}
	}

	return true
}

// Spawn replaces the active piece with the next one from the source,
// anchored at (width/2-1, 0). If it does not fit the session ends and the
// board is left as it was.
func (e *Engine) Spawn() {
	if e.state == GameOver {
		return
	}

	e.active = e.source.Next()
	e.x = e.width/2 - 1
	e.y = 0
	e.stats.Spawned++

	if !e.CanPlace(e.active, e.x, e.y) {
		e.state = GameOver
	}
}

// Tick applies one step of gravity, locking the piece when it cannot fall.
func (e *Engine) Tick() {
	if e.state == GameOver {
		return
	}

	e.stats.Ticks++

	if e.CanPlace(e.active, e.x, e.y+1) {
		e.y++
		return
	}

	e.Lock()
}

// Lock copies the active piece into the board, clears full rows and spawns
// the next piece. Blocks outside the board are dropped.
func (e *Engine) Lock() {
	if e.state == GameOver {
		return
	}

	for row, col := range e.active.Cells() {
		nx := e.x + col
		ny := e.y + row

		if nx < 0 || nx >= e.width || ny < 0 || ny >= e.height {
			continue
		}

		e.grid[ny][nx] = true
	}
	e.stats.Locked++

	e.stats.LastCleared = e.ClearLines()
	e.stats.RowsCleared += e.stats.LastCleared

	e.Spawn()
}

// ClearLines removes every full row, shifting the rows above it down, and
// returns how many were removed. After a shift the same row index is
// examined again since it now holds the row from above.
func (e *Engine) ClearLines() int {
	if e.state == GameOver {
		return 0
	}

	cleared := 0
	for row := e.height - 1; row >= 0; row-- {
		if !e.rowFull(row) {
			continue
		}

		for r := row; r > 0; r-- {
			copy(e.grid[r], e.grid[r-1])
		}
		clear(e.grid[0])

		cleared++
		row++
	}

	return cleared
}

func (e *Engine) rowFull(row int) bool {
	for _, occupied := range e.grid[row] {
		if !occupied {
			return false
		}
	}
	return true
}

// Move shifts the active piece dx columns if the destination is free.
func (e *Engine) Move(dx int) {
	if e.state == GameOver {
		return
	}

	if !e.CanPlace(e.active, e.x+dx, e.y) {
		e.stats.Rejected++
		return
	}
	e.x += dx
}

func (e *Engine) MoveLeft() {
	e.Move(-1)
}

func (e *Engine) MoveRight() {
	e.Move(1)
}

// SoftDrop moves the active piece down one row if it can. Unlike Tick it
// never locks.
func (e *Engine) SoftDrop() {
	if e.state == GameOver {
		return
	}

	if !e.CanPlace(e.active, e.x, e.y+1) {
		e.stats.Rejected++
		return
	}
	e.y++
}

// Rotate turns the active piece clockwise about its anchor. A rotation that
// does not fit is discarded; no offsets are tried.
func (e *Engine) Rotate() {
	if e.state == GameOver {
		return
	}

	rotated := e.active.Rotate()
	if !e.CanPlace(rotated, e.x, e.y) {
		e.stats.Rejected++
		return
	}
	e.active = rotated
}

// Apply dispatches cmd. Unknown commands are ignored.
func (e *Engine) Apply(cmd Command) {
	switch cmd {
	case CommandTick:
		e.Tick()
	case CommandMoveLeft:
		e.MoveLeft()
	case CommandMoveRight:
		e.MoveRight()
	case CommandSoftDrop:
		e.SoftDrop()
	case CommandRotate:
		e.Rotate()
	}
}
