// Package piece describes tetromino geometry: the seven canonical shapes,
// clockwise rotation, and sources that decide which piece comes next.
package piece

import (
	"fmt"
	"iter"
	"strings"
)

// Kind identifies one of the seven tetrominoes.
type Kind int

const (
	I Kind = iota
	O
	T
	S
	Z
	J
	L
)

// KindCount is the number of canonical tetrominoes.
const KindCount = 7

var kindNames = [KindCount]string{"I", "O", "T", "S", "Z", "J", "L"}

// Valid reports whether k is one of the seven tetrominoes.
func (k Kind) Valid() bool {
	return k >= 0 && int(k) < KindCount
}

func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind returns the kind named by s (case-insensitive).
func ParseKind(s string) (Kind, error) {
	for i, name := range kindNames {
		if strings.EqualFold(s, name) {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("unknown piece kind %q", s)
}

// Kinds returns all seven kinds in table order.
func Kinds() []Kind {
	return []Kind{I, O, T, S, Z, J, L}
}

var shapes = [KindCount][][]bool{
	I: {
		{true, true, true, true},
	},
	O: {
		{true, true},
		{true, true},
	},
	T: {
		{false, true, false},
		{true, true, true},
	},
	S: {
		{false, true, true},
		{true, true, false},
	},
	Z: {
		{true, true, false},
		{false, true, true},
	},
	J: {
		{true, false, false},
		{true, true, true},
	},
	L: {
		{false, false, true},
		{true, true, true},
	},
}

// Piece is an immutable tetromino shape. The zero value is an empty shape
// that occupies no cells.
type Piece struct {
	kind  Kind
	shape [][]bool
}

// New returns the piece of the given kind in its spawn orientation.
func New(kind Kind) Piece {
	if !kind.Valid() {
		return Piece{kind: kind}
	}
	return Piece{kind: kind, shape: cloneShape(shapes[kind])}
}

func cloneShape(shape [][]bool) [][]bool {
	out := make([][]bool, len(shape))
	for i := range shape {
		out[i] = make([]bool, len(shape[i]))
		copy(out[i], shape[i])
	}
	return out
}

// Kind reports which tetromino p is.
func (p Piece) Kind() Kind {
	return p.kind
}

// Rows is the height of the shape's bounding box.
func (p Piece) Rows() int {
	return len(p.shape)
}

// Cols is the width of the shape's bounding box.
func (p Piece) Cols() int {
	if len(p.shape) == 0 {
		return 0
	}
	return len(p.shape[0])
}

// Filled reports whether the shape has a block at (row, col). Coordinates
// outside the bounding box are empty.
func (p Piece) Filled(row, col int) bool {
	if row < 0 || row >= len(p.shape) || col < 0 || col >= len(p.shape[row]) {
		return false
	}
	return p.shape[row][col]
}

// Cells yields the (row, col) offset of every filled block, top to bottom.
func (p Piece) Cells() iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		for row := range p.shape {
			for col, filled := range p.shape[row] {
				if !filled {
					continue
				}
				if !yield(row, col) {
					return
				}
			}
		}
	}
}

// CellCount is the number of filled blocks.
func (p Piece) CellCount() int {
	n := 0
	for range p.Cells() {
		n++
	}
	return n
}

// Shape returns a copy of the boolean matrix, indexed [row][col].
func (p Piece) Shape() [][]bool {
	return cloneShape(p.shape)
}

// Equal reports whether p and q have the same kind and the same pattern.
func (p Piece) Equal(q Piece) bool {
	if p.kind != q.kind || p.Rows() != q.Rows() || p.Cols() != q.Cols() {
		return false
	}
	for row := range p.shape {
		for col := range p.shape[row] {
			if p.shape[row][col] != q.shape[row][col] {
				return false
			}
		}
	}
	return true
}

// Rotate returns p turned 90 degrees clockwise. An R×C shape becomes C×R
// with out[col][R-1-row] = in[row][col]. Board bounds are not considered.
func (p Piece) Rotate() Piece {
	rows := p.Rows()
	cols := p.Cols()

	rotated := make([][]bool, cols)
	for i := range rotated {
		rotated[i] = make([]bool, rows)
	}

	for row := range rows {
		for col := range cols {
			rotated[col][rows-1-row] = p.shape[row][col]
		}
	}

	return Piece{kind: p.kind, shape: rotated}
}

// Rotate is the function form of Piece.Rotate.
func Rotate(p Piece) Piece {
	return p.Rotate()
}

// String draws the shape with '#' for blocks and '.' for gaps, rows
// separated by '/'.
func (p Piece) String() string {
	var b strings.Builder
	for row := range p.shape {
		if row > 0 {
			b.WriteByte('/')
		}
		for _, filled := range p.shape[row] {
			if filled {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
	}
	return b.String()
}
