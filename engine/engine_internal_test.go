package engine

import (
	"strings"
	"testing"

	"github.com/plus3/blockfall/piece"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestEngine builds an engine whose pieces come from kinds, in order.
func newTestEngine(t *testing.T, width, height int, kinds ...piece.Kind) *Engine {
	t.Helper()
	e, err := New(width, height, WithSource(piece.NewSequence(kinds...)))
	require.NoError(t, err)
	return e
}

// setRows overwrites the grid; '#' marks an occupied cell.
func setRows(t *testing.T, e *Engine, rows ...string) {
	t.Helper()
	require.Len(t, rows, e.height)
	for row, line := range rows {
		require.Len(t, line, e.width)
		for col, ch := range line {
			e.grid[row][col] = ch == '#'
		}
	}
}

func rowsOf(e *Engine) []string {
	out := make([]string, e.height)
	for row := range e.grid {
		var b strings.Builder
		for _, occupied := range e.grid[row] {
			if occupied {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		out[row] = b.String()
	}
	return out
}

func TestClearLines(t *testing.T) {
	t.Run("single full bottom row", func(t *testing.T) {
		e := newTestEngine(t, 4, 4, piece.O)
		setRows(t, e,
			"#...",
			".#..",
			"..#.",
			"####",
		)

		assert.Equal(t, 1, e.ClearLines())
		assert.Equal(t, []string{
			"....",
			"#...",
			".#..",
			"..#.",
		}, rowsOf(e))
	})

	t.Run("two adjacent full rows", func(t *testing.T) {
		e := newTestEngine(t, 4, 4, piece.O)
		setRows(t, e,
			".#..",
			"#..#",
			"####",
			"####",
		)

		assert.Equal(t, 2, e.ClearLines())
		assert.Equal(t, []string{
			"....",
			"....",
			".#..",
			"#..#",
		}, rowsOf(e))
	})

	t.Run("separated full rows", func(t *testing.T) {
		e := newTestEngine(t, 4, 4, piece.O)
		setRows(t, e,
			"#...",
			"####",
			"..##",
			"####",
		)

		assert.Equal(t, 2, e.ClearLines())
		assert.Equal(t, []string{
			"....",
			"....",
			"#...",
			"..##",
		}, rowsOf(e))
	})

	t.Run("whole board full", func(t *testing.T) {
		e := newTestEngine(t, 3, 3, piece.O)
		setRows(t, e, "###", "###", "###")

		assert.Equal(t, 3, e.ClearLines())
		assert.Equal(t, []string{"...", "...", "..."}, rowsOf(e))
	})

	t.Run("no full rows", func(t *testing.T) {
		e := newTestEngine(t, 4, 4, piece.O)
		rows := []string{"....", "#.#.", ".###", "###."}
		setRows(t, e, rows...)

		assert.Equal(t, 0, e.ClearLines())
		assert.Equal(t, rows, rowsOf(e))
	})
}

func TestLockedIPieceClearsRow(t *testing.T) {
	e := newTestEngine(t, 4, 4, piece.O)
	e.active = piece.New(piece.I)
	e.x, e.y = 0, 0

	for range 3 {
		e.Tick()
	}
	assert.Equal(t, 3, e.y)
	assert.Equal(t, 0, e.stats.Locked)

	e.Tick()

	assert.Equal(t, []string{"....", "....", "....", "...."}, rowsOf(e))
	assert.Equal(t, 1, e.stats.Locked)
	assert.Equal(t, 1, e.stats.RowsCleared)
	assert.Equal(t, Playing, e.state)

	active := e.Active()
	assert.Equal(t, piece.O, active.Piece.Kind())
	assert.Equal(t, 1, active.X)
	assert.Equal(t, 0, active.Y)
}

func TestSpawnBlocked(t *testing.T) {
	e := newTestEngine(t, 10, 4, piece.O)
	setRows(t, e,
		"....##....",
		"....##....",
		"....##....",
		"....##....",
	)
	before := rowsOf(e)

	e.Spawn()

	assert.Equal(t, GameOver, e.state)
	assert.True(t, e.Terminal())
	assert.Equal(t, before, rowsOf(e))
}

func TestCanPlaceAboveBoard(t *testing.T) {
	e := newTestEngine(t, 4, 4, piece.O)
	setRows(t, e,
		"....",
		"....",
		"....",
		"....",
	)

	// A piece wider than the board fails on the side wall, not occupancy.
	assert.False(t, e.CanPlace(piece.New(piece.I), 1, -1))
	assert.True(t, e.CanPlace(piece.New(piece.I), 0, -1))

	setRows(t, e,
		"####",
		"....",
		"....",
		"....",
	)
	assert.True(t, e.CanPlace(piece.New(piece.I).Rotate(), 0, -4))
	assert.False(t, e.CanPlace(piece.New(piece.I).Rotate(), 0, -3))
	assert.False(t, e.CanPlace(piece.New(piece.I).Rotate(), -1, -4))
}

func TestLockDropsCellsOutsideBoard(t *testing.T) {
	e := newTestEngine(t, 4, 6, piece.O)
	e.active = piece.New(piece.I).Rotate()
	e.x, e.y = 0, -2

	require.NotPanics(t, e.Lock)

	assert.Equal(t, []string{
		"#...",
		"#...",
		"....",
		"....",
		"....",
		"....",
	}, rowsOf(e))
	assert.Equal(t, Playing, e.state)
}

func TestGameOverIsAbsorbing(t *testing.T) {
	e := newTestEngine(t, 4, 4, piece.O)
	setRows(t, e,
		".##.",
		"..#.",
		"#.##",
		"###.",
	)
	e.Spawn()
	require.True(t, e.Terminal())

	board := rowsOf(e)
	active := e.Active()
	stats := e.stats

	for _, cmd := range Commands() {
		e.Apply(cmd)
	}
	e.Lock()
	e.Spawn()
	assert.Equal(t, 0, e.ClearLines())

	assert.Equal(t, board, rowsOf(e))
	assert.Equal(t, active.X, e.x)
	assert.Equal(t, active.Y, e.y)
	assert.True(t, active.Piece.Equal(e.active))
	assert.Equal(t, stats, e.stats)
	assert.Equal(t, GameOver, e.state)
}

func TestCanPlaceIsPure(t *testing.T) {
	e := newTestEngine(t, 6, 8, piece.T)
	setRows(t, e,
		"......",
		"......",
		"......",
		"......",
		"#.....",
		"##..#.",
		"###.##",
		"##.###",
	)
	before := rowsOf(e)

	for _, kind := range piece.Kinds() {
		p := piece.New(kind)
		for range 4 {
			for x := -5; x < e.width+5; x++ {
				for y := -5; y < e.height+5; y++ {
					e.CanPlace(p, x, y)
				}
			}
			p = p.Rotate()
		}
	}

	assert.Equal(t, before, rowsOf(e))
}
