package debugui

import (
	"testing"
	"time"

	"github.com/plus3/blockfall/engine"
	"github.com/stretchr/testify/assert"
)

func TestFrameHistory(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		h := NewFrameHistory(4)
		assert.Zero(t, h.Average())
		assert.Zero(t, h.FPS())
		assert.Len(t, h.Samples(), 4)
	})

	t.Run("average over recorded frames only", func(t *testing.T) {
		h := NewFrameHistory(4)
		h.Push(0.010)
		h.Push(0.030)
		assert.InDelta(t, 20.0, h.Average(), 0.001)
		assert.InDelta(t, 50.0, h.FPS(), 0.01)
	})

	t.Run("wraps", func(t *testing.T) {
		h := NewFrameHistory(2)
		h.Push(0.100)
		h.Push(0.010)
		h.Push(0.010)
		assert.InDelta(t, 10.0, h.Average(), 0.001)
	})

	t.Run("minimum size", func(t *testing.T) {
		h := NewFrameHistory(0)
		h.Push(0.016)
		assert.Len(t, h.Samples(), 1)
	})
}

func TestFrameTimer(t *testing.T) {
	ft := NewFrameTimer()
	time.Sleep(5 * time.Millisecond)

	first := ft.GetDeltaTime()
	assert.GreaterOrEqual(t, first, 0.005)

	second := ft.GetDeltaTime()
	assert.GreaterOrEqual(t, second, 0.0)
	assert.Less(t, second, first)
}

func TestStatLines(t *testing.T) {
	lines := statLines(engine.Stats{Ticks: 12, Spawned: 3, Locked: 2, RowsCleared: 5, LastCleared: 1, Rejected: 4})
	assert.Equal(t, []string{
		"Ticks: 12",
		"Spawned: 3",
		"Locked: 2",
		"Rows Cleared: 5 (last 1)",
		"Rejected: 4",
	}, lines)
}

func TestMillis(t *testing.T) {
	assert.Equal(t, "1.500", millis(1500*time.Microsecond))
	assert.Equal(t, "0.000", millis(0))
}
