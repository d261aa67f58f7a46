package loop_test

import (
	"context"
	"testing"
	"time"

	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/piece"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scriptedSystem struct {
	Commands     []engine.Command
	ExecuteCount int
}

func (s *scriptedSystem) Execute(frame *loop.UpdateFrame) {
	s.ExecuteCount++
	frame.Commands.Push(s.Commands...)
}

type observerSystem struct {
	SeenY        []int
	Deferred     []int
	ExecuteCount int
}

func (s *observerSystem) Execute(frame *loop.UpdateFrame) {
	s.ExecuteCount++
	s.SeenY = append(s.SeenY, frame.Engine.Active().Y)
	frame.Commands.Defer(func() {
		s.Deferred = append(s.Deferred, frame.Engine.Active().Y)
	})
}

func newEngine(t *testing.T) *engine.Engine {
	t.Helper()
	e, err := engine.New(10, 20, engine.WithSource(piece.NewSequence(piece.O)))
	require.NoError(t, err)
	return e
}

func TestScheduler(t *testing.T) {
	t.Run("system execution order and command flush", func(t *testing.T) {
		e := newEngine(t)
		scheduler := loop.NewScheduler(e)

		mover := &scriptedSystem{Commands: []engine.Command{engine.CommandMoveLeft, engine.CommandTick}}
		observer := &observerSystem{}

		scheduler.Register(mover)
		scheduler.Register(observer)

		scheduler.Once(1.0)

		assert.Equal(t, 1, mover.ExecuteCount)
		assert.Equal(t, 1, observer.ExecuteCount)
		assert.Equal(t, []int{0}, observer.SeenY)
		assert.Equal(t, []int{1}, observer.Deferred)
		assert.Equal(t, 3, e.Active().X)

		scheduler.Once(1.0)

		assert.Equal(t, 2, mover.ExecuteCount)
		assert.Equal(t, []int{0, 1}, observer.SeenY)
		assert.Equal(t, []int{1, 2}, observer.Deferred)
		assert.Equal(t, 2, e.Active().X)
	})

	t.Run("commands apply in push order", func(t *testing.T) {
		e := newEngine(t)
		scheduler := loop.NewScheduler(e)

		scheduler.Register(&scriptedSystem{Commands: []engine.Command{engine.CommandMoveRight}})
		scheduler.Register(&scriptedSystem{Commands: []engine.Command{engine.CommandMoveRight, engine.CommandMoveLeft}})

		scheduler.Once(0)
		assert.Equal(t, 5, e.Active().X)
	})

	t.Run("system func", func(t *testing.T) {
		e := newEngine(t)
		scheduler := loop.NewScheduler(e)

		var dts []float64
		scheduler.Register(loop.SystemFunc(func(frame *loop.UpdateFrame) {
			dts = append(dts, frame.DeltaTime)
		}))

		scheduler.Once(0.25)
		scheduler.Once(0.5)
		assert.Equal(t, []float64{0.25, 0.5}, dts)
	})

	t.Run("attach switches engines", func(t *testing.T) {
		first := newEngine(t)
		second := newEngine(t)
		scheduler := loop.NewScheduler(first)
		scheduler.Register(&scriptedSystem{Commands: []engine.Command{engine.CommandTick}})

		scheduler.Once(0)
		scheduler.Attach(second)
		scheduler.Once(0)

		assert.Same(t, second, scheduler.Engine())
		assert.Equal(t, 1, first.Active().Y)
		assert.Equal(t, 1, second.Active().Y)
	})

	t.Run("context cancellation in run", func(t *testing.T) {
		e := newEngine(t)
		scheduler := loop.NewScheduler(e)

		system := &scriptedSystem{}
		scheduler.Register(system)

		ctx, cancel := context.WithCancel(context.Background())

		done := make(chan bool)
		go func() {
			scheduler.Run(ctx, 1*time.Millisecond)
			done <- true
		}()

		time.Sleep(20 * time.Millisecond)
		cancel()

		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("Run did not return after cancellation")
		}

		assert.Positive(t, system.ExecuteCount)
	})
}

func TestSchedulerStats(t *testing.T) {
	e := newEngine(t)
	scheduler := loop.NewScheduler(e)

	scheduler.Register(&scriptedSystem{})
	scheduler.Register(&observerSystem{})
	scheduler.Register(loop.SystemFunc(func(*loop.UpdateFrame) {}))

	stats := scheduler.GetStats()
	require.Len(t, stats.Systems, 3)
	assert.Equal(t, time.Duration(0), stats.Systems[0].MinDuration)

	for range 5 {
		scheduler.Once(1.0 / 60.0)
	}

	stats = scheduler.GetStats()
	assert.Equal(t, 3, stats.SystemCount)
	assert.Equal(t, int64(5), stats.Frames)
	assert.Equal(t, int64(15), stats.TotalExecutions)

	assert.Equal(t, "scriptedSystem", stats.Systems[0].Name)
	assert.Equal(t, "observerSystem", stats.Systems[1].Name)
	assert.Equal(t, "SystemFunc", stats.Systems[2].Name)

	for _, system := range stats.Systems {
		assert.Equal(t, int64(5), system.ExecutionCount)
		assert.LessOrEqual(t, system.MinDuration, system.AvgDuration)
		assert.LessOrEqual(t, system.AvgDuration, system.MaxDuration)
		assert.GreaterOrEqual(t, system.TotalDuration, system.MaxDuration)
	}
}
