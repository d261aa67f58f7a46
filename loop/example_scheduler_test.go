package loop_test

import (
	"fmt"

	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/piece"
)

// ExampleScheduler runs a gravity-like system and a drawing system. Engine
// commands pushed during the frame are applied after every system has run,
// then deferred functions see the result.
func ExampleScheduler() {
	e, _ := engine.New(4, 6, engine.WithSource(piece.NewSequence(piece.O)))
	scheduler := loop.NewScheduler(e)

	scheduler.Register(loop.SystemFunc(func(frame *loop.UpdateFrame) {
		frame.Commands.Push(engine.CommandTick)
	}))
	scheduler.Register(loop.SystemFunc(func(frame *loop.UpdateFrame) {
		before := frame.Engine.Active().Y
		frame.Commands.Defer(func() {
			fmt.Printf("y %d -> %d\n", before, frame.Engine.Active().Y)
		})
	}))

	for range 3 {
		scheduler.Once(1.0 / 60.0)
	}

	stats := scheduler.GetStats()
	fmt.Println("frames:", stats.Frames, "executions:", stats.TotalExecutions)

	// Output:
	// y 0 -> 1
	// y 1 -> 2
	// y 2 -> 3
	// frames: 3 executions: 6
}
