package loop

import "github.com/plus3/blockfall/engine"

// UpdateFrame is handed to every system during one Scheduler.Once call.
// Engine is for reading; mutations go through Commands so they apply in
// order after every system has run.
type UpdateFrame struct {
	DeltaTime float64
	Commands  *Commands
	Engine    *engine.Engine
}

func newUpdateFrame(dt float64, e *engine.Engine) *UpdateFrame {
	return &UpdateFrame{
		DeltaTime: dt,
		Commands:  newCommands(),
		Engine:    e,
	}
}
