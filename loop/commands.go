package loop

import "github.com/plus3/blockfall/engine"

// Commands buffers engine commands issued during a frame. They are applied
// at the end of the frame, in the order they were pushed, so the engine only
// ever sees one caller.
type Commands struct {
	queued []engine.Command
	defers []func()
}

func newCommands() *Commands {
	return &Commands{}
}

// Push queues cmd for the engine.
func (c *Commands) Push(cmds ...engine.Command) {
	c.queued = append(c.queued, cmds...)
}

// Defer queues fn to run after the engine commands, typically a draw call
// that must see the post-frame state.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Len is the number of engine commands waiting.
func (c *Commands) Len() int {
	return len(c.queued)
}

// Flush applies every queued command to e, runs the deferred functions and
// resets the buffer.
func (c *Commands) Flush(e *engine.Engine) {
	if e != nil {
		for _, cmd := range c.queued {
			e.Apply(cmd)
		}
	}

	for _, fn := range c.defers {
		fn()
	}

	c.queued = c.queued[:0]
	c.defers = c.defers[:0]
}
