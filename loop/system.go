package loop

// System is one unit of per-frame host behaviour: reading input, applying
// gravity, drawing. Systems keep their own state between frames and reach
// the engine only through the frame.
type System interface {
	Execute(frame *UpdateFrame)
}

// SystemFunc adapts a plain function to System.
type SystemFunc func(frame *UpdateFrame)

func (f SystemFunc) Execute(frame *UpdateFrame) {
	f(frame)
}
