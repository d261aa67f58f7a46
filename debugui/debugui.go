// Package debugui draws Dear ImGui windows over a running session.
// Windows are plain render functions deferred by ImguiSystem, so they see
// the engine after the frame's commands have been applied.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/loop"
)

// ImguiInputState tracks whether Dear ImGui is consuming mouse or keyboard
// input. Frontends skip their own key polling while WantCaptureKeyboard is
// set.
type ImguiInputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// ImguiSystem defers every registered render function once per frame.
type ImguiSystem struct {
	Items      []func()
	InputState ImguiInputState
}

// Add registers render to be drawn every frame.
func (i *ImguiSystem) Add(render func()) {
	i.Items = append(i.Items, render)
}

// Execute updates input state and queues all ImGui render functions for execution.
func (i *ImguiSystem) Execute(frame *loop.UpdateFrame) {
	io := imgui.CurrentIO()
	i.InputState.WantCaptureMouse = io.WantCaptureMouse()
	i.InputState.WantCaptureKeyboard = io.WantCaptureKeyboard()

	for _, item := range i.Items {
		frame.Commands.Defer(item)
	}
}
