// Package debugui provides Dear ImGui inspection panels for a running puyo
// session. Panels are attached to an ImguiSystem, which defers their render
// functions to the end of every session frame.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/popdrop/puyo"
)

// ImguiItem holds a Dear ImGui render function drawn once per frame.
type ImguiItem struct {
	Render func()
}

// ImguiInputState tracks whether Dear ImGui is consuming mouse or keyboard
// input. Front-ends should not forward keys to the session while
// WantCaptureKeyboard is set.
type ImguiInputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// ImguiSystem is a puyo.System that queues every item's render function on
// the frame's deferred buffer. Register it on the session after Install.
type ImguiSystem struct {
	Items      []ImguiItem
	InputState ImguiInputState
}

// Add appends a render function.
func (i *ImguiSystem) Add(render func()) {
	i.Items = append(i.Items, ImguiItem{Render: render})
}

// Execute updates input state and queues all ImGui render functions for execution.
func (i *ImguiSystem) Execute(frame *puyo.UpdateFrame) {
	i.captureInput()

	for _, item := range i.Items {
		frame.Deferred.Defer(item.Render)
	}
}

// Render draws every item immediately. Use it on frames where the session
// is not ticked, e.g. while paused from the control panel.
func (i *ImguiSystem) Render() {
	i.captureInput()

	for _, item := range i.Items {
		item.Render()
	}
}

func (i *ImguiSystem) captureInput() {
	io := imgui.CurrentIO()
	i.InputState.WantCaptureMouse = io.WantCaptureMouse()
	i.InputState.WantCaptureKeyboard = io.WantCaptureKeyboard()
}
