package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
)

// Control pauses and single-steps the session from the overlay. The
// front-end asks Tick before every session update.
type Control struct {
	Paused bool

	stepFrames int
}

// Tick reports whether the session should be updated this frame. While
// paused it consumes one requested step per call.
func (c *Control) Tick() bool {
	if !c.Paused {
		return true
	}
	if c.stepFrames > 0 {
		c.stepFrames--
		return true
	}
	return false
}

// Halted reports whether the next Tick will hold the session still. Input
// should not reach the session while halted.
func (c *Control) Halted() bool {
	return c.Paused && c.stepFrames == 0
}

// Step queues frames to run while paused.
func (c *Control) Step(frames int) {
	c.stepFrames += max(0, frames)
}

func (c *Control) Render() {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(250, 140), imgui.CondOnce)

	if !imgui.BeginV("Session Control", nil, 0) {
		imgui.End()
		return
	}

	if c.Paused {
		imgui.PushStyleColorVec4(imgui.ColButton, imgui.NewVec4(0.2, 0.7, 0.2, 1.0))
		imgui.PushStyleColorVec4(imgui.ColButtonHovered, imgui.NewVec4(0.3, 0.8, 0.3, 1.0))
		imgui.PushStyleColorVec4(imgui.ColButtonActive, imgui.NewVec4(0.1, 0.6, 0.1, 1.0))
		if imgui.Button("Resume") {
			c.Paused = false
			c.stepFrames = 0
		}
		imgui.PopStyleColor()
		imgui.PopStyleColor()
		imgui.PopStyleColor()

		imgui.TextColored(imgui.NewVec4(1.0, 0.8, 0.0, 1.0), "PAUSED")
		if c.stepFrames > 0 {
			imgui.Text(fmt.Sprintf("Stepping: %d frames left", c.stepFrames))
		}

		imgui.Separator()
		if imgui.Button("1 Frame") {
			c.Step(1)
		}
		imgui.SameLine()
		if imgui.Button("1 Second") {
			c.Step(60)
		}
	} else {
		imgui.PushStyleColorVec4(imgui.ColButton, imgui.NewVec4(0.7, 0.2, 0.2, 1.0))
		imgui.PushStyleColorVec4(imgui.ColButtonHovered, imgui.NewVec4(0.8, 0.3, 0.3, 1.0))
		imgui.PushStyleColorVec4(imgui.ColButtonActive, imgui.NewVec4(0.6, 0.1, 0.1, 1.0))
		if imgui.Button("Pause") {
			c.Paused = true
		}
		imgui.PopStyleColor()
		imgui.PopStyleColor()
		imgui.PopStyleColor()

		imgui.TextColored(imgui.NewVec4(0.0, 1.0, 0.0, 1.0), "RUNNING")
	}

	imgui.End()
}
