// Package ebiten provides the Dear ImGui backend for the ebiten front-end.
package ebiten

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/popdrop/puyo"
	"github.com/plus3/popdrop/puyo/debugui"
)

// ImguiBackend wraps the Ebiten-specific Dear ImGui backend implementation.
type ImguiBackend struct {
	*ebitenbackend.EbitenBackend
}

// NewImguiBackend creates the backend and its ImGui context. The ini file
// is disabled so panel layout is not written next to the binary.
func NewImguiBackend(title string, width, height int) *ImguiBackend {
	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow(title, width, height)
	imgui.CurrentIO().SetIniFilename("")
	return &ImguiBackend{EbitenBackend: backend}
}

// Overlay ties an ImguiSystem to the backend frame lifecycle.
type Overlay struct {
	Backend *ImguiBackend
	System  *debugui.ImguiSystem
	Panels  *debugui.Panels
}

// NewOverlay installs the standard panels on session.
func NewOverlay(backend *ImguiBackend, session *puyo.Session) *Overlay {
	system := &debugui.ImguiSystem{}
	panels := debugui.Install(system, session)
	session.Register(system)
	return &Overlay{Backend: backend, System: system, Panels: panels}
}

// Update runs one front-end tick. tick advances the session and must call
// Session.Update at most once; it is skipped while the control panel holds
// the session paused, in which case the panels are drawn directly.
func (o *Overlay) Update(tick func()) {
	o.Backend.BeginFrame()
	if o.Panels.Control.Tick() {
		tick()
	} else {
		o.System.Render()
	}
	o.Backend.EndFrame()
}

// Halted reports whether the control panel holds the session paused with
// no step pending.
func (o *Overlay) Halted() bool {
	return o.Panels.Control.Halted()
}

// WantsKeyboard reports whether ImGui has keyboard focus.
func (o *Overlay) WantsKeyboard() bool {
	return o.System.InputState.WantCaptureKeyboard
}

func (o *Overlay) Draw(screen *ebiten.Image) {
	o.Backend.Draw(screen)
}

func (o *Overlay) Layout(outsideWidth, outsideHeight int) {
	o.Backend.Layout(outsideWidth, outsideHeight)
}
