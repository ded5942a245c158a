package ebiten_test

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/popdrop/puyo"
	debugui_ebiten "github.com/plus3/popdrop/puyo/debugui/ebiten"
)

// Game runs a session under the debug overlay.
type Game struct {
	session *puyo.Session
	overlay *debugui_ebiten.Overlay
}

func (g *Game) Update() error {
	// The overlay skips the tick while the control panel is paused
	g.overlay.Update(func() {
		g.session.Update(1.0 / 60.0)
	})
	g.session.DrainEvents()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	// Draw the board
	// ...

	// ImGui goes on top
	g.overlay.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.overlay.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func Example() {
	backend := debugui_ebiten.NewImguiBackend("Popdrop Debug", 1280, 720)
	session := puyo.NewSession(puyo.WithSeed(1))

	overlay := debugui_ebiten.NewOverlay(backend, session)

	// Extra panels are plain render funcs
	overlay.System.Add(func() {
		imgui.Begin("Hello")
		imgui.Text("state: " + session.State().String())
		imgui.End()
	})

	game := &Game{session: session, overlay: overlay}
	if err := ebiten.RunGame(game); err != nil {
		panic(err)
	}
}
