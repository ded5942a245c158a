package main

import (
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/popdrop/puyo"
	debugui_ebiten "github.com/plus3/popdrop/puyo/debugui/ebiten"
)

const tickSeconds = 1.0 / 60.0

// Game adapts a puyo.Session to ebiten.Game.
type Game struct {
	session *puyo.Session
	overlay *debugui_ebiten.Overlay
	verbose bool
	fonts   *fonts
}

func newGame(session *puyo.Session, verbose bool) *Game {
	return &Game{
		session: session,
		verbose: verbose,
		fonts:   newFonts(),
	}
}

func (g *Game) Update() error {
	state := g.session.State()
	if quitRequested(state) {
		return ebiten.Termination
	}

	if g.acceptsInput() {
		for _, cmd := range pollCommands(state) {
			g.session.Handle(cmd)
		}
	}

	if g.overlay != nil {
		g.overlay.Update(func() { g.session.Update(tickSeconds) })
	} else {
		g.session.Update(tickSeconds)
	}

	g.handleEvents(g.session.DrainEvents())
	return nil
}

// acceptsInput is false while ImGui owns the keyboard or the overlay has
// the session paused.
func (g *Game) acceptsInput() bool {
	if g.overlay == nil {
		return true
	}
	return !g.overlay.WantsKeyboard() && !g.overlay.Halted()
}

func (g *Game) handleEvents(events []puyo.Event) {
	for _, e := range events {
		if g.verbose {
			log.Printf("event: %s", e)
		}

		switch e.Kind {
		case puyo.EventSpawned:
			if softDropHeld() {
				g.session.Handle(puyo.SoftDropStart)
			}
		case puyo.EventGameOver:
			stats := g.session.Stats()
			log.Printf("Game over: score=%d level=%d max-chain=%d cleared=%d time=%s",
				stats.Score, stats.Level, stats.MaxChain, stats.TotalCleared, stats.PlayTime.Round(time.Second))
		case puyo.EventLevelUp:
			log.Printf("Level %d", e.Level)
		}
	}

	if g.overlay != nil {
		g.overlay.Panels.Events.Push(events...)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	switch g.session.State() {
	case puyo.Title:
		g.drawTitle(screen)
	case puyo.Playing:
		g.drawPlaying(screen)
	case puyo.ContinuePrompt:
		g.drawPlaying(screen)
		g.drawContinue(screen)
	case puyo.FadeOut:
		g.drawPlaying(screen)
		g.drawFade(screen)
	}

	if g.overlay != nil {
		g.overlay.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.overlay != nil {
		g.overlay.Layout(outsideWidth, outsideHeight)
		return outsideWidth, outsideHeight
	}
	return screenWidth, screenHeight
}
