package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/popdrop/puyo"
	debugui_ebiten "github.com/plus3/popdrop/puyo/debugui/ebiten"
)

func main() {
	seed := flag.Uint64("seed", 0, "Random seed for piece colors (0 = random)")
	debug := flag.Bool("debug", false, "Show the Dear ImGui debug overlay")
	scale := flag.Float64("scale", 1.0, "Window scale factor")
	verbose := flag.Bool("verbose", false, "Log every game event")
	flag.Parse()

	if *scale <= 0 {
		log.Fatalf("invalid -scale %v: must be positive", *scale)
	}

	var opts []puyo.Option
	if *seed != 0 {
		opts = append(opts, puyo.WithSeed(*seed))
	}

	session, err := puyo.TryNewSession(opts...)
	if err != nil {
		log.Fatal(err)
	}

	windowW := int(float64(screenWidth) * *scale)
	windowH := int(float64(screenHeight) * *scale)

	game := newGame(session, *verbose)
	if *debug {
		backend := debugui_ebiten.NewImguiBackend("popdrop (debug)", windowW, windowH)
		game.overlay = debugui_ebiten.NewOverlay(backend, session)
		log.Printf("Debug overlay enabled")
	}

	ebiten.SetWindowTitle("popdrop")
	ebiten.SetWindowSize(windowW, windowH)
	ebiten.SetTPS(60)

	log.Printf("Starting popdrop (seed=%d scale=%.1f)", *seed, *scale)
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
	log.Printf("Bye")
}
