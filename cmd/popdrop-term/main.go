// Command popdrop-term plays the game in a terminal.
package main

import (
	"flag"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/popdrop/puyo"
)

func main() {
	seed := flag.Uint64("seed", 0, "RNG seed (0 picks one at random)")
	fps := flag.Int("fps", 60, "simulation ticks per second")
	logPath := flag.String("log", "", "write lifecycle events to this file")
	flag.Parse()

	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	var opts []puyo.Option
	if *seed != 0 {
		opts = append(opts, puyo.WithSeed(*seed))
	}
	session, err := puyo.TryNewSession(opts...)
	if err != nil {
		log.Fatal(err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}
	defer screen.Fini()
	screen.SetStyle(defStyle)

	run(screen, session, time.Second/time.Duration(*fps))
}

// pollEvents forwards screen events until the screen is finalized or done
// is closed.
func pollEvents(screen tcell.Screen, events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

// run owns the session. Key events arrive from a polling goroutine; all
// session access happens on this one.
func run(screen tcell.Screen, session *puyo.Session, tick time.Duration) {
	events := make(chan tcell.Event)
	done := make(chan struct{})
	defer close(done)
	go pollEvents(screen, events, done)

	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	var sd softDrop
	last := time.Now()
	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyCtrlC ||
					(ev.Key() == tcell.KeyEscape && session.State() == puyo.Title) {
					return
				}
				cmd, ok := commandFor(session.State(), ev.Key(), ev.Rune())
				if !ok {
					continue
				}
				if cmd == puyo.SoftDropStart && !sd.press(time.Now()) {
					continue
				}
				session.Handle(cmd)
			case *tcell.EventResize:
				screen.Sync()
			}

		case now := <-ticker.C:
			if sd.expired(now) {
				session.Handle(puyo.SoftDropStop)
			}
			session.Update(now.Sub(last).Seconds())
			last = now

			for _, e := range session.DrainEvents() {
				switch e.Kind {
				case puyo.EventSpawned:
					// A fresh piece starts without fast drop.
					sd.reset()
				case puyo.EventGameOver:
					stats := session.Stats()
					log.Printf("game over: score=%d max-chain=%d cleared=%d",
						stats.Score, stats.MaxChain, stats.TotalCleared)
				}
			}
			draw(screen, session)
		}
	}
}
