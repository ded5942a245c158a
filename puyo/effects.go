package puyo

import (
	"time"

	"github.com/kamstrup/intmap"
)

// PopEffect is the cosmetic burst left behind by a removed unit.
type PopEffect struct {
	Color  Color
	Origin Point
	Frame  int
	Frames int
}

// Progress runs from 0 to 1 over the effect's lifetime.
func (p PopEffect) Progress() float64 {
	if p.Frames <= 0 {
		return 1
	}
	return min(1, float64(p.Frame)/float64(p.Frames))
}

// Scale grows to 1.5x as the effect runs.
func (p PopEffect) Scale() float64 {
	return 1 + p.Progress()*0.5
}

// Alpha fades from opaque to transparent.
func (p PopEffect) Alpha() uint8 {
	return uint8(255 * (1 - p.Progress()))
}

func (p PopEffect) Done() bool {
	return p.Frame >= p.Frames
}

// advancePops steps every effect one frame and drops finished ones in place.
func advancePops(pops []PopEffect) []PopEffect {
	live := pops[:0]
	for _, p := range pops {
		p.Frame++
		if !p.Done() {
			live = append(live, p)
		}
	}
	return live
}

// wobbleTracker remembers when each unit last landed.
type wobbleTracker struct {
	duration time.Duration
	started  *intmap.Map[UnitID, time.Duration]
	order    []UnitID
}

func newWobbleTracker(duration time.Duration) *wobbleTracker {
	return &wobbleTracker{
		duration: duration,
		started:  intmap.New[UnitID, time.Duration](Width * Height),
	}
}

func (w *wobbleTracker) start(id UnitID, now time.Duration) {
	if id == 0 || w.duration <= 0 {
		return
	}
	if _, ok := w.started.Get(id); !ok {
		w.order = append(w.order, id)
	}
	w.started.Put(id, now)
}

// progress returns how far through its wobble the unit is, 0..1.
func (w *wobbleTracker) progress(id UnitID, now time.Duration) (float64, bool) {
	at, ok := w.started.Get(id)
	if !ok {
		return 0, false
	}
	elapsed := now - at
	if elapsed >= w.duration {
		return 0, false
	}
	return float64(elapsed) / float64(w.duration), true
}

func (w *wobbleTracker) forget(id UnitID) {
	w.started.Del(id)
}

// prune drops every entry whose wobble has finished or was forgotten.
func (w *wobbleTracker) prune(now time.Duration) {
	kept := w.order[:0]
	for _, id := range w.order {
		at, ok := w.started.Get(id)
		if !ok {
			continue
		}
		if now-at >= w.duration {
			w.started.Del(id)
			continue
		}
		kept = append(kept, id)
	}
	w.order = kept
}

func (w *wobbleTracker) count() int {
	return w.started.Len()
}

func (w *wobbleTracker) reset() {
	w.started.Clear()
	w.order = w.order[:0]
}
