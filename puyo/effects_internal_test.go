package puyo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPopEffectCurve(t *testing.T) {
	p := PopEffect{Frames: 10}
	assert.Equal(t, 1.0, p.Scale())
	assert.Equal(t, uint8(255), p.Alpha())

	p.Frame = 5
	assert.InDelta(t, 1.25, p.Scale(), 1e-9)
	assert.Equal(t, uint8(127), p.Alpha())

	p.Frame = 10
	assert.True(t, p.Done())
	assert.Equal(t, 1.5, p.Scale())
	assert.Equal(t, uint8(0), p.Alpha())
}

func TestAdvancePops(t *testing.T) {
	pops := []PopEffect{
		{Color: Red, Frames: 2},
		{Color: Blue, Frames: 1},
		{Color: Green, Frames: 3, Frame: 1},
	}

	pops = advancePops(pops)
	assert.Len(t, pops, 2)
	assert.Equal(t, Red, pops[0].Color)
	assert.Equal(t, 1, pops[0].Frame)

	pops = advancePops(pops)
	assert.Empty(t, pops)
}

func TestWobbleTracker(t *testing.T) {
	w := newWobbleTracker(500 * time.Millisecond)

	w.start(0, 0)
	assert.Equal(t, 0, w.count(), "unit zero is never tracked")

	w.start(1, 0)
	w.start(2, 200*time.Millisecond)
	assert.Equal(t, 2, w.count())

	p, ok := w.progress(1, 250*time.Millisecond)
	assert.True(t, ok)
	assert.InDelta(t, 0.5, p, 1e-9)

	// Landing again restarts the wobble.
	w.start(1, 300*time.Millisecond)
	w.prune(600 * time.Millisecond)
	assert.Equal(t, 2, w.count())

	w.prune(700 * time.Millisecond)
	assert.Equal(t, 1, w.count())
	_, ok = w.progress(2, 700*time.Millisecond)
	assert.False(t, ok)

	w.forget(1)
	_, ok = w.progress(1, 400*time.Millisecond)
	assert.False(t, ok)
	w.prune(0)
	assert.Empty(t, w.order)

	w.start(3, 0)
	w.reset()
	assert.Equal(t, 0, w.count())
}
