package main

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/popdrop/puyo"
	"github.com/stretchr/testify/assert"
)

func TestCommandFor(t *testing.T) {
	tests := []struct {
		name  string
		state puyo.State
		k     tcell.Key
		r     rune
		want  puyo.Command
		ok    bool
	}{
		{"space starts from the title", puyo.Title, tcell.KeyRune, ' ', puyo.ConfirmPrimary, true},
		{"enter starts from the title", puyo.Title, tcell.KeyEnter, 0, puyo.ConfirmPrimary, true},
		{"arrows do nothing on the title", puyo.Title, tcell.KeyLeft, 0, 0, false},
		{"space hard drops while playing", puyo.Playing, tcell.KeyRune, ' ', puyo.HardDrop, true},
		{"up rotates while playing", puyo.Playing, tcell.KeyUp, 0, puyo.RotateCW, true},
		{"z rotates counter-clockwise", puyo.Playing, tcell.KeyRune, 'z', puyo.RotateCCW, true},
		{"down soft drops", puyo.Playing, tcell.KeyDown, 0, puyo.SoftDropStart, true},
		{"unbound rune", puyo.Playing, tcell.KeyRune, 'q', 0, false},
		{"up toggles at the prompt", puyo.ContinuePrompt, tcell.KeyUp, 0, puyo.ToggleChoice, true},
		{"down toggles at the prompt", puyo.ContinuePrompt, tcell.KeyDown, 0, puyo.ToggleChoice, true},
		{"nothing during the fade", puyo.FadeOut, tcell.KeyEnter, 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := commandFor(tt.state, tt.k, tt.r)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestSoftDropHold(t *testing.T) {
	var sd softDrop
	start := time.Unix(0, 0)

	assert.False(t, sd.expired(start), "nothing held yet")
	assert.True(t, sd.press(start))
	assert.False(t, sd.press(start.Add(50*time.Millisecond)), "key repeat extends the hold")

	assert.False(t, sd.expired(start.Add(150*time.Millisecond)))
	assert.True(t, sd.expired(start.Add(170*time.Millisecond)))
	assert.False(t, sd.expired(start.Add(200*time.Millisecond)), "release is reported once")

	assert.True(t, sd.press(start.Add(time.Second)))
	sd.reset()
	assert.False(t, sd.expired(start.Add(2*time.Second)))
}
