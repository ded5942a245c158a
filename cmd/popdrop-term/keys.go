package main

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/popdrop/puyo"
)

// Terminals report key presses but never releases, so a soft drop is held
// for softDropHold after the last Down and then released.
const softDropHold = 120 * time.Millisecond

type keybinding struct {
	k tcell.Key
	r rune
	c puyo.Command
}

var keybindings = map[puyo.State][]keybinding{
	puyo.Title: {
		{r: ' ', c: puyo.ConfirmPrimary},
		{k: tcell.KeyEnter, c: puyo.ConfirmPrimary},
	},
	puyo.Playing: {
		{k: tcell.KeyLeft, c: puyo.MoveLeft},
		{r: 'h', c: puyo.MoveLeft},
		{k: tcell.KeyRight, c: puyo.MoveRight},
		{r: 'l', c: puyo.MoveRight},
		{k: tcell.KeyUp, c: puyo.RotateCW},
		{r: 'x', c: puyo.RotateCW},
		{r: 'z', c: puyo.RotateCCW},
		{k: tcell.KeyDown, c: puyo.SoftDropStart},
		{r: 'j', c: puyo.SoftDropStart},
		{r: ' ', c: puyo.HardDrop},
	},
	puyo.ContinuePrompt: {
		{k: tcell.KeyUp, c: puyo.ToggleChoice},
		{k: tcell.KeyDown, c: puyo.ToggleChoice},
		{k: tcell.KeyEnter, c: puyo.ConfirmPrimary},
		{r: ' ', c: puyo.ConfirmPrimary},
	},
}

// commandFor maps a key event to the command it means in state.
func commandFor(state puyo.State, k tcell.Key, r rune) (puyo.Command, bool) {
	for _, b := range keybindings[state] {
		if k == tcell.KeyRune {
			if b.r != 0 && b.r == r {
				return b.c, true
			}
			continue
		}
		if b.k != 0 && b.k == k {
			return b.c, true
		}
	}
	return 0, false
}

// softDrop synthesizes the release edge that terminals never deliver.
type softDrop struct {
	held  bool
	until time.Time
}

// press records a Down key at now. It reports whether a SoftDropStart must
// be sent, which is only on the first press of a hold.
func (s *softDrop) press(now time.Time) bool {
	s.until = now.Add(softDropHold)
	if s.held {
		return false
	}
	s.held = true
	return true
}

// expired reports whether the hold ran out at now, clearing it if so.
func (s *softDrop) expired(now time.Time) bool {
	if !s.held || now.Before(s.until) {
		return false
	}
	s.held = false
	return true
}

// reset forgets a hold without asking for a release.
func (s *softDrop) reset() {
	s.held = false
}
