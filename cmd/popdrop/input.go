package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/popdrop/puyo"
)

type keyEdge uint8

const (
	onPress keyEdge = iota
	onRelease
)

type keybinding struct {
	key  ebiten.Key
	edge keyEdge
	cmd  puyo.Command
}

// keybindings lists the keys honoured in each session state. The same key
// may mean different things in different states.
var keybindings = map[puyo.State][]keybinding{
	puyo.Title: {
		{ebiten.KeySpace, onPress, puyo.ConfirmPrimary},
		{ebiten.KeyEnter, onPress, puyo.ConfirmPrimary},
	},
	puyo.Playing: {
		{ebiten.KeyArrowLeft, onPress, puyo.MoveLeft},
		{ebiten.KeyArrowRight, onPress, puyo.MoveRight},
		{ebiten.KeyArrowUp, onPress, puyo.RotateCW},
		{ebiten.KeyX, onPress, puyo.RotateCW},
		{ebiten.KeyZ, onPress, puyo.RotateCCW},
		{ebiten.KeyArrowDown, onPress, puyo.SoftDropStart},
		{ebiten.KeyArrowDown, onRelease, puyo.SoftDropStop},
		{ebiten.KeySpace, onPress, puyo.HardDrop},
	},
	puyo.ContinuePrompt: {
		{ebiten.KeyArrowUp, onPress, puyo.ToggleChoice},
		{ebiten.KeyArrowDown, onPress, puyo.ToggleChoice},
		{ebiten.KeyEnter, onPress, puyo.ConfirmPrimary},
		{ebiten.KeySpace, onPress, puyo.ConfirmPrimary},
	},
}

// pollCommands decodes this frame's key edges for state. At most one command
// per binding is produced; a key that changes the state only fires the
// binding of the state it was pressed in.
func pollCommands(state puyo.State) []puyo.Command {
	var cmds []puyo.Command
	for _, b := range keybindings[state] {
		switch b.edge {
		case onPress:
			if inpututil.IsKeyJustPressed(b.key) {
				cmds = append(cmds, b.cmd)
			}
		case onRelease:
			if inpututil.IsKeyJustReleased(b.key) {
				cmds = append(cmds, b.cmd)
			}
		}
	}
	return cmds
}

// softDropHeld is consulted when a new piece spawns so that holding the
// key keeps dropping across pieces.
func softDropHeld() bool {
	return ebiten.IsKeyPressed(ebiten.KeyArrowDown)
}

func quitRequested(state puyo.State) bool {
	return state == puyo.Title && inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}
