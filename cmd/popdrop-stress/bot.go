package main

import (
	"math/rand/v2"

	"github.com/plus3/popdrop/puyo"
)

// playingMoves are the commands the bot picks from while a piece is live.
// Soft drop start and stop are both listed so holds stay short.
var playingMoves = []puyo.Command{
	puyo.MoveLeft,
	puyo.MoveRight,
	puyo.MoveLeft,
	puyo.MoveRight,
	puyo.RotateCW,
	puyo.RotateCCW,
	puyo.SoftDropStart,
	puyo.SoftDropStop,
	puyo.HardDrop,
}

// bot presses random keys. It acts on average once every actEvery frames.
type bot struct {
	rng      *rand.Rand
	actEvery int
}

func newBot(seed uint64, actEvery int) *bot {
	return &bot{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)), actEvery: max(actEvery, 1)}
}

// next returns the command for this frame, if any.
// The title screen is always left straight away.
func (b *bot) next(state puyo.State) (puyo.Command, bool) {
	if state == puyo.Title {
		return puyo.ConfirmPrimary, true
	}
	if b.rng.IntN(b.actEvery) != 0 {
		return 0, false
	}

	switch state {
	case puyo.Playing:
		return playingMoves[b.rng.IntN(len(playingMoves))], true
	case puyo.ContinuePrompt:
		// Mostly wait; the countdown quits on its own.
		if b.rng.IntN(8) == 0 {
			return puyo.ConfirmPrimary, true
		}
		if b.rng.IntN(4) == 0 {
			return puyo.ToggleChoice, true
		}
	}
	return 0, false
}
