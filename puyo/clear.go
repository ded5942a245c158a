package puyo

// ChainBonusPerWave is the display-only bonus figure per chain wave.
const ChainBonusPerWave = 50

// ScoreGroup returns the points for a group of size units cleared in the
// chain-th wave (1-indexed): floor(size * 10 * (1 + (chain-1) * 0.5)).
func ScoreGroup(size, chain int) int {
	if chain < 1 {
		chain = 1
	}
	// size*10*(1+(chain-1)/2) == size*5*(chain+1), exact in integers.
	return size * 5 * (chain + 1)
}

// ChainState tracks chain progress across waves.
type ChainState struct {
	// Count is the current wave number, 0 when no chain is running.
	Count int
	// Max is the session high-water mark of Count.
	Max int
	// TotalCleared counts every unit marked for clearing.
	TotalCleared int
}

// Resolution is the outcome of removing one wave's groups.
type Resolution struct {
	Chain   int
	Points  int
	Cleared int
	Pops    []PopEffect
	// Removed lists the IDs of the units taken off the board.
	Removed []UnitID
}

// ClearEngine marks, blinks and removes clearable groups one wave at a time.
type ClearEngine struct {
	blinkFrames int
	popFrames   int

	chain  ChainState
	groups []Group
	frame  int
}

func NewClearEngine(blinkFrames, popFrames int) *ClearEngine {
	return &ClearEngine{blinkFrames: blinkFrames, popFrames: popFrames}
}

// Detect scans a settled board for clearable groups.
func (e *ClearEngine) Detect(b *Board) []Group {
	return b.FindConnectedGroups()
}

// Mark flags every cell of groups as clearing and opens a new wave. It
// returns false and leaves the board untouched when groups is empty.
func (e *ClearEngine) Mark(b *Board, groups []Group) bool {
	if len(groups) == 0 {
		return false
	}

	total := 0
	for _, g := range groups {
		for _, p := range g.Cells {
			if b.mark(p) {
				total++
			}
		}
	}

	e.groups = groups
	e.frame = 0
	e.chain.Count++
	e.chain.Max = max(e.chain.Max, e.chain.Count)
	e.chain.TotalCleared += total
	return true
}

// Blinking reports whether a marked wave is waiting for removal.
func (e *ClearEngine) Blinking() bool {
	return len(e.groups) > 0
}

// Blink advances the blink animation by one frame and reports whether the
// wave has blinked long enough to be resolved.
func (e *ClearEngine) Blink(b *Board) bool {
	if len(e.groups) == 0 {
		return false
	}
	for _, g := range e.groups {
		for _, p := range g.Cells {
			b.blink(p)
		}
	}
	e.frame++
	return e.frame >= e.blinkFrames
}

// Resolve scores and removes the marked groups. Each removed unit yields a
// pop effect. The board is left unsettled; the caller applies gravity.
func (e *ClearEngine) Resolve(b *Board) Resolution {
	res := Resolution{Chain: e.chain.Count}
	for _, g := range e.groups {
		res.Points += ScoreGroup(g.Size(), e.chain.Count)
		for _, p := range g.Cells {
			cell, ok := b.Remove(p)
			if !ok {
				continue
			}
			res.Cleared++
			res.Removed = append(res.Removed, cell.Unit)
			res.Pops = append(res.Pops, PopEffect{Color: cell.Color, Origin: p, Frames: e.popFrames})
		}
	}
	e.groups = nil
	e.frame = 0
	return res
}

// End closes the chain; the next lock starts again from wave 1.
func (e *ClearEngine) End() {
	e.chain.Count = 0
	e.groups = nil
	e.frame = 0
}

// Reset clears all chain statistics for a new game.
func (e *ClearEngine) Reset() {
	e.End()
	e.chain = ChainState{}
}

func (e *ClearEngine) Chain() ChainState {
	return e.chain
}

// Groups returns the groups of the wave currently blinking.
func (e *ClearEngine) Groups() []Group {
	return e.groups
}

// Frame is the number of blink frames elapsed in the current wave.
func (e *ClearEngine) Frame() int {
	return e.frame
}
