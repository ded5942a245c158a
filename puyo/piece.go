package puyo

import (
	"fmt"
	"time"
)

// Orientation is the position of the sub unit relative to the main unit.
type Orientation uint8

const (
	SubBelow Orientation = iota
	SubRight
	SubAbove
	SubLeft
)

var orientationOffsets = [4]Point{
	SubBelow: {0, 1},
	SubRight: {1, 0},
	SubAbove: {0, -1},
	SubLeft:  {-1, 0},
}

// Offset is the sub unit's displacement from the main unit.
func (o Orientation) Offset() Point {
	return orientationOffsets[o%4]
}

func (o Orientation) String() string {
	switch o % 4 {
	case SubBelow:
		return "below"
	case SubRight:
		return "right"
	case SubAbove:
		return "above"
	default:
		return "left"
	}
}

// Rotation is a rotation direction.
type Rotation uint8

const (
	Clockwise Rotation = iota
	CounterClockwise
)

// Next returns the orientation reached by rotating once in direction r.
// Clockwise cycles below, right, above, left.
func (o Orientation) Next(r Rotation) Orientation {
	if r == CounterClockwise {
		return (o + 3) % 4
	}
	return (o + 1) % 4
}

// SpawnPoint is where the main unit of a promoted piece appears.
var SpawnPoint = Point{X: Width / 2, Y: 0}

// Piece is the falling pair under player control.
type Piece struct {
	Main        Unit
	Sub         Unit
	Orientation Orientation

	fastDrop     bool
	lastFastDrop time.Duration
}

// NewPiece returns a pair at the spawn point with the sub unit below the main unit.
func NewPiece(main, sub Unit) Piece {
	p := Piece{Main: main, Sub: sub, Orientation: SubBelow}
	p.Main.Pos = SpawnPoint
	p.Sub.Pos = SpawnPoint.Add(SubBelow.Offset())
	return p
}

func (p Piece) Units() [2]Unit {
	return [2]Unit{p.Main, p.Sub}
}

// Consistent reports whether the sub unit sits where the orientation says.
func (p Piece) Consistent() bool {
	return p.Sub.Pos == p.Main.Pos.Add(p.Orientation.Offset())
}

func (p Piece) String() string {
	return fmt.Sprintf("%s@%d,%d+%s(%s)", p.Main.Color, p.Main.Pos.X, p.Main.Pos.Y, p.Sub.Color, p.Orientation)
}

func (p *Piece) translate(d Point) {
	p.Main.Pos = p.Main.Pos.Add(d)
	p.Sub.Pos = p.Sub.Pos.Add(d)
}

// MoveHorizontal shifts the piece one column in the sign of dir. A move into
// an invalid position is reverted and reported as false.
func (p *Piece) MoveHorizontal(b *Board, dir int) bool {
	d := Point{X: 1}
	if dir < 0 {
		d.X = -1
	}
	p.translate(d)
	if !b.IsValidPosition(*p) {
		p.translate(Point{X: -d.X})
		return false
	}
	return true
}

// MoveDown shifts the piece one row down. False means the piece cannot
// descend further and should be locked.
func (p *Piece) MoveDown(b *Board) bool {
	p.translate(Point{Y: 1})
	if !b.IsValidPosition(*p) {
		p.translate(Point{Y: -1})
		return false
	}
	return true
}

// Rotate turns the sub unit around the main unit. An out-of-bounds result
// is kicked one cell back toward the grid along the violated axis; if the
// kicked position is still invalid the whole rotation is rejected and the
// piece is left exactly as it was.
func (p *Piece) Rotate(b *Board, r Rotation) bool {
	orig := *p

	p.Orientation = p.Orientation.Next(r)
	p.Sub.Pos = p.Main.Pos.Add(p.Orientation.Offset())
	if b.IsValidPosition(*p) {
		return true
	}

	switch {
	case p.Sub.Pos.X < 0:
		p.translate(Point{X: 1})
	case p.Sub.Pos.X >= Width:
		p.translate(Point{X: -1})
	case p.Sub.Pos.Y < 0:
		p.translate(Point{Y: 1})
	case p.Sub.Pos.Y >= Height:
		p.translate(Point{Y: -1})
	}

	if !b.IsValidPosition(*p) {
		*p = orig
		return false
	}
	return true
}

// HardDrop moves the piece down until it rests and returns the rows travelled.
func (p *Piece) HardDrop(b *Board) int {
	n := 0
	for p.MoveDown(b) {
		n++
	}
	return n
}

// Ghost returns the piece translated to where a hard drop would leave it.
func (p Piece) Ghost(b *Board) Piece {
	ghost := p
	ghost.HardDrop(b)
	return ghost
}

// StartFastDrop raises the soft-drop flag. It does not move the piece.
func (p *Piece) StartFastDrop() {
	p.fastDrop = true
}

func (p *Piece) StopFastDrop() {
	p.fastDrop = false
}

func (p Piece) FastDropping() bool {
	return p.fastDrop
}
