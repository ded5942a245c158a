package puyo

import "fmt"

// Board dimensions. Row 0 is the top row.
const (
	Width  = 6
	Height = 14
)

// Color is the category of a unit. Units of the same color connect.
type Color uint8

const (
	Red Color = iota
	Blue
	Yellow
	Green
	Purple
)

// NumColors is the number of unit categories drawn at spawn time.
const NumColors = 5

var colorNames = [NumColors]string{"red", "blue", "yellow", "green", "purple"}

func (c Color) String() string {
	if int(c) < len(colorNames) {
		return colorNames[c]
	}
	return fmt.Sprintf("Color(%d)", uint8(c))
}

// Rune returns the single letter used for the color in board layouts.
func (c Color) Rune() rune {
	switch c {
	case Red:
		return 'R'
	case Blue:
		return 'B'
	case Yellow:
		return 'Y'
	case Green:
		return 'G'
	case Purple:
		return 'P'
	}
	return '?'
}

func colorFromRune(r rune) (Color, bool) {
	switch r {
	case 'R', 'r':
		return Red, true
	case 'B', 'b':
		return Blue, true
	case 'Y', 'y':
		return Yellow, true
	case 'G', 'g':
		return Green, true
	case 'P', 'p':
		return Purple, true
	}
	return 0, false
}

// UnitID identifies a unit for its whole lifetime, from spawn until it is cleared.
// Zero means "no unit".
type UnitID uint32

// Point is a grid coordinate.
type Point struct {
	X, Y int
}

func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// InBounds reports whether p lies inside the visible grid.
func (p Point) InBounds() bool {
	return p.X >= 0 && p.X < Width && p.Y >= 0 && p.Y < Height
}

// CellState is the tri-state of a grid cell.
type CellState uint8

const (
	Empty CellState = iota
	Settled
	// Clearing cells belong to a group that is blinking before removal.
	// They still occupy the grid but a falling piece may pass through them.
	Clearing
)

func (s CellState) String() string {
	switch s {
	case Empty:
		return "empty"
	case Settled:
		return "settled"
	case Clearing:
		return "clearing"
	}
	return fmt.Sprintf("CellState(%d)", uint8(s))
}

// Cell is one grid slot.
type Cell struct {
	State      CellState
	Color      Color
	Unit       UnitID
	BlinkFrame int
}

func (c Cell) Occupied() bool {
	return c.State != Empty
}

// Passable reports whether a falling unit may occupy the cell.
func (c Cell) Passable() bool {
	switch c.State {
	case Empty, Clearing:
		return true
	default:
		return false
	}
}

// Visible reports whether a renderer should draw the cell this frame.
// Clearing cells alternate every three blink frames, starting hidden.
func (c Cell) Visible() bool {
	switch c.State {
	case Empty:
		return false
	case Clearing:
		return (c.BlinkFrame/3)%2 != 0
	default:
		return true
	}
}

// Unit is a single colored piece-unit, either falling or placed.
type Unit struct {
	ID    UnitID
	Color Color
	Pos   Point
}
