package puyo

import (
	"fmt"
	"strings"
)

// Board is the fixed-size playfield. The zero value is an empty board.
type Board struct {
	cells [Height][Width]Cell
}

// NewBoard returns an empty board.
func NewBoard() *Board {
	return &Board{}
}

// ParseBoard builds a board from text rows aligned to the bottom of the grid.
// Each row must be Width characters wide: '.' for empty, R B Y G P for a
// settled unit, lowercase letters for a clearing unit. Units receive IDs in
// row-major order starting at 1.
func ParseBoard(rows ...string) (*Board, error) {
	if len(rows) > Height {
		return nil, fmt.Errorf("puyo: layout has %d rows, board has %d", len(rows), Height)
	}

	b := NewBoard()
	next := UnitID(1)
	top := Height - len(rows)
	for i, row := range rows {
		runes := []rune(row)
		if len(runes) != Width {
			return nil, fmt.Errorf("puyo: layout row %d has width %d, want %d", i, len(runes), Width)
		}
		for x, r := range runes {
			if r == '.' {
				continue
			}
			color, ok := colorFromRune(r)
			if !ok {
				return nil, fmt.Errorf("puyo: layout row %d: unknown cell %q", i, r)
			}
			state := Settled
			if r >= 'a' && r <= 'z' {
				state = Clearing
			}
			b.cells[top+i][x] = Cell{State: state, Color: color, Unit: next}
			next++
		}
	}
	return b, nil
}

// MustParseBoard is like ParseBoard but panics on a malformed layout.
func MustParseBoard(rows ...string) *Board {
	b, err := ParseBoard(rows...)
	if err != nil {
		panic(err)
	}
	return b
}

// At returns the cell at p. Coordinates outside the grid read as empty.
func (b *Board) At(p Point) Cell {
	if !p.InBounds() {
		return Cell{}
	}
	return b.cells[p.Y][p.X]
}

// Place writes a settled unit into its cell. It is a no-op returning false
// when the coordinate is outside the grid or the cell is already occupied.
func (b *Board) Place(u Unit) bool {
	if !u.Pos.InBounds() {
		return false
	}
	if b.cells[u.Pos.Y][u.Pos.X].Occupied() {
		return false
	}
	b.cells[u.Pos.Y][u.Pos.X] = Cell{State: Settled, Color: u.Color, Unit: u.ID}
	return true
}

// Remove empties the cell at p and returns what was there.
func (b *Board) Remove(p Point) (Cell, bool) {
	if !p.InBounds() {
		return Cell{}, false
	}
	c := b.cells[p.Y][p.X]
	if !c.Occupied() {
		return Cell{}, false
	}
	b.cells[p.Y][p.X] = Cell{}
	return c, true
}

func (b *Board) mark(p Point) bool {
	if !p.InBounds() {
		return false
	}
	c := &b.cells[p.Y][p.X]
	if !c.Occupied() {
		return false
	}
	c.State = Clearing
	c.BlinkFrame = 0
	return true
}

func (b *Board) blink(p Point) {
	if !p.InBounds() {
		return
	}
	c := &b.cells[p.Y][p.X]
	if c.State == Clearing {
		c.BlinkFrame++
	}
}

// IsValidPosition reports whether both units of piece are inside the
// horizontal bounds, above the floor, and on passable cells. Units above
// row 0 are always valid.
func (b *Board) IsValidPosition(piece Piece) bool {
	for _, u := range piece.Units() {
		if u.Pos.X < 0 || u.Pos.X >= Width || u.Pos.Y >= Height {
			return false
		}
		if u.Pos.Y >= 0 && !b.cells[u.Pos.Y][u.Pos.X].Passable() {
			return false
		}
	}
	return true
}

// ApplyGravityStep compacts every column downward, keeping the relative
// order of the units in each column. It returns whether any unit moved.
func (b *Board) ApplyGravityStep() bool {
	return b.applyGravityStep(nil)
}

func (b *Board) applyGravityStep(moved func(Unit)) bool {
	shifted := false
	for x := 0; x < Width; x++ {
		dst := Height - 1
		for y := Height - 1; y >= 0; y-- {
			c := b.cells[y][x]
			if !c.Occupied() {
				continue
			}
			if y != dst {
				b.cells[dst][x] = c
				b.cells[y][x] = Cell{}
				shifted = true
				if moved != nil {
					moved(Unit{ID: c.Unit, Color: c.Color, Pos: Point{X: x, Y: dst}})
				}
			}
			dst--
		}
	}
	return shifted
}

// Settle applies gravity until nothing moves and returns the number of
// passes that moved at least one unit.
func (b *Board) Settle() int {
	passes := 0
	for b.ApplyGravityStep() {
		passes++
	}
	return passes
}

// IsSettled reports whether no occupied cell has an empty cell below it.
func (b *Board) IsSettled() bool {
	for x := 0; x < Width; x++ {
		seenEmpty := false
		for y := Height - 1; y >= 0; y-- {
			if !b.cells[y][x].Occupied() {
				seenEmpty = true
			} else if seenEmpty {
				return false
			}
		}
	}
	return true
}

// IsGameOver reports whether any cell in the top row is occupied.
func (b *Board) IsGameOver() bool {
	for x := 0; x < Width; x++ {
		if b.cells[0][x].Occupied() {
			return true
		}
	}
	return false
}

// Count returns the number of occupied cells.
func (b *Board) Count() int {
	n := 0
	for y := range b.cells {
		for x := range b.cells[y] {
			if b.cells[y][x].Occupied() {
				n++
			}
		}
	}
	return n
}

// ColumnHeight returns how many cells of column x are occupied.
func (b *Board) ColumnHeight(x int) int {
	if x < 0 || x >= Width {
		return 0
	}
	n := 0
	for y := 0; y < Height; y++ {
		if b.cells[y][x].Occupied() {
			n++
		}
	}
	return n
}

func (b *Board) maxUnitID() UnitID {
	var highest UnitID
	for y := range b.cells {
		for x := range b.cells[y] {
			if id := b.cells[y][x].Unit; id > highest {
				highest = id
			}
		}
	}
	return highest
}

// String renders the board in the layout accepted by ParseBoard.
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow(Height * (Width + 1))
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			c := b.cells[y][x]
			switch c.State {
			case Empty:
				sb.WriteByte('.')
			case Clearing:
				sb.WriteRune(c.Color.Rune() - 'A' + 'a')
			default:
				sb.WriteRune(c.Color.Rune())
			}
		}
		if y < Height-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
