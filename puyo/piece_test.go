package puyo_test

import (
	"testing"

	"github.com/plus3/popdrop/puyo"
	"github.com/stretchr/testify/assert"
)

func pieceAt(x, y int, o puyo.Orientation) puyo.Piece {
	p := puyo.NewPiece(
		puyo.Unit{ID: 1, Color: puyo.Red},
		puyo.Unit{ID: 2, Color: puyo.Blue},
	)
	p.Orientation = o
	p.Main.Pos = puyo.Point{X: x, Y: y}
	p.Sub.Pos = p.Main.Pos.Add(o.Offset())
	return p
}

func TestNewPiece(t *testing.T) {
	p := puyo.NewPiece(puyo.Unit{ID: 7, Color: puyo.Green}, puyo.Unit{ID: 8, Color: puyo.Yellow})

	assert.Equal(t, puyo.SpawnPoint, p.Main.Pos)
	assert.Equal(t, puyo.Point{X: puyo.Width / 2, Y: 1}, p.Sub.Pos)
	assert.Equal(t, puyo.SubBelow, p.Orientation)
	assert.True(t, p.Consistent())
	assert.False(t, p.FastDropping())
}

func TestMoveHorizontal(t *testing.T) {
	b := puyo.NewBoard()
	p := pieceAt(3, 5, puyo.SubBelow)

	assert.True(t, p.MoveHorizontal(b, 1))
	assert.True(t, p.MoveHorizontal(b, 1))
	assert.False(t, p.MoveHorizontal(b, 1), "right wall")
	assert.Equal(t, puyo.Width-1, p.Main.Pos.X)

	for i := 0; i < puyo.Width-1; i++ {
		assert.True(t, p.MoveHorizontal(b, -1))
	}
	assert.False(t, p.MoveHorizontal(b, -1), "left wall")
	assert.Equal(t, 0, p.Main.Pos.X)
	assert.True(t, p.Consistent())
}

func TestMoveHorizontalBlockedByStack(t *testing.T) {
	b := puyo.MustParseBoard("....G.")
	p := pieceAt(3, 12, puyo.SubBelow)

	assert.False(t, p.MoveHorizontal(b, 1))
	assert.Equal(t, puyo.Point{X: 3, Y: 12}, p.Main.Pos)
	assert.Equal(t, puyo.Point{X: 3, Y: 13}, p.Sub.Pos)
}

func TestMoveDown(t *testing.T) {
	b := puyo.NewBoard()
	p := pieceAt(2, 11, puyo.SubBelow)

	assert.True(t, p.MoveDown(b))
	assert.False(t, p.MoveDown(b))
	assert.Equal(t, puyo.Height-1, p.Sub.Pos.Y)
}

func TestRotateFullTurn(t *testing.T) {
	b := puyo.NewBoard()
	p := pieceAt(3, 6, puyo.SubBelow)
	orig := p

	var seen []puyo.Orientation
	for i := 0; i < 4; i++ {
		assert.True(t, p.Rotate(b, puyo.Clockwise))
		assert.True(t, p.Consistent())
		seen = append(seen, p.Orientation)
	}
	assert.Equal(t, []puyo.Orientation{puyo.SubRight, puyo.SubAbove, puyo.SubLeft, puyo.SubBelow}, seen)
	assert.Equal(t, orig, p)

	for i := 0; i < 4; i++ {
		assert.True(t, p.Rotate(b, puyo.CounterClockwise))
	}
	assert.Equal(t, orig, p)
}

func TestRotateWallKicks(t *testing.T) {
	tests := []struct {
		name     string
		piece    puyo.Piece
		rotation puyo.Rotation
		wantMain puyo.Point
		wantO    puyo.Orientation
	}{
		{
			name:     "left wall kicks right",
			piece:    pieceAt(0, 6, puyo.SubAbove),
			rotation: puyo.Clockwise,
			wantMain: puyo.Point{X: 1, Y: 6},
			wantO:    puyo.SubLeft,
		},
		{
			name:     "right wall kicks left",
			piece:    pieceAt(puyo.Width-1, 6, puyo.SubBelow),
			rotation: puyo.Clockwise,
			wantMain: puyo.Point{X: puyo.Width - 2, Y: 6},
			wantO:    puyo.SubRight,
		},
		{
			name:     "floor kicks up",
			piece:    pieceAt(3, puyo.Height-1, puyo.SubLeft),
			rotation: puyo.Clockwise,
			wantMain: puyo.Point{X: 3, Y: puyo.Height - 2},
			wantO:    puyo.SubBelow,
		},
		{
			name:     "sub hanging off the left wall swings below",
			piece:    pieceAt(0, 6, puyo.SubLeft),
			rotation: puyo.Clockwise,
			wantMain: puyo.Point{X: 0, Y: 6},
			wantO:    puyo.SubBelow,
		},
		{
			name:     "no kick needed",
			piece:    pieceAt(1, 6, puyo.SubLeft),
			rotation: puyo.Clockwise,
			wantMain: puyo.Point{X: 1, Y: 6},
			wantO:    puyo.SubBelow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := puyo.NewBoard()
			p := tt.piece

			assert.True(t, p.Rotate(b, tt.rotation))
			assert.Equal(t, tt.wantMain, p.Main.Pos)
			assert.Equal(t, tt.wantO, p.Orientation)
			assert.True(t, p.Consistent())
			for _, u := range p.Units() {
				assert.True(t, u.Pos.InBounds(), "unit left the board at %v", u.Pos)
			}
		})
	}
}

func TestRotateRejectedLeavesPieceUntouched(t *testing.T) {
	b := puyo.MustParseBoard(
		".R....",
		"......",
		"......",
		"......",
	)

	for _, r := range []puyo.Rotation{puyo.Clockwise, puyo.CounterClockwise} {
		p := pieceAt(0, 10, puyo.SubAbove)
		orig := p

		assert.False(t, p.Rotate(b, r))
		assert.Equal(t, orig, p)
	}
}

func TestHardDropAndGhost(t *testing.T) {
	b := puyo.MustParseBoard("...Y..")
	p := pieceAt(3, 0, puyo.SubBelow)

	ghost := p.Ghost(b)
	assert.Equal(t, puyo.Point{X: 3, Y: 0}, p.Main.Pos, "ghost must not move the piece")
	assert.Equal(t, puyo.Point{X: 3, Y: 12}, ghost.Sub.Pos)

	rows := p.HardDrop(b)
	assert.Equal(t, 11, rows)
	assert.Equal(t, ghost.Main.Pos, p.Main.Pos)
	assert.Equal(t, 0, p.HardDrop(b))
}

func TestFastDropFlag(t *testing.T) {
	b := puyo.NewBoard()
	p := pieceAt(3, 4, puyo.SubBelow)

	p.StartFastDrop()
	assert.True(t, p.FastDropping())
	assert.Equal(t, puyo.Point{X: 3, Y: 4}, p.Main.Pos, "raising the flag does not move the piece")

	p.StopFastDrop()
	assert.False(t, p.FastDropping())
	assert.True(t, b.IsValidPosition(p))
}
