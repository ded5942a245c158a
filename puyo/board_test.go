package puyo_test

import (
	"testing"

	"github.com/plus3/popdrop/puyo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlace(t *testing.T) {
	b := puyo.NewBoard()

	assert.True(t, b.Place(puyo.Unit{ID: 1, Color: puyo.Red, Pos: puyo.Point{X: 2, Y: 13}}))
	cell := b.At(puyo.Point{X: 2, Y: 13})
	assert.Equal(t, puyo.Settled, cell.State)
	assert.Equal(t, puyo.Red, cell.Color)
	assert.Equal(t, puyo.UnitID(1), cell.Unit)

	// An occupied cell is never overwritten
	assert.False(t, b.Place(puyo.Unit{ID: 2, Color: puyo.Blue, Pos: puyo.Point{X: 2, Y: 13}}))
	assert.Equal(t, puyo.Red, b.At(puyo.Point{X: 2, Y: 13}).Color)

	// Units in the spawn buffer are dropped
	assert.False(t, b.Place(puyo.Unit{ID: 3, Color: puyo.Blue, Pos: puyo.Point{X: 2, Y: -1}}))
	assert.False(t, b.Place(puyo.Unit{ID: 4, Color: puyo.Blue, Pos: puyo.Point{X: puyo.Width, Y: 5}}))
	assert.Equal(t, 1, b.Count())
}

func TestRemove(t *testing.T) {
	b := puyo.MustParseBoard("G.....")

	cell, ok := b.Remove(puyo.Point{X: 0, Y: 13})
	assert.True(t, ok)
	assert.Equal(t, puyo.Green, cell.Color)
	assert.Equal(t, 0, b.Count())

	_, ok = b.Remove(puyo.Point{X: 0, Y: 13})
	assert.False(t, ok)
	_, ok = b.Remove(puyo.Point{X: -1, Y: 0})
	assert.False(t, ok)
}

func TestIsValidPosition(t *testing.T) {
	b := puyo.MustParseBoard(
		"r.....",
		"R.....",
	)

	at := func(mx, my int, o puyo.Orientation) puyo.Piece {
		p := puyo.Piece{Orientation: o}
		p.Main.Pos = puyo.Point{X: mx, Y: my}
		p.Sub.Pos = p.Main.Pos.Add(o.Offset())
		return p
	}

	tests := []struct {
		name  string
		piece puyo.Piece
		want  bool
	}{
		{"open space", at(3, 5, puyo.SubBelow), true},
		{"above the top row", at(3, -2, puyo.SubBelow), true},
		{"left wall", at(0, 5, puyo.SubLeft), false},
		{"right wall", at(puyo.Width-1, 5, puyo.SubRight), false},
		{"floor", at(3, puyo.Height-1, puyo.SubBelow), false},
		{"settled cell", at(0, 12, puyo.SubBelow), false},
		{"clearing cell is passable", at(0, 11, puyo.SubBelow), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, b.IsValidPosition(tt.piece))
		})
	}
}

func TestApplyGravityStepKeepsColumnOrder(t *testing.T) {
	b := puyo.MustParseBoard(
		"R.....",
		"......",
		"B..Y..",
		"......",
		"G.....",
		"......",
	)

	assert.True(t, b.ApplyGravityStep())
	assert.False(t, b.ApplyGravityStep(), "a compacted board must not move again")

	assert.Equal(t, puyo.Green, b.At(puyo.Point{X: 0, Y: 13}).Color)
	assert.Equal(t, puyo.Blue, b.At(puyo.Point{X: 0, Y: 12}).Color)
	assert.Equal(t, puyo.Red, b.At(puyo.Point{X: 0, Y: 11}).Color)
	assert.Equal(t, puyo.Yellow, b.At(puyo.Point{X: 3, Y: 13}).Color)
	assert.Equal(t, 4, b.Count())
	assert.True(t, b.IsSettled())
}

func TestSettleIsIdempotent(t *testing.T) {
	layouts := [][]string{
		{"......"},
		{"RBYGPR"},
		{"R.B...", "......", ".Y..G.", "P....."},
		{"R.....", "B.....", "......", "......", "Y....G", ".P..P."},
	}

	for _, rows := range layouts {
		b := puyo.MustParseBoard(rows...)
		before := b.Count()

		b.Settle()
		settled := b.String()

		assert.True(t, b.IsSettled())
		assert.Equal(t, before, b.Count())
		assert.Equal(t, 0, b.Settle())
		assert.Equal(t, settled, b.String())
	}
}

func TestColumnHeight(t *testing.T) {
	b := puyo.MustParseBoard(
		"R.....",
		"B..y..",
		"G..Y.P",
	)

	assert.Equal(t, []int{3, 0, 0, 2, 0, 1}, []int{
		b.ColumnHeight(0), b.ColumnHeight(1), b.ColumnHeight(2),
		b.ColumnHeight(3), b.ColumnHeight(4), b.ColumnHeight(5),
	})
	assert.Equal(t, 0, b.ColumnHeight(-1))
	assert.Equal(t, 0, b.ColumnHeight(puyo.Width))
}

func TestIsGameOver(t *testing.T) {
	b := puyo.NewBoard()
	assert.False(t, b.IsGameOver())

	b.Place(puyo.Unit{ID: 1, Color: puyo.Purple, Pos: puyo.Point{X: 5, Y: 1}})
	assert.False(t, b.IsGameOver())

	b.Place(puyo.Unit{ID: 2, Color: puyo.Purple, Pos: puyo.Point{X: 5, Y: 0}})
	assert.True(t, b.IsGameOver())
}

func TestParseBoard(t *testing.T) {
	b, err := puyo.ParseBoard("RByg.P")
	require.NoError(t, err)

	assert.Equal(t, puyo.Settled, b.At(puyo.Point{X: 1, Y: 13}).State)
	assert.Equal(t, puyo.Clearing, b.At(puyo.Point{X: 2, Y: 13}).State)
	assert.Equal(t, puyo.Empty, b.At(puyo.Point{X: 4, Y: 13}).State)
	assert.Equal(t, puyo.UnitID(5), b.At(puyo.Point{X: 5, Y: 13}).Unit)

	lines := b.String()
	assert.Contains(t, lines, "RByg.P")

	_, err = puyo.ParseBoard("RR")
	assert.Error(t, err)

	_, err = puyo.ParseBoard("RRXRRR")
	assert.Error(t, err)

	tooTall := make([]string, puyo.Height+1)
	for i := range tooTall {
		tooTall[i] = "......"
	}
	_, err = puyo.ParseBoard(tooTall...)
	assert.Error(t, err)
}

func TestCellVisibility(t *testing.T) {
	assert.False(t, puyo.Cell{}.Visible())
	assert.True(t, puyo.Cell{State: puyo.Settled}.Visible())

	var shown []bool
	for frame := 0; frame < 12; frame++ {
		shown = append(shown, puyo.Cell{State: puyo.Clearing, BlinkFrame: frame}.Visible())
	}
	assert.Equal(t, []bool{
		false, false, false, true, true, true,
		false, false, false, true, true, true,
	}, shown)
}
