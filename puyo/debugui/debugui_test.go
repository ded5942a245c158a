package debugui

import (
	"reflect"
	"testing"
	"time"

	"github.com/plus3/popdrop/puyo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectUnits(t *testing.T) {
	b := puyo.MustParseBoard(
		"..y...",
		"RB....",
	)

	units := collectUnits(b, func(id puyo.UnitID) (float64, bool) {
		if id == 3 {
			return 0.25, true
		}
		return 0, false
	})

	require.Len(t, units, 3)
	assert.Equal(t, UnitInfo{ID: 1, Color: puyo.Yellow, State: puyo.Clearing, Pos: puyo.Point{X: 2, Y: 12}}, units[0])
	assert.Equal(t, puyo.Red, units[1].Color)
	assert.False(t, units[1].Wobbling)
	assert.True(t, units[2].Wobbling)
	assert.Equal(t, 0.25, units[2].Wobble)

	assert.Len(t, collectUnits(b, nil), 3)
}

func TestSortAndFilterUnits(t *testing.T) {
	b := puyo.MustParseBoard(
		"P.....",
		"RbY...",
	)
	units := collectUnits(b, nil)

	sortUnits(units, sortByColor, true)
	var colors []puyo.Color
	for _, u := range units {
		colors = append(colors, u.Color)
	}
	assert.Equal(t, []puyo.Color{puyo.Red, puyo.Blue, puyo.Yellow, puyo.Purple}, colors)

	sortUnits(units, sortByID, false)
	assert.Equal(t, puyo.UnitID(4), units[0].ID)

	sortUnits(units, sortByPosition, true)
	assert.Equal(t, puyo.Point{X: 0, Y: 12}, units[0].Pos)

	assert.Len(t, filterUnits(units, ""), 4)
	assert.Len(t, filterUnits(units, "clearing"), 1)
	assert.Len(t, filterUnits(units, "PURPLE"), 1)
	assert.Len(t, filterUnits(units, "3"), 1)
}

func TestEventLog(t *testing.T) {
	log := NewEventLog(3)

	log.Push(
		puyo.Event{Kind: puyo.EventSpawned},
		puyo.Event{Kind: puyo.EventLocked, Units: 2},
	)
	log.Push(
		puyo.Event{Kind: puyo.EventSpawned},
		puyo.Event{Kind: puyo.EventCleared, Points: 40},
	)

	require.Len(t, log.Visible(), 3)
	assert.Equal(t, puyo.EventLocked, log.Visible()[0].Kind, "oldest event dropped")

	log.SetHidden(puyo.EventSpawned, true)
	assert.Len(t, log.Visible(), 2)

	log.SetHidden(puyo.EventSpawned, false)
	assert.Len(t, log.Visible(), 3)

	assert.Equal(t, "chain 1, 4 units, +40", eventDetails(puyo.Event{Kind: puyo.EventCleared, Chain: 1, Units: 4, Points: 40}))
}

func TestControlTick(t *testing.T) {
	var c Control
	assert.True(t, c.Tick())

	c.Paused = true
	assert.False(t, c.Tick())

	c.Step(2)
	assert.True(t, c.Tick())
	assert.True(t, c.Tick())
	assert.False(t, c.Tick())

	c.Step(-4)
	assert.False(t, c.Tick())
}

func TestControlHalted(t *testing.T) {
	var c Control
	assert.False(t, c.Halted())

	c.Paused = true
	assert.True(t, c.Halted())

	c.Step(1)
	assert.False(t, c.Halted(), "a pending step lets input through")
	assert.True(t, c.Tick())
	assert.True(t, c.Halted())

	c.Paused = false
	assert.False(t, c.Halted())
}

func TestPerformanceStatsAverage(t *testing.T) {
	ps := NewPerformanceStats(4)
	assert.Zero(t, ps.AverageFrameTime())

	ps.Record(0.010)
	ps.Record(0.020)
	assert.InDelta(t, 15.0, ps.AverageFrameTime(), 1e-3)

	for i := 0; i < 10; i++ {
		ps.Record(0.016)
	}
	assert.InDelta(t, 16.0, ps.AverageFrameTime(), 1e-3)
}

func TestInspectorFields(t *testing.T) {
	fields := inspectorFields.get(reflect.TypeOf(puyo.SessionStats{}))

	var names []string
	for _, f := range fields {
		names = append(names, f.Name)
		assert.False(t, f.Nested)
	}
	assert.Contains(t, names, "Score")
	assert.Contains(t, names, "ChainBonus")

	assert.Equal(t, "500ms", formatValue(reflect.ValueOf(500*time.Millisecond)))
	assert.Equal(t, "green", formatValue(reflect.ValueOf(puyo.Green)))
	assert.Equal(t, "0.500", formatValue(reflect.ValueOf(0.5)))
	assert.Equal(t, "[2 items]", formatValue(reflect.ValueOf([]int{1, 2})))
	assert.Equal(t, "<invalid>", formatValue(reflect.Value{}))
}
