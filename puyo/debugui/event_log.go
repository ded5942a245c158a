package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/popdrop/puyo"
)

var eventKinds = []puyo.EventKind{
	puyo.EventSpawned,
	puyo.EventLocked,
	puyo.EventMoveRejected,
	puyo.EventRotationRejected,
	puyo.EventChainStarted,
	puyo.EventCleared,
	puyo.EventLevelUp,
	puyo.EventGameOver,
	puyo.EventStateChanged,
}

// EventLog keeps the most recent session events and lets the user hide
// kinds they are not interested in.
type EventLog struct {
	capacity int
	events   []puyo.Event
	hidden   map[puyo.EventKind]bool
}

func NewEventLog(capacity int) *EventLog {
	return &EventLog{
		capacity: max(1, capacity),
		hidden:   make(map[puyo.EventKind]bool),
	}
}

// Push appends events, dropping the oldest beyond capacity.
func (el *EventLog) Push(events ...puyo.Event) {
	el.events = append(el.events, events...)
	if over := len(el.events) - el.capacity; over > 0 {
		el.events = append(el.events[:0], el.events[over:]...)
	}
}

func (el *EventLog) SetHidden(kind puyo.EventKind, hidden bool) {
	if hidden {
		el.hidden[kind] = true
	} else {
		delete(el.hidden, kind)
	}
}

// Visible returns the retained events whose kind is not hidden, oldest first.
func (el *EventLog) Visible() []puyo.Event {
	if len(el.hidden) == 0 {
		return el.events
	}

	visible := make([]puyo.Event, 0, len(el.events))
	for _, e := range el.events {
		if !el.hidden[e.Kind] {
			visible = append(visible, e)
		}
	}
	return visible
}

func (el *EventLog) Render() {
	if !imgui.BeginV("Event Log", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	if imgui.Button("Clear") {
		el.events = el.events[:0]
	}
	imgui.SameLine()
	if imgui.Button("Show All") {
		el.hidden = make(map[puyo.EventKind]bool)
	}

	if imgui.TreeNodeStr("Kinds") {
		for _, kind := range eventKinds {
			shown := !el.hidden[kind]
			if imgui.Checkbox(kind.String(), &shown) {
				el.SetHidden(kind, !shown)
			}
		}
		imgui.TreePop()
	}

	imgui.Separator()

	visible := el.Visible()
	imgui.Text(fmt.Sprintf("Showing %d of %d", len(visible), len(el.events)))

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsScrollY
	if imgui.BeginTableV("EventTable", 3, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("At")
		imgui.TableSetupColumn("Kind")
		imgui.TableSetupColumn("Details")
		imgui.TableHeadersRow()

		for i := len(visible) - 1; i >= 0; i-- {
			e := visible[i]
			imgui.TableNextRow()
			imgui.TableSetColumnIndex(0)
			imgui.Text(e.At.String())
			imgui.TableSetColumnIndex(1)
			imgui.Text(e.Kind.String())
			imgui.TableSetColumnIndex(2)
			imgui.Text(eventDetails(e))
		}

		imgui.EndTable()
	}

	imgui.End()
}

func eventDetails(e puyo.Event) string {
	switch e.Kind {
	case puyo.EventChainStarted:
		return fmt.Sprintf("chain %d, %d units", e.Chain, e.Units)
	case puyo.EventCleared:
		return fmt.Sprintf("chain %d, %d units, +%d", e.Chain, e.Units, e.Points)
	case puyo.EventLocked:
		return fmt.Sprintf("%d units", e.Units)
	case puyo.EventLevelUp:
		return fmt.Sprintf("level %d", e.Level)
	case puyo.EventStateChanged:
		return e.State.String()
	}
	return ""
}
