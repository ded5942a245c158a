package puyo

import (
	"fmt"
	"time"
)

// EventKind classifies a game-domain outcome.
type EventKind uint8

const (
	EventSpawned EventKind = iota
	EventLocked
	EventMoveRejected
	EventRotationRejected
	EventChainStarted
	EventCleared
	EventLevelUp
	EventGameOver
	EventStateChanged
)

var eventNames = [...]string{
	EventSpawned:          "spawned",
	EventLocked:           "locked",
	EventMoveRejected:     "move-rejected",
	EventRotationRejected: "rotation-rejected",
	EventChainStarted:     "chain-started",
	EventCleared:          "cleared",
	EventLevelUp:          "level-up",
	EventGameOver:         "game-over",
	EventStateChanged:     "state-changed",
}

func (k EventKind) String() string {
	if int(k) < len(eventNames) {
		return eventNames[k]
	}
	return fmt.Sprintf("EventKind(%d)", uint8(k))
}

// Event is emitted by the session for front-ends (sound cues, banners, logs).
// Only the fields relevant to Kind are set.
type Event struct {
	Kind   EventKind
	At     time.Duration
	Chain  int
	Units  int
	Points int
	Level  int
	State  State
}

func (e Event) String() string {
	switch e.Kind {
	case EventChainStarted:
		return fmt.Sprintf("%s %s chain=%d units=%d", e.At, e.Kind, e.Chain, e.Units)
	case EventCleared:
		return fmt.Sprintf("%s %s chain=%d units=%d points=%d", e.At, e.Kind, e.Chain, e.Units, e.Points)
	case EventLevelUp:
		return fmt.Sprintf("%s %s level=%d", e.At, e.Kind, e.Level)
	case EventStateChanged:
		return fmt.Sprintf("%s %s state=%s", e.At, e.Kind, e.State)
	case EventLocked:
		return fmt.Sprintf("%s %s units=%d", e.At, e.Kind, e.Units)
	}
	return fmt.Sprintf("%s %s", e.At, e.Kind)
}
