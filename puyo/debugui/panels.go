package debugui

import "github.com/plus3/popdrop/puyo"

// Panels is the standard overlay for one session.
type Panels struct {
	Control     *Control
	Inspector   *SessionInspector
	Board       *BoardViewer
	Performance *PerformanceStats
	Events      *EventLog

	timer *FrameTimer
}

// Install creates the standard panels and adds their render functions to
// system. The caller registers system on the session and feeds drained
// events to Panels.Events.
func Install(system *ImguiSystem, session *puyo.Session) *Panels {
	p := &Panels{
		Control:     &Control{},
		Inspector:   NewSessionInspector(),
		Board:       NewBoardViewer(40),
		Performance: NewPerformanceStats(120),
		Events:      NewEventLog(200),
		timer:       NewFrameTimer(),
	}

	system.Add(p.Control.Render)
	system.Add(func() { p.Inspector.Render(session) })
	system.Add(func() { p.Board.Render(session) })
	system.Add(func() { p.Performance.Render(session.Scheduler(), p.timer.GetDeltaTime()) })
	system.Add(p.Events.Render)

	return p
}
