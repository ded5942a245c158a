package puyo_test

import (
	"context"
	"testing"
	"time"

	"github.com/plus3/popdrop/puyo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSystem struct {
	log    *[]string
	label  string
	frames []float64
}

func (r *recordingSystem) Execute(frame *puyo.UpdateFrame) {
	*r.log = append(*r.log, r.label)
	r.frames = append(r.frames, frame.DeltaTime)
}

type emittingSystem struct {
	drained [][]puyo.Event
}

func (e *emittingSystem) Execute(frame *puyo.UpdateFrame) {
	frame.Deferred.Emit(puyo.Event{Kind: puyo.EventLevelUp, At: frame.Now, Level: 9})
	frame.Deferred.Defer(func() {
		e.drained = append(e.drained, frame.Session.DrainEvents())
	})
}

func TestSchedulerRunsSystemsInOrder(t *testing.T) {
	s := puyo.NewSession(puyo.WithSeed(1))

	var log []string
	first := &recordingSystem{log: &log, label: "first"}
	second := &recordingSystem{log: &log, label: "second"}
	s.Register(first)
	s.Register(second)

	s.Update(0.5)
	s.Update(0.25)

	assert.Equal(t, []string{"first", "second", "first", "second"}, log)
	assert.Equal(t, []float64{0.5, 0.25}, first.frames)
	assert.Equal(t, 750*time.Millisecond, s.Now())
}

func TestSchedulerStats(t *testing.T) {
	s := puyo.NewSession(puyo.WithSeed(1))
	var log []string
	s.Register(&recordingSystem{log: &log})

	step(s, 3)

	stats := s.Scheduler().GetStats()
	require.Equal(t, 6, stats.SystemCount)
	assert.Equal(t, int64(18), stats.TotalExecutions)

	var names []string
	for _, sys := range stats.Systems {
		names = append(names, sys.Name)
		assert.Equal(t, int64(3), sys.ExecutionCount)
		assert.LessOrEqual(t, sys.MinDuration, sys.MaxDuration)
		assert.GreaterOrEqual(t, sys.TotalDuration, sys.LastDuration)
	}
	assert.Equal(t, []string{
		"EffectSystem",
		"ChainSystem",
		"FallSystem",
		"PromptSystem",
		"FadeSystem",
		"recordingSystem",
	}, names)
}

func TestDeferredFlushOrder(t *testing.T) {
	s := puyo.NewSession(puyo.WithSeed(1))
	emit := &emittingSystem{}
	s.Register(emit)

	s.Update(frameDT)

	require.Len(t, emit.drained, 1)
	require.Len(t, emit.drained[0], 1, "events are delivered before deferred funcs run")
	assert.Equal(t, 9, emit.drained[0][0].Level)
	assert.Empty(t, s.DrainEvents())
}

func TestSchedulerRun(t *testing.T) {
	s := puyo.NewSession(puyo.WithSeed(1))
	var log []string
	s.Register(&recordingSystem{log: &log, label: "tick"})

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Millisecond)
	defer cancel()
	s.Scheduler().Run(ctx, 5*time.Millisecond)

	assert.NotEmpty(t, log)
	assert.Greater(t, s.Now(), time.Duration(0))
}
