package puyo_test

import (
	"testing"
	"time"

	"github.com/plus3/popdrop/puyo"
	"github.com/stretchr/testify/assert"
)

func TestDefaultRulesAreValid(t *testing.T) {
	assert.NoError(t, puyo.DefaultRules().Validate())
}

func TestRulesValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(r *puyo.Rules)
	}{
		{"no blink frames", func(r *puyo.Rules) { r.BlinkFrames = 0 }},
		{"no pop frames", func(r *puyo.Rules) { r.PopFrames = -1 }},
		{"negative wave delay", func(r *puyo.Rules) { r.WaveDelay = -time.Millisecond }},
		{"base below floor", func(r *puyo.Rules) { r.BaseFallInterval = 50 * time.Millisecond }},
		{"zero soft drop", func(r *puyo.Rules) { r.SoftDropInterval = 0 }},
		{"zero countdown", func(r *puyo.Rules) { r.ContinueCountdown = 0 }},
		{"zero points per level", func(r *puyo.Rules) { r.PointsPerLevel = 0 }},
		{"negative hard drop bonus", func(r *puyo.Rules) { r.HardDropBonus = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := puyo.DefaultRules()
			tt.modify(&r)
			assert.ErrorIs(t, r.Validate(), puyo.ErrInvalidRules)
		})
	}
}

func TestLevelFor(t *testing.T) {
	r := puyo.DefaultRules()

	assert.Equal(t, 1, r.LevelFor(0))
	assert.Equal(t, 1, r.LevelFor(999))
	assert.Equal(t, 2, r.LevelFor(1000))
	assert.Equal(t, 3, r.LevelFor(2500))
}

func TestFallInterval(t *testing.T) {
	r := puyo.DefaultRules()

	tests := []struct {
		level int
		want  time.Duration
	}{
		{0, 500 * time.Millisecond},
		{1, 500 * time.Millisecond},
		{2, 450 * time.Millisecond},
		{5, 300 * time.Millisecond},
		{9, 100 * time.Millisecond},
		{10, 100 * time.Millisecond},
		{40, 100 * time.Millisecond},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, r.FallInterval(tt.level), "level %d", tt.level)
	}
}

func TestNewSessionRejectsInvalidRules(t *testing.T) {
	r := puyo.DefaultRules()
	r.BlinkFrames = 0

	_, err := puyo.TryNewSession(puyo.WithRules(r))
	assert.ErrorIs(t, err, puyo.ErrInvalidRules)
	assert.Panics(t, func() { puyo.NewSession(puyo.WithRules(r)) })
}
