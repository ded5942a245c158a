package puyo

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidRules is wrapped by every Rules.Validate failure.
var ErrInvalidRules = errors.New("puyo: invalid rules")

// Rules holds the timing and scoring constants of a session.
type Rules struct {
	// BlinkFrames is how many ticks marked cells blink before removal.
	BlinkFrames int
	// WaveDelay is the minimum time between one wave's removal and the
	// next wave's mark.
	WaveDelay time.Duration
	// PopFrames is the length of the cosmetic pop effect in ticks.
	PopFrames int
	// ChainBannerDuration is how long an "N-chain" banner stays visible.
	ChainBannerDuration time.Duration

	BaseFallInterval time.Duration
	FallIntervalStep time.Duration
	MinFallInterval  time.Duration
	SoftDropInterval time.Duration

	// SettleStepInterval spaces successive gravity passes after a lock or
	// a removal so each pass can be animated.
	SettleStepInterval time.Duration

	ContinueCountdown time.Duration
	// GameOverDrop is the banner animation shown before the countdown starts.
	GameOverDrop time.Duration
	FadeDuration time.Duration

	WobbleDuration time.Duration

	PointsPerLevel int
	// HardDropBonus is awarded per row travelled by a hard drop.
	HardDropBonus int
}

// DefaultRules returns the reference timings for a 60 Hz loop.
func DefaultRules() Rules {
	return Rules{
		BlinkFrames:         20,
		WaveDelay:           800 * time.Millisecond,
		PopFrames:           10,
		ChainBannerDuration: 1500 * time.Millisecond,
		BaseFallInterval:    500 * time.Millisecond,
		FallIntervalStep:    50 * time.Millisecond,
		MinFallInterval:     100 * time.Millisecond,
		SoftDropInterval:    30 * time.Millisecond,
		SettleStepInterval:  50 * time.Millisecond,
		ContinueCountdown:   10 * time.Second,
		GameOverDrop:        2 * time.Second,
		FadeDuration:        85 * time.Second / 60, // 255 alpha at 3 per frame
		WobbleDuration:      500 * time.Millisecond,
		PointsPerLevel:      1000,
		HardDropBonus:       0,
	}
}

// Validate checks that every field is usable.
func (r Rules) Validate() error {
	switch {
	case r.BlinkFrames <= 0:
		return fmt.Errorf("%w: BlinkFrames must be positive, got %d", ErrInvalidRules, r.BlinkFrames)
	case r.PopFrames <= 0:
		return fmt.Errorf("%w: PopFrames must be positive, got %d", ErrInvalidRules, r.PopFrames)
	case r.WaveDelay < 0:
		return fmt.Errorf("%w: WaveDelay must not be negative", ErrInvalidRules)
	case r.MinFallInterval <= 0:
		return fmt.Errorf("%w: MinFallInterval must be positive", ErrInvalidRules)
	case r.BaseFallInterval < r.MinFallInterval:
		return fmt.Errorf("%w: BaseFallInterval %s is below MinFallInterval %s", ErrInvalidRules, r.BaseFallInterval, r.MinFallInterval)
	case r.FallIntervalStep < 0:
		return fmt.Errorf("%w: FallIntervalStep must not be negative", ErrInvalidRules)
	case r.SoftDropInterval <= 0:
		return fmt.Errorf("%w: SoftDropInterval must be positive", ErrInvalidRules)
	case r.SettleStepInterval < 0:
		return fmt.Errorf("%w: SettleStepInterval must not be negative", ErrInvalidRules)
	case r.ContinueCountdown <= 0:
		return fmt.Errorf("%w: ContinueCountdown must be positive", ErrInvalidRules)
	case r.GameOverDrop < 0:
		return fmt.Errorf("%w: GameOverDrop must not be negative", ErrInvalidRules)
	case r.FadeDuration <= 0:
		return fmt.Errorf("%w: FadeDuration must be positive", ErrInvalidRules)
	case r.PointsPerLevel <= 0:
		return fmt.Errorf("%w: PointsPerLevel must be positive, got %d", ErrInvalidRules, r.PointsPerLevel)
	case r.HardDropBonus < 0:
		return fmt.Errorf("%w: HardDropBonus must not be negative", ErrInvalidRules)
	}
	return nil
}

// LevelFor derives the level from a score: 1 + score/PointsPerLevel.
func (r Rules) LevelFor(score int) int {
	return 1 + score/r.PointsPerLevel
}

// FallInterval is the automatic descent period at level.
func (r Rules) FallInterval(level int) time.Duration {
	if level < 1 {
		level = 1
	}
	d := r.BaseFallInterval - time.Duration(level-1)*r.FallIntervalStep
	if d < r.MinFallInterval {
		return r.MinFallInterval
	}
	return d
}
