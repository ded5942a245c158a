package main

import (
	"context"
	"time"

	"github.com/plus3/popdrop/puyo"
	"golang.org/x/sync/errgroup"
)

// sessionResult is what one simulated player produced.
type sessionResult struct {
	Seed        uint64
	Frames      int64
	Simulated   time.Duration
	Games       int
	BestScore   int
	MaxChain    int
	Cleared     int
	Pieces      int
	UpdateTimes []time.Duration
}

type runner struct {
	fps      int
	actEvery int
	// maxFrames stops a session early when positive.
	maxFrames int64
	options   []puyo.Option
}

// run plays one seeded session until ctx is done or maxFrames elapse.
func (r runner) run(ctx context.Context, seed uint64) (sessionResult, error) {
	opts := append([]puyo.Option{puyo.WithSeed(seed)}, r.options...)
	session, err := puyo.TryNewSession(opts...)
	if err != nil {
		return sessionResult{}, err
	}

	res := sessionResult{Seed: seed}
	b := newBot(seed, r.actEvery)
	dt := 1.0 / float64(r.fps)

	for r.maxFrames <= 0 || res.Frames < r.maxFrames {
		if res.Frames%64 == 0 && ctx.Err() != nil {
			break
		}

		if cmd, ok := b.next(session.State()); ok {
			session.Handle(cmd)
		}

		start := time.Now()
		session.Update(dt)
		res.UpdateTimes = append(res.UpdateTimes, time.Since(start))
		res.Frames++

		for _, e := range session.DrainEvents() {
			switch e.Kind {
			case puyo.EventLocked:
				res.Pieces++
			case puyo.EventCleared:
				res.Cleared += e.Units
				res.MaxChain = max(res.MaxChain, e.Chain)
			case puyo.EventGameOver:
				res.Games++
				res.BestScore = max(res.BestScore, session.Stats().Score)
			}
		}
	}

	// A session cut off mid-game still counts its running score.
	res.BestScore = max(res.BestScore, session.Stats().Score)
	res.Simulated = session.Now()
	return res, nil
}

// runAll plays one session per seed concurrently.
func (r runner) runAll(ctx context.Context, seeds []uint64) ([]sessionResult, error) {
	results := make([]sessionResult, len(seeds))
	g, ctx := errgroup.WithContext(ctx)
	for i, seed := range seeds {
		g.Go(func() error {
			res, err := r.run(ctx, seed)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
