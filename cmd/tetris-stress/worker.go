package main

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/loop"
	"go.uber.org/zap"
)

type workerOptions struct {
	ID        int
	Config    game.Config
	Frame     time.Duration
	InputRate float64
}

type workerResult struct {
	Games      int
	Engine     engine.Stats
	Frames     int64
	UpdateTime Stats
	Systems    []loop.SystemStats
}

func (r *workerResult) add(s engine.Stats) {
	r.Engine.Ticks += s.Ticks
	r.Engine.Spawned += s.Spawned
	r.Engine.Locked += s.Locked
	r.Engine.RowsCleared += s.RowsCleared
	r.Engine.Rejected += s.Rejected
}

// runWorker plays back-to-back games with simulated frames of opts.Frame
// until ctx is done. The game in progress at the end counts toward the
// engine totals but not the games played.
func runWorker(ctx context.Context, opts workerOptions, logger *zap.Logger) (*workerResult, error) {
	seed := opts.Config.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	cfg := opts.Config
	cfg.Seed = seed + uint64(opts.ID)

	rng := rand.New(rand.NewPCG(cfg.Seed, uint64(opts.ID)))
	result := &workerResult{}
	over := false

	session, err := game.NewSession(cfg, logger.With(zap.Int("worker", opts.ID)),
		game.WithInput(randomPlayer(rng, opts.InputRate)),
		game.WithGameOverHandler(func(*engine.Engine) {
			over = true
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("worker %d: %w", opts.ID, err)
	}

	dt := opts.Frame.Seconds()
	result.UpdateTime.Samples = make([]time.Duration, 0, 1024)

	for ctx.Err() == nil {
		updateStart := time.Now()
		session.Once(dt)
		result.UpdateTime.Samples = append(result.UpdateTime.Samples, time.Since(updateStart))

		if over {
			over = false
			result.Games++
			result.add(session.Engine().Stats())
			if err := session.Restart(); err != nil {
				return nil, fmt.Errorf("worker %d: %w", opts.ID, err)
			}
		}
	}

	last := session.Engine()
	if last.Terminal() {
		result.Games++
	}
	result.add(last.Stats())

	stats := session.Scheduler().GetStats()
	result.Frames = stats.Frames
	result.Systems = stats.Systems
	result.UpdateTime.Finalize()
	return result, nil
}
