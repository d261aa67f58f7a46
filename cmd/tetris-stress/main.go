package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/plus3/blockfall/game"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func main() {
	fs := flag.CommandLine
	duration := fs.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	workers := fs.Int("workers", runtime.GOMAXPROCS(0), "Number of sessions played in parallel.")
	frame := fs.Duration("frame", 100*time.Millisecond, "Simulated time per frame.")
	inputRate := fs.Float64("input-rate", 0.5, "Share of frames carrying a random move.")
	gcPauseMetrics := fs.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")

	cfg, err := game.LoadConfig(fs, os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger, err := game.NewLogger(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	report := &Report{
		Duration:       *duration,
		Workers:        max(*workers, 1),
		Width:          cfg.Width,
		Height:         cfg.Height,
		Tick:           cfg.Tick,
		Frame:          *frame,
		InputRate:      *inputRate,
		GCPauseMetrics: *gcPauseMetrics,
	}

	logger.Info("starting stress test",
		zap.Duration("duration", report.Duration),
		zap.Int("workers", report.Workers),
	)

	if err := run(context.Background(), cfg, report, logger); err != nil {
		logger.Fatal("stress test failed", zap.Error(err))
	}

	logger.Info("stress test finished",
		zap.Int("games", report.Games),
		zap.Int64("updates", report.TotalUpdates),
	)

	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		logger.Fatal("generate report", zap.Error(err))
	}
	fmt.Println("--- End of Report ---")
}

// run plays report.Workers sessions for report.Duration and fills in the
// results.
func run(ctx context.Context, cfg game.Config, report *Report, logger *zap.Logger) error {
	runtime.ReadMemStats(&report.MemStatsStart)

	ctx, cancel := context.WithTimeout(ctx, report.Duration)
	defer cancel()

	results := make([]*workerResult, report.Workers)
	g, ctx := errgroup.WithContext(ctx)
	startTime := time.Now()

	for i := range results {
		g.Go(func() error {
			result, err := runWorker(ctx, workerOptions{
				ID:        i,
				Config:    cfg,
				Frame:     report.Frame,
				InputRate: report.InputRate,
			}, logger)
			if err != nil {
				return err
			}
			results[i] = result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	report.TotalTime = time.Since(startTime)
	for _, result := range results {
		report.Merge(result)
	}
	report.UpdateTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)
	return nil
}
