package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/input"
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/render"
	"go.uber.org/zap"
)

const frameInterval = time.Second / 60

func main() {
	fs := flag.CommandLine
	cfg, err := game.LoadConfig(fs, os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if cfg.LogFile == "" {
		// stderr would draw over the board
		cfg.LogLevel = "error"
	}

	logger, err := game.NewLogger(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	screen, err := tcell.NewScreen()
	if err != nil {
		logger.Fatal("open terminal", zap.Error(err))
	}
	if err := screen.Init(); err != nil {
		logger.Fatal("init terminal", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err = run(ctx, cfg, logger, screen)
	stop()
	screen.Fini()

	if err != nil {
		logger.Fatal("tetris-term", zap.Error(err))
	}
}

// run plays until ctx is done or the player quits. Key events arrive on
// their own goroutine and reach the engine through a queue drained by the
// frame loop.
func run(ctx context.Context, cfg game.Config, logger *zap.Logger, screen tcell.Screen) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	queue := input.NewQueue(64)
	session, err := game.NewSession(cfg, logger, game.WithInput(queue.Drain))
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}

	st := newStyles(render.DefaultPalette)
	session.Register(loop.SystemFunc(func(frame *loop.UpdateFrame) {
		frame.Commands.Defer(func() {
			drawFrame(screen, st, session.Engine().Snapshot(), session.Games())
			screen.Show()
		})
	}))

	screen.HideCursor()
	restart := make(chan struct{}, 1)
	go pollEvents(screen, newKeymap(), queue, restart, cancel)

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()
	lastTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-restart:
			if err := session.Restart(); err != nil {
				return err
			}
		case now := <-ticker.C:
			dt := now.Sub(lastTime).Seconds()
			lastTime = now
			session.Once(dt)
		}
	}
}

func pollEvents(screen tcell.Screen, keys keymap, queue *input.Queue, restart chan<- struct{}, quit context.CancelFunc) {
	for {
		switch ev := screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			act, cmd := keys.resolve(ev)
			switch act {
			case actionQuit:
				quit()
				return
			case actionRestart:
				select {
				case restart <- struct{}{}:
				default:
				}
			case actionCommand:
				queue.Push(cmd)
			}
		}
	}
}
