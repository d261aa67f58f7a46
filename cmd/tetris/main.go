package main

import (
	"flag"
	"fmt"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/input"
	"go.uber.org/zap"
)

const (
	offset     = 50
	panelWidth = 160
)

func main() {
	cfg, err := game.LoadConfig(flag.CommandLine, os.Args[1:])
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

	bindings := input.DefaultBindings(input.Layout[int32]{
		Left:      rl.KeyLeft,
		Right:     rl.KeyRight,
		Down:      rl.KeyDown,
		Up:        rl.KeyUp,
		AltRotate: rl.KeyZ,
	})
	bindings.Bind(rl.KeyW, engine.CommandRotate, false)
	poller := input.NewPoller(bindings)

	session, err := game.NewSession(cfg, logger,
		game.WithInput(func(dt float64) []engine.Command {
			return poller.Poll(dt, keyState)
		}),
	)
	if err != nil {
		logger.Fatal("start session", zap.Error(err))
	}
	session.Register(NewRenderSystem(session))

	width := int32(offset*2 + cfg.Width*cfg.CellSize + panelWidth)
	height := int32(offset*2 + cfg.Height*cfg.CellSize)
	rl.InitWindow(width, height, "Blockfall")
	rl.SetTargetFPS(60)
	defer rl.CloseWindow()

	lastTime := rl.GetTime()

	for !rl.WindowShouldClose() {
		currentTime := rl.GetTime()
		deltaTime := currentTime - lastTime
		lastTime = currentTime

		if rl.IsKeyPressed(rl.KeyR) {
			if err := session.Restart(); err != nil {
				logger.Error("restart", zap.Error(err))
			}
			poller.Reset()
		}

		session.Once(deltaTime)
	}
}

func keyState(key int32) input.KeyState {
	return input.KeyState{
		Pressed: rl.IsKeyPressed(key),
		Down:    rl.IsKeyDown(key),
	}
}
