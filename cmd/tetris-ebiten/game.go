package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/blockfall/debugui"
	debugui_ebiten "github.com/plus3/blockfall/debugui/ebiten"
	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/input"
	"go.uber.org/zap"
)

// Game implements ebiten.Game over a session.
type Game struct {
	session *game.Session
	logger  *zap.Logger
	poller  *input.Poller[ebiten.Key]
	board   *boardRenderer
	timer   *debugui.FrameTimer

	imgui   *debugui.ImguiSystem
	backend *debugui_ebiten.ImguiBackend
}

func (g *Game) pollInput(dt float64) []engine.Command {
	if g.imgui != nil && g.imgui.InputState.WantCaptureKeyboard {
		g.poller.Reset()
		return nil
	}
	return g.poller.Poll(dt, keyState)
}

func keyState(key ebiten.Key) input.KeyState {
	return input.KeyState{
		Pressed: inpututil.IsKeyJustPressed(key),
		Down:    ebiten.IsKeyPressed(key),
	}
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.session.Restart(); err != nil {
			g.logger.Error("restart", zap.Error(err))
		}
		g.poller.Reset()
	}

	dt := g.timer.GetDeltaTime()
	if g.backend == nil {
		g.session.Once(dt)
		return nil
	}

	g.backend.Frame(func() {
		g.session.Once(dt)
	})
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.board.Draw(screen, g.session.Engine())

	if g.backend != nil {
		g.backend.Overlay(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.backend != nil {
		g.backend.Layout(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}
