package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/blockfall/debugui"
	debugui_ebiten "github.com/plus3/blockfall/debugui/ebiten"
	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/input"
	"go.uber.org/zap"
)

const (
	offset     = 40
	panelWidth = 160
	debugWidth = 360
)

func main() {
	fs := flag.CommandLine
	debug := fs.Bool("debug", false, "show the Dear ImGui debug overlay")

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

	if err := run(cfg, logger, *debug); err != nil {
		logger.Fatal("tetris-ebiten", zap.Error(err))
	}
}

func run(cfg game.Config, logger *zap.Logger, debug bool) error {
	width := offset*2 + cfg.Width*cfg.CellSize + panelWidth
	height := offset*2 + cfg.Height*cfg.CellSize

	g := &Game{
		logger: logger,
		poller: input.NewPoller(newBindings()),
	}

	if debug {
		width += debugWidth
		g.imgui = &debugui.ImguiSystem{}
		g.backend = debugui_ebiten.NewImguiBackend("Blockfall", width, height)
	} else {
		ebiten.SetWindowSize(width, height)
		ebiten.SetWindowTitle("Blockfall")
	}

	session, err := game.NewSession(cfg, logger, game.WithInput(g.pollInput))
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}
	g.session = session
	left := offset
	if debug {
		// leave room for the overlay
		left += debugWidth
	}
	g.board = newBoardRenderer(session, left)

	if g.imgui != nil {
		panel := debugui.NewPanel(session, 120)
		panel.ShowBoard = true
		session.Register(panel.System())
		g.imgui.Add(panel.Render)
		session.Register(g.imgui)
	}

	g.timer = debugui.NewFrameTimer()
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

func newBindings() *input.Bindings[ebiten.Key] {
	bindings := input.DefaultBindings(input.Layout[ebiten.Key]{
		Left:      ebiten.KeyArrowLeft,
		Right:     ebiten.KeyArrowRight,
		Down:      ebiten.KeyArrowDown,
		Up:        ebiten.KeyArrowUp,
		AltRotate: ebiten.KeyZ,
	})
	bindings.Bind(ebiten.KeyW, engine.CommandRotate, false)
	return bindings
}
