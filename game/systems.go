package game

import (
	"math"
	"time"

	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/loop"
	"go.uber.org/zap"
)

// MaxCatchUpTicks bounds the ticks GravitySystem pushes in one frame.
const MaxCatchUpTicks = 8

// GravitySystem pushes one tick per elapsed interval, at most
// MaxCatchUpTicks per frame; time beyond that is dropped. The accumulator
// restarts whenever the scheduler is attached to a different engine.
type GravitySystem struct {
	Interval time.Duration

	elapsed float64
	engine  *engine.Engine
}

func NewGravitySystem(interval time.Duration) *GravitySystem {
	return &GravitySystem{Interval: interval}
}

func (s *GravitySystem) Execute(frame *loop.UpdateFrame) {
	if frame.Engine != s.engine {
		s.engine = frame.Engine
		s.elapsed = 0
	}
	if frame.Engine == nil || frame.Engine.Terminal() || s.Interval <= 0 {
		return
	}

	s.elapsed += frame.DeltaTime
	step := s.Interval.Seconds()
	for ticks := 0; s.elapsed >= step; ticks++ {
		if ticks == MaxCatchUpTicks {
			s.elapsed = math.Mod(s.elapsed, step)
			break
		}
		s.elapsed -= step
		frame.Commands.Push(engine.CommandTick)
	}
}

// InputSource yields the commands a frontend collected for this frame.
// input.Queue.Drain satisfies it directly; pollers are wrapped in a closure.
type InputSource func(dt float64) []engine.Command

// InputSystem forwards frontend commands to the engine. The source is
// drained every frame; once the game is over its commands are dropped.
type InputSystem struct {
	Source InputSource
}

func (s *InputSystem) Execute(frame *loop.UpdateFrame) {
	if s.Source == nil {
		return
	}
	cmds := s.Source(frame.DeltaTime)
	if frame.Engine == nil || frame.Engine.Terminal() {
		return
	}
	frame.Commands.Push(cmds...)
}

// GameOverSystem reports the end of each game exactly once.
type GameOverSystem struct {
	Logger     *zap.Logger
	OnGameOver func(e *engine.Engine)

	reported *engine.Engine
}

func (s *GameOverSystem) Execute(frame *loop.UpdateFrame) {
	e := frame.Engine
	if e == nil || !e.Terminal() || s.reported == e {
		return
	}
	s.reported = e

	if s.Logger != nil {
		s.Logger.Info("game over", statsFields(e.Stats())...)
	}
	if s.OnGameOver != nil {
		s.OnGameOver(e)
	}
}
