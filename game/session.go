package game

import (
	"context"
	"fmt"
	"time"

	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/piece"
	"go.uber.org/zap"
)

// Session is one player's run of games: the current engine, the scheduler
// driving it and the host systems around it.
type Session struct {
	cfg       Config
	logger    *zap.Logger
	scheduler *loop.Scheduler

	source     piece.Source
	engineOpts []engine.Option
	input      []loop.System
	onGameOver func(e *engine.Engine)
	games      int
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithEngineOptions passes opts to every engine the session creates. They
// apply after the seeded source, so WithSource here wins over Config.Seed.
func WithEngineOptions(opts ...engine.Option) SessionOption {
	return func(s *Session) {
		s.engineOpts = append(s.engineOpts, opts...)
	}
}

// WithInput registers an InputSystem over src ahead of gravity, so a
// frame's input lands before its tick.
func WithInput(src InputSource) SessionOption {
	return func(s *Session) {
		s.input = append(s.input, &InputSystem{Source: src})
	}
}

// WithGameOverHandler is called once when a game ends.
func WithGameOverHandler(fn func(e *engine.Engine)) SessionOption {
	return func(s *Session) {
		s.onGameOver = fn
	}
}

// NewSession validates cfg, creates the first engine and registers the
// input, gravity and game-over systems in that order. A nil logger
// discards everything.
func NewSession(cfg Config, logger *zap.Logger, opts ...SessionOption) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Session{cfg: cfg, logger: logger}
	for _, opt := range opts {
		opt(s)
	}
	if cfg.Seed != 0 {
		s.source = piece.NewSeededSource(cfg.Seed, cfg.Seed)
	}

	e, err := s.newEngine()
	if err != nil {
		return nil, fmt.Errorf("new session: %w", err)
	}

	s.scheduler = loop.NewScheduler(e)
	for _, system := range s.input {
		s.scheduler.Register(system)
	}
	s.scheduler.Register(NewGravitySystem(cfg.Tick))
	s.scheduler.Register(&GameOverSystem{Logger: logger, OnGameOver: s.onGameOver})
	s.games = 1

	logger.Info("session started",
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.Duration("tick", cfg.Tick),
		zap.Uint64("seed", cfg.Seed),
	)
	return s, nil
}

func (s *Session) newEngine() (*engine.Engine, error) {
	opts := make([]engine.Option, 0, len(s.engineOpts)+1)
	if s.source != nil {
		opts = append(opts, engine.WithSource(s.source))
	}
	opts = append(opts, s.engineOpts...)
	return engine.New(s.cfg.Width, s.cfg.Height, opts...)
}

// Register appends a frontend system, typically a renderer, after the
// session's own systems.
func (s *Session) Register(system loop.System) {
	s.scheduler.Register(system)
}

// Restart abandons the current game and starts a fresh engine. A seeded
// session keeps drawing from the same piece stream.
func (s *Session) Restart() error {
	prev := s.scheduler.Engine()
	e, err := s.newEngine()
	if err != nil {
		return fmt.Errorf("restart: %w", err)
	}
	s.scheduler.Attach(e)
	s.games++

	fields := append([]zap.Field{zap.Int("game", s.games)}, statsFields(prev.Stats())...)
	s.logger.Info("game restarted", fields...)
	return nil
}

// Once runs a single frame of dt seconds.
func (s *Session) Once(dt float64) {
	s.scheduler.Once(dt)
}

// Run drives frames every interval until ctx is done.
func (s *Session) Run(ctx context.Context, interval time.Duration) {
	s.scheduler.Run(ctx, interval)
}

func (s *Session) Engine() *engine.Engine {
	return s.scheduler.Engine()
}

func (s *Session) Scheduler() *loop.Scheduler {
	return s.scheduler
}

func (s *Session) Config() Config {
	return s.cfg
}

func (s *Session) Logger() *zap.Logger {
	return s.logger
}

// Games is the number of games started, including the current one.
func (s *Session) Games() int {
	return s.games
}
