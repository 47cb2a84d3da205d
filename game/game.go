package game

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"snake-arcade/game/event"
	"snake-arcade/game/manager"
	"snake-arcade/game/types"
)

// Input is sampled once per frame for each logical direction
type Input interface {
	Pressed(d types.Direction) bool
}

// InputFunc adapts a plain function to Input
type InputFunc func(d types.Direction) bool

func (f InputFunc) Pressed(d types.Direction) bool {
	return f(d)
}

// NoInput never reports a pressed direction
var NoInput Input = InputFunc(func(types.Direction) bool { return false })

// Report describes what happened during one Step
type Report struct {
	Ticked    bool
	Ate       bool
	Spawned   bool
	GameOver  bool
	Restarted bool
	Cause     types.ColliderKind  // Set when GameOver is true
	Record    manager.RoundRecord // The finished round when GameOver is true
	Score     uint
}

type Option func(*Simulation)

// WithLogger routes diagnostics to log instead of discarding them
func WithLogger(log *zap.SugaredLogger) Option {
	return func(s *Simulation) {
		if log != nil {
			s.log = log
		}
	}
}

// Simulation is the whole game. It is not safe for concurrent use: the frontend
// calls Step once per frame from its own loop.
type Simulation struct {
	cfg  Config
	grid types.Grid
	log  *zap.SugaredLogger

	ticker *Ticker
	bus    event.Bus
	now    time.Duration // Simulation time, the sum of every dt
	overAt time.Duration

	collisionMgr *manager.CollisionManager
	foodManager  *manager.FoodManager
	popManager   *manager.PopulationManager
	stateManager *manager.StateManager
	statsManager *manager.StatsManager
}

// New validates cfg and starts the first round
func New(cfg Config, opts ...Option) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid game config: %w", err)
	}

	s := &Simulation{
		cfg:  cfg,
		grid: cfg.Grid(),
		log:  zap.NewNop().Sugar(),
	}
	for _, opt := range opts {
		opt(s)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	s.ticker = NewTicker(cfg.TickPeriod)
	s.collisionMgr = manager.NewCollisionManager(s.grid)
	s.foodManager = manager.NewFoodManager(s.grid, s.collisionMgr, seed, cfg.SpawnAttempts)
	s.popManager = manager.NewPopulationManager(manager.StartPosition, manager.StartDirection)
	s.statsManager = manager.NewStatsManager()
	s.stateManager = manager.NewStateManager(s.popManager, s.foodManager, s.statsManager, cfg.RecentScores, s.log)

	s.log.Infow("simulation created",
		"half_width", s.grid.HalfWidth,
		"cell_size", s.grid.CellSize,
		"tick", cfg.TickPeriod,
		"seed", seed,
	)
	s.stateManager.StartRound(s.now)
	return s, nil
}

// Step advances the simulation by one frame of dt.
//
// Within a frame the queues are drained in a fixed order: Restart, MoveTail,
// GrowTail, GameOver. The Restart a game over emits is therefore seen on the
// following frame at the earliest.
func (s *Simulation) Step(dt time.Duration, input Input) Report {
	var r Report
	if dt > 0 {
		s.now += dt
	}
	if input == nil {
		input = NoInput
	}

	if s.bus.Restart.Len() > 0 && (s.stateManager.IsPlaying() || s.now-s.overAt >= s.cfg.RestartDelay) {
		for range s.bus.Restart.Drain() {
			if s.stateManager.HandleRestart(s.now) {
				s.ticker.Reset()
				r.Restarted = true
			}
		}
	}

	snake := s.popManager.GetSnake()
	tail := s.popManager.GetTail()
	fired := s.ticker.Advance(dt)
	moved := fired && s.stateManager.IsPlaying() && snake.Active

	if moved {
		r.Ticked = true
		from := snake.Advance()
		s.bus.MoveTail.Push(event.MoveTail{From: from})
	}

	if snake.Active {
		snake.Steer(sample(input))
		snake.Commit()
	}

	for _, ev := range s.bus.MoveTail.Drain() {
		tail.Shift(ev.From)
	}

	if moved {
		colliders := s.collisionMgr.Colliders(snake, tail, s.foodManager.Fruit())
		contact := s.collisionMgr.CheckCollision(snake.Position, colliders)
		if contact.Fruit {
			s.stateManager.AddPoint()
			s.foodManager.RemoveFood()
			s.bus.GrowTail.Push(event.GrowTail{})
			r.Ate = true
		}
		if contact.Fatal() {
			s.bus.GameOver.Push(event.GameOver{Cause: contact.Cause(), At: snake.Position})
		}
	}

	for range s.bus.GrowTail.Drain() {
		if !s.popManager.IsAlive() {
			s.log.Warnw("tail growth without a snake ignored")
			continue
		}
		tail.Grow(snake.LastPosition)
	}

	for _, ev := range s.bus.GameOver.Drain() {
		record, ok := s.stateManager.HandleGameOver(ev, s.now, &s.bus)
		if !ok {
			continue
		}
		s.overAt = s.now
		r.GameOver = true
		r.Cause = ev.Cause
		r.Record = record
	}

	if s.stateManager.IsPlaying() {
		spawned, err := s.foodManager.Update(snake, tail)
		if err != nil {
			s.log.Warnw("fruit spawn skipped", "error", err)
		}
		r.Spawned = spawned
	}

	r.Score = s.stateManager.GetScore()
	return r
}

// RequestRestart queues a restart. It only takes effect once the round is over.
func (s *Simulation) RequestRestart() {
	s.bus.Restart.Push(event.Restart{})
}

// Now returns the simulation time
func (s *Simulation) Now() time.Duration {
	return s.now
}

// Config returns the constants the simulation was built with
func (s *Simulation) Config() Config {
	return s.cfg
}

func (s *Simulation) Grid() types.Grid {
	return s.grid
}

func (s *Simulation) Stats() *manager.StatsManager {
	return s.statsManager
}

func sample(input Input) types.DirectionSet {
	var set types.DirectionSet
	for _, d := range types.Directions {
		if input.Pressed(d) {
			set = set.With(d)
		}
	}
	return set
}
