// Package simulation owns one run of the game: the entity store, the shared
// resources and the fixed order in which systems run each tick.
package simulation

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/ecs"
	"github.com/decker502/invaders/pkg/game"
	"github.com/decker502/invaders/pkg/logging"
	"github.com/decker502/invaders/pkg/systems"
	"github.com/decker502/invaders/pkg/utils"
)

// TickReport summarises what happened during one tick.
type TickReport struct {
	PlayerSpawned    bool
	EnemySpawned     bool
	EnemyLasersFired int
	Collisions       systems.CollisionReport
}

// Simulation is a single-threaded fixed-timestep run. Every shared resource is
// a field written by exactly one system; nothing here is safe for concurrent
// use.
type Simulation struct {
	RunID uuid.UUID

	config   *config.GameConfig
	bounds   game.WindowBounds
	em       *ecs.EntityManager
	commands *ecs.CommandBuffer
	rng      utils.RandomSource
	logger   *zap.Logger

	enemyCount *game.EnemyCount
	player     *game.PlayerState
	formations *systems.FormationGenerator

	playerSpawn   *systems.PlayerSpawnSystem
	enemySpawn    *systems.EnemySpawnSystem
	playerControl *systems.PlayerControlSystem
	enemyFire     *systems.EnemyFireSystem
	flight        *systems.FlightSystem
	movement      *systems.MovementSystem
	collision     *systems.CollisionSystem
	explosion     *systems.ExplosionSystem

	ticks      uint64
	lastReport TickReport
}

// Option customises a Simulation.
type Option func(*Simulation)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(s *Simulation) {
		s.logger = l
	}
}

// WithRandomSource replaces the seeded generator, e.g. with a scripted one.
func WithRandomSource(rng utils.RandomSource) Option {
	return func(s *Simulation) {
		s.rng = rng
	}
}

// New builds a simulation from cfg. seed feeds the default random source; 0
// picks a time-based seed.
func New(cfg *config.GameConfig, seed int64, opts ...Option) (*Simulation, error) {
	if cfg == nil {
		cfg = config.DefaultGameConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid game config: %w", err)
	}

	s := &Simulation{
		RunID:    uuid.New(),
		config:   cfg,
		bounds:   game.WindowBounds{Width: cfg.Window.Width, Height: cfg.Window.Height},
		em:       ecs.NewEntityManager(),
		commands: ecs.NewCommandBuffer(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = utils.NewPRNGService(seed)
	}
	s.logger = logging.OrNop(s.logger).With(zap.String("run", s.RunID.String()))

	s.enemyCount = game.NewEnemyCount(cfg.EnemyMax)
	s.player = game.NewPlayerState(cfg.PlayerRespawnDelay)
	s.formations = systems.NewFormationGenerator(cfg.Formation, s.rng)

	s.playerSpawn = systems.NewPlayerSpawnSystem(s.commands, cfg, s.player, s, s.logger)
	s.enemySpawn = systems.NewEnemySpawnSystem(s.commands, cfg, s.formations, s.enemyCount, s.bounds, s.logger)
	s.playerControl = systems.NewPlayerControlSystem(s.em, s.commands, cfg)
	s.enemyFire = systems.NewEnemyFireSystem(s.em, s.commands, cfg, s.rng)
	s.flight = systems.NewFlightSystem(s.em)
	s.movement = systems.NewMovementSystem(s.em, s.commands, s.bounds, cfg.BaseSpeed, cfg.DespawnMargin, s.logger)
	s.collision = systems.NewCollisionSystem(s.em, s.commands, s.enemyCount, s.player, s, s.logger)
	s.explosion = systems.NewExplosionSystem(s.em, s.commands, cfg)

	s.logger.Info("simulation created",
		zap.Float64("timeStep", cfg.TimeStep),
		zap.Int("enemyMax", cfg.EnemyMax))
	return s, nil
}

// Tick advances the simulation by one timestep. Systems run in a fixed order
// and the commands each one records are applied before the next runs.
//
// An error means an invariant was violated (for example an enemy resolved
// twice); the simulation should not be ticked again.
func (s *Simulation) Tick(input game.InputState) error {
	dt := s.config.TimeStep
	var report TickReport

	spawned, err := s.playerSpawn.Update()
	if err != nil {
		return s.fail("player spawn", err)
	}
	report.PlayerSpawned = spawned
	s.apply()

	spawned, err = s.enemySpawn.Update(dt)
	if err != nil {
		return s.fail("enemy spawn", err)
	}
	report.EnemySpawned = spawned
	s.apply()

	if err := s.playerControl.Update(input); err != nil {
		return s.fail("player control", err)
	}
	s.apply()

	fired, err := s.enemyFire.Update()
	if err != nil {
		return s.fail("enemy fire", err)
	}
	report.EnemyLasersFired = fired
	s.apply()

	s.flight.Update(dt)

	s.movement.Update(dt)
	s.apply()

	collisions, err := s.collision.Update(dt)
	report.Collisions = collisions
	if err != nil {
		return s.fail("collision", err)
	}
	s.apply()

	if err := s.explosion.Update(dt); err != nil {
		return s.fail("explosion", err)
	}
	s.apply()

	s.ticks++
	s.lastReport = report
	return nil
}

func (s *Simulation) apply() {
	s.commands.Apply(s.em)
}

func (s *Simulation) fail(stage string, err error) error {
	s.logger.Error("tick failed",
		zap.Uint64("tick", s.ticks),
		zap.String("stage", stage),
		zap.Error(err))
	return fmt.Errorf("tick %d: %s: %w", s.ticks, stage, err)
}

// Now returns the simulation time in seconds: completed ticks times the
// timestep.
func (s *Simulation) Now() float64 {
	return float64(s.ticks) * s.config.TimeStep
}

// Ticks returns the number of completed ticks.
func (s *Simulation) Ticks() uint64 {
	return s.ticks
}

// LastReport returns the report of the most recent successful tick.
func (s *Simulation) LastReport() TickReport {
	return s.lastReport
}

// EntityManager exposes the store for read-only queries by the presentation
// layer.
func (s *Simulation) EntityManager() *ecs.EntityManager {
	return s.em
}

// Config returns the configuration the simulation was built with.
func (s *Simulation) Config() *config.GameConfig {
	return s.config
}

// Bounds returns the playfield extent.
func (s *Simulation) Bounds() game.WindowBounds {
	return s.bounds
}

// EnemyCount returns the number of live enemies.
func (s *Simulation) EnemyCount() int {
	return s.enemyCount.Value()
}

// PlayerState returns a copy of the player's lifecycle state.
func (s *Simulation) PlayerState() game.PlayerState {
	return *s.player
}
