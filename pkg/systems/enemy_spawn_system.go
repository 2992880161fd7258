package systems

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/ecs"
	"github.com/decker502/invaders/pkg/entities"
	"github.com/decker502/invaders/pkg/game"
	"github.com/decker502/invaders/pkg/logging"
)

// spawnEpsilon absorbs float drift when summing fixed timesteps.
const spawnEpsilon = 1e-9

// EnemySpawnSystem spawns at most one enemy per spawn interval while the live
// count is under the cap.
type EnemySpawnSystem struct {
	commands   *ecs.CommandBuffer
	config     *config.GameConfig
	generator  *FormationGenerator
	enemyCount *game.EnemyCount
	bounds     game.WindowBounds
	logger     *zap.Logger

	accumulator float64
}

// NewEnemySpawnSystem creates an enemy spawn system.
func NewEnemySpawnSystem(
	cb *ecs.CommandBuffer,
	cfg *config.GameConfig,
	generator *FormationGenerator,
	enemyCount *game.EnemyCount,
	bounds game.WindowBounds,
	logger *zap.Logger,
) *EnemySpawnSystem {
	return &EnemySpawnSystem{
		commands:   cb,
		config:     cfg,
		generator:  generator,
		enemyCount: enemyCount,
		bounds:     bounds,
		logger:     logging.OrNop(logger).Named("enemy_spawn"),
	}
}

// Update accumulates dt and, once per elapsed interval, spawns an enemy if the
// cap allows. It reports whether an enemy was spawned.
func (s *EnemySpawnSystem) Update(dt float64) (bool, error) {
	s.accumulator += dt
	if s.accumulator+spawnEpsilon < s.config.EnemySpawnInterval {
		return false, nil
	}
	s.accumulator -= s.config.EnemySpawnInterval
	if s.accumulator < 0 {
		s.accumulator = 0
	}

	if !s.enemyCount.CanSpawn() {
		return false, nil
	}

	formation := s.generator.Next(s.bounds)
	if err := entities.NewEnemy(s.commands, s.config, formation); err != nil {
		return false, fmt.Errorf("spawn enemy: %w", err)
	}
	if err := s.enemyCount.Increment(); err != nil {
		return false, fmt.Errorf("spawn enemy: %w", err)
	}

	s.logger.Debug("enemy spawned",
		zap.Float64("x", formation.Start[0]),
		zap.Float64("y", formation.Start[1]),
		zap.Float64("direction", formation.Direction),
		zap.Int("live", s.enemyCount.Value()))
	return true, nil
}
