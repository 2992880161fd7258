package systems

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/decker502/invaders/pkg/components"
	"github.com/decker502/invaders/pkg/ecs"
	"github.com/decker502/invaders/pkg/entities"
	"github.com/decker502/invaders/pkg/game"
	"github.com/decker502/invaders/pkg/logging"
)

// CollisionReport summarises one collision pass.
type CollisionReport struct {
	EnemiesDestroyed int
	PlayerHit        bool
}

// CollisionSystem resolves laser hits. Each entity is resolved at most once
// per pass: a destroyed set is checked before every overlap test and updated
// as soon as a hit is recorded, so a second overlap on the same entity is
// ignored and never reaches the enemy counter.
type CollisionSystem struct {
	entityManager *ecs.EntityManager
	commands      *ecs.CommandBuffer
	enemyCount    *game.EnemyCount
	player        *game.PlayerState
	clock         Clock
	logger        *zap.Logger
}

// NewCollisionSystem creates a collision system.
func NewCollisionSystem(
	em *ecs.EntityManager,
	cb *ecs.CommandBuffer,
	enemyCount *game.EnemyCount,
	player *game.PlayerState,
	clock Clock,
	logger *zap.Logger,
) *CollisionSystem {
	return &CollisionSystem{
		entityManager: em,
		commands:      cb,
		enemyCount:    enemyCount,
		player:        player,
		clock:         clock,
		logger:        logging.OrNop(logger).Named("collision"),
	}
}

// Update runs both passes: player lasers against enemies, then enemy lasers
// against the player. An EnemyCount violation aborts the pass and is
// returned.
func (s *CollisionSystem) Update(_ float64) (CollisionReport, error) {
	var report CollisionReport
	destroyed := make(map[ecs.EntityID]struct{})

	n, err := s.resolvePlayerLasers(destroyed)
	report.EnemiesDestroyed = n
	if err != nil {
		return report, err
	}

	hit, err := s.resolveEnemyLasers(destroyed)
	report.PlayerHit = hit
	return report, err
}

func (s *CollisionSystem) resolvePlayerLasers(destroyed map[ecs.EntityID]struct{}) (int, error) {
	lasers := withTags(s.entityManager, components.TagPlayerLaser)
	enemies := withTags(s.entityManager, components.TagEnemy)
	kills := 0

	for _, laser := range lasers {
		if _, gone := destroyed[laser]; gone {
			continue
		}
		laserBox, ok := collisionBox(s.entityManager, laser)
		if !ok {
			continue
		}

		for _, enemy := range enemies {
			if _, gone := destroyed[enemy]; gone {
				continue
			}
			enemyBox, ok := collisionBox(s.entityManager, enemy)
			if !ok || !laserBox.Overlaps(enemyBox) {
				continue
			}

			destroyed[laser] = struct{}{}
			destroyed[enemy] = struct{}{}
			s.commands.Destroy(laser)
			s.commands.Destroy(enemy)

			if err := s.enemyCount.Decrement(); err != nil {
				return kills, fmt.Errorf("laser %d hit enemy %d: %w", laser, enemy, err)
			}
			if err := entities.NewExplosionRequest(s.commands, enemyBox.CenterX, enemyBox.CenterY); err != nil {
				return kills, fmt.Errorf("laser %d hit enemy %d: %w", laser, enemy, err)
			}
			kills++

			s.logger.Debug("enemy destroyed",
				zap.Uint64("laser", uint64(laser)),
				zap.Uint64("enemy", uint64(enemy)),
				zap.Int("live", s.enemyCount.Value()))
			break
		}
	}
	return kills, nil
}

func (s *CollisionSystem) resolveEnemyLasers(destroyed map[ecs.EntityID]struct{}) (bool, error) {
	player, ok := findPlayer(s.entityManager)
	if !ok {
		return false, nil
	}
	playerBox, ok := collisionBox(s.entityManager, player)
	if !ok {
		return false, nil
	}

	for _, laser := range withTags(s.entityManager, components.TagEnemyLaser) {
		if _, gone := destroyed[laser]; gone {
			continue
		}
		laserBox, ok := collisionBox(s.entityManager, laser)
		if !ok || !laserBox.Overlaps(playerBox) {
			continue
		}

		destroyed[laser] = struct{}{}
		destroyed[player] = struct{}{}
		s.commands.Destroy(laser)
		s.commands.Destroy(player)
		if err := entities.NewExplosionRequest(s.commands, playerBox.CenterX, playerBox.CenterY); err != nil {
			return false, fmt.Errorf("laser %d hit player: %w", laser, err)
		}

		now := s.clock.Now()
		s.player.Shot(now)
		s.logger.Info("player shot",
			zap.Uint64("laser", uint64(laser)),
			zap.Float64("at", now))
		return true, nil
	}
	return false, nil
}
