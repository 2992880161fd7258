package systems

import (
	"fmt"

	"github.com/decker502/invaders/pkg/components"
	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/ecs"
	"github.com/decker502/invaders/pkg/entities"
	"github.com/decker502/invaders/pkg/utils"
)

// EnemyFireSystem makes every enemy fire together on ticks that pass a
// Bernoulli trial. The trial (ShouldFire) and the effect (Fire) are separate
// so each can be driven on its own.
type EnemyFireSystem struct {
	entityManager *ecs.EntityManager
	commands      *ecs.CommandBuffer
	config        *config.GameConfig
	rng           utils.RandomSource
}

// NewEnemyFireSystem creates an enemy fire system.
func NewEnemyFireSystem(em *ecs.EntityManager, cb *ecs.CommandBuffer, cfg *config.GameConfig, rng utils.RandomSource) *EnemyFireSystem {
	return &EnemyFireSystem{
		entityManager: em,
		commands:      cb,
		config:        cfg,
		rng:           rng,
	}
}

// ShouldFire draws this tick's trial, true with EnemyFireProbability.
func (s *EnemyFireSystem) ShouldFire() bool {
	return s.rng.Bool(s.config.EnemyFireProbability)
}

// Fire records one downward laser per live enemy and returns how many were
// fired.
func (s *EnemyFireSystem) Fire() (int, error) {
	fired := 0
	for _, id := range withTags(s.entityManager, components.TagEnemy) {
		pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		if !ok {
			continue
		}
		if err := entities.NewEnemyLaser(s.commands, s.config, pos.X, pos.Y); err != nil {
			return fired, fmt.Errorf("enemy %d fire: %w", id, err)
		}
		fired++
	}
	return fired, nil
}

// Update runs the trial and fires when it passes.
func (s *EnemyFireSystem) Update() (int, error) {
	if !s.ShouldFire() {
		return 0, nil
	}
	return s.Fire()
}
