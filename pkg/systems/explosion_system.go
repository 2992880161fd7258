package systems

import (
	"fmt"

	"github.com/decker502/invaders/pkg/components"
	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/ecs"
	"github.com/decker502/invaders/pkg/entities"
)

// ExplosionSystem drives explosions through Requested -> Playing -> Gone.
type ExplosionSystem struct {
	entityManager *ecs.EntityManager
	commands      *ecs.CommandBuffer
	config        *config.GameConfig
}

// NewExplosionSystem creates an explosion system.
func NewExplosionSystem(em *ecs.EntityManager, cb *ecs.CommandBuffer, cfg *config.GameConfig) *ExplosionSystem {
	return &ExplosionSystem{
		entityManager: em,
		commands:      cb,
		config:        cfg,
	}
}

// Update converts pending requests into explosions and advances playing ones.
// Explosions created from requests in this call start advancing on the next.
func (s *ExplosionSystem) Update(dt float64) error {
	requests := ecs.GetEntitiesWith1[*components.ExplosionRequestComponent](s.entityManager)
	for _, id := range requests {
		req, ok := ecs.GetComponent[*components.ExplosionRequestComponent](s.entityManager, id)
		if !ok {
			continue
		}
		if err := entities.NewExplosion(s.commands, s.config, req.X, req.Y); err != nil {
			return fmt.Errorf("explosion request %d: %w", id, err)
		}
		s.commands.Destroy(id)
	}

	playing := ecs.GetEntitiesWith1[*components.ExplosionComponent](s.entityManager)
	for _, id := range playing {
		exp, ok := ecs.GetComponent[*components.ExplosionComponent](s.entityManager, id)
		if !ok {
			continue
		}
		advanceExplosion(exp, dt)
		if exp.Finished() {
			s.commands.Destroy(id)
		}
	}
	return nil
}

// advanceExplosion adds dt to the frame timer and moves one frame forward per
// completed period.
func advanceExplosion(exp *components.ExplosionComponent, dt float64) {
	if exp.FramePeriod <= 0 {
		exp.FrameIndex = exp.FrameCount
		return
	}
	exp.FrameTimer += dt
	for exp.FrameTimer >= exp.FramePeriod && !exp.Finished() {
		exp.FrameTimer -= exp.FramePeriod
		exp.FrameIndex++
	}
}
