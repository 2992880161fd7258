package systems

import (
	"go.uber.org/zap"

	"github.com/decker502/invaders/pkg/components"
	"github.com/decker502/invaders/pkg/ecs"
	"github.com/decker502/invaders/pkg/game"
	"github.com/decker502/invaders/pkg/logging"
)

// MovementSystem integrates straight-line motion and removes auto-despawning
// entities that left the playfield.
type MovementSystem struct {
	entityManager *ecs.EntityManager
	commands      *ecs.CommandBuffer
	bounds        game.WindowBounds
	baseSpeed     float64
	margin        float64
	logger        *zap.Logger
}

// NewMovementSystem creates a movement system. Velocities are unit vectors
// scaled by baseSpeed; entities further than margin outside bounds despawn.
func NewMovementSystem(em *ecs.EntityManager, cb *ecs.CommandBuffer, bounds game.WindowBounds, baseSpeed, margin float64, logger *zap.Logger) *MovementSystem {
	return &MovementSystem{
		entityManager: em,
		commands:      cb,
		bounds:        bounds,
		baseSpeed:     baseSpeed,
		margin:        margin,
		logger:        logging.OrNop(logger).Named("movement"),
	}
}

// Update moves every movable entity by one timestep.
func (s *MovementSystem) Update(timestep float64) {
	ids := ecs.GetEntitiesWith3[
		*components.VelocityComponent,
		*components.PositionComponent,
		*components.MovableComponent,
	](s.entityManager)

	for _, id := range ids {
		vel, _ := ecs.GetComponent[*components.VelocityComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		movable, _ := ecs.GetComponent[*components.MovableComponent](s.entityManager, id)

		pos.X += vel.X * timestep * s.baseSpeed
		pos.Y += vel.Y * timestep * s.baseSpeed

		if movable.AutoDespawn && s.bounds.OutOfBounds(pos.X, pos.Y, s.margin) {
			s.commands.Destroy(id)
			s.logger.Debug("despawned out of bounds",
				zap.Uint64("entity", uint64(id)),
				zap.Float64("x", pos.X),
				zap.Float64("y", pos.Y))
		}
	}
}
