package entities

import (
	"github.com/decker502/invaders/pkg/components"
	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/ecs"
	"github.com/decker502/invaders/pkg/types"
)

// NewExplosionRequest records a marker at (x, y). The explosion system
// converts it into a playing explosion during the same tick.
func NewExplosionRequest(cb *ecs.CommandBuffer, x, y float64) error {
	if cb == nil {
		return errNilBuffer
	}
	cb.Spawn(&components.ExplosionRequestComponent{X: x, Y: y})
	return nil
}

// NewExplosion records a playing explosion at (x, y), starting on frame 0.
func NewExplosion(cb *ecs.CommandBuffer, cfg *config.GameConfig, x, y float64) error {
	if err := checkArgs(cb, cfg); err != nil {
		return err
	}
	cb.Spawn(
		&components.PositionComponent{X: x, Y: y, Z: zExplosion},
		components.Uniform(1),
		&components.ExplosionComponent{
			FramePeriod: cfg.Explosion.FramePeriod,
			FrameCount:  cfg.Explosion.FrameCount,
		},
		&components.SpriteComponent{Handle: types.AssetExplosionSheet},
	)
	return nil
}
