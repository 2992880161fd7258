package entities

import (
	"github.com/decker502/invaders/pkg/components"
	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/ecs"
	"github.com/decker502/invaders/pkg/types"
)

// PlayerLaserOffsetX is the horizontal distance from the player's centre to
// each of its two guns.
func PlayerLaserOffsetX(cfg *config.GameConfig) float64 {
	return cfg.Sizes.Player.Width/2*cfg.SpriteScale - 5
}

// NewPlayerLasers records the pair of lasers fired by a player at (x, y).
// Both travel straight up and despawn once off screen.
func NewPlayerLasers(cb *ecs.CommandBuffer, cfg *config.GameConfig, x, y float64) error {
	if err := checkArgs(cb, cfg); err != nil {
		return err
	}
	offset := PlayerLaserOffsetX(cfg)
	for _, lx := range []float64{x - offset, x + offset} {
		cb.Spawn(
			&components.PositionComponent{X: lx, Y: y + cfg.PlayerLaserOffsetY, Z: zLaser},
			components.Uniform(cfg.SpriteScale),
			&components.SizeComponent{Width: cfg.Sizes.PlayerLaser.Width, Height: cfg.Sizes.PlayerLaser.Height},
			&components.VelocityComponent{X: 0, Y: 1},
			&components.MovableComponent{AutoDespawn: true},
			&components.TagComponent{Tags: components.TagPlayerLaser},
			&components.SpriteComponent{Handle: types.AssetPlayerLaser},
		)
	}
	return nil
}

// NewEnemyLaser records a laser fired downwards by an enemy at (x, y).
func NewEnemyLaser(cb *ecs.CommandBuffer, cfg *config.GameConfig, x, y float64) error {
	if err := checkArgs(cb, cfg); err != nil {
		return err
	}
	cb.Spawn(
		&components.PositionComponent{X: x, Y: y - cfg.EnemyLaserOffsetY, Z: zLaser},
		components.Uniform(cfg.SpriteScale),
		&components.SizeComponent{Width: cfg.Sizes.EnemyLaser.Width, Height: cfg.Sizes.EnemyLaser.Height},
		&components.VelocityComponent{X: 0, Y: -1},
		&components.MovableComponent{AutoDespawn: true},
		&components.TagComponent{Tags: components.TagEnemyLaser},
		&components.SpriteComponent{Handle: types.AssetEnemyLaser},
	)
	return nil
}
