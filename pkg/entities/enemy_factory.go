package entities

import (
	"github.com/decker502/invaders/pkg/components"
	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/ecs"
	"github.com/decker502/invaders/pkg/types"
)

// NewEnemy records the creation of an enemy at the start point of formation.
// The enemy gets its own copy of the formation; the flight system moves it,
// not the movement system, so it carries no velocity.
func NewEnemy(cb *ecs.CommandBuffer, cfg *config.GameConfig, formation components.FormationComponent) error {
	if err := checkArgs(cb, cfg); err != nil {
		return err
	}
	f := formation
	cb.Spawn(
		&components.PositionComponent{X: f.Start[0], Y: f.Start[1], Z: zShip},
		components.Uniform(cfg.SpriteScale),
		&components.SizeComponent{Width: cfg.Sizes.Enemy.Width, Height: cfg.Sizes.Enemy.Height},
		&f,
		&components.TagComponent{Tags: components.TagEnemy},
		&components.SpriteComponent{Handle: types.AssetEnemy},
	)
	return nil
}
