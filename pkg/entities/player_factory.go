package entities

import (
	"errors"

	"github.com/decker502/invaders/pkg/components"
	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/ecs"
	"github.com/decker502/invaders/pkg/types"
)

var (
	errNilBuffer = errors.New("command buffer cannot be nil")
	errNilConfig = errors.New("game config cannot be nil")
)

func checkArgs(cb *ecs.CommandBuffer, cfg *config.GameConfig) error {
	if cb == nil {
		return errNilBuffer
	}
	if cfg == nil {
		return errNilConfig
	}
	return nil
}

// Draw order. Only the presentation layer reads Z.
const (
	zLaser     = 0
	zShip      = 1
	zExplosion = 2
)

// PlayerSpawnY returns the y of a freshly spawned player: bottom of the
// playfield, lifted by half the scaled sprite height plus a small gap.
func PlayerSpawnY(cfg *config.GameConfig) float64 {
	return -cfg.HalfHeight() + cfg.Sizes.Player.Height/2*cfg.SpriteScale + cfg.PlayerBottomGap
}

// NewPlayer records the creation of the player ship at (x, y).
//
// The player moves through the movement system but never auto-despawns.
func NewPlayer(cb *ecs.CommandBuffer, cfg *config.GameConfig, x, y float64) error {
	if err := checkArgs(cb, cfg); err != nil {
		return err
	}
	cb.Spawn(
		&components.PositionComponent{X: x, Y: y, Z: zShip},
		components.Uniform(cfg.SpriteScale),
		&components.SizeComponent{Width: cfg.Sizes.Player.Width, Height: cfg.Sizes.Player.Height},
		&components.VelocityComponent{},
		&components.MovableComponent{AutoDespawn: false},
		&components.TagComponent{Tags: components.TagPlayer},
		&components.SpriteComponent{Handle: types.AssetPlayer},
	)
	return nil
}
