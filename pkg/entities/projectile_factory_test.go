package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/decker502/invaders/pkg/components"
	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/ecs"
	"github.com/decker502/invaders/pkg/types"
)

func TestNewPlayerLasers(t *testing.T) {
	cfg := config.DefaultGameConfig()
	em := ecs.NewEntityManager()
	cb := ecs.NewCommandBuffer()

	require.NoError(t, NewPlayerLasers(cb, cfg, 10, -300))
	ids := cb.Apply(em)
	require.Len(t, ids, 2)

	// 144/2*0.5 - 5
	assert.Equal(t, 31.0, PlayerLaserOffsetX(cfg))

	wantX := []float64{10 - 31, 10 + 31}
	for i, id := range ids {
		pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
		require.True(t, ok)
		assert.Equal(t, wantX[i], pos.X)
		assert.Equal(t, -300+cfg.PlayerLaserOffsetY, pos.Y)

		vel, ok := ecs.GetComponent[*components.VelocityComponent](em, id)
		require.True(t, ok)
		assert.Equal(t, components.VelocityComponent{X: 0, Y: 1}, *vel)

		mov, ok := ecs.GetComponent[*components.MovableComponent](em, id)
		require.True(t, ok)
		assert.True(t, mov.AutoDespawn)

		tag, ok := ecs.GetComponent[*components.TagComponent](em, id)
		require.True(t, ok)
		assert.True(t, tag.Has(components.TagPlayerLaser))
		assert.False(t, tag.Has(components.TagFromEnemy))

		sprite, ok := ecs.GetComponent[*components.SpriteComponent](em, id)
		require.True(t, ok)
		assert.Equal(t, types.AssetPlayerLaser, sprite.Handle)
	}
}

func TestNewEnemyLaser(t *testing.T) {
	cfg := config.DefaultGameConfig()
	em := ecs.NewEntityManager()
	cb := ecs.NewCommandBuffer()

	require.NoError(t, NewEnemyLaser(cb, cfg, 50, 100))
	ids := cb.Apply(em)
	require.Len(t, ids, 1)

	pos, _ := ecs.GetComponent[*components.PositionComponent](em, ids[0])
	assert.Equal(t, 50.0, pos.X)
	assert.Equal(t, 100-cfg.EnemyLaserOffsetY, pos.Y)

	vel, _ := ecs.GetComponent[*components.VelocityComponent](em, ids[0])
	assert.Equal(t, -1.0, vel.Y)

	tag, _ := ecs.GetComponent[*components.TagComponent](em, ids[0])
	assert.Equal(t, components.TagEnemyLaser, tag.Tags)

	size, _ := ecs.GetComponent[*components.SizeComponent](em, ids[0])
	assert.Equal(t, cfg.Sizes.EnemyLaser.Width, size.Width)
	assert.Equal(t, cfg.Sizes.EnemyLaser.Height, size.Height)
}

func TestFactoriesRejectNilArguments(t *testing.T) {
	cfg := config.DefaultGameConfig()
	cb := ecs.NewCommandBuffer()

	assert.ErrorIs(t, NewPlayerLasers(nil, cfg, 0, 0), errNilBuffer)
	assert.ErrorIs(t, NewPlayerLasers(cb, nil, 0, 0), errNilConfig)
	assert.ErrorIs(t, NewEnemyLaser(nil, cfg, 0, 0), errNilBuffer)
	assert.ErrorIs(t, NewPlayer(cb, nil, 0, 0), errNilConfig)
	assert.ErrorIs(t, NewEnemy(nil, cfg, components.FormationComponent{}), errNilBuffer)
	assert.ErrorIs(t, NewExplosionRequest(nil, 0, 0), errNilBuffer)
	assert.ErrorIs(t, NewExplosion(cb, nil, 0, 0), errNilConfig)
	assert.Zero(t, cb.Len())
}
