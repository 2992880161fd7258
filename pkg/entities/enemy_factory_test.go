package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/decker502/invaders/pkg/components"
	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/ecs"
)

func TestNewEnemyOwnsItsFormationCopy(t *testing.T) {
	cfg := config.DefaultGameConfig()
	em := ecs.NewEntityManager()
	cb := ecs.NewCommandBuffer()

	f := components.FormationComponent{
		Start:     [2]float64{-120, 80},
		Pivot:     [2]float64{-20, 40},
		Radius:    [2]float64{100, 100},
		Angle:     0.5,
		Speed:     100,
		Direction: 1,
	}
	require.NoError(t, NewEnemy(cb, cfg, f))
	require.NoError(t, NewEnemy(cb, cfg, f))
	ids := cb.Apply(em)
	require.Len(t, ids, 2)

	a, ok := ecs.GetComponent[*components.FormationComponent](em, ids[0])
	require.True(t, ok)
	b, ok := ecs.GetComponent[*components.FormationComponent](em, ids[1])
	require.True(t, ok)
	assert.Equal(t, f, *a)
	assert.NotSame(t, a, b)

	a.Angle = 2
	assert.Equal(t, 0.5, b.Angle)
	assert.Equal(t, 0.5, f.Angle)

	pos, _ := ecs.GetComponent[*components.PositionComponent](em, ids[0])
	assert.Equal(t, -120.0, pos.X)
	assert.Equal(t, 80.0, pos.Y)

	tag, _ := ecs.GetComponent[*components.TagComponent](em, ids[0])
	assert.Equal(t, components.TagEnemy, tag.Tags)
	assert.False(t, ecs.HasComponent[*components.MovableComponent](em, ids[0]))
}
