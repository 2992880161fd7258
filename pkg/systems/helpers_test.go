package systems

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/decker502/invaders/pkg/components"
	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/ecs"
	"github.com/decker502/invaders/pkg/entities"
)

type fixedClock struct {
	now float64
}

func (c *fixedClock) Now() float64 { return c.now }

// scriptedRandom replays a fixed list of draws in [0, 1), cycling when it
// runs out.
type scriptedRandom struct {
	draws []float64
	next  int
}

func (r *scriptedRandom) Float64() float64 {
	v := r.draws[r.next%len(r.draws)]
	r.next++
	return v
}

func (r *scriptedRandom) Range(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + r.Float64()*(hi-lo)
}

func (r *scriptedRandom) Bool(p float64) bool {
	return r.Float64() < p
}

// testWorld bundles a fresh store, command buffer and default config.
type testWorld struct {
	em  *ecs.EntityManager
	cb  *ecs.CommandBuffer
	cfg *config.GameConfig
}

func newTestWorld() *testWorld {
	return &testWorld{
		em:  ecs.NewEntityManager(),
		cb:  ecs.NewCommandBuffer(),
		cfg: config.DefaultGameConfig(),
	}
}

func (w *testWorld) apply() []ecs.EntityID {
	return w.cb.Apply(w.em)
}

func (w *testWorld) addEnemy(t *testing.T, x, y float64) ecs.EntityID {
	t.Helper()
	f := components.FormationComponent{
		Start:     [2]float64{x, y},
		Pivot:     [2]float64{x, y - 100},
		Radius:    [2]float64{100, 100},
		Angle:     0,
		Speed:     w.cfg.Formation.Speed,
		Direction: components.OrbitDirection(x),
	}
	require.NoError(t, entities.NewEnemy(w.cb, w.cfg, f))
	return w.apply()[0]
}

func (w *testWorld) addPlayer(t *testing.T, x, y float64) ecs.EntityID {
	t.Helper()
	require.NoError(t, entities.NewPlayer(w.cb, w.cfg, x, y))
	return w.apply()[0]
}

// addPlayerLaser creates a single player laser centred exactly on (x, y).
func (w *testWorld) addPlayerLaser(t *testing.T, x, y float64) ecs.EntityID {
	t.Helper()
	w.cb.Spawn(
		&components.PositionComponent{X: x, Y: y},
		components.Uniform(w.cfg.SpriteScale),
		&components.SizeComponent{Width: w.cfg.Sizes.PlayerLaser.Width, Height: w.cfg.Sizes.PlayerLaser.Height},
		&components.VelocityComponent{Y: 1},
		&components.MovableComponent{AutoDespawn: true},
		&components.TagComponent{Tags: components.TagPlayerLaser},
	)
	return w.apply()[0]
}

// addEnemyLaser creates a single enemy laser centred exactly on (x, y).
func (w *testWorld) addEnemyLaser(t *testing.T, x, y float64) ecs.EntityID {
	t.Helper()
	w.cb.Spawn(
		&components.PositionComponent{X: x, Y: y},
		components.Uniform(w.cfg.SpriteScale),
		&components.SizeComponent{Width: w.cfg.Sizes.EnemyLaser.Width, Height: w.cfg.Sizes.EnemyLaser.Height},
		&components.VelocityComponent{Y: -1},
		&components.MovableComponent{AutoDespawn: true},
		&components.TagComponent{Tags: components.TagEnemyLaser},
	)
	return w.apply()[0]
}
