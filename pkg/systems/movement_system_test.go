package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/decker502/invaders/pkg/components"
	"github.com/decker502/invaders/pkg/ecs"
	"github.com/decker502/invaders/pkg/game"
)

func newMovementSystem(w *testWorld) *MovementSystem {
	bounds := game.WindowBounds{Width: w.cfg.Window.Width, Height: w.cfg.Window.Height}
	return NewMovementSystem(w.em, w.cb, bounds, w.cfg.BaseSpeed, w.cfg.DespawnMargin, nil)
}

func addMover(w *testWorld, x, y, vx, vy float64, autoDespawn bool) ecs.EntityID {
	id := w.em.CreateEntity()
	w.em.AddComponent(id, &components.PositionComponent{X: x, Y: y})
	w.em.AddComponent(id, &components.VelocityComponent{X: vx, Y: vy})
	w.em.AddComponent(id, &components.MovableComponent{AutoDespawn: autoDespawn})
	return id
}

func TestMovementSystemIntegratesVelocity(t *testing.T) {
	w := newTestWorld()
	id := addMover(w, 10, 20, 0, 1, true)
	left := addMover(w, 0, 0, -1, 0, false)

	newMovementSystem(w).Update(flightStep)
	w.apply()

	pos, _ := ecs.GetComponent[*components.PositionComponent](w.em, id)
	assert.InDelta(t, 10.0, pos.X, 1e-9)
	assert.InDelta(t, 20+500.0/60, pos.Y, 1e-9)

	leftPos, _ := ecs.GetComponent[*components.PositionComponent](w.em, left)
	assert.InDelta(t, -500.0/60, leftPos.X, 1e-9)
}

func TestMovementSystemSkipsEntitiesWithoutMovable(t *testing.T) {
	w := newTestWorld()
	id := w.em.CreateEntity()
	w.em.AddComponent(id, &components.PositionComponent{X: 1, Y: 1})
	w.em.AddComponent(id, &components.VelocityComponent{X: 1, Y: 1})

	newMovementSystem(w).Update(flightStep)

	pos, _ := ecs.GetComponent[*components.PositionComponent](w.em, id)
	assert.Equal(t, 1.0, pos.X)
}

func TestMovementSystemBoundsDespawn(t *testing.T) {
	w := newTestWorld()
	edge := w.cfg.HalfHeight() + w.cfg.DespawnMargin

	outside := addMover(w, 0, edge+1, 0, 0, true)
	inside := addMover(w, 0, edge-1, 0, 0, true)
	below := addMover(w, 0, -(edge + 1), 0, 0, true)
	sideways := addMover(w, w.cfg.HalfWidth()+w.cfg.DespawnMargin+1, 0, 0, 0, true)
	pinned := addMover(w, 0, edge+1, 0, 0, false)

	newMovementSystem(w).Update(flightStep)
	w.apply()

	assert.False(t, w.em.Exists(outside))
	assert.True(t, w.em.Exists(inside))
	assert.False(t, w.em.Exists(below))
	assert.False(t, w.em.Exists(sideways))
	assert.True(t, w.em.Exists(pinned), "entities without AutoDespawn are never removed")
}

func TestMovementSystemDespawnsAfterCrossingEdge(t *testing.T) {
	w := newTestWorld()
	edge := w.cfg.HalfHeight() + w.cfg.DespawnMargin
	// one step is 500/60 ~ 8.3px
	id := addMover(w, 0, edge-5, 0, 1, true)

	newMovementSystem(w).Update(flightStep)
	w.apply()
	assert.False(t, w.em.Exists(id))
}
