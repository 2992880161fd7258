package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/decker502/invaders/pkg/components"
	"github.com/decker502/invaders/pkg/ecs"
	"github.com/decker502/invaders/pkg/game"
)

type collisionFixture struct {
	*testWorld
	count  *game.EnemyCount
	player *game.PlayerState
	clock  *fixedClock
	system *CollisionSystem
}

func newCollisionFixture() *collisionFixture {
	w := newTestWorld()
	f := &collisionFixture{
		testWorld: w,
		count:     game.NewEnemyCount(10),
		player:    game.NewPlayerState(w.cfg.PlayerRespawnDelay),
		clock:     &fixedClock{now: 4.5},
	}
	f.system = NewCollisionSystem(w.em, w.cb, f.count, f.player, f.clock, nil)
	return f
}

func (f *collisionFixture) enemy(t *testing.T, x, y float64) ecs.EntityID {
	t.Helper()
	require.NoError(t, f.count.Increment())
	return f.addEnemy(t, x, y)
}

func explosionRequests(em *ecs.EntityManager) []*components.ExplosionRequestComponent {
	var out []*components.ExplosionRequestComponent
	for _, id := range ecs.GetEntitiesWith1[*components.ExplosionRequestComponent](em) {
		req, _ := ecs.GetComponent[*components.ExplosionRequestComponent](em, id)
		out = append(out, req)
	}
	return out
}

func TestCollisionSystemLaserKillsEnemy(t *testing.T) {
	f := newCollisionFixture()
	enemy := f.enemy(t, 30, 40)
	laser := f.addPlayerLaser(t, 35, 45)

	report, err := f.system.Update(flightStep)
	require.NoError(t, err)
	f.apply()

	assert.Equal(t, CollisionReport{EnemiesDestroyed: 1}, report)
	assert.False(t, f.em.Exists(enemy))
	assert.False(t, f.em.Exists(laser))
	assert.Equal(t, 0, f.count.Value())

	reqs := explosionRequests(f.em)
	require.Len(t, reqs, 1)
	assert.Equal(t, 30.0, reqs[0].X, "explosion sits on the enemy, not the laser")
	assert.Equal(t, 40.0, reqs[0].Y)
}

func TestCollisionSystemResolvesEachEntityOnce(t *testing.T) {
	f := newCollisionFixture()
	// two enemies and three lasers all overlapping each other
	e1 := f.enemy(t, 0, 0)
	e2 := f.enemy(t, 10, 0)
	l1 := f.addPlayerLaser(t, 0, 0)
	l2 := f.addPlayerLaser(t, 2, 0)
	l3 := f.addPlayerLaser(t, 4, 0)

	report, err := f.system.Update(flightStep)
	require.NoError(t, err, "a double resolution would underflow the counter")
	f.apply()

	assert.Equal(t, 2, report.EnemiesDestroyed)
	assert.Equal(t, 0, f.count.Value())
	assert.False(t, f.em.Exists(e1))
	assert.False(t, f.em.Exists(e2))
	assert.False(t, f.em.Exists(l1))
	assert.False(t, f.em.Exists(l2))
	assert.True(t, f.em.Exists(l3), "nothing left for the third laser to hit")
	assert.Len(t, explosionRequests(f.em), 2)
}

func TestCollisionSystemTwoLasersOneEnemy(t *testing.T) {
	f := newCollisionFixture()
	enemy := f.enemy(t, 0, 0)
	first := f.addPlayerLaser(t, -3, 0)
	second := f.addPlayerLaser(t, 3, 0)

	report, err := f.system.Update(flightStep)
	require.NoError(t, err)
	f.apply()

	assert.Equal(t, 1, report.EnemiesDestroyed)
	assert.False(t, f.em.Exists(enemy))
	assert.False(t, f.em.Exists(first), "creation order breaks the tie")
	assert.True(t, f.em.Exists(second))
	assert.Equal(t, 0, f.count.Value())
}

func TestCollisionSystemSurfacesUnderflow(t *testing.T) {
	f := newCollisionFixture()
	// an enemy the counter never saw
	f.addEnemy(t, 0, 0)
	f.addPlayerLaser(t, 0, 0)

	_, err := f.system.Update(flightStep)
	require.Error(t, err)
	assert.ErrorIs(t, err, game.ErrEnemyCountUnderflow)
	assert.Equal(t, 0, f.count.Value(), "never clamped")
}

func TestCollisionSystemTouchingBoxesMiss(t *testing.T) {
	f := newCollisionFixture()
	// enemy box 72 wide, laser box 4.5 wide: centres 38.25 apart touch exactly
	enemy := f.enemy(t, 0, 0)
	laser := f.addPlayerLaser(t, 38.25, 0)

	report, err := f.system.Update(flightStep)
	require.NoError(t, err)
	f.apply()

	assert.Zero(t, report.EnemiesDestroyed)
	assert.True(t, f.em.Exists(enemy))
	assert.True(t, f.em.Exists(laser))
}

func TestCollisionSystemEnemyLasersIgnoreEnemies(t *testing.T) {
	f := newCollisionFixture()
	enemy := f.enemy(t, 0, 0)
	laser := f.addEnemyLaser(t, 0, 0)

	report, err := f.system.Update(flightStep)
	require.NoError(t, err)
	f.apply()

	assert.Equal(t, CollisionReport{}, report)
	assert.True(t, f.em.Exists(enemy))
	assert.True(t, f.em.Exists(laser))
}

func TestCollisionSystemPlayerHitOnce(t *testing.T) {
	f := newCollisionFixture()
	f.player.Spawned()
	player := f.addPlayer(t, 0, -300)
	first := f.addEnemyLaser(t, 0, -300)
	second := f.addEnemyLaser(t, 5, -300)

	report, err := f.system.Update(flightStep)
	require.NoError(t, err)
	f.apply()

	assert.True(t, report.PlayerHit)
	assert.False(t, f.em.Exists(player))
	assert.False(t, f.em.Exists(first))
	assert.True(t, f.em.Exists(second), "scanning stops at the first hit")

	assert.False(t, f.player.Alive)
	assert.Equal(t, 4.5, f.player.LastShot)

	reqs := explosionRequests(f.em)
	require.Len(t, reqs, 1)
	assert.Equal(t, 0.0, reqs[0].X)
	assert.Equal(t, -300.0, reqs[0].Y)
}

func TestCollisionSystemWithoutPlayer(t *testing.T) {
	f := newCollisionFixture()
	laser := f.addEnemyLaser(t, 0, -300)

	report, err := f.system.Update(flightStep)
	require.NoError(t, err)
	f.apply()

	assert.False(t, report.PlayerHit)
	assert.True(t, f.em.Exists(laser))
}

func TestCollisionSystemBothPassesInOneTick(t *testing.T) {
	f := newCollisionFixture()
	f.player.Spawned()
	f.enemy(t, 200, 200)
	f.addPlayerLaser(t, 200, 200)
	f.addPlayer(t, -200, -300)
	f.addEnemyLaser(t, -200, -300)

	report, err := f.system.Update(flightStep)
	require.NoError(t, err)
	assert.Equal(t, CollisionReport{EnemiesDestroyed: 1, PlayerHit: true}, report)
}
