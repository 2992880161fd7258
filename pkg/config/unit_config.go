package config

// Default unit parameters. A GameConfig loaded from yaml overrides them; these
// values are what DefaultGameConfig returns.

// Playfield
const (
	// DefaultWindowWidth logical playfield width (px)
	DefaultWindowWidth = 800.0
	// DefaultWindowHeight logical playfield height (px)
	DefaultWindowHeight = 720.0
)

// Simulation clock
const (
	// DefaultTimeStep fixed simulation step (s)
	DefaultTimeStep = 1.0 / 60.0
	// DefaultBaseSpeed magnitude applied to unit velocities (px/s)
	DefaultBaseSpeed = 500.0
	// DefaultSpriteScale scale attached to every spawned sprite
	DefaultSpriteScale = 0.5
)

// Enemy
const (
	// DefaultEnemyMax cap on live enemies
	DefaultEnemyMax = 2
	// DefaultEnemySpawnInterval at most one enemy spawn per interval (s)
	DefaultEnemySpawnInterval = 1.0
	// DefaultEnemyFireProbability per-tick chance that every enemy fires
	DefaultEnemyFireProbability = 1.0 / 60.0

	// DefaultFormationMembersMax enemies sharing one orbit
	DefaultFormationMembersMax = 2
	// DefaultFormationSpeed linear speed along the orbit (px/s)
	DefaultFormationSpeed = 100.0
	// DefaultFormationRadiusMin smallest semi-axis (px)
	DefaultFormationRadiusMin = 80.0
	// DefaultFormationRadiusMax largest semi-axis (px)
	DefaultFormationRadiusMax = 150.0
	// DefaultSpawnInset keeps formation start points this far inside the
	// playfield edges (px)
	DefaultSpawnInset = 100.0
)

// Projectiles and bounds
const (
	// DefaultDespawnMargin auto-despawn entities once they are this far
	// outside the playfield (px)
	DefaultDespawnMargin = 200.0
	// DefaultPlayerLaserOffsetY vertical offset of player lasers from the ship
	DefaultPlayerLaserOffsetY = 15.0
	// DefaultEnemyLaserOffsetY vertical offset of enemy lasers below the ship
	DefaultEnemyLaserOffsetY = 15.0
)

// Player
const (
	// DefaultPlayerRespawnDelay seconds between death and respawn eligibility
	DefaultPlayerRespawnDelay = 2.0
	// DefaultPlayerBottomGap gap between the player ship and the bottom edge (px)
	DefaultPlayerBottomGap = 5.0
)

// Explosion
const (
	// DefaultExplosionFrameCount usable cells in the explosion sheet
	DefaultExplosionFrameCount = 16
	// DefaultExplosionFramePeriod seconds per explosion frame
	DefaultExplosionFramePeriod = 0.05
	// ExplosionSheetColumns cells per row in the explosion sheet
	ExplosionSheetColumns = 4
	// ExplosionSheetRows rows in the explosion sheet
	ExplosionSheetRows = 4
	// ExplosionCellSize edge of one sheet cell (px)
	ExplosionCellSize = 64
)

// Unscaled sprite sizes (px)
var (
	DefaultPlayerSize      = SizeConfig{Width: 144, Height: 75}
	DefaultPlayerLaserSize = SizeConfig{Width: 9, Height: 54}
	DefaultEnemySize       = SizeConfig{Width: 144, Height: 75}
	DefaultEnemyLaserSize  = SizeConfig{Width: 17, Height: 55}
)
