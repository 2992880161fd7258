package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// GameConfig holds every tunable of the simulation.
//
// Configuration file: data/invaders.yaml (embedded). Fields missing from a
// file keep their DefaultGameConfig value.
type GameConfig struct {
	Window WindowConfig `yaml:"window"`

	TimeStep    float64 `yaml:"timeStep"`
	BaseSpeed   float64 `yaml:"baseSpeed"`
	SpriteScale float64 `yaml:"spriteScale"`

	EnemyMax             int     `yaml:"enemyMax"`
	EnemySpawnInterval   float64 `yaml:"enemySpawnInterval"`
	EnemyFireProbability float64 `yaml:"enemyFireProbability"`

	Formation FormationConfig `yaml:"formation"`

	DespawnMargin      float64 `yaml:"despawnMargin"`
	PlayerLaserOffsetY float64 `yaml:"playerLaserOffsetY"`
	EnemyLaserOffsetY  float64 `yaml:"enemyLaserOffsetY"`

	PlayerRespawnDelay float64 `yaml:"playerRespawnDelay"`
	PlayerBottomGap    float64 `yaml:"playerBottomGap"`

	Explosion ExplosionConfig `yaml:"explosion"`

	Sizes SizesConfig `yaml:"sizes"`
}

// WindowConfig is the logical playfield extent. The origin is its centre.
type WindowConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// FormationConfig parameterises the formation generator.
type FormationConfig struct {
	MembersMax int     `yaml:"membersMax"`
	Speed      float64 `yaml:"speed"`
	RadiusMin  float64 `yaml:"radiusMin"`
	RadiusMax  float64 `yaml:"radiusMax"`
	SpawnInset float64 `yaml:"spawnInset"`
}

// ExplosionConfig parameterises explosion playback.
type ExplosionConfig struct {
	FrameCount  int     `yaml:"frameCount"`
	FramePeriod float64 `yaml:"framePeriod"`
}

// SizeConfig is an unscaled bounding box.
type SizeConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// SizesConfig groups the unscaled sprite sizes.
type SizesConfig struct {
	Player      SizeConfig `yaml:"player"`
	PlayerLaser SizeConfig `yaml:"playerLaser"`
	Enemy       SizeConfig `yaml:"enemy"`
	EnemyLaser  SizeConfig `yaml:"enemyLaser"`
}

// DefaultGameConfig returns the built-in configuration.
func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		Window:               WindowConfig{Width: DefaultWindowWidth, Height: DefaultWindowHeight},
		TimeStep:             DefaultTimeStep,
		BaseSpeed:            DefaultBaseSpeed,
		SpriteScale:          DefaultSpriteScale,
		EnemyMax:             DefaultEnemyMax,
		EnemySpawnInterval:   DefaultEnemySpawnInterval,
		EnemyFireProbability: DefaultEnemyFireProbability,
		Formation: FormationConfig{
			MembersMax: DefaultFormationMembersMax,
			Speed:      DefaultFormationSpeed,
			RadiusMin:  DefaultFormationRadiusMin,
			RadiusMax:  DefaultFormationRadiusMax,
			SpawnInset: DefaultSpawnInset,
		},
		DespawnMargin:      DefaultDespawnMargin,
		PlayerLaserOffsetY: DefaultPlayerLaserOffsetY,
		EnemyLaserOffsetY:  DefaultEnemyLaserOffsetY,
		PlayerRespawnDelay: DefaultPlayerRespawnDelay,
		PlayerBottomGap:    DefaultPlayerBottomGap,
		Explosion: ExplosionConfig{
			FrameCount:  DefaultExplosionFrameCount,
			FramePeriod: DefaultExplosionFramePeriod,
		},
		Sizes: SizesConfig{
			Player:      DefaultPlayerSize,
			PlayerLaser: DefaultPlayerLaserSize,
			Enemy:       DefaultEnemySize,
			EnemyLaser:  DefaultEnemyLaserSize,
		},
	}
}

// LoadGameConfig reads a YAML game configuration from path.
//
// Parameters:
//   - path: configuration file path (e.g. "data/invaders.yaml")
//
// Returns:
//   - *GameConfig: the validated configuration
//   - error: read, parse or validation failure
func LoadGameConfig(path string) (*GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read game config: %w", err)
	}
	return ParseGameConfig(data)
}

// ParseGameConfig decodes a YAML document on top of the defaults and
// validates the result.
func ParseGameConfig(data []byte) (*GameConfig, error) {
	cfg := DefaultGameConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse game config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid game config: %w", err)
	}

	return cfg, nil
}

// Validate checks that every value is usable by the simulation.
func (c *GameConfig) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %.1fx%.1f", c.Window.Width, c.Window.Height)
	}
	if c.TimeStep <= 0 {
		return fmt.Errorf("timeStep must be positive, got %f", c.TimeStep)
	}
	if c.BaseSpeed <= 0 {
		return fmt.Errorf("baseSpeed must be positive, got %.1f", c.BaseSpeed)
	}
	if c.SpriteScale <= 0 {
		return fmt.Errorf("spriteScale must be positive, got %f", c.SpriteScale)
	}
	if c.EnemyMax < 0 {
		return fmt.Errorf("enemyMax must not be negative, got %d", c.EnemyMax)
	}
	if c.EnemySpawnInterval < 0 {
		return fmt.Errorf("enemySpawnInterval must not be negative, got %f", c.EnemySpawnInterval)
	}
	if c.EnemyFireProbability < 0 || c.EnemyFireProbability > 1 {
		return fmt.Errorf("enemyFireProbability must be within [0, 1], got %f", c.EnemyFireProbability)
	}

	f := c.Formation
	if f.MembersMax < 1 {
		return fmt.Errorf("formation.membersMax must be at least 1, got %d", f.MembersMax)
	}
	if f.Speed <= 0 {
		return fmt.Errorf("formation.speed must be positive, got %.1f", f.Speed)
	}
	if f.RadiusMin <= 0 {
		return fmt.Errorf("formation.radiusMin must be positive, got %.1f", f.RadiusMin)
	}
	if f.RadiusMin > f.RadiusMax {
		return fmt.Errorf("formation radius range invalid: min(%.1f) > max(%.1f)", f.RadiusMin, f.RadiusMax)
	}
	if f.SpawnInset < 0 || f.SpawnInset >= c.Window.Width/2 || f.SpawnInset >= c.Window.Height/2 {
		return fmt.Errorf("formation.spawnInset %.1f must be within [0, half the smaller window edge)", f.SpawnInset)
	}

	if c.DespawnMargin < 0 {
		return fmt.Errorf("despawnMargin must not be negative, got %.1f", c.DespawnMargin)
	}
	if c.PlayerRespawnDelay < 0 {
		return fmt.Errorf("playerRespawnDelay must not be negative, got %f", c.PlayerRespawnDelay)
	}

	if c.Explosion.FrameCount < 1 {
		return fmt.Errorf("explosion.frameCount must be at least 1, got %d", c.Explosion.FrameCount)
	}
	if c.Explosion.FrameCount > ExplosionSheetColumns*ExplosionSheetRows {
		return fmt.Errorf("explosion.frameCount %d exceeds the %dx%d sheet",
			c.Explosion.FrameCount, ExplosionSheetColumns, ExplosionSheetRows)
	}
	if c.Explosion.FramePeriod <= 0 {
		return fmt.Errorf("explosion.framePeriod must be positive, got %f", c.Explosion.FramePeriod)
	}

	for name, s := range map[string]SizeConfig{
		"player":      c.Sizes.Player,
		"playerLaser": c.Sizes.PlayerLaser,
		"enemy":       c.Sizes.Enemy,
		"enemyLaser":  c.Sizes.EnemyLaser,
	} {
		if s.Width <= 0 || s.Height <= 0 {
			return fmt.Errorf("sizes.%s must be positive, got %.1fx%.1f", name, s.Width, s.Height)
		}
	}

	return nil
}

// HalfWidth returns half the playfield width.
func (c *GameConfig) HalfWidth() float64 { return c.Window.Width / 2 }

// HalfHeight returns half the playfield height.
func (c *GameConfig) HalfHeight() float64 { return c.Window.Height / 2 }
