package systems

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/ecs"
	"github.com/decker502/invaders/pkg/entities"
	"github.com/decker502/invaders/pkg/game"
	"github.com/decker502/invaders/pkg/logging"
)

// PlayerSpawnSystem re-creates the player once its respawn cooldown is over.
type PlayerSpawnSystem struct {
	commands *ecs.CommandBuffer
	config   *config.GameConfig
	player   *game.PlayerState
	clock    Clock
	logger   *zap.Logger
}

// NewPlayerSpawnSystem creates a player spawn system.
func NewPlayerSpawnSystem(cb *ecs.CommandBuffer, cfg *config.GameConfig, player *game.PlayerState, clock Clock, logger *zap.Logger) *PlayerSpawnSystem {
	return &PlayerSpawnSystem{
		commands: cb,
		config:   cfg,
		player:   player,
		clock:    clock,
		logger:   logging.OrNop(logger).Named("player_spawn"),
	}
}

// Update spawns the player at the bottom centre when it is eligible and
// reports whether it did.
func (s *PlayerSpawnSystem) Update() (bool, error) {
	now := s.clock.Now()
	if !s.player.CanRespawn(now) {
		return false, nil
	}
	if err := entities.NewPlayer(s.commands, s.config, 0, entities.PlayerSpawnY(s.config)); err != nil {
		return false, fmt.Errorf("spawn player: %w", err)
	}
	s.player.Spawned()
	s.logger.Info("player spawned", zap.Float64("at", now))
	return true, nil
}
