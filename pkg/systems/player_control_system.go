package systems

import (
	"fmt"

	"github.com/decker502/invaders/pkg/components"
	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/ecs"
	"github.com/decker502/invaders/pkg/entities"
	"github.com/decker502/invaders/pkg/game"
)

// PlayerControlSystem turns the tick's input into player velocity and fire.
type PlayerControlSystem struct {
	entityManager *ecs.EntityManager
	commands      *ecs.CommandBuffer
	config        *config.GameConfig
}

// NewPlayerControlSystem creates a player control system.
func NewPlayerControlSystem(em *ecs.EntityManager, cb *ecs.CommandBuffer, cfg *config.GameConfig) *PlayerControlSystem {
	return &PlayerControlSystem{
		entityManager: em,
		commands:      cb,
		config:        cfg,
	}
}

// Update applies input to the player. Without a player it does nothing.
func (s *PlayerControlSystem) Update(input game.InputState) error {
	id, ok := findPlayer(s.entityManager)
	if !ok {
		return nil
	}

	if vel, ok := ecs.GetComponent[*components.VelocityComponent](s.entityManager, id); ok {
		vel.X = input.Horizontal()
		vel.Y = 0
	}

	if !input.FirePressed {
		return nil
	}
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
	if !ok {
		return nil
	}
	if err := entities.NewPlayerLasers(s.commands, s.config, pos.X, pos.Y); err != nil {
		return fmt.Errorf("player fire: %w", err)
	}
	return nil
}
