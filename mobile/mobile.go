//go:build mobile

// Package mobile is the ebitenmobile binding entry point for Android (.aar)
// and iOS (.xcframework) builds:
//
//	ebitenmobile bind -target android -tags mobile -javapkg com.decker.invaders -o build/invaders.aar ./mobile
//	ebitenmobile bind -target ios -tags mobile -o build/Invaders.xcframework ./mobile
//
// Touch input is handled by the desktop front-end: hold the left or right
// third of the screen to move, tap the middle to fire.
package mobile

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/decker502/invaders/pkg/app"
	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/logging"
	"github.com/decker502/invaders/pkg/simulation"
)

func init() {
	logger, err := logging.New(false)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}

	sim, err := simulation.New(config.DefaultGameConfig(), 0, simulation.WithLogger(logger))
	if err != nil {
		log.Fatalf("failed to create simulation: %v", err)
	}

	mobile.SetGame(app.NewApp(sim, logger))
}

// Dummy is an exported no-op so ebitenmobile recognises the package.
func Dummy() {}
