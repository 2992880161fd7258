// Package app is the desktop front-end: it drives a simulation from the
// Ebitengine game loop and draws its entities.
//
// The simulation runs at its own fixed timestep; App calls Tick once per
// Ebitengine update, so TimeStep should match ebiten.TPS().
package app

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"
	"golang.org/x/image/colornames"

	"github.com/decker502/invaders/pkg/logging"
	"github.com/decker502/invaders/pkg/simulation"
)

// ErrQuit is returned from Update when the player presses Escape.
var ErrQuit = errors.New("quit requested")

// App implements ebiten.Game around a Simulation.
type App struct {
	sim    *simulation.Simulation
	assets *Assets
	logger *zap.Logger
	width  int
	height int
	paused bool
}

// NewApp creates the desktop front-end for sim.
func NewApp(sim *simulation.Simulation, logger *zap.Logger) *App {
	cfg := sim.Config()
	return &App{
		sim:    sim,
		assets: NewPlaceholderAssets(cfg),
		logger: logging.OrNop(logger).Named("app"),
		width:  int(cfg.Window.Width),
		height: int(cfg.Window.Height),
	}
}

// Run opens the window and blocks until it is closed or the simulation fails.
func (a *App) Run() error {
	ebiten.SetWindowSize(a.width, a.height)
	ebiten.SetWindowTitle("Invaders")
	ebiten.SetTPS(int(1/a.sim.Config().TimeStep + 0.5))

	err := ebiten.RunGame(a)
	if errors.Is(err, ErrQuit) {
		return nil
	}
	return err
}

// Update advances the simulation by one tick.
func (a *App) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ErrQuit
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		a.paused = !a.paused
		a.logger.Info("pause toggled", zap.Bool("paused", a.paused))
	}
	if a.paused {
		return nil
	}

	input := GetInputState(a.width)
	if err := a.sim.Tick(input); err != nil {
		return fmt.Errorf("simulation stopped: %w", err)
	}
	return nil
}

// Draw renders the current state.
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Midnightblue)
	drawViews(screen, a.assets, a.sim.Snapshot())
}

// DrawFinalScreen letterboxes the game in black when fullscreen.
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout returns the logical playfield size.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.width, a.height
}
