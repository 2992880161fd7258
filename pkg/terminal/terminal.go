// Package terminal is a text front-end for the simulation built on tcell.
// Terminals report key presses but not releases, so a direction counts as
// held for a short window after its last press (key repeat keeps it alive).
package terminal

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/decker502/invaders/pkg/components"
	"github.com/decker502/invaders/pkg/game"
	"github.com/decker502/invaders/pkg/logging"
	"github.com/decker502/invaders/pkg/simulation"
	"github.com/decker502/invaders/pkg/types"
)

// holdWindow is how long a direction stays held after its last key event.
const holdWindow = 150 * time.Millisecond

// Frontend runs a Simulation against a tcell screen.
type Frontend struct {
	screen tcell.Screen
	sim    *simulation.Simulation
	logger *zap.Logger

	lastLeft  time.Time
	lastRight time.Time
	fire      bool
}

// New creates a terminal front-end. The caller owns screen: it must be
// initialised before Run and finalised afterwards.
func New(screen tcell.Screen, sim *simulation.Simulation, logger *zap.Logger) *Frontend {
	return &Frontend{
		screen: screen,
		sim:    sim,
		logger: logging.OrNop(logger).Named("terminal"),
	}
}

// Run ticks the simulation at its timestep until the player quits, ctx is
// cancelled or a tick fails.
func (f *Frontend) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := f.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	step := time.Duration(f.sim.Config().TimeStep * float64(time.Second))
	ticker := time.NewTicker(step)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if f.handleEvent(ev, time.Now()) {
				return nil
			}
		case <-ticker.C:
			if err := f.sim.Tick(f.input(time.Now())); err != nil {
				return fmt.Errorf("simulation stopped: %w", err)
			}
			f.draw()
		}
	}
}

// handleEvent records key state and reports whether the user asked to quit.
func (f *Frontend) handleEvent(ev tcell.Event, now time.Time) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true
		case tcell.KeyLeft:
			f.lastLeft = now
		case tcell.KeyRight:
			f.lastRight = now
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return true
			case 'a', 'h':
				f.lastLeft = now
			case 'd', 'l':
				f.lastRight = now
			case ' ':
				f.fire = true
			}
		}
	case *tcell.EventResize:
		f.screen.Sync()
	}
	return false
}

// input builds this tick's InputState and consumes the fire edge.
func (f *Frontend) input(now time.Time) game.InputState {
	in := game.InputState{
		Left:        !f.lastLeft.IsZero() && now.Sub(f.lastLeft) < holdWindow,
		Right:       !f.lastRight.IsZero() && now.Sub(f.lastRight) < holdWindow,
		FirePressed: f.fire,
	}
	f.fire = false
	return in
}

var (
	styleDefault   = tcell.StyleDefault
	stylePlayer    = tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true)
	styleEnemy     = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleLaser     = tcell.StyleDefault.Foreground(tcell.ColorLime)
	styleEnemyShot = tcell.StyleDefault.Foreground(tcell.ColorOrangeRed)
	styleExplosion = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleStatus    = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

// explosionGlyphs cycle as the explosion plays.
var explosionGlyphs = []rune{'.', 'o', 'O', '*', '@', '*', 'o', '.'}

// glyph returns the rune and style used for a view. frameCount is the
// explosion length.
func glyph(v simulation.EntityView, frameCount int) (rune, tcell.Style) {
	switch v.Handle {
	case types.AssetPlayer:
		return 'A', stylePlayer
	case types.AssetEnemy:
		return 'W', styleEnemy
	case types.AssetPlayerLaser:
		return '|', styleLaser
	case types.AssetEnemyLaser:
		return '!', styleEnemyShot
	case types.AssetExplosionSheet:
		if frameCount <= 0 {
			frameCount = 1
		}
		i := v.FrameIndex * len(explosionGlyphs) / frameCount
		if i >= len(explosionGlyphs) {
			i = len(explosionGlyphs) - 1
		}
		return explosionGlyphs[i], styleExplosion
	}
	if v.Tags.HasTag(components.TagEnemy) {
		return 'W', styleEnemy
	}
	return '?', styleDefault
}

// Cell maps world coordinates to a terminal cell in a cols x rows area. The
// playfield is stretched to fill the area. ok is false outside of it.
func Cell(x, y float64, bounds game.WindowBounds, cols, rows int) (int, int, bool) {
	if cols <= 0 || rows <= 0 {
		return 0, 0, false
	}
	u := (x + bounds.HalfWidth()) / bounds.Width
	v := (bounds.HalfHeight() - y) / bounds.Height
	cx := int(math.Floor(u * float64(cols)))
	cy := int(math.Floor(v * float64(rows)))
	if cx < 0 || cx >= cols || cy < 0 || cy >= rows {
		return 0, 0, false
	}
	return cx, cy, true
}

func (f *Frontend) draw() {
	f.screen.Clear()
	cols, rows := f.screen.Size()
	// bottom line is the status bar
	field := rows - 1

	for _, v := range f.sim.Snapshot() {
		cx, cy, ok := Cell(v.X, v.Y, f.sim.Bounds(), cols, field)
		if !ok {
			continue
		}
		r, style := glyph(v, f.sim.Config().Explosion.FrameCount)
		f.screen.SetContent(cx, cy, r, nil, style)
	}

	status := fmt.Sprintf(" t=%6.2fs  enemies=%d  %s  [arrows/a,d move  space fire  q quit]",
		f.sim.Now(), f.sim.EnemyCount(), playerStatus(f.sim.PlayerState(), f.sim.Now()))
	for i, r := range status {
		if i >= cols {
			break
		}
		f.screen.SetContent(i, rows-1, r, nil, styleStatus)
	}
	f.screen.Show()
}

func playerStatus(p game.PlayerState, now float64) string {
	if p.Alive {
		return "alive"
	}
	if p.LastShot == game.NotInCooldown {
		return "spawning"
	}
	wait := p.RespawnDelay() - (now - p.LastShot)
	if wait < 0 {
		wait = 0
	}
	return fmt.Sprintf("respawn in %.1fs", wait)
}
