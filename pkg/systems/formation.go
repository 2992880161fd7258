package systems

import (
	"math"

	"github.com/decker502/invaders/pkg/components"
	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/game"
	"github.com/decker502/invaders/pkg/utils"
)

// FormationGenerator hands out flight parameters to spawning enemies. Enemies
// are grouped MembersMax at a time; every member of a group receives an
// identical copy of the same formation.
type FormationGenerator struct {
	cfg config.FormationConfig
	rng utils.RandomSource

	current          *components.FormationComponent
	membersRemaining int
}

// NewFormationGenerator creates a generator with no open group.
func NewFormationGenerator(cfg config.FormationConfig, rng utils.RandomSource) *FormationGenerator {
	return &FormationGenerator{
		cfg: cfg,
		rng: rng,
	}
}

// MembersRemaining returns how many more enemies will share the current
// formation.
func (g *FormationGenerator) MembersRemaining() int {
	return g.membersRemaining
}

// Next returns the formation for the next enemy, opening a new group when the
// current one is used up.
func (g *FormationGenerator) Next(bounds game.WindowBounds) components.FormationComponent {
	if g.membersRemaining <= 0 || g.current == nil {
		g.current = g.newFormation(bounds)
		g.membersRemaining = max(g.cfg.MembersMax, 1)
	}
	g.membersRemaining--
	return *g.current
}

func (g *FormationGenerator) newFormation(bounds game.WindowBounds) *components.FormationComponent {
	wSpan := bounds.HalfWidth() - g.cfg.SpawnInset
	hSpan := bounds.HalfHeight() - g.cfg.SpawnInset
	x := g.rng.Range(-wSpan, wSpan)
	y := g.rng.Range(-hSpan, hSpan)

	rx := g.rng.Range(g.cfg.RadiusMin, g.cfg.RadiusMax)
	ry := g.rng.Range(g.cfg.RadiusMin, g.cfg.RadiusMax)

	// Offset from the start towards the playfield centre so the orbit stays
	// on screen.
	theta := 0.0
	if x != 0 || y != 0 {
		theta = math.Atan2(y, x)
	}
	pivotX := x - rx*math.Cos(theta)
	pivotY := y - ry*math.Sin(theta)

	return &components.FormationComponent{
		Start:     [2]float64{x, y},
		Pivot:     [2]float64{pivotX, pivotY},
		Radius:    [2]float64{rx, ry},
		Angle:     math.Atan2(y-pivotY, x-pivotX),
		Speed:     g.cfg.Speed,
		Direction: components.OrbitDirection(x),
	}
}
