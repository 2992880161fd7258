package systems

import (
	"math"

	"github.com/decker502/invaders/pkg/components"
	"github.com/decker502/invaders/pkg/ecs"
)

// FlightSystem moves every enemy along its formation ellipse.
type FlightSystem struct {
	entityManager *ecs.EntityManager
}

// NewFlightSystem creates a flight system.
func NewFlightSystem(em *ecs.EntityManager) *FlightSystem {
	return &FlightSystem{entityManager: em}
}

// Update advances every entity carrying a formation by one timestep.
func (s *FlightSystem) Update(timestep float64) {
	ids := ecs.GetEntitiesWith2[*components.FormationComponent, *components.PositionComponent](s.entityManager)
	for _, id := range ids {
		formation, ok := ecs.GetComponent[*components.FormationComponent](s.entityManager, id)
		if !ok {
			continue
		}
		pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		if !ok {
			continue
		}
		pos.X, pos.Y = StepFlight(formation, pos.X, pos.Y, timestep)
	}
}

// StepFlight computes one pursuit step from (xOrg, yOrg) towards the point
// ahead on the formation's ellipse and returns the new position.
//
// The entity never moves further than timestep*Speed and never overshoots the
// target point. f.Angle only advances to the target's angle once the entity
// is within Speed/20 steps of it; a straggler keeps chasing the same point.
func StepFlight(f *components.FormationComponent, xOrg, yOrg, timestep float64) (float64, float64) {
	maxDistance := timestep * f.Speed

	candidate := f.Angle + f.Direction*f.Speed*timestep/(math.Min(f.Radius[0], f.Radius[1])*math.Pi/2)
	xDst := f.Radius[0]*math.Cos(candidate) + f.Pivot[0]
	yDst := f.Radius[1]*math.Sin(candidate) + f.Pivot[1]

	dx := xOrg - xDst
	dy := yOrg - yDst
	distance := math.Hypot(dx, dy)

	ratio := 0.0
	if distance != 0 {
		ratio = maxDistance / distance
	}

	x := xOrg - dx*ratio
	if dx > 0 {
		x = math.Max(x, xDst)
	} else {
		x = math.Min(x, xDst)
	}
	y := yOrg - dy*ratio
	if dy > 0 {
		y = math.Max(y, yDst)
	} else {
		y = math.Min(y, yDst)
	}

	if distance < maxDistance*f.Speed/20 {
		f.Angle = candidate
	}
	return x, y
}
