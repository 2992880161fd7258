package components

// FormationComponent holds the elliptical flight parameters of one enemy.
// Enemies spawned from the same group start with identical copies; each copy
// then evolves on its own as the flight system advances Angle.
type FormationComponent struct {
	Start  [2]float64 // spawn point, on the ellipse boundary
	Pivot  [2]float64 // ellipse centre
	Radius [2]float64 // semi-axes (x, y)
	Angle  float64    // current parametric angle on the ellipse
	Speed  float64    // linear speed, px per second

	// Direction is +1 (counter-clockwise) when Start.X < 0, otherwise -1.
	// It is fixed when the formation is generated.
	Direction float64
}

// OrbitDirection returns the orbit direction implied by a start point.
func OrbitDirection(startX float64) float64 {
	if startX < 0 {
		return 1
	}
	return -1
}
