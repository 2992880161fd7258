package components

// PositionComponent is the world-space centre of an entity. The origin is the
// centre of the playfield, +Y points up. Z is draw order only and is never
// read by the simulation.
type PositionComponent struct {
	X, Y, Z float64
}
