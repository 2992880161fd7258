package components

// VelocityComponent is a unit direction. Its magnitude is applied by the
// movement system through the configured base speed.
type VelocityComponent struct {
	X, Y float64
}

// MovableComponent marks an entity for straight-line motion. AutoDespawn
// entities are removed once they leave the playfield by the despawn margin.
type MovableComponent struct {
	AutoDespawn bool
}
