package components

// ExplosionRequestComponent marks an ephemeral entity recording where a
// destruction happened. The explosion system turns it into an
// ExplosionComponent entity in the same tick and removes it.
type ExplosionRequestComponent struct {
	X, Y float64
}

// ExplosionComponent drives sprite-sheet playback of an explosion.
type ExplosionComponent struct {
	FrameTimer  float64 // seconds accumulated towards the next frame
	FramePeriod float64 // seconds per frame
	FrameIndex  int     // current cell of the sheet
	FrameCount  int     // number of usable cells; the entity is gone at FrameIndex >= FrameCount
}

// Finished reports whether playback has run past the last frame.
func (e *ExplosionComponent) Finished() bool {
	return e.FrameIndex >= e.FrameCount
}
