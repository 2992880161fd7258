package game

// WindowBounds is the playfield extent. The origin is its centre, so an
// entity is on screen while |x| <= Width/2 and |y| <= Height/2.
type WindowBounds struct {
	Width  float64
	Height float64
}

// HalfWidth returns Width/2.
func (b WindowBounds) HalfWidth() float64 { return b.Width / 2 }

// HalfHeight returns Height/2.
func (b WindowBounds) HalfHeight() float64 { return b.Height / 2 }

// OutOfBounds reports whether (x, y) lies further than margin outside the
// playfield on either axis.
func (b WindowBounds) OutOfBounds(x, y, margin float64) bool {
	return abs(x) > b.HalfWidth()+margin || abs(y) > b.HalfHeight()+margin
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// InputState is the per-tick input snapshot handed to the simulation.
// FirePressed is an edge: true only on the tick the fire key went down.
type InputState struct {
	Left        bool
	Right       bool
	FirePressed bool
}

// Horizontal returns -1, 0 or +1. Left wins when both directions are held.
func (in InputState) Horizontal() float64 {
	switch {
	case in.Left:
		return -1
	case in.Right:
		return 1
	default:
		return 0
	}
}
