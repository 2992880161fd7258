package components

// ScaleComponent is the per-entity scale applied both when drawing and when
// computing the collision box (SizeComponent * ScaleComponent).
type ScaleComponent struct {
	ScaleX float64 // 1.0 = original size
	ScaleY float64
}

// Uniform returns a ScaleComponent with the same factor on both axes.
func Uniform(s float64) *ScaleComponent {
	return &ScaleComponent{ScaleX: s, ScaleY: s}
}
