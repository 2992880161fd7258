package components

// SizeComponent is the unscaled bounding box of an entity, centred on its
// position. The collision resolver multiplies it by the entity's scale.
type SizeComponent struct {
	Width  float64
	Height float64
}
