package utils

// AABB is an axis-aligned box given by its centre and full extents.
type AABB struct {
	CenterX, CenterY float64
	Width, Height    float64
}

// NewAABB builds the collision box of an entity: its unscaled size times its
// scale, centred at its position.
func NewAABB(x, y, width, height, scaleX, scaleY float64) AABB {
	return AABB{
		CenterX: x,
		CenterY: y,
		Width:   width * scaleX,
		Height:  height * scaleY,
	}
}

// Overlaps reports whether two boxes intersect. Boxes that only touch along an
// edge do not overlap.
func (a AABB) Overlaps(b AABB) bool {
	left1 := a.CenterX - a.Width/2
	right1 := a.CenterX + a.Width/2
	bottom1 := a.CenterY - a.Height/2
	top1 := a.CenterY + a.Height/2

	left2 := b.CenterX - b.Width/2
	right2 := b.CenterX + b.Width/2
	bottom2 := b.CenterY - b.Height/2
	top2 := b.CenterY + b.Height/2

	return left1 < right2 &&
		right1 > left2 &&
		bottom1 < top2 &&
		top1 > bottom2
}
