package app

import (
	"slices"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/invaders/pkg/simulation"
)

// WorldToScreen converts world coordinates (origin at the centre, +Y up) to
// screen pixels (origin top-left, +Y down).
func WorldToScreen(x, y float64, screenWidth, screenHeight int) (float64, float64) {
	return x + float64(screenWidth)/2, float64(screenHeight)/2 - y
}

// drawOrder sorts views by Z, keeping creation order within a layer.
func drawOrder(views []simulation.EntityView) {
	slices.SortStableFunc(views, func(a, b simulation.EntityView) int {
		switch {
		case a.Z < b.Z:
			return -1
		case a.Z > b.Z:
			return 1
		default:
			return 0
		}
	})
}

// drawViews renders every view centred on its position.
func drawViews(screen *ebiten.Image, assets *Assets, views []simulation.EntityView) {
	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	drawOrder(views)
	for _, v := range views {
		img := assets.Image(v.Handle, v.FrameIndex)
		if img == nil {
			continue
		}
		iw, ih := img.Bounds().Dx(), img.Bounds().Dy()
		sx, sy := WorldToScreen(v.X, v.Y, sw, sh)

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-float64(iw)/2, -float64(ih)/2)
		op.GeoM.Scale(v.ScaleX, v.ScaleY)
		op.GeoM.Translate(sx, sy)
		screen.DrawImage(img, op)
	}
}
