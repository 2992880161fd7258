package app

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/types"
)

// Assets resolves asset handles to images. Ships and lasers are flat
// placeholder sprites at their unscaled size; the explosion sheet is a 4x4
// grid of shrinking fireballs.
type Assets struct {
	images  map[types.AssetHandle]*ebiten.Image
	sheet   *ebiten.Image
	columns int
	cell    int
}

// NewPlaceholderAssets builds every sprite in memory from cfg's sizes.
func NewPlaceholderAssets(cfg *config.GameConfig) *Assets {
	a := &Assets{
		images:  make(map[types.AssetHandle]*ebiten.Image),
		columns: config.ExplosionSheetColumns,
		cell:    config.ExplosionCellSize,
	}
	a.images[types.AssetPlayer] = ship(cfg.Sizes.Player, colornames.Deepskyblue, false)
	a.images[types.AssetEnemy] = ship(cfg.Sizes.Enemy, colornames.Crimson, true)
	a.images[types.AssetPlayerLaser] = filled(cfg.Sizes.PlayerLaser, colornames.Lime)
	a.images[types.AssetEnemyLaser] = filled(cfg.Sizes.EnemyLaser, colornames.Orangered)
	a.sheet = explosionSheet(cfg.Explosion.FrameCount, a.columns, a.cell)
	return a
}

// Image returns the image for handle. For the explosion sheet it returns the
// cell for frame.
func (a *Assets) Image(handle types.AssetHandle, frame int) *ebiten.Image {
	if handle == types.AssetExplosionSheet {
		return a.sheet.SubImage(SheetCell(frame, a.columns, a.cell)).(*ebiten.Image)
	}
	return a.images[handle]
}

// SheetCell returns the rectangle of cell index in a sheet laid out row by
// row with the given number of columns.
func SheetCell(index, columns, cellSize int) image.Rectangle {
	if columns <= 0 {
		columns = 1
	}
	col := index % columns
	row := index / columns
	return image.Rect(col*cellSize, row*cellSize, (col+1)*cellSize, (row+1)*cellSize)
}

func filled(size config.SizeConfig, c color.Color) *ebiten.Image {
	img := ebiten.NewImage(int(size.Width), int(size.Height))
	img.Fill(c)
	return img
}

// ship draws a body with a cockpit. Enemies point down, the player points up.
func ship(size config.SizeConfig, c color.Color, pointsDown bool) *ebiten.Image {
	w, h := float32(size.Width), float32(size.Height)
	img := ebiten.NewImage(int(size.Width), int(size.Height))

	vector.DrawFilledRect(img, 0, h*0.35, w, h*0.4, c, false)
	cockpitY := float32(0)
	if pointsDown {
		cockpitY = h * 0.6
	}
	vector.DrawFilledRect(img, w*0.4, cockpitY, w*0.2, h*0.4, c, false)
	vector.StrokeRect(img, 1, 1, w-2, h-2, 2, colornames.White, false)
	return img
}

func explosionSheet(frames, columns, cell int) *ebiten.Image {
	rows := (frames + columns - 1) / columns
	sheet := ebiten.NewImage(columns*cell, rows*cell)
	for i := 0; i < frames; i++ {
		r := SheetCell(i, columns, cell)
		cx := float32(r.Min.X + cell/2)
		cy := float32(r.Min.Y + cell/2)
		// grows for the first half, then burns out
		progress := float32(i) / float32(frames)
		radius := float32(cell) / 2 * (0.3 + 0.7*progress)
		vector.DrawFilledCircle(sheet, cx, cy, radius, colornames.Orange, true)
		vector.DrawFilledCircle(sheet, cx, cy, radius*(1-progress), colornames.Yellow, true)
	}
	return sheet
}
