package simulation

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"

	"github.com/decker502/invaders/pkg/components"
	"github.com/decker502/invaders/pkg/ecs"
	"github.com/decker502/invaders/pkg/types"
)

// EntityView is what the presentation layer needs to draw one entity.
type EntityView struct {
	ID         ecs.EntityID
	X, Y, Z    float64
	ScaleX     float64
	ScaleY     float64
	Width      float64 // unscaled
	Height     float64
	Tags       components.Tag
	Handle     types.AssetHandle
	FrameIndex int // explosion sheet cell, 0 for everything else
}

// Snapshot returns every drawable entity in creation order.
func (s *Simulation) Snapshot() []EntityView {
	ids := ecs.GetEntitiesWith2[*components.PositionComponent, *components.SpriteComponent](s.em)
	views := make([]EntityView, 0, len(ids))
	for _, id := range ids {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)
		sprite, _ := ecs.GetComponent[*components.SpriteComponent](s.em, id)

		v := EntityView{
			ID:     id,
			X:      pos.X,
			Y:      pos.Y,
			Z:      pos.Z,
			ScaleX: 1,
			ScaleY: 1,
			Handle: sprite.Handle,
		}
		if scale, ok := ecs.GetComponent[*components.ScaleComponent](s.em, id); ok {
			v.ScaleX, v.ScaleY = scale.ScaleX, scale.ScaleY
		}
		if size, ok := ecs.GetComponent[*components.SizeComponent](s.em, id); ok {
			v.Width, v.Height = size.Width, size.Height
		}
		if tag, ok := ecs.GetComponent[*components.TagComponent](s.em, id); ok {
			v.Tags = tag.Tags
		}
		if exp, ok := ecs.GetComponent[*components.ExplosionComponent](s.em, id); ok {
			v.FrameIndex = exp.FrameIndex
		}
		views = append(views, v)
	}
	return views
}

// Digest hashes the observable state: tick count, counters, player state and
// every drawable entity. Two runs with the same seed and inputs produce the
// same digest after the same number of ticks.
func (s *Simulation) Digest() uint64 {
	d := xxhash.New()
	var buf [8]byte

	putU64 := func(v uint64) {
		binary.LittleEndian.PutUint64(buf[:], v)
		_, _ = d.Write(buf[:])
	}
	putF64 := func(v float64) {
		putU64(math.Float64bits(v))
	}

	putU64(s.ticks)
	putU64(uint64(s.enemyCount.Value()))
	if s.player.Alive {
		putU64(1)
	} else {
		putU64(0)
	}
	putF64(s.player.LastShot)

	for _, v := range s.Snapshot() {
		putU64(uint64(v.ID))
		putF64(v.X)
		putF64(v.Y)
		putU64(uint64(v.Tags))
		putU64(uint64(v.Handle))
		putU64(uint64(v.FrameIndex))
	}
	return d.Sum64()
}
