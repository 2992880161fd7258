package systems

import (
	"github.com/decker502/invaders/pkg/components"
	"github.com/decker502/invaders/pkg/ecs"
	"github.com/decker502/invaders/pkg/utils"
)

// Clock supplies the simulation time in seconds since the run started.
type Clock interface {
	Now() float64
}

// withTags returns, in creation order, the entities whose tags contain want.
func withTags(em *ecs.EntityManager, want components.Tag) []ecs.EntityID {
	ids := ecs.GetEntitiesWith1[*components.TagComponent](em)
	out := make([]ecs.EntityID, 0, len(ids))
	for _, id := range ids {
		tag, ok := ecs.GetComponent[*components.TagComponent](em, id)
		if !ok || !tag.Has(want) {
			continue
		}
		out = append(out, id)
	}
	return out
}

// findPlayer returns the player singleton. A missing player is a normal
// state during the respawn cooldown.
func findPlayer(em *ecs.EntityManager) (ecs.EntityID, bool) {
	players := withTags(em, components.TagPlayer)
	if len(players) == 0 {
		return 0, false
	}
	return players[0], true
}

// collisionBox returns the entity's box: size times scale, centred on its
// position. Entities without a scale use 1.
func collisionBox(em *ecs.EntityManager, id ecs.EntityID) (utils.AABB, bool) {
	pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
	if !ok {
		return utils.AABB{}, false
	}
	size, ok := ecs.GetComponent[*components.SizeComponent](em, id)
	if !ok {
		return utils.AABB{}, false
	}
	sx, sy := 1.0, 1.0
	if scale, ok := ecs.GetComponent[*components.ScaleComponent](em, id); ok {
		sx, sy = scale.ScaleX, scale.ScaleY
	}
	return utils.NewAABB(pos.X, pos.Y, size.Width, size.Height, sx, sy), true
}
