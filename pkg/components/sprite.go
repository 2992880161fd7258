package components

import "github.com/decker502/invaders/pkg/types"

// SpriteComponent carries the opaque asset handle the presentation layer
// draws for this entity. The simulation never interprets it.
type SpriteComponent struct {
	Handle types.AssetHandle
}
