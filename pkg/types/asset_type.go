// Package types holds small shared types used across the simulation and its
// front-ends.
package types

// AssetHandle is an opaque token naming a sprite or sprite sheet. The
// simulation attaches handles to spawned entities; only the presentation
// layer resolves them to images.
type AssetHandle int

const (
	// AssetNone is the zero handle; entities carrying it are not drawn.
	AssetNone AssetHandle = iota
	AssetPlayer
	AssetPlayerLaser
	AssetEnemy
	AssetEnemyLaser
	// AssetExplosionSheet is a 4x4 grid of 64x64 cells, 16 usable frames.
	AssetExplosionSheet
)

// assetHandleStringMap maps handles to their configuration names.
var assetHandleStringMap = map[AssetHandle]string{
	AssetNone:           "none",
	AssetPlayer:         "player",
	AssetPlayerLaser:    "player_laser",
	AssetEnemy:          "enemy",
	AssetEnemyLaser:     "enemy_laser",
	AssetExplosionSheet: "explosion_sheet",
}

var stringToAssetHandleMap map[string]AssetHandle

func init() {
	stringToAssetHandleMap = make(map[string]AssetHandle, len(assetHandleStringMap))
	for h, s := range assetHandleStringMap {
		stringToAssetHandleMap[s] = h
	}
}

// String returns the configuration name of the handle.
func (h AssetHandle) String() string {
	if s, ok := assetHandleStringMap[h]; ok {
		return s
	}
	return "unknown"
}

// AssetHandleFromString converts a configuration name back to a handle.
// Unknown names map to AssetNone.
func AssetHandleFromString(s string) AssetHandle {
	if h, ok := stringToAssetHandleMap[s]; ok {
		return h
	}
	return AssetNone
}

// AllAssetHandles lists every drawable handle in a stable order.
func AllAssetHandles() []AssetHandle {
	return []AssetHandle{
		AssetPlayer,
		AssetPlayerLaser,
		AssetEnemy,
		AssetEnemyLaser,
		AssetExplosionSheet,
	}
}
