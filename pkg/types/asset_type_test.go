package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssetHandleRoundTrip(t *testing.T) {
	for _, h := range AllAssetHandles() {
		assert.Equal(t, h, AssetHandleFromString(h.String()), "handle %d", h)
	}
	assert.Equal(t, "unknown", AssetHandle(99).String())
	assert.Equal(t, AssetNone, AssetHandleFromString("missing"))
}
