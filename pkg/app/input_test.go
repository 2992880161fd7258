package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTouchZone(t *testing.T) {
	tests := []struct {
		x, width int
		want     int
	}{
		{0, 800, -1},
		{265, 800, -1},
		{266, 800, 0},
		{400, 800, 0},
		{533, 800, 0},
		{534, 800, 1},
		{799, 800, 1},
		{10, 0, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TouchZone(tt.x, tt.width), "x=%d width=%d", tt.x, tt.width)
	}
}
