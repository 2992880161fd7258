package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWindowBoundsOutOfBounds(t *testing.T) {
	b := WindowBounds{Width: 800, Height: 720}
	const margin = 200.0

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"centre", 0, 0, false},
		{"just inside top", 0, 360 + margin - 1, false},
		{"just outside top", 0, 360 + margin + 1, true},
		{"just outside bottom", 0, -(360 + margin + 1), true},
		{"on the margin", 400 + margin, 0, false},
		{"just outside right", 400 + margin + 1, 0, true},
		{"just outside left", -(400 + margin + 1), 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, b.OutOfBounds(tt.x, tt.y, margin))
		})
	}
}

func TestInputStateHorizontal(t *testing.T) {
	assert.Equal(t, 0.0, InputState{}.Horizontal())
	assert.Equal(t, -1.0, InputState{Left: true}.Horizontal())
	assert.Equal(t, 1.0, InputState{Right: true}.Horizontal())
	assert.Equal(t, -1.0, InputState{Left: true, Right: true}.Horizontal())
}
