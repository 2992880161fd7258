package app

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/invaders/pkg/game"
)

// Key bindings for the desktop front-end.
var (
	leftKeys  = []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}
	rightKeys = []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}
	fireKeys  = []ebiten.Key{ebiten.KeySpace}
)

// GetInputState polls the keyboard and touch screen once for this tick.
//
// Keyboard: arrows or A/D move, Space fires. Touch: a held touch on the left
// or right third of the screen moves, a new touch in the middle third fires.
// screenWidth is the logical width used to split touches.
func GetInputState(screenWidth int) game.InputState {
	state := game.InputState{
		Left:        anyKeyPressed(leftKeys),
		Right:       anyKeyPressed(rightKeys),
		FirePressed: anyKeyJustPressed(fireKeys),
	}

	for _, id := range ebiten.AppendTouchIDs(nil) {
		x, _ := ebiten.TouchPosition(id)
		switch TouchZone(x, screenWidth) {
		case -1:
			state.Left = true
		case 1:
			state.Right = true
		}
	}
	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		x, _ := ebiten.TouchPosition(id)
		if TouchZone(x, screenWidth) == 0 {
			state.FirePressed = true
		}
	}
	return state
}

// TouchZone maps a touch x to -1 (left third), 0 (middle) or +1 (right third).
func TouchZone(x, screenWidth int) int {
	if screenWidth <= 0 {
		return 0
	}
	switch {
	case x < screenWidth/3:
		return -1
	case x >= screenWidth-screenWidth/3:
		return 1
	default:
		return 0
	}
}

func anyKeyPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

func anyKeyJustPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}
