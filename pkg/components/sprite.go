// Package components defines the data-only component structs attached
// to entities. Components carry state; behavior lives in pkg/systems.
package components

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/feldgrau/timegarden/pkg/ecs"
)

// SpriteComponent is a drawable sprite on the map.
//
// Frames is indexed [row][column]; for the player the row is the
// facing direction, for everything else row 0 is the idle cycle.
// PixelX/PixelY is the top-left corner of the current frame; Depth is
// the mid-bottom pixel row, used to sort draw order so southern
// sprites cover northern ones.
type SpriteComponent struct {
	Frames   [][]*ebiten.Image
	FrameRow int
	FrameCol int

	PixelX int
	PixelY int
	Depth  int
}

// StandAnimationComponent cycles a sprite's idle frames, one frame
// every other tick.
type StandAnimationComponent struct {
	TickCount int
}

// ShadowComponent draws a translucent blob under its owner sprite.
type ShadowComponent struct {
	Image *ebiten.Image
	Owner ecs.EntityID
}
