package game

import "github.com/hajimehoshi/ebiten/v2"

// Scene is one screen of the game: title, play field or ending.
// Update runs once per tick at the fixed tick rate.
type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}
