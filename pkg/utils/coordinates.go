// Package utils provides coordinate helpers shared by the factories
// and systems.
package utils

import "github.com/feldgrau/timegarden/pkg/config"

// Sprites are one tile wide at the base but drawn from a 32x32 frame,
// so a sprite standing on a grid cell is anchored by the mid-bottom
// point of its frame: centered on the cell horizontally, feet on the
// cell's bottom edge.

// GridToSpritePixel returns the top-left pixel position of a sprite
// frame standing on grid cell (x, y).
func GridToSpritePixel(x, y int) (px, py int) {
	midX := x*config.TileWidth + config.TileWidth/2
	bottomY := y*config.TileHeight + config.TileHeight
	return midX - config.SpriteSize/2, bottomY - config.SpriteSize
}

// SpritePixelToGrid returns the grid cell a sprite frame at top-left
// pixel position (px, py) is standing on.
func SpritePixelToGrid(px, py int) (x, y int) {
	midX := px + config.SpriteSize/2
	bottomY := py + config.SpriteSize
	return (midX - config.TileWidth/2) / config.TileWidth,
		(bottomY - config.TileHeight) / config.TileHeight
}

// SpriteDepth returns the draw-order key of a sprite frame at top-left
// pixel row py: its mid-bottom row, so southern sprites draw over
// northern ones.
func SpriteDepth(py int) int {
	return py + config.SpriteSize
}
