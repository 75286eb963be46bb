package config

// Layout constants.
// Map tiles are 24x16 pixels; item and player sprites are 32x32 sheets
// whose frames are anchored by their mid-bottom point on the tile grid.
const (
	// TileWidth is the width of one map tile in pixels.
	TileWidth = 24

	// TileHeight is the height of one map tile in pixels.
	TileHeight = 16

	// SpriteSize is the edge length of one sprite frame in pixels.
	SpriteSize = 32

	// ScreenTileColumns is the logical screen width in map tiles.
	ScreenTileColumns = 35

	// ScreenTileRows is the logical screen height in map tiles.
	ScreenTileRows = 23

	// GameWindowWidth is the logical screen width in pixels.
	GameWindowWidth = ScreenTileColumns * TileWidth // 840

	// GameWindowHeight is the logical screen height in pixels.
	GameWindowHeight = ScreenTileRows * TileHeight // 368

	// TicksPerSecond is the fixed tick rate of the game loop. Every
	// timer in the rules is stored in ticks at this rate.
	TicksPerSecond = 15
)

// Direction indexes into the movement deltas and into the rows of a
// sprite sheet: up, right, down, left.
const (
	DirUp = iota
	DirRight
	DirDown
	DirLeft
)

// DX and DY are the per-direction grid deltas, indexed by direction.
var (
	DX = [4]int{0, 1, 0, -1}
	DY = [4]int{-1, 0, 1, 0}
)
