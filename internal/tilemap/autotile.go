package tilemap

// Auto-tiling tileset layout. Wall tiles live in three rows of four
// variants each; the variant column is selected by which sides of the
// wall run stay open.
const (
	overlayRow  = 0 // wall caps drawn above the cell north of a wall
	wallBodyRow = 1 // wall cells with another wall to the south
	wallTopRow  = 2 // wall cells facing open ground to the south
)

// DefaultGroundTile is used for non-wall cells whose symbol has no
// usable tile coordinate.
var DefaultGroundTile = TileCoord{Col: 0, Row: 3}

// RenderPlan is the static output of the auto-tiling pass: one tileset
// coordinate per cell plus the overlay tiles that must be drawn one
// cell up, above sprites. Computed once per level load; walls and
// ground never change during play.
type RenderPlan struct {
	Width  int
	Height int

	// Ground holds the tileset coordinate of every cell, indexed
	// [y][x].
	Ground [][]TileCoord

	// Overlays maps wall-cell coordinates to the cap tile drawn one
	// cell north of them.
	Overlays map[Coord]TileCoord
}

// faceColumn selects the wall variant column from the east/west
// neighborhood: 1 when walls continue on both sides, 0 or 2 when only
// one side continues, 3 when the wall stands alone.
func faceColumn(eastWall, westWall bool) int {
	switch {
	case eastWall && westWall:
		return 1
	case eastWall:
		return 0
	case westWall:
		return 2
	default:
		return 3
	}
}

// BuildRenderPlan runs the neighborhood rules over every cell of the
// level.
//
// Wall cells pick between the wall-top and wall-body rows depending on
// whether the cell south of them is also a wall; the top row reads the
// east/west neighbors of the cell itself, the body row reads them one
// cell south so stacked walls line up. Wall cells with open ground to
// the north additionally emit an overlay cap. Non-wall cells use their
// symbol's tile coordinate, or the default ground tile.
func BuildRenderPlan(level *Level) *RenderPlan {
	plan := &RenderPlan{
		Width:    level.Width,
		Height:   level.Height,
		Ground:   make([][]TileCoord, level.Height),
		Overlays: make(map[Coord]TileCoord),
	}

	for y := 0; y < level.Height; y++ {
		plan.Ground[y] = make([]TileCoord, level.Width)
		for x := 0; x < level.Width; x++ {
			if !level.IsWall(x, y) {
				tile := DefaultGroundTile
				if attrs := level.Attributes(x, y); attrs.Tile != nil {
					tile = *attrs.Tile
				}
				plan.Ground[y][x] = tile
				continue
			}

			var tile TileCoord
			if !level.IsWall(x, y+1) {
				tile = TileCoord{
					Col: faceColumn(level.IsWall(x+1, y), level.IsWall(x-1, y)),
					Row: wallTopRow,
				}
			} else {
				tile = TileCoord{
					Col: faceColumn(level.IsWall(x+1, y+1), level.IsWall(x-1, y+1)),
					Row: wallBodyRow,
				}
			}
			plan.Ground[y][x] = tile

			if !level.IsWall(x, y-1) {
				plan.Overlays[Coord{x, y}] = TileCoord{
					Col: faceColumn(level.IsWall(x+1, y), level.IsWall(x-1, y)),
					Row: overlayRow,
				}
			}
		}
	}

	return plan
}
