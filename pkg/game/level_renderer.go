package game

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/feldgrau/timegarden/internal/tilemap"
	"github.com/feldgrau/timegarden/pkg/config"
)

// LevelImages is the static render output of a level: one composed
// background plus the overlay tiles drawn above sprites, keyed by the
// wall cell that emitted them. Built once per level load; walls and
// ground never change during play.
type LevelImages struct {
	Background *ebiten.Image
	Overlays   map[tilemap.Coord]*ebiten.Image
}

// RenderLevel composes the level background from its render plan and
// the sliced tileset. A plan coordinate outside the tileset is a
// content error and aborts the load.
func RenderLevel(level *tilemap.Level, tiles *TileCache) (*LevelImages, error) {
	table, err := tiles.Get(level.Tileset)
	if err != nil {
		return nil, err
	}

	plan := tilemap.BuildRenderPlan(level)

	background := ebiten.NewImage(
		plan.Width*config.TileWidth,
		plan.Height*config.TileHeight,
	)

	for y := 0; y < plan.Height; y++ {
		for x := 0; x < plan.Width; x++ {
			tile, err := lookupTile(table, plan.Ground[y][x], level.Tileset)
			if err != nil {
				return nil, err
			}
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(float64(x*config.TileWidth), float64(y*config.TileHeight))
			background.DrawImage(tile, op)
		}
	}

	overlays := make(map[tilemap.Coord]*ebiten.Image, len(plan.Overlays))
	for pos, tc := range plan.Overlays {
		tile, err := lookupTile(table, tc, level.Tileset)
		if err != nil {
			return nil, err
		}
		overlays[pos] = tile
	}

	log.Printf("[Level] Rendered %dx%d background with %d overlays",
		plan.Width, plan.Height, len(overlays))
	return &LevelImages{Background: background, Overlays: overlays}, nil
}

func lookupTile(table [][]*ebiten.Image, tc tilemap.TileCoord, tileset string) (*ebiten.Image, error) {
	if tc.Col < 0 || tc.Col >= len(table) || tc.Row < 0 || tc.Row >= len(table[tc.Col]) {
		return nil, fmt.Errorf("tileset '%s' has no tile at (%d,%d)", tileset, tc.Col, tc.Row)
	}
	return table[tc.Col][tc.Row], nil
}
