package game

import (
	"fmt"
	"image"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// TileCache loads images and slices them into fixed-size sub-tiles.
// Slices are cached per path, so a tileset or sprite sheet is decoded
// once per session. The cache is owned by the composition root and
// passed to whatever needs image lookups; there is no global instance.
type TileCache struct {
	tileWidth  int
	tileHeight int
	assetDir   string
	cache      map[string][][]*ebiten.Image
}

// NewTileCache creates a cache slicing images into tiles of the given
// pixel size. Paths passed to Get are resolved relative to assetDir.
func NewTileCache(assetDir string, tileWidth, tileHeight int) *TileCache {
	return &TileCache{
		tileWidth:  tileWidth,
		tileHeight: tileHeight,
		assetDir:   assetDir,
		cache:      make(map[string][][]*ebiten.Image),
	}
}

// Get returns the tile table of the image at path, indexed
// [column][row].
func (tc *TileCache) Get(path string) ([][]*ebiten.Image, error) {
	if table, ok := tc.cache[path]; ok {
		return table, nil
	}

	full := path
	if tc.assetDir != "" {
		full = tc.assetDir + "/" + path
	}
	img, _, err := ebitenutil.NewImageFromFile(full)
	if err != nil {
		return nil, fmt.Errorf("failed to load image '%s': %w", full, err)
	}

	bounds := img.Bounds()
	cols := bounds.Dx() / tc.tileWidth
	rows := bounds.Dy() / tc.tileHeight
	if cols == 0 || rows == 0 {
		return nil, fmt.Errorf("image '%s' is smaller than one %dx%d tile",
			full, tc.tileWidth, tc.tileHeight)
	}

	table := make([][]*ebiten.Image, cols)
	for col := 0; col < cols; col++ {
		table[col] = make([]*ebiten.Image, rows)
		for row := 0; row < rows; row++ {
			rect := tileRect(bounds.Min.X, bounds.Min.Y, col, row, tc.tileWidth, tc.tileHeight)
			table[col][row] = img.SubImage(rect).(*ebiten.Image)
		}
	}

	tc.cache[path] = table
	log.Printf("[TileCache] Sliced %s into %dx%d tiles of %dx%d px",
		path, cols, rows, tc.tileWidth, tc.tileHeight)
	return table, nil
}

func tileRect(minX, minY, col, row, width, height int) image.Rectangle {
	x := minX + col*width
	y := minY + row*height
	return image.Rect(x, y, x+width, y+height)
}

