// Package entities provides factory functions that assemble game
// entities from components. Factories only attach data; all behavior
// stays in pkg/systems.
package entities

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/feldgrau/timegarden/internal/tilemap"
	"github.com/feldgrau/timegarden/pkg/components"
	"github.com/feldgrau/timegarden/pkg/config"
	"github.com/feldgrau/timegarden/pkg/ecs"
	"github.com/feldgrau/timegarden/pkg/game"
	"github.com/feldgrau/timegarden/pkg/utils"
)

// CreatePlayer spawns the player entity on the given cell. The sprite
// sheet has one row per facing direction and one column per walk frame.
func CreatePlayer(em *ecs.EntityManager, sprites *game.TileCache, sheet string, cell tilemap.Coord) (ecs.EntityID, error) {
	frames, err := loadFrames(sprites, sheet)
	if err != nil {
		return 0, fmt.Errorf("failed to create player: %w", err)
	}

	px, py := utils.GridToSpritePixel(cell.X, cell.Y)
	id := em.CreateEntity()
	em.AddComponent(id, &components.PlayerComponent{Direction: config.DirDown})
	em.AddComponent(id, &components.SpriteComponent{
		Frames:   frames,
		FrameRow: config.DirDown,
		FrameCol: 0,
		PixelX:   px,
		PixelY:   py,
		Depth:    utils.SpriteDepth(py),
	})
	em.AddComponent(id, &components.WalkAnimationComponent{})

	attachShadow(em, sprites, id)
	return id, nil
}

// loadFrames slices a sprite sheet and reindexes it [row][column], the
// order SpriteComponent expects.
func loadFrames(sprites *game.TileCache, sheet string) ([][]*ebiten.Image, error) {
	table, err := sprites.Get(sheet)
	if err != nil {
		return nil, err
	}
	cols := len(table)
	rows := len(table[0])
	frames := make([][]*ebiten.Image, rows)
	for row := 0; row < rows; row++ {
		frames[row] = make([]*ebiten.Image, cols)
		for col := 0; col < cols; col++ {
			frames[row][col] = table[col][row]
		}
	}
	return frames, nil
}

// attachShadow adds the translucent blob under a sprite. A missing
// shadow sheet only disables shadows, it never fails entity creation.
func attachShadow(em *ecs.EntityManager, sprites *game.TileCache, owner ecs.EntityID) {
	table, err := sprites.Get(shadowSheet)
	if err != nil {
		return
	}
	id := em.CreateEntity()
	em.AddComponent(id, &components.ShadowComponent{
		Image: table[0][0],
		Owner: owner,
	})
}

const shadowSheet = "images/shadow.png"
