package entities

import (
	"fmt"
	"log"

	"github.com/feldgrau/timegarden/internal/tilemap"
	"github.com/feldgrau/timegarden/pkg/components"
	"github.com/feldgrau/timegarden/pkg/ecs"
	"github.com/feldgrau/timegarden/pkg/game"
	"github.com/feldgrau/timegarden/pkg/types"
	"github.com/feldgrau/timegarden/pkg/utils"
)

// CreateItem spawns a map item on the given cell: its sprite with an
// idle cycle, its shadow and, when the item's name maps to a feature,
// an interact zone covering the four neighboring cells. Bushes also
// get their growth state.
func CreateItem(em *ecs.EntityManager, sprites *game.TileCache, attrs tilemap.TileAttributes, cell tilemap.Coord) (ecs.EntityID, error) {
	frames, err := loadFrames(sprites, "images/"+attrs.Sprite)
	if err != nil {
		return 0, fmt.Errorf("failed to create item '%s': %w", attrs.Name, err)
	}

	px, py := utils.GridToSpritePixel(cell.X, cell.Y)
	id := em.CreateEntity()
	em.AddComponent(id, &components.SpriteComponent{
		Frames:   frames,
		FrameRow: 0,
		FrameCol: 0,
		PixelX:   px,
		PixelY:   py,
		Depth:    utils.SpriteDepth(py),
	})
	em.AddComponent(id, &components.StandAnimationComponent{})
	attachShadow(em, sprites, id)

	feature := types.ParseFeatureType(attrs.Name)
	if feature == types.FeatureUnknown {
		if attrs.Name != "" {
			log.Printf("[Entities] Item '%s' at (%d,%d) is decorative, no interact zone", attrs.Name, cell.X, cell.Y)
		}
		return id, nil
	}

	em.AddComponent(id, &components.InteractZoneComponent{
		Feature: feature,
		Cells:   cell.Neighbors4(),
	})
	if feature == types.FeatureBush {
		em.AddComponent(id, components.NewBushComponent())
	}
	return id, nil
}

// PopulateLevel spawns every item the level places, the player
// included, and returns the player's entity ID. Items spawn in the
// level's row-major scan order, so entity IDs and zone registration
// order follow the map content, not map iteration.
func PopulateLevel(em *ecs.EntityManager, sprites *game.TileCache, level *tilemap.Level) (ecs.EntityID, error) {
	if !level.HasPlayer {
		return 0, fmt.Errorf("level places no player")
	}

	var playerID ecs.EntityID
	for _, cell := range level.ItemOrder {
		attrs := level.Items[cell]
		if attrs.IsPlayer {
			id, err := CreatePlayer(em, sprites, "images/"+attrs.Sprite, cell)
			if err != nil {
				return 0, err
			}
			playerID = id
			continue
		}
		if _, err := CreateItem(em, sprites, attrs, cell); err != nil {
			return 0, err
		}
	}
	return playerID, nil
}
