package components

import (
	"github.com/feldgrau/timegarden/internal/tilemap"
	"github.com/feldgrau/timegarden/pkg/types"
)

// InteractZoneComponent is an interactive map feature and the four
// cells the player can trigger it from. The zone covers the orthogonal
// neighbors of the item's own cell: the player works a feature by
// standing next to it, never on it.
type InteractZoneComponent struct {
	Feature types.FeatureType
	Cells   [4]tilemap.Coord
}

// Contains reports whether pos is one of the trigger cells.
func (z *InteractZoneComponent) Contains(pos tilemap.Coord) bool {
	for _, c := range z.Cells {
		if c == pos {
			return true
		}
	}
	return false
}
