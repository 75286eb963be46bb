// Package scenes implements the screens of the game: the title screen,
// the running game session and the ending banner.
package scenes

import (
	"github.com/feldgrau/timegarden/internal/tilemap"
	"github.com/feldgrau/timegarden/pkg/config"
	"github.com/feldgrau/timegarden/pkg/game"
)

// Scene is a type alias for game.Scene; all scenes implement it.
type Scene = game.Scene

// Context is the shared session state handed to every scene: the parsed
// level, its pre-rendered images, the sprite cache and the managers the
// scenes switch and play through.
type Context struct {
	SceneManager *game.SceneManager
	Level        *tilemap.Level
	LevelImages  *game.LevelImages
	Sprites      *game.TileCache
	Rules        *config.GameConfig
	Audio        *game.AudioManager
	Saves        *game.SaveManager
}
