// Package app wires the game together: it loads the level and the
// rules, pre-renders the map, builds the managers and runs the scene
// loop behind the ebiten.Game interface.
package app

import (
	"fmt"
	"io"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/feldgrau/timegarden/internal/tilemap"
	"github.com/feldgrau/timegarden/pkg/config"
	"github.com/feldgrau/timegarden/pkg/game"
	"github.com/feldgrau/timegarden/pkg/scenes"
)

const appName = "timegarden"

// Config is the application startup configuration.
type Config struct {
	// LevelPath is the level file to load.
	LevelPath string

	// RulesPath is the YAML rules file; empty means built-in defaults.
	RulesPath string

	// AssetDir is the directory holding images/ and sounds/.
	AssetDir string

	// Mute disables all audio output.
	Mute bool

	// Verbose enables log output.
	Verbose bool
}

// App is the game application. It implements ebiten.Game.
type App struct {
	sceneManager *game.SceneManager
}

// NewApp loads everything the session needs and starts on the title
// screen.
func NewApp(cfg Config) (*App, error) {
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	level, err := tilemap.ParseFile(cfg.LevelPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load level: %w", err)
	}
	log.Printf("[App] Loaded level %s: %dx%d cells, %d items",
		cfg.LevelPath, level.Width, level.Height, len(level.Items))

	rules := config.DefaultGameConfig()
	if cfg.RulesPath != "" {
		rules, err = config.LoadGameConfig(cfg.RulesPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load rules: %w", err)
		}
	}

	tiles := game.NewTileCache(cfg.AssetDir, config.TileWidth, config.TileHeight)
	levelImages, err := game.RenderLevel(level, tiles)
	if err != nil {
		return nil, fmt.Errorf("failed to render level: %w", err)
	}

	audioContext := audio.NewContext(game.SampleRate)
	audioManager := game.NewAudioManager(audioContext, cfg.AssetDir, cfg.Mute)
	audioManager.PlayMusic("sounds/music.wav")

	sceneManager := game.NewSceneManager()
	ctx := &scenes.Context{
		SceneManager: sceneManager,
		Level:        level,
		LevelImages:  levelImages,
		Sprites:      game.NewTileCache(cfg.AssetDir, config.SpriteSize, config.SpriteSize),
		Rules:        rules,
		Audio:        audioManager,
		Saves:        game.NewSaveManager(appName),
	}
	sceneManager.SwitchTo(scenes.NewTitleScene(ctx))

	return &App{sceneManager: sceneManager}, nil
}

// Update advances the current scene by one tick.
func (a *App) Update() error {
	a.sceneManager.Update()
	if a.sceneManager.ShouldQuit() {
		return ebiten.Termination
	}
	return nil
}

// Draw renders the current scene.
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// Layout returns the logical screen size. It is independent of the
// window size; Ebitengine scales the frame to fit.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}

// Run opens the window and drives the game loop until the player quits.
func (a *App) Run() error {
	ebiten.SetWindowSize(config.GameWindowWidth*2, config.GameWindowHeight*2)
	ebiten.SetWindowTitle("Time Garden")
	ebiten.SetTPS(config.TicksPerSecond)

	if err := ebiten.RunGame(a); err != nil && err != ebiten.Termination {
		return err
	}
	return nil
}
