package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneManager controls which scene is active. Only the active scene's
// Update and Draw run; switching takes effect on the next tick.
type SceneManager struct {
	currentScene Scene
	quit         bool
}

// NewSceneManager returns a manager with no active scene; call
// SwitchTo before the first tick.
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SwitchTo makes scene the active one.
func (sm *SceneManager) SwitchTo(scene Scene) {
	log.Printf("[SceneManager] Switching to %T", scene)
	sm.currentScene = scene
}

// Quit asks the game loop to terminate after the current tick.
func (sm *SceneManager) Quit() {
	sm.quit = true
}

// ShouldQuit reports whether a scene requested termination.
func (sm *SceneManager) ShouldQuit() bool {
	return sm.quit
}

// Update ticks the active scene.
func (sm *SceneManager) Update() {
	if sm.currentScene != nil {
		sm.currentScene.Update()
	}
}

// Draw renders the active scene.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
