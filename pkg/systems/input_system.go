// Package systems implements the per-tick behavior of the game: input
// polling, movement, animation, interaction, the clock and rendering.
// Systems hold references to the state they work on and expose an
// Update-style method called once per tick by the game scene.
package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/feldgrau/timegarden/pkg/config"
)

// Command is a discrete player action mapped from a key edge.
type Command int

const (
	CommandNone Command = iota
	CommandInteract
	CommandPause
	CommandSave
	CommandLoad
)

// InputState is one tick's worth of player input.
type InputState struct {
	// HasMove is true while a direction key is held; MoveDir is the
	// requested direction and Run whether the run modifier is held.
	HasMove bool
	MoveDir int
	Run     bool

	// Command is the discrete action triggered this tick, if any.
	Command Command

	// AnyKey is true when any key was pressed this tick, used by the
	// pause and splash screens.
	AnyKey bool
}

// InputSystem polls the keyboard. Movement reads held keys so walking
// continues while an arrow stays down; commands fire on the press edge
// only.
type InputSystem struct {
	keys []ebiten.Key
}

// NewInputSystem creates the input poller.
func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

// Poll reads the current tick's input.
func (s *InputSystem) Poll() InputState {
	state := InputState{Run: ebiten.IsKeyPressed(ebiten.KeyShift)}

	s.keys = inpututil.AppendJustPressedKeys(s.keys[:0])
	state.AnyKey = len(s.keys) > 0

	switch {
	case ebiten.IsKeyPressed(ebiten.KeyArrowUp):
		state.HasMove = true
		state.MoveDir = config.DirUp
	case ebiten.IsKeyPressed(ebiten.KeyArrowDown):
		state.HasMove = true
		state.MoveDir = config.DirDown
	case ebiten.IsKeyPressed(ebiten.KeyArrowLeft):
		state.HasMove = true
		state.MoveDir = config.DirLeft
	case ebiten.IsKeyPressed(ebiten.KeyArrowRight):
		state.HasMove = true
		state.MoveDir = config.DirRight
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyE):
		state.Command = CommandInteract
	case inpututil.IsKeyJustPressed(ebiten.KeyP):
		state.Command = CommandPause
	case inpututil.IsKeyJustPressed(ebiten.KeyO):
		state.Command = CommandSave
	case inpututil.IsKeyJustPressed(ebiten.KeyI):
		state.Command = CommandLoad
	}

	return state
}
