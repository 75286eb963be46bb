package systems

import (
	"github.com/feldgrau/timegarden/internal/tilemap"
	"github.com/feldgrau/timegarden/pkg/components"
	"github.com/feldgrau/timegarden/pkg/config"
	"github.com/feldgrau/timegarden/pkg/ecs"
	"github.com/feldgrau/timegarden/pkg/game"
	"github.com/feldgrau/timegarden/pkg/utils"
)

// MovementSystem turns movement input into walk steps, checking the
// level's blocking attributes.
type MovementSystem struct {
	entityManager *ecs.EntityManager
	level         *tilemap.Level
	counters      *game.CounterState
}

// NewMovementSystem creates the movement system for one session.
func NewMovementSystem(em *ecs.EntityManager, level *tilemap.Level, counters *game.CounterState) *MovementSystem {
	return &MovementSystem{
		entityManager: em,
		level:         level,
		counters:      counters,
	}
}

// TryWalk points the player into the requested direction and starts a
// walk step if the destination is open. Called only while the player
// is idle.
//
// Running doubles the step (triples while time is stopped) but is
// refused while overweight, unless time is stopped. A multiplied step
// whose destination blocks silently falls back to a single step; if
// even the adjacent cell blocks, the player only turns.
func (s *MovementSystem) TryWalk(playerID ecs.EntityID, dir int, run bool) {
	player, ok := ecs.GetComponent[*components.PlayerComponent](s.entityManager, playerID)
	if !ok {
		return
	}
	walk, ok := ecs.GetComponent[*components.WalkAnimationComponent](s.entityManager, playerID)
	if !ok || walk.Active {
		return
	}
	sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.entityManager, playerID)
	if !ok {
		return
	}

	player.Direction = dir

	multiplier := 1
	if run && (!s.counters.Overweight || s.counters.IsTimeStopped) {
		multiplier = 2
		if s.counters.IsTimeStopped {
			multiplier = 3
		}
	}

	x, y := utils.SpritePixelToGrid(sprite.PixelX, sprite.PixelY)
	if s.level.IsBlocking(x+multiplier*config.DX[dir], y+multiplier*config.DY[dir]) {
		multiplier = 1
	}
	if s.level.IsBlocking(x+config.DX[dir], y+config.DY[dir]) {
		return
	}

	walk.Active = true
	walk.Direction = dir
	walk.Multiplier = multiplier
	walk.Tick = 0
}

// PlayerIdle reports whether the player is between walk steps and
// therefore accepts input.
func (s *MovementSystem) PlayerIdle(playerID ecs.EntityID) bool {
	walk, ok := ecs.GetComponent[*components.WalkAnimationComponent](s.entityManager, playerID)
	return !ok || !walk.Active
}

// PlayerCell returns the grid cell the player is standing on.
func (s *MovementSystem) PlayerCell(playerID ecs.EntityID) tilemap.Coord {
	sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.entityManager, playerID)
	if !ok {
		return tilemap.Coord{}
	}
	x, y := utils.SpritePixelToGrid(sprite.PixelX, sprite.PixelY)
	return tilemap.Coord{X: x, Y: y}
}
