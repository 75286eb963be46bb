package systems

import (
	"github.com/feldgrau/timegarden/pkg/components"
	"github.com/feldgrau/timegarden/pkg/config"
	"github.com/feldgrau/timegarden/pkg/ecs"
	"github.com/feldgrau/timegarden/pkg/utils"
)

// AnimationSystem advances the sprite animations: the idle cycle of
// map items and the player's walk step state machine.
type AnimationSystem struct {
	entityManager *ecs.EntityManager
}

// NewAnimationSystem creates the animation system.
func NewAnimationSystem(em *ecs.EntityManager) *AnimationSystem {
	return &AnimationSystem{entityManager: em}
}

// Update advances every animation by one tick.
func (s *AnimationSystem) Update() {
	s.updateIdleCycles()
	s.updateWalks()
}

// updateIdleCycles steps the idle frame row of non-player sprites,
// holding each frame for two ticks.
func (s *AnimationSystem) updateIdleCycles() {
	ids := ecs.GetEntitiesWith2[*components.SpriteComponent, *components.StandAnimationComponent](s.entityManager)
	for _, id := range ids {
		sprite, _ := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)
		stand, _ := ecs.GetComponent[*components.StandAnimationComponent](s.entityManager, id)

		stand.TickCount++
		if len(sprite.Frames) == 0 || len(sprite.Frames[0]) == 0 {
			continue
		}
		sprite.FrameRow = 0
		sprite.FrameCol = (stand.TickCount / 2) % len(sprite.Frames[0])
	}
}

// updateWalks advances the player walk state machines.
//
// Tick 0 shows the first walk frame; every following tick nudges the
// sprite by (3*m, 2*m) pixels in the walk direction, with the frame
// advancing on ticks 2, 4 and 6. After tick 8 the step is complete and
// the sprite has moved exactly m tiles.
func (s *AnimationSystem) updateWalks() {
	ids := ecs.GetEntitiesWith2[*components.SpriteComponent, *components.WalkAnimationComponent](s.entityManager)
	for _, id := range ids {
		sprite, _ := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)
		walk, _ := ecs.GetComponent[*components.WalkAnimationComponent](s.entityManager, id)

		if !walk.Active {
			// Idle players face their direction with the rest frame.
			if player, ok := ecs.GetComponent[*components.PlayerComponent](s.entityManager, id); ok {
				sprite.FrameRow = player.Direction
				sprite.FrameCol = 0
			}
			continue
		}

		sprite.FrameRow = walk.Direction
		switch {
		case walk.Tick == 0:
			sprite.FrameCol = 0
		default:
			sprite.PixelX += 3 * walk.Multiplier * config.DX[walk.Direction]
			sprite.PixelY += 2 * walk.Multiplier * config.DY[walk.Direction]
			sprite.Depth = utils.SpriteDepth(sprite.PixelY)
			if walk.Tick%2 == 0 && walk.Tick < components.WalkAnimationTicks-1 {
				sprite.FrameCol = walk.Tick / 2
			}
		}

		walk.Tick++
		if walk.Tick >= components.WalkAnimationTicks {
			walk.Active = false
			walk.Tick = 0
		}
	}
}
