package scenes

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/feldgrau/timegarden/pkg/ecs"
	"github.com/feldgrau/timegarden/pkg/entities"
	"github.com/feldgrau/timegarden/pkg/game"
	"github.com/feldgrau/timegarden/pkg/systems"
)

// GameScene runs one game session: it owns the entity manager, the
// systems and the counters, and advances them once per tick.
type GameScene struct {
	ctx *Context

	entityManager *ecs.EntityManager
	counters      *game.CounterState
	status        *game.StatusLine
	playerID      ecs.EntityID

	input     *systems.InputSystem
	movement  *systems.MovementSystem
	animation *systems.AnimationSystem
	interact  *systems.InteractSystem
	clock     *systems.ClockSystem
	render    *systems.RenderSystem

	paused bool
}

// NewGameScene builds a fresh session from the shared context.
func NewGameScene(ctx *Context) (*GameScene, error) {
	em := ecs.NewEntityManager()
	playerID, err := entities.PopulateLevel(em, ctx.Sprites, ctx.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to populate level: %w", err)
	}

	counters := game.NewCounterState(ctx.Rules)
	status := &game.StatusLine{}

	scene := &GameScene{
		ctx:           ctx,
		entityManager: em,
		counters:      counters,
		status:        status,
		playerID:      playerID,
		input:         systems.NewInputSystem(),
		movement:      systems.NewMovementSystem(em, ctx.Level, counters),
		animation:     systems.NewAnimationSystem(em),
		interact:      systems.NewInteractSystem(em, counters, status, ctx.Audio),
		clock:         systems.NewClockSystem(em, counters),
		render:        systems.NewRenderSystem(em, counters, status, ctx.LevelImages),
	}
	log.Printf("[GameScene] Session started: %d potatoes, goal %d, %d s deadline",
		counters.Stock, ctx.Rules.DonationGoal, ctx.Rules.DeadlineSeconds)
	return scene, nil
}

// Update advances the session by one tick.
func (s *GameScene) Update() {
	in := s.input.Poll()

	if s.handlePause(in) {
		return
	}

	if s.movement.PlayerIdle(s.playerID) {
		s.dispatchCommand(in.Command)
		if in.HasMove {
			s.movement.TryWalk(s.playerID, in.MoveDir, in.Run)
		}
	}

	s.animation.Update()
	s.status.Tick()
	s.clock.Update()
	s.entityManager.RemoveMarkedEntities()

	if s.counters.GameOver {
		log.Printf("[GameScene] Session over: goodEnding=%v", s.counters.GoodEnding)
		s.ctx.Audio.StopMusic()
		s.ctx.SceneManager.SwitchTo(NewEndingScene(s.ctx, s.counters.GoodEnding))
	}
}

// handlePause applies this tick's input to the pause state and reports
// whether the rest of the tick is skipped. The pause key pauses; while
// paused, any key resumes, and the resuming press is consumed.
func (s *GameScene) handlePause(in systems.InputState) bool {
	if s.paused {
		if in.AnyKey {
			s.paused = false
			s.status.Post("")
		}
		return true
	}
	if in.Command == systems.CommandPause {
		s.paused = true
		s.status.Post("PAUSED")
		return true
	}
	return false
}

// dispatchCommand runs the discrete command of this tick, if any.
// Commands only fire while the player stands still, matching movement.
func (s *GameScene) dispatchCommand(cmd systems.Command) {
	switch cmd {
	case systems.CommandInteract:
		s.interact.ProcessInteract(s.movement.PlayerCell(s.playerID))
	case systems.CommandSave:
		record := game.SaveRecord{
			Stock:    s.counters.Stock,
			Donation: s.counters.Donation,
			Deadline: s.counters.Deadline,
		}
		if err := s.ctx.Saves.Save(record); err != nil {
			log.Printf("[GameScene] Save failed: %v", err)
			s.status.Post("SAVE FAILED")
			return
		}
		s.status.Post("GAME SAVED")
	case systems.CommandLoad:
		record, err := s.ctx.Saves.Load()
		if err != nil {
			log.Printf("[GameScene] Load failed: %v", err)
			s.status.Post("NO SAVED GAME")
			return
		}
		s.counters.RestoreSaved(record.Stock, record.Donation, record.Deadline)
		s.status.Post("GAME LOADED")
	}
}

// Draw renders the session.
func (s *GameScene) Draw(screen *ebiten.Image) {
	s.render.Draw(screen)
}
