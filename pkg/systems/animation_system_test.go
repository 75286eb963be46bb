package systems

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/feldgrau/timegarden/pkg/components"
	"github.com/feldgrau/timegarden/pkg/config"
	"github.com/feldgrau/timegarden/pkg/ecs"
	"github.com/feldgrau/timegarden/pkg/utils"
)

// fourFrames is a 1x4 frame table. Frame images stay nil: the
// animation system only reads lengths and indices.
func fourFrames() [][]*ebiten.Image {
	return [][]*ebiten.Image{make([]*ebiten.Image, 4)}
}

func TestIdleCycle_AdvancesEveryOtherTick(t *testing.T) {
	em := ecs.NewEntityManager()
	sys := NewAnimationSystem(em)

	id := em.CreateEntity()
	sprite := &components.SpriteComponent{Frames: fourFrames()}
	em.AddComponent(id, sprite)
	em.AddComponent(id, &components.StandAnimationComponent{})

	cols := make([]int, 0, 4)
	for i := 0; i < 4; i++ {
		sys.Update()
		cols = append(cols, sprite.FrameCol)
	}

	want := []int{0, 1, 1, 2}
	for i := range want {
		if cols[i] != want[i] {
			t.Errorf("Expected frame columns %v, got %v", want, cols)
			break
		}
	}
}

func TestWalk_OneStepMovesOneTile(t *testing.T) {
	em := ecs.NewEntityManager()
	sys := NewAnimationSystem(em)

	px, py := utils.GridToSpritePixel(3, 3)
	id := em.CreateEntity()
	sprite := &components.SpriteComponent{PixelX: px, PixelY: py, Depth: utils.SpriteDepth(py)}
	em.AddComponent(id, sprite)
	em.AddComponent(id, &components.PlayerComponent{Direction: config.DirRight})
	walk := &components.WalkAnimationComponent{Active: true, Direction: config.DirRight, Multiplier: 1}
	em.AddComponent(id, walk)

	for i := 0; i < components.WalkAnimationTicks; i++ {
		sys.Update()
	}

	if walk.Active {
		t.Error("Expected walk finished after the full tick sequence")
	}
	if sprite.PixelX != px+config.TileWidth {
		t.Errorf("Expected sprite moved one tile east (%d), got %d", px+config.TileWidth, sprite.PixelX)
	}
	if sprite.PixelY != py {
		t.Errorf("Expected no vertical movement, got %d (was %d)", sprite.PixelY, py)
	}
}

func TestWalk_RunStepMovesTwoTiles(t *testing.T) {
	em := ecs.NewEntityManager()
	sys := NewAnimationSystem(em)

	px, py := utils.GridToSpritePixel(3, 3)
	id := em.CreateEntity()
	sprite := &components.SpriteComponent{PixelX: px, PixelY: py}
	em.AddComponent(id, sprite)
	em.AddComponent(id, &components.PlayerComponent{Direction: config.DirDown})
	walk := &components.WalkAnimationComponent{Active: true, Direction: config.DirDown, Multiplier: 2}
	em.AddComponent(id, walk)

	for i := 0; i < components.WalkAnimationTicks; i++ {
		sys.Update()
	}

	if sprite.PixelY != py+2*config.TileHeight {
		t.Errorf("Expected sprite moved two tiles south (%d), got %d", py+2*config.TileHeight, sprite.PixelY)
	}
}

func TestWalk_DepthFollowsVerticalPosition(t *testing.T) {
	em := ecs.NewEntityManager()
	sys := NewAnimationSystem(em)

	px, py := utils.GridToSpritePixel(3, 3)
	id := em.CreateEntity()
	sprite := &components.SpriteComponent{PixelX: px, PixelY: py, Depth: utils.SpriteDepth(py)}
	em.AddComponent(id, sprite)
	em.AddComponent(id, &components.PlayerComponent{Direction: config.DirDown})
	em.AddComponent(id, &components.WalkAnimationComponent{Active: true, Direction: config.DirDown, Multiplier: 1})

	for i := 0; i < components.WalkAnimationTicks; i++ {
		sys.Update()
	}

	if sprite.Depth != utils.SpriteDepth(sprite.PixelY) {
		t.Errorf("Expected depth %d, got %d", utils.SpriteDepth(sprite.PixelY), sprite.Depth)
	}
}

func TestIdlePlayer_FacesDirectionAtRest(t *testing.T) {
	em := ecs.NewEntityManager()
	sys := NewAnimationSystem(em)

	id := em.CreateEntity()
	sprite := &components.SpriteComponent{FrameRow: config.DirDown, FrameCol: 2}
	em.AddComponent(id, sprite)
	em.AddComponent(id, &components.PlayerComponent{Direction: config.DirLeft})
	em.AddComponent(id, &components.WalkAnimationComponent{})

	sys.Update()

	if sprite.FrameRow != config.DirLeft || sprite.FrameCol != 0 {
		t.Errorf("Expected rest frame facing left, got row %d col %d", sprite.FrameRow, sprite.FrameCol)
	}
}
