package systems

import (
	"fmt"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/feldgrau/timegarden/pkg/components"
	"github.com/feldgrau/timegarden/pkg/config"
	"github.com/feldgrau/timegarden/pkg/ecs"
	"github.com/feldgrau/timegarden/pkg/game"
)

// RenderSystem draws the play field: background, shadows, sprites
// sorted by depth, wall overlays and the HUD.
type RenderSystem struct {
	entityManager *ecs.EntityManager
	counters      *game.CounterState
	status        *game.StatusLine
	levelImages   *game.LevelImages
	face          *text.GoTextFace
}

// NewRenderSystem creates the render system for one session.
func NewRenderSystem(em *ecs.EntityManager, counters *game.CounterState, status *game.StatusLine, images *game.LevelImages) *RenderSystem {
	return &RenderSystem{
		entityManager: em,
		counters:      counters,
		status:        status,
		levelImages:   images,
		face:          game.FontFace(14),
	}
}

// Draw renders one frame.
func (s *RenderSystem) Draw(screen *ebiten.Image) {
	screen.DrawImage(s.levelImages.Background, nil)
	s.drawShadows(screen)
	s.drawSprites(screen)
	s.drawOverlays(screen)
	s.drawHUD(screen)
}

// drawShadows paints the translucent blobs under every sprite. Shadows
// go below everything else, so they never need depth sorting.
func (s *RenderSystem) drawShadows(screen *ebiten.Image) {
	for _, id := range ecs.GetEntitiesWith1[*components.ShadowComponent](s.entityManager) {
		shadow, _ := ecs.GetComponent[*components.ShadowComponent](s.entityManager, id)
		if shadow.Image == nil {
			continue
		}
		owner, ok := ecs.GetComponent[*components.SpriteComponent](s.entityManager, shadow.Owner)
		if !ok {
			continue
		}

		// Anchor the shadow's mid-bottom on the owner's mid-bottom.
		w := shadow.Image.Bounds().Dx()
		h := shadow.Image.Bounds().Dy()
		x := owner.PixelX + config.SpriteSize/2 - w/2
		y := owner.PixelY + config.SpriteSize - h

		op := &ebiten.DrawImageOptions{}
		op.ColorScale.ScaleAlpha(0.25)
		op.GeoM.Translate(float64(x), float64(y))
		screen.DrawImage(shadow.Image, op)
	}
}

// drawSprites paints every sprite, southern ones over northern ones.
func (s *RenderSystem) drawSprites(screen *ebiten.Image) {
	ids := ecs.GetEntitiesWith1[*components.SpriteComponent](s.entityManager)
	sort.SliceStable(ids, func(i, j int) bool {
		a, _ := ecs.GetComponent[*components.SpriteComponent](s.entityManager, ids[i])
		b, _ := ecs.GetComponent[*components.SpriteComponent](s.entityManager, ids[j])
		return a.Depth < b.Depth
	})

	for _, id := range ids {
		sprite, _ := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)
		frame := currentFrame(sprite)
		if frame == nil {
			continue
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(sprite.PixelX), float64(sprite.PixelY))
		screen.DrawImage(frame, op)
	}
}

// drawOverlays paints the wall caps one tile above their wall cell,
// covering sprite heads that poke over a wall-top boundary.
func (s *RenderSystem) drawOverlays(screen *ebiten.Image) {
	for pos, img := range s.levelImages.Overlays {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(
			float64(pos.X*config.TileWidth),
			float64(pos.Y*config.TileHeight-config.TileHeight),
		)
		screen.DrawImage(img, op)
	}
}

// drawHUD paints the counters, the time-stop readout and the status
// line.
func (s *RenderSystem) drawHUD(screen *ebiten.Image) {
	if s.face == nil {
		return
	}
	cs := s.counters

	white := [4]float32{1, 1, 1, 1}
	blue := [4]float32{0.4, 0.6, 1, 1}
	yellow := [4]float32{1, 1, 0.4, 1}

	y := 210
	s.drawText(screen, fmt.Sprintf("POTATOES: %d", cs.Stock), 5, y, white)
	y += 20
	s.drawText(screen, fmt.Sprintf("TIME LEFT: %d", cs.DeadlineSecondsLeft()), 5, y, white)
	y += 20
	s.drawText(screen, fmt.Sprintf("POTATOES DONATED: %d", cs.Donation), 5, y, white)
	y += 20
	s.drawText(screen, fmt.Sprintf("POTATOES NEEDED FOR GOAL: %d", cs.Rules.DonationGoal), 5, y, white)
	y += 20

	if cs.IsTimeStopped {
		s.drawText(screen, "TIME STOPPED", 5, y, blue)
		y += 20
		s.drawText(screen, fmt.Sprintf("SECONDS LEFT: %d", cs.StopSecondsLeft()), 5, y, blue)
		y += 20
	}

	if msg := s.status.Text(); msg != "" {
		s.drawText(screen, msg, 5, y, yellow)
	}
}

func (s *RenderSystem) drawText(screen *ebiten.Image, str string, x, y int, rgba [4]float32) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.Scale(rgba[0], rgba[1], rgba[2], rgba[3])
	text.Draw(screen, str, s.face, op)
}

func currentFrame(sprite *components.SpriteComponent) *ebiten.Image {
	if sprite.FrameRow < 0 || sprite.FrameRow >= len(sprite.Frames) {
		return nil
	}
	row := sprite.Frames[sprite.FrameRow]
	if sprite.FrameCol < 0 || sprite.FrameCol >= len(row) {
		return nil
	}
	return row[sprite.FrameCol]
}
