package scenes

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/feldgrau/timegarden/pkg/config"
	"github.com/feldgrau/timegarden/pkg/game"
)

// TitleScene shows the title banner over the rendered level and waits
// for any key press to start a session.
type TitleScene struct {
	ctx       *Context
	titleFace *text.GoTextFace
	hintFace  *text.GoTextFace
	keys      []ebiten.Key
}

// NewTitleScene creates the title screen.
func NewTitleScene(ctx *Context) *TitleScene {
	return &TitleScene{
		ctx:       ctx,
		titleFace: game.FontFace(32),
		hintFace:  game.FontFace(14),
	}
}

// Update starts a game session on the first key press.
func (s *TitleScene) Update() {
	s.keys = inpututil.AppendJustPressedKeys(s.keys[:0])
	if len(s.keys) == 0 {
		return
	}
	log.Printf("[TitleScene] Starting session")
	scene, err := NewGameScene(s.ctx)
	if err != nil {
		log.Printf("[TitleScene] Failed to start session: %v", err)
		s.ctx.SceneManager.Quit()
		return
	}
	s.ctx.SceneManager.SwitchTo(scene)
}

// Draw renders the level as backdrop with the title text centered over it.
func (s *TitleScene) Draw(screen *ebiten.Image) {
	screen.DrawImage(s.ctx.LevelImages.Background, nil)

	drawCentered(screen, "TIME GARDEN", s.titleFace, config.GameWindowHeight/2-40)
	drawCentered(screen, "PRESS ANY KEY TO START", s.hintFace, config.GameWindowHeight/2+10)
}

func drawCentered(screen *ebiten.Image, str string, face *text.GoTextFace, y int) {
	if face == nil {
		return
	}
	w, _ := text.Measure(str, face, 0)
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(config.GameWindowWidth)/2-w/2, float64(y))
	text.Draw(screen, str, face, op)
}
