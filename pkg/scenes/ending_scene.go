package scenes

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/feldgrau/timegarden/pkg/config"
	"github.com/feldgrau/timegarden/pkg/game"
)

// EndingScene shows the outcome banner and quits on any key press.
type EndingScene struct {
	ctx        *Context
	goodEnding bool
	bannerFace *text.GoTextFace
	hintFace   *text.GoTextFace
	keys       []ebiten.Key
}

// NewEndingScene creates the ending screen for the given outcome.
func NewEndingScene(ctx *Context, goodEnding bool) *EndingScene {
	return &EndingScene{
		ctx:        ctx,
		goodEnding: goodEnding,
		bannerFace: game.FontFace(32),
		hintFace:   game.FontFace(14),
	}
}

// Update quits on the first key press.
func (s *EndingScene) Update() {
	s.keys = inpututil.AppendJustPressedKeys(s.keys[:0])
	if len(s.keys) > 0 {
		s.ctx.SceneManager.Quit()
	}
}

// Draw renders the outcome banner over a black screen.
func (s *EndingScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	banner := "THE GOAL WAS NOT MET"
	if s.goodEnding {
		banner = "THE GOAL WAS MET IN TIME"
	}
	drawCentered(screen, banner, s.bannerFace, config.GameWindowHeight/2-30)
	drawCentered(screen, "PRESS ANY KEY TO QUIT", s.hintFace, config.GameWindowHeight/2+20)
}
