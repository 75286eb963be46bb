package game

import (
	"bytes"
	"log"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	fontOnce   sync.Once
	fontSource *text.GoTextFaceSource
)

// FontFace returns a HUD text face of the given size, backed by the
// bundled Go Regular font so text needs no asset files.
func FontFace(size float64) *text.GoTextFace {
	fontOnce.Do(func() {
		src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if err != nil {
			// goregular.TTF is a compile-time constant; this cannot
			// happen outside a corrupted build.
			log.Printf("[Font] Failed to parse bundled font: %v", err)
			return
		}
		fontSource = src
	})
	if fontSource == nil {
		return nil
	}
	return &text.GoTextFace{Source: fontSource, Size: size}
}
