package render

import (
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// The embedded Go fonts cover Latin plus wide Unicode ranges and keep the
// renderer free of filesystem font lookups. Parsed fonts are immutable and
// shared; faces carry per-use glyph caches, so each text layer gets its own.
var (
	fontOnce  sync.Once
	fontErr   error
	boldFont  *truetype.Font
	plainFont *truetype.Font
)

func loadFonts() {
	boldFont, fontErr = truetype.Parse(gobold.TTF)
	if fontErr != nil {
		return
	}
	plainFont, fontErr = truetype.Parse(goregular.TTF)
}

func newFace(bold bool, size int) (font.Face, error) {
	fontOnce.Do(loadFonts)
	if fontErr != nil {
		return nil, fontErr
	}
	src := plainFont
	if bold {
		src = boldFont
	}
	return truetype.NewFace(src, &truetype.Options{Size: float64(size)}), nil
}
