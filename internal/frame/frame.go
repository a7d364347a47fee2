package frame

import (
	"errors"
	"fmt"
	"image"
	"math"

	"github.com/disintegration/imaging"

	"cardsmith/internal/assetcache"
	"cardsmith/internal/domain"
	"cardsmith/internal/layout"
)

// Tile scale by card orientation. Portrait canvases are narrower, so their
// ornaments render slightly smaller. Independent of the layout scale preset.
const (
	portraitTileScale  = 0.95
	landscapeTileScale = 1.00
)

// maxInsetOffset caps how far ornaments may retreat from the card edge.
const maxInsetOffset = 20

// Options carries optional caller overrides of the preset defaults. The
// inset override is clamped like the preset value.
type Options struct {
	InsetOffset   *int
	EdgeThickness *int
}

// Renderer composites frame presets over cards using a shared tile cache.
type Renderer struct {
	assets *assetcache.Cache
}

// NewRenderer returns a Renderer loading tiles through the given cache.
func NewRenderer(assets *assetcache.Cache) *Renderer {
	return &Renderer{assets: assets}
}

// Render composites the preset's corners and edge strips over the card and
// returns the result. Preset none returns the input image untouched. A
// missing tile asset fails only this render with domain.ErrAssetNotFound.
func (r *Renderer) Render(card *image.NRGBA, id PresetID, orientation layout.Orientation, opts Options) (*image.NRGBA, error) {
	if id == PresetNone {
		return card, nil
	}
	p, err := Get(id)
	if err != nil {
		return nil, err
	}

	scale := landscapeTileScale
	if orientation == layout.OrientationPortrait {
		scale = portraitTileScale
	}
	size := scaled(p.CornerSize, scale)
	thickness := p.EdgeThickness
	if opts.EdgeThickness != nil {
		thickness = *opts.EdgeThickness
	}
	thickness = scaled(thickness, scale)
	inset := p.InsetOffset
	if opts.InsetOffset != nil {
		inset = *opts.InsetOffset
	}
	inset = clampInset(inset)

	w := card.Bounds().Dx()
	h := card.Bounds().Dy()

	corner, err := r.tileSized(p.CornerAsset, size, size)
	if err != nil {
		return nil, fmt.Errorf("frame %s corner: %w", id, err)
	}

	out := imaging.Clone(card)
	positions := [4]image.Point{
		{X: inset, Y: inset},
		{X: w - inset - size, Y: inset},
		{X: inset, Y: h - inset - size},
		{X: w - inset - size, Y: h - inset - size},
	}
	for c, pos := range positions {
		out = imaging.Overlay(out, orientCorner(corner, c), pos, 1.0)
	}

	// Edge strips span between the corners' far edges; degenerate spans on
	// small cards are skipped.
	hLen := w - 2*(size+inset)
	if hLen > 0 && thickness > 0 {
		strip, err := r.tileSized(p.EdgeAsset, hLen, thickness)
		if err != nil {
			return nil, fmt.Errorf("frame %s edge: %w", id, err)
		}
		out = imaging.Overlay(out, strip, image.Pt(inset+size, inset), 1.0)
		out = imaging.Overlay(out, imaging.FlipV(strip), image.Pt(inset+size, h-inset-thickness), 1.0)
	}
	vLen := h - 2*(size+inset)
	if vLen > 0 && thickness > 0 {
		strip, err := r.tileSized(p.EdgeAsset, vLen, thickness)
		if err != nil {
			return nil, fmt.Errorf("frame %s edge: %w", id, err)
		}
		out = imaging.Overlay(out, imaging.Rotate90(strip), image.Pt(inset, inset+size), 1.0)
		out = imaging.Overlay(out, imaging.Rotate270(strip), image.Pt(w-inset-thickness, inset+size), 1.0)
	}
	return out, nil
}

// orientCorner mirrors the top-left tile for the other three corners:
// 0 top-left as-is, 1 top-right horizontal mirror, 2 bottom-left vertical
// mirror, 3 bottom-right 180 degree rotation.
func orientCorner(tile *image.NRGBA, corner int) *image.NRGBA {
	switch corner {
	case 1:
		return imaging.FlipH(tile)
	case 2:
		return imaging.FlipV(tile)
	case 3:
		return imaging.Rotate180(tile)
	}
	return tile
}

// tileSized resolves the extension-less asset path, preferring the vector
// tile over the raster fallback.
func (r *Renderer) tileSized(base string, w, h int) (*image.NRGBA, error) {
	img, err := r.assets.TileSized(base+".svg", w, h)
	if errors.Is(err, domain.ErrAssetNotFound) {
		return r.assets.TileSized(base+".png", w, h)
	}
	return img, err
}

func scaled(v int, factor float64) int {
	return int(math.Round(float64(v) * factor))
}

func clampInset(v int) int {
	if v < 0 {
		return 0
	}
	if v > maxInsetOffset {
		return maxInsetOffset
	}
	return v
}
