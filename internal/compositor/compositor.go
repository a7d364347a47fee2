// Package compositor assembles the final card raster: cover-fitted
// background and illustration, the illustration frame border, then per panel
// a translucent background, a rounded border and an auto-fitted glyph layer.
// Compose is pure per call and safe for concurrent use.
package compositor

import (
	"bytes"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	"github.com/rs/zerolog"

	"cardsmith/internal/domain"
	"cardsmith/internal/geometry"
	"cardsmith/internal/layout"
	"cardsmith/internal/render"
	"cardsmith/internal/style"
)

// Compositor runs the layer pipeline. Geometry violations are advisory and
// only logged; decode failures abort the compose.
type Compositor struct {
	lg zerolog.Logger
}

// New returns a compositor logging advisories through lg.
func New(lg zerolog.Logger) *Compositor {
	return &Compositor{lg: lg}
}

// Compose renders one card. Layer order is fixed: background, illustration,
// frame border, panel backgrounds with borders in catalogue order, then the
// glyph layers in the same order.
func (c *Compositor) Compose(req Request) (*image.NRGBA, error) {
	v, err := layout.Resolve(req.Variant)
	if err != nil {
		return nil, err
	}
	v = layout.Apply(v, req.Scale)

	anchor := req.Anchor
	if anchor == "" {
		anchor = layout.DefaultAnchor(v.Orientation())
	}

	c.checkGeometry(v, req.Glow)

	bg, err := decodeLayer(req.Background, "background")
	if err != nil {
		return nil, err
	}
	canvas := imaging.Fill(bg, v.CanvasW, v.CanvasH, imaging.Center, imaging.Lanczos)

	ill, err := decodeLayer(req.Illustration, "illustration")
	if err != nil {
		return nil, err
	}
	fr := v.IllustrationFrame
	fitted := imaging.Fill(ill, fr.W, fr.H, cropAnchor(anchor), imaging.Lanczos)
	canvas = imaging.Overlay(canvas, fitted, image.Pt(fr.X, fr.Y), 1.0)

	frameDims := layout.Dimensions(layout.BorderKindFrame, req.Glow)
	frameBorder := render.Border(render.BorderSpec{
		Width:  fr.W,
		Height: fr.H,
		Dims:   frameDims,
		Finish: req.Border,
		Glow:   req.Glow,
	})
	canvas = imaging.Overlay(canvas, frameBorder, image.Pt(fr.X-frameDims.TotalSpace(), fr.Y-frameDims.TotalSpace()), 1.0)

	panelDims := layout.Dimensions(layout.BorderKindPanel, req.Glow)
	for _, p := range v.Panels {
		backdrop := render.Panel(render.PanelSpec{
			Width:        p.Rect.W,
			Height:       p.Rect.H,
			Color:        req.Color,
			Texture:      req.Texture,
			Blur:         req.Blur,
			CornerRadius: render.DefaultCornerRadius,
		})
		canvas = imaging.Overlay(canvas, backdrop, image.Pt(p.Rect.X, p.Rect.Y), 1.0)

		border := render.Border(render.BorderSpec{
			Width:        p.Rect.W,
			Height:       p.Rect.H,
			Dims:         panelDims,
			Finish:       req.Border,
			Glow:         req.Glow,
			Rounded:      true,
			CornerRadius: render.DefaultCornerRadius,
		})
		canvas = imaging.Overlay(canvas, border, image.Pt(p.Rect.X-panelDims.TotalSpace(), p.Rect.Y-panelDims.TotalSpace()), 1.0)
	}

	for _, p := range v.Panels {
		glyphs, err := render.Text(render.TextSpec{
			Width:  p.Rect.W,
			Height: p.Rect.H,
			Text:   req.Panels[p.ID],
			Kind:   p.Kind,
		})
		if err != nil {
			return nil, fmt.Errorf("text layer %s: %w", p.ID, err)
		}
		if glyphs == nil {
			continue
		}
		canvas = imaging.Overlay(canvas, glyphs, image.Pt(p.Rect.X, p.Rect.Y), 1.0)
	}

	return canvas, nil
}

// checkGeometry runs the advisory border-space validation once per compose:
// every decorated rect against the canvas, then every pair for breathing
// room.
func (c *Compositor) checkGeometry(v layout.Variant, glow style.GlowIntensity) {
	type decorated struct {
		name string
		rect geometry.Rect
		dims layout.BorderDimensions
	}
	rects := []decorated{
		{name: "illustration-frame", rect: v.IllustrationFrame, dims: layout.Dimensions(layout.BorderKindFrame, glow)},
	}
	panelDims := layout.Dimensions(layout.BorderKindPanel, glow)
	for _, p := range v.Panels {
		rects = append(rects, decorated{name: string(p.ID), rect: p.Rect, dims: panelDims})
	}

	for _, r := range rects {
		if err := layout.ValidateWithinCanvas(r.rect, r.dims, v.CanvasW, v.CanvasH); err != nil {
			c.lg.Warn().Err(err).Str("variant", string(v.ID)).Str("rect", r.name).Msg("layout advisory")
		}
	}
	for i := 0; i < len(rects); i++ {
		for j := i + 1; j < len(rects); j++ {
			if err := layout.ValidateGap(rects[i].rect, rects[i].dims, rects[j].rect, rects[j].dims, layout.DefaultMinGap); err != nil {
				c.lg.Warn().Err(err).Str("variant", string(v.ID)).Str("a", rects[i].name).Str("b", rects[j].name).Msg("layout advisory")
			}
		}
	}
}

func decodeLayer(data []byte, stage string) (image.Image, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%s: empty buffer: %w", stage, domain.ErrInvalidImageData)
	}
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", stage, domain.ErrInvalidImageData)
	}
	return img, nil
}

func cropAnchor(a layout.CropAnchor) imaging.Anchor {
	switch a {
	case layout.AnchorTop:
		return imaging.Top
	case layout.AnchorBottom:
		return imaging.Bottom
	default:
		return imaging.Center
	}
}

// EncodePNG serializes the composed card.
func EncodePNG(img *image.NRGBA) ([]byte, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}
