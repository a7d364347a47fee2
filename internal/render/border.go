package render

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"

	"cardsmith/internal/layout"
	"cardsmith/internal/style"
)

// hairline is drawn near-black at reduced opacity so it reads as an edge,
// not a stripe.
var hairlineColor = color.NRGBA{R: 10, G: 10, B: 10, A: 153}

// BorderSpec describes one multi-ring border around a rect of
// Width x Height. The returned buffer is padded by the footprint's
// TotalSpace on every edge; callers place it at the rect origin offset by
// -TotalSpace so the hairline's inner edge meets the rect exactly.
type BorderSpec struct {
	Width        int
	Height       int
	Dims         layout.BorderDimensions
	Finish       style.BorderPreset
	Glow         style.GlowIntensity
	Rounded      bool
	CornerRadius float64
}

// Border renders the ring stack from the rect edge outward: a 1px hairline,
// a thin solid ring in the finish's middle color, an empty gap, and the
// thick outer ring filled with the finish gradient. A non-none glow is
// blurred under the rings before they draw. Rings are filled as even-odd
// annulus bands, keeping square corners crisp and band edges pixel-aligned.
func Border(spec BorderSpec) *image.NRGBA {
	total := spec.Dims.TotalSpace()
	bw := spec.Width + 2*total
	bh := spec.Height + 2*total

	hairStart := 0
	innerStart := hairStart + spec.Dims.Hairline
	gapStart := innerStart + spec.Dims.Inner
	outerStart := gapStart + spec.Dims.Gap
	outerEnd := outerStart + spec.Dims.Outer

	dc := gg.NewContext(bw, bh)

	if spec.Glow != style.GlowNone {
		dc.DrawImage(glowLayer(spec, bw, bh, outerStart, outerEnd), 0, 0)
	}

	stops := spec.Finish.Stops()
	if bandPath(dc, spec, outerStart, outerEnd) {
		dc.SetFillStyle(verticalGradient(float64(bh), stops))
		dc.Fill()
	}
	if bandPath(dc, spec, innerStart, gapStart) {
		dc.SetColor(stops.Mid)
		dc.Fill()
	}
	if bandPath(dc, spec, hairStart, innerStart) {
		dc.SetColor(hairlineColor)
		dc.Fill()
	}

	return toNRGBA(dc.Image())
}

// bandPath traces the annulus covering [from, to) pixels outside the wrapped
// rect as an even-odd pair of expanded rects. Rounded corner radii grow with
// the edge offset so every ring stays concentric; radii never drop below
// zero.
func bandPath(dc *gg.Context, spec BorderSpec, from, to int) bool {
	if to <= from {
		return false
	}
	edgeRect(dc, spec, float64(to))
	edgeRect(dc, spec, float64(from))
	dc.SetFillRule(gg.FillRuleEvenOdd)
	return true
}

func edgeRect(dc *gg.Context, spec BorderSpec, offset float64) {
	total := float64(spec.Dims.TotalSpace())
	x := total - offset
	y := total - offset
	w := float64(spec.Width) + 2*offset
	h := float64(spec.Height) + 2*offset
	if spec.Rounded {
		r := spec.CornerRadius + offset
		if r < 0 {
			r = 0
		}
		dc.DrawRoundedRectangle(x, y, w, h, r)
	} else {
		dc.DrawRectangle(x, y, w, h)
	}
}

// glowLayer fills the outer ring's silhouette dilated by SpreadRadius with
// the glow color, Gaussian-blurs it and scales its alpha. The result merges
// under the rings.
func glowLayer(spec BorderSpec, bw, bh, outerStart, outerEnd int) image.Image {
	cfg := spec.Glow.Config()
	gc := gg.NewContext(bw, bh)
	if bandPath(gc, spec, outerStart-cfg.SpreadRadius, outerEnd+cfg.SpreadRadius) {
		gc.SetColor(cfg.Color)
		gc.Fill()
	}
	blurred := imaging.Blur(gc.Image(), float64(cfg.BlurRadius))
	scaleAlpha(blurred, cfg.Opacity)
	return blurred
}
