// Package render synthesizes the card's vector layers as rasterized RGBA
// buffers: translucent panel backgrounds, multi-ring borders with optional
// glow, and auto-fitted text layers. Every generator is pure; buffers are
// sized to the layer's bounding box and composited by the caller.
package render

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"

	"cardsmith/internal/style"
)

// DefaultCornerRadius is the rounded-rect radius shared by panel backgrounds
// and panel borders.
const DefaultCornerRadius = 14.0

// toNRGBA normalizes any image to non-premultiplied RGBA.
func toNRGBA(img image.Image) *image.NRGBA {
	return imaging.Clone(img)
}

// scaleAlpha attenuates the alpha channel in place.
func scaleAlpha(img *image.NRGBA, opacity float64) {
	if opacity >= 1 {
		return
	}
	for y := 0; y < img.Rect.Dy(); y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+img.Rect.Dx()*4]
		for x := 3; x < len(row); x += 4 {
			row[x] = uint8(float64(row[x])*opacity + 0.5)
		}
	}
}

// verticalGradient builds a gg fill pattern from three anchor stops.
func verticalGradient(h float64, stops style.GradientStops) gg.Gradient {
	grad := gg.NewLinearGradient(0, 0, 0, h)
	grad.AddColorStop(0, stops.Top)
	grad.AddColorStop(0.5, stops.Mid)
	grad.AddColorStop(1, stops.Bottom)
	return grad
}

func withAlpha(c color.NRGBA, a float64) color.NRGBA {
	c.A = uint8(a*255 + 0.5)
	return c
}
