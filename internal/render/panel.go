package render

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"

	"cardsmith/internal/style"
)

// frostAlpha is the uniform whiteness of the frosted-glass layer before it
// is blurred.
const frostAlpha = 0.28

// highlightAlpha is the peak strength of the fixed diagonal highlight.
const highlightAlpha = 0.10

// PanelSpec describes one translucent panel background.
type PanelSpec struct {
	Width        int
	Height       int
	Color        style.ColorID
	Texture      style.TextureType
	Blur         style.BlurIntensity
	CornerRadius float64
}

// Panel renders the panel background: re-lit base gradient, frosted-glass
// layer, neutral texture overlay and the fixed diagonal highlight, masked by
// a rounded rect and attenuated by the blur preset's backdrop opacity.
func Panel(spec PanelSpec) *image.NRGBA {
	w, h := spec.Width, spec.Height
	blurCfg := spec.Blur.Config()

	dc := gg.NewContext(w, h)
	dc.DrawRoundedRectangle(0, 0, float64(w), float64(h), spec.CornerRadius)
	dc.Clip()

	stops := style.DefaultGradientLight.Relight(spec.Color.Stops())
	dc.SetFillStyle(verticalGradient(float64(h), stops))
	dc.DrawRectangle(0, 0, float64(w), float64(h))
	dc.Fill()

	dc.DrawImage(frostLayer(w, h, blurCfg.FrostRadius), 0, 0)

	base := toNRGBA(dc.Image())
	applyTexture(base, spec.Texture)

	hc := gg.NewContextForRGBA(rgbaFrom(base))
	hc.DrawRoundedRectangle(0, 0, float64(w), float64(h), spec.CornerRadius)
	hc.Clip()
	highlight := gg.NewLinearGradient(0, 0, float64(w), float64(h))
	highlight.AddColorStop(0, color.NRGBA{R: 255, G: 255, B: 255, A: uint8(highlightAlpha*255 + 0.5)})
	highlight.AddColorStop(0.45, color.NRGBA{R: 255, G: 255, B: 255, A: 0})
	highlight.AddColorStop(1, color.NRGBA{R: 255, G: 255, B: 255, A: 0})
	hc.SetFillStyle(highlight)
	hc.DrawRectangle(0, 0, float64(w), float64(h))
	hc.Fill()

	out := toNRGBA(hc.Image())
	scaleAlpha(out, blurCfg.BackdropOpacity)
	return out
}

// frostLayer is a uniform low-alpha white sheet blurred to soft edges,
// simulating backlit translucency under the texture.
func frostLayer(w, h int, radius float64) image.Image {
	frost := image.NewNRGBA(image.Rect(0, 0, w, h))
	alpha := float64(frostAlpha)*255 + 0.5
	white := color.NRGBA{R: 255, G: 255, B: 255, A: uint8(alpha)}
	draw.Draw(frost, frost.Bounds(), &image.Uniform{C: white}, image.Point{}, draw.Src)
	if radius <= 0 {
		return frost
	}
	return imaging.Blur(frost, radius)
}

func rgbaFrom(img *image.NRGBA) *image.RGBA {
	out := image.NewRGBA(img.Bounds())
	draw.Draw(out, out.Bounds(), img, img.Bounds().Min, draw.Src)
	return out
}
