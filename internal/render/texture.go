package render

import (
	"image"

	"cardsmith/internal/style"
)

// Texture patterns are neutral white/black fields blended over the panel
// base in overlay mode, so they modulate lightness without shifting hue or
// saturation. All patterns are hash-based and fully deterministic.

// applyTexture overlays the configured pattern onto base in place. Alpha is
// untouched; pixels outside the panel mask stay invisible through their
// zero alpha.
func applyTexture(base *image.NRGBA, texture style.TextureType) {
	cfg := texture.Config()
	if texture == style.TextureNone || cfg.Opacity <= 0 {
		return
	}
	w, h := base.Rect.Dx(), base.Rect.Dy()
	for y := 0; y < h; y++ {
		row := base.Pix[y*base.Stride : y*base.Stride+w*4]
		for x := 0; x < w; x++ {
			p := patternValue(cfg, x, y)
			i := x * 4
			row[i+0] = overlayChannel(row[i+0], p, cfg.Opacity)
			row[i+1] = overlayChannel(row[i+1], p, cfg.Opacity)
			row[i+2] = overlayChannel(row[i+2], p, cfg.Opacity)
		}
	}
}

// patternValue returns the neutral pattern luminance at (x, y) in [0,255].
func patternValue(cfg style.TextureConfig, x, y int) uint8 {
	switch cfg.Pattern {
	case style.PatternNoise:
		return uint8(cellHash(x/cfg.Scale, y/cfg.Scale) >> 24)
	case style.PatternDiagonal:
		if ((x+y)/cfg.Scale)%2 == 0 {
			return 168
		}
		return 88
	case style.PatternCloud:
		return valueNoise(x, y, cfg.Scale)
	}
	return 128
}

// overlayChannel applies the standard overlay blend for one channel, then
// mixes the result back by opacity.
func overlayChannel(base, blend uint8, opacity float64) uint8 {
	b := int(base)
	l := int(blend)
	var ov int
	if b < 128 {
		ov = 2 * b * l / 255
	} else {
		ov = 255 - 2*(255-b)*(255-l)/255
	}
	out := float64(b) + (float64(ov)-float64(b))*opacity
	if out < 0 {
		out = 0
	}
	if out > 255 {
		out = 255
	}
	return uint8(out + 0.5)
}

// valueNoise interpolates corner hashes of the containing cell with a
// smoothstep curve, giving soft cloud blobs at the configured cell size.
func valueNoise(x, y, scale int) uint8 {
	cx, cy := x/scale, y/scale
	fx := float64(x%scale) / float64(scale)
	fy := float64(y%scale) / float64(scale)
	sx := fx * fx * (3 - 2*fx)
	sy := fy * fy * (3 - 2*fy)

	c00 := float64(cellHash(cx, cy) >> 24)
	c10 := float64(cellHash(cx+1, cy) >> 24)
	c01 := float64(cellHash(cx, cy+1) >> 24)
	c11 := float64(cellHash(cx+1, cy+1) >> 24)

	top := c00 + (c10-c00)*sx
	bot := c01 + (c11-c01)*sx
	return uint8(top + (bot-top)*sy)
}

// cellHash is a small integer mix; only quality, not cryptography, matters.
func cellHash(x, y int) uint32 {
	h := uint32(x)*0x9E3779B1 ^ uint32(y)*0x85EBCA77
	h ^= h >> 16
	h *= 0x7FEB352D
	h ^= h >> 15
	h *= 0x846CA68B
	h ^= h >> 16
	return h
}
