package style

import (
	"fmt"

	"cardsmith/internal/domain"
)

// TextureType selects the neutral overlay pattern drawn over a panel base.
type TextureType string

const (
	TextureMattePaper TextureType = "matte-paper"
	TextureSilk       TextureType = "silk"
	TextureInkWash    TextureType = "ink-wash"
	TextureNone       TextureType = "none"
)

// TexturePattern names the drawing primitive a texture uses.
type TexturePattern string

const (
	PatternNoise    TexturePattern = "noise"
	PatternDiagonal TexturePattern = "diagonal"
	PatternCloud    TexturePattern = "cloud"
)

// TextureConfig describes one overlay pattern. Textures are rendered in
// neutral white/black only and blended in overlay mode so the base hue and
// saturation never shift. Scale is the pattern cell size in pixels.
type TextureConfig struct {
	Pattern TexturePattern
	Opacity float64
	Scale   int
}

var textureConfigs = map[TextureType]TextureConfig{
	TextureMattePaper: {Pattern: PatternNoise, Opacity: 0.05, Scale: 2},
	TextureSilk:       {Pattern: PatternDiagonal, Opacity: 0.07, Scale: 6},
	TextureInkWash:    {Pattern: PatternCloud, Opacity: 0.09, Scale: 48},
	TextureNone:       {},
}

// Config returns the overlay parameters for the texture type.
func (t TextureType) Config() TextureConfig { return textureConfigs[t] }

// AllTextureTypes lists every selectable texture in stable order.
func AllTextureTypes() []TextureType {
	return []TextureType{TextureMattePaper, TextureSilk, TextureInkWash, TextureNone}
}

// ParseTextureType validates a request tag.
func ParseTextureType(s string) (TextureType, error) {
	t := TextureType(s)
	if _, ok := textureConfigs[t]; !ok {
		return "", fmt.Errorf("texture %q: %w", s, domain.ErrUnknownPreset)
	}
	return t, nil
}
