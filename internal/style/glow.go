package style

import (
	"fmt"
	"image/color"

	"cardsmith/internal/domain"
)

// GlowIntensity selects the halo rendered under a border's outer ring.
type GlowIntensity string

const (
	GlowNone   GlowIntensity = "none"
	GlowSubtle GlowIntensity = "subtle"
	GlowMedium GlowIntensity = "medium"
	GlowStrong GlowIntensity = "strong"
)

// GlowConfig describes the halo: the silhouette is stroked SpreadRadius
// wider than the outer ring, flood-filled with Color, Gaussian-blurred by
// BlurRadius and alpha-scaled by Opacity before the rings draw over it.
type GlowConfig struct {
	BlurRadius   int
	Color        color.NRGBA
	Opacity      float64
	SpreadRadius int
}

var glowConfigs = map[GlowIntensity]GlowConfig{
	GlowNone:   {},
	GlowSubtle: {BlurRadius: 3, Color: mustHex("#FFF8E7"), Opacity: 0.40, SpreadRadius: 1},
	GlowMedium: {BlurRadius: 4, Color: mustHex("#FFF8E7"), Opacity: 0.55, SpreadRadius: 2},
	GlowStrong: {BlurRadius: 6, Color: mustHex("#FFF8E7"), Opacity: 0.70, SpreadRadius: 3},
}

// Config returns the halo parameters for the intensity.
func (g GlowIntensity) Config() GlowConfig { return glowConfigs[g] }

// Padding returns the extra per-edge pixels a glowing border needs so the
// blurred halo is never clipped. Defined as twice the blur radius.
func (g GlowIntensity) Padding() int { return 2 * glowConfigs[g].BlurRadius }

// AllGlowIntensities lists every selectable intensity in stable order.
func AllGlowIntensities() []GlowIntensity {
	return []GlowIntensity{GlowNone, GlowSubtle, GlowMedium, GlowStrong}
}

// ParseGlowIntensity validates a request tag.
func ParseGlowIntensity(s string) (GlowIntensity, error) {
	g := GlowIntensity(s)
	if _, ok := glowConfigs[g]; !ok {
		return "", fmt.Errorf("glow intensity %q: %w", s, domain.ErrUnknownPreset)
	}
	return g, nil
}
