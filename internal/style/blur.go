package style

import (
	"fmt"

	"cardsmith/internal/domain"
)

// BlurIntensity selects the frosted-glass strength of a panel background.
type BlurIntensity string

const (
	BlurLight  BlurIntensity = "light"
	BlurMedium BlurIntensity = "medium"
	BlurStrong BlurIntensity = "strong"
)

// BlurConfig pairs the frost blur radius with the opacity the whole panel is
// attenuated by. Stronger frost goes with a more transparent backdrop.
type BlurConfig struct {
	FrostRadius     float64
	BackdropOpacity float64
}

var blurConfigs = map[BlurIntensity]BlurConfig{
	BlurLight:  {FrostRadius: 2, BackdropOpacity: 0.92},
	BlurMedium: {FrostRadius: 4, BackdropOpacity: 0.86},
	BlurStrong: {FrostRadius: 7, BackdropOpacity: 0.78},
}

// Config returns the frost parameters for the intensity.
func (b BlurIntensity) Config() BlurConfig { return blurConfigs[b] }

// AllBlurIntensities lists every selectable intensity in stable order.
func AllBlurIntensities() []BlurIntensity {
	return []BlurIntensity{BlurLight, BlurMedium, BlurStrong}
}

// ParseBlurIntensity validates a request tag.
func ParseBlurIntensity(s string) (BlurIntensity, error) {
	b := BlurIntensity(s)
	if _, ok := blurConfigs[b]; !ok {
		return "", fmt.Errorf("blur intensity %q: %w", s, domain.ErrUnknownPreset)
	}
	return b, nil
}
