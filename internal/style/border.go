package style

import (
	"fmt"

	"cardsmith/internal/domain"
)

// BorderPreset selects the metal finish of the multi-ring borders.
type BorderPreset string

const (
	BorderGold   BorderPreset = "gold"
	BorderSilver BorderPreset = "silver"
	BorderBronze BorderPreset = "bronze"
)

var borderStops = map[BorderPreset]GradientStops{
	BorderGold:   {Top: mustHex("#F6E27A"), Mid: mustHex("#D4AF37"), Bottom: mustHex("#8C6A1D")},
	BorderSilver: {Top: mustHex("#E8ECEF"), Mid: mustHex("#B8C0C8"), Bottom: mustHex("#6E7B8A")},
	BorderBronze: {Top: mustHex("#E0A96D"), Mid: mustHex("#B87333"), Bottom: mustHex("#6E3F1A")},
}

// Stops returns the ring gradient stops for the preset. The middle stop also
// colors the thin inner ring.
func (b BorderPreset) Stops() GradientStops { return borderStops[b] }

// AllBorderPresets lists every selectable finish in stable order.
func AllBorderPresets() []BorderPreset {
	return []BorderPreset{BorderGold, BorderSilver, BorderBronze}
}

// ParseBorderPreset validates a request tag.
func ParseBorderPreset(s string) (BorderPreset, error) {
	b := BorderPreset(s)
	if _, ok := borderStops[b]; !ok {
		return "", fmt.Errorf("border preset %q: %w", s, domain.ErrUnknownPreset)
	}
	return b, nil
}
