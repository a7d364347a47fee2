// Package style defines the closed preset tables for panel colors, textures,
// blur, glow and border finishes. Tags are validated at the service boundary
// with the Parse functions; core rendering code trusts enum membership.
package style

import (
	"fmt"
	"image/color"

	"cardsmith/internal/domain"
)

// ColorID selects the 3-stop base gradient behind a text panel.
type ColorID string

const (
	ColorObsidian ColorID = "obsidian"
	ColorIvory    ColorID = "ivory"
	ColorCrimson  ColorID = "crimson"
	ColorAzure    ColorID = "azure"
	ColorAmethyst ColorID = "amethyst"
)

// GradientStops holds the three anchor colors of a vertical gradient.
type GradientStops struct {
	Top    color.NRGBA
	Mid    color.NRGBA
	Bottom color.NRGBA
}

// GradientLightConfig re-lights a base gradient: the top stop is brightened
// and the bottom stop darkened by fixed per-channel deltas while the midpoint
// stays anchored.
type GradientLightConfig struct {
	TopBrightnessDelta  int
	BottomDarknessDelta int
	StopCount           int
}

// DefaultGradientLight is applied to every panel base gradient.
var DefaultGradientLight = GradientLightConfig{
	TopBrightnessDelta:  18,
	BottomDarknessDelta: 22,
	StopCount:           3,
}

var colorStops = map[ColorID]GradientStops{
	ColorObsidian: {Top: mustHex("#2A2B31"), Mid: mustHex("#1B1C21"), Bottom: mustHex("#101014")},
	ColorIvory:    {Top: mustHex("#F4EFE3"), Mid: mustHex("#E3DCCB"), Bottom: mustHex("#CFC5AC")},
	ColorCrimson:  {Top: mustHex("#5E1F26"), Mid: mustHex("#421318"), Bottom: mustHex("#2A0C0F")},
	ColorAzure:    {Top: mustHex("#1F3A5E"), Mid: mustHex("#14273F"), Bottom: mustHex("#0C1827")},
	ColorAmethyst: {Top: mustHex("#44265E"), Mid: mustHex("#2E1840"), Bottom: mustHex("#1D0F29")},
}

// Stops returns the base gradient stops for the color id. Ids are validated
// at the boundary; an unknown id yields the zero value.
func (c ColorID) Stops() GradientStops { return colorStops[c] }

// Relight applies the light config to a set of base stops.
func (g GradientLightConfig) Relight(s GradientStops) GradientStops {
	return GradientStops{
		Top:    shiftChannels(s.Top, g.TopBrightnessDelta),
		Mid:    s.Mid,
		Bottom: shiftChannels(s.Bottom, -g.BottomDarknessDelta),
	}
}

// AllColorIDs lists every selectable color id in stable order.
func AllColorIDs() []ColorID {
	return []ColorID{ColorObsidian, ColorIvory, ColorCrimson, ColorAzure, ColorAmethyst}
}

// ParseColorID validates a request tag.
func ParseColorID(s string) (ColorID, error) {
	id := ColorID(s)
	if _, ok := colorStops[id]; !ok {
		return "", fmt.Errorf("color id %q: %w", s, domain.ErrUnknownPreset)
	}
	return id, nil
}

func shiftChannels(c color.NRGBA, d int) color.NRGBA {
	return color.NRGBA{R: clamp8(int(c.R) + d), G: clamp8(int(c.G) + d), B: clamp8(int(c.B) + d), A: c.A}
}

func clamp8(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// mustHex parses a #RRGGBB literal; it panics on malformed table constants.
func mustHex(s string) color.NRGBA {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// ParseHex decodes a #RRGGBB color string into a fully opaque NRGBA.
func ParseHex(s string) (color.NRGBA, error) {
	if len(s) != 7 || s[0] != '#' {
		return color.NRGBA{}, fmt.Errorf("hex color %q: want #RRGGBB", s)
	}
	var rgb [3]uint8
	for i := 0; i < 3; i++ {
		hi, ok1 := hexNibble(s[1+2*i])
		lo, ok2 := hexNibble(s[2+2*i])
		if !ok1 || !ok2 {
			return color.NRGBA{}, fmt.Errorf("hex color %q: bad digit", s)
		}
		rgb[i] = hi<<4 | lo
	}
	return color.NRGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: 0xFF}, nil
}

func hexNibble(b byte) (uint8, bool) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', true
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10, true
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10, true
	}
	return 0, false
}
