package layout

import (
	"fmt"

	"cardsmith/internal/domain"
)

// ScalePreset shrinks every interior rect uniformly about the canvas center.
// The canvas itself never changes size.
type ScalePreset string

const (
	ScaleStandard ScalePreset = "standard"
	ScaleModerate ScalePreset = "moderate"
	ScaleCompact  ScalePreset = "compact"
	ScaleSlim     ScalePreset = "slim"
	ScaleMini     ScalePreset = "mini"
)

var scaleFactors = map[ScalePreset]float64{
	ScaleStandard: 1.00,
	ScaleModerate: 0.92,
	ScaleCompact:  0.85,
	ScaleSlim:     0.78,
	ScaleMini:     0.70,
}

// Factor returns the linear shrink factor for the preset.
func (s ScalePreset) Factor() float64 { return scaleFactors[s] }

// AllScalePresets lists every preset from largest to smallest.
func AllScalePresets() []ScalePreset {
	return []ScalePreset{ScaleStandard, ScaleModerate, ScaleCompact, ScaleSlim, ScaleMini}
}

// ParseScalePreset validates a request tag.
func ParseScalePreset(s string) (ScalePreset, error) {
	p := ScalePreset(s)
	if _, ok := scaleFactors[p]; !ok {
		return "", fmt.Errorf("scale preset %q: %w", s, domain.ErrUnknownPreset)
	}
	return p, nil
}

// Apply returns the variant with every interior rect scaled by the preset
// about the canvas center. The standard preset returns the catalogue rects
// untouched, with no float round trip.
func Apply(v Variant, preset ScalePreset) Variant {
	f := preset.Factor()
	if f == 1.0 {
		return v
	}
	cx := float64(v.CanvasW) / 2
	cy := float64(v.CanvasH) / 2
	out := v
	out.IllustrationFrame = v.IllustrationFrame.ScaledAbout(cx, cy, f)
	out.Panels = make([]Panel, len(v.Panels))
	for i, p := range v.Panels {
		p.Rect = p.Rect.ScaledAbout(cx, cy, f)
		out.Panels[i] = p
	}
	return out
}
