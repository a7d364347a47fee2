// Package frame composites an ornamental corner+edge tile frame over a
// finished card. Presets name the tile assets and default placement; tiles
// are loaded through the shared asset cache and placed with per-corner
// mirroring so one corner asset serves all four corners.
package frame

import (
	"fmt"

	"cardsmith/internal/domain"
)

// PresetID names one ornamental tile set.
type PresetID string

const (
	PresetCyber   PresetID = "cyber"
	PresetClassic PresetID = "classic"
	PresetMinimal PresetID = "minimal"
	PresetFantasy PresetID = "fantasy"
	PresetBattle  PresetID = "battle"
	PresetNone    PresetID = "none"
)

// Preset describes one frame: tile asset paths (extension-less, resolved as
// .svg first and .png second under the asset root), the corner tile square
// size, the edge strip thickness, the default inset from the card edge and
// a display color scheme.
type Preset struct {
	ID            PresetID
	CornerAsset   string
	EdgeAsset     string
	CornerSize    int
	EdgeThickness int
	InsetOffset   int
	ColorScheme   string
}

var presets = map[PresetID]Preset{
	PresetCyber: {
		ID:            PresetCyber,
		CornerAsset:   "frames/cyber/corner",
		EdgeAsset:     "frames/cyber/edge",
		CornerSize:    96,
		EdgeThickness: 24,
		InsetOffset:   8,
		ColorScheme:   "neon",
	},
	PresetClassic: {
		ID:            PresetClassic,
		CornerAsset:   "frames/classic/corner",
		EdgeAsset:     "frames/classic/edge",
		CornerSize:    112,
		EdgeThickness: 32,
		InsetOffset:   12,
		ColorScheme:   "gilded",
	},
	PresetMinimal: {
		ID:            PresetMinimal,
		CornerAsset:   "frames/minimal/corner",
		EdgeAsset:     "frames/minimal/edge",
		CornerSize:    64,
		EdgeThickness: 12,
		InsetOffset:   16,
		ColorScheme:   "mono",
	},
	PresetFantasy: {
		ID:            PresetFantasy,
		CornerAsset:   "frames/fantasy/corner",
		EdgeAsset:     "frames/fantasy/edge",
		CornerSize:    128,
		EdgeThickness: 36,
		InsetOffset:   6,
		ColorScheme:   "verdant",
	},
	PresetBattle: {
		ID:            PresetBattle,
		CornerAsset:   "frames/battle/corner",
		EdgeAsset:     "frames/battle/edge",
		CornerSize:    120,
		EdgeThickness: 40,
		InsetOffset:   4,
		ColorScheme:   "ember",
	},
	PresetNone: {ID: PresetNone},
}

// Get returns the preset for the id.
func Get(id PresetID) (Preset, error) {
	p, ok := presets[id]
	if !ok {
		return Preset{}, fmt.Errorf("frame preset %q: %w", id, domain.ErrUnknownPreset)
	}
	return p, nil
}

// AllPresetIDs lists every selectable preset in stable order.
func AllPresetIDs() []PresetID {
	return []PresetID{PresetCyber, PresetClassic, PresetMinimal, PresetFantasy, PresetBattle, PresetNone}
}

// ParsePresetID validates a request tag.
func ParsePresetID(s string) (PresetID, error) {
	id := PresetID(s)
	if _, ok := presets[id]; !ok {
		return "", fmt.Errorf("frame preset %q: %w", s, domain.ErrUnknownPreset)
	}
	return id, nil
}
