// Package layout holds the immutable card layout catalogue: canvas sizes,
// illustration frames and text panel rects per variant, the scale presets
// that shrink interiors about the canvas center, and the border-space
// calculator that validates breathing room between decorated rects.
package layout

import (
	"fmt"

	"cardsmith/internal/domain"
	"cardsmith/internal/geometry"
)

// VariantID names one catalogue entry.
type VariantID string

const (
	VariantLandscapeSquare VariantID = "landscape-square"
	VariantLandscapeFlat   VariantID = "landscape-flat"
	VariantPortraitSquare  VariantID = "portrait-square"
	VariantPortraitFlat    VariantID = "portrait-flat"
)

// Orientation is derived from the canvas aspect, never stored.
type Orientation string

const (
	OrientationLandscape Orientation = "landscape"
	OrientationPortrait  Orientation = "portrait"
)

// PanelID is the stable identity of a text panel across variants.
type PanelID string

const (
	PanelTitle    PanelID = "title"
	PanelContent1 PanelID = "content1"
	PanelContent2 PanelID = "content2"
	PanelContent3 PanelID = "content3"
	PanelContent4 PanelID = "content4"
)

// PanelKind distinguishes the title panel from content panels for type
// sizing.
type PanelKind string

const (
	PanelKindTitle   PanelKind = "title"
	PanelKindContent PanelKind = "content"
)

// Panel is one text slot of a variant.
type Panel struct {
	ID   PanelID
	Kind PanelKind
	Rect geometry.Rect
}

// Variant is one immutable catalogue entry. Panels are ordered title first,
// then content1..content4; that order is also the compositing order.
type Variant struct {
	ID                VariantID
	CanvasW           int
	CanvasH           int
	IllustrationFrame geometry.Rect
	Panels            []Panel
}

// Orientation reports landscape when the canvas is at least as wide as tall.
func (v Variant) Orientation() Orientation {
	if v.CanvasW >= v.CanvasH {
		return OrientationLandscape
	}
	return OrientationPortrait
}

// Canvas returns the full canvas rect.
func (v Variant) Canvas() geometry.Rect {
	return geometry.Rect{W: v.CanvasW, H: v.CanvasH}
}

// Panel returns the panel with the given id.
func (v Variant) Panel(id PanelID) (Panel, bool) {
	for _, p := range v.Panels {
		if p.ID == id {
			return p, true
		}
	}
	return Panel{}, false
}

// PanelIDs lists the panel order of every variant.
func PanelIDs() []PanelID {
	return []PanelID{PanelTitle, PanelContent1, PanelContent2, PanelContent3, PanelContent4}
}

func contentPanels(x, w, h int, ys [4]int) []Panel {
	ps := make([]Panel, 0, 4)
	ids := [4]PanelID{PanelContent1, PanelContent2, PanelContent3, PanelContent4}
	for i, y := range ys {
		ps = append(ps, Panel{ID: ids[i], Kind: PanelKindContent, Rect: geometry.Rect{X: x, Y: y, W: w, H: h}})
	}
	return ps
}

func withTitle(title geometry.Rect, content []Panel) []Panel {
	return append([]Panel{{ID: PanelTitle, Kind: PanelKindTitle, Rect: title}}, content...)
}

// The catalogue. Rects are exact-fit: 40px outer margins absorb the widest
// border+glow footprint, inter-panel gaps stay clear of the advisory minimum
// up to the medium glow preset.
var variants = map[VariantID]Variant{
	VariantLandscapeSquare: {
		ID:                VariantLandscapeSquare,
		CanvasW:           1024,
		CanvasH:           768,
		IllustrationFrame: geometry.Rect{X: 40, Y: 40, W: 390, H: 688},
		Panels: withTitle(
			geometry.Rect{X: 480, Y: 40, W: 504, H: 100},
			contentPanels(480, 504, 107, [4]int{180, 327, 474, 621}),
		),
	},
	VariantLandscapeFlat: {
		ID:                VariantLandscapeFlat,
		CanvasW:           1024,
		CanvasH:           576,
		IllustrationFrame: geometry.Rect{X: 40, Y: 40, W: 330, H: 496},
		Panels: withTitle(
			geometry.Rect{X: 420, Y: 40, W: 564, H: 80},
			contentPanels(420, 564, 66, [4]int{158, 262, 366, 470}),
		),
	},
	VariantPortraitSquare: {
		ID:                VariantPortraitSquare,
		CanvasW:           768,
		CanvasH:           1024,
		IllustrationFrame: geometry.Rect{X: 40, Y: 40, W: 688, H: 390},
		Panels: withTitle(
			geometry.Rect{X: 40, Y: 480, W: 688, H: 90},
			contentPanels(40, 688, 65, [4]int{610, 713, 816, 919}),
		),
	},
	VariantPortraitFlat: {
		ID:                VariantPortraitFlat,
		CanvasW:           768,
		CanvasH:           1152,
		IllustrationFrame: geometry.Rect{X: 40, Y: 40, W: 688, H: 550},
		Panels: withTitle(
			geometry.Rect{X: 40, Y: 640, W: 688, H: 90},
			contentPanels(40, 688, 57, [4]int{770, 865, 960, 1055}),
		),
	},
}

// Resolve returns a defensive copy of the catalogue entry for id.
func Resolve(id VariantID) (Variant, error) {
	v, ok := variants[id]
	if !ok {
		return Variant{}, fmt.Errorf("variant %q: %w", id, domain.ErrUnknownVariant)
	}
	v.Panels = append([]Panel(nil), v.Panels...)
	return v, nil
}

// ParseVariantID validates a request tag.
func ParseVariantID(s string) (VariantID, error) {
	id := VariantID(s)
	if _, ok := variants[id]; !ok {
		return "", fmt.Errorf("variant %q: %w", s, domain.ErrUnknownVariant)
	}
	return id, nil
}

// FromLegacyMode maps the historical two-way mode to its square variant.
func FromLegacyMode(mode string) (VariantID, error) {
	switch Orientation(mode) {
	case OrientationLandscape:
		return VariantLandscapeSquare, nil
	case OrientationPortrait:
		return VariantPortraitSquare, nil
	}
	return "", fmt.Errorf("layout mode %q: %w", mode, domain.ErrUnknownVariant)
}

// AllVariantIDs lists the catalogue in stable order.
func AllVariantIDs() []VariantID {
	return []VariantID{VariantLandscapeSquare, VariantLandscapeFlat, VariantPortraitSquare, VariantPortraitFlat}
}
