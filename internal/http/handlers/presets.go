package handlers

import (
	"net/http"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"cardsmith/internal/frame"
	"cardsmith/internal/layout"
	"cardsmith/internal/style"
)

// Presets enumerates every selectable option so clients can build pickers
// without hardcoding the catalogue.
func (a *App) Presets(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, map[string]any{
		"variants": variantItems(),
		"scales":   scaleItems(),
		"anchors":  anchorItems(),
		"colors":   colorItems(),
		"textures": textureItems(),
		"blurs":    blurItems(),
		"glows":    glowItems(),
		"borders":  borderItems(),
		"frames":   frameItems(),
	})
}

func displayName(id string) string {
	c := cases.Title(language.Und)
	return c.String(strings.ReplaceAll(id, "-", " "))
}

func variantItems() []map[string]any {
	items := make([]map[string]any, 0, len(layout.AllVariantIDs()))
	for _, id := range layout.AllVariantIDs() {
		v, err := layout.Resolve(id)
		if err != nil {
			continue
		}
		items = append(items, map[string]any{
			"id":            id,
			"name":          displayName(string(id)),
			"canvas_width":  v.CanvasW,
			"canvas_height": v.CanvasH,
			"orientation":   v.Orientation(),
			"panels":        layout.PanelIDs(),
		})
	}
	return items
}

func scaleItems() []map[string]any {
	items := make([]map[string]any, 0, len(layout.AllScalePresets()))
	for _, s := range layout.AllScalePresets() {
		items = append(items, map[string]any{
			"id":     s,
			"name":   displayName(string(s)),
			"factor": s.Factor(),
		})
	}
	return items
}

func anchorItems() []map[string]any {
	items := make([]map[string]any, 0, len(layout.AllCropAnchors()))
	for _, a := range layout.AllCropAnchors() {
		items = append(items, map[string]any{
			"id":   a,
			"name": displayName(string(a)),
		})
	}
	return items
}

func colorItems() []map[string]any {
	items := make([]map[string]any, 0, len(style.AllColorIDs()))
	for _, c := range style.AllColorIDs() {
		items = append(items, map[string]any{
			"id":   c,
			"name": displayName(string(c)),
		})
	}
	return items
}

func textureItems() []map[string]any {
	items := make([]map[string]any, 0, len(style.AllTextureTypes()))
	for _, t := range style.AllTextureTypes() {
		items = append(items, map[string]any{
			"id":   t,
			"name": displayName(string(t)),
		})
	}
	return items
}

func blurItems() []map[string]any {
	items := make([]map[string]any, 0, len(style.AllBlurIntensities()))
	for _, b := range style.AllBlurIntensities() {
		items = append(items, map[string]any{
			"id":   b,
			"name": displayName(string(b)),
		})
	}
	return items
}

func glowItems() []map[string]any {
	items := make([]map[string]any, 0, len(style.AllGlowIntensities()))
	for _, g := range style.AllGlowIntensities() {
		items = append(items, map[string]any{
			"id":   g,
			"name": displayName(string(g)),
		})
	}
	return items
}

func borderItems() []map[string]any {
	items := make([]map[string]any, 0, len(style.AllBorderPresets()))
	for _, b := range style.AllBorderPresets() {
		items = append(items, map[string]any{
			"id":   b,
			"name": displayName(string(b)),
		})
	}
	return items
}

func frameItems() []map[string]any {
	items := make([]map[string]any, 0, len(frame.AllPresetIDs()))
	for _, id := range frame.AllPresetIDs() {
		p, err := frame.Get(id)
		if err != nil {
			continue
		}
		item := map[string]any{
			"id":   id,
			"name": displayName(string(id)),
		}
		if id != frame.PresetNone {
			item["corner_size"] = p.CornerSize
			item["edge_thickness"] = p.EdgeThickness
			item["color_scheme"] = p.ColorScheme
		}
		items = append(items, item)
	}
	return items
}
