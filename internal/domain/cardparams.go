package domain

import "strings"

// CardParams is the canonical compose request shared by the API and the
// worker: the API validates it at the boundary and stores it on the job as
// raw JSON, the worker reads it back to drive generation and composition.
// All style fields carry string tags; the compositor boundary converts them
// to typed presets and rejects unknown tags.
type CardParams struct {
	Variant            string            `json:"variant,omitempty"`
	Mode               string            `json:"mode,omitempty"`
	Scale              string            `json:"scale,omitempty"`
	Color              string            `json:"color,omitempty"`
	Texture            string            `json:"texture,omitempty"`
	Blur               string            `json:"blur,omitempty"`
	Glow               string            `json:"glow,omitempty"`
	Border             string            `json:"border,omitempty"`
	Frame              string            `json:"frame,omitempty"`
	Anchor             string            `json:"anchor,omitempty"`
	Panels             map[string]string `json:"panels,omitempty"`
	BackgroundPrompt   string            `json:"background_prompt,omitempty"`
	IllustrationPrompt string            `json:"illustration_prompt,omitempty"`
	NegativePrompt     string            `json:"negative_prompt,omitempty"`
}

// Server-side defaults applied when a request omits a field. Anchor stays
// empty on purpose: its default depends on the resolved layout orientation.
const (
	DefaultVariant = "landscape-square"
	DefaultScale   = "standard"
	DefaultColor   = "obsidian"
	DefaultTexture = "none"
	DefaultBlur    = "medium"
	DefaultGlow    = "none"
	DefaultBorder  = "gold"
	DefaultFrame   = "none"
)

// Normalize fills omitted fields with server defaults. The variant default
// only applies when the legacy mode is also absent; an explicit variant
// always wins over mode.
func (p *CardParams) Normalize() {
	if p == nil {
		return
	}
	if strings.TrimSpace(p.Variant) == "" && strings.TrimSpace(p.Mode) == "" {
		p.Variant = DefaultVariant
	}
	if p.Scale == "" {
		p.Scale = DefaultScale
	}
	if p.Color == "" {
		p.Color = DefaultColor
	}
	if p.Texture == "" {
		p.Texture = DefaultTexture
	}
	if p.Blur == "" {
		p.Blur = DefaultBlur
	}
	if p.Glow == "" {
		p.Glow = DefaultGlow
	}
	if p.Border == "" {
		p.Border = DefaultBorder
	}
	if p.Frame == "" {
		p.Frame = DefaultFrame
	}
}

// PanelText returns the requested text for a panel id. A missing entry is
// not an error; the panel renders with an empty glyph layer.
func (p CardParams) PanelText(id string) string {
	if p.Panels == nil {
		return ""
	}
	return p.Panels[id]
}
