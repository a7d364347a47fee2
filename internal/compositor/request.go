package compositor

import (
	"fmt"

	"cardsmith/internal/domain"
	"cardsmith/internal/frame"
	"cardsmith/internal/layout"
	"cardsmith/internal/style"
)

// Request is a fully validated compose call. Enum fields are typed; building
// one from wire params is the only place tags are checked, so Compose can
// trust membership.
type Request struct {
	Variant      layout.VariantID
	Scale        layout.ScalePreset
	Anchor       layout.CropAnchor // empty selects the orientation default
	Color        style.ColorID
	Texture      style.TextureType
	Blur         style.BlurIntensity
	Glow         style.GlowIntensity
	Border       style.BorderPreset
	Frame        frame.PresetID // applied by the caller after Compose
	Panels       map[layout.PanelID]string
	Background   []byte
	Illustration []byte
}

// BuildRequest normalizes wire params and validates every tag. An explicit
// variant wins over the legacy mode field. Unknown tags surface as
// ErrUnknownVariant or ErrUnknownPreset for the boundary to map to 400.
func BuildRequest(params domain.CardParams) (Request, error) {
	params.Normalize()

	var (
		req Request
		err error
	)
	if params.Variant != "" {
		req.Variant, err = layout.ParseVariantID(params.Variant)
	} else {
		req.Variant, err = layout.FromLegacyMode(params.Mode)
	}
	if err != nil {
		return Request{}, err
	}
	if req.Scale, err = layout.ParseScalePreset(params.Scale); err != nil {
		return Request{}, err
	}
	if params.Anchor != "" {
		if req.Anchor, err = layout.ParseCropAnchor(params.Anchor); err != nil {
			return Request{}, err
		}
	}
	if req.Color, err = style.ParseColorID(params.Color); err != nil {
		return Request{}, err
	}
	if req.Texture, err = style.ParseTextureType(params.Texture); err != nil {
		return Request{}, err
	}
	if req.Blur, err = style.ParseBlurIntensity(params.Blur); err != nil {
		return Request{}, err
	}
	if req.Glow, err = style.ParseGlowIntensity(params.Glow); err != nil {
		return Request{}, err
	}
	if req.Border, err = style.ParseBorderPreset(params.Border); err != nil {
		return Request{}, err
	}
	if req.Frame, err = frame.ParsePresetID(params.Frame); err != nil {
		return Request{}, err
	}
	if len(params.Panels) > 0 {
		req.Panels = make(map[layout.PanelID]string, len(params.Panels))
		for key, text := range params.Panels {
			id, err := parsePanelID(key)
			if err != nil {
				return Request{}, err
			}
			req.Panels[id] = text
		}
	}
	return req, nil
}

func parsePanelID(s string) (layout.PanelID, error) {
	for _, id := range layout.PanelIDs() {
		if layout.PanelID(s) == id {
			return id, nil
		}
	}
	return "", fmt.Errorf("panel %q: %w", s, domain.ErrUnknownPreset)
}
