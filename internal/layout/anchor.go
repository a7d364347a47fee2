package layout

import (
	"fmt"

	"cardsmith/internal/domain"
)

// CropAnchor picks which part of an oversized illustration survives the
// cover-fit crop into the frame rect.
type CropAnchor string

const (
	AnchorTop    CropAnchor = "top"
	AnchorCenter CropAnchor = "center"
	AnchorBottom CropAnchor = "bottom"
)

var cropAnchors = map[CropAnchor]struct{}{
	AnchorTop:    {},
	AnchorCenter: {},
	AnchorBottom: {},
}

// DefaultAnchor keeps heads in frame on portrait cards and centers
// landscape scenes.
func DefaultAnchor(o Orientation) CropAnchor {
	if o == OrientationPortrait {
		return AnchorTop
	}
	return AnchorCenter
}

// AllCropAnchors lists every anchor in stable order.
func AllCropAnchors() []CropAnchor {
	return []CropAnchor{AnchorTop, AnchorCenter, AnchorBottom}
}

// ParseCropAnchor validates a request tag.
func ParseCropAnchor(s string) (CropAnchor, error) {
	a := CropAnchor(s)
	if _, ok := cropAnchors[a]; !ok {
		return "", fmt.Errorf("crop anchor %q: %w", s, domain.ErrUnknownPreset)
	}
	return a, nil
}
