package layout

import (
	"fmt"

	"cardsmith/internal/geometry"
	"cardsmith/internal/style"
)

// BorderKind distinguishes the heavy illustration frame rings from the
// lighter text panel rings.
type BorderKind string

const (
	BorderKindFrame BorderKind = "frame"
	BorderKindPanel BorderKind = "panel"
)

// BorderDimensions is the per-edge space one decorated rect consumes outside
// its own bounds: the concentric ring widths plus the glow halo padding.
type BorderDimensions struct {
	Outer       int
	Gap         int
	Inner       int
	Hairline    int
	GlowPadding int
}

// DefaultMinGap is the advisory minimum breathing room, in pixels, between
// two decorated rects after both footprints are accounted for.
const DefaultMinGap = 4

// Dimensions returns the footprint for a border kind under a glow intensity.
func Dimensions(kind BorderKind, glow style.GlowIntensity) BorderDimensions {
	d := BorderDimensions{Outer: 4, Gap: 3, Inner: 1, Hairline: 1}
	if kind == BorderKindFrame {
		d = BorderDimensions{Outer: 6, Gap: 4, Inner: 2, Hairline: 1}
	}
	d.GlowPadding = glow.Padding()
	return d
}

// RingSpace is the summed stroke footprint without the glow halo.
func (d BorderDimensions) RingSpace() int {
	return d.Outer + d.Gap + d.Inner + d.Hairline
}

// TotalSpace is the full per-edge footprint including glow padding.
func (d BorderDimensions) TotalSpace() int {
	return d.RingSpace() + d.GlowPadding
}

// ValidateGap checks the breathing room between two decorated rects. Each
// rect is expanded by its own total footprint, then the pair is classified:
// diagonal neighbors always pass, overlapping footprints always fail, and
// axis-adjacent footprints must keep at least minGap pixels of separation.
// The returned error is advisory; callers log it and continue.
func ValidateGap(a geometry.Rect, da BorderDimensions, b geometry.Rect, db BorderDimensions, minGap int) error {
	ea := a.Expanded(da.TotalSpace())
	eb := b.Expanded(db.TotalSpace())

	switch {
	case ea.Intersects(eb):
		return fmt.Errorf("decorated rects %v and %v overlap", a, b)
	case ea.OverlapsY(eb):
		if gap := ea.GapX(eb); gap < minGap {
			return fmt.Errorf("horizontal gap %dpx between %v and %v below minimum %dpx", gap, a, b, minGap)
		}
	case ea.OverlapsX(eb):
		if gap := ea.GapY(eb); gap < minGap {
			return fmt.Errorf("vertical gap %dpx between %v and %v below minimum %dpx", gap, a, b, minGap)
		}
	}
	// Diagonal neighbors share no axis projection and never crowd.
	return nil
}

// ValidateWithinCanvas checks that the rect, expanded by its footprint,
// stays inside the canvas. Advisory, same as ValidateGap.
func ValidateWithinCanvas(r geometry.Rect, d BorderDimensions, canvasW, canvasH int) error {
	canvas := geometry.Rect{W: canvasW, H: canvasH}
	if e := r.Expanded(d.TotalSpace()); !canvas.ContainsRect(e) {
		return fmt.Errorf("decorated rect %v exceeds canvas %dx%d", r, canvasW, canvasH)
	}
	return nil
}
