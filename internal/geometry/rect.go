// Package geometry provides the integer rectangle primitive shared by the
// layout catalogue, border calculator and compositor.
package geometry

import (
	"fmt"
	"image"
	"math"
)

// Rect is an axis-aligned rectangle in pixel space. X,Y is the top-left
// corner; W,H must be non-negative for a drawable rect.
type Rect struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

// Right returns the exclusive right edge (X+W).
func (r Rect) Right() int { return r.X + r.W }

// Bottom returns the exclusive bottom edge (Y+H).
func (r Rect) Bottom() int { return r.Y + r.H }

// Empty reports whether the rect has no drawable area.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Center returns the midpoint in continuous coordinates.
func (r Rect) Center() (float64, float64) {
	return float64(r.X) + float64(r.W)/2, float64(r.Y) + float64(r.H)/2
}

// Translated returns a copy shifted by dx,dy.
func (r Rect) Translated(dx, dy int) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

// Expanded grows the rect outward by m on every edge. A negative m insets.
func (r Rect) Expanded(m int) Rect {
	return Rect{X: r.X - m, Y: r.Y - m, W: r.W + 2*m, H: r.H + 2*m}
}

// ScaledAbout scales the rect uniformly by f about the point (cx, cy).
// Dimensions and the center offset scale independently and round to the
// nearest pixel, so a factor of 1.0 is an exact identity.
func (r Rect) ScaledAbout(cx, cy, f float64) Rect {
	w := math.Round(float64(r.W) * f)
	h := math.Round(float64(r.H) * f)
	rcx, rcy := r.Center()
	ncx := cx + (rcx-cx)*f
	ncy := cy + (rcy-cy)*f
	return Rect{
		X: int(math.Round(ncx - w/2)),
		Y: int(math.Round(ncy - h/2)),
		W: int(w),
		H: int(h),
	}
}

// Contains reports whether the point (x, y) lies inside the rect.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// ContainsRect reports whether o lies entirely inside r.
func (r Rect) ContainsRect(o Rect) bool {
	return o.X >= r.X && o.Y >= r.Y && o.Right() <= r.Right() && o.Bottom() <= r.Bottom()
}

// Intersects reports whether the two rects share any area. Rects that only
// touch along an edge do not intersect.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.Right() && o.X < r.Right() && r.Y < o.Bottom() && o.Y < r.Bottom()
}

// OverlapsX reports whether the X projections of the two rects overlap.
func (r Rect) OverlapsX(o Rect) bool {
	return r.X < o.Right() && o.X < r.Right()
}

// OverlapsY reports whether the Y projections of the two rects overlap.
func (r Rect) OverlapsY(o Rect) bool {
	return r.Y < o.Bottom() && o.Y < r.Bottom()
}

// GapX returns the horizontal separation between the rects' X projections.
// The result is negative when the projections overlap.
func (r Rect) GapX(o Rect) int {
	if g := o.X - r.Right(); g >= 0 {
		return g
	}
	if g := r.X - o.Right(); g >= 0 {
		return g
	}
	// Overlapping projections: distance past the nearer edge pair.
	left := o.X - r.Right()
	right := r.X - o.Right()
	if left > right {
		return left
	}
	return right
}

// GapY returns the vertical separation between the rects' Y projections.
// The result is negative when the projections overlap.
func (r Rect) GapY(o Rect) int {
	if g := o.Y - r.Bottom(); g >= 0 {
		return g
	}
	if g := r.Y - o.Bottom(); g >= 0 {
		return g
	}
	top := o.Y - r.Bottom()
	bottom := r.Y - o.Bottom()
	if top > bottom {
		return top
	}
	return bottom
}

// ImageRect converts to the stdlib image.Rectangle form.
func (r Rect) ImageRect() image.Rectangle {
	return image.Rect(r.X, r.Y, r.Right(), r.Bottom())
}

// FromImageRect converts an image.Rectangle into a Rect.
func FromImageRect(ir image.Rectangle) Rect {
	ir = ir.Canon()
	return Rect{X: ir.Min.X, Y: ir.Min.Y, W: ir.Dx(), H: ir.Dy()}
}

func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d %dx%d)", r.X, r.Y, r.W, r.H)
}
