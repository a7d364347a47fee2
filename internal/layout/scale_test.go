package layout

import (
	"testing"

	"cardsmith/internal/geometry"
	"cardsmith/internal/style"
)

func TestApplyStandardIsIdentity(t *testing.T) {
	for _, id := range AllVariantIDs() {
		v, err := Resolve(id)
		if err != nil {
			t.Fatalf("Resolve error: %v", err)
		}
		scaled := Apply(v, ScaleStandard)
		if scaled.IllustrationFrame != v.IllustrationFrame {
			t.Fatalf("%s frame = %v, want %v", id, scaled.IllustrationFrame, v.IllustrationFrame)
		}
		for i := range v.Panels {
			if scaled.Panels[i] != v.Panels[i] {
				t.Fatalf("%s panel[%d] = %v, want %v", id, i, scaled.Panels[i], v.Panels[i])
			}
		}
	}
}

func TestApplyKnownValues(t *testing.T) {
	v, err := Resolve(VariantLandscapeSquare)
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	mini := Apply(v, ScaleMini)
	if want := (geometry.Rect{X: 182, Y: 143, W: 273, H: 482}); mini.IllustrationFrame != want {
		t.Fatalf("mini frame = %v, want %v", mini.IllustrationFrame, want)
	}
	if want := (geometry.Rect{X: 490, Y: 143, W: 353, H: 70}); mini.Panels[0].Rect != want {
		t.Fatalf("mini title = %v, want %v", mini.Panels[0].Rect, want)
	}
	if mini.CanvasW != v.CanvasW || mini.CanvasH != v.CanvasH {
		t.Fatalf("canvas scaled to %dx%d, must stay %dx%d", mini.CanvasW, mini.CanvasH, v.CanvasW, v.CanvasH)
	}
}

func TestApplyMonotonicDimensions(t *testing.T) {
	ascending := []ScalePreset{ScaleMini, ScaleSlim, ScaleCompact, ScaleModerate, ScaleStandard}
	for _, id := range AllVariantIDs() {
		t.Run(string(id), func(t *testing.T) {
			v, err := Resolve(id)
			if err != nil {
				t.Fatalf("Resolve error: %v", err)
			}
			prev := make([]geometry.Rect, 0, 6)
			for _, preset := range ascending {
				s := Apply(v, preset)
				rects := append([]geometry.Rect{s.IllustrationFrame}, panelRects(s)...)
				if len(prev) > 0 {
					for i, r := range rects {
						if r.W <= prev[i].W || r.H <= prev[i].H {
							t.Fatalf("%s rect[%d] %v not strictly larger than %v", preset, i, r, prev[i])
						}
					}
				}
				prev = rects
			}
		})
	}
}

func TestApplyKeepsDecoratedRectsInCanvas(t *testing.T) {
	frameDims := Dimensions(BorderKindFrame, style.GlowStrong)
	panelDims := Dimensions(BorderKindPanel, style.GlowStrong)
	for _, id := range AllVariantIDs() {
		for _, preset := range AllScalePresets() {
			v, err := Resolve(id)
			if err != nil {
				t.Fatalf("Resolve error: %v", err)
			}
			s := Apply(v, preset)
			if err := ValidateWithinCanvas(s.IllustrationFrame, frameDims, s.CanvasW, s.CanvasH); err != nil {
				t.Fatalf("%s/%s frame: %v", id, preset, err)
			}
			for _, p := range s.Panels {
				if err := ValidateWithinCanvas(p.Rect, panelDims, s.CanvasW, s.CanvasH); err != nil {
					t.Fatalf("%s/%s panel %s: %v", id, preset, p.ID, err)
				}
			}
		}
	}
}

func panelRects(v Variant) []geometry.Rect {
	rs := make([]geometry.Rect, len(v.Panels))
	for i, p := range v.Panels {
		rs[i] = p.Rect
	}
	return rs
}
