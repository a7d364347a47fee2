package render

import (
	"bytes"
	"testing"

	"cardsmith/internal/layout"
	"cardsmith/internal/style"
)

func panelBorderSpec(glow style.GlowIntensity) BorderSpec {
	return BorderSpec{
		Width:        100,
		Height:       50,
		Dims:         layout.Dimensions(layout.BorderKindPanel, glow),
		Finish:       style.BorderGold,
		Glow:         glow,
		Rounded:      true,
		CornerRadius: DefaultCornerRadius,
	}
}

func TestBorderBufferFootprint(t *testing.T) {
	tests := []struct {
		name string
		kind layout.BorderKind
		glow style.GlowIntensity
	}{
		{"frame no glow", layout.BorderKindFrame, style.GlowNone},
		{"frame strong", layout.BorderKindFrame, style.GlowStrong},
		{"panel no glow", layout.BorderKindPanel, style.GlowNone},
		{"panel medium", layout.BorderKindPanel, style.GlowMedium},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dims := layout.Dimensions(tt.kind, tt.glow)
			img := Border(BorderSpec{
				Width:  100,
				Height: 50,
				Dims:   dims,
				Finish: style.BorderSilver,
				Glow:   tt.glow,
			})
			total := dims.TotalSpace()
			if got := img.Bounds(); got.Dx() != 100+2*total || got.Dy() != 50+2*total {
				t.Fatalf("bounds = %v, want %dx%d", got, 100+2*total, 50+2*total)
			}
		})
	}
}

// With glow none, the square-corner ring bands land at exact pixel offsets
// from the buffer edge: outer ring, empty gap, thin mid-color ring, hairline,
// then the transparent interior.
func TestBorderRingBands(t *testing.T) {
	dims := layout.Dimensions(layout.BorderKindPanel, style.GlowNone)
	img := Border(BorderSpec{
		Width:  100,
		Height: 50,
		Dims:   dims,
		Finish: style.BorderGold,
		Glow:   style.GlowNone,
	})
	y := img.Bounds().Dy() / 2

	if a := img.NRGBAAt(1, y).A; a == 0 {
		t.Fatal("outer ring pixel transparent")
	}
	if a := img.NRGBAAt(5, y).A; a != 0 {
		t.Fatalf("gap pixel alpha = %d, want 0 with no glow", a)
	}
	mid := style.BorderGold.Stops().Mid
	if px := img.NRGBAAt(7, y); px.R != mid.R || px.G != mid.G || px.B != mid.B {
		t.Fatalf("inner ring pixel = %+v, want mid stop %+v", px, mid)
	}
	if px := img.NRGBAAt(8, y); px.A == 0 || px.R > 30 {
		t.Fatalf("hairline pixel = %+v, want near-black", px)
	}
	if a := img.NRGBAAt(20, y).A; a != 0 {
		t.Fatalf("interior pixel alpha = %d, want transparent", a)
	}
}

// Glow none must add nothing anywhere: the gap band and every pixel outside
// the rings stay fully transparent, and repeated renders are byte-identical.
func TestBorderGlowNoneAddsNothing(t *testing.T) {
	plain := Border(panelBorderSpec(style.GlowNone))
	again := Border(panelBorderSpec(style.GlowNone))
	if !bytes.Equal(plain.Pix, again.Pix) {
		t.Fatal("identical glow-none inputs rendered different borders")
	}

	dims := layout.Dimensions(layout.BorderKindPanel, style.GlowNone)
	y := plain.Bounds().Dy() / 2
	gapX := dims.Outer + 1
	if a := plain.NRGBAAt(gapX, y).A; a != 0 {
		t.Fatalf("glow-none gap alpha = %d, want 0", a)
	}

	glowing := Border(panelBorderSpec(style.GlowSubtle))
	gdims := layout.Dimensions(layout.BorderKindPanel, style.GlowSubtle)
	gy := glowing.Bounds().Dy() / 2
	if a := glowing.NRGBAAt(gdims.GlowPadding+gdims.Outer+1, gy).A; a == 0 {
		t.Fatal("subtle glow leaked no halo alpha into the gap band")
	}
}

func TestBorderRoundedCorners(t *testing.T) {
	rounded := Border(panelBorderSpec(style.GlowNone))
	if a := rounded.NRGBAAt(0, 0).A; a != 0 {
		t.Fatalf("rounded corner pixel alpha = %d, want 0 outside the arc", a)
	}

	square := Border(BorderSpec{
		Width:  100,
		Height: 50,
		Dims:   layout.Dimensions(layout.BorderKindFrame, style.GlowNone),
		Finish: style.BorderGold,
		Glow:   style.GlowNone,
	})
	if a := square.NRGBAAt(0, 0).A; a == 0 {
		t.Fatal("square corner pixel transparent, want outer ring coverage")
	}
}

func TestBorderGlowOpacityOrdering(t *testing.T) {
	// Sample the halo just outside the outer ring; stronger presets leave
	// more alpha there.
	alpha := func(glow style.GlowIntensity) uint8 {
		img := Border(panelBorderSpec(glow))
		dims := layout.Dimensions(layout.BorderKindPanel, glow)
		return img.NRGBAAt(dims.GlowPadding-1, img.Bounds().Dy()/2).A
	}
	subtle, medium, strong := alpha(style.GlowSubtle), alpha(style.GlowMedium), alpha(style.GlowStrong)
	if subtle == 0 || medium == 0 || strong == 0 {
		t.Fatalf("halo alpha = %d/%d/%d, want non-zero for every glowing preset", subtle, medium, strong)
	}
	if !(strong > subtle) {
		t.Fatalf("halo alpha strong=%d subtle=%d, want strong brighter", strong, subtle)
	}
}
