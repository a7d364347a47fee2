package style

import (
	"errors"
	"image/color"
	"testing"

	"cardsmith/internal/domain"
)

func TestParseAcceptsCatalogue(t *testing.T) {
	for _, id := range AllColorIDs() {
		if got, err := ParseColorID(string(id)); err != nil || got != id {
			t.Fatalf("ParseColorID(%q) = %q, %v", id, got, err)
		}
	}
	for _, tt := range AllTextureTypes() {
		if got, err := ParseTextureType(string(tt)); err != nil || got != tt {
			t.Fatalf("ParseTextureType(%q) = %q, %v", tt, got, err)
		}
	}
	for _, b := range AllBlurIntensities() {
		if got, err := ParseBlurIntensity(string(b)); err != nil || got != b {
			t.Fatalf("ParseBlurIntensity(%q) = %q, %v", b, got, err)
		}
	}
	for _, g := range AllGlowIntensities() {
		if got, err := ParseGlowIntensity(string(g)); err != nil || got != g {
			t.Fatalf("ParseGlowIntensity(%q) = %q, %v", g, got, err)
		}
	}
	for _, b := range AllBorderPresets() {
		if got, err := ParseBorderPreset(string(b)); err != nil || got != b {
			t.Fatalf("ParseBorderPreset(%q) = %q, %v", b, got, err)
		}
	}
}

func TestParseRejectsUnknownTags(t *testing.T) {
	tests := []struct {
		name  string
		parse func(string) error
	}{
		{name: "color", parse: func(s string) error { _, err := ParseColorID(s); return err }},
		{name: "texture", parse: func(s string) error { _, err := ParseTextureType(s); return err }},
		{name: "blur", parse: func(s string) error { _, err := ParseBlurIntensity(s); return err }},
		{name: "glow", parse: func(s string) error { _, err := ParseGlowIntensity(s); return err }},
		{name: "border", parse: func(s string) error { _, err := ParseBorderPreset(s); return err }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.parse("chartreuse")
			if !errors.Is(err, domain.ErrUnknownPreset) {
				t.Fatalf("expected ErrUnknownPreset, got %v", err)
			}
			if err := tc.parse(""); !errors.Is(err, domain.ErrUnknownPreset) {
				t.Fatalf("empty tag: expected ErrUnknownPreset, got %v", err)
			}
		})
	}
}

func TestRelightShiftsStops(t *testing.T) {
	base := ColorObsidian.Stops()
	lit := DefaultGradientLight.Relight(base)

	wantTop := color.NRGBA{R: 0x2A + 18, G: 0x2B + 18, B: 0x31 + 18, A: 0xFF}
	if lit.Top != wantTop {
		t.Fatalf("Top = %+v, want %+v", lit.Top, wantTop)
	}
	if lit.Mid != base.Mid {
		t.Fatalf("Mid changed: %+v, want %+v", lit.Mid, base.Mid)
	}
	// Obsidian bottom channels all sit below the darkness delta and clamp to 0.
	wantBottom := color.NRGBA{A: 0xFF}
	if lit.Bottom != wantBottom {
		t.Fatalf("Bottom = %+v, want %+v", lit.Bottom, wantBottom)
	}
}

func TestRelightClampsAtWhite(t *testing.T) {
	lit := DefaultGradientLight.Relight(ColorIvory.Stops())
	if lit.Top.R != 0xFF {
		t.Fatalf("ivory top red = %d, want clamped 255", lit.Top.R)
	}
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    color.NRGBA
		wantErr bool
	}{
		{name: "uppercase", in: "#D4AF37", want: color.NRGBA{R: 0xD4, G: 0xAF, B: 0x37, A: 0xFF}},
		{name: "lowercase", in: "#d4af37", want: color.NRGBA{R: 0xD4, G: 0xAF, B: 0x37, A: 0xFF}},
		{name: "missing hash", in: "D4AF37", wantErr: true},
		{name: "too short", in: "#D4AF3", wantErr: true},
		{name: "bad digit", in: "#GGHHII", wantErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseHex(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("ParseHex(%q) expected error, got %+v", tc.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseHex(%q) error = %v", tc.in, err)
			}
			if got != tc.want {
				t.Fatalf("ParseHex(%q) = %+v, want %+v", tc.in, got, tc.want)
			}
		})
	}
}

func TestGlowPadding(t *testing.T) {
	tests := []struct {
		intensity GlowIntensity
		want      int
	}{
		{GlowNone, 0},
		{GlowSubtle, 6},
		{GlowMedium, 8},
		{GlowStrong, 12},
	}
	for _, tc := range tests {
		if got := tc.intensity.Padding(); got != tc.want {
			t.Fatalf("%s padding = %d, want %d", tc.intensity, got, tc.want)
		}
	}
}

func TestBlurConfigsOrdered(t *testing.T) {
	light, medium, strong := BlurLight.Config(), BlurMedium.Config(), BlurStrong.Config()
	if !(light.FrostRadius < medium.FrostRadius && medium.FrostRadius < strong.FrostRadius) {
		t.Fatalf("frost radii not increasing: %v %v %v", light.FrostRadius, medium.FrostRadius, strong.FrostRadius)
	}
	if !(light.BackdropOpacity > medium.BackdropOpacity && medium.BackdropOpacity > strong.BackdropOpacity) {
		t.Fatalf("backdrop opacity not decreasing: %v %v %v", light.BackdropOpacity, medium.BackdropOpacity, strong.BackdropOpacity)
	}
}
