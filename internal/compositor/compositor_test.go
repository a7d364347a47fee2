package compositor

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/rs/zerolog"

	"cardsmith/internal/domain"
	"cardsmith/internal/frame"
	"cardsmith/internal/layout"
	"cardsmith/internal/style"
)

func pngBytes(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		t.Fatalf("encode fixture: %v", err)
	}
	return buf.Bytes()
}

func solid(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

// splitVertical is red in its top half and blue below, for observing which
// region a crop anchor keeps.
func splitVertical(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		c := color.NRGBA{R: 255, A: 255}
		if y >= h/2 {
			c = color.NRGBA{B: 255, A: 255}
		}
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func testCompositor() *Compositor {
	return New(zerolog.Nop())
}

func validRequest(t *testing.T) Request {
	t.Helper()
	req, err := BuildRequest(domain.CardParams{})
	if err != nil {
		t.Fatalf("BuildRequest: %v", err)
	}
	req.Background = pngBytes(t, solid(1600, 900, color.NRGBA{B: 200, A: 255}))
	req.Illustration = pngBytes(t, solid(800, 800, color.NRGBA{G: 200, A: 255}))
	return req
}

func TestComposeLandscapeSquareScenario(t *testing.T) {
	req := validRequest(t)
	req.Panels = map[layout.PanelID]string{layout.PanelTitle: "勇者"}

	out, err := testCompositor().Compose(req)
	if err != nil {
		t.Fatalf("Compose error: %v", err)
	}
	if b := out.Bounds(); b.Dx() != 1024 || b.Dy() != 768 {
		t.Fatalf("canvas = %v, want 1024x768", b)
	}

	// Frame rect (40,40,390,688): its center shows the green illustration.
	if px := out.NRGBAAt(235, 384); px.G < 150 || px.B > 100 {
		t.Fatalf("illustration center = %+v, want green", px)
	}
	// Outside every decorated rect the background survives.
	if px := out.NRGBAAt(455, 10); px.B < 150 {
		t.Fatalf("margin pixel = %+v, want background blue", px)
	}
	// Title panel (480,40,504,100) carries a backdrop, not raw background.
	if px := out.NRGBAAt(732, 90); px.B > 150 && px.R < 30 && px.G < 30 {
		t.Fatalf("title panel center = %+v, want composited panel", px)
	}
	// Content panels render their backdrop even with no text.
	if px := out.NRGBAAt(732, 233); px.B > 150 && px.R < 30 && px.G < 30 {
		t.Fatalf("content1 center = %+v, want composited panel", px)
	}
}

func TestComposeEmptyPanelsSkipGlyphs(t *testing.T) {
	req := validRequest(t)

	plain, err := testCompositor().Compose(req)
	if err != nil {
		t.Fatalf("Compose error: %v", err)
	}
	req.Panels = map[layout.PanelID]string{layout.PanelTitle: "   "}
	blank, err := testCompositor().Compose(req)
	if err != nil {
		t.Fatalf("Compose error: %v", err)
	}
	if !bytes.Equal(plain.Pix, blank.Pix) {
		t.Fatal("whitespace-only title produced a glyph layer")
	}

	req.Panels = map[layout.PanelID]string{layout.PanelTitle: "Hero"}
	titled, err := testCompositor().Compose(req)
	if err != nil {
		t.Fatalf("Compose error: %v", err)
	}
	if bytes.Equal(plain.Pix, titled.Pix) {
		t.Fatal("title text left the card unchanged")
	}
}

func TestComposeCropAnchorSelectsRegion(t *testing.T) {
	// Portrait-square frame is 688x390; an 400x800 source scales to width
	// 688 (height 1376), so the anchor picks which 390 rows survive.
	src := pngBytes(t, splitVertical(400, 800))

	compose := func(anchor string) *image.NRGBA {
		req, err := BuildRequest(domain.CardParams{Variant: "portrait-square", Anchor: anchor})
		if err != nil {
			t.Fatalf("BuildRequest: %v", err)
		}
		req.Background = pngBytes(t, solid(1200, 1200, color.NRGBA{R: 20, G: 20, B: 20, A: 255}))
		req.Illustration = src
		out, err := testCompositor().Compose(req)
		if err != nil {
			t.Fatalf("Compose error: %v", err)
		}
		return out
	}

	// Frame rect (40,40,688,390); sample its center.
	if px := compose("").NRGBAAt(384, 235); px.R < 150 {
		t.Fatalf("portrait default anchor center = %+v, want top region red", px)
	}
	if px := compose("bottom").NRGBAAt(384, 235); px.B < 150 {
		t.Fatalf("bottom anchor center = %+v, want bottom region blue", px)
	}
}

func TestComposeScalePresetShrinksFrame(t *testing.T) {
	req := validRequest(t)
	req.Scale = layout.ScaleMini

	out, err := testCompositor().Compose(req)
	if err != nil {
		t.Fatalf("Compose error: %v", err)
	}
	if b := out.Bounds(); b.Dx() != 1024 || b.Dy() != 768 {
		t.Fatalf("canvas = %v, want unchanged 1024x768", b)
	}
	// The catalogue frame origin (40,40) falls outside the mini frame, so
	// the background shows there.
	if px := out.NRGBAAt(45, 45); px.B < 150 {
		t.Fatalf("pixel at catalogue frame origin = %+v, want background blue", px)
	}
	// Mini frame still holds the illustration at the canvas center-left.
	if px := out.NRGBAAt(300, 384); px.G < 150 {
		t.Fatalf("mini frame interior = %+v, want green", px)
	}
}

func TestComposeInvalidImageData(t *testing.T) {
	tests := []struct {
		name  string
		mut   func(*Request)
		stage string
	}{
		{"empty background", func(r *Request) { r.Background = nil }, "background"},
		{"corrupt background", func(r *Request) { r.Background = []byte("not a png") }, "background"},
		{"empty illustration", func(r *Request) { r.Illustration = []byte{} }, "illustration"},
		{"corrupt illustration", func(r *Request) { r.Illustration = []byte{0x89, 0x50} }, "illustration"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest(t)
			tt.mut(&req)
			_, err := testCompositor().Compose(req)
			if !errors.Is(err, domain.ErrInvalidImageData) {
				t.Fatalf("Compose error = %v, want ErrInvalidImageData", err)
			}
			if !bytes.Contains([]byte(err.Error()), []byte(tt.stage)) {
				t.Fatalf("error %q does not name stage %q", err, tt.stage)
			}
		})
	}
}

func TestComposeUnknownVariant(t *testing.T) {
	req := validRequest(t)
	req.Variant = "hexagonal"
	if _, err := testCompositor().Compose(req); !errors.Is(err, domain.ErrUnknownVariant) {
		t.Fatalf("Compose error = %v, want ErrUnknownVariant", err)
	}
}

func TestComposeDeterministic(t *testing.T) {
	req := validRequest(t)
	req.Panels = map[layout.PanelID]string{layout.PanelTitle: "Hero", layout.PanelContent1: "Slash"}

	a, err := testCompositor().Compose(req)
	if err != nil {
		t.Fatalf("Compose error: %v", err)
	}
	b, err := testCompositor().Compose(req)
	if err != nil {
		t.Fatalf("Compose error: %v", err)
	}
	if !bytes.Equal(a.Pix, b.Pix) {
		t.Fatal("identical requests rendered different cards")
	}
}

func TestEncodePNGRoundTrip(t *testing.T) {
	img := solid(32, 16, color.NRGBA{R: 120, G: 30, B: 200, A: 255})
	data, err := EncodePNG(img)
	if err != nil {
		t.Fatalf("EncodePNG error: %v", err)
	}
	decoded, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := decoded.Bounds(); b.Dx() != 32 || b.Dy() != 16 {
		t.Fatalf("decoded bounds = %v, want 32x16", b)
	}
}

func TestBuildRequestDefaults(t *testing.T) {
	req, err := BuildRequest(domain.CardParams{})
	if err != nil {
		t.Fatalf("BuildRequest error: %v", err)
	}
	if req.Variant != layout.VariantLandscapeSquare {
		t.Fatalf("variant = %q, want landscape-square", req.Variant)
	}
	if req.Scale != layout.ScaleStandard || req.Color != style.ColorObsidian {
		t.Fatalf("defaults = %+v", req)
	}
	if req.Texture != style.TextureNone || req.Blur != style.BlurMedium || req.Glow != style.GlowNone {
		t.Fatalf("defaults = %+v", req)
	}
	if req.Border != style.BorderGold || req.Frame != frame.PresetNone {
		t.Fatalf("defaults = %+v", req)
	}
	if req.Anchor != "" {
		t.Fatalf("anchor = %q, want empty for orientation default", req.Anchor)
	}
}

func TestBuildRequestLegacyMode(t *testing.T) {
	req, err := BuildRequest(domain.CardParams{Mode: "portrait"})
	if err != nil {
		t.Fatalf("BuildRequest error: %v", err)
	}
	if req.Variant != layout.VariantPortraitSquare {
		t.Fatalf("variant = %q, want portrait-square", req.Variant)
	}

	// An explicit variant wins over the legacy mode.
	req, err = BuildRequest(domain.CardParams{Mode: "portrait", Variant: "landscape-flat"})
	if err != nil {
		t.Fatalf("BuildRequest error: %v", err)
	}
	if req.Variant != layout.VariantLandscapeFlat {
		t.Fatalf("variant = %q, want landscape-flat", req.Variant)
	}
}

func TestBuildRequestPanels(t *testing.T) {
	req, err := BuildRequest(domain.CardParams{Panels: map[string]string{"title": "Hero", "content2": "Fire"}})
	if err != nil {
		t.Fatalf("BuildRequest error: %v", err)
	}
	if req.Panels[layout.PanelTitle] != "Hero" || req.Panels[layout.PanelContent2] != "Fire" {
		t.Fatalf("panels = %v", req.Panels)
	}

	if _, err := BuildRequest(domain.CardParams{Panels: map[string]string{"footer": "x"}}); !errors.Is(err, domain.ErrUnknownPreset) {
		t.Fatalf("unknown panel error = %v, want ErrUnknownPreset", err)
	}
}

func TestBuildRequestRejectsUnknownTags(t *testing.T) {
	tests := []struct {
		name   string
		params domain.CardParams
		want   error
	}{
		{"variant", domain.CardParams{Variant: "circle"}, domain.ErrUnknownVariant},
		{"mode", domain.CardParams{Mode: "diagonal"}, domain.ErrUnknownVariant},
		{"scale", domain.CardParams{Scale: "huge"}, domain.ErrUnknownPreset},
		{"anchor", domain.CardParams{Anchor: "left"}, domain.ErrUnknownPreset},
		{"color", domain.CardParams{Color: "chartreuse"}, domain.ErrUnknownPreset},
		{"texture", domain.CardParams{Texture: "burlap"}, domain.ErrUnknownPreset},
		{"blur", domain.CardParams{Blur: "extreme"}, domain.ErrUnknownPreset},
		{"glow", domain.CardParams{Glow: "blinding"}, domain.ErrUnknownPreset},
		{"border", domain.CardParams{Border: "platinum"}, domain.ErrUnknownPreset},
		{"frame", domain.CardParams{Frame: "rococo"}, domain.ErrUnknownPreset},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := BuildRequest(tt.params); !errors.Is(err, tt.want) {
				t.Fatalf("BuildRequest error = %v, want %v", err, tt.want)
			}
		})
	}
}
