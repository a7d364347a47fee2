package render

import (
	"strings"
	"testing"

	"cardsmith/internal/layout"
)

func TestWrapLines(t *testing.T) {
	// size 10 at width factor 0.8 gives 8px per rune; availW 80 fits 10 runes.
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"single short line", "abcd", []string{"abcd"}},
		{"greedy word fill", "abcd efgh ijkl", []string{"abcd efgh", "ijkl"}},
		{"cjk hard break", strings.Repeat("勇", 25), []string{
			strings.Repeat("勇", 10), strings.Repeat("勇", 10), strings.Repeat("勇", 5),
		}},
		{"newline forces break", "one\ntwo", []string{"one", "two"}},
		{"blank line preserved", "one\n\ntwo", []string{"one", "", "two"}},
		{"oversized token split", "abcdefghijklmnop x", []string{"abcdefghij", "klmnop x"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := wrapLines(tt.text, 10, 80)
			if len(got) != len(tt.want) {
				t.Fatalf("wrapLines = %q, want %q", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("line[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestFitTextTitleKeepsBaseSize(t *testing.T) {
	lines, size := fitText("勇者", layout.PanelKindTitle, 468, 76)
	if size != titleBaseSize {
		t.Fatalf("size = %d, want %d", size, titleBaseSize)
	}
	if len(lines) != 1 || lines[0] != "勇者" {
		t.Fatalf("lines = %q, want single line", lines)
	}
}

func TestFitTextShrinksUntilBlockFits(t *testing.T) {
	// 60 CJK runes in a content panel of 468x83: 26, 24 and 22 all produce a
	// three-line block that overflows; 20 is the first fit.
	text := strings.Repeat("勇", 60)
	lines, size := fitText(text, layout.PanelKindContent, 468, 83)
	if size != 20 {
		t.Fatalf("size = %d, want 20", size)
	}
	if len(lines) != 3 {
		t.Fatalf("len(lines) = %d, want 3", len(lines))
	}
	if got := blockHeight(len(lines), size); got > 83 {
		t.Fatalf("block height %.1f overflows 83", got)
	}
}

func TestFitTextStopsAtFloor(t *testing.T) {
	text := strings.Repeat("勇", 2000)
	_, size := fitText(text, layout.PanelKindContent, 468, 83)
	if size != contentMinSize {
		t.Fatalf("size = %d, want floor %d", size, contentMinSize)
	}
	_, size = fitText(text, layout.PanelKindTitle, 468, 76)
	if size != titleMinSize {
		t.Fatalf("title size = %d, want floor %d", size, titleMinSize)
	}
}

func TestTextEmptyProducesNoLayer(t *testing.T) {
	for _, text := range []string{"", "   ", "\n\t"} {
		img, err := Text(TextSpec{Width: 504, Height: 100, Text: text, Kind: layout.PanelKindTitle})
		if err != nil {
			t.Fatalf("Text(%q) error: %v", text, err)
		}
		if img != nil {
			t.Fatalf("Text(%q) = %v, want nil layer", text, img.Bounds())
		}
	}
}

func TestTextRendersGlyphs(t *testing.T) {
	img, err := Text(TextSpec{Width: 504, Height: 100, Text: "HERO", Kind: layout.PanelKindTitle})
	if err != nil {
		t.Fatalf("Text error: %v", err)
	}
	if img == nil {
		t.Fatal("Text = nil, want rendered layer")
	}
	if got := img.Bounds(); got.Dx() != 504 || got.Dy() != 100 {
		t.Fatalf("bounds = %v, want 504x100", got)
	}
	opaque := 0
	for y := 0; y < 100; y++ {
		for x := 0; x < 504; x++ {
			if img.NRGBAAt(x, y).A > 0 {
				opaque++
			}
		}
	}
	if opaque == 0 {
		t.Fatal("rendered layer carries no visible glyph pixels")
	}
}
