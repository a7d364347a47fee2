package render

import (
	"image"
	"image/color"
	"strings"

	"github.com/fogleman/gg"

	"cardsmith/internal/layout"
)

// Type sizing per panel kind. Sizes shrink in fixed steps until the wrapped
// block fits the panel or the floor is reached; at the floor the text renders
// regardless of overflow.
const (
	titleBaseSize   = 44
	titleMinSize    = 24
	contentBaseSize = 26
	contentMinSize  = 14
	shrinkStep      = 2

	lineHeightFactor    = 1.3
	avgGlyphWidthFactor = 0.8

	textPadV     = 12
	textPadH     = 18
	shadowOffset = 2
)

var (
	textColor   = color.NRGBA{R: 245, G: 245, B: 240, A: 255}
	shadowColor = color.NRGBA{R: 0, G: 0, B: 0, A: 140}
)

// TextSpec describes one panel's glyph layer.
type TextSpec struct {
	Width  int
	Height int
	Text   string
	Kind   layout.PanelKind
}

// Text renders the wrapped, auto-shrunk, center-aligned glyph block with a
// uniform drop shadow. Empty or whitespace-only text produces no layer.
func Text(spec TextSpec) (*image.NRGBA, error) {
	text := strings.TrimSpace(spec.Text)
	if text == "" {
		return nil, nil
	}

	availW := spec.Width - 2*textPadH
	availH := spec.Height - 2*textPadV
	if availW < 1 {
		availW = 1
	}
	if availH < 1 {
		availH = 1
	}
	lines, size := fitText(text, spec.Kind, availW, availH)

	face, err := newFace(spec.Kind == layout.PanelKindTitle, size)
	if err != nil {
		return nil, err
	}

	dc := gg.NewContext(spec.Width, spec.Height)
	dc.SetFontFace(face)
	lh := lineHeight(size)
	cx := float64(spec.Width) / 2
	y := (float64(spec.Height)-blockHeight(len(lines), size))/2 + lh/2
	for _, line := range lines {
		if line != "" {
			dc.SetColor(shadowColor)
			dc.DrawStringAnchored(line, cx+shadowOffset, y+shadowOffset, 0.5, 0.5)
			dc.SetColor(textColor)
			dc.DrawStringAnchored(line, cx, y, 0.5, 0.5)
		}
		y += lh
	}
	return toNRGBA(dc.Image()), nil
}

// fitText wraps the text at the base size for the panel kind and shrinks in
// fixed steps while the block overflows the available height, stopping at
// the kind's floor.
func fitText(text string, kind layout.PanelKind, availW, availH int) ([]string, int) {
	base, floor := contentBaseSize, contentMinSize
	if kind == layout.PanelKindTitle {
		base, floor = titleBaseSize, titleMinSize
	}
	size := base
	lines := wrapLines(text, size, availW)
	for size > floor && blockHeight(len(lines), size) > float64(availH) {
		size -= shrinkStep
		if size < floor {
			size = floor
		}
		lines = wrapLines(text, size, availW)
	}
	return lines, size
}

func lineHeight(size int) float64 {
	return float64(size) * lineHeightFactor
}

func blockHeight(lineCount, size int) float64 {
	return float64(lineCount) * lineHeight(size)
}

// wrapLines greedily wraps by the uniform average glyph width heuristic,
// fontSize x 0.8 per rune. The same estimate applies to every script; real
// glyph metrics are deliberately not consulted.
func wrapLines(text string, size, availW int) []string {
	maxRunes := int(float64(availW) / (float64(size) * avgGlyphWidthFactor))
	if maxRunes < 1 {
		maxRunes = 1
	}
	var lines []string
	for _, para := range strings.Split(text, "\n") {
		lines = append(lines, wrapPara(para, maxRunes)...)
	}
	return lines
}

func wrapPara(para string, maxRunes int) []string {
	var lines []string
	var cur []rune
	for _, word := range strings.Fields(para) {
		w := []rune(word)
		for len(w) > maxRunes {
			if len(cur) > 0 {
				lines = append(lines, string(cur))
				cur = nil
			}
			lines = append(lines, string(w[:maxRunes]))
			w = w[maxRunes:]
		}
		switch {
		case len(w) == 0:
		case len(cur) == 0:
			cur = w
		case len(cur)+1+len(w) <= maxRunes:
			cur = append(cur, ' ')
			cur = append(cur, w...)
		default:
			lines = append(lines, string(cur))
			cur = w
		}
	}
	if len(cur) > 0 {
		lines = append(lines, string(cur))
	}
	if len(lines) == 0 {
		lines = []string{""}
	}
	return lines
}
