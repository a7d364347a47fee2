package imagegen

import (
	"fmt"
	"strings"
)

// DefaultNegativePrompt suppresses artifacts the compositor draws itself.
const DefaultNegativePrompt = "text, watermark, signature, frame, border, low quality"

// BuildBackgroundPrompt assembles the prompt for the full-bleed backdrop
// layer. The palette hint keeps the backdrop from fighting the panel color.
func BuildBackgroundPrompt(subject, palette string) string {
	parts := []string{}
	if subject = strings.TrimSpace(subject); subject != "" {
		parts = append(parts, subject+".")
	} else {
		parts = append(parts, "Atmospheric trading card backdrop, soft depth of field.")
	}
	if palette = strings.TrimSpace(palette); palette != "" {
		parts = append(parts, "Palette leaning "+palette+".")
	}
	parts = append(parts, "Painterly fantasy illustration, rich lighting.")
	parts = append(parts, "No text, no watermark.")
	return strings.Join(parts, " ")
}

// BuildIllustrationPrompt assembles the prompt for the framed subject
// illustration. The card title names the subject when no explicit prompt is
// given.
func BuildIllustrationPrompt(subject, title string) string {
	parts := []string{}
	subject = strings.TrimSpace(subject)
	title = strings.TrimSpace(title)
	switch {
	case subject != "" && title != "":
		parts = append(parts, fmt.Sprintf("%s, depicting \"%s\".", subject, title))
	case subject != "":
		parts = append(parts, subject+".")
	case title != "":
		parts = append(parts, fmt.Sprintf("Character portrait of \"%s\".", title))
	default:
		parts = append(parts, "Heroic character portrait.")
	}
	parts = append(parts, "Single centered subject, clean silhouette, dramatic rim light.")
	parts = append(parts, "No text, no watermark, no border.")
	return strings.Join(parts, " ")
}
