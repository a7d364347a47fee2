package imagegen

import (
	"strings"
	"testing"
)

func TestBuildBackgroundPrompt(t *testing.T) {
	got := BuildBackgroundPrompt("ruined cathedral under storm clouds", "crimson")
	if !strings.HasPrefix(got, "ruined cathedral under storm clouds.") {
		t.Fatalf("prompt = %q", got)
	}
	if !strings.Contains(got, "Palette leaning crimson.") {
		t.Fatalf("prompt missing palette hint: %q", got)
	}
	if !strings.Contains(got, "No text, no watermark.") {
		t.Fatalf("prompt missing suppression clause: %q", got)
	}

	fallback := BuildBackgroundPrompt("  ", "")
	if !strings.HasPrefix(fallback, "Atmospheric trading card backdrop") {
		t.Fatalf("fallback prompt = %q", fallback)
	}
	if strings.Contains(fallback, "Palette leaning") {
		t.Fatalf("fallback prompt carries empty palette: %q", fallback)
	}
}

func TestBuildIllustrationPrompt(t *testing.T) {
	tests := []struct {
		name    string
		subject string
		title   string
		prefix  string
	}{
		{"subject and title", "armored knight", "勇者", `armored knight, depicting "勇者".`},
		{"subject only", "armored knight", "", "armored knight."},
		{"title only", "", "勇者", `Character portrait of "勇者".`},
		{"neither", "", "", "Heroic character portrait."},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := BuildIllustrationPrompt(tc.subject, tc.title)
			if !strings.HasPrefix(got, tc.prefix) {
				t.Fatalf("prompt = %q, want prefix %q", got, tc.prefix)
			}
			if !strings.Contains(got, "no border") {
				t.Fatalf("prompt missing border suppression: %q", got)
			}
		})
	}
}
