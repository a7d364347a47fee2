package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"cardsmith/internal/assetcache"
	"cardsmith/internal/compositor"
	"cardsmith/internal/domain"
	"cardsmith/internal/frame"
	"cardsmith/internal/infra"
	"cardsmith/internal/layout"
)

// panelFlags collects repeatable -panel id=text pairs.
type panelFlags map[string]string

func (p panelFlags) String() string {
	pairs := make([]string, 0, len(p))
	for k, v := range p {
		pairs = append(pairs, k+"="+v)
	}
	return strings.Join(pairs, ",")
}

func (p panelFlags) Set(v string) error {
	key, text, ok := strings.Cut(v, "=")
	if !ok || strings.TrimSpace(key) == "" {
		return fmt.Errorf("expected id=text, got %q", v)
	}
	p[strings.TrimSpace(key)] = text
	return nil
}

func main() {
	var (
		backgroundPath   string
		illustrationPath string
		outPath          string
		assetRoot        string
		params           domain.CardParams
		title            string
	)
	panels := panelFlags{}

	flag.StringVar(&backgroundPath, "background", "", "Path to the background image (required)")
	flag.StringVar(&illustrationPath, "illustration", "", "Path to the illustration image (required)")
	flag.StringVar(&outPath, "out", "card.png", "Output PNG path")
	flag.StringVar(&assetRoot, "assets", "./assets", "Root directory for frame tile assets")
	flag.StringVar(&params.Variant, "variant", "", "Layout variant (default "+domain.DefaultVariant+")")
	flag.StringVar(&params.Scale, "scale", "", "Scale preset (default "+domain.DefaultScale+")")
	flag.StringVar(&params.Anchor, "anchor", "", "Crop anchor (default depends on orientation)")
	flag.StringVar(&params.Color, "color", "", "Color preset (default "+domain.DefaultColor+")")
	flag.StringVar(&params.Texture, "texture", "", "Texture type (default "+domain.DefaultTexture+")")
	flag.StringVar(&params.Blur, "blur", "", "Blur intensity (default "+domain.DefaultBlur+")")
	flag.StringVar(&params.Glow, "glow", "", "Glow intensity (default "+domain.DefaultGlow+")")
	flag.StringVar(&params.Border, "border", "", "Border preset (default "+domain.DefaultBorder+")")
	flag.StringVar(&params.Frame, "frame", "", "Ornamental frame preset (default "+domain.DefaultFrame+")")
	flag.StringVar(&title, "title", "", "Title panel text")
	flag.Var(panels, "panel", "Panel text as id=text (repeatable, ids: title content1..content4)")
	flag.Parse()

	if backgroundPath == "" || illustrationPath == "" {
		fmt.Fprintln(os.Stderr, "-background and -illustration are required")
		os.Exit(1)
	}
	if title != "" {
		panels["title"] = title
	}
	if len(panels) > 0 {
		params.Panels = panels
	}

	req, err := compositor.BuildRequest(params)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid params: %v\n", err)
		os.Exit(1)
	}
	if req.Background, err = os.ReadFile(backgroundPath); err != nil {
		fmt.Fprintf(os.Stderr, "read background: %v\n", err)
		os.Exit(1)
	}
	if req.Illustration, err = os.ReadFile(illustrationPath); err != nil {
		fmt.Fprintf(os.Stderr, "read illustration: %v\n", err)
		os.Exit(1)
	}

	logger := infra.NewLogger("cli").With().Str("cmd", "cardgen").Logger()
	card, err := compositor.New(logger).Compose(req)
	if err != nil {
		fmt.Fprintf(os.Stderr, "compose failed: %v\n", err)
		os.Exit(1)
	}
	if req.Frame != frame.PresetNone {
		v, err := layout.Resolve(req.Variant)
		if err != nil {
			fmt.Fprintf(os.Stderr, "resolve variant: %v\n", err)
			os.Exit(1)
		}
		renderer := frame.NewRenderer(assetcache.New(assetRoot))
		if card, err = renderer.Render(card, req.Frame, v.Orientation(), frame.Options{}); err != nil {
			fmt.Fprintf(os.Stderr, "frame assembly failed: %v\n", err)
			os.Exit(1)
		}
	}

	data, err := compositor.EncodePNG(card)
	if err != nil {
		fmt.Fprintf(os.Stderr, "encode failed: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "write output: %v\n", err)
		os.Exit(1)
	}

	b := card.Bounds()
	fmt.Printf("card written to %s (%dx%d)\n", outPath, b.Dx(), b.Dy())
}
