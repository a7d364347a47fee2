// Package assetcache memoizes decoded frame tile rasters keyed by their
// cleaned relative path, so repeated frame renders never re-read or
// re-rasterize the same file. PNG tiles decode directly; SVG tiles are
// rasterized once at their viewbox size and resized on demand.
package assetcache

import (
	"fmt"
	"image"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	gocache "github.com/patrickmn/go-cache"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"cardsmith/internal/domain"
)

// fallbackTileSize is used when an SVG carries no usable viewbox.
const fallbackTileSize = 64

// Cache holds decoded tiles for one asset root. Reads are lock-free through
// go-cache; racing misses may decode the same tile twice and the last write
// wins, which is harmless for immutable assets.
type Cache struct {
	root  string
	tiles *gocache.Cache
}

// New returns a cache rooted at the given asset directory. Entries never
// expire; Clear drops them all.
func New(root string) *Cache {
	return &Cache{
		root:  root,
		tiles: gocache.New(gocache.NoExpiration, 0),
	}
}

// Tile returns the decoded raster for the tile at the relative path. The
// path is cleaned and must stay under the asset root; a missing file maps to
// domain.ErrAssetNotFound.
func (c *Cache) Tile(rel string) (*image.NRGBA, error) {
	key, err := cleanKey(rel)
	if err != nil {
		return nil, err
	}
	if v, ok := c.tiles.Get(key); ok {
		return v.(*image.NRGBA), nil
	}
	img, err := c.decode(key)
	if err != nil {
		return nil, err
	}
	c.tiles.Set(key, img, gocache.NoExpiration)
	return img, nil
}

// TileSized returns a copy of the tile resized to w x h. The cached original
// is never mutated.
func (c *Cache) TileSized(rel string, w, h int) (*image.NRGBA, error) {
	img, err := c.Tile(rel)
	if err != nil {
		return nil, err
	}
	if b := img.Bounds(); b.Dx() == w && b.Dy() == h {
		return imaging.Clone(img), nil
	}
	return imaging.Resize(img, w, h, imaging.Lanczos), nil
}

// Clear drops every cached tile.
func (c *Cache) Clear() {
	c.tiles.Flush()
}

func (c *Cache) decode(key string) (*image.NRGBA, error) {
	f, err := os.Open(filepath.Join(c.root, filepath.FromSlash(key)))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("tile %s: %w", key, domain.ErrAssetNotFound)
		}
		return nil, fmt.Errorf("tile %s: %w", key, err)
	}
	defer f.Close()

	switch strings.ToLower(path.Ext(key)) {
	case ".svg":
		img, err := rasterizeSVG(f)
		if err != nil {
			return nil, fmt.Errorf("tile %s: %v: %w", key, err, domain.ErrInvalidImageData)
		}
		return img, nil
	case ".png":
		img, err := imaging.Decode(f)
		if err != nil {
			return nil, fmt.Errorf("tile %s: %v: %w", key, err, domain.ErrInvalidImageData)
		}
		return imaging.Clone(img), nil
	default:
		return nil, fmt.Errorf("tile %s: unsupported format %q: %w", key, path.Ext(key), domain.ErrInvalidImageData)
	}
}

// rasterizeSVG renders the icon at its viewbox size.
func rasterizeSVG(r io.Reader) (*image.NRGBA, error) {
	icon, err := oksvg.ReadIconStream(r)
	if err != nil {
		return nil, err
	}
	w := int(icon.ViewBox.W + 0.5)
	h := int(icon.ViewBox.H + 0.5)
	if w <= 0 || h <= 0 {
		w, h = fallbackTileSize, fallbackTileSize
	}
	icon.SetTarget(0, 0, float64(w), float64(h))
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(w, h, scanner), 1.0)
	return imaging.Clone(img), nil
}

// cleanKey normalizes a relative tile path and rejects root escapes.
func cleanKey(rel string) (string, error) {
	rel = strings.TrimSpace(strings.ReplaceAll(rel, "\\", "/"))
	if rel == "" {
		return "", fmt.Errorf("tile path is required: %w", domain.ErrAssetNotFound)
	}
	cleaned := path.Clean(strings.TrimLeft(rel, "/"))
	if cleaned == "." || cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return "", fmt.Errorf("tile path %q escapes the asset root: %w", rel, domain.ErrAssetNotFound)
	}
	return cleaned, nil
}
