// Package handlers implements the HTTP surface: card job enqueue and status,
// synchronous preview, preset discovery, asset download and the card archive.
package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"cardsmith/internal/compositor"
	"cardsmith/internal/domain"
	"cardsmith/internal/frame"
	"cardsmith/internal/storage"
)

// App bundles the handler dependencies.
type App struct {
	Logger   zerolog.Logger
	Jobs     domain.JobRepository
	Assets   domain.AssetRepository
	Store    *storage.FileStore
	Composer *compositor.Compositor
	Frames   *frame.Renderer
	BaseURL  string
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, status int, code, message string) {
	a.json(w, status, map[string]any{
		"error": map[string]string{"code": code, "message": message},
	})
}

// assetURL resolves a storage key to the public static URL.
func (a *App) assetURL(storageKey string) string {
	base := strings.TrimRight(a.BaseURL, "/")
	return base + "/" + strings.TrimLeft(storageKey, "/")
}
