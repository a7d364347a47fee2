// Package httpapi assembles the chi router for the card service.
package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"cardsmith/internal/http/handlers"
	"cardsmith/internal/infra"
	appmw "cardsmith/internal/middleware"
)

// NewRouter wires middleware and routes around the handler app. The static
// mount serves stored cards directly in development; production fronts the
// storage path with a CDN.
func NewRouter(app *handlers.App, cfg *infra.Config) http.Handler {
	r := chi.NewRouter()

	r.Use(
		appmw.RequestID,
		chimw.RealIP,
		chimw.Recoverer,
		appmw.Logger(app.Logger),
		appmw.CORS(cfg.CORSOrigins),
		appmw.RateLimit(cfg.RateLimitPerMin, time.Minute),
	)

	r.Get("/v1/healthz", app.Health)
	r.Get("/v1/presets", app.Presets)

	r.Route("/v1/cards", func(r chi.Router) {
		r.Post("/", app.CardsCreate)
		r.Post("/preview", app.CardsPreview)
		r.Get("/{id}", app.CardStatus)
		r.Get("/{id}/archive", app.CardArchive)
	})

	r.Get("/v1/assets/{id}/download", app.AssetDownload)

	if app.Store != nil {
		fs := http.StripPrefix("/static/", http.FileServer(http.Dir(app.Store.BasePath())))
		r.Get("/static/*", fs.ServeHTTP)
	}

	return r
}
