package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"cardsmith/internal/domain"
)

// AssetDownload streams a stored card PNG.
func (a *App) AssetDownload(w http.ResponseWriter, r *http.Request) {
	assetID := chi.URLParam(r, "id")
	asset, err := a.Assets.GetByID(r.Context(), assetID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			a.error(w, http.StatusNotFound, "not_found", "asset not found")
			return
		}
		a.Logger.Error().Err(err).Str("asset_id", assetID).Msg("load asset failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to load asset")
		return
	}
	data, err := a.Store.Read(r.Context(), asset.StorageKey)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			a.error(w, http.StatusNotFound, "not_found", "stored file missing")
			return
		}
		a.Logger.Error().Err(err).Str("asset_id", assetID).Msg("read stored asset failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to read asset")
		return
	}

	filename := fmt.Sprintf("card-%s.%s", asset.JobID, asset.Format)
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	if asset.Checksum != "" {
		w.Header().Set("ETag", `"`+asset.Checksum+`"`)
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
