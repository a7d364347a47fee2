package handlers

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"cardsmith/internal/compositor"
	"cardsmith/internal/domain"
	"cardsmith/internal/frame"
	"cardsmith/internal/layout"
	"cardsmith/pkg/zip"
)

// CardsCreate validates the card params and enqueues an asynchronous render
// job. Generation and compositing happen in the worker.
func (a *App) CardsCreate(w http.ResponseWriter, r *http.Request) {
	var params domain.CardParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	params.Normalize()
	if _, err := compositor.BuildRequest(params); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}
	paramsJSON, err := json.Marshal(params)
	if err != nil {
		a.error(w, http.StatusInternalServerError, "internal", "failed to encode params")
		return
	}

	job := &domain.CardJob{
		ID:         uuid.NewString(),
		Status:     domain.JobStatusQueued,
		ParamsJSON: paramsJSON,
	}
	if err := a.Jobs.Create(r.Context(), job); err != nil {
		a.Logger.Error().Err(err).Msg("enqueue card job failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to queue job")
		return
	}
	a.json(w, http.StatusAccepted, map[string]any{"job_id": job.ID, "status": job.Status})
}

// CardStatus reports the job lifecycle state and any finished assets.
func (a *App) CardStatus(w http.ResponseWriter, r *http.Request) {
	jobID := chi.URLParam(r, "id")
	job, err := a.Jobs.GetByID(r.Context(), jobID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			a.error(w, http.StatusNotFound, "not_found", "job not found")
			return
		}
		a.Logger.Error().Err(err).Str("job_id", jobID).Msg("load job failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to load job")
		return
	}
	assets, err := a.Assets.ListByJobID(r.Context(), jobID)
	if err != nil {
		a.Logger.Error().Err(err).Str("job_id", jobID).Msg("load assets failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to load assets")
		return
	}

	items := make([]map[string]any, 0, len(assets))
	for _, asset := range assets {
		items = append(items, map[string]any{
			"id":         asset.ID,
			"url":        a.assetURL(asset.StorageKey),
			"download":   "/v1/assets/" + asset.ID + "/download",
			"format":     asset.Format,
			"width":      asset.Width,
			"height":     asset.Height,
			"bytes":      asset.Bytes,
			"checksum":   asset.Checksum,
			"created_at": asset.CreatedAt,
		})
	}
	resp := map[string]any{
		"id":         job.ID,
		"status":     job.Status,
		"params":     json.RawMessage(job.ParamsJSON),
		"created_at": job.CreatedAt,
		"updated_at": job.UpdatedAt,
		"assets":     items,
	}
	if job.ErrorMessage != "" {
		resp["error_message"] = job.ErrorMessage
	}
	a.json(w, http.StatusOK, resp)
}

type cardPreviewRequest struct {
	domain.CardParams
	Background   string `json:"background_b64"`
	Illustration string `json:"illustration_b64"`
}

// CardsPreview composes a card synchronously from caller-supplied layers and
// streams the PNG back. No job row, no generation backend.
func (a *App) CardsPreview(w http.ResponseWriter, r *http.Request) {
	var req cardPreviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	composeReq, err := compositor.BuildRequest(req.CardParams)
	if err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}
	if composeReq.Background, err = base64.StdEncoding.DecodeString(req.Background); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "background_b64 is not valid base64")
		return
	}
	if composeReq.Illustration, err = base64.StdEncoding.DecodeString(req.Illustration); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "illustration_b64 is not valid base64")
		return
	}

	card, err := a.Composer.Compose(composeReq)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidImageData) {
			a.error(w, http.StatusBadRequest, "bad_request", err.Error())
			return
		}
		a.Logger.Error().Err(err).Msg("preview compose failed")
		a.error(w, http.StatusInternalServerError, "internal", "compose failed")
		return
	}
	if composeReq.Frame != frame.PresetNone {
		v, err := layout.Resolve(composeReq.Variant)
		if err != nil {
			a.error(w, http.StatusBadRequest, "bad_request", err.Error())
			return
		}
		card, err = a.Frames.Render(card, composeReq.Frame, v.Orientation(), frame.Options{})
		if err != nil {
			a.Logger.Error().Err(err).Str("frame", string(composeReq.Frame)).Msg("preview frame failed")
			a.error(w, http.StatusInternalServerError, "internal", "frame assembly failed")
			return
		}
	}

	data, err := compositor.EncodePNG(card)
	if err != nil {
		a.Logger.Error().Err(err).Msg("preview encode failed")
		a.error(w, http.StatusInternalServerError, "internal", "encode failed")
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// CardArchive bundles the finished card PNGs with a metadata JSON into one
// zip download.
func (a *App) CardArchive(w http.ResponseWriter, r *http.Request) {
	jobID := chi.URLParam(r, "id")
	job, err := a.Jobs.GetByID(r.Context(), jobID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			a.error(w, http.StatusNotFound, "not_found", "job not found")
			return
		}
		a.Logger.Error().Err(err).Str("job_id", jobID).Msg("load job failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to load job")
		return
	}
	assets, err := a.Assets.ListByJobID(r.Context(), jobID)
	if err != nil {
		a.Logger.Error().Err(err).Str("job_id", jobID).Msg("load assets failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to load assets")
		return
	}
	if len(assets) == 0 {
		a.error(w, http.StatusNotFound, "not_found", "no assets for job")
		return
	}

	entries := make([]zip.Asset, 0, len(assets)+1)
	metaAssets := make([]map[string]any, 0, len(assets))
	for i, asset := range assets {
		data, err := a.Store.Read(r.Context(), asset.StorageKey)
		if err != nil {
			a.Logger.Error().Err(err).Str("asset_id", asset.ID).Msg("read stored asset failed")
			a.error(w, http.StatusInternalServerError, "internal", "failed to read asset")
			return
		}
		name := "card.png"
		if len(assets) > 1 {
			name = fmt.Sprintf("card-%d.png", i+1)
		}
		entries = append(entries, zip.Asset{Filename: name, MIME: "image/png", Data: data})
		metaAssets = append(metaAssets, map[string]any{
			"id":         asset.ID,
			"filename":   name,
			"format":     asset.Format,
			"width":      asset.Width,
			"height":     asset.Height,
			"bytes":      asset.Bytes,
			"checksum":   asset.Checksum,
			"created_at": asset.CreatedAt,
		})
	}
	meta := map[string]any{
		"job_id":     job.ID,
		"status":     job.Status,
		"params":     json.RawMessage(job.ParamsJSON),
		"created_at": job.CreatedAt,
		"updated_at": job.UpdatedAt,
		"assets":     metaAssets,
	}
	metaBytes, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		a.error(w, http.StatusInternalServerError, "internal", "failed to encode metadata")
		return
	}
	entries = append(entries, zip.Asset{Filename: "card.json", MIME: "application/json", Data: metaBytes})

	payload, err := zip.ArchiveAssets(entries)
	if err != nil {
		a.Logger.Error().Err(err).Str("job_id", jobID).Msg("build archive failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to build archive")
		return
	}
	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "card-"+job.ID+".zip"))
	w.Header().Set("Content-Length", strconv.Itoa(len(payload)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(payload)
}
