package main

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"cardsmith/internal/adapter/repo"
	"cardsmith/internal/assetcache"
	"cardsmith/internal/compositor"
	"cardsmith/internal/domain"
	"cardsmith/internal/frame"
	"cardsmith/internal/imagegen"
	"cardsmith/internal/infra"
	"cardsmith/internal/infra/credentials"
	"cardsmith/internal/layout"
	"cardsmith/internal/storage"
)

type jobWorker struct {
	ctx          context.Context
	jobs         domain.JobRepository
	assets       domain.AssetRepository
	store        *storage.FileStore
	generator    imagegen.Generator
	composer     *compositor.Compositor
	frames       *frame.Renderer
	logger       infra.Logger
	pollInterval time.Duration
}

func main() {
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := infra.NewDBPool(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("worker: db connection failed")
	}
	defer pool.Close()

	runner := infra.NewSQLRunner(pool, logger)

	storagePath := cfg.StoragePath
	if !filepath.IsAbs(storagePath) {
		if abs, err := filepath.Abs(storagePath); err == nil {
			storagePath = abs
		}
	}
	fileStore, err := storage.NewFileStore(storagePath)
	if err != nil {
		logger.Fatal().Err(err).Msg("worker: failed to configure storage")
	}

	apiKey := strings.TrimSpace(cfg.ImagegenAPIKey)
	if apiKey == "" {
		credStore := credentials.NewStore(runner)
		keyFromStore, err := credStore.ImagegenAPIKey(ctx)
		if err != nil {
			logger.Warn().Err(err).Msg("worker: failed to load imagegen api key from store")
		} else {
			apiKey = keyFromStore
		}
	}
	if apiKey == "" {
		logger.Warn().Msg("worker: imagegen api key missing, jobs will fail until configured")
	}
	generator := imagegen.NewClient(imagegen.Options{
		BaseURL:           cfg.ImagegenBaseURL,
		APIKey:            apiKey,
		Timeout:           cfg.ImagegenTimeout,
		RequestsPerSecond: cfg.ImagegenRPS,
	})

	worker := &jobWorker{
		ctx:          ctx,
		jobs:         repo.NewJobRepository(runner),
		assets:       repo.NewAssetRepository(runner),
		store:        fileStore,
		generator:    generator,
		composer:     compositor.New(logger),
		frames:       frame.NewRenderer(assetcache.New(cfg.AssetRoot)),
		logger:       logger,
		pollInterval: cfg.WorkerPollInterval,
	}

	if err := worker.Run(); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal().Err(err).Msg("worker: stopped with error")
	}
	logger.Info().Msg("worker: stopped")
}

func (w *jobWorker) Run() error {
	w.logger.Info().Msg("worker: started")
	for {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		job, err := w.jobs.ClaimNext(w.ctx)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				time.Sleep(w.pollInterval)
				continue
			}
			w.logger.Error().Err(err).Msg("worker: failed to claim job")
			time.Sleep(w.pollInterval)
			continue
		}

		w.handleJob(job)
	}
}

func (w *jobWorker) handleJob(job *domain.CardJob) {
	w.logger.Info().Str("job_id", job.ID).Msg("worker: picked job")
	if err := w.renderJob(job); err != nil {
		w.logger.Error().Err(err).Str("job_id", job.ID).Msg("worker: job failed")
		msg := failureMessage(err)
		if err := w.jobs.UpdateStatus(w.ctx, job.ID, domain.JobStatusFailed, &msg); err != nil {
			w.logger.Error().Err(err).Str("job_id", job.ID).Msg("worker: update status failed")
		}
		return
	}
	if err := w.jobs.UpdateStatus(w.ctx, job.ID, domain.JobStatusSucceeded, nil); err != nil {
		w.logger.Error().Err(err).Str("job_id", job.ID).Msg("worker: update status failed")
	}
}

// renderJob runs the full pipeline: generate both layers, compose, apply the
// ornamental frame, persist the PNG and record the asset row.
func (w *jobWorker) renderJob(job *domain.CardJob) error {
	var params domain.CardParams
	if err := json.Unmarshal(job.ParamsJSON, &params); err != nil {
		return fmt.Errorf("decode job params: %w", err)
	}
	req, err := compositor.BuildRequest(params)
	if err != nil {
		return fmt.Errorf("validate job params: %w", err)
	}
	v, err := layout.Resolve(req.Variant)
	if err != nil {
		return err
	}
	scaled := layout.Apply(v, req.Scale)

	title := params.PanelText(string(layout.PanelTitle))
	negative := strings.TrimSpace(params.NegativePrompt)
	if negative == "" {
		negative = imagegen.DefaultNegativePrompt
	}

	g, ctx := errgroup.WithContext(w.ctx)
	g.Go(func() error {
		data, err := w.generator.Generate(ctx, imagegen.Request{
			Prompt:         imagegen.BuildBackgroundPrompt(params.BackgroundPrompt, string(req.Color)),
			Width:          v.CanvasW,
			Height:         v.CanvasH,
			NegativePrompt: negative,
		})
		if err != nil {
			return fmt.Errorf("background generation: %w", err)
		}
		req.Background = data
		return nil
	})
	g.Go(func() error {
		data, err := w.generator.Generate(ctx, imagegen.Request{
			Prompt:         imagegen.BuildIllustrationPrompt(params.IllustrationPrompt, title),
			Width:          scaled.IllustrationFrame.W,
			Height:         scaled.IllustrationFrame.H,
			NegativePrompt: negative,
		})
		if err != nil {
			return fmt.Errorf("illustration generation: %w", err)
		}
		req.Illustration = data
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}

	card, err := w.composer.Compose(req)
	if err != nil {
		return err
	}
	if req.Frame != frame.PresetNone {
		card, err = w.frames.Render(card, req.Frame, v.Orientation(), frame.Options{})
		if err != nil {
			return fmt.Errorf("frame assembly: %w", err)
		}
	}
	data, err := compositor.EncodePNG(card)
	if err != nil {
		return err
	}

	key := fmt.Sprintf("cards/%s/card.png", job.ID)
	savedKey, err := w.store.Write(w.ctx, key, data)
	if err != nil {
		return fmt.Errorf("persist card: %w", err)
	}
	sum := sha256.Sum256(data)
	asset := &domain.CardAsset{
		ID:         uuid.NewString(),
		JobID:      job.ID,
		StorageKey: savedKey,
		Format:     domain.AssetFormatPNG,
		Width:      card.Bounds().Dx(),
		Height:     card.Bounds().Dy(),
		Bytes:      int64(len(data)),
		Checksum:   hex.EncodeToString(sum[:]),
	}
	if err := w.assets.Save(w.ctx, asset); err != nil {
		return fmt.Errorf("record asset: %w", err)
	}
	w.logger.Info().
		Str("job_id", job.ID).
		Str("storage_key", savedKey).
		Int("width", asset.Width).
		Int("height", asset.Height).
		Msg("worker: card rendered")
	return nil
}

// failureMessage maps pipeline errors to the text stored on the job. Provider
// failures surface only their classification, never transport detail.
func failureMessage(err error) string {
	if kind, ok := imagegen.KindOf(err); ok {
		switch kind {
		case imagegen.ErrorKindAuth:
			return "image generation auth failed"
		case imagegen.ErrorKindRateLimited:
			return "image generation rate limited"
		case imagegen.ErrorKindUnavailable:
			return "image generation unavailable"
		case imagegen.ErrorKindTimeout:
			return "image generation timed out"
		default:
			return "image generation rejected the request"
		}
	}
	if errors.Is(err, domain.ErrProviderFailure) {
		return "image generation failed"
	}
	if errors.Is(err, domain.ErrInvalidImageData) {
		return "generated layers could not be decoded"
	}
	return "card render failed"
}
